package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/leirbagxis/FrameTrain/internal/templates/figma"
)

var ErrNotFigma = errors.New("frame não usa o template figma")

// requireFigma makes sure the inspector only ever touches slide decks.
func (app *AppContainerLocal) requireFigma(ctx context.Context, frameID string) error {
	frame, err := app.FrameRepo.GetFrameByID(ctx, frameID)
	if err != nil {
		return err
	}
	if frame.Template != figma.TemplateName {
		return fmt.Errorf("%w: %s", ErrNotFigma, frame.Template)
	}
	return nil
}

func (app *AppContainerLocal) InspectorViewService(ctx context.Context, frameID, ownerID string) (*figma.View, error) {
	if err := app.requireFigma(ctx, frameID); err != nil {
		return nil, err
	}
	return app.Inspector.View(ctx, frameID, ownerID)
}

func (app *AppContainerLocal) SelectSlideService(ctx context.Context, frameID, ownerID string, index int) (*figma.View, error) {
	if err := app.requireFigma(ctx, frameID); err != nil {
		return nil, err
	}
	return app.Inspector.SelectSlide(ctx, frameID, ownerID, index)
}

func (app *AppContainerLocal) AddSlideService(ctx context.Context, frameID, ownerID string) (*figma.View, error) {
	if err := app.requireFigma(ctx, frameID); err != nil {
		return nil, err
	}
	return app.Inspector.AddSlide(ctx, frameID, ownerID)
}

func (app *AppContainerLocal) RemoveSlideService(ctx context.Context, frameID, ownerID string) (*figma.View, error) {
	if err := app.requireFigma(ctx, frameID); err != nil {
		return nil, err
	}
	return app.Inspector.RemoveSlide(ctx, frameID, ownerID)
}

func (app *AppContainerLocal) MoveSlideService(ctx context.Context, frameID, ownerID string, direction figma.Direction) (*figma.View, error) {
	if err := app.requireFigma(ctx, frameID); err != nil {
		return nil, err
	}
	return app.Inspector.SwapSlide(ctx, frameID, ownerID, direction)
}

func (app *AppContainerLocal) UpdateSlideService(ctx context.Context, frameID, ownerID string, slide figma.SlideConfig) (*figma.View, error) {
	if err := app.requireFigma(ctx, frameID); err != nil {
		return nil, err
	}
	return app.Inspector.UpdateSlide(ctx, frameID, ownerID, slide)
}

func (app *AppContainerLocal) EditFigmaPATService(ctx context.Context, frameID, ownerID string, editing bool) (*figma.View, error) {
	if err := app.requireFigma(ctx, frameID); err != nil {
		return nil, err
	}
	if editing {
		return app.Inspector.RequestFigmaPATEdit(ctx, frameID, ownerID)
	}
	return app.Inspector.CancelFigmaPATEdit(ctx, frameID, ownerID)
}

func (app *AppContainerLocal) UpdateFigmaPATService(ctx context.Context, frameID, ownerID, token string) (*figma.View, error) {
	if err := app.requireFigma(ctx, frameID); err != nil {
		return nil, err
	}
	return app.Inspector.UpdateFigmaPAT(ctx, frameID, ownerID, token)
}
