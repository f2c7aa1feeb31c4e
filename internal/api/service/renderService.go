package service

import (
	"context"
	"fmt"
	"image"
	"log"
	"net/url"

	"github.com/leirbagxis/FrameTrain/internal/frame"
	"github.com/leirbagxis/FrameTrain/internal/render"
	"github.com/leirbagxis/FrameTrain/internal/templates/figma"
)

// RenderFrameService runs one handler of a frame's template.
func (app *AppContainerLocal) RenderFrameService(ctx context.Context, frameID, handler string, params url.Values, body frame.ActionPayload) (*frame.Response, error) {
	f, err := app.FrameRepo.GetFrameByID(ctx, frameID)
	if err != nil {
		return nil, err
	}

	req := &frame.Request{
		FrameID: f.ID,
		Handler: handler,
		BaseURL: BaseURL(),
		Params:  params,
		Body:    body,
		Config:  []byte(f.RawConfig()),
	}
	return app.Templates.Dispatch(ctx, f.Template, req)
}

func (app *AppContainerLocal) FrameQRService(frameID string, size int) ([]byte, error) {
	return render.QRPNG(FrameURL(frameID), size)
}

// SlideImageService renders the exported image of a slide at the slide's aspect
// ratio. A slide without an image, or whose image cannot be fetched, renders blank.
func (app *AppContainerLocal) SlideImageService(ctx context.Context, frameID, slideID string) ([]byte, error) {
	f, err := app.FrameRepo.GetFrameByID(ctx, frameID)
	if err != nil {
		return nil, err
	}
	if f.Template != figma.TemplateName {
		return nil, fmt.Errorf("%w: %s", ErrNotFigma, f.Template)
	}

	cfg, err := figma.DecodeConfig([]byte(f.RawConfig()))
	if err != nil {
		return nil, err
	}
	index := cfg.SlideIndex(slideID)
	if index < 0 {
		return nil, fmt.Errorf("%w: %q", figma.ErrSlideNotFound, slideID)
	}
	slide := cfg.Slides[index]

	var base image.Image
	if slide.ImageURL != "" {
		base, err = render.DownloadImage(ctx, slide.ImageURL)
		if err != nil {
			log.Printf("Erro ao baixar imagem do slide %s/%s: %v", frameID, slideID, err)
			base = nil
		}
	}

	return render.EncodePNG(render.SlideImage(base, slide.FrameAspectRatio()))
}
