package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/leirbagxis/FrameTrain/internal/api/auth"
	"github.com/leirbagxis/FrameTrain/internal/api/types"
	"github.com/leirbagxis/FrameTrain/internal/cache"
	"github.com/leirbagxis/FrameTrain/internal/container"
	"github.com/leirbagxis/FrameTrain/internal/database/models"
	"github.com/leirbagxis/FrameTrain/internal/templates/figma"
	"github.com/leirbagxis/FrameTrain/internal/templates/quizlet"
	"github.com/leirbagxis/FrameTrain/pkg/config"
)

type AppContainerLocal container.AppContainer

var (
	ErrInvalidSignature = errors.New("signature inválida")
	ErrInvalidConfig    = errors.New("config inválida")
)

// BaseURL is the public root frames are served from.
func BaseURL() string {
	return strings.TrimRight(config.PublicURL, "/")
}

func FrameURL(frameID string) string {
	return BaseURL() + "/f/" + frameID
}

func EditURL(frameID, signature string) string {
	return BaseURL() + "/edit/" + frameID + "?signature=" + signature
}

func (app *AppContainerLocal) CreateFrameService(ctx context.Context, body types.CreateFrameRequest) (*types.CreateFrameResponse, error) {
	tmpl, err := app.Templates.Template(body.Template)
	if err != nil {
		return nil, err
	}

	defaults, err := tmpl.DefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar config padrão: %w", err)
	}

	newFrame := &models.Frame{
		Template: tmpl.Name,
		OwnerID:  body.OwnerID,
		Config:   string(defaults),
	}
	if err := app.FrameRepo.CreateFrame(ctx, newFrame); err != nil {
		return nil, fmt.Errorf("erro ao criar frame: %w", err)
	}

	signature := auth.GenerateSignature(newFrame.ID, newFrame.OwnerID, config.SecretKey)
	editURL := EditURL(newFrame.ID, signature)

	log.Printf("✅ Frame criado com sucesso: %s (%s)", newFrame.ID, newFrame.Template)
	if app.Notifier != nil {
		app.Notifier.NotifyFrameCreated(ctx, newFrame, editURL)
	}

	return &types.CreateFrameResponse{
		Success:   true,
		Message:   "Frame criado com sucesso",
		Data:      types.NewFrameData(newFrame),
		Signature: signature,
		FrameURL:  FrameURL(newFrame.ID),
		EditURL:   editURL,
	}, nil
}

// IssueTokenService trades the signed edit link of a frame for a JWT.
func (app *AppContainerLocal) IssueTokenService(ctx context.Context, body types.TokenRequest) (string, *models.Frame, error) {
	frame, err := app.FrameRepo.GetFrameByID(ctx, body.FrameID)
	if err != nil {
		return "", nil, err
	}

	if !auth.ValidateSignature(frame.ID, frame.OwnerID, body.Signature, config.SecretKey) {
		return "", nil, ErrInvalidSignature
	}

	token, err := auth.GenerateTokenJWT(frame.ID, frame.OwnerID)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao gerar token: %w", err)
	}
	return token, frame, nil
}

func (app *AppContainerLocal) GetFrameService(ctx context.Context, frameID string) (*types.FrameData, error) {
	frame, err := app.FrameRepo.GetFrameByID(ctx, frameID)
	if err != nil {
		return nil, err
	}
	return types.NewFrameData(frame), nil
}

func (app *AppContainerLocal) ListOwnerFramesService(ctx context.Context, ownerID string) ([]*types.FrameData, error) {
	frames, err := app.FrameRepo.ListFramesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar frames: %w", err)
	}

	data := make([]*types.FrameData, 0, len(frames))
	for i := range frames {
		data = append(data, types.NewFrameData(&frames[i]))
	}
	return data, nil
}

// UpdateFrameConfigService replaces the whole config of a frame after checking it
// decodes for the frame's template.
func (app *AppContainerLocal) UpdateFrameConfigService(ctx context.Context, frameID string, raw json.RawMessage) (*types.FrameData, error) {
	frame, err := app.FrameRepo.GetFrameByID(ctx, frameID)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(frame.Template, raw); err != nil {
		return nil, err
	}

	if err := app.FrameRepo.UpdateFrameConfig(ctx, frameID, raw); err != nil {
		return nil, fmt.Errorf("erro ao salvar config: %w", err)
	}

	return app.GetFrameService(ctx, frameID)
}

func validateConfig(template string, raw json.RawMessage) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("%w: precisa ser um objeto JSON", ErrInvalidConfig)
	}

	var err error
	switch template {
	case figma.TemplateName:
		_, err = figma.DecodeConfig(raw)
	case quizlet.TemplateName:
		_, err = quizlet.DecodeConfig(raw)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (app *AppContainerLocal) DeleteFrameService(ctx context.Context, frameID, ownerID string) error {
	if err := app.FrameRepo.DeleteFrame(ctx, frameID); err != nil {
		return err
	}

	// sessões expiram sozinhas, falha aqui não impede a remoção
	if err := app.SessionManager.DeleteInspectorSession(ctx, frameID, ownerID); err != nil {
		log.Printf("Erro ao remover sessão do inspector %s: %v", frameID, err)
	}
	if err := app.SessionManager.DeletePreview(ctx, frameID); err != nil {
		log.Printf("Erro ao remover preview %s: %v", frameID, err)
	}

	log.Printf("🗑 Frame removido: %s", frameID)
	return nil
}

// GetPreviewService returns the last preview payload published for a frame, nil
// when none is cached.
func (app *AppContainerLocal) GetPreviewService(ctx context.Context, frameID string) (*cache.PreviewPayload, error) {
	payload, err := app.SessionManager.GetPreview(ctx, frameID)
	if errors.Is(err, cache.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar preview: %w", err)
	}
	return payload, nil
}
