package preview

import (
	"context"
	"fmt"

	"github.com/leirbagxis/FrameTrain/internal/cache"
)

type Store interface {
	SetPreview(ctx context.Context, frameID string, payload cache.PreviewPayload) error
}

// Publisher remembers the latest preview of a frame and pushes it to open editors.
type Publisher struct {
	store Store
	hub   *Hub
}

func NewPublisher(store Store, hub *Hub) *Publisher {
	return &Publisher{store: store, hub: hub}
}

func (p *Publisher) PublishPreview(ctx context.Context, frameID string, payload cache.PreviewPayload) error {
	if err := p.store.SetPreview(ctx, frameID, payload); err != nil {
		return fmt.Errorf("failed to store preview: %w", err)
	}
	return p.hub.Broadcast(frameID, payload)
}
