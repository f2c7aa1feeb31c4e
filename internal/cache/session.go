package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	inspectorSessionTTL = 24 * time.Hour
	previewTTL          = 24 * time.Hour
)

type SessionManager struct {
	cache *Service
}

func NewSessionManager(cache *Service) *SessionManager {
	return &SessionManager{
		cache: cache,
	}
}

// ### INSPECTOR SESSION ### \\

func inspectorKey(frameID, ownerID string) string {
	return fmt.Sprintf("inspector:%s:%s", frameID, ownerID)
}

// GetInspectorSession returns nil, nil when the editor has no session yet.
func (sm *SessionManager) GetInspectorSession(ctx context.Context, frameID, ownerID string) (*InspectorSession, error) {
	var session InspectorSession
	err := sm.cache.getJSON(ctx, inspectorKey(frameID, ownerID), &session)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (sm *SessionManager) SaveInspectorSession(ctx context.Context, frameID, ownerID string, session *InspectorSession) error {
	return sm.cache.setJSON(ctx, inspectorKey(frameID, ownerID), session, inspectorSessionTTL)
}

func (sm *SessionManager) DeleteInspectorSession(ctx context.Context, frameID, ownerID string) error {
	return sm.cache.delete(ctx, inspectorKey(frameID, ownerID))
}

// ### PREVIEW ### \\

func previewKey(frameID string) string {
	return "preview:" + frameID
}

func (sm *SessionManager) SetPreview(ctx context.Context, frameID string, payload PreviewPayload) error {
	return sm.cache.setJSON(ctx, previewKey(frameID), payload, previewTTL)
}

func (sm *SessionManager) GetPreview(ctx context.Context, frameID string) (*PreviewPayload, error) {
	var payload PreviewPayload
	if err := sm.cache.getJSON(ctx, previewKey(frameID), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (sm *SessionManager) DeletePreview(ctx context.Context, frameID string) error {
	return sm.cache.delete(ctx, previewKey(frameID))
}
