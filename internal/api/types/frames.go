package types

import (
	"encoding/json"
	"time"

	"github.com/leirbagxis/FrameTrain/internal/database/models"
)

type CreateFrameRequest struct {
	Template string `json:"template" binding:"required"`
	OwnerID  string `json:"ownerId" binding:"required"`
}

type FrameData struct {
	ID        string          `json:"id"`
	Template  string          `json:"template"`
	OwnerID   string          `json:"ownerId"`
	Config    json.RawMessage `json:"config"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewFrameData(f *models.Frame) *FrameData {
	return &FrameData{
		ID:        f.ID,
		Template:  f.Template,
		OwnerID:   f.OwnerID,
		Config:    f.RawConfig(),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

type CreateFrameResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Data      *FrameData `json:"data,omitempty"`
	Signature string     `json:"signature,omitempty"`
	FrameURL  string     `json:"frameUrl,omitempty"`
	EditURL   string     `json:"editUrl,omitempty"`
}

type TokenRequest struct {
	FrameID   string `json:"frameId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}
