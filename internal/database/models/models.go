package models

import (
	"encoding/json"
	"time"
)

type Frame struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	Template  string    `gorm:"index;not null" json:"template"`
	OwnerID   string    `gorm:"index;not null" json:"ownerId"`
	Config    string    `gorm:"type:text;not null;default:'{}'" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RawConfig returns the stored template config, "{}" when nothing was saved yet.
func (f *Frame) RawConfig() json.RawMessage {
	if f.Config == "" {
		return json.RawMessage("{}")
	}
	return json.RawMessage(f.Config)
}

func (Frame) TableName() string {
	return "frames"
}
