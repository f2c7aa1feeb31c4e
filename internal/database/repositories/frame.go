package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/leirbagxis/FrameTrain/internal/database/models"
	"gorm.io/gorm"
)

var ErrFrameNotFound = errors.New("frame not found")

type FrameRepository struct {
	db *gorm.DB
}

func NewFrameRepository(db *gorm.DB) *FrameRepository {
	return &FrameRepository{db: db}
}

func (r *FrameRepository) CreateFrame(ctx context.Context, frame *models.Frame) error {
	if frame == nil {
		return fmt.Errorf("frame não pode ser nil")
	}
	if frame.ID == "" {
		frame.ID = uuid.NewString()
	}
	if frame.Config == "" {
		frame.Config = "{}"
	}

	if err := r.db.WithContext(ctx).Create(frame).Error; err != nil {
		return fmt.Errorf("erro ao criar frame: %w", err)
	}
	return nil
}

func (r *FrameRepository) GetFrameByID(ctx context.Context, frameID string) (*models.Frame, error) {
	var frame models.Frame
	err := r.db.WithContext(ctx).First(&frame, "id = ?", frameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFrameNotFound
		}
		return nil, err
	}

	return &frame, nil
}

func (r *FrameRepository) ListFramesByOwner(ctx context.Context, ownerID string) ([]models.Frame, error) {
	var frames []models.Frame
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&frames).Error
	return frames, err
}

// GetFrameConfig returns the raw template config of a frame.
func (r *FrameRepository) GetFrameConfig(ctx context.Context, frameID string) ([]byte, error) {
	frame, err := r.GetFrameByID(ctx, frameID)
	if err != nil {
		return nil, err
	}
	return frame.RawConfig(), nil
}

// UpdateFrameConfig replaces the whole config document.
func (r *FrameRepository) UpdateFrameConfig(ctx context.Context, frameID string, config []byte) error {
	result := r.db.WithContext(ctx).
		Model(&models.Frame{}).
		Where("id = ?", frameID).
		Update("config", string(config))

	if result.Error != nil {
		return fmt.Errorf("erro ao atualizar config: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFrameNotFound
	}
	return nil
}

func (r *FrameRepository) DeleteFrame(ctx context.Context, frameID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", frameID).
		Delete(&models.Frame{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFrameNotFound
	}
	return nil
}
