package container

import (
	"context"

	"github.com/leirbagxis/FrameTrain/internal/cache"
	"github.com/leirbagxis/FrameTrain/internal/database/models"
	"github.com/leirbagxis/FrameTrain/internal/database/repositories"
	"github.com/leirbagxis/FrameTrain/internal/frame"
	"github.com/leirbagxis/FrameTrain/internal/preview"
	"github.com/leirbagxis/FrameTrain/internal/templates/figma"
	"github.com/leirbagxis/FrameTrain/internal/templates/quizlet"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// FrameNotifier is told about every frame created through the API.
type FrameNotifier interface {
	NotifyFrameCreated(ctx context.Context, frame *models.Frame, editURL string)
}

type AppContainer struct {
	DB        *gorm.DB
	FrameRepo *repositories.FrameRepository
	Templates *frame.Registry
	Inspector *figma.Inspector
	Notifier  FrameNotifier

	// ## CACHE ## \\
	CacheService   *cache.Service
	SessionManager *cache.SessionManager

	// ## PREVIEW ## \\
	PreviewHub *preview.Hub
	Previews   *preview.Publisher
}

func NewAppContainer(db *gorm.DB, redisClient *redis.Client, notifier FrameNotifier) *AppContainer {
	cacheService := cache.NewService(redisClient)
	sessionManager := cache.NewSessionManager(cacheService)
	frameRepo := repositories.NewFrameRepository(db)

	hub := preview.NewHub()
	previews := preview.NewPublisher(sessionManager, hub)

	templates := frame.NewRegistry()
	templates.Register(figma.NewTemplate())
	templates.Register(quizlet.NewTemplate())

	return &AppContainer{
		DB:        db,
		FrameRepo: frameRepo,
		Templates: templates,
		Inspector: figma.NewInspector(frameRepo, sessionManager, previews, figma.Fonts),
		Notifier:  notifier,

		CacheService:   cacheService,
		SessionManager: sessionManager,

		PreviewHub: hub,
		Previews:   previews,
	}
}
