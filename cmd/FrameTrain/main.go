package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/leirbagxis/FrameTrain/internal/api"
	"github.com/leirbagxis/FrameTrain/internal/cache"
	"github.com/leirbagxis/FrameTrain/internal/container"
	"github.com/leirbagxis/FrameTrain/internal/database"
	"github.com/leirbagxis/FrameTrain/internal/telegram"
	"github.com/leirbagxis/FrameTrain/pkg/config"
)

func main() {
	config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(config.DatabaseFile)
	if err != nil {
		log.Fatal(err)
	}

	var notifier container.FrameNotifier
	if config.TelegramBotToken != "" {
		n, err := telegram.NewNotifier(config.TelegramBotToken, config.OwnerID)
		if err != nil {
			log.Fatal(err)
		}
		notifier = n
	}

	app := container.NewAppContainer(db, cache.GetRedisClient(), notifier)
	go app.PreviewHub.Run(ctx)

	if err := api.StartApi(ctx, app); err != nil {
		log.Printf("Erro ao encerrar API: %v", err)
	}

	if err := cache.CloseRedis(); err != nil {
		log.Printf("Error closing Redis: %v", err)
	}
	log.Println("Shutting down gracefully...")
}
