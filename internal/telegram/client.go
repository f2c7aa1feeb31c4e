package telegram

import (
	"context"
	"fmt"
	"log"

	"github.com/go-telegram/bot"
	"github.com/leirbagxis/FrameTrain/internal/database/models"
	"github.com/leirbagxis/FrameTrain/internal/telegram/logs"
)

// Notifier tells the bot owner about new frames. It only sends, the bot never
// polls for updates.
type Notifier struct {
	bot     *bot.Bot
	ownerID int64
}

func NewNotifier(token string, ownerID int64) (*Notifier, error) {
	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("erro ao criar bot: %w", err)
	}

	log.Println("Notificações do Telegram ativadas...")
	return &Notifier{bot: b, ownerID: ownerID}, nil
}

// NotifyFrameCreated sends in the background so a slow Telegram API never holds
// up the request that created the frame.
func (n *Notifier) NotifyFrameCreated(ctx context.Context, frame *models.Frame, editURL string) {
	snapshot := *frame
	go logs.LogFrameCreated(context.WithoutCancel(ctx), n.bot, n.ownerID, &snapshot, editURL)
}
