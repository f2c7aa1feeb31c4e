package logs

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	framemodels "github.com/leirbagxis/FrameTrain/internal/database/models"
)

func FrameCreatedText(frame *framemodels.Frame, editURL string) string {
	return fmt.Sprintf(
		"🖼 <b>Novo frame criado!</b>\n\n"+
			"🧩 <b>Template:</b> %s\n"+
			"🆔 <b>ID:</b> <code>%s</code>\n"+
			"👤 <b>Owner:</b> <code>%s</code>\n"+
			"✏️ <b>Editar:</b> %s\n"+
			"⏰ <b>Criado em:</b> <code>%s</code>",
		html.EscapeString(frame.Template),
		frame.ID,
		html.EscapeString(frame.OwnerID),
		html.EscapeString(editURL),
		frame.CreatedAt.Format("02/01/2006 15:04:05"),
	)
}

func LogFrameCreated(ctx context.Context, b *bot.Bot, chatID int64, frame *framemodels.Frame, editURL string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      FrameCreatedText(frame, editURL),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		log.Printf("Erro ao enviar log do frame %s: %v", frame.ID, err)
	}
}
