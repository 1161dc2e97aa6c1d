package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewUsageHandler returns the handler shared by /start and /help. It
// replies with the fixed usage text listing all commands.
func NewUsageHandler(deps HandlerDeps) bot.HandlerFunc {
	return usageHandler{deps}.Handle
}

type usageHandler struct {
	deps HandlerDeps
}

func (h usageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "usage")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Usage handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	sendText(ctx, log, b, update.Message.Chat.ID, h.deps.Config.Messages.Usage)
}
