package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"rozkladbot/internal/database"
)

// NewRegisterHandler returns a handler for the /register command. It looks
// up a user by phone and binds the invoking Telegram identity to it;
// re-registering overwrites the previous binding.
func NewRegisterHandler(deps HandlerDeps) bot.HandlerFunc {
	return registerHandler{deps}.Handle
}

type registerHandler struct {
	deps HandlerDeps
}

func (h registerHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "register")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Register handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	args := strings.Fields(update.Message.Text)
	if len(args) < 2 {
		sendText(ctx, log, b, chatID, h.deps.Config.Messages.RegisterUsage)
		return
	}
	phone := args[1]

	log.InfoContext(ctx, "Handling /register command", "chat_id", chatID, "telegram_id", telegramID)

	var user *database.User
	err := h.deps.Pool.Do(ctx, func(ctx context.Context) error {
		var lookupErr error
		user, lookupErr = h.deps.Store.FindUserByPhone(ctx, phone)
		return lookupErr
	})
	if err != nil {
		log.ErrorContext(ctx, "Phone lookup failed", "error", err, "chat_id", chatID)
		sendText(ctx, log, b, chatID, fmt.Sprintf(h.deps.Config.Messages.GeneralErrorFmt, err))
		return
	}
	if user == nil {
		sendText(ctx, log, b, chatID, h.deps.Config.Messages.PhoneNotFound)
		return
	}

	err = h.deps.Pool.Do(ctx, func(ctx context.Context) error {
		return h.deps.Store.BindTelegram(ctx, telegramID, user.ID)
	})
	if err != nil {
		log.ErrorContext(ctx, "Binding failed", "error", err, "telegram_id", telegramID, "user_id", user.ID)
		sendText(ctx, log, b, chatID, fmt.Sprintf(h.deps.Config.Messages.GeneralErrorFmt, err))
		return
	}

	log.InfoContext(ctx, "Telegram identity registered", "telegram_id", telegramID, "user_id", user.ID)
	sendText(ctx, log, b, chatID, h.deps.Config.Messages.Registered)
}
