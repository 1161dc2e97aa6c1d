// Package handlers contains the Telegram command handlers of the timetable
// bot, their registration metadata, and the shared fetch-and-reply flow.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"

	"rozkladbot/internal/timetable"
)

// sendText sends a plain text reply and logs a failure to deliver it.
// Every command invocation ends in exactly one call chain through here,
// success or failure, so the user never gets silence.
func sendText(ctx context.Context, log *slog.Logger, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

// runScheduleFlow performs the common tail of every schedule command: the
// fetch is offloaded to the worker pool so the dispatch loop is never
// blocked, a non-2xx status is reported with its detail, any other failure
// with a generic error, and a decoded payload is formatted and sent.
// Nothing propagates past this function; each command is its own failure
// boundary.
func runScheduleFlow(ctx context.Context, deps HandlerDeps, log *slog.Logger, b *bot.Bot, chatID int64, rawURL string) {
	var payload timetable.Payload

	err := deps.Pool.Do(ctx, func(ctx context.Context) error {
		var fetchErr error
		payload, fetchErr = deps.Timetable.Fetch(ctx, rawURL)
		return fetchErr
	})
	if err != nil {
		var statusErr *timetable.StatusError
		if errors.As(err, &statusErr) {
			log.WarnContext(ctx, "Timetable API error status", "status", statusErr.Status, "chat_id", chatID)
			sendText(ctx, log, b, chatID, fmt.Sprintf(deps.Config.Messages.HTTPErrorFmt, statusErr))
			return
		}
		log.ErrorContext(ctx, "Timetable fetch failed", "error", err, "chat_id", chatID)
		sendText(ctx, log, b, chatID, fmt.Sprintf(deps.Config.Messages.GeneralErrorFmt, err))
		return
	}

	sendText(ctx, log, b, chatID, timetable.Format(payload))
}
