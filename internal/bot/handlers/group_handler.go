package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"rozkladbot/internal/timetable"
)

// NewGroupHandler returns a handler for the /group command: schedule for a
// group code over an optional date range.
func NewGroupHandler(deps HandlerDeps) bot.HandlerFunc {
	return groupHandler{deps}.Handle
}

type groupHandler struct {
	deps HandlerDeps
}

func (h groupHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "group")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Group handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	args := strings.Fields(update.Message.Text)
	if len(args) < 2 {
		sendText(ctx, log, b, chatID, h.deps.Config.Messages.GroupUsage)
		return
	}

	groupCode := args[1]
	begin, end := ParseDateRange(args[2:], time.Now())

	log.InfoContext(ctx, "Handling /group command",
		"chat_id", chatID, "group_code", groupCode,
		"begin", isoDate(begin), "end", isoDate(end))

	url := h.deps.Timetable.BuildURL(timetable.Request{
		Mode:      timetable.ModeGroup,
		GroupCode: groupCode,
		Begin:     begin,
		End:       end,
	})

	sendText(ctx, log, b, chatID,
		fmt.Sprintf(h.deps.Config.Messages.QueryingGroupFmt, groupCode, isoDate(begin), isoDate(end)))

	runScheduleFlow(ctx, h.deps, log, b, chatID, url)
}
