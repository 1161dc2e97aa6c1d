package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"rozkladbot/internal/timetable"
)

// NewTeacherHandler returns a handler for the /teacher command: schedule
// for a teacher API id over an optional date range.
func NewTeacherHandler(deps HandlerDeps) bot.HandlerFunc {
	return teacherHandler{deps}.Handle
}

type teacherHandler struct {
	deps HandlerDeps
}

func (h teacherHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "teacher")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Teacher handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	args := strings.Fields(update.Message.Text)
	if len(args) < 2 {
		sendText(ctx, log, b, chatID, h.deps.Config.Messages.TeacherUsage)
		return
	}

	// The identifier must be numeric; fail before any I/O.
	teacherAPIID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		sendText(ctx, log, b, chatID, h.deps.Config.Messages.TeacherIDNotNumber)
		return
	}

	begin, end := ParseDateRange(args[2:], time.Now())

	log.InfoContext(ctx, "Handling /teacher command",
		"chat_id", chatID, "teacher_api_id", teacherAPIID,
		"begin", isoDate(begin), "end", isoDate(end))

	url := h.deps.Timetable.BuildURL(timetable.Request{
		Mode:         timetable.ModeTeacher,
		TeacherAPIID: teacherAPIID,
		Begin:        begin,
		End:          end,
	})

	sendText(ctx, log, b, chatID,
		fmt.Sprintf(h.deps.Config.Messages.QueryingTeacherFmt, teacherAPIID, isoDate(begin), isoDate(end)))

	runScheduleFlow(ctx, h.deps, log, b, chatID, url)
}
