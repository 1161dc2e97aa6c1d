package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"rozkladbot/internal/database"
	"rozkladbot/internal/timetable"
)

// NewMeHandler returns a handler for the /me command: the schedule of the
// user bound to the invoking Telegram identity. A user with a group id gets
// the group flow, otherwise a user with a teacher id gets the teacher flow;
// group takes precedence when both are set.
func NewMeHandler(deps HandlerDeps) bot.HandlerFunc {
	return meHandler{deps}.Handle
}

type meHandler struct {
	deps HandlerDeps
}

func (h meHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "me")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Me handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	msgs := h.deps.Config.Messages

	log.InfoContext(ctx, "Handling /me command", "chat_id", chatID, "telegram_id", telegramID)

	var user *database.User
	err := h.deps.Pool.Do(ctx, func(ctx context.Context) error {
		var lookupErr error
		user, lookupErr = h.deps.Store.UserByTelegramID(ctx, telegramID)
		return lookupErr
	})
	if err != nil {
		log.ErrorContext(ctx, "Identity resolution failed", "error", err, "telegram_id", telegramID)
		sendText(ctx, log, b, chatID, fmt.Sprintf(msgs.GeneralErrorFmt, err))
		return
	}
	if user == nil {
		sendText(ctx, log, b, chatID, msgs.NotRegistered)
		return
	}

	args := strings.Fields(update.Message.Text)
	begin, end := ParseDateRange(args[1:], time.Now())

	if user.GroupID.Valid {
		h.handleGroup(ctx, b, log, chatID, user.GroupID.Int64, begin, end)
		return
	}
	if user.TeacherID.Valid {
		h.handleTeacher(ctx, b, log, chatID, user.TeacherID.Int64, begin, end)
		return
	}

	sendText(ctx, log, b, chatID, msgs.ProfileIncomplete)
}

func (h meHandler) handleGroup(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID, groupID int64, begin, end time.Time) {
	msgs := h.deps.Config.Messages

	var (
		groupCode string
		found     bool
	)
	err := h.deps.Pool.Do(ctx, func(ctx context.Context) error {
		var lookupErr error
		groupCode, found, lookupErr = h.deps.Store.GroupCodeByID(ctx, groupID)
		return lookupErr
	})
	if err != nil {
		log.ErrorContext(ctx, "Group code lookup failed", "error", err, "group_id", groupID)
		sendText(ctx, log, b, chatID, fmt.Sprintf(msgs.GeneralErrorFmt, err))
		return
	}
	if !found {
		// The profile references a group that no longer resolves.
		sendText(ctx, log, b, chatID, msgs.GroupInconsistent)
		return
	}

	url := h.deps.Timetable.BuildURL(timetable.Request{
		Mode:      timetable.ModeGroup,
		GroupCode: groupCode,
		Begin:     begin,
		End:       end,
	})

	sendText(ctx, log, b, chatID,
		fmt.Sprintf(msgs.QueryingMyGroupFmt, groupCode, isoDate(begin), isoDate(end)))

	runScheduleFlow(ctx, h.deps, log, b, chatID, url)
}

func (h meHandler) handleTeacher(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID, teacherID int64, begin, end time.Time) {
	msgs := h.deps.Config.Messages

	var (
		teacherAPIID int64
		found        bool
	)
	err := h.deps.Pool.Do(ctx, func(ctx context.Context) error {
		var lookupErr error
		teacherAPIID, found, lookupErr = h.deps.Store.TeacherAPIIDByID(ctx, teacherID)
		return lookupErr
	})
	if err != nil {
		log.ErrorContext(ctx, "Teacher api id lookup failed", "error", err, "teacher_id", teacherID)
		sendText(ctx, log, b, chatID, fmt.Sprintf(msgs.GeneralErrorFmt, err))
		return
	}
	if !found {
		sendText(ctx, log, b, chatID, msgs.TeacherInconsistent)
		return
	}

	url := h.deps.Timetable.BuildURL(timetable.Request{
		Mode:         timetable.ModeTeacher,
		TeacherAPIID: teacherAPIID,
		Begin:        begin,
		End:          end,
	})

	sendText(ctx, log, b, chatID,
		fmt.Sprintf(msgs.QueryingMeFmt, teacherAPIID, isoDate(begin), isoDate(end)))

	runScheduleFlow(ctx, h.deps, log, b, chatID, url)
}
