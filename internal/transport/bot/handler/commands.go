package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"fdrates/internal/domain/entity"
	"fdrates/internal/infrastructure/feed"
	"fdrates/internal/transport/bot/view"
)

const statusPageSize = 8

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	runs, err := h.status.Runs(ctx)
	if err != nil {
		return h.send(ctx, msg.Chat.ID, view.StatusError)
	}

	if len(runs) == 0 {
		return h.send(ctx, msg.Chat.ID, view.StatusEmpty)
	}

	page := 1
	totalPages := (len(runs) + statusPageSize - 1) / statusPageSize

	_, err = ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: msg.Chat.ID},
		Text:        renderStatusPage(runs, page),
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: createPaginationKeyboard(page, totalPages),
	})
	return err
}

func (h *Handler) OnSources(ctx *th.Context, msg telego.Message) error {
	var sb strings.Builder
	sources := feed.Registry()
	sb.WriteString(fmt.Sprintf("📚 <b>Источники (%d):</b>\n\n", len(sources)))

	for i, src := range sources {
		sb.WriteString(fmt.Sprintf("%d. %s — <code>%s</code>\n", i+1, src.Name, src.Slug))
	}

	return h.sendHTML(ctx, msg.Chat.ID, sb.String())
}

func (h *Handler) OnRefresh(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.RefreshMissingArgument)
	}

	arg := parts[1]

	if arg == "all" {
		// Обновление занимает минуты — не держим long polling
		go h.refresher.RefreshAll(context.WithoutCancel(ctx))
		return h.sendHTML(ctx, msg.Chat.ID, view.RefreshAllStarted)
	}

	src, err := feed.LookupSlug(arg)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.RefreshUnknownSource, arg))
	}

	go func() {
		_, _ = h.refresher.RefreshSource(context.WithoutCancel(ctx), src)
	}()

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.RefreshStarted, src.Name))
}

func renderStatusPage(runs []entity.RunLog, page int) string {
	totalPages := (len(runs) + statusPageSize - 1) / statusPageSize

	start := (page - 1) * statusPageSize
	end := start + statusPageSize
	if end > len(runs) {
		end = len(runs)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(view.StatusPaginationTemplate, page, totalPages))

	for _, run := range runs[start:end] {
		detail := run.LastRun.Format("02 Jan 15:04")
		if run.Status == entity.RunFailed && run.ErrorMessage != "" {
			detail = run.ErrorMessage
		}
		sb.WriteString(fmt.Sprintf(
			view.StatusItemTemplate,
			statusEmoji(run.Status),
			run.Name,
			run.RecordsUpdated,
			detail,
		))
	}

	return sb.String()
}

func statusEmoji(status entity.RunStatus) string {
	switch status {
	case entity.RunSuccess:
		return "✅"
	case entity.RunFailed:
		return "❌"
	default:
		return "⏳"
	}
}

// Вспомогательные методы

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: "HTML",
	})
	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	return err
}
