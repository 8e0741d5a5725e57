package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"fdrates/internal/transport/bot/view"
)

func (h *Handler) OnStatusCallback(ctx *th.Context, query telego.CallbackQuery) error {
	// Формат: "status_page:<number>"
	var page int
	_, err := fmt.Sscanf(query.Data, "status_page:%d", &page)
	if err != nil || page < 1 {
		page = 1
	}

	runs, err := h.status.Runs(ctx)
	if err != nil {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(view.StatusError).WithShowAlert())
		return err
	}

	totalPages := (len(runs) + statusPageSize - 1) / statusPageSize
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        renderStatusPage(runs, page),
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: createPaginationKeyboard(page, totalPages),
	})
	if err != nil {
		// Повторное нажатие на ту же страницу — Telegram вернёт
		// "message is not modified", это не ошибка для нас.
		logger(ctx).Debug("edit status page", "error", err)
	}

	// Убираем часики на кнопке
	_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))

	return nil
}

func createPaginationKeyboard(page, totalPages int) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("status_page:%d", page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData("noop"))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("status_page:%d", page+1)))
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(buttons...),
	)
}
