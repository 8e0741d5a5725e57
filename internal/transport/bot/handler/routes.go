package handler

import (
	"fdrates/internal/transport/bot/middleware"

	th "github.com/mymmrac/telego/telegohandler"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	// Все команды закрыты за админской миддлварью
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	// Команда /start
	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))

	// Команда /status
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	// Команда /sources
	adminGroup.HandleMessage(h.OnSources, th.CommandEqual("sources"))

	// Команда /refresh
	adminGroup.HandleMessage(h.OnRefresh, th.CommandEqual("refresh"))

	// Пагинация журнала обновлений
	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))

	cbGroup.HandleCallbackQuery(h.OnStatusCallback, th.CallbackDataPrefix("status_page"))
}
