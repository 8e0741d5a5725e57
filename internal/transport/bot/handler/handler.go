package handler

import (
	"context"

	"fdrates/internal/domain/entity"
	"fdrates/internal/infrastructure/feed"
)

// StatusProvider отдаёт журналы последних обновлений.
type StatusProvider interface {
	Runs(ctx context.Context) ([]entity.RunLog, error)
}

// Refresher запускает обновление ставок по источнику.
type Refresher interface {
	RefreshSource(ctx context.Context, src feed.Source) (int, error)
	RefreshAll(ctx context.Context)
}

type Handler struct {
	status    StatusProvider
	refresher Refresher
}

func New(status StatusProvider, refresher Refresher) *Handler {
	return &Handler{
		status:    status,
		refresher: refresher,
	}
}
