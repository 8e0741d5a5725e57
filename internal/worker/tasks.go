package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"fdrates/internal/domain/service/ingest"
	"fdrates/internal/infrastructure/feed"
)

const TypeFeedRefresh = "feed:refresh"

type feedRefreshPayload struct {
	Slug string `json:"slug"`
}

// NewFeedRefreshTask builds a refresh task for one feed source.
func NewFeedRefreshTask(src feed.Source) (*asynq.Task, error) {
	payload, err := jsoniter.Marshal(feedRefreshPayload{Slug: src.Slug})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	return asynq.NewTask(TypeFeedRefresh, payload, asynq.MaxRetry(2)), nil
}

type TaskHandler struct {
	ingest *ingest.Service
}

func NewTaskHandler(ingest *ingest.Service) *TaskHandler {
	return &TaskHandler{ingest: ingest}
}

func (h *TaskHandler) HandleFeedRefresh(ctx context.Context, t *asynq.Task) error {
	var payload feedRefreshPayload
	if err := jsoniter.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	src, err := feed.LookupSlug(payload.Slug)
	if err != nil {
		// Источник убрали из реестра — ретраить бессмысленно
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	updated, err := h.ingest.RefreshSource(ctx, src)
	if err != nil {
		return fmt.Errorf("refresh %s: %w", src.Name, err)
	}

	logger(ctx).Info("feed refreshed", "source", src.Name, "records", updated)

	return nil
}
