package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/hibiken/asynq"

	"fdrates/internal/domain/entity"
	"fdrates/internal/infrastructure/feed"
	"fdrates/internal/worker"
	"fdrates/pkg/errcodes"
	"fdrates/pkg/httpx/reply"
	"fdrates/pkg/httpx/req"
	"fdrates/pkg/lox"
	"fdrates/pkg/rest"
)

type statusService interface {
	Runs(context.Context) ([]entity.RunLog, error)
}

type refreshEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type StatusServer struct {
	statusService statusService
	enqueuer      refreshEnqueuer
}

func NewStatusServer(statusService statusService, enqueuer refreshEnqueuer) StatusServer {
	return StatusServer{
		statusService: statusService,
		enqueuer:      enqueuer,
	}
}

func (s StatusServer) getV1Status(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	runs, err := s.statusService.Runs(ctx)
	if err != nil {
		return fmt.Errorf("statusService.Runs: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(runs, newRESTRunLog))

	return nil
}

func (s StatusServer) postV1Refresh(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.RefreshRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	src, err := feed.LookupSlug(request.Source)
	if err != nil {
		return failure.NewNotFoundError(
			fmt.Errorf("feed.LookupSlug: %w", err).Error(),
			failure.WithCode(errcodes.SourceNotFound),
			failure.WithDescription("Unknown feed source"),
		)
	}

	task, err := worker.NewFeedRefreshTask(src)
	if err != nil {
		return fmt.Errorf("worker.NewFeedRefreshTask: %w", err)
	}

	if _, err := s.enqueuer.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueuer.EnqueueContext: %w", err)
	}

	reply.OK(w)

	return nil
}
