package status_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/service/status"
)

type fakeRunLogRepo struct {
	calls int
	runs  []entity.RunLog
}

func (r *fakeRunLogRepo) List(context.Context) ([]entity.RunLog, error) {
	r.calls++
	return r.runs, nil
}

func TestRunsCached(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := &fakeRunLogRepo{runs: []entity.RunLog{
		{Name: "Cargills Bank", Status: entity.RunSuccess, RecordsUpdated: 12},
	}}

	svc := status.NewService(repo, time.Minute)

	first, err := svc.Runs(ctx)
	rq.NoError(err)
	rq.Len(first, 1)

	second, err := svc.Runs(ctx)
	rq.NoError(err)
	rq.Equal(first, second)

	rq.Equal(1, repo.calls)
}
