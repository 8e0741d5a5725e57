package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/value"
	"fdrates/pkg/rest"
	"fdrates/pkg/tests"
)

type fakeRatesService struct {
	quotes []entity.RateQuote
	err    error
}

func (f *fakeRatesService) List(context.Context) ([]entity.RateQuote, error) {
	return f.quotes, f.err
}

type fakeStatusService struct {
	runs []entity.RunLog
}

func (f *fakeStatusService) Runs(context.Context) ([]entity.RunLog, error) {
	return f.runs, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newTestAPI(t *testing.T, rates ratesService, status statusService, enqueuer refreshEnqueuer) tests.APIClient {
	t.Helper()

	r := chi.NewRouter()
	NewServer(NewRatesServer(rates), NewStatusServer(status, enqueuer)).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return tests.NewAPIClient(srv.URL, srv.Client())
}

func TestGetV1Rates(t *testing.T) {
	aer := 15.2
	rates := &fakeRatesService{quotes: []entity.RateQuote{
		{
			ID:              1,
			BankName:        "Sampath Bank",
			FDType:          value.FDTypeStandard,
			InstitutionType: value.InstitutionBank,
			TermMonths:      12,
			PayoutSchedule:  value.PayoutAtMaturity,
			InterestRate:    14.5,
			AER:             &aer,
		},
		{
			ID:              2,
			BankName:        "LOLC Finance",
			FDType:          value.FDTypeSeniorCitizen,
			InstitutionType: value.InstitutionFinanceCompany,
			TermMonths:      6,
			PayoutSchedule:  value.PayoutMonthly,
			InterestRate:    13.0,
		},
	}}

	api := newTestAPI(t, rates, &fakeStatusService{}, &fakeEnqueuer{})

	var got []rest.RateQuote
	resp, err := api.Get(context.Background(), "/v1/rates", nil, &got, nil)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	require.Len(t, got, 2)
	require.Equal(t, "Sampath Bank", got[0].BankName)
	require.NotNil(t, got[0].AER)
	require.InDelta(t, 15.2, *got[0].AER, 1e-9)
	require.Nil(t, got[1].AER)
	require.Equal(t, "Senior Citizen", got[1].FDType)
}

func TestGetV1Status(t *testing.T) {
	status := &fakeStatusService{runs: []entity.RunLog{
		{
			Name:            "Sampath Bank",
			InstitutionType: value.InstitutionBank,
			Status:          entity.RunSuccess,
			RecordsUpdated:  12,
			ErrorMessage:    "N/A",
		},
	}}

	api := newTestAPI(t, &fakeRatesService{}, status, &fakeEnqueuer{})

	var got []rest.RunLog
	resp, err := api.Get(context.Background(), "/v1/status", nil, &got, nil)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, got, 1)
	require.Equal(t, "Success", got[0].Status)
}

func TestPostV1Refresh(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	api := newTestAPI(t, &fakeRatesService{}, &fakeStatusService{}, enqueuer)

	resp, err := api.Post(context.Background(), "/v1/refresh", nil,
		rest.RefreshRequest{Source: "sampath-bank"}, nil, nil)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, enqueuer.tasks, 1)
	require.Equal(t, "feed:refresh", enqueuer.tasks[0].Type())
}

func TestPostV1Refresh_Invalid(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	api := newTestAPI(t, &fakeRatesService{}, &fakeStatusService{}, enqueuer)

	t.Run("missing source", func(t *testing.T) {
		var errResp rest.Error
		resp, err := api.PostJSON(context.Background(), "/v1/refresh", nil, `{}`, nil, &errResp)
		require.NoError(t, err)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, rest.ErrorCode("ValidationError"), errResp.Code)
		require.Empty(t, enqueuer.tasks)
	})

	t.Run("unknown source", func(t *testing.T) {
		var errResp rest.Error
		resp, err := api.Post(context.Background(), "/v1/refresh", nil,
			rest.RefreshRequest{Source: "no-such-bank"}, nil, &errResp)
		require.NoError(t, err)

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, rest.ErrorCode("SourceNotFound"), errResp.Code)
		require.Empty(t, enqueuer.tasks)
	})
}
