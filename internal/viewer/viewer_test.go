package viewer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"fdrates/internal/domain/service/rates"
	"fdrates/internal/domain/value"
)

const ratesBody = `[
	{"id":1,"bankName":"Sampath Bank","fdType":"Standard","institutionType":"Bank","termMonths":12,"payoutSchedule":"At Maturity","interestRate":14.5,"aer":15.2},
	{"id":2,"bankName":"LOLC Finance","fdType":"Senior Citizen","institutionType":"Finance Company","termMonths":6,"payoutSchedule":"Monthly","interestRate":13.0,"aer":null}
]`

func newRatesServer(t *testing.T, status int, body string) *Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/rates", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, time.Second)
}

func TestViewerRun(t *testing.T) {
	var out strings.Builder
	v := New(newRatesServer(t, http.StatusOK, ratesBody), &out)

	err := v.Run(context.Background(), Options{
		Amount: decimal.NewFromInt(100000),
		Sort:   rates.SortPayoutDesc,
	})
	require.NoError(t, err)

	rendered := out.String()
	require.Contains(t, rendered, "Sampath Bank")
	require.Contains(t, rendered, "LOLC Finance")
	// 100000 × 1.152 over one year, AER wins over the nominal rate
	require.Contains(t, rendered, "115200.00")
	// Sampath's payout is higher, so it sorts first
	require.Less(t,
		strings.Index(rendered, "Sampath Bank"),
		strings.Index(rendered, "LOLC Finance"),
	)
}

func TestViewerRun_ZeroAmount(t *testing.T) {
	var out strings.Builder
	v := New(newRatesServer(t, http.StatusOK, ratesBody), &out)

	err := v.Run(context.Background(), Options{
		Amount: decimal.Zero,
		Sort:   rates.SortPayoutDesc,
	})
	require.NoError(t, err)

	// Degenerate but rendered: every payout is 0 × growth = 0.
	rendered := out.String()
	require.Contains(t, rendered, "Sampath Bank")
	require.Contains(t, rendered, "0.00")
	require.NotContains(t, rendered, ErrorBanner)
}

func TestViewerRun_NoMatches(t *testing.T) {
	var out strings.Builder
	v := New(newRatesServer(t, http.StatusOK, ratesBody), &out)

	err := v.Run(context.Background(), Options{
		Amount: decimal.NewFromInt(100000),
		Filter: rates.Filter{FDType: value.FDType("Standard"), PayoutSchedule: value.PayoutSchedule("Monthly")},
		Sort:   rates.SortPayoutDesc,
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), EmptyResult)
}

func TestViewerRun_GenericBanner(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"code":"InternalServerError"}`},
		{name: "malformed body", status: http.StatusOK, body: `{"not":"a list"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			v := New(newRatesServer(t, tc.status, tc.body), &out)

			err := v.Run(context.Background(), Options{
				Amount: decimal.NewFromInt(100000),
				Sort:   rates.SortPayoutDesc,
			})
			require.Error(t, err)
			require.Contains(t, out.String(), ErrorBanner)
			require.NotContains(t, out.String(), "500")
		})
	}
}

func TestViewerRun_Unreachable(t *testing.T) {
	var out strings.Builder
	v := New(NewClient("http://127.0.0.1:1", time.Second), &out)

	err := v.Run(context.Background(), Options{
		Amount: decimal.NewFromInt(100000),
		Sort:   rates.SortPayoutDesc,
	})
	require.Error(t, err)
	require.Contains(t, out.String(), ErrorBanner)
}
