package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const ratesBody = `[
	{"id":1,"bankName":"Sampath Bank","fdType":"Standard","institutionType":"Bank","termMonths":12,"payoutSchedule":"At Maturity","interestRate":14.5,"aer":15.2}
]`

func execute(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestRunView_AmountEdgeCases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(ratesBody))
	}))
	t.Cleanup(srv.Close)

	t.Run("zero amount renders a degenerate payout", func(t *testing.T) {
		require.NoError(t, execute(t, "--server", srv.URL, "--amount", "0"))
	})

	t.Run("negative amount renders a degenerate payout", func(t *testing.T) {
		require.NoError(t, execute(t, "--server", srv.URL, "--amount=-5000"))
	})

	t.Run("unparsable amount is rejected", func(t *testing.T) {
		require.Error(t, execute(t, "--server", srv.URL, "--amount", "lots"))
	})

	t.Run("unknown sort key is rejected", func(t *testing.T) {
		require.Error(t, execute(t, "--server", srv.URL, "--amount", "100000", "--sort", "rate"))
	})
}
