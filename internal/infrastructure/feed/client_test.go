package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fdrates/internal/domain"
	"fdrates/internal/domain/value"
	"fdrates/internal/infrastructure/feed"
	"fdrates/pkg/errcodes"
)

func TestClientFetch(t *testing.T) {
	rq := require.New(t)

	src := feed.Source{
		Name:            "Cargills Bank",
		Slug:            "cargills-bank",
		InstitutionType: value.InstitutionBank,
	}

	const payload = `[
		{"fdType":"Standard","term":"1 Year","payoutSchedule":"At Maturity","interestRate":"14.5% p.a.","aer":"15.25"},
		{"fdType":"Standard","term":"6 Months","payoutSchedule":"Monthly","interestRate":"12.0","aer":"-"},
		{"fdType":"Senior Citizen","term":"1 Year","payoutSchedule":"At Maturity","interestRate":"–","aer":"-"},
		{"fdType":"Standard","term":"call deposit","payoutSchedule":"Monthly","interestRate":"10.0","aer":"-"}
	]`

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/cargills-bank.json", r.URL.Path)
		rq.Equal("Bearer service-token", r.Header.Get("Authorization"))

		w.Write([]byte(payload))
	}))
	defer httpServer.Close()

	client := feed.NewClient(httpServer.URL, "service-token", time.Second)

	quotes, err := client.Fetch(context.Background(), src)
	rq.NoError(err)

	// Rows with no rate or an unparsable term are dropped.
	rq.Len(quotes, 2)

	rq.Equal("Cargills Bank", quotes[0].BankName)
	rq.Equal(value.InstitutionBank, quotes[0].InstitutionType)
	rq.Equal(12, quotes[0].TermMonths)
	rq.Equal(14.5, quotes[0].InterestRate)
	rq.NotNil(quotes[0].AER)
	rq.Equal(15.25, *quotes[0].AER)

	rq.Equal(6, quotes[1].TermMonths)
	rq.Nil(quotes[1].AER)
}

func TestClientFetchErrors(t *testing.T) {
	rq := require.New(t)

	src := feed.Source{Name: "Sampath Bank", Slug: "sampath-bank", InstitutionType: value.InstitutionBank}

	t.Run("Non-200 status", func(*testing.T) {
		httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer httpServer.Close()

		client := feed.NewClient(httpServer.URL, "", time.Second)

		_, err := client.Fetch(context.Background(), src)
		rq.Error(err)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.FeedUnavailable, code)
	})

	t.Run("Non-array payload", func(*testing.T) {
		httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"error":"nope"}`))
		}))
		defer httpServer.Close()

		client := feed.NewClient(httpServer.URL, "", time.Second)

		_, err := client.Fetch(context.Background(), src)
		rq.Error(err)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.FeedMalformed, code)
	})
}
