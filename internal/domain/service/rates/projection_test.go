package rates_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/service/rates"
	"fdrates/internal/domain/value"
)

func ptr(f float64) *float64 { return &f }

func TestFinalPayout(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		amount     float64
		rate       float64
		termMonths int
	}{
		{name: "One year", amount: 100_000, rate: 14.5, termMonths: 12},
		{name: "Six months", amount: 100_000, rate: 12.0, termMonths: 6},
		{name: "Five years", amount: 250_000, rate: 9.75, termMonths: 60},
		{name: "Zero amount", amount: 0, rate: 14.5, termMonths: 12},
		{name: "Negative amount", amount: -5_000, rate: 14.5, termMonths: 12},
		{name: "Zero rate", amount: 100_000, rate: 0, termMonths: 24},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			want := tc.amount * math.Pow(1+tc.rate/100, float64(tc.termMonths)/12)

			rq.Equal(want, rates.FinalPayout(tc.amount, tc.rate, tc.termMonths))
		})
	}
}

func TestProjectPrefersAER(t *testing.T) {
	rq := require.New(t)

	quotes := []entity.RateQuote{
		{
			BankName:       "Cargills Bank",
			TermMonths:     12,
			PayoutSchedule: value.PayoutAtMaturity,
			InterestRate:   14.5,
			AER:            ptr(15.25),
		},
		{
			BankName:       "Cargills Bank",
			TermMonths:     12,
			PayoutSchedule: value.PayoutAnnually,
			InterestRate:   14.5,
		},
	}

	projections := rates.Project(quotes, 100_000)
	rq.Len(projections, 2)

	rq.Equal(15.25, projections[0].EffectiveRate)
	rq.Equal(14.5, projections[1].EffectiveRate)
	rq.Equal(rates.FinalPayout(100_000, 15.25, 12), projections[0].FinalPayout)
	rq.Greater(projections[0].FinalPayout, projections[1].FinalPayout)
}

func TestProjectEmpty(t *testing.T) {
	rq := require.New(t)

	rq.Empty(rates.Project(nil, 100_000))
}
