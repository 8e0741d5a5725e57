package rates

import (
	"math"

	"github.com/samber/lo"

	"fdrates/internal/domain/entity"
)

// Projection is a quote paired with its computed payout for the chosen
// investment amount.
type Projection struct {
	Quote         entity.RateQuote
	EffectiveRate float64
	FinalPayout   float64
}

// FinalPayout compounds the effective annual rate over the term:
//
//	amount × (1 + rate/100)^(termMonths/12)
//
// A zero or negative amount produces a degenerate payout; it is not
// rejected here, formatting is the renderer's problem.
func FinalPayout(amount, effectiveRate float64, termMonths int) float64 {
	return amount * math.Pow(1+effectiveRate/100, float64(termMonths)/12)
}

// Project computes payouts for every quote, keeping the input order.
func Project(quotes []entity.RateQuote, amount float64) []Projection {
	return lo.Map(quotes, func(q entity.RateQuote, _ int) Projection {
		rate := q.EffectiveRate()

		return Projection{
			Quote:         q,
			EffectiveRate: rate,
			FinalPayout:   FinalPayout(amount, rate, q.TermMonths),
		}
	})
}
