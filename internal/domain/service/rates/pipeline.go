package rates

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"fdrates/internal/domain"
	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/value"
	"fdrates/pkg/errcodes"
)

// Filter holds the user's narrowing criteria. Zero-valued fields pass
// everything through, so each predicate stays independent of the others.
type Filter struct {
	BankName        string
	MinTermMonths   int
	FDType          value.FDType
	PayoutSchedule  value.PayoutSchedule
	InstitutionType value.InstitutionType
}

// Apply runs the predicates as sequential passes over the quote set.
// Narrowing any single criterion can only shrink the result.
func Apply(quotes []entity.RateQuote, f Filter) []entity.RateQuote {
	result := quotes

	if f.BankName != "" {
		needle := strings.ToLower(f.BankName)
		result = lo.Filter(result, func(q entity.RateQuote, _ int) bool {
			return strings.Contains(strings.ToLower(q.BankName), needle)
		})
	}

	if f.MinTermMonths > 0 {
		result = lo.Filter(result, func(q entity.RateQuote, _ int) bool {
			return q.TermMonths >= f.MinTermMonths
		})
	}

	if f.FDType != "" {
		result = lo.Filter(result, func(q entity.RateQuote, _ int) bool {
			return q.FDType == f.FDType
		})
	}

	if f.PayoutSchedule != "" {
		result = lo.Filter(result, func(q entity.RateQuote, _ int) bool {
			return q.PayoutSchedule == f.PayoutSchedule
		})
	}

	if f.InstitutionType != "" {
		result = lo.Filter(result, func(q entity.RateQuote, _ int) bool {
			return q.InstitutionType == f.InstitutionType
		})
	}

	return result
}

type SortKey string

const (
	// SortPayoutDesc orders by projected final payout, best first.
	SortPayoutDesc SortKey = "payout"
	// SortTermAsc orders by term length, shortest first.
	SortTermAsc SortKey = "term"
)

func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortPayoutDesc, SortTermAsc:
		return SortKey(s), nil
	default:
		return "", domain.NewError(errcodes.InvalidSortKey, "unknown sort key: "+s)
	}
}

// Sort orders projections in place. The sort is stable: ties keep the
// original fetch order.
func Sort(projections []Projection, key SortKey) {
	switch key {
	case SortTermAsc:
		slices.SortStableFunc(projections, func(a, b Projection) int {
			return a.Quote.TermMonths - b.Quote.TermMonths
		})
	case SortPayoutDesc:
		fallthrough
	default:
		slices.SortStableFunc(projections, func(a, b Projection) int {
			switch {
			case a.FinalPayout > b.FinalPayout:
				return -1
			case a.FinalPayout < b.FinalPayout:
				return 1
			default:
				return 0
			}
		})
	}
}
