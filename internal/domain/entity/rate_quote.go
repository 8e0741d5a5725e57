package entity

import (
	"fdrates/internal/domain/value"
	"time"
)

// RateQuote is a single fixed-deposit offer scraped from an institution.
// Quotes are immutable after ingest; a refresh replaces the whole set for
// the institution.
type RateQuote struct {
	ID              int64                 `json:"id"`
	BankName        string                `json:"bankName"`
	FDType          value.FDType          `json:"fdType"`
	InstitutionType value.InstitutionType `json:"institutionType"`
	TermMonths      int                   `json:"termMonths"`
	PayoutSchedule  value.PayoutSchedule  `json:"payoutSchedule"`
	InterestRate    float64               `json:"interestRate"`
	AER             *float64              `json:"aer,omitempty"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// EffectiveRate prefers the annual equivalent rate when the feed published
// one, otherwise falls back to the nominal rate.
func (q RateQuote) EffectiveRate() float64 {
	if q.AER != nil {
		return *q.AER
	}

	return q.InterestRate
}
