package server

import (
	"time"

	"fdrates/internal/domain/entity"
	"fdrates/pkg/rest"
)

func newRESTRateQuote(quote entity.RateQuote) rest.RateQuote {
	return rest.RateQuote{
		ID:              quote.ID,
		BankName:        quote.BankName,
		FDType:          quote.FDType.String(),
		InstitutionType: quote.InstitutionType.String(),
		TermMonths:      quote.TermMonths,
		PayoutSchedule:  quote.PayoutSchedule.String(),
		InterestRate:    quote.InterestRate,
		AER:             quote.AER,
	}
}

func newRESTRunLog(run entity.RunLog) rest.RunLog {
	return rest.RunLog{
		Name:            run.Name,
		InstitutionType: run.InstitutionType.String(),
		Status:          string(run.Status),
		RecordsUpdated:  run.RecordsUpdated,
		ErrorMessage:    run.ErrorMessage,
		LastRun:         run.LastRun.Format(time.RFC3339),
	}
}
