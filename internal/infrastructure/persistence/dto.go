package persistence

import (
	"time"

	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/value"
)

// rateQuoteSchema — внутренняя структура для маппинга строки БД.
type rateQuoteSchema struct {
	ID              int64     `db:"id"`
	BankName        string    `db:"bank_name"`
	FDType          string    `db:"fd_type"`
	InstitutionType string    `db:"institution_type"`
	TermMonths      int       `db:"term_months"`
	PayoutSchedule  string    `db:"payout_schedule"`
	InterestRate    float64   `db:"interest_rate"`
	AER             *float64  `db:"aer"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (s *rateQuoteSchema) toDomain() entity.RateQuote {
	return entity.RateQuote{
		ID:              s.ID,
		BankName:        s.BankName,
		FDType:          value.FDType(s.FDType),
		InstitutionType: value.InstitutionType(s.InstitutionType),
		TermMonths:      s.TermMonths,
		PayoutSchedule:  value.PayoutSchedule(s.PayoutSchedule),
		InterestRate:    s.InterestRate,
		AER:             s.AER,
		UpdatedAt:       s.UpdatedAt,
	}
}

type runLogSchema struct {
	Name            string    `db:"name"`
	InstitutionType string    `db:"institution_type"`
	Status          string    `db:"status"`
	RecordsUpdated  int       `db:"records_updated"`
	ErrorMessage    string    `db:"error_message"`
	LastRun         time.Time `db:"last_run"`
}

func fromRunLog(e entity.RunLog) runLogSchema {
	return runLogSchema{
		Name:            e.Name,
		InstitutionType: string(e.InstitutionType),
		Status:          string(e.Status),
		RecordsUpdated:  e.RecordsUpdated,
		ErrorMessage:    e.ErrorMessage,
		LastRun:         e.LastRun,
	}
}

func (s *runLogSchema) toDomain() entity.RunLog {
	return entity.RunLog{
		Name:            s.Name,
		InstitutionType: value.InstitutionType(s.InstitutionType),
		Status:          entity.RunStatus(s.Status),
		RecordsUpdated:  s.RecordsUpdated,
		ErrorMessage:    s.ErrorMessage,
		LastRun:         s.LastRun,
	}
}
