package entity

import (
	"fdrates/internal/domain/value"
	"time"
)

type RunStatus string

const (
	RunPending RunStatus = "Pending"
	RunSuccess RunStatus = "Success"
	RunFailed  RunStatus = "Failed"
)

// RunLog is the per-source ingest dashboard row, upserted after every
// refresh attempt.
type RunLog struct {
	Name            string                `json:"name"`
	InstitutionType value.InstitutionType `json:"institutionType"`
	Status          RunStatus             `json:"status"`
	RecordsUpdated  int                   `json:"recordsUpdated"`
	ErrorMessage    string                `json:"errorMessage"`
	LastRun         time.Time             `json:"lastRun"`
}
