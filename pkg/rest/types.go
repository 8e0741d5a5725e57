// Wire types for the public API. Field names follow the public-rates table
// exposed by the original data source, so existing consumers keep working.
package rest

// RateQuote is a single fixed-deposit offer as served by GET /v1/rates.
type RateQuote struct {
	ID              int64    `json:"id"`
	BankName        string   `json:"bankName"`
	FDType          string   `json:"fdType"`
	InstitutionType string   `json:"institutionType"`
	TermMonths      int      `json:"termMonths"`
	PayoutSchedule  string   `json:"payoutSchedule"`
	InterestRate    float64  `json:"interestRate"`
	AER             *float64 `json:"aer"`
}

// RunLog is one row of the ingest dashboard served by GET /v1/status.
type RunLog struct {
	Name            string `json:"name"`
	InstitutionType string `json:"institutionType"`
	Status          string `json:"status"`
	RecordsUpdated  int    `json:"recordsUpdated"`
	ErrorMessage    string `json:"errorMessage"`
	LastRun         string `json:"lastRun"`
}

// RefreshRequest triggers an out-of-schedule refresh for one source.
type RefreshRequest struct {
	Source string `json:"source" validate:"required"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
