package entity

// RateAlert is emitted when a refresh changes the best effective rate an
// institution offers.
type RateAlert struct {
	BankName       string
	PreviousBest   float64
	NewBest        float64
	RecordsUpdated int
}
