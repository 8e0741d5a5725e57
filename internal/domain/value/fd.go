package value

// Vocabularies are open sets: the feeds occasionally introduce new labels
// (e.g. "Non-Senior Citizen"), so unknown values pass through unchanged.

type FDType string

const (
	FDTypeStandard      FDType = "Standard"
	FDTypeSeniorCitizen FDType = "Senior Citizen"
)

func (t FDType) String() string {
	return string(t)
}

type PayoutSchedule string

const (
	PayoutAtMaturity PayoutSchedule = "At Maturity"
	PayoutMonthly    PayoutSchedule = "Monthly"
	PayoutAnnually   PayoutSchedule = "Annually"
)

func (p PayoutSchedule) String() string {
	return string(p)
}

type InstitutionType string

const (
	InstitutionBank           InstitutionType = "Bank"
	InstitutionFinanceCompany InstitutionType = "Finance Company"
)

func (i InstitutionType) String() string {
	return string(i)
}
