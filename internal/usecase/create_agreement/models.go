package create_agreement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request create agreement request
type Request struct {
	Name         string
	Authority    string
	StartDate    time.Time
	EndDate      time.Time
	LicenseFee   decimal.Decimal // annualized
	TaxFrequency string
}

// Response created agreement with its generated schedule size
type Response struct {
	ID               int64
	Name             string
	Authority        string
	StartDate        time.Time
	EndDate          time.Time
	LicenseFee       decimal.Decimal
	TaxFrequency     string
	Status           string
	InstallmentCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
