package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxFrequency how often tax installments come due under an agreement
type TaxFrequency string

const (
	FrequencyMonthly    TaxFrequency = "monthly"
	FrequencyQuarterly  TaxFrequency = "quarterly"
	FrequencyHalfYearly TaxFrequency = "half_yearly"
	FrequencyYearly     TaxFrequency = "yearly"
	FrequencyOneTime    TaxFrequency = "one_time"
)

// AgreementStatus derived at read time from the agreement's end date
type AgreementStatus string

const (
	AgreementActive       AgreementStatus = "active"
	AgreementExpiringSoon AgreementStatus = "expiring_soon"
	AgreementExpired      AgreementStatus = "expired"
)

// InstallmentStatus stored status of a tax installment.
// Overdue is never stored, it is derived at read time.
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
)

// TenderAgreement a contractual license term with an annualized fee
type TenderAgreement struct {
	ID        int64
	Name      string
	Authority string

	StartDate    time.Time
	EndDate      time.Time
	LicenseFee   decimal.Decimal // annualized
	TaxFrequency TaxFrequency

	Deleted   bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TermsEqual reports whether the financial terms of the agreement match
// the given ones. Installments are regenerated only when terms change.
func (a *TenderAgreement) TermsEqual(start, end time.Time, fee decimal.Decimal, freq TaxFrequency) bool {
	return DateOnly(a.StartDate).Equal(DateOnly(start)) &&
		DateOnly(a.EndDate).Equal(DateOnly(end)) &&
		a.LicenseFee.Equal(fee) &&
		a.TaxFrequency == freq
}

// TaxInstallment one periodic amount owed under a tender agreement
type TaxInstallment struct {
	ID          int64
	AgreementID int64
	DueDate     time.Time
	Amount      decimal.Decimal
	Status      InstallmentStatus

	Deleted   bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StepMonths returns the amortization step of the frequency in months.
func (f TaxFrequency) StepMonths() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencyHalfYearly:
		return 6
	default: // yearly, one_time
		return 12
	}
}

// ValidTaxFrequency reports whether f is a known frequency.
func ValidTaxFrequency(f TaxFrequency) bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyHalfYearly, FrequencyYearly, FrequencyOneTime:
		return true
	}
	return false
}

// DeriveAgreementStatus computes the agreement status from its end date:
// expired if past, expiring_soon within the 30-day window, active otherwise.
func DeriveAgreementStatus(endDate, now time.Time) AgreementStatus {
	endDate, now = DateOnly(endDate), DateOnly(now)

	if endDate.Before(now) {
		return AgreementExpired
	}
	if !endDate.After(now.AddDate(0, 0, ExpiringSoonWindowDays)) {
		return AgreementExpiringSoon
	}
	return AgreementActive
}

// DeriveInstallmentStatus resolves the read-time status of an installment:
// a pending installment past its due date reads as overdue.
func DeriveInstallmentStatus(stored InstallmentStatus, dueDate, now time.Time) InstallmentStatus {
	if stored == InstallmentPending && DateOnly(dueDate).Before(DateOnly(now)) {
		return InstallmentOverdue
	}
	return stored
}

// GenerateInstallments amortizes the agreement's annualized license fee
// into periodic pending installments. One installment is emitted at each
// cursor date starting from the agreement start, advancing by the
// frequency step, while the cursor stays strictly before the end date.
// Each installment amount is licenseFee / (12 / step), rounded to 2
// decimal places.
func GenerateInstallments(a *TenderAgreement) []TaxInstallment {
	step := a.TaxFrequency.StepMonths()
	perInstallment := a.LicenseFee.
		Div(decimal.NewFromInt(int64(12 / step))).
		Round(2)

	installments := make([]TaxInstallment, 0)
	for cursor := DateOnly(a.StartDate); cursor.Before(DateOnly(a.EndDate)); cursor = cursor.AddDate(0, step, 0) {
		installments = append(installments, TaxInstallment{
			AgreementID: a.ID,
			DueDate:     cursor,
			Amount:      perInstallment,
			Status:      InstallmentPending,
		})
	}

	return installments
}
