package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInstallments_Monthly(t *testing.T) {
	agreement := &TenderAgreement{
		ID:           7,
		StartDate:    date(2024, time.January, 1),
		EndDate:      date(2025, time.January, 1),
		LicenseFee:   decimal.NewFromInt(12000),
		TaxFrequency: FrequencyMonthly,
	}

	installments := GenerateInstallments(agreement)

	require.Len(t, installments, 12)
	for i, inst := range installments {
		assert.Equal(t, int64(7), inst.AgreementID)
		assert.True(t, decimal.NewFromInt(1000).Equal(inst.Amount), "installment %d amount = %s", i, inst.Amount)
		assert.Equal(t, InstallmentPending, inst.Status)
		assert.Equal(t, date(2024, time.Month(i+1), 1), inst.DueDate)
	}
}

func TestGenerateInstallments_Quarterly(t *testing.T) {
	agreement := &TenderAgreement{
		StartDate:    date(2024, time.January, 1),
		EndDate:      date(2025, time.January, 1),
		LicenseFee:   decimal.NewFromInt(12000),
		TaxFrequency: FrequencyQuarterly,
	}

	installments := GenerateInstallments(agreement)

	require.Len(t, installments, 4)
	for _, inst := range installments {
		assert.True(t, decimal.NewFromInt(3000).Equal(inst.Amount))
	}
}

func TestGenerateInstallments_EndBoundaryExcluded(t *testing.T) {
	// The period boundary itself does not get an installment: a one-year
	// yearly agreement yields exactly one, due at the start date.
	agreement := &TenderAgreement{
		StartDate:    date(2024, time.April, 1),
		EndDate:      date(2025, time.April, 1),
		LicenseFee:   decimal.NewFromInt(50000),
		TaxFrequency: FrequencyYearly,
	}

	installments := GenerateInstallments(agreement)

	require.Len(t, installments, 1)
	assert.Equal(t, date(2024, time.April, 1), installments[0].DueDate)
	assert.True(t, decimal.NewFromInt(50000).Equal(installments[0].Amount))
}

func TestGenerateInstallments_Rounding(t *testing.T) {
	agreement := &TenderAgreement{
		StartDate:    date(2024, time.January, 1),
		EndDate:      date(2025, time.January, 1),
		LicenseFee:   decimal.NewFromInt(10000),
		TaxFrequency: FrequencyMonthly,
	}

	installments := GenerateInstallments(agreement)

	require.Len(t, installments, 12)
	want := decimal.RequireFromString("833.33")
	assert.True(t, want.Equal(installments[0].Amount), "got %s", installments[0].Amount)
}

func TestGenerateInstallments_HalfYearly(t *testing.T) {
	agreement := &TenderAgreement{
		StartDate:    date(2024, time.January, 15),
		EndDate:      date(2025, time.January, 15),
		LicenseFee:   decimal.NewFromInt(8000),
		TaxFrequency: FrequencyHalfYearly,
	}

	installments := GenerateInstallments(agreement)

	require.Len(t, installments, 2)
	assert.Equal(t, date(2024, time.January, 15), installments[0].DueDate)
	assert.Equal(t, date(2024, time.July, 15), installments[1].DueDate)
	assert.True(t, decimal.NewFromInt(4000).Equal(installments[0].Amount))
}

func TestDeriveAgreementStatus(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		name    string
		endDate time.Time
		want    AgreementStatus
	}{
		{"far future is active", date(2025, time.June, 15), AgreementActive},
		{"within 30 days is expiring soon", date(2024, time.July, 1), AgreementExpiringSoon},
		{"exactly 30 days out is expiring soon", date(2024, time.July, 15), AgreementExpiringSoon},
		{"ends today is expiring soon", now, AgreementExpiringSoon},
		{"past is expired", date(2024, time.June, 14), AgreementExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAgreementStatus(tt.endDate, now))
		})
	}
}

func TestDeriveInstallmentStatus(t *testing.T) {
	now := date(2024, time.June, 15)

	assert.Equal(t, InstallmentOverdue, DeriveInstallmentStatus(InstallmentPending, date(2024, time.June, 1), now))
	assert.Equal(t, InstallmentPending, DeriveInstallmentStatus(InstallmentPending, now, now))
	assert.Equal(t, InstallmentPending, DeriveInstallmentStatus(InstallmentPending, date(2024, time.July, 1), now))
	// paid never becomes overdue
	assert.Equal(t, InstallmentPaid, DeriveInstallmentStatus(InstallmentPaid, date(2024, time.January, 1), now))
}

func TestTermsEqual(t *testing.T) {
	agreement := &TenderAgreement{
		StartDate:    date(2024, time.January, 1),
		EndDate:      date(2025, time.January, 1),
		LicenseFee:   decimal.NewFromInt(12000),
		TaxFrequency: FrequencyMonthly,
	}

	assert.True(t, agreement.TermsEqual(
		date(2024, time.January, 1), date(2025, time.January, 1),
		decimal.NewFromInt(12000), FrequencyMonthly,
	))
	assert.False(t, agreement.TermsEqual(
		date(2024, time.January, 1), date(2025, time.January, 1),
		decimal.NewFromInt(15000), FrequencyMonthly,
	))
	assert.False(t, agreement.TermsEqual(
		date(2024, time.January, 1), date(2025, time.January, 1),
		decimal.NewFromInt(12000), FrequencyQuarterly,
	))
}
