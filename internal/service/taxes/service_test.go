package taxes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeInstallmentRepo struct {
	created   []domain.TaxInstallment
	listed    []*domain.TaxInstallment
	createErr error
	deleteErr error
	listErr   error

	deletedAgreement int64
	deleteOrder      int
	createOrder      int
	opCounter        int
}

func (f *fakeInstallmentRepo) BulkCreate(_ context.Context, installments []domain.TaxInstallment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.opCounter++
	f.createOrder = f.opCounter
	f.created = installments
	return nil
}

func (f *fakeInstallmentRepo) ListByAgreement(context.Context, int64) ([]*domain.TaxInstallment, error) {
	return f.listed, f.listErr
}

func (f *fakeInstallmentRepo) DeletePendingByAgreement(_ context.Context, agreementID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.opCounter++
	f.deleteOrder = f.opCounter
	f.deletedAgreement = agreementID
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testAgreement(freq domain.TaxFrequency) *domain.TenderAgreement {
	return &domain.TenderAgreement{
		ID:           11,
		StartDate:    date(2026, time.April, 1),
		EndDate:      date(2027, time.March, 31),
		LicenseFee:   decimal.NewFromInt(120000),
		TaxFrequency: freq,
	}
}

func TestGenerateForAgreement_QuarterlySchedule(t *testing.T) {
	repo := &fakeInstallmentRepo{}
	s := NewService(repo, nopLogger{})

	count, err := s.GenerateForAgreement(context.Background(), testAgreement(domain.FrequencyQuarterly))
	require.NoError(t, err)

	assert.Equal(t, 4, count)
	require.Len(t, repo.created, 4)
	assert.Equal(t, date(2026, time.April, 1), repo.created[0].DueDate)
	assert.Equal(t, date(2027, time.January, 1), repo.created[3].DueDate)
	for _, inst := range repo.created {
		assert.Equal(t, int64(11), inst.AgreementID)
		assert.Equal(t, domain.InstallmentPending, inst.Status)
		assert.True(t, inst.Amount.Equal(decimal.NewFromInt(30000)))
	}
}

func TestGenerateForAgreement_OneTime(t *testing.T) {
	repo := &fakeInstallmentRepo{}
	s := NewService(repo, nopLogger{})

	count, err := s.GenerateForAgreement(context.Background(), testAgreement(domain.FrequencyOneTime))
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].Amount.Equal(decimal.NewFromInt(120000)))
}

func TestGenerateForAgreement_InsertFailure(t *testing.T) {
	repo := &fakeInstallmentRepo{createErr: errors.New("insert failed")}
	s := NewService(repo, nopLogger{})

	_, err := s.GenerateForAgreement(context.Background(), testAgreement(domain.FrequencyMonthly))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestRegenerateForAgreement_WipesPendingBeforeInsert(t *testing.T) {
	repo := &fakeInstallmentRepo{}
	s := NewService(repo, nopLogger{})

	err := s.RegenerateForAgreement(context.Background(), testAgreement(domain.FrequencyHalfYearly))
	require.NoError(t, err)

	assert.Equal(t, int64(11), repo.deletedAgreement)
	assert.Less(t, repo.deleteOrder, repo.createOrder)
	require.Len(t, repo.created, 2)
	assert.True(t, repo.created[0].Amount.Equal(decimal.NewFromInt(60000)))
}

func TestRegenerateForAgreement_WipeFailureSkipsInsert(t *testing.T) {
	repo := &fakeInstallmentRepo{deleteErr: errors.New("delete failed")}
	s := NewService(repo, nopLogger{})

	err := s.RegenerateForAgreement(context.Background(), testAgreement(domain.FrequencyMonthly))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.created)
}

func TestListForAgreement_DerivesOverdue(t *testing.T) {
	now := date(2026, time.August, 1)
	repo := &fakeInstallmentRepo{listed: []*domain.TaxInstallment{
		{ID: 1, DueDate: date(2026, time.April, 1), Status: domain.InstallmentPending},
		{ID: 2, DueDate: date(2026, time.April, 1), Status: domain.InstallmentPaid},
		{ID: 3, DueDate: date(2026, time.October, 1), Status: domain.InstallmentPending},
	}}
	s := NewService(repo, nopLogger{})

	installments, err := s.ListForAgreement(context.Background(), 11, now)
	require.NoError(t, err)
	require.Len(t, installments, 3)

	// pending past due reads as overdue; paid is never touched
	assert.Equal(t, domain.InstallmentOverdue, installments[0].Status)
	assert.Equal(t, domain.InstallmentPaid, installments[1].Status)
	assert.Equal(t, domain.InstallmentPending, installments[2].Status)
}

func TestListForAgreement_RepositoryError(t *testing.T) {
	repo := &fakeInstallmentRepo{listErr: errors.New("query failed")}
	s := NewService(repo, nopLogger{})

	_, err := s.ListForAgreement(context.Background(), 11, date(2026, time.August, 1))
	assert.ErrorIs(t, err, ErrInternal)
}
