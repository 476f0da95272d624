package create_agreement

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

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeAgreementRepo struct {
	created *domain.TenderAgreement
	err     error
}

func (f *fakeAgreementRepo) Create(_ context.Context, a *domain.TenderAgreement) (*domain.TenderAgreement, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *a
	out.ID = 11
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

type fakeScheduler struct {
	generatedFor *domain.TenderAgreement
	err          error
}

func (f *fakeScheduler) GenerateForAgreement(_ context.Context, a *domain.TenderAgreement) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.generatedFor = a
	return len(domain.GenerateInstallments(a)), nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		Name:         "City Gateway Hoardings 2026",
		Authority:    "Pune Municipal Corporation",
		StartDate:    date(2026, time.April, 1),
		EndDate:      date(2027, time.March, 31),
		LicenseFee:   decimal.NewFromInt(120000),
		TaxFrequency: string(domain.FrequencyQuarterly),
	}
}

func newTestUseCase(repo *fakeAgreementRepo, taxes *fakeScheduler, now time.Time) *UseCase {
	uc := NewUseCase(repo, taxes, nopLogger{})
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecute_CreatesAgreementWithSchedule(t *testing.T) {
	repo := &fakeAgreementRepo{}
	taxes := &fakeScheduler{}
	uc := newTestUseCase(repo, taxes, date(2026, time.June, 1))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, string(domain.AgreementActive), resp.Status)
	// quarterly over one year: Apr, Jul, Oct, Jan
	assert.Equal(t, 4, resp.InstallmentCount)

	require.NotNil(t, taxes.generatedFor)
	assert.Equal(t, int64(11), taxes.generatedFor.ID)
}

func TestExecute_ExpiringSoonStatus(t *testing.T) {
	uc := newTestUseCase(&fakeAgreementRepo{}, &fakeScheduler{}, date(2027, time.March, 15))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.AgreementExpiringSoon), resp.Status)
}

func TestExecute_GenerationFailureSurfaces(t *testing.T) {
	taxes := &fakeScheduler{err: errors.New("insert failed")}
	uc := newTestUseCase(&fakeAgreementRepo{}, taxes, date(2026, time.June, 1))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(&fakeAgreementRepo{}, &fakeScheduler{}, date(2026, time.June, 1))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing name", func(r *Request) { r.Name = "" }},
		{"start equals end", func(r *Request) { r.EndDate = r.StartDate }},
		{"start after end", func(r *Request) { r.StartDate, r.EndDate = r.EndDate, r.StartDate }},
		{"negative fee", func(r *Request) { r.LicenseFee = decimal.NewFromInt(-1) }},
		{"unknown frequency", func(r *Request) { r.TaxFrequency = "weekly" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
