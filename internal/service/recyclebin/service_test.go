package recyclebin

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	customerRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/customer"
	"github.com/skyreach/OOH-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookings struct {
	all []*domain.Booking

	restoredID    int64
	hardDeletedID int64
	restoreErr    error
}

func (f *fakeBookings) ListAll(context.Context) ([]*domain.Booking, error) { return f.all, nil }
func (f *fakeBookings) ListDeleted(context.Context) ([]*domain.Booking, error) {
	deleted := make([]*domain.Booking, 0)
	for _, b := range f.all {
		if b.Deleted {
			deleted = append(deleted, b)
		}
	}
	return deleted, nil
}
func (f *fakeBookings) Restore(_ context.Context, id int64) error {
	if f.restoreErr != nil {
		return f.restoreErr
	}
	f.restoredID = id
	return nil
}
func (f *fakeBookings) HardDelete(_ context.Context, id int64) error {
	f.hardDeletedID = id
	return nil
}

type fakeMedia struct {
	deleted []*domain.MediaUnit

	restoredID    int64
	hardDeletedID int64
}

func (f *fakeMedia) ListDeleted(context.Context) ([]*domain.MediaUnit, error) {
	return f.deleted, nil
}
func (f *fakeMedia) Restore(_ context.Context, id int64) error { f.restoredID = id; return nil }
func (f *fakeMedia) HardDelete(_ context.Context, id int64) error {
	f.hardDeletedID = id
	return nil
}

type fakeCustomers struct {
	deleted []*domain.Customer

	restoredID    int64
	hardDeletedID int64
	restoreErr    error
}

func (f *fakeCustomers) ListDeleted(context.Context) ([]*domain.Customer, error) {
	return f.deleted, nil
}
func (f *fakeCustomers) Restore(_ context.Context, id int64) error {
	if f.restoreErr != nil {
		return f.restoreErr
	}
	f.restoredID = id
	return nil
}
func (f *fakeCustomers) HardDelete(_ context.Context, id int64) error {
	f.hardDeletedID = id
	return nil
}

type fakeAgreements struct {
	deleted   []*domain.TenderAgreement
	purgeable []*domain.TenderAgreement

	gotCutoff      time.Time
	hardDeletedIDs []int64
	restoredID     int64
}

func (f *fakeAgreements) ListDeleted(context.Context) ([]*domain.TenderAgreement, error) {
	return f.deleted, nil
}
func (f *fakeAgreements) ListPurgeable(_ context.Context, cutoff time.Time) ([]*domain.TenderAgreement, error) {
	f.gotCutoff = cutoff
	return f.purgeable, nil
}
func (f *fakeAgreements) Restore(_ context.Context, id int64) error { f.restoredID = id; return nil }
func (f *fakeAgreements) HardDelete(_ context.Context, id int64) error {
	f.hardDeletedIDs = append(f.hardDeletedIDs, id)
	return nil
}

type fakeInstallments struct {
	deleted []*domain.TaxInstallment

	purged        int64
	gotCutoff     time.Time
	restoredID    int64
	hardDeletedID int64
}

func (f *fakeInstallments) ListDeleted(context.Context) ([]*domain.TaxInstallment, error) {
	return f.deleted, nil
}
func (f *fakeInstallments) PurgeExpired(_ context.Context, cutoff time.Time) (int64, error) {
	f.gotCutoff = cutoff
	return f.purged, nil
}
func (f *fakeInstallments) Restore(_ context.Context, id int64) error { f.restoredID = id; return nil }
func (f *fakeInstallments) HardDelete(_ context.Context, id int64) error {
	f.hardDeletedID = id
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(b *fakeBookings, m *fakeMedia, c *fakeCustomers, a *fakeAgreements, i *fakeInstallments) *Service {
	return NewService(b, m, c, a, i, nopLogger{})
}

func emptyFakes() (*fakeBookings, *fakeMedia, *fakeCustomers, *fakeAgreements, *fakeInstallments) {
	return &fakeBookings{}, &fakeMedia{}, &fakeCustomers{}, &fakeAgreements{}, &fakeInstallments{}
}

func TestListDeleted_AggregatesAllTypesNewestFirst(t *testing.T) {
	del1 := date(2026, time.August, 10)
	del2 := date(2026, time.August, 20)
	del3 := date(2026, time.August, 15)

	bookings := &fakeBookings{all: []*domain.Booking{
		{ID: 1, MediaID: 7, StartDate: date(2026, time.April, 1), EndDate: date(2026, time.April, 30)},
		{ID: 2, MediaID: 7, StartDate: date(2026, time.May, 1), EndDate: date(2026, time.May, 31),
			Deleted: true, DeletedAt: &del1},
	}}
	media := &fakeMedia{deleted: []*domain.MediaUnit{
		{ID: 3, Code: "MH-PUN-001", Name: "Airport Road Hoarding", City: "Pune", State: "Maharashtra", DeletedAt: &del2},
	}}
	customers := &fakeCustomers{deleted: []*domain.Customer{
		{ID: 4, Name: "Acme Retail", Email: ptr.Ptr("ops@acme.example"), DeletedAt: &del3},
	}}
	s := newTestService(bookings, media, customers, &fakeAgreements{}, &fakeInstallments{})

	entries, err := s.ListDeleted(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// newest deletion first
	assert.Equal(t, domain.EntityMediaUnit, entries[0].EntityType)
	assert.Equal(t, "MH-PUN-001", entries[0].Label)
	assert.Equal(t, domain.EntityCustomer, entries[1].EntityType)
	assert.Equal(t, "ops@acme.example", entries[1].Detail)
	assert.Equal(t, domain.EntityBooking, entries[2].EntityType)

	// booking label carries the positional reference ID, ranked over the
	// full population: the deleted booking is second in start-date order
	assert.Equal(t, "SRA/2627/1002", entries[2].Label)
}

func TestListDeleted_InstallmentLabels(t *testing.T) {
	del := date(2026, time.August, 1)
	installments := &fakeInstallments{deleted: []*domain.TaxInstallment{
		{ID: 9, AgreementID: 11, DueDate: date(2026, time.July, 1),
			Amount: decimal.NewFromInt(30000), DeletedAt: &del},
	}}
	b, m, c, a, _ := emptyFakes()
	s := newTestService(b, m, c, a, installments)

	entries, err := s.ListDeleted(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Tax installment due 2026-07-01", entries[0].Label)
	assert.Equal(t, "agreement #11, amount 30000.00", entries[0].Detail)
}

func TestRestore_DispatchesByEntityType(t *testing.T) {
	b, m, c, a, i := emptyFakes()
	s := newTestService(b, m, c, a, i)

	require.NoError(t, s.Restore(context.Background(), domain.EntityBooking, 1))
	require.NoError(t, s.Restore(context.Background(), domain.EntityMediaUnit, 2))
	require.NoError(t, s.Restore(context.Background(), domain.EntityAgreement, 3))

	assert.Equal(t, int64(1), b.restoredID)
	assert.Equal(t, int64(2), m.restoredID)
	assert.Equal(t, int64(3), a.restoredID)
}

func TestRestore_UnknownEntityType(t *testing.T) {
	b, m, c, a, i := emptyFakes()
	s := newTestService(b, m, c, a, i)

	err := s.Restore(context.Background(), domain.EntityType("invoice"), 1)
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestRestore_NotFoundTranslated(t *testing.T) {
	b, m, c, a, i := emptyFakes()
	c.restoreErr = customerRepo.ErrCustomerNotFound
	s := newTestService(b, m, c, a, i)

	err := s.Restore(context.Background(), domain.EntityCustomer, 42)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestWipe_RemovesEveryEntry(t *testing.T) {
	del := date(2026, time.August, 1)
	b, m, c, a, i := emptyFakes()
	b.all = []*domain.Booking{
		{ID: 1, StartDate: date(2026, time.May, 1), EndDate: date(2026, time.May, 31),
			Deleted: true, DeletedAt: &del},
	}
	m.deleted = []*domain.MediaUnit{{ID: 3, Code: "MH-PUN-001", DeletedAt: &del}}
	s := newTestService(b, m, c, a, i)

	require.NoError(t, s.Wipe(context.Background()))
	assert.Equal(t, int64(1), b.hardDeletedID)
	assert.Equal(t, int64(3), m.hardDeletedID)
}

func TestPurgeExpired_UsesRetentionCutoff(t *testing.T) {
	b, m, c, a, i := emptyFakes()
	i.purged = 2
	a.purgeable = []*domain.TenderAgreement{{ID: 11}, {ID: 12}}
	s := newTestService(b, m, c, a, i)

	now := date(2026, time.August, 31)
	require.NoError(t, s.PurgeExpired(context.Background(), now))

	wantCutoff := now.AddDate(0, 0, -domain.RecycleBinRetentionDays)
	assert.Equal(t, wantCutoff, i.gotCutoff)
	assert.Equal(t, wantCutoff, a.gotCutoff)
	assert.Equal(t, []int64{11, 12}, a.hardDeletedIDs)
}

func TestPurgeExpired_NothingToPurge(t *testing.T) {
	b, m, c, a, i := emptyFakes()
	s := newTestService(b, m, c, a, i)

	require.NoError(t, s.PurgeExpired(context.Background(), date(2026, time.August, 31)))
	assert.Empty(t, a.hardDeletedIDs)
}
