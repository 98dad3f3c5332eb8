package engine

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
	"github.com/wharflog-dev/wharflog/backend/internal/ledger"
)

type fakeStore struct {
	shifts   map[uuid.UUID]*domain.ShiftEntry
	holidays map[uuid.UUID]*domain.Holiday

	sickUsed      int32
	personalUsed  int32
	sickAvail     int32
	personalAvail int32
	xp            int64
	points        int64

	failLeave bool
	failXP    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		shifts:        make(map[uuid.UUID]*domain.ShiftEntry),
		holidays:      make(map[uuid.UUID]*domain.Holiday),
		sickAvail:     6,
		personalAvail: 5,
	}
}

func (f *fakeStore) GetShift(userID int64, id uuid.UUID) (*domain.ShiftEntry, error) {
	s, ok := f.shifts[id]
	if !ok || s.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return s, nil
}

func (f *fakeStore) InsertShift(s *domain.ShiftEntry) error {
	f.shifts[s.ID] = s
	return nil
}

func (f *fakeStore) UpdateShift(s *domain.ShiftEntry) error {
	if _, ok := f.shifts[s.ID]; !ok {
		return sql.ErrNoRows
	}
	f.shifts[s.ID] = s
	return nil
}

func (f *fakeStore) DeleteShift(userID int64, id uuid.UUID) error {
	s, ok := f.shifts[id]
	if !ok || s.UserID != userID {
		return sql.ErrNoRows
	}
	delete(f.shifts, id)
	return nil
}

func (f *fakeStore) GetHolidayByID(id uuid.UUID) (*domain.Holiday, error) {
	h, ok := f.holidays[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return h, nil
}

func clamp(v int32) int32 {
	if v < 0 {
		return 0
	}
	return v
}

func (f *fakeStore) ApplyLeaveDelta(_ int64, delta ledger.Delta) (*domain.LeaveCounters, error) {
	if f.failLeave {
		return nil, errors.New("连接失败")
	}

	c := &domain.LeaveCounters{
		PrevSickDaysUsed:       f.sickUsed,
		PrevPersonalLeaveUsed:  f.personalUsed,
		SickDaysAvailable:      f.sickAvail,
		PersonalLeaveAvailable: f.personalAvail,
	}
	f.sickUsed = clamp(f.sickUsed + delta.Sick)
	f.personalUsed = clamp(f.personalUsed + delta.Personal)
	c.SickDaysUsed = f.sickUsed
	c.PersonalLeaveUsed = f.personalUsed

	return c, nil
}

func (f *fakeStore) AddXPAndPoints(_ int64, xp int64, points int64) error {
	if f.failXP {
		return errors.New("连接失败")
	}
	f.xp += xp
	f.points += points
	return nil
}

func newTestEngine(store *fakeStore) *Engine {
	return New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func workedEntry(userID int64) *domain.ShiftEntry {
	return &domain.ShiftEntry{
		UserID:    userID,
		Date:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		EntryType: domain.EntryWorked,
		Worked: &domain.WorkedDetails{
			Job:       "Labour",
			Location:  "Centerm",
			ShiftType: domain.ShiftDay,
			Hours:     8,
		},
	}
}

func leaveEntry(userID int64, lt domain.LeaveType) *domain.ShiftEntry {
	return &domain.ShiftEntry{
		UserID:    userID,
		Date:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		EntryType: domain.EntryLeave,
		Leave:     &domain.LeaveDetails{LeaveType: lt},
	}
}

func TestCreateShiftComputesPayAndPoints(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := workedEntry(1)
	effects, err := eng.CreateShift(entry)
	require.NoError(t, err)

	// Labour 8 小时，55.30 * 8
	require.NotNil(t, entry.TotalPay)
	assert.Equal(t, 442.40, *entry.TotalPay)
	assert.Equal(t, int32(44), entry.PointsEarned)
	require.NotNil(t, entry.Worked.Rate)
	assert.Equal(t, 55.30, *entry.Worked.Rate)
	require.NotNil(t, entry.Worked.OvertimeRate)
	assert.Equal(t, 82.95, *entry.Worked.OvertimeRate)

	assert.Equal(t, int64(10), effects.XPEarned)
	assert.Equal(t, int64(44), effects.PointsEarned)
	assert.Equal(t, int64(10), store.xp)
	assert.Equal(t, int64(44), store.points)

	assert.Len(t, store.shifts, 1)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestCreateShiftKeepsProvidedTotalPay(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := workedEntry(1)
	totalPay := 608.30
	entry.TotalPay = &totalPay

	effects, err := eng.CreateShift(entry)
	require.NoError(t, err)

	assert.Equal(t, 608.30, *entry.TotalPay)
	assert.Equal(t, int32(60), entry.PointsEarned)
	assert.Equal(t, int64(60), effects.PointsEarned)
}

func TestCreateShiftValidationFailureWritesNothing(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := workedEntry(1)
	entry.Worked.Hours = 25

	_, err := eng.CreateShift(entry)

	validationErr := &ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, store.shifts)
	assert.Equal(t, int64(0), store.xp)
	assert.Equal(t, int32(0), store.sickUsed)
}

func TestCreateShiftLeaveUpdatesCounters(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	effects, err := eng.CreateShift(leaveEntry(1, domain.LeaveSick))
	require.NoError(t, err)

	assert.Equal(t, ledger.Delta{Sick: 1}, effects.LeaveDelta)
	assert.Equal(t, int32(1), store.sickUsed)
	assert.Nil(t, effects.ExhaustedLeave)

	// 请假记录没有薪酬，只有经验没有积分
	assert.Equal(t, int64(10), store.xp)
	assert.Equal(t, int64(0), store.points)
}

func TestCreateShiftReportsExhaustedLeave(t *testing.T) {
	store := newFakeStore()
	store.sickUsed = 5
	eng := newTestEngine(store)

	effects, err := eng.CreateShift(leaveEntry(1, domain.LeaveSick))
	require.NoError(t, err)

	require.NotNil(t, effects.ExhaustedLeave)
	assert.Equal(t, domain.LeaveSick, effects.ExhaustedLeave.LeaveType)
	assert.Equal(t, int32(6), effects.ExhaustedLeave.Used)
	assert.Equal(t, int32(6), effects.ExhaustedLeave.Available)
}

func TestCreateShiftLedgerFailureIsNotFatal(t *testing.T) {
	store := newFakeStore()
	store.failLeave = true
	store.failXP = true
	eng := newTestEngine(store)

	_, err := eng.CreateShift(leaveEntry(1, domain.LeaveSick))
	require.NoError(t, err)
	assert.Len(t, store.shifts, 1)
}

func TestUpdateShiftChangesLeaveType(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := leaveEntry(1, domain.LeaveSick)
	_, err := eng.CreateShift(entry)
	require.NoError(t, err)
	require.Equal(t, int32(1), store.sickUsed)

	personal := domain.LeavePersonal
	next, effects, err := eng.UpdateShift(1, entry.ID, &ShiftUpdate{LeaveType: &personal})
	require.NoError(t, err)

	assert.Equal(t, domain.LeavePersonal, next.Leave.LeaveType)
	assert.Equal(t, ledger.Delta{Sick: -1, Personal: 1}, effects.LeaveDelta)
	assert.Equal(t, int32(0), store.sickUsed)
	assert.Equal(t, int32(1), store.personalUsed)
}

func TestUpdateShiftChangesEntryType(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := leaveEntry(1, domain.LeaveSick)
	_, err := eng.CreateShift(entry)
	require.NoError(t, err)

	entryType := domain.EntryWorked
	next, effects, err := eng.UpdateShift(1, entry.ID, &ShiftUpdate{
		EntryType: &entryType,
		Worked: &domain.WorkedDetails{
			Job:       "Labour",
			Location:  "Centerm",
			ShiftType: domain.ShiftDay,
			Hours:     8,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.EntryWorked, next.EntryType)
	assert.Nil(t, next.Leave)
	require.NotNil(t, next.TotalPay)
	assert.Equal(t, 442.40, *next.TotalPay)
	assert.Equal(t, ledger.Delta{Sick: -1}, effects.LeaveDelta)
	assert.Equal(t, int32(0), store.sickUsed)
}

func TestUpdateShiftDoesNotResettlePoints(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := workedEntry(1)
	_, err := eng.CreateShift(entry)
	require.NoError(t, err)
	require.Equal(t, int64(44), store.points)

	totalPay := 9999.0
	_, _, err = eng.UpdateShift(1, entry.ID, &ShiftUpdate{TotalPay: &totalPay})
	require.NoError(t, err)

	// 积分只在创建时结算一次
	assert.Equal(t, int64(44), store.points)
	assert.Equal(t, int64(10), store.xp)
}

func TestUpdateShiftNotFound(t *testing.T) {
	eng := newTestEngine(newFakeStore())

	_, _, err := eng.UpdateShift(1, uuid.New(), &ShiftUpdate{})
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestUpdateShiftResolvesHolidayName(t *testing.T) {
	store := newFakeStore()
	holidayID := uuid.New()
	store.holidays[holidayID] = &domain.Holiday{
		ID:   holidayID,
		Name: "Canada Day",
		Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	eng := newTestEngine(store)

	entry := workedEntry(1)
	_, err := eng.CreateShift(entry)
	require.NoError(t, err)

	entryType := domain.EntryStatHoliday
	bucket := "15+"
	next, _, err := eng.UpdateShift(1, entry.ID, &ShiftUpdate{
		EntryType:      &entryType,
		HolidayID:      &holidayID,
		QualifyingDays: &bucket,
	})
	require.NoError(t, err)

	require.NotNil(t, next.StatHoliday)
	assert.Equal(t, "Canada Day", next.StatHoliday.HolidayName)
	assert.Equal(t, int32(15), next.StatHoliday.QualifyingDays)
	assert.Nil(t, next.Worked)
}

func TestUpdateShiftHolidayNotFound(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := workedEntry(1)
	_, err := eng.CreateShift(entry)
	require.NoError(t, err)

	entryType := domain.EntryStatHoliday
	missing := uuid.New()
	_, _, err = eng.UpdateShift(1, entry.ID, &ShiftUpdate{
		EntryType: &entryType,
		HolidayID: &missing,
	})
	assert.ErrorIs(t, err, ErrHolidayNotFound)
}

func TestDeleteShiftReversesLeaveButKeepsGamification(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := leaveEntry(1, domain.LeavePersonal)
	_, err := eng.CreateShift(entry)
	require.NoError(t, err)
	require.Equal(t, int32(1), store.personalUsed)
	require.Equal(t, int64(10), store.xp)

	effects, err := eng.DeleteShift(1, entry.ID)
	require.NoError(t, err)

	assert.Equal(t, ledger.Delta{Personal: -1}, effects.LeaveDelta)
	assert.Equal(t, int32(0), store.personalUsed)
	assert.Empty(t, store.shifts)

	// 经验和积分不随删除回收
	assert.Equal(t, int64(10), store.xp)
}

func TestDeleteShiftCountersNeverGoNegative(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := leaveEntry(1, domain.LeaveSick)
	_, err := eng.CreateShift(entry)
	require.NoError(t, err)

	// 模拟计数器被外部下调后再删除
	store.sickUsed = 0

	_, err = eng.DeleteShift(1, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), store.sickUsed)
}

func TestDeleteShiftNotFound(t *testing.T) {
	eng := newTestEngine(newFakeStore())

	_, err := eng.DeleteShift(1, uuid.New())
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestDeleteShiftOtherUsersShiftNotVisible(t *testing.T) {
	store := newFakeStore()
	eng := newTestEngine(store)

	entry := workedEntry(1)
	_, err := eng.CreateShift(entry)
	require.NoError(t, err)

	_, err = eng.DeleteShift(2, entry.ID)
	assert.ErrorIs(t, err, ErrShiftNotFound)
	assert.Len(t, store.shifts, 1)
}

func TestNormalizeQualifyingDays(t *testing.T) {
	tests := []struct {
		bucket   string
		expected int32
	}{
		{"15+", 15},
		{"15", 15},
		{"1-14", 14},
		{"14", 14},
		{"7", 7},
		{"abc", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeQualifyingDays(tt.bucket), "bucket=%s", tt.bucket)
	}
}
