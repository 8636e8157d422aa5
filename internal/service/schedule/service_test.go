package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	stylistRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/stylist"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeStylistRepo struct {
	stylist *domain.Stylist
	getErr  error

	updated   *domain.Stylist
	updateErr error
}

func (f *fakeStylistRepo) GetByID(_ context.Context, id int64) (*domain.Stylist, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stylist, nil
}

func (f *fakeStylistRepo) UpdateSchedule(_ context.Context, s *domain.Stylist) (*domain.Stylist, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = s
	return s, nil
}

type fakeBreaksRepo struct {
	breaks []*domain.Break
	err    error
}

func (f *fakeBreaksRepo) GetByStylist(_ context.Context, stylistID int64) ([]*domain.Break, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.breaks, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testStylist() *domain.Stylist {
	return &domain.Stylist{
		ID:          42,
		Name:        "Анна",
		WorkingDays: []string{"Monday", "Tuesday"},
		WorkStart:   "09:00",
		WorkEnd:     "18:00",
		UpdatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetByStylist_Success(t *testing.T) {
	breaks := []*domain.Break{
		{StartTime: "13:00", EndTime: "14:00", Label: ptr.Ptr("lunch")},
	}
	svc := NewService(&fakeStylistRepo{stylist: testStylist()}, &fakeBreaksRepo{breaks: breaks}, noopLogger{})

	resp, err := svc.GetByStylist(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.StylistID)
	assert.Equal(t, "Анна", resp.Name)
	assert.Equal(t, []string{"Monday", "Tuesday"}, resp.WorkingDays)
	assert.Equal(t, "09:00", resp.WorkStart)
	assert.Equal(t, "18:00", resp.WorkEnd)
	require.Len(t, resp.Breaks, 1)
	assert.Equal(t, "13:00", resp.Breaks[0].StartTime)
	assert.Equal(t, "lunch", *resp.Breaks[0].Label)
}

func TestGetByStylist_DefaultHoursWhenProfileEmpty(t *testing.T) {
	stylist := testStylist()
	stylist.WorkStart = ""
	stylist.WorkEnd = ""
	svc := NewService(&fakeStylistRepo{stylist: stylist}, &fakeBreaksRepo{}, noopLogger{})

	resp, err := svc.GetByStylist(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultWorkStart.String(), resp.WorkStart)
	assert.Equal(t, domain.DefaultWorkEnd.String(), resp.WorkEnd)
}

func TestGetByStylist_NotFound(t *testing.T) {
	svc := NewService(&fakeStylistRepo{getErr: stylistRepo.ErrStylistNotFound}, &fakeBreaksRepo{}, noopLogger{})

	_, err := svc.GetByStylist(context.Background(), 42)
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestUpdate_PartialUpdateKeepsUnsetFields(t *testing.T) {
	repo := &fakeStylistRepo{stylist: testStylist()}
	svc := NewService(repo, &fakeBreaksRepo{}, noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		StylistID: 42,
		WorkStart: ptr.Ptr("10:00"),
	})
	require.NoError(t, err)

	// Переданное поле обновлено, остальные сохранены
	require.NotNil(t, repo.updated)
	assert.Equal(t, types.TimeString("10:00"), repo.updated.WorkStart)
	assert.Equal(t, types.TimeString("18:00"), repo.updated.WorkEnd)
	assert.Equal(t, []string{"Monday", "Tuesday"}, repo.updated.WorkingDays)
	assert.Equal(t, "10:00", resp.WorkStart)
}

func TestUpdate_EmergencyFlag(t *testing.T) {
	repo := &fakeStylistRepo{stylist: testStylist()}
	svc := NewService(repo, &fakeBreaksRepo{}, noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		StylistID:              42,
		IsEmergencyUnavailable: ptr.Ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, resp.IsEmergencyUnavailable)
}

func TestUpdate_InvalidWorkingDay(t *testing.T) {
	svc := NewService(&fakeStylistRepo{stylist: testStylist()}, &fakeBreaksRepo{}, noopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		StylistID:   42,
		WorkingDays: ptr.Ptr([]string{"Monday", "Funday"}),
	})
	assert.ErrorIs(t, err, ErrInvalidWorkingDay)
}

func TestUpdate_InvalidTimeRange(t *testing.T) {
	svc := NewService(&fakeStylistRepo{stylist: testStylist()}, &fakeBreaksRepo{}, noopLogger{})

	// Начало позже конца
	_, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		StylistID: 42,
		WorkStart: ptr.Ptr("19:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdate_InvalidTimeFormat(t *testing.T) {
	svc := NewService(&fakeStylistRepo{stylist: testStylist()}, &fakeBreaksRepo{}, noopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		StylistID: 42,
		WorkStart: ptr.Ptr("9am"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_RepositoryErrorIsInternal(t *testing.T) {
	repo := &fakeStylistRepo{stylist: testStylist(), updateErr: errors.New("connection reset")}
	svc := NewService(repo, &fakeBreaksRepo{}, noopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateScheduleRequest{
		StylistID: 42,
		WorkEnd:   ptr.Ptr("17:00"),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
