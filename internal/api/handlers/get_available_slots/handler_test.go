package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestRouter(uc GetAvailableSlotsUseCase) *mux.Router {
	h := NewHandler(uc, noopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/stylists/{stylistId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func testResponse() *getAvailableSlots.Response {
	return &getAvailableSlots.Response{
		Date:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StylistID:   42,
		StylistName: "Анна",
		WorkStart:   "09:00",
		WorkEnd:     "18:00",
		Slots: []domain.Slot{
			{Time: "09:00", Available: true},
			{Time: "09:30", Available: false, Reason: domain.ReasonAlreadyBooked},
		},
		AvailableCount: 1,
		Total:          2,
	}
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: testResponse()}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stylists/42/available-slots?date=2025-06-02", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Equal(t, int64(42), resp.Stylist.ID)
	assert.Equal(t, "Анна", resp.Stylist.Name)
	assert.Equal(t, "09:00", resp.Stylist.WorkingHours.Start)
	assert.Equal(t, "18:00", resp.Stylist.WorkingHours.End)
	assert.Equal(t, 1, resp.AvailableCount)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "09:00", resp.Data[0].Time)
	assert.True(t, resp.Data[0].Available)
	assert.Equal(t, "09:30", resp.Data[1].Time)
	assert.False(t, resp.Data[1].Available)
	assert.Equal(t, domain.ReasonAlreadyBooked, resp.Data[1].Reason)

	// Параметры запроса дошли до use case
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.StylistID)
	assert.Equal(t, domain.DefaultAppointmentDurationMinutes, uc.lastReq.DurationMinutes)
}

func TestHandler_CustomDuration(t *testing.T) {
	uc := &fakeUseCase{resp: testResponse()}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stylists/42/available-slots?date=2025-06-02&duration=90", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 90, uc.lastReq.DurationMinutes)
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"invalid stylist id", "/api/v1/stylists/abc/available-slots?date=2025-06-02"},
		{"missing date", "/api/v1/stylists/42/available-slots"},
		{"invalid date format", "/api/v1/stylists/42/available-slots?date=02.06.2025"},
		{"invalid duration", "/api/v1/stylists/42/available-slots?date=2025-06-02&duration=abc"},
		{"negative duration", "/api/v1/stylists/42/available-slots?date=2025-06-02&duration=-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{resp: testResponse()}
			router := newTestRouter(uc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.lastReq, "use case must not be called")
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"stylist not found", getAvailableSlots.ErrStylistNotFound, http.StatusNotFound},
		{"date in past", getAvailableSlots.ErrDateInPast, http.StatusBadRequest},
		{"invalid input", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{err: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/stylists/42/available-slots?date=2025-06-02", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestHandler_NoAvailabilityMessageIsStillOK(t *testing.T) {
	resp := testResponse()
	resp.Slots = nil
	resp.AvailableCount = 0
	resp.Total = 0
	resp.Message = domain.MsgOnLeave

	router := newTestRouter(&fakeUseCase{resp: resp})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stylists/42/available-slots?date=2025-06-02", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, 0, got.Total)
	assert.Equal(t, domain.MsgOnLeave, got.Message)
}
