package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/luizvb/gendaia-sub001/internal/usecase/get_availability"
	"github.com/luizvb/gendaia-sub001/pkg/types"
)

type fakeUseCase struct {
	response *getAvailability.Response
	err      error
	lastReq  *getAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		response: &getAvailability.Response{
			BusinessID:     1,
			ProfessionalID: 10,
			Date:           time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
			Timezone:       "America/Sao_Paulo",
			AvailableSlots: []types.TimeString{"09:00", "09:30", "11:00"},
		},
	}

	rec := doRequest(t, uc, "/api/v1/availability?professional_id=10&date=2025-11-10&service_duration=60&business_id=1")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"09:00", "09:30", "11:00"}, resp.AvailableSlots)
	assert.Equal(t, "2025-11-10", resp.Date)
	assert.Equal(t, "America/Sao_Paulo", resp.Timezone)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(1), uc.lastReq.BusinessID)
	assert.Equal(t, int64(10), uc.lastReq.ProfessionalID)
	assert.Equal(t, 60, uc.lastReq.ServiceDurationMinutes)
}

func TestHandle_EmptySlotsSerializedAsEmptyArray(t *testing.T) {
	uc := &fakeUseCase{
		response: &getAvailability.Response{
			BusinessID:     1,
			ProfessionalID: 10,
			Date:           time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
			Timezone:       "America/Sao_Paulo",
			AvailableSlots: []types.TimeString{},
		},
	}

	rec := doRequest(t, uc, "/api/v1/availability?professional_id=10&date=2025-11-10&business_id=1")

	require.Equal(t, http.StatusOK, rec.Code)
	// Пустой список должен сериализоваться как [], а не null
	assert.Contains(t, rec.Body.String(), `"available_slots":[]`)
}

func TestHandle_MissingRequiredParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing professional_id", url: "/api/v1/availability?date=2025-11-10&business_id=1"},
		{name: "missing date", url: "/api/v1/availability?professional_id=10&business_id=1"},
		{name: "missing business_id", url: "/api/v1/availability?professional_id=10&date=2025-11-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(t, uc, tt.url)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// Use case не должен вызываться при невалидных параметрах
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandle_MalformedParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "bad professional_id", url: "/api/v1/availability?professional_id=abc&date=2025-11-10&business_id=1"},
		{name: "bad business_id", url: "/api/v1/availability?professional_id=10&date=2025-11-10&business_id=abc"},
		{name: "bad date", url: "/api/v1/availability?professional_id=10&date=10-11-2025&business_id=1"},
		{name: "bad duration", url: "/api/v1/availability?professional_id=10&date=2025-11-10&business_id=1&service_duration=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_BusinessNotFound(t *testing.T) {
	uc := &fakeUseCase{err: getAvailability.ErrBusinessNotFound}

	rec := doRequest(t, uc, "/api/v1/availability?professional_id=10&date=2025-11-10&business_id=999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}

	rec := doRequest(t, uc, "/api/v1/availability?professional_id=10&date=2025-11-10&business_id=1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Детали внутренней ошибки не должны утекать в ответ
	assert.NotContains(t, rec.Body.String(), "boom")
}
