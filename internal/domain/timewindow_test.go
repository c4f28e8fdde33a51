package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizvb/gendaia-sub001/pkg/types"
)

var saoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func testDate() time.Time {
	return time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
}

func TestNewTimeWindow(t *testing.T) {
	w, err := NewTimeWindow(testDate(), "09:00", "19:00", 30, saoPaulo)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 11, 10, 9, 0, 0, 0, saoPaulo), w.Start)
	assert.Equal(t, time.Date(2025, 11, 10, 19, 0, 0, 0, saoPaulo), w.End)
	assert.Equal(t, 10*time.Hour, w.Length())
}

func TestNewTimeWindow_Invalid(t *testing.T) {
	_, err := NewTimeWindow(testDate(), "19:00", "09:00", 30, saoPaulo)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewTimeWindow(testDate(), "10:00", "10:00", 30, saoPaulo)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewTimeWindow(testDate(), "09:00", "19:00", 0, saoPaulo)
	require.ErrorIs(t, err, ErrInvalidGranularity)

	_, err = NewTimeWindow(testDate(), "9am", "19:00", 30, saoPaulo)
	require.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestTimeWindow_Candidates(t *testing.T) {
	w, err := NewTimeWindow(testDate(), "09:00", "12:00", 30, time.UTC)
	require.NoError(t, err)

	candidates := w.Candidates(60 * time.Minute)

	// 09:00..11:00 - последний старт, влезающий с часовой услугой до 12:00
	require.Len(t, candidates, 5)
	assert.Equal(t, time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC), candidates[0])
	assert.Equal(t, time.Date(2025, 11, 10, 11, 0, 0, 0, time.UTC), candidates[len(candidates)-1])
}

// Для любого кандидата: open <= start и start+duration <= close,
// порядок строго возрастающий без дубликатов
func TestTimeWindow_CandidatesProperties(t *testing.T) {
	windows := []struct {
		open, close types.TimeString
		granularity int
		durationMin int
	}{
		{"09:00", "19:00", 30, 60},
		{"09:00", "19:00", 30, 45}, // длительность не кратна шагу
		{"08:15", "12:40", 25, 50},
		{"00:00", "23:59", 15, 90},
		{"10:00", "10:30", 30, 30},
	}

	for _, wc := range windows {
		w, err := NewTimeWindow(testDate(), wc.open, wc.close, wc.granularity, saoPaulo)
		require.NoError(t, err)

		duration := time.Duration(wc.durationMin) * time.Minute
		candidates := w.Candidates(duration)

		for i, start := range candidates {
			assert.False(t, start.Before(w.Start), "start must not precede open")
			assert.False(t, start.Add(duration).After(w.End), "end must not exceed close")
			if i > 0 {
				assert.True(t, candidates[i-1].Before(start), "starts must strictly increase")
			}
		}
	}
}

func TestTimeWindow_Candidates_DurationExceedsWindow(t *testing.T) {
	w, err := NewTimeWindow(testDate(), "09:00", "10:00", 30, time.UTC)
	require.NoError(t, err)

	assert.Empty(t, w.Candidates(2*time.Hour))
	assert.Empty(t, w.Candidates(61*time.Minute))
	assert.Len(t, w.Candidates(60*time.Minute), 1)
}

// Последний старт перед закрытием исключается, если услуга не влезает:
// окно до 19:00, старт 18:00 + 120 минут = 20:00 > 19:00
func TestTimeWindow_Candidates_TailCutoff(t *testing.T) {
	w, err := NewTimeWindow(testDate(), "09:00", "19:00", 30, saoPaulo)
	require.NoError(t, err)

	candidates := w.Candidates(120 * time.Minute)
	require.NotEmpty(t, candidates)

	last := candidates[len(candidates)-1]
	assert.Equal(t, time.Date(2025, 11, 10, 17, 0, 0, 0, saoPaulo), last)

	for _, start := range candidates {
		assert.False(t, start.Add(120*time.Minute).After(w.End))
	}
}

func TestDefaultDaySchedule(t *testing.T) {
	sched := DefaultDaySchedule(7, time.Wednesday)

	assert.True(t, sched.IsOpen)
	assert.Equal(t, types.TimeString("09:00"), sched.OpenTime)
	assert.Equal(t, types.TimeString("19:00"), sched.CloseTime)
	assert.Equal(t, 30, sched.SlotGranularityMinutes)
	assert.True(t, sched.IsBusinessWide())
}
