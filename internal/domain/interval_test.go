package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 10, hour, minute, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	booked := Interval{Start: at(10, 0), End: at(10, 30)}

	tests := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{
			name:      "identical interval overlaps",
			candidate: Interval{Start: at(10, 0), End: at(10, 30)},
			want:      true,
		},
		{
			name:      "candidate starting inside overlaps",
			candidate: Interval{Start: at(10, 15), End: at(10, 45)},
			want:      true,
		},
		{
			name:      "candidate ending inside overlaps",
			candidate: Interval{Start: at(9, 45), End: at(10, 15)},
			want:      true,
		},
		{
			name:      "candidate containing booked overlaps",
			candidate: Interval{Start: at(9, 0), End: at(11, 0)},
			want:      true,
		},
		{
			name:      "back-to-back after is not a conflict",
			candidate: Interval{Start: at(10, 30), End: at(11, 0)},
			want:      false,
		},
		{
			name:      "back-to-back before is not a conflict",
			candidate: Interval{Start: at(9, 30), End: at(10, 0)},
			want:      false,
		},
		{
			name:      "disjoint earlier",
			candidate: Interval{Start: at(8, 0), End: at(8, 30)},
			want:      false,
		},
		{
			name:      "disjoint later",
			candidate: Interval{Start: at(12, 0), End: at(12, 30)},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Overlaps(booked))
			// Пересечение симметрично
			assert.Equal(t, tt.want, booked.Overlaps(tt.candidate))
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, Interval{Start: at(9, 0), End: at(10, 0)}.IsValid())
	assert.False(t, Interval{Start: at(10, 0), End: at(10, 0)}.IsValid())
	assert.False(t, Interval{Start: at(11, 0), End: at(10, 0)}.IsValid())
}

func TestNewInterval(t *testing.T) {
	i := NewInterval(at(14, 0), 45*time.Minute)
	assert.Equal(t, at(14, 0), i.Start)
	assert.Equal(t, at(14, 45), i.End)
	assert.Equal(t, 45*time.Minute, i.Duration())
}

func TestAppointment_Blocks(t *testing.T) {
	appt := Appointment{Status: StatusScheduled}
	assert.True(t, appt.Blocks())

	appt.Status = StatusCancelled
	assert.False(t, appt.Blocks())

	appt.Status = StatusCompleted
	assert.False(t, appt.Blocks())
}
