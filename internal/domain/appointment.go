package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a client appointment with a professional
type Appointment struct {
	ID             int64
	BusinessID     int64
	ProfessionalID int64
	ServiceID      int64
	ClientID       int64

	Date      time.Time // календарная дата в таймзоне бизнеса (для выборок по дню)
	StartTime time.Time // абсолютный инстант начала
	EndTime   time.Time // абсолютный инстант конца

	Status AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	ClientName   *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the half-open time interval occupied by the appointment
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// Blocks returns true if the appointment participates in conflict checks.
// Только записи в статусе scheduled блокируют слоты: отмененные и завершенные
// записи не мешают новым бронированиям
func (a *Appointment) Blocks() bool {
	return a.Status == StatusScheduled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// DurationMinutes returns the appointment duration in minutes
func (a *Appointment) DurationMinutes() int {
	return int(a.EndTime.Sub(a.StartTime).Minutes())
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	BusinessID     int64              // Обязательный параметр (границы тенанта)
	ProfessionalID *int64             // Фильтр по профессионалу (опционально)
	StartDate      *time.Time         // Начало периода (опционально)
	EndDate        *time.Time         // Конец периода (опционально)
	Status         *AppointmentStatus // Фильтр по статусу (опционально)
	OnlyBlocking   bool               // Только записи, участвующие в проверке конфликтов (status = scheduled)
}

// IsSingleDay проверяет, что фильтр ограничен одной датой
func (f AppointmentsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}
