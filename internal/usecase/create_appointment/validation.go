package create_appointment

import (
	"fmt"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.ClientName != nil && len(*req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом (в таймзоне бизнеса)
func validateDate(date, now time.Time) error {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()

	requested := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)

	if requested.Before(today) {
		return ErrInvalidDate
	}

	return nil
}

// validateStartInstant проверяет, что время начала еще не прошло.
// Сравниваются абсолютные инстанты, поэтому отдельная проверка "сегодня ли это"
// не нужна: для будущих дат start всегда позже now
func validateStartInstant(start, now time.Time) error {
	if start.Before(now) {
		return ErrTooLateToBook
	}
	return nil
}

// validateWithinWindow проверяет, что интервал записи целиком лежит в окне работы
func validateWithinWindow(interval domain.Interval, window domain.TimeWindow) error {
	if interval.Start.Before(window.Start) || interval.End.After(window.End) {
		return ErrOutsideWorkingHours
	}
	return nil
}

// hasConflict проверяет пересечение предлагаемого интервала с существующими записями
// Детектор агностичен к статусам: неблокирующие записи отбрасываются здесь же,
// поверх статусного фильтра репозитория
func hasConflict(proposed domain.Interval, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.Blocks() {
			continue
		}
		if proposed.Overlaps(appt.Interval()) {
			return true
		}
	}
	return false
}

// getServicePrice извлекает цену из услуги, nil трактуется как 0
func getServicePrice(price *float64) float64 {
	if price == nil {
		return 0.0
	}
	return *price
}
