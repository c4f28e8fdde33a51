package get_availability

import (
	"fmt"

	"github.com/luizvb/gendaia-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 0 означает "использовать шаг сетки слотов", отрицательная длительность некорректна
	if req.ServiceDurationMinutes < 0 {
		return fmt.Errorf("%w: serviceDurationMinutes must be positive", ErrInvalidInput)
	}

	if req.ServiceDurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: serviceDurationMinutes must not exceed %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	return nil
}
