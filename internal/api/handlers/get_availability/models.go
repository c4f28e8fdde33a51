package get_availability

import (
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	getAvailability "github.com/luizvb/gendaia-sub001/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string   `json:"date"`
	BusinessID     int64    `json:"business_id"`
	ProfessionalID int64    `json:"professional_id"`
	Timezone       string   `json:"timezone"`
	AvailableSlots []string `json:"available_slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]string, len(resp.AvailableSlots))
	for i, slot := range resp.AvailableSlots {
		slots[i] = slot.String()
	}

	return &AvailabilityResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		BusinessID:     resp.BusinessID,
		ProfessionalID: resp.ProfessionalID,
		Timezone:       resp.Timezone,
		AvailableSlots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(businessID, professionalID int64, serviceDuration int, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		BusinessID:             businessID,
		ProfessionalID:         professionalID,
		ServiceDurationMinutes: serviceDuration,
		Date:                   date,
	}, nil
}
