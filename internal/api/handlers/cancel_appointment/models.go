package cancel_appointment

import (
	"github.com/luizvb/gendaia-sub001/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(clientID int64) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		ClientID:           clientID,
		CancellationReason: r.CancellationReason,
	}
}
