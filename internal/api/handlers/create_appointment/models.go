package create_appointment

import (
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	createAppointment "github.com/luizvb/gendaia-sub001/internal/usecase/create_appointment"
	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// CreateAppointmentRequest HTTP request model
// ID клиента берется из заголовка аутентификации, а не из тела
type CreateAppointmentRequest struct {
	BusinessID     int64   `json:"business_id"`
	ProfessionalID int64   `json:"professional_id"`
	ServiceID      int64   `json:"service_id"`
	Date           string  `json:"date"`       // "2025-11-10"
	StartTime      string  `json:"start_time"` // "10:00"
	ClientName     *string `json:"client_name,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:       clientID,
		BusinessID:     r.BusinessID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Date:           date,
		StartTime:      types.TimeString(r.StartTime),
		ClientName:     r.ClientName,
		Notes:          r.Notes,
	}, nil
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"client_id"`
	BusinessID      int64   `json:"business_id"`
	ProfessionalID  int64   `json:"professional_id"`
	ServiceID       int64   `json:"service_id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ClientName      *string `json:"client_name,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		BusinessID:      resp.BusinessID,
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		ClientName:      resp.ClientName,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
