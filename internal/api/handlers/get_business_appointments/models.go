package get_business_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/internal/service/appointments/models"
)

// ToServiceRequest создает запрос сервиса из path и query параметров
// Query params: professional_id, start_date, end_date, status, include_inactive
func ToServiceRequest(businessID int64, query url.Values) (*models.GetBusinessAppointmentsRequest, error) {
	req := &models.GetBusinessAppointmentsRequest{
		BusinessID: businessID,
	}

	if professionalIDStr := query.Get("professional_id"); professionalIDStr != "" {
		professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &professionalID
	}

	if startStr := query.Get("start_date"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if endStr := query.Get("end_date"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("include_inactive") == "true" {
		req.IncludeInactive = true
	}

	return req, nil
}
