package get_professional_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/internal/service/appointments/models"
)

// ToServiceRequest создает запрос сервиса из path и query параметров
// Query params: business_id (required), date | start_date + end_date,
// status, include_inactive
func ToServiceRequest(professionalID int64, query url.Values) (*models.GetProfessionalAppointmentsRequest, error) {
	businessID, err := strconv.ParseInt(query.Get("business_id"), 10, 64)
	if err != nil {
		return nil, err
	}

	req := &models.GetProfessionalAppointmentsRequest{
		BusinessID:     businessID,
		ProfessionalID: professionalID,
	}

	// date - сокращение для выборки на один день
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
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
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("include_inactive") == "true" {
		req.IncludeInactive = true
	}

	return req, nil
}
