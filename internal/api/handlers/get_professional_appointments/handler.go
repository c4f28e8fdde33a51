package get_professional_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/luizvb/gendaia-sub001/internal/api/handlers"
	"github.com/luizvb/gendaia-sub001/internal/service/appointments"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidParams         = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments
// Query params: business_id (required), date (optional, YYYY-MM-DD),
// start_date/end_date (optional), status (optional), include_inactive (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalIDStr := mux.Vars(r)["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	req, err := ToServiceRequest(professionalID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetProfessionalAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid filter: professional_id=%d", professionalID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /professionals/{id}/appointments - Failed to get appointments: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/appointments - Appointments retrieved successfully: professional_id=%d, count=%d",
		professionalID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
