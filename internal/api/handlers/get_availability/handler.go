package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/luizvb/gendaia-sub001/internal/api/handlers"
	getAvailability "github.com/luizvb/gendaia-sub001/internal/usecase/get_availability"
)

const (
	msgMissingProfessionalID = "ID профессионала обязателен"
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingBusinessID     = "ID бизнеса обязателен"
	msgInvalidBusinessID     = "некорректный ID бизнеса"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration       = "некорректная длительность услуги"
	msgInvalidRequest        = "некорректные параметры запроса"
	msgBusinessNotFound      = "бизнес не найден"
	msgInvalidSchedule       = "некорректная конфигурация расписания"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: professional_id (required), date (required, YYYY-MM-DD),
// business_id (required), service_duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем professional_id из query параметров
	professionalIDStr := query.Get("professional_id")
	if professionalIDStr == "" {
		h.logger.Warn("GET /availability - Missing professional ID")
		handlers.RespondBadRequest(w, msgMissingProfessionalID)
		return
	}

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем business_id из query параметров
	businessIDStr := query.Get("business_id")
	if businessIDStr == "" {
		h.logger.Warn("GET /availability - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Извлекаем service_duration из query параметров (опционально)
	serviceDuration := 0
	if durationStr := query.Get("service_duration"); durationStr != "" {
		serviceDuration, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid service duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(businessID, professionalID, serviceDuration, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailability.ErrBusinessNotFound):
			h.logger.Warn("GET /availability - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid request: business_id=%d, professional_id=%d, error=%v",
				businessID, professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailability.ErrInvalidSchedule):
			h.logger.Error("GET /availability - Invalid schedule: business_id=%d, error=%v", businessID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		default:
			h.logger.Error("GET /availability - Failed to get slots: business_id=%d, professional_id=%d, error=%v",
				businessID, professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Slots retrieved successfully: business_id=%d, professional_id=%d, slots_count=%d",
		businessID, professionalID, len(response.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
