package create_appointment

import (
	"errors"
	"net/http"

	"github.com/luizvb/gendaia-sub001/internal/api/handlers"
	"github.com/luizvb/gendaia-sub001/internal/api/middleware"
	createAppointment "github.com/luizvb/gendaia-sub001/internal/usecase/create_appointment"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgBusinessNotFound     = "бизнес не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgProfessionalNotFound = "профессионал не найден"
	msgBusinessClosed       = "бизнес закрыт в выбранную дату"
	msgInvalidDateValue     = "некорректная дата записи"
	msgTooLateToBook        = "выбранное время уже прошло"
	msgOutsideWorkingHours  = "выбранное время выходит за рамки рабочего дня"
	msgInvalidInput         = "некорректные данные запроса"
	msgInvalidSchedule      = "некорректная конфигурация расписания"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: client_id=%d, business_id=%d, professional_id=%d",
				clientID, req.BusinessID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrBusinessNotFound):
			h.logger.Warn("POST /appointments - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: business_id=%d, service_id=%d",
				req.BusinessID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: business_id=%d, professional_id=%d",
				req.BusinessID, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrBusinessClosed):
			h.logger.Warn("POST /appointments - Business closed: business_id=%d, date=%s", req.BusinessID, req.Date)
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid appointment date: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDateValue)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Start time already passed: client_id=%d, date=%s, time=%s",
				clientID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: client_id=%d, business_id=%d, time=%s",
				clientID, req.BusinessID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidSchedule):
			h.logger.Error("POST /appointments - Invalid schedule: business_id=%d, error=%v", req.BusinessID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, business_id=%d, error=%v",
				clientID, req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, business_id=%d",
		result.ID, clientID, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
