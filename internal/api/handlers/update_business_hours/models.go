package update_business_hours

import (
	"github.com/luizvb/gendaia-sub001/internal/service/schedule/models"
)

// UpdateBusinessHoursRequest HTTP request model
type UpdateBusinessHoursRequest struct {
	Days []models.DayScheduleInput `json:"days"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBusinessHoursRequest) ToServiceRequest(businessID int64) *models.UpdateWeekRequest {
	return &models.UpdateWeekRequest{
		BusinessID: businessID,
		Days:       r.Days,
	}
}
