package get_availability

import (
	"time"

	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID             int64     // ID бизнеса (тенанта)
	ProfessionalID         int64     // ID профессионала
	ServiceDurationMinutes int       // Длительность услуги в минутах (0 = шаг сетки слотов)
	Date                   time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
// Слоты отформатированы как локальное время бизнеса и отсортированы по возрастанию
type Response struct {
	BusinessID     int64              // ID бизнеса
	ProfessionalID int64              // ID профессионала
	Date           time.Time          // Дата, на которую запрашивались слоты
	Timezone       string             // IANA таймзона, в которой выражены слоты
	AvailableSlots []types.TimeString // Свободные старты слотов ("09:00", "09:30", ...)
}
