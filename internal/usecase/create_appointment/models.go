package create_appointment

import (
	"time"

	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID       int64            // ID клиента (из заголовка аутентификации)
	BusinessID     int64            // ID бизнеса (тенанта)
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги (длительность берется из каталога)
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала в таймзоне бизнеса ("10:00")
	ClientName     *string          // Имя клиента (опционально, для отображения в расписании)
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	BusinessID      int64            // ID бизнеса
	ProfessionalID  int64            // ID профессионала
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала (локальное время бизнеса)
	EndTime         types.TimeString // Время конца (локальное время бизнеса)
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	ClientName   *string // Имя клиента
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
