package domain

// Дефолтное окно работы бизнеса
// Используется, когда для дня недели нет строки расписания в БД.
// Единственное место в сервисе, где определено дефолтное окно
const (
	DefaultOpenTime               = "09:00"
	DefaultCloseTime              = "19:00"
	DefaultSlotGranularityMinutes = 30
)

// DefaultTimezone таймзона бизнеса, если она не задана в настройках
const DefaultTimezone = "America/Sao_Paulo"

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 480 // 8 часов

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480

	MaxNotesLength              = 500
	MaxClientNameLength         = 255
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
