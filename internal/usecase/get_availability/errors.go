package get_availability

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес (тенант) не найден
	ErrBusinessNotFound = errors.New("get_availability: business not found")

	// ErrInvalidSchedule возвращается при некорректной конфигурации расписания
	// (закрытие не позже открытия, неизвестная таймзона)
	ErrInvalidSchedule = errors.New("get_availability: invalid schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Ошибки хранилища никогда не маскируются под пустой список слотов
	ErrInternal = errors.New("get_availability: internal error")
)
