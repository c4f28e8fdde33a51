package create_appointment

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес (тенант) не найден
	ErrBusinessNotFound = errors.New("create_appointment: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден в бизнесе
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrBusinessClosed возвращается, когда бизнес закрыт в указанную дату
	ErrBusinessClosed = errors.New("create_appointment: business is closed on this date")

	// ErrSlotNotAvailable возвращается, когда интервал уже занят другой записью.
	// Ожидаемый исход конкурентной модели, а не сбой системы
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrTooLateToBook возвращается, когда время начала на сегодня уже прошло
	ErrTooLateToBook = errors.New("create_appointment: requested start time has already passed")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за окно работы
	ErrOutsideWorkingHours = errors.New("create_appointment: time slot is outside working hours")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidSchedule возвращается при некорректной конфигурации расписания
	ErrInvalidSchedule = errors.New("create_appointment: invalid schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
