package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidWindow возвращается, когда окно работы некорректно (close <= open)
	ErrInvalidWindow = errors.New("close time must be after open time")

	// ErrInvalidGranularity возвращается при недопустимом шаге сетки слотов
	ErrInvalidGranularity = errors.New("invalid slot granularity")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
