package businessservice

// Business модель бизнеса (тенанта) из BusinessService
type Business struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"` // IANA таймзона, например "America/Sao_Paulo"
	Phone    *string `json:"phone,omitempty"`
}

// Service модель услуги из каталога бизнеса
type Service struct {
	ID              int64    `json:"id"`
	BusinessID      int64    `json:"business_id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
}

// Professional модель профессионала бизнеса
type Professional struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
}

// ErrorResponse модель ошибки от BusinessService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
