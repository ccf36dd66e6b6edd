package pricingservice

import "time"

// QuoteRequest модель запроса расчета стоимости тура
type QuoteRequest struct {
	Date          string `json:"date"`          // YYYY-MM-DD
	PartySize     int    `json:"party_size"`
	DurationHours int    `json:"duration_hours"`
}

// Quote модель расчета стоимости от PricingService.
// Все денежные значения округлены сервисом до 2 знаков.
// Набор дней, считающихся "выходными" для множителя, - конфигурация
// правила ценообразования на стороне PricingService; клиент лишь
// сообщает, был ли множитель применен.
type Quote struct {
	VehicleType              string  `json:"vehicle_type"`
	BasePrice                float64 `json:"base_price"`
	WeekendMultiplierApplied bool    `json:"weekend_multiplier_applied"`
	Gratuity                 float64 `json:"gratuity"`        // 15%
	Taxes                    float64 `json:"taxes"`           // 9%
	TotalPrice               float64 `json:"total_price"`
	DepositAmount            float64 `json:"deposit_amount"`  // 50%
	FinalPaymentAmount       float64 `json:"final_payment_amount"`
}

// ErrorResponse модель ошибки от PricingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// dateFormat формат даты в запросах к PricingService
const dateFormat = "2006-01-02"

// FormatDate форматирует дату для запроса
func FormatDate(t time.Time) string {
	return t.Format(dateFormat)
}
