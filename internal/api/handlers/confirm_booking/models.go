package confirm_booking

import (
	"github.com/vinetours/VT-FleetService/internal/domain"
	confirmBooking "github.com/vinetours/VT-FleetService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	BookingID int64 `json:"bookingId"`
	PartySize int   `json:"partySize"`
}

// QuoteResponse HTTP model эхо-котировки
type QuoteResponse struct {
	VehicleType              string  `json:"vehicleType"`
	BasePrice                float64 `json:"basePrice"`
	WeekendMultiplierApplied bool    `json:"weekendMultiplierApplied"`
	Gratuity                 float64 `json:"gratuity"`
	Taxes                    float64 `json:"taxes"`
	TotalPrice               float64 `json:"totalPrice"`
	DepositAmount            float64 `json:"depositAmount"`
	FinalPaymentAmount       float64 `json:"finalPaymentAmount"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	BlockID   int64          `json:"blockId"`
	VehicleID int64          `json:"vehicleId"`
	BookingID int64          `json:"bookingId"`
	Date      string         `json:"date"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Warnings  []string       `json:"warnings,omitempty"`
	Quote     *QuoteResponse `json:"quote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmBookingRequest) ToUseCaseRequest(holdID int64) *confirmBooking.Request {
	return &confirmBooking.Request{
		HoldID:    holdID,
		BookingID: r.BookingID,
		PartySize: r.PartySize,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	out := &ConfirmBookingResponse{
		BlockID:   resp.BlockID,
		VehicleID: resp.VehicleID,
		BookingID: resp.BookingID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Warnings:  resp.Violations,
	}

	if resp.Quote != nil {
		out.Quote = &QuoteResponse{
			VehicleType:              resp.Quote.VehicleType,
			BasePrice:                resp.Quote.BasePrice,
			WeekendMultiplierApplied: resp.Quote.WeekendMultiplierApplied,
			Gratuity:                 resp.Quote.Gratuity,
			Taxes:                    resp.Quote.Taxes,
			TotalPrice:               resp.Quote.TotalPrice,
			DepositAmount:            resp.Quote.DepositAmount,
			FinalPaymentAmount:       resp.Quote.FinalPaymentAmount,
		}
	}

	return out
}
