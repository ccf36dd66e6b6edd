package pricingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PricingService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PricingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CalculatePricing запрашивает расчет стоимости тура.
// PricingService сам подставляет дефолтную базовую цену, если подходящее
// правило не найдено, поэтому "правило не найдено" не является ошибкой.
func (c *Client) CalculatePricing(ctx context.Context, date time.Time, partySize, durationHours int) (*Quote, error) {
	url := fmt.Sprintf("%s/internal/pricing/calculate", c.baseURL)

	body, err := json.Marshal(QuoteRequest{
		Date:          FormatDate(date),
		PartySize:     partySize,
		DurationHours: durationHours,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid pricing request", ErrInvalidResponse)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var quote Quote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &quote, nil
}

// CalculatePricingWithGracefulDegradation запрашивает расчет стоимости с
// graceful degradation: при недоступности PricingService возвращает
// ErrServiceDegraded, позволяя подтверждению бронирования пройти без
// эхо котировки.
func (c *Client) CalculatePricingWithGracefulDegradation(ctx context.Context, date time.Time, partySize, durationHours int) (*Quote, error) {
	c.log.Info("Fetching pricing quote for date=%s party=%d duration=%dh",
		FormatDate(date), partySize, durationHours)

	quote, err := c.CalculatePricing(ctx, date, partySize, durationHours)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("PricingService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: date=%s, error=%v", ErrServiceDegraded, FormatDate(date), err)
	}

	c.log.Info("Successfully fetched pricing quote, total=%.2f", quote.TotalPrice)
	return quote, nil
}
