package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент внешнего AI-провайдера рекомендаций
// Провайдер непрозрачен для ядра: структурированные метрики на входе,
// свободный текст на выходе
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера рекомендаций
func NewClient(baseURL string, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Generate запрашивает генерацию рекомендаций у провайдера
func (c *Client) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/v1/recommendations/generate", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// GenerateWithGracefulDegradation запрашивает генерацию с graceful degradation
// При любой ошибке провайдера (недоступность, timeout, некорректный ответ)
// возвращает ErrProviderDegraded - вызывающая сторона подставляет
// детерминированный локальный план вместо сгенерированного
func (c *Client) GenerateWithGracefulDegradation(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	c.log.Info("Generating %s recommendation via provider (goal=%s, activity=%s)",
		req.Type, req.FitnessGoal, req.ActivityLevel)

	result, err := c.Generate(ctx, req)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Recommendation provider unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderDegraded, err)
	}

	c.log.Info("Successfully generated %s recommendation via provider", req.Type)
	return result, nil
}
