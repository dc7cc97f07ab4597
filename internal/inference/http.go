package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/resilience"
)

// httpResponder talks to a remote inference service speaking the Handler's wire format.
type httpResponder struct {
	httpClient *http.Client
	baseURL    string
	retry      resilience.RetryConfig
}

// NewHTTPResponder is the constructor. Failed calls are retried per retry and
// surface as domain.ErrRequestFailed.
func NewHTTPResponder(baseURL string, timeout time.Duration, retry resilience.RetryConfig) Responder {
	retry.RetryableChecker = isRetryable
	return &httpResponder{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		retry:      retry,
	}
}

// statusError is a non-2xx answer from the remote service.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("inference service returned %d: %s", e.code, e.body)
}

// isRetryable retries transport failures and 5xx answers only.
func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}

func (c *httpResponder) Chat(ctx context.Context, lang domain.Language, question string) (string, error) {
	cfg := c.retry
	cfg.Name = "inference.chat"
	return c.call(ctx, cfg, "/inference/chat", chatRequest{Language: string(lang), Question: question})
}

func (c *httpResponder) Analyze(ctx context.Context, lang domain.Language, kind domain.ServiceKind, q Query) (string, error) {
	cfg := c.retry
	cfg.Name = "inference.analyze"
	return c.call(ctx, cfg, "/inference/analyze", analyzeRequest{
		Language:  string(lang),
		Kind:      string(kind),
		Text:      q.Text,
		ImageName: q.ImageName,
	})
}

func (c *httpResponder) call(ctx context.Context, cfg resilience.RetryConfig, path string, payload interface{}) (string, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("could not marshal inference request: %w", err)
	}

	answer, err := resilience.Retry(ctx, cfg, func(ctx context.Context) (string, error) {
		return c.post(ctx, path, reqBody)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	return answer, nil
}

func (c *httpResponder) post(ctx context.Context, path string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("could not read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &statusError{code: resp.StatusCode, body: string(respBody)}
	}

	var out answerResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if out.Response == "" {
		return "", fmt.Errorf("inference service returned an empty response")
	}
	return out.Response, nil
}
