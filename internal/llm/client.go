package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// languageSuffix forces German answers. It is appended once per prompt;
// the check is an exact trailing-string match, so the operation is
// idempotent.
const languageSuffix = "Bitte antworte auf Deutsch."

// Client provides access to a chat-completion API for content ideas.
type Client interface {
	// GenerateIdea sends a prompt and returns the cleaned response text.
	GenerateIdea(ctx context.Context, prompt string) (string, error)

	// Available checks whether the API endpoint accepts the credential.
	Available(ctx context.Context) bool
}

// openAIClient implements Client against the OpenAI chat-completions API.
type openAIClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
	sleep    func(time.Duration)
}

// NewOpenAIClient creates a Client for the configured endpoint. The retry
// delay is injected as a sleep function so tests run without real waits.
func NewOpenAIClient(cfg Config, observer Observer) Client {
	return newOpenAIClient(cfg, observer, time.Sleep)
}

func newOpenAIClient(cfg Config, observer Observer, sleep func(time.Duration)) *openAIClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &openAIClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
		sleep:    sleep,
	}
}

// chatRequest is the JSON body sent to POST /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

func (c *openAIClient) GenerateIdea(ctx context.Context, prompt string) (string, error) {
	if !c.cfg.Enabled() {
		return "", ErrMissingAPIKey
	}

	start := time.Now()
	body := chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: EnsureLanguageSuffix(prompt)}},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	attempts := c.cfg.Retries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		text, err := c.doRequest(ctx, body)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				Model:     c.cfg.Model,
				Attempts:  i + 1,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return CleanResponse(text), nil
		}
		lastErr = err

		// Don't retry when the caller's context is gone.
		if ctx.Err() != nil {
			break
		}
		if i < attempts-1 {
			c.sleep(time.Duration(c.cfg.RetryDelayMs) * time.Millisecond)
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		Attempts:  attempts,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return "", ErrTimeout
	}
	if isConnectionError(lastErr) {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	return "", fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

// doRequest performs one attempt with its own timeout.
func (c *openAIClient) doRequest(ctx context.Context, body chatRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *openAIClient) Available(ctx context.Context) bool {
	if !c.cfg.Enabled() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/models", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// EnsureLanguageSuffix appends the German-answer instruction unless the
// trimmed prompt already ends with it.
func EnsureLanguageSuffix(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if strings.HasSuffix(prompt, languageSuffix) {
		return prompt
	}
	return prompt + " " + languageSuffix
}

// CleanResponse strips surrounding whitespace and one layer of matching
// quote characters from a generated text.
func CleanResponse(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if first == last && (first == '"' || first == '\'') {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
