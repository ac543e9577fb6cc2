package summarizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const (
	DefaultMinLength = 25
	DefaultMaxLength = 50
)

type summarizeRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters summarizeParameters `json:"parameters"`
}

type summarizeParameters struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

type summarizeResponse struct {
	SummaryText string `json:"summary_text"`
}

// HostedClient llama a un endpoint de inferencia estilo Hugging Face
// (modelo facebook/bart-large-cnn por defecto).
type HostedClient struct {
	url        string
	token      string
	httpClient *http.Client
	MinLength  int
	MaxLength  int
}

func NewHostedClient(url, token string, timeout time.Duration) *HostedClient {
	return &HostedClient{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		MinLength:  DefaultMinLength,
		MaxLength:  DefaultMaxLength,
	}
}

func (c *HostedClient) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(summarizeRequest{
		Inputs: text,
		Parameters: summarizeParameters{
			MinLength: c.MinLength,
			MaxLength: c.MaxLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode summarize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build summarize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarize request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("summarizer returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out []summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode summarize response: %w", err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("summarizer returned no summaries")
	}
	return out[0].SummaryText, nil
}
