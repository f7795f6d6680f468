// Package inference calls the hosted text-generation model used for legal
// analysis. Callers treat any error as a signal to fall back to the local
// statute matcher.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/config"
)

// Client talks to a text-generation inference endpoint. Zero value is not
// usable; construct with New.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

// New builds a client from config. The request timeout comes from
// INFERENCE_TIMEOUT_SECONDS and bounds every Generate call.
func New(conf *config.Config) *Client {
	return &Client{
		url:    conf.InferenceURL,
		apiKey: conf.InferenceAPIKey,
		http:   &http.Client{Timeout: conf.InferenceTimeout},
	}
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Generate sends a prompt to the model and returns the first generated
// text. Non-2xx statuses and malformed bodies are errors.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.url == "" {
		return "", fmt.Errorf("inference: no endpoint configured")
	}
	body, err := json.Marshal(generateRequest{Inputs: prompt})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		zap.S().Warnw("inference request failed", "status", resp.StatusCode, "body", string(b))
		return "", fmt.Errorf("inference: unexpected status %d", resp.StatusCode)
	}

	var out []generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("inference: decode response: %w", err)
	}
	if len(out) == 0 || out[0].GeneratedText == "" {
		return "", fmt.Errorf("inference: empty response")
	}
	return out[0].GeneratedText, nil
}

// Analyze asks the model for details and related cases on a statute query.
func (c *Client) Analyze(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf("Give me details and related cases for IPC section or topic: %s", query)
	return c.Generate(ctx, prompt)
}

// SummarizeDocument asks the model for a short legal summary of a document.
func (c *Client) SummarizeDocument(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Analyze this legal document and provide a concise 3-point summary of the key legal aspects, important points, and potential implications: %s", text)
	return c.Generate(ctx, prompt)
}
