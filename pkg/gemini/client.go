// Package gemini is a minimal client for the hosted generative-language API.
// One request, one response; retries and streaming are out of scope.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mkoval-dev/bookmarket-backend/pkg/config"
	pkgerrors "github.com/mkoval-dev/bookmarket-backend/pkg/errors"
)

// ErrNotConfigured reports a missing API key before any network call.
var ErrNotConfigured = pkgerrors.New(pkgerrors.CodeDependency, "gemini api key not configured")

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient builds a Gemini client from the assistant configuration.
func NewClient(cfg config.AssistantConfig) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateContent sends the conversation to the model and returns the next
// model turn's text. History may be empty for single-shot prompts.
func (c *Client) GenerateContent(ctx context.Context, system string, history []Content, message string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	contents := make([]Content, 0, len(history)+1)
	contents = append(contents, history...)
	contents = append(contents, Content{
		Role:  "user",
		Parts: []Part{{Text: message}},
	})

	reqBody := generateRequest{Contents: contents}
	if system != "" {
		reqBody.SystemInstruction = &systemInstruction{
			Parts: []Part{{Text: system}},
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal gemini request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build gemini request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call gemini")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read gemini response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode, body)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "parse gemini response")
	}

	if len(parsed.Candidates) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "gemini returned no candidates")
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "gemini returned no text content")
	}
	return text.String(), nil
}

func statusError(status int, body []byte) error {
	var parsed apiError
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("gemini status %d: %s", status, parsed.Error.Message))
	}
	return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("gemini status %d", status))
}
