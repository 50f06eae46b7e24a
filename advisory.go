package inkpad

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FallbackAdvice is shown when the advisory service cannot be reached or
// returns something unusable.
const FallbackAdvice = "Signature analysis is unavailable right now."

// defaultAdvisoryPrompt is the fixed prompt sent with every image.
const defaultAdvisoryPrompt = "Briefly critique the style of this signature " +
	"in one or two sentences. Comment on legibility and flair only."

// Describer produces a short natural-language critique of an encoded
// signature image. It is a fallible external capability; drawing and export
// never depend on it.
type Describer interface {
	Describe(ctx context.Context, a Artifact) (string, error)
}

// AdviceOrFallback converts any Describer failure into the static fallback
// string. It is the call boundary required around the advisory service:
// failures must never propagate into the export or drawing paths.
func AdviceOrFallback(ctx context.Context, d Describer, a Artifact) string {
	if d == nil {
		return FallbackAdvice
	}
	text, err := d.Describe(ctx, a)
	if err != nil || text == "" {
		logger().Warn("advisory service failed", "err", err)
		return FallbackAdvice
	}
	return text
}

// HTTPDescriber calls a remote advisory endpoint with a JSON body of the
// base64-encoded image and the fixed prompt, and expects {"text": "..."} in
// return.
type HTTPDescriber struct {
	// Endpoint is the URL to POST to.
	Endpoint string

	// Client is the HTTP client to use; nil means a client with a 15 second
	// timeout.
	Client *http.Client

	// Prompt overrides the default prompt when non-empty.
	Prompt string
}

type advisoryRequest struct {
	Prompt string `json:"prompt"`
	MIME   string `json:"mime"`
	Image  string `json:"image"`
}

type advisoryResponse struct {
	Text string `json:"text"`
}

// Describe implements Describer.
func (h *HTTPDescriber) Describe(ctx context.Context, a Artifact) (string, error) {
	prompt := h.Prompt
	if prompt == "" {
		prompt = defaultAdvisoryPrompt
	}
	body, err := json.Marshal(advisoryRequest{
		Prompt: prompt,
		MIME:   a.MIME,
		Image:  base64.StdEncoding.EncodeToString(a.Data),
	})
	if err != nil {
		return "", fmt.Errorf("advisory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("advisory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisory call: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisory call: unexpected status %s", resp.Status)
	}
	var parsed advisoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("advisory response: %w", err)
	}
	if parsed.Text == "" {
		return "", fmt.Errorf("advisory response: empty text")
	}
	return parsed.Text, nil
}
