// Package ai talks to an OpenAI-compatible chat-completions backend on
// behalf of gitie: it builds bounded requests, classifies every failure
// mode distinctly, and sanitizes model output before anyone acts on it.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phravins/gitie/internal/config"
	apperrors "github.com/phravins/gitie/internal/errors"
	"github.com/phravins/gitie/internal/logger"
	"github.com/phravins/gitie/internal/prompt"
)

const (
	requestTimeout = 90 * time.Second

	// Commit messages want focused, short output.
	commitTemperature = 0.5
	commitMaxTokens   = 200

	// unreadableBody stands in when an error response body cannot be read;
	// it never masks the status error itself.
	unreadableBody = "failed to read error body from AI response"
)

// Client sends chat-completion requests for one resolved configuration.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a Client with a bounded request timeout.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        log,
	}
}

// Complete runs one free-form completion with the configured temperature.
// The result is cleaned of model scaffolding before it is returned.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, c.cfg.Temperature, 0)
}

// CommitMessage generates a commit message from a staged diff. It uses the
// commit-prompt document as system prompt and a tighter temperature and
// length budget than free-form explanation calls. Oversized diffs are
// truncated with an explicit marker, never silently.
func (c *Client) CommitMessage(ctx context.Context, diff string) (string, error) {
	return c.complete(ctx, c.cfg.SystemPrompt, prompt.CommitUser(diff), commitTemperature, commitMaxTokens)
}

func (c *Client) complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	reqBody := Request{
		Model: c.cfg.ModelName,
		Messages: []Message{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrRequestFailed, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrRequestFailed, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	c.log.Debug("sending AI request", "url", c.cfg.APIURL, "model", c.cfg.ModelName)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrRequestFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := unreadableBody
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
			body = string(raw)
		}
		return "", &apperrors.APIError{Status: resp.StatusCode, Body: body}
	}

	var parsed Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperrors.Wrap(apperrors.ErrResponseParse, err.Error())
	}

	if len(parsed.Choices) == 0 {
		return "", apperrors.ErrNoChoice
	}

	content := parsed.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", apperrors.ErrEmptyMessage
	}

	c.log.Debug("AI response received",
		"finish_reason", parsed.Choices[0].FinishReason,
		"total_tokens", parsed.Usage.TotalTokens)

	return Clean(content), nil
}
