package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pylearn_backend/internal/config"
	"pylearn_backend/pkg/logger"
	"pylearn_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Run lifecycle states reported by the assistant service. The transition
// function is owned by the remote side; this client only observes.
const (
	RunStatusQueued     = "queued"
	RunStatusInProgress = "in_progress"
	RunStatusCancelling = "cancelling"
	RunStatusCompleted  = "completed"
	RunStatusFailed     = "failed"
)

type assistantThread struct {
	ID string `json:"id"`
}

type runLastError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Run is one assistant execution against a thread.
type Run struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	LastError *runLastError `json:"last_error"`
}

type messageText struct {
	Value string `json:"value"`
}

type messageContent struct {
	Type string      `json:"type"`
	Text messageText `json:"text"`
}

// Message is one entry of a thread, newest first in listings.
type Message struct {
	ID      string           `json:"id"`
	Role    string           `json:"role"`
	Content []messageContent `json:"content"`
}

type messageListing struct {
	Data []Message `json:"data"`
}

// AssistantInfo describes the configured assistant identity, used by the
// debug endpoint.
type AssistantInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model"`
}

// AssistantClient wraps the hosted assistant's thread/run HTTP API. Thread
// and run IDs are single-use: one thread per orchestration call, discarded
// once a terminal run state is observed.
type AssistantClient struct {
	cfg        config.AssistantConfig
	httpClient *http.Client
}

func NewAssistantClient(cfg config.AssistantConfig) *AssistantClient {
	return &AssistantClient{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// Configured reports whether an assistant ID is set.
func (c *AssistantClient) Configured() bool {
	return c.cfg.AssistantID != ""
}

func (c *AssistantClient) doJSON(ctx context.Context, method, path string, reqBody interface{}, out interface{}) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("OpenAI-Beta", "assistants=v2")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &AssistantUnavailableError{Err: err}
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &AssistantUnavailableError{
			Err: fmt.Errorf("assistant API error (status %d): %s", resp.StatusCode, string(data)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &AssistantUnavailableError{Err: fmt.Errorf("malformed assistant API response: %w", err)}
	}
	return nil
}

// CreateThread opens a fresh conversation context.
func (c *AssistantClient) CreateThread(ctx context.Context) (string, error) {
	var thread assistantThread
	if err := c.doJSON(ctx, http.MethodPost, "/threads", struct{}{}, &thread); err != nil {
		return "", err
	}
	return thread.ID, nil
}

// DeleteThread discards a thread. Callers treat failures as non-fatal.
func (c *AssistantClient) DeleteThread(ctx context.Context, threadID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/threads/"+threadID, nil, nil)
}

// PostMessage appends a message to the thread.
func (c *AssistantClient) PostMessage(ctx context.Context, threadID, role, content string) error {
	body := map[string]string{"role": role, "content": content}
	return c.doJSON(ctx, http.MethodPost, "/threads/"+threadID+"/messages", body, nil)
}

// StartRun begins an assistant execution against the thread.
func (c *AssistantClient) StartRun(ctx context.Context, threadID string) (string, error) {
	if !c.Configured() {
		return "", ErrAssistantNotConfigured
	}
	body := map[string]string{"assistant_id": c.cfg.AssistantID}
	var run Run
	if err := c.doJSON(ctx, http.MethodPost, "/threads/"+threadID+"/runs", body, &run); err != nil {
		return "", err
	}
	return run.ID, nil
}

// GetRun fetches the run's current status.
func (c *AssistantClient) GetRun(ctx context.Context, threadID, runID string) (*Run, error) {
	var run Run
	if err := c.doJSON(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+runID, nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// WaitForRun polls the run at the configured interval until it reaches a
// terminal state or the polling deadline passes. completed returns nil;
// failed returns RunFailedError with the upstream message; any state
// outside {queued, in_progress, cancelling} returns RunIncompleteError.
func (c *AssistantClient) WaitForRun(ctx context.Context, threadID, runID string) error {
	start := time.Now()
	deadline := start.Add(c.cfg.PollTimeout)

	for {
		run, err := c.GetRun(ctx, threadID, runID)
		if err != nil {
			return err
		}

		logger.Log.Debug("run status",
			zap.String("runId", runID),
			zap.String("status", run.Status),
		)

		switch run.Status {
		case RunStatusCompleted:
			monitoring.AssistantRunOutcomes.WithLabelValues("completed").Inc()
			return nil
		case RunStatusFailed:
			monitoring.AssistantRunOutcomes.WithLabelValues("failed").Inc()
			msg := "unknown error"
			if run.LastError != nil && run.LastError.Message != "" {
				msg = run.LastError.Message
			}
			return &RunFailedError{Message: msg}
		case RunStatusQueued, RunStatusInProgress, RunStatusCancelling:
			// still running
		default:
			monitoring.AssistantRunOutcomes.WithLabelValues("incomplete").Inc()
			return &RunIncompleteError{Status: run.Status}
		}

		if time.Now().After(deadline) {
			monitoring.AssistantRunOutcomes.WithLabelValues("timed_out").Inc()
			return &RunTimedOutError{Elapsed: time.Since(start)}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}
	}
}

// ListMessages returns the thread's messages, newest first.
func (c *AssistantClient) ListMessages(ctx context.Context, threadID string) ([]Message, error) {
	var listing messageListing
	if err := c.doJSON(ctx, http.MethodGet, "/threads/"+threadID+"/messages", nil, &listing); err != nil {
		return nil, err
	}
	return listing.Data, nil
}

// GetAssistant retrieves the configured assistant's identity.
func (c *AssistantClient) GetAssistant(ctx context.Context) (*AssistantInfo, error) {
	if !c.Configured() {
		return nil, ErrAssistantNotConfigured
	}
	var info AssistantInfo
	if err := c.doJSON(ctx, http.MethodGet, "/assistants/"+c.cfg.AssistantID, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// RunPrompt executes the full create-thread, post-message, run, poll,
// list-messages pipeline for a single user prompt and returns the
// assistant's reply text. The thread is discarded afterwards.
func (c *AssistantClient) RunPrompt(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrAssistantNotConfigured
	}

	threadID, err := c.CreateThread(ctx)
	if err != nil {
		return "", err
	}
	// Cleanup is best-effort and must neither delay the response nor die
	// with a cancelled request context, so it runs detached.
	defer func() { go c.discardThread(threadID) }()

	if err := c.PostMessage(ctx, threadID, "user", prompt); err != nil {
		return "", err
	}

	runID, err := c.StartRun(ctx, threadID)
	if err != nil {
		return "", err
	}

	if err := c.WaitForRun(ctx, threadID, runID); err != nil {
		return "", err
	}

	msgs, err := c.ListMessages(ctx, threadID)
	if err != nil {
		return "", err
	}

	for _, msg := range msgs {
		if msg.Role == "assistant" && len(msg.Content) > 0 {
			return msg.Content[0].Text.Value, nil
		}
	}
	return "", ErrNoAssistantResponse
}

func (c *AssistantClient) discardThread(threadID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.DeleteThread(ctx, threadID); err != nil {
		logger.Log.Warn("failed to delete thread", zap.String("threadId", threadID), zap.Error(err))
	}
}
