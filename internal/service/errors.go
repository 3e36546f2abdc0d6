package service

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAssistantNotConfigured means no assistant ID was supplied. It is
	// checked before any network call is made.
	ErrAssistantNotConfigured = errors.New("assistant ID is not set")

	// ErrNoAssistantResponse means the run finished but the thread holds no
	// assistant-authored message.
	ErrNoAssistantResponse = errors.New("no response from assistant")

	// ErrNoJSONFound means the assistant's reply contains no JSON object.
	ErrNoJSONFound = errors.New("no JSON found in assistant response")
)

// AssistantUnavailableError wraps a transport-level failure reaching the
// assistant service. It is never retried automatically.
type AssistantUnavailableError struct {
	Err error
}

func (e *AssistantUnavailableError) Error() string {
	return fmt.Sprintf("assistant service unavailable: %v", e.Err)
}

func (e *AssistantUnavailableError) Unwrap() error { return e.Err }

// RunFailedError carries the upstream failure message verbatim.
type RunFailedError struct {
	Message string
}

func (e *RunFailedError) Error() string {
	return fmt.Sprintf("assistant run failed: %s", e.Message)
}

// RunIncompleteError reports a run that ended in a state that is terminal
// but not completed (expired, cancelled, requires_action, ...).
type RunIncompleteError struct {
	Status string
}

func (e *RunIncompleteError) Error() string {
	return fmt.Sprintf("run did not complete, status: %s", e.Status)
}

// RunTimedOutError reports a run abandoned after the polling deadline.
type RunTimedOutError struct {
	Elapsed time.Duration
}

func (e *RunTimedOutError) Error() string {
	return fmt.Sprintf("run did not complete within %s", e.Elapsed.Round(time.Second))
}

// InvalidJSONError means JSON-looking text was found but did not parse, or
// parsed into a payload missing required fields.
type InvalidJSONError struct {
	Reason string
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid JSON in assistant response: %s", e.Reason)
}

// Stage identifies where in the generation/check pipeline a failure
// happened.
type Stage string

const (
	StageNotConfigured        Stage = "not_configured"
	StageAssistantUnavailable Stage = "assistant_unavailable"
	StageRunFailed            Stage = "run_failed"
	StageRunIncomplete        Stage = "run_incomplete"
	StageRunTimedOut          Stage = "run_timed_out"
	StageNoAssistantResponse  Stage = "no_assistant_response"
	StageNoJSONFound          Stage = "no_json_found"
	StageInvalidJSON          Stage = "invalid_json"
)

// PipelineError tags an underlying failure with the pipeline stage it came
// from. Callers that only need a message get one through Error; callers
// that branch on the failure mode read Stage.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string { return e.Err.Error() }

func (e *PipelineError) Unwrap() error { return e.Err }

func classifyStage(err error) Stage {
	var (
		unavailable *AssistantUnavailableError
		runFailed   *RunFailedError
		incomplete  *RunIncompleteError
		timedOut    *RunTimedOutError
		invalid     *InvalidJSONError
	)
	switch {
	case errors.Is(err, ErrAssistantNotConfigured):
		return StageNotConfigured
	case errors.As(err, &runFailed):
		return StageRunFailed
	case errors.As(err, &incomplete):
		return StageRunIncomplete
	case errors.As(err, &timedOut), errors.Is(err, context.DeadlineExceeded):
		return StageRunTimedOut
	case errors.Is(err, ErrNoAssistantResponse):
		return StageNoAssistantResponse
	case errors.Is(err, ErrNoJSONFound):
		return StageNoJSONFound
	case errors.As(err, &invalid):
		return StageInvalidJSON
	case errors.As(err, &unavailable):
		return StageAssistantUnavailable
	}
	return StageAssistantUnavailable
}

// wrapPipelineError tags err unless it is already tagged.
func wrapPipelineError(err error) error {
	if err == nil {
		return nil
	}
	var tagged *PipelineError
	if errors.As(err, &tagged) {
		return err
	}
	return &PipelineError{Stage: classifyStage(err), Err: err}
}
