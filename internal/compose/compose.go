// Package compose drives the end-to-end composition flow: validate the
// form input, call the completion service, persist the result.
package compose

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zulandar/messagecraft/internal/models"
	"github.com/zulandar/messagecraft/internal/prompt"
	"github.com/zulandar/messagecraft/internal/store"
)

// Completer is the completion-service port.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// State is the orchestrator's presentation state.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// Input is one composition request.
type Input struct {
	Recipient string      `json:"recipient"`
	Context   string      `json:"context"`
	Tone      models.Tone `json:"tone"`
	Details   string      `json:"details"`
}

// Result is a successful composition. Saved is false when the generated
// text could not be persisted; the text itself is still returned.
type Result struct {
	Message string
	Record  *models.Message
	Saved   bool
}

// Service is the composition orchestrator. A new submission clears the
// previous message and error; concurrent submissions are not queued, the
// last response to resolve wins.
type Service struct {
	completer Completer
	messages  *store.Collection[models.Message]
	out       io.Writer

	mu        sync.Mutex
	state     State
	lastInput *Input
	pending   Input
	lastMsg   string
	lastErr   string
}

// New creates a Service. out receives storage-failure log lines; nil
// discards them.
func New(completer Completer, messages *store.Collection[models.Message], out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{
		completer: completer,
		messages:  messages,
		out:       out,
		state:     StateIdle,
	}
}

// Validate checks that in can be submitted.
func Validate(in Input) error {
	if in.Recipient == "" {
		return fmt.Errorf("compose: recipient is required")
	}
	if in.Context == "" {
		return fmt.Errorf("compose: context is required")
	}
	if _, err := models.ParseTone(string(in.Tone)); err != nil {
		return err
	}
	return nil
}

// Submit runs one composition. On success the generated message is
// recorded to the message collection; a storage failure is logged and
// reported via Result.Saved rather than discarding the generated text.
// On completion failure nothing is persisted and the error is kept for
// display.
func (s *Service) Submit(ctx context.Context, in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	s.lastMsg = ""
	s.lastErr = ""
	s.state = StateSubmitting
	s.lastInput = &in
	s.mu.Unlock()

	text, err := s.completer.Complete(ctx, prompt.Build(in.Recipient, in.Context, in.Tone, in.Details))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.lastErr = err.Error()
		return Result{}, err
	}

	s.state = StateSuccess
	s.lastMsg = text

	rec := models.Message{
		ID:               uuid.NewString(),
		Recipient:        in.Recipient,
		Context:          in.Context,
		Tone:             in.Tone,
		Details:          in.Details,
		GeneratedMessage: text,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.messages.Add(rec); err != nil {
		fmt.Fprintf(s.out, "compose: message generated but not saved: %v\n", err)
		return Result{Message: text, Saved: false}, nil
	}
	return Result{Message: text, Record: &rec, Saved: true}, nil
}

// Regenerate replays the last submitted input.
func (s *Service) Regenerate(ctx context.Context) (Result, error) {
	s.mu.Lock()
	last := s.lastInput
	s.mu.Unlock()
	if last == nil {
		return Result{}, fmt.Errorf("compose: nothing to regenerate")
	}
	return s.Submit(ctx, *last)
}

// ApplyTemplate copies a template's context, tone, and details into the
// pending input. The recipient is left for the user to fill in.
func (s *Service) ApplyTemplate(tpl models.MessageTemplate) Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Context = tpl.Context
	s.pending.Tone = tpl.Tone
	s.pending.Details = tpl.Details
	return s.pending
}

// Pending returns the current prefill input.
func (s *Service) Pending() Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// State returns the current presentation state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastMessage returns the most recent generated text, empty after a
// failure or before any submission.
func (s *Service) LastMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMsg
}

// LastError returns the display message of the most recent failure.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
