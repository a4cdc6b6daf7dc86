package handler

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"seedgarden/internal/domain"
	"seedgarden/internal/service"

	"go.uber.org/zap"
)

// ErrInvalidInput is returned for any event the handler cannot act on.
var ErrInvalidInput = errors.New("invalid input")

// EventPayload is one event sent by the host scene, one JSON object per line.
type EventPayload struct {
	Event    string       `json:"event"`
	ID       string       `json:"id,omitempty"`
	Position *domain.Vec3 `json:"position,omitempty"`
	Ms       *float64     `json:"ms,omitempty"`
	Tokens   []string     `json:"tokens,omitempty"`
	Label    string       `json:"label,omitempty"`
	Text     string       `json:"text,omitempty"`
}

type EventHandler struct {
	garden *service.Garden
	logger *zap.Logger
	start  time.Time
}

func NewEventHandler(garden *service.Garden, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{garden: garden, logger: logger, start: time.Now()}
}

// Handle decodes and applies a single event line.
func (h *EventHandler) Handle(line []byte) error {
	var payload EventPayload
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return fmt.Errorf("%w: failed to decode event: %v", ErrInvalidInput, err)
	}
	return h.Dispatch(payload)
}

// Dispatch applies an already decoded event.
func (h *EventHandler) Dispatch(payload EventPayload) error {
	switch strings.ToLower(payload.Event) {
	case "grab":
		if payload.ID == "" {
			return fmt.Errorf("%w: grab needs an id", ErrInvalidInput)
		}
		_, err := h.garden.Grab(payload.ID)
		return err

	case "release":
		if payload.ID == "" || payload.Position == nil {
			return fmt.Errorf("%w: release needs an id and a position", ErrInvalidInput)
		}
		_, err := h.garden.Release(payload.ID, *payload.Position)
		return err

	case "tick":
		ms := service.FloatTime(time.Since(h.start))
		if payload.Ms != nil {
			ms = *payload.Ms
		}
		h.garden.Tick(ms)
		return nil

	case "feed":
		h.garden.Feed(payload.Tokens)
		return nil

	case "train":
		if payload.Label == "" {
			return fmt.Errorf("%w: train needs a label", ErrInvalidInput)
		}
		h.garden.Train(payload.Label, payload.Text)
		return nil

	case "respond":
		h.garden.Respond()
		return nil

	case "status":
		h.garden.ShowStatus()
		return nil

	default:
		return fmt.Errorf("%w: unknown event %q", ErrInvalidInput, payload.Event)
	}
}

// Run reads events until the reader is exhausted or ctx is cancelled. Bad
// events are logged and skipped.
func (h *EventHandler) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if err := h.Handle(line); err != nil {
			h.logger.Warn("event rejected", zap.Int("line", lineNo), zap.Error(err))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	return nil
}
