package service

import (
	"fmt"
	"strings"

	"seedgarden/internal/domain"
)

// MaxContext is how many recent tokens the engine keeps.
const MaxContext = 6

// EmptyPrompt is returned while the context window holds no text.
const EmptyPrompt = "Hello! Give me some seeds to make a sentence!"

// ResponseEngine accumulates training examples and recent tokens and turns
// them into a short reply. It is not safe for concurrent use.
type ResponseEngine struct {
	examples domain.ExampleRepository
	context  []string
}

// NewResponseEngine creates an engine backed by the given example repository.
func NewResponseEngine(examples domain.ExampleRepository) *ResponseEngine {
	return &ResponseEngine{examples: examples}
}

// AddExample records a labeled example.
func (e *ResponseEngine) AddExample(label, text string) {
	e.examples.Save(domain.Example{Label: label, Text: text})
}

// FeedTokens appends tokens to the context window and keeps the newest MaxContext.
func (e *ResponseEngine) FeedTokens(tokens []string) {
	e.context = append(e.context, tokens...)
	if n := len(e.context); n > MaxContext {
		e.context = append([]string(nil), e.context[n-MaxContext:]...)
	}
}

// Dominant returns the label with the highest example count, or
// domain.NeutralLabel when no example was added.
func (e *ResponseEngine) Dominant() string {
	if label, ok := e.examples.Dominant(); ok {
		return label
	}
	return domain.NeutralLabel
}

// Context returns a copy of the current context window.
func (e *ResponseEngine) Context() []string {
	out := make([]string, len(e.context))
	copy(out, e.context)
	return out
}

func (e *ResponseEngine) Examples() []domain.Example {
	return e.examples.All()
}

func (e *ResponseEngine) Score(label string) int {
	return e.examples.Count(label)
}

// Respond builds a reply from the dominant label and the context window.
// It has no side effects.
func (e *ResponseEngine) Respond() string {
	text := strings.Join(e.context, " ")
	if len(text) == 0 {
		return EmptyPrompt
	}

	switch domain.StyleOf(e.Dominant()) {
	case domain.StyleHappy:
		return fmt.Sprintf("I feel happy when I hear: %s 😊", text)
	case domain.StyleSad:
		return fmt.Sprintf("That sounds a bit sad: %s 💧", text)
	case domain.StyleRobot:
		return "ROBOT RESPONSE: " + strings.ToUpper(text)
	default:
		return fmt.Sprintf("You said: %s. I like that!", text)
	}
}
