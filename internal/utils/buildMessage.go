package utils

import (
	"fmt"
	"strings"
)

// BuildWelcome is shown when a play session starts.
func BuildWelcome(seeds, cards int) string {
	return fmt.Sprintf(
		"Welcome to the seed garden! 🌱\n\n"+
			"There are %d word seeds and %d example cards floating around.\n"+
			"➡️ Drop a seed on the stump to feed it a word\n"+
			"➡️ Drop a card on the stump to teach it a feeling\n"+
			"When the garden is empty the stump will talk back!",
		seeds, cards,
	)
}

// BuildProgress renders the progress counter.
func BuildProgress(progress int) string {
	return fmt.Sprintf("Progress: %d%%", progress)
}

func BuildFed(word string) string {
	return "fed: " + word
}

func BuildTrained(label string) string {
	return "trained: " + label
}

// BuildStatus summarizes the garden for the status event.
func BuildStatus(progress, seeds, cards int, context []string, dominant string) string {
	window := strings.Join(context, " ")
	if window == "" {
		window = "(empty)"
	}
	return fmt.Sprintf("%s | seeds left: %d | cards left: %d | words: %s | mood: %s",
		BuildProgress(progress), seeds, cards, window, dominant)
}
