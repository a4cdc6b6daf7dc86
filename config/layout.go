package config

import (
	"errors"
	"fmt"
	"os"

	"seedgarden/internal/domain"

	"gopkg.in/yaml.v3"
)

// Layout describes how the garden is populated and scored.
type Layout struct {
	Seeds        int               `yaml:"seeds"`
	Cards        int               `yaml:"cards"`
	Words        []string          `yaml:"words"`
	Labels       []string          `yaml:"labels"`
	Samples      map[string]string `yaml:"samples"`
	FallbackText string            `yaml:"fallback_text"`
	Stump        domain.Vec3       `yaml:"stump"`
	StumpRadius  float64           `yaml:"stump_radius"`
	SeedReward   int               `yaml:"seed_reward"`
	CardReward   int               `yaml:"card_reward"`
}

// DefaultLayout is the garden the demo ships with.
func DefaultLayout() Layout {
	return Layout{
		Seeds:  10,
		Cards:  6,
		Words:  []string{"play", "happy", "run", "ball", "moon", "blue", "sing", "fast", "robot", "sad", "puzzle", "spark"},
		Labels: []string{domain.LabelHappy, domain.LabelSad, domain.LabelRobot},
		Samples: map[string]string{
			domain.LabelHappy: "This is a happy sentence full of sunshine.",
			domain.LabelSad:   "This is a quiet, sad sentence.",
		},
		FallbackText: "Beep boop says the robot.",
		Stump:        domain.Vec3{X: 0, Y: 1, Z: -0.5},
		StumpRadius:  1.0,
		SeedReward:   5,
		CardReward:   10,
	}
}

// SampleText returns the card text for a label.
func (l Layout) SampleText(label string) string {
	if text, ok := l.Samples[label]; ok {
		return text
	}
	return l.FallbackText
}

// Validate reports the first problem with the layout.
func (l Layout) Validate() error {
	switch {
	case l.Seeds < 0 || l.Cards < 0:
		return errors.New("seed and card counts must not be negative")
	case l.Seeds > 0 && len(l.Words) == 0:
		return errors.New("layout has seeds but no words")
	case l.Cards > 0 && len(l.Labels) == 0:
		return errors.New("layout has cards but no labels")
	case l.StumpRadius <= 0:
		return errors.New("stump_radius must be positive")
	}
	for _, label := range l.Labels {
		if label == "" {
			return errors.New("labels must not be empty")
		}
	}
	return nil
}

// LoadLayout reads a YAML layout. Fields missing from the file keep their
// DefaultLayout values. An empty path returns the default layout.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout %s: %w", path, err)
	}
	return layout, nil
}
