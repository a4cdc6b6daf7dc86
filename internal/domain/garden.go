package domain

import "math"

type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// DistanceTo returns the euclidean distance between two points.
func (v Vec3) DistanceTo(o Vec3) float64 {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Seed is a floating word the player can feed to the stump.
type Seed struct {
	ID          string  `yaml:"id"`
	Word        string  `yaml:"word"`
	Position    Vec3    `yaml:"position"`
	FloatOffset float64 `yaml:"float_offset"`
}

// Card is a labeled example the player can train the stump with.
type Card struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Text     string `yaml:"text"`
	Position Vec3   `yaml:"position"`
}

// ObjectKind tells seeds and cards apart in grab/release events.
type ObjectKind string

const (
	KindSeed ObjectKind = "seed"
	KindCard ObjectKind = "card"
)
