package domain

// Example is one labeled training card fed to the engine.
type Example struct {
	Label string
	Text  string
}

// ExampleRepository keeps the training log in insertion order.
type ExampleRepository interface {
	Save(example Example)
	All() []Example
	Count(label string) int
	Dominant() (string, bool)
}
