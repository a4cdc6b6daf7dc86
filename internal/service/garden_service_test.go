package service

import (
	"errors"
	"testing"
	"time"

	"seedgarden/config"
	"seedgarden/internal/domain"
	"seedgarden/internal/overlay"
	"seedgarden/internal/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recordingDisplay struct {
	floating []string
	replies  []string
	info     []string
	err      error
}

func (d *recordingDisplay) Floating(text string) error {
	d.floating = append(d.floating, text)
	return d.err
}

func (d *recordingDisplay) Reply(text string) error {
	d.replies = append(d.replies, text)
	return d.err
}

func (d *recordingDisplay) Info(text string) error {
	d.info = append(d.info, text)
	return d.err
}

func newTestGarden(t *testing.T, layout config.Layout) (*Garden, *recordingDisplay) {
	t.Helper()
	out := &recordingDisplay{}
	ov := overlay.New(time.Hour)
	t.Cleanup(ov.Close)
	engine := NewResponseEngine(training.NewMemoryExampleRepository(zaptest.NewLogger(t)))
	return NewGarden(layout, 1, engine, ov, out, zaptest.NewLogger(t)), out
}

var stump = domain.Vec3{X: 0, Y: 1, Z: -0.5}

func TestNewGarden_Placement(t *testing.T) {
	g, _ := newTestGarden(t, config.DefaultLayout())

	seeds := g.Seeds()
	cards := g.Cards()
	require.Len(t, seeds, 10)
	require.Len(t, cards, 6)

	for _, s := range seeds {
		assert.Contains(t, config.DefaultLayout().Words, s.Word)
		assert.GreaterOrEqual(t, s.Position.X, -3.0)
		assert.Less(t, s.Position.X, 3.0)
		assert.GreaterOrEqual(t, s.Position.Y, 0.5)
		assert.LessOrEqual(t, s.Position.Z, -1.0)
		assert.NotEmpty(t, s.ID)
	}

	assert.Equal(t, []string{"happy", "sad", "robot", "happy", "sad", "robot"},
		[]string{cards[0].Label, cards[1].Label, cards[2].Label, cards[3].Label, cards[4].Label, cards[5].Label})
	assert.Equal(t, domain.Vec3{X: -3, Y: 0.6, Z: -2.5}, cards[0].Position)
	assert.InDelta(t, -1.2, cards[4].Position.X, 1e-9)
	assert.InDelta(t, 1.5, cards[4].Position.Y, 1e-9)
	assert.InDelta(t, -2.9, cards[4].Position.Z, 1e-9)
	assert.Equal(t, "Beep boop says the robot.", cards[2].Text)
}

func TestNewGarden_SameSeedSameGarden(t *testing.T) {
	a, _ := newTestGarden(t, config.DefaultLayout())
	b, _ := newTestGarden(t, config.DefaultLayout())
	assert.Equal(t, a.Seeds(), b.Seeds())
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestRelease_SeedNearStump(t *testing.T) {
	g, out := newTestGarden(t, config.DefaultLayout())
	seed := g.Seeds()[0]

	kind, err := g.Grab(seed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSeed, kind)

	drop, err := g.Release(seed.ID, stump)
	require.NoError(t, err)
	assert.True(t, drop.Consumed)
	assert.Equal(t, "fed: "+seed.Word, drop.Message)
	assert.Equal(t, 5, drop.Progress)

	assert.Len(t, g.Seeds(), 9)
	assert.Equal(t, []string{seed.Word}, g.Status().Context)
	assert.Equal(t, []string{"fed: " + seed.Word}, out.floating)
	assert.Equal(t, []string{"Progress: 5%"}, out.info)
	assert.Equal(t, []string{"fed: " + seed.Word}, g.overlay.Active())
}

func TestRelease_CardNearStump(t *testing.T) {
	g, out := newTestGarden(t, config.DefaultLayout())
	card := g.Cards()[2]

	_, err := g.Grab(card.ID)
	require.NoError(t, err)
	drop, err := g.Release(card.ID, domain.Vec3{X: 0.5, Y: 1, Z: -0.5})
	require.NoError(t, err)

	assert.Equal(t, domain.KindCard, drop.Kind)
	assert.True(t, drop.Consumed)
	assert.Equal(t, "trained: robot", drop.Message)
	assert.Equal(t, 10, drop.Progress)
	assert.Equal(t, "robot", g.Status().Dominant)
	assert.Len(t, g.Cards(), 5)
	assert.Equal(t, []string{"trained: robot"}, out.floating)
}

func TestRelease_FarAwayReturnsToSpot(t *testing.T) {
	g, out := newTestGarden(t, config.DefaultLayout())
	card := g.Cards()[0]

	_, err := g.Grab(card.ID)
	require.NoError(t, err)
	// exactly one radius away counts as far
	drop, err := g.Release(card.ID, domain.Vec3{X: 0, Y: 1, Z: 0.5})
	require.NoError(t, err)

	assert.False(t, drop.Consumed)
	assert.Equal(t, 0, drop.Progress)
	assert.Len(t, g.Cards(), 6)
	assert.Equal(t, card.Position, g.Cards()[0].Position)
	assert.Empty(t, out.floating)
	assert.Equal(t, "neutral", g.Status().Dominant)
}

func TestGrabRelease_Errors(t *testing.T) {
	g, _ := newTestGarden(t, config.DefaultLayout())
	seed := g.Seeds()[0]

	_, err := g.Grab("missing")
	assert.True(t, errors.Is(err, ErrUnknownObject))

	_, err = g.Release(seed.ID, stump)
	assert.True(t, errors.Is(err, ErrNotGrabbed))

	_, err = g.Grab(seed.ID)
	require.NoError(t, err)
	_, err = g.Grab(seed.ID)
	assert.True(t, errors.Is(err, ErrAlreadyGrabbed))
}

func TestProgress_CapsAtHundred(t *testing.T) {
	g, _ := newTestGarden(t, config.DefaultLayout())

	for _, s := range g.Seeds() {
		_, err := g.Grab(s.ID)
		require.NoError(t, err)
		_, err = g.Release(s.ID, stump)
		require.NoError(t, err)
	}
	assert.Equal(t, 50, g.Status().Progress)

	var last Drop
	for _, c := range g.Cards() {
		_, err := g.Grab(c.ID)
		require.NoError(t, err)
		last, err = g.Release(c.ID, stump)
		require.NoError(t, err)
	}
	assert.Equal(t, 100, last.Progress)
	assert.Equal(t, 100, g.Status().Progress)
}

func TestTick_FloatsSeeds(t *testing.T) {
	g, _ := newTestGarden(t, config.DefaultLayout())
	held := g.Seeds()[0]
	_, err := g.Grab(held.ID)
	require.NoError(t, err)

	g.Tick(1234)

	seeds := g.Seeds()
	assert.Equal(t, held.Position.Y, seeds[0].Position.Y, "held seeds do not bob")
	for _, s := range seeds[1:] {
		assert.InDelta(t, 0.6, s.Position.Y, 0.15+1e-9)
	}
}

func TestTick_RespondsOnceWhenEmpty(t *testing.T) {
	layout := config.DefaultLayout()
	layout.Seeds = 1
	layout.Cards = 1
	layout.Words = []string{"ball"}
	g, out := newTestGarden(t, layout)

	g.Tick(0)
	assert.Empty(t, out.replies, "garden is not empty yet")

	for _, id := range []string{g.Seeds()[0].ID, g.Cards()[0].ID} {
		_, err := g.Grab(id)
		require.NoError(t, err)
		_, err = g.Release(id, stump)
		require.NoError(t, err)
	}

	g.Tick(16)
	g.Tick(32)
	assert.Equal(t, []string{"I feel happy when I hear: ball 😊"}, out.replies)

	g.Feed([]string{"moon"})
	g.Tick(48)
	assert.Equal(t, "I feel happy when I hear: ball moon 😊", out.replies[len(out.replies)-1])
	assert.Len(t, out.replies, 2)
}

func TestRespond_AndTrain(t *testing.T) {
	g, out := newTestGarden(t, config.DefaultLayout())
	assert.Equal(t, "Hello! Give me some seeds to make a sentence!", g.Respond())

	g.Train("sad", "rain")
	g.Feed([]string{"blue"})
	assert.Equal(t, "That sounds a bit sad: blue 💧", g.Respond())
	assert.Len(t, out.replies, 2)
}

func TestShowStatus(t *testing.T) {
	g, out := newTestGarden(t, config.DefaultLayout())
	g.Feed([]string{"run"})

	st := g.ShowStatus()
	assert.Equal(t, 10, st.SeedsLeft)
	assert.Equal(t, 6, st.CardsLeft)
	require.Len(t, out.info, 1)
	assert.Contains(t, out.info[0], "words: run")
}

func TestDisplayErrorsAreNotFatal(t *testing.T) {
	g, out := newTestGarden(t, config.DefaultLayout())
	out.err = errors.New("terminal gone")

	assert.NotPanics(t, func() { g.Respond() })
	assert.Len(t, out.replies, 1)
}
