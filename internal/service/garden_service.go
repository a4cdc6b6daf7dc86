package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"seedgarden/config"
	"seedgarden/internal/domain"
	"seedgarden/internal/overlay"
	"seedgarden/internal/utils"
	"seedgarden/pkg/display"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownObject  = errors.New("unknown garden object")
	ErrAlreadyGrabbed = errors.New("object is already grabbed")
	ErrNotGrabbed     = errors.New("object is not grabbed")
)

// gardenNamespace keeps object IDs stable for a given random seed.
var gardenNamespace = uuid.MustParse("6f1c3a52-8f0e-4d0b-9a57-2f8f4e1d7c10")

const maxProgress = 100

// Drop describes what happened when an object was released.
type Drop struct {
	Kind     domain.ObjectKind
	ID       string
	Consumed bool
	Message  string
	Progress int
}

// Status is a snapshot of the garden.
type Status struct {
	Progress  int
	SeedsLeft int
	CardsLeft int
	Context   []string
	Dominant  string
}

// Garden owns the scene state and the response engine. All methods are safe
// for concurrent use; the engine itself is only touched under g.mu.
type Garden struct {
	mu        sync.Mutex
	layout    config.Layout
	engine    *ResponseEngine
	overlay   *overlay.Overlay
	display   display.Display
	logger    *zap.Logger
	seeds     []*domain.Seed
	cards     []*domain.Card
	grabbed   map[string]domain.Vec3
	progress  int
	lastReply string
}

// NewGarden places seeds and cards according to the layout. The same
// randomSeed always yields the same garden.
func NewGarden(layout config.Layout, randomSeed int64, engine *ResponseEngine, ov *overlay.Overlay, out display.Display, logger *zap.Logger) *Garden {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Garden{
		layout:  layout,
		engine:  engine,
		overlay: ov,
		display: out,
		logger:  logger,
		grabbed: make(map[string]domain.Vec3),
	}

	rng := rand.New(rand.NewPCG(uint64(randomSeed), uint64(randomSeed)>>1|1))
	for i := 0; i < layout.Seeds; i++ {
		g.seeds = append(g.seeds, &domain.Seed{
			ID:   objectID(randomSeed, domain.KindSeed, i),
			Word: layout.Words[rng.IntN(len(layout.Words))],
			Position: domain.Vec3{
				X: (rng.Float64() - 0.5) * 6,
				Y: 0.5 + rng.Float64()*1.8,
				Z: -1 - rng.Float64()*4,
			},
			FloatOffset: rng.Float64() * math.Pi * 2,
		})
	}
	for i := 0; i < layout.Cards; i++ {
		label := layout.Labels[i%len(layout.Labels)]
		g.cards = append(g.cards, &domain.Card{
			ID:    objectID(randomSeed, domain.KindCard, i),
			Label: label,
			Text:  layout.SampleText(label),
			Position: domain.Vec3{
				X: -3 + float64(i%3)*1.8,
				Y: 0.6 + float64(i/3)*0.9,
				Z: -2.5 - float64(i/3)*0.4,
			},
		})
	}

	logger.Info("garden planted", zap.Int("seeds", len(g.seeds)), zap.Int("cards", len(g.cards)))
	return g
}

func objectID(randomSeed int64, kind domain.ObjectKind, i int) string {
	return uuid.NewSHA1(gardenNamespace, []byte(fmt.Sprintf("%d/%s/%d", randomSeed, kind, i))).String()
}

// Seeds returns copies of the seeds still in the garden.
func (g *Garden) Seeds() []domain.Seed {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.Seed, len(g.seeds))
	for i, s := range g.seeds {
		out[i] = *s
	}
	return out
}

// Cards returns copies of the cards still in the garden.
func (g *Garden) Cards() []domain.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.Card, len(g.cards))
	for i, c := range g.cards {
		out[i] = *c
	}
	return out
}

// Grab picks an object up and remembers where it was.
func (g *Garden) Grab(id string) (domain.ObjectKind, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.grabbed[id]; held {
		return "", fmt.Errorf("grab %s: %w", id, ErrAlreadyGrabbed)
	}
	kind, pos, ok := g.find(id)
	if !ok {
		return "", fmt.Errorf("grab %s: %w", id, ErrUnknownObject)
	}
	g.grabbed[id] = pos
	g.logger.Debug("object grabbed", zap.String("id", id), zap.String("kind", string(kind)))
	return kind, nil
}

// Release drops a grabbed object at worldPos. Objects dropped within the stump
// radius are fed to the engine and leave the garden; anything else goes back
// to where it was grabbed.
func (g *Garden) Release(id string, worldPos domain.Vec3) (Drop, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	was, held := g.grabbed[id]
	if !held {
		return Drop{}, fmt.Errorf("release %s: %w", id, ErrNotGrabbed)
	}
	delete(g.grabbed, id)

	near := worldPos.DistanceTo(g.layout.Stump) < g.layout.StumpRadius
	drop := Drop{ID: id}

	if i := g.seedIndex(id); i >= 0 {
		seed := g.seeds[i]
		drop.Kind = domain.KindSeed
		if !near {
			seed.Position = was
			drop.Progress = g.progress
			return drop, nil
		}
		g.engine.FeedTokens([]string{seed.Word})
		g.seeds = append(g.seeds[:i], g.seeds[i+1:]...)
		drop.Consumed = true
		drop.Message = utils.BuildFed(seed.Word)
		g.progressUp(g.layout.SeedReward)
	} else if i := g.cardIndex(id); i >= 0 {
		card := g.cards[i]
		drop.Kind = domain.KindCard
		if !near {
			card.Position = was
			drop.Progress = g.progress
			return drop, nil
		}
		g.engine.AddExample(card.Label, card.Text)
		g.cards = append(g.cards[:i], g.cards[i+1:]...)
		drop.Consumed = true
		drop.Message = utils.BuildTrained(card.Label)
		g.progressUp(g.layout.CardReward)
	} else {
		return Drop{}, fmt.Errorf("release %s: %w", id, ErrUnknownObject)
	}

	drop.Progress = g.progress
	g.logger.Info("object fed to stump",
		zap.String("kind", string(drop.Kind)),
		zap.String("message", drop.Message),
		zap.Int("progress", g.progress))
	g.showFloating(drop.Message)
	g.info(utils.BuildProgress(g.progress))
	return drop, nil
}

// Feed sends tokens straight to the engine without touching the scene.
func (g *Garden) Feed(tokens []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.engine.FeedTokens(tokens)
}

// Train adds an example straight to the engine without touching the scene.
func (g *Garden) Train(label, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.engine.AddExample(label, text)
}

// Tick advances the float animation to the given time in milliseconds. Once
// the garden is empty the stump's reply is shown whenever it changes.
func (g *Garden) Tick(ms float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, s := range g.seeds {
		if _, held := g.grabbed[s.ID]; held {
			continue
		}
		s.Position.Y = 0.6 + math.Sin(ms/800+s.FloatOffset)*0.15
	}

	if len(g.seeds) > 0 || len(g.cards) > 0 {
		return
	}
	reply := g.engine.Respond()
	if reply == g.lastReply {
		return
	}
	g.lastReply = reply
	g.showFloating(reply)
	g.reply(reply)
}

// Respond shows and returns the engine's reply right away.
func (g *Garden) Respond() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	reply := g.engine.Respond()
	g.lastReply = reply
	g.reply(reply)
	return reply
}

func (g *Garden) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Status{
		Progress:  g.progress,
		SeedsLeft: len(g.seeds),
		CardsLeft: len(g.cards),
		Context:   g.engine.Context(),
		Dominant:  g.engine.Dominant(),
	}
}

// ShowStatus renders the status line on the display.
func (g *Garden) ShowStatus() Status {
	st := g.Status()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.info(utils.BuildStatus(st.Progress, st.SeedsLeft, st.CardsLeft, st.Context, st.Dominant))
	return st
}

func (g *Garden) find(id string) (domain.ObjectKind, domain.Vec3, bool) {
	if i := g.seedIndex(id); i >= 0 {
		return domain.KindSeed, g.seeds[i].Position, true
	}
	if i := g.cardIndex(id); i >= 0 {
		return domain.KindCard, g.cards[i].Position, true
	}
	return "", domain.Vec3{}, false
}

func (g *Garden) seedIndex(id string) int {
	for i, s := range g.seeds {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (g *Garden) cardIndex(id string) int {
	for i, c := range g.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (g *Garden) progressUp(val int) {
	g.progress = min(maxProgress, g.progress+val)
}

func (g *Garden) showFloating(text string) {
	if g.overlay != nil {
		g.overlay.Show(text)
	}
	if g.display == nil {
		return
	}
	if err := g.display.Floating(text); err != nil {
		g.logger.Warn("failed to show floating text", zap.Error(err))
	}
}

func (g *Garden) reply(text string) {
	if g.display == nil {
		return
	}
	if err := g.display.Reply(text); err != nil {
		g.logger.Warn("failed to show reply", zap.Error(err))
	}
}

func (g *Garden) info(text string) {
	if g.display == nil {
		return
	}
	if err := g.display.Info(text); err != nil {
		g.logger.Warn("failed to show info", zap.Error(err))
	}
}

// FloatTime converts a duration since start into the tick clock.
func FloatTime(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
