package overlay

import (
	"sort"
	"sync"
	"time"
)

// DefaultTTL is how long a floating text stays visible.
const DefaultTTL = 1500 * time.Millisecond

type entry struct {
	seq   uint64
	text  string
	timer *time.Timer
}

// Overlay holds the floating texts currently shown above the stump.
// Each text removes itself once its TTL elapses.
type Overlay struct {
	mu      sync.RWMutex // guards texts and next; timers fire on their own goroutines
	texts   map[uint64]*entry
	next    uint64
	ttl     time.Duration
	onClear func(text string)
}

// New creates an overlay. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Overlay {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Overlay{texts: make(map[uint64]*entry), ttl: ttl}
}

// OnClear registers a callback invoked after a text expires.
func (o *Overlay) OnClear(fn func(text string)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onClear = fn
}

// Show adds a floating text and schedules its removal.
func (o *Overlay) Show(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.next++
	e := &entry{seq: o.next, text: text}
	e.timer = time.AfterFunc(o.ttl, func() { o.expire(e.seq) })
	o.texts[e.seq] = e
}

func (o *Overlay) expire(seq uint64) {
	o.mu.Lock()
	e, ok := o.texts[seq]
	if ok {
		delete(o.texts, seq)
	}
	fn := o.onClear
	o.mu.Unlock()

	if ok && fn != nil {
		fn(e.text)
	}
}

// Active returns the visible texts, oldest first.
func (o *Overlay) Active() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	entries := make([]*entry, 0, len(o.texts))
	for _, e := range o.texts {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.text
	}
	return out
}

// Close stops pending timers and clears every text.
func (o *Overlay) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for seq, e := range o.texts {
		e.timer.Stop()
		delete(o.texts, seq)
	}
}
