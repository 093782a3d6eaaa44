package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/vojniknikola-ui/strojopromet-api/models"
	"github.com/vojniknikola-ui/strojopromet-api/pricing"
)

// DefaultDebounce is the quiet window between a mutation and the remote save
// it schedules. A mutation inside the window cancels and reschedules the save.
const DefaultDebounce = 150 * time.Millisecond

// Persister is the synchronous local tier: every mutation is written here
// before any remote save is scheduled.
type Persister interface {
	Load() ([]models.CartLine, error)
	Save(lines []models.CartLine) error
	Clear() error
}

// RemoteClient is the asynchronous remote tier, normally backed by the
// two-tier persistence gateway.
type RemoteClient interface {
	Load(ctx context.Context) ([]models.CartLine, error)
	Save(ctx context.Context, lines []models.CartLine) error
	Delete(ctx context.Context) error
}

// Store owns the in-memory cart for one session. Mutations are synchronous
// state transitions; remote persistence is scheduled and forgotten.
type Store struct {
	mu       sync.Mutex
	lines    []models.CartLine
	local    Persister
	remote   RemoteClient
	debounce time.Duration

	timer      *time.Timer
	cancelSave context.CancelFunc
	lastSynced string // serialized form of the last confirmed remote state
	loadGen    uint64 // bumped on every mutation/load; guards stale fetches
}

type Option func(*Store)

// WithDebounce overrides the quiet window. Tests shrink it.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

func NewStore(local Persister, remote RemoteClient, opts ...Option) *Store {
	s := &Store{
		local:    local,
		remote:   remote,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load primes the store: the local snapshot is applied immediately, then a
// remote fetch runs in the background. When it lands it overwrites the
// in-memory state (remote wins, no merge) unless a mutation or a newer load
// superseded it in the meantime.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	if lines, err := s.local.Load(); err != nil {
		log.Printf("⚠️ Cart: local load failed: %v", err)
	} else if lines != nil {
		s.lines = lines
	}
	s.mu.Unlock()

	go func() {
		lines, err := s.remote.Load(ctx)
		if err != nil {
			log.Printf("⚠️ Cart: remote load failed, keeping local snapshot: %v", err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.loadGen {
			// A mutation or newer load happened while this fetch was in
			// flight; its result is stale.
			return
		}
		s.lines = lines
		s.lastSynced = serialize(lines)
		if err := s.local.Save(lines); err != nil {
			log.Printf("⚠️ Cart: local save after remote load failed: %v", err)
		}
	}()
}

// AddItem appends a new line with quantity 1 or, when a line for the same
// part already exists, bumps its quantity. The stored snapshot is not
// refreshed: the price captured at first add wins.
func (s *Store) AddItem(part models.Part) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].PartID == part.ID {
			s.lines[i].Quantity++
			s.afterMutation()
			return
		}
	}
	s.lines = append(s.lines, models.NewCartLine(part, 1))
	s.afterMutation()
}

// RemoveItem deletes the line for a part; no-op when absent.
func (s *Store) RemoveItem(partID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].PartID == partID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.afterMutation()
			return
		}
	}
}

// SetQuantity replaces a line's quantity. A quantity of zero or less removes
// the line; no line with quantity <= 0 ever exists in the cart.
func (s *Store) SetQuantity(partID uint, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(partID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].PartID == partID {
			s.lines[i].Quantity = quantity
			s.afterMutation()
			return
		}
	}
}

// Clear empties the cart, drops the local snapshot and requests best-effort
// deletion of the persisted remote cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.loadGen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancelSave != nil {
		s.cancelSave()
		s.cancelSave = nil
	}
	s.lastSynced = serialize(nil)
	if err := s.local.Clear(); err != nil {
		log.Printf("⚠️ Cart: local clear failed: %v", err)
	}
	s.mu.Unlock()

	go func() {
		if err := s.remote.Delete(context.Background()); err != nil {
			log.Printf("⚠️ Cart: remote delete failed: %v", err)
		}
	}()
}

// ItemCount is the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Total is the VAT-inclusive grand total before any bulk discount.
func (s *Store) Total() float64 {
	return pricing.Compute(s.Lines()).TotalBeforeDiscount
}

// Pricing computes the full breakdown for the current lines.
func (s *Store) Pricing() pricing.Result {
	return pricing.Compute(s.Lines())
}

// Lines returns a copy of the current cart lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Close cancels any pending debounced save and any in-flight remote request.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancelSave != nil {
		s.cancelSave()
		s.cancelSave = nil
	}
}

// afterMutation runs with s.mu held: persist locally right away, then
// (re)schedule the debounced remote save.
func (s *Store) afterMutation() {
	s.loadGen++
	if err := s.local.Save(s.lines); err != nil {
		log.Printf("⚠️ Cart: local save failed: %v", err)
	}
	if serialize(s.lines) == s.lastSynced {
		// Nothing changed since the last confirmed sync.
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.syncRemote)
}

// syncRemote pushes the current state to the remote tier, superseding any
// still-running save for an older state.
func (s *Store) syncRemote() {
	s.mu.Lock()
	payload := serialize(s.lines)
	if payload == s.lastSynced {
		s.mu.Unlock()
		return
	}
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	if s.cancelSave != nil {
		s.cancelSave()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelSave = cancel
	s.mu.Unlock()

	if err := s.remote.Save(ctx, lines); err != nil {
		log.Printf("⚠️ Cart: remote save failed, cart stays local-only: %v", err)
		return
	}

	s.mu.Lock()
	s.lastSynced = payload
	s.mu.Unlock()
}

func serialize(lines []models.CartLine) string {
	if len(lines) == 0 {
		return "[]"
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return ""
	}
	return string(b)
}
