package state

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/miloscript/monify/internal/model"
	"github.com/miloscript/monify/internal/storage"
)

// Phase is the store lifecycle: construction starts the one storage load,
// and mutations dispatched before it resolves are queued, not applied.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseHydrating
	PhaseReady
)

// Mutation computes the next tree from the previous one. Mutations must be
// pure; all side effects belong to the store.
type Mutation func(State) State

// Store composes the slices into one tree, keeps the legacy view in step,
// notifies subscribers, and persists every change through the storage
// backend. All mutations run synchronously under one lock; persistence is
// asynchronous and best-effort, with the in-memory tree as source of truth.
type Store struct {
	// OnSaveError, when set before the first dispatch, receives every
	// failed save so the UI can offer a retry. Failures are logged either
	// way and never touch in-memory state.
	OnSaveError func(error)

	storage storage.Store
	log     *log.Logger

	mu      sync.Mutex
	phase   Phase
	state   State
	legacy  LegacyView
	queue   []Mutation
	subs    map[int]func(State)
	nextSub int

	hydrated chan struct{}
	saveCh   chan *model.Document
	flushCh  chan chan struct{}
	quit     chan struct{}
}

// NewStore builds the store and starts hydrating from st. Reads before
// hydration completes see the default empty tree.
func NewStore(st storage.Store, lg *log.Logger) *Store {
	s := &Store{
		storage:  st,
		log:      lg,
		phase:    PhaseHydrating,
		subs:     make(map[int]func(State)),
		hydrated: make(chan struct{}),
		saveCh:   make(chan *model.Document, 1),
		flushCh:  make(chan chan struct{}),
		quit:     make(chan struct{}),
	}
	s.legacy = Legacy(s.state)
	go s.saveLoop()
	go s.hydrate()
	return s
}

// Phase returns the lifecycle phase.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// State returns the current canonical tree. During hydration this is the
// default empty tree.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Legacy returns the derived back-compat view, always consistent with the
// canonical tree returned by State.
func (s *Store) Legacy() LegacyView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.legacy
}

// Subscribe registers a listener called after every applied mutation and
// once when hydration completes. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Dispatch applies a mutation. Before hydration completes the mutation is
// queued and replayed, in order, once the loaded document has been applied;
// nothing is dropped. After that it runs synchronously: the tree and the
// legacy view advance together under the lock, subscribers see the new
// tree, and a save of the full document is scheduled.
func (s *Store) Dispatch(m Mutation) {
	s.mu.Lock()
	if s.phase != PhaseReady {
		s.queue = append(s.queue, m)
		s.mu.Unlock()
		return
	}

	s.state = m(s.state)
	s.legacy = Legacy(s.state)
	doc := ToDocument(s.state)
	next := s.state
	listeners := s.listeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	s.scheduleSave(doc)
}

// WaitReady blocks until hydration has completed and queued mutations have
// been replayed.
func (s *Store) WaitReady() {
	<-s.hydrated
}

// Flush blocks until no scheduled save is outstanding. The CLI calls it
// before exiting; the desktop shell never needs to.
func (s *Store) Flush() {
	ack := make(chan struct{})
	select {
	case s.flushCh <- ack:
		<-ack
	case <-s.quit:
	}
}

// Close flushes outstanding saves and stops the persistence loop. The store
// must not be dispatched to afterwards.
func (s *Store) Close() {
	s.Flush()
	close(s.quit)
}

func (s *Store) hydrate() {
	doc, ok, err := s.storage.Load()
	if err != nil {
		// Treated like an absent document: start from defaults and keep
		// running in memory.
		s.log.Error("loading document", "err", err)
	}

	s.mu.Lock()
	if ok {
		s.state = FromDocument(doc)
	}
	queued := s.queue
	s.queue = nil
	for _, m := range queued {
		s.state = m(s.state)
	}
	s.legacy = Legacy(s.state)
	s.phase = PhaseReady
	next := s.state
	var snapshot *model.Document
	if len(queued) > 0 {
		snapshot = ToDocument(s.state)
	}
	listeners := s.listeners()
	s.mu.Unlock()

	// Schedule before releasing WaitReady, so a ready-then-flush sequence
	// always covers the replayed mutations.
	if snapshot != nil {
		s.scheduleSave(snapshot)
	}
	close(s.hydrated)
	for _, fn := range listeners {
		fn(next)
	}
}

// listeners snapshots the subscriber set. Callers hold s.mu.
func (s *Store) listeners() []func(State) {
	out := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// scheduleSave hands the snapshot to the persistence loop. A not-yet-written
// older snapshot is replaced: only the latest full document matters.
func (s *Store) scheduleSave(doc *model.Document) {
	for {
		select {
		case s.saveCh <- doc:
			return
		case <-s.quit:
			return
		default:
		}
		select {
		case <-s.saveCh:
		default:
		}
	}
}

func (s *Store) saveLoop() {
	for {
		select {
		case doc := <-s.saveCh:
			s.save(doc)
		case ack := <-s.flushCh:
			select {
			case doc := <-s.saveCh:
				s.save(doc)
			default:
			}
			close(ack)
		case <-s.quit:
			return
		}
	}
}

func (s *Store) save(doc *model.Document) {
	if err := s.storage.Save(doc); err != nil {
		s.log.Error("saving document", "err", err)
		if s.OnSaveError != nil {
			s.OnSaveError(err)
		}
	}
}
