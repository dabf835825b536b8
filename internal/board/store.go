// Package board holds the dream board's item collection.
//
// No Store operation reports failure: operations on an id that is not present
// are ignored, which makes removal and updates idempotent.
package board

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/models"
)

// Store owns the placed items and their positions.
// Items are kept in insertion order, which is also the initial paint order.
type Store interface {
	// Read operations
	Items() []models.BoardItem
	Get(id string) (models.BoardItem, bool)
	Len() int

	// Write operations
	Add(kind models.Kind) models.BoardItem
	AddFromURL(url string) models.BoardItem
	Remove(id string)
	UpdateContent(id, content string)
	Move(id string, position models.Position)
}

// IDFunc produces a new unique item id
type IDFunc func() string

// Option configures a memory store
type Option func(*memoryStore)

// WithIDFunc overrides id generation, mainly for tests
func WithIDFunc(fn IDFunc) Option {
	return func(s *memoryStore) {
		s.newID = fn
	}
}

// WithCelebrations reports progress items that reach 100% to sink
func WithCelebrations(sink celebration.Sink) Option {
	return func(s *memoryStore) {
		s.trigger = celebration.NewTrigger(sink)
	}
}

// WithItems replaces the seed set with the given items
func WithItems(items []models.BoardItem) Option {
	return func(s *memoryStore) {
		s.items = slices.Clone(items)
	}
}

// memoryStore implements Store over a slice. It is process-local and is
// meant to be driven from a single event loop, so it takes no locks.
type memoryStore struct {
	items   []models.BoardItem
	issued  map[string]struct{}
	newID   IDFunc
	trigger *celebration.Trigger
}

// NewStore creates a store initialized with the seed set
func NewStore(opts ...Option) Store {
	s := &memoryStore{
		items:  SeedItems(),
		issued: make(map[string]struct{}),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.trigger == nil {
		s.trigger = celebration.NewTrigger(nil)
	}
	for _, it := range s.items {
		s.issued[it.ID] = struct{}{}
	}
	return s
}

// Items returns a copy of the items in insertion order
func (s *memoryStore) Items() []models.BoardItem {
	return slices.Clone(s.items)
}

// Get returns the item with the given id
func (s *memoryStore) Get(id string) (models.BoardItem, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.BoardItem{}, false
	}
	return s.items[idx], true
}

// Len returns the number of items on the board
func (s *memoryStore) Len() int {
	return len(s.items)
}

// Add creates an item of kind with its default content at the spawn position
func (s *memoryStore) Add(kind models.Kind) models.BoardItem {
	return s.add(kind, models.DefaultContent(kind))
}

// AddFromURL creates an image item showing url
func (s *memoryStore) AddFromURL(url string) models.BoardItem {
	return s.add(models.KindImage, url)
}

func (s *memoryStore) add(kind models.Kind, content string) models.BoardItem {
	item := models.BoardItem{
		ID:       s.nextID(),
		Kind:     kind,
		Content:  content,
		Position: models.SpawnPosition,
		Size:     models.DefaultSize(kind),
	}
	s.items = append(s.items, item)
	slog.Debug("board item added", "item_id", item.ID, "kind", item.Kind)
	return item
}

// nextID draws ids until one has never been handed out by this store
func (s *memoryStore) nextID() string {
	for {
		id := s.newID()
		if _, used := s.issued[id]; used {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}

// Remove deletes the item with id, if present
func (s *memoryStore) Remove(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		slog.Debug("board remove ignored, no such item", "item_id", id)
		return
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	slog.Debug("board item removed", "item_id", id)
}

// UpdateContent replaces an item's content and runs the celebration check
func (s *memoryStore) UpdateContent(id, content string) {
	idx := s.indexOf(id)
	if idx < 0 {
		slog.Debug("board update ignored, no such item", "item_id", id)
		return
	}
	s.items[idx].Content = content
	s.trigger.Observe(s.items[idx])
}

// Move replaces an item's position
func (s *memoryStore) Move(id string, position models.Position) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.items[idx].Position = position
}

func (s *memoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(it models.BoardItem) bool {
		return it.ID == id
	})
}
