package rooms

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a map-backed Store used when no database is configured
// and by the handler tests.
type MemoryStore struct {
	mu    sync.Mutex
	rooms map[string]*Room // keyed by lowercased username
	lists int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: map[string]*Room{}}
}

// Add seeds a room, assigning an ID and creation time if unset.
func (s *MemoryStore) Add(r *Room) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Players == nil {
		r.Players = []string{}
	}
	s.rooms[strings.ToLower(r.Username)] = r
	return r
}

// Lists returns how many List calls were made, used by the cache tests.
func (s *MemoryStore) Lists() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists
}

func (s *MemoryStore) List(ctx context.Context, page int) ([]Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists++
	if page < 1 {
		page = 1
	}

	all := make([]Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		all = append(all, *r)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := (page - 1) * PageSize
	if start >= len(all) {
		return nil, nil
	}
	end := start + PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *MemoryStore) FindByUsername(ctx context.Context, username string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[strings.ToLower(username)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	cp.Players = append([]string(nil), r.Players...)
	return &cp, nil
}

func (s *MemoryStore) UpdateProfile(ctx context.Context, username, title, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[strings.ToLower(username)]
	if !ok {
		return ErrNotFound
	}
	r.Title = title
	r.Description = description
	return nil
}

func (s *MemoryStore) UpdateThumbnail(ctx context.Context, username, thumbnail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[strings.ToLower(username)]
	if !ok {
		return ErrNotFound
	}
	r.Thumbnail = thumbnail
	return nil
}

func (s *MemoryStore) AddPlayer(ctx context.Context, host, player string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[strings.ToLower(host)]
	if !ok {
		return ErrNotFound
	}
	for _, p := range r.Players {
		if p == player {
			return nil
		}
	}
	r.Players = append(r.Players, player)
	return nil
}
