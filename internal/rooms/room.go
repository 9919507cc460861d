// Package rooms holds the room resource: every account owns one room,
// other users join its player list.
package rooms

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PageSize caps how many rooms a single listing page returns.
const PageSize = 12

// ErrNotFound is returned when a lookup or mutation matches no room.
var ErrNotFound = errors.New("rooms: not found")

type Room struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Players     []string  `json:"players"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store is the persistence boundary for rooms.
type Store interface {
	// List returns at most PageSize rooms for the 1-based page, newest
	// first.
	List(ctx context.Context, page int) ([]Room, error)
	FindByUsername(ctx context.Context, username string) (*Room, error)
	UpdateProfile(ctx context.Context, username, title, description string) error
	UpdateThumbnail(ctx context.Context, username, thumbnail string) error

	// AddPlayer appends player to the host's player list. Adding a player
	// that is already listed is a no-op.
	AddPlayer(ctx context.Context, host, player string) error
}
