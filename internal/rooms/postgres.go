package rooms

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/db"
)

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, page int) ([]Room, error) {
	if page < 1 {
		page = 1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, title, description, thumbnail, players, created_at
		FROM rooms
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("rooms: list: %w", err)
	}
	defer rows.Close()

	var out []Room
	for rows.Next() {
		var r Room
		err := rows.Scan(
			&r.ID,
			&r.Username,
			&r.Title,
			&r.Description,
			&r.Thumbnail,
			pq.Array(&r.Players),
			&r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("rooms: scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rooms: list: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*Room, error) {
	var r Room
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, title, description, thumbnail, players, created_at
		FROM rooms
		WHERE LOWER(username) = LOWER($1)
	`, username).Scan(
		&r.ID,
		&r.Username,
		&r.Title,
		&r.Description,
		&r.Thumbnail,
		pq.Array(&r.Players),
		&r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rooms: scan: %w", err)
	}
	return &r, nil
}

func (s *PostgresStore) UpdateProfile(ctx context.Context, username, title, description string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE rooms
		SET title = $2, description = $3, updated_at = NOW()
		WHERE LOWER(username) = LOWER($1)
	`, username, title, description)
	if err != nil {
		return fmt.Errorf("rooms: update profile: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) UpdateThumbnail(ctx context.Context, username, thumbnail string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE rooms
		SET thumbnail = $2, updated_at = NOW()
		WHERE LOWER(username) = LOWER($1)
	`, username, thumbnail)
	if err != nil {
		return fmt.Errorf("rooms: update thumbnail: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) AddPlayer(ctx context.Context, host, player string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE rooms
		SET players = array_append(players, $2), updated_at = NOW()
		WHERE LOWER(username) = LOWER($1)
		  AND NOT ($2 = ANY(players))
	`, host, player)
	if err != nil {
		return fmt.Errorf("rooms: add player: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rooms: add player: %w", err)
	}
	if n > 0 {
		return nil
	}

	// No row changed: either the room is gone or the player was already
	// listed. Only the former is an error.
	if _, err := s.FindByUsername(ctx, host); err != nil {
		return err
	}
	return nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rooms: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
