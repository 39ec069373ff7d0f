package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, username, profile_picture, points, streak, last_submission_date, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.ProfilePicture, &u.Points, &u.Streak,
		&u.LastSubmissionDate, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return model.User{}, storageError("get user by id", err)
	}
	return u, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.User, error) {
	out := make(map[uuid.UUID]model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, storageError("get users by ids", err)
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storageError("scan user", err)
		}
		out[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("get users by ids", err)
	}

	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, profile_picture)
			  VALUES ($1, $2, $3)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query, user.ID, user.Username, user.ProfilePicture))
	if err != nil {
		if isUniqueViolation(err, "users_username_key") || isUniqueViolation(err, "users_pkey") {
			return model.User{}, model.ErrConflict
		}
		return model.User{}, storageError("create user", err)
	}

	return saved, nil
}

func (r *UserRepository) FriendIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT friend_id FROM friendships WHERE user_id = $1`, id)
	if err != nil {
		return nil, storageError("list friends", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var friendID uuid.UUID
		if err := rows.Scan(&friendID); err != nil {
			return nil, storageError("scan friend", err)
		}
		ids = append(ids, friendID)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list friends", err)
	}

	return ids, nil
}

// AddFriendship stores both directions of the relation in one transaction.
func (r *UserRepository) AddFriendship(ctx context.Context, a, b uuid.UUID) error {
	const query = `
		INSERT INTO friendships (user_id, friend_id)
		VALUES ($1, $2), ($2, $1)
		ON CONFLICT DO NOTHING`

	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, a, b); err != nil {
			return storageError("add friendship", err)
		}
		return nil
	})
}

// RemoveFriendship deletes both directions of the relation in one transaction.
func (r *UserRepository) RemoveFriendship(ctx context.Context, a, b uuid.UUID) error {
	const query = `
		DELETE FROM friendships
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)`

	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, query, a, b)
		if err != nil {
			return storageError("remove friendship", err)
		}
		if cmd.RowsAffected() == 0 {
			return model.ErrNotFound
		}
		return nil
	})
}

func (r *UserRepository) TopByPoints(ctx context.Context, limit int) ([]model.User, error) {
	return r.list(ctx, "list leaderboard",
		`SELECT `+userColumns+` FROM users ORDER BY points DESC, id LIMIT $1`, limit)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search treats query as a literal substring of the username.
func (r *UserRepository) Search(ctx context.Context, query string, excludeID uuid.UUID, limit int) ([]model.User, error) {
	return r.list(ctx, "search users",
		`SELECT `+userColumns+` FROM users
		 WHERE username ILIKE '%' || $1 || '%' AND id <> $2
		 ORDER BY username, id
		 LIMIT $3`,
		likeEscaper.Replace(query), excludeID, limit)
}

func (r *UserRepository) list(ctx context.Context, op, query string, args ...any) ([]model.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storageError("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(op, err)
	}

	return users, nil
}
