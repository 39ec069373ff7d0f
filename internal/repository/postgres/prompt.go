package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

var _ model.PromptStore = (*PromptRepository)(nil)

type PromptRepository struct {
	db *Connection
}

func NewPromptRepository(db *Connection) *PromptRepository {
	return &PromptRepository{
		db: db,
	}
}

const promptColumns = `id, text, category, used, used_on, created_at, updated_at`

func scanPrompt(row pgx.Row) (model.Prompt, error) {
	var p model.Prompt
	err := row.Scan(&p.ID, &p.Text, &p.Category, &p.Used, &p.UsedOn, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create inserts a prompt unless one with the same text exists. The bool
// reports whether a row was inserted.
func (r *PromptRepository) Create(ctx context.Context, prompt model.Prompt) (model.Prompt, bool, error) {
	query := `
		INSERT INTO prompts (id, text, category)
		VALUES ($1, $2, $3)
		ON CONFLICT (text) DO NOTHING
		RETURNING ` + promptColumns

	saved, err := scanPrompt(r.db.QueryRow(ctx, query, prompt.ID, prompt.Text, string(prompt.Category)))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Prompt{}, false, nil
	}
	if err != nil {
		return model.Prompt{}, false, storageError("create prompt", err)
	}

	return saved, true, nil
}

func (r *PromptRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE id = $1`

	p, err := scanPrompt(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return model.Prompt{}, storageError("get prompt by id", err)
	}
	return p, nil
}

func (r *PromptRepository) ListUnused(ctx context.Context) ([]model.Prompt, error) {
	return r.list(ctx, `SELECT `+promptColumns+` FROM prompts WHERE used = FALSE ORDER BY created_at, id`)
}

func (r *PromptRepository) ListAll(ctx context.Context) ([]model.Prompt, error) {
	return r.list(ctx, `SELECT `+promptColumns+` FROM prompts ORDER BY created_at, id`)
}

func (r *PromptRepository) list(ctx context.Context, query string) ([]model.Prompt, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storageError("list prompts", err)
	}
	defer rows.Close()

	var prompts []model.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, storageError("scan prompt", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list prompts", err)
	}

	return prompts, nil
}

// MarkUsed claims an unused prompt for onDate. Two publishes racing for the
// same prompt cannot both succeed: the loser gets ErrPromptTaken.
func (r *PromptRepository) MarkUsed(ctx context.Context, id uuid.UUID, onDate time.Time) error {
	const query = `UPDATE prompts SET used = TRUE, used_on = $2, updated_at = NOW() WHERE id = $1 AND used = FALSE`
	cmd, err := r.db.Exec(ctx, query, id, model.DateOnly(onDate))
	if err != nil {
		return storageError("mark prompt used", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM prompts WHERE id = $1)`, id).Scan(&exists); err != nil {
		return storageError("mark prompt used", err)
	}
	if !exists {
		return model.ErrNotFound
	}
	return model.ErrPromptTaken
}

func (r *PromptRepository) Release(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE prompts SET used = FALSE, used_on = NULL, updated_at = NOW() WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return storageError("release prompt", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PromptRepository) ResetAll(ctx context.Context) (int64, error) {
	const query = `UPDATE prompts SET used = FALSE, used_on = NULL, updated_at = NOW() WHERE used = TRUE`
	cmd, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, storageError("reset prompts", err)
	}
	return cmd.RowsAffected(), nil
}

// ReleaseOrphaned clears the used mark of prompts that no daily prompt
// references for their used_on date. Marks younger than grace, measured on
// the database clock, belong to a publish that may still be in flight and are
// left alone.
func (r *PromptRepository) ReleaseOrphaned(ctx context.Context, grace time.Duration) (int64, error) {
	const query = `
		UPDATE prompts p
		SET used = FALSE, used_on = NULL, updated_at = NOW()
		WHERE p.used = TRUE
		  AND p.updated_at < NOW() - $1::interval
		  AND NOT EXISTS (
		      SELECT 1 FROM daily_prompts d
		      WHERE d.prompt_id = p.id AND d.date = p.used_on
		  )`
	cmd, err := r.db.Exec(ctx, query, grace)
	if err != nil {
		return 0, storageError("release orphaned prompts", err)
	}
	return cmd.RowsAffected(), nil
}
