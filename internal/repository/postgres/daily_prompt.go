package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

var _ model.DailyPromptStore = (*DailyPromptRepository)(nil)

type DailyPromptRepository struct {
	db *Connection
}

func NewDailyPromptRepository(db *Connection) *DailyPromptRepository {
	return &DailyPromptRepository{
		db: db,
	}
}

const dailyPromptSelect = `
	SELECT d.id, d.prompt_id, d.date, d.expires_at, d.total_submissions, d.created_at,
	       p.id, p.text, p.category, p.used, p.used_on, p.created_at, p.updated_at
	FROM daily_prompts d
	JOIN prompts p ON p.id = d.prompt_id`

func scanDailyPrompt(row pgx.Row) (model.DailyPrompt, error) {
	var d model.DailyPrompt
	err := row.Scan(
		&d.ID, &d.PromptID, &d.Date, &d.ExpiresAt, &d.TotalSubmissions, &d.CreatedAt,
		&d.Prompt.ID, &d.Prompt.Text, &d.Prompt.Category, &d.Prompt.Used, &d.Prompt.UsedOn,
		&d.Prompt.CreatedAt, &d.Prompt.UpdatedAt,
	)
	return d, err
}

// Create inserts the daily prompt. The unique constraint on date makes
// concurrent publishes for one day resolve to a single row.
func (r *DailyPromptRepository) Create(ctx context.Context, dailyPrompt model.DailyPrompt) (model.DailyPrompt, error) {
	const query = `
		INSERT INTO daily_prompts (id, prompt_id, date, expires_at, total_submissions)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id, prompt_id, date, expires_at, total_submissions, created_at`

	var saved model.DailyPrompt
	err := r.db.QueryRow(ctx, query,
		dailyPrompt.ID, dailyPrompt.PromptID, model.DateOnly(dailyPrompt.Date), dailyPrompt.ExpiresAt,
	).Scan(&saved.ID, &saved.PromptID, &saved.Date, &saved.ExpiresAt, &saved.TotalSubmissions, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "daily_prompts_date_key") {
			return model.DailyPrompt{}, model.ErrAlreadyPublished
		}
		return model.DailyPrompt{}, storageError("create daily prompt", err)
	}
	saved.Prompt = dailyPrompt.Prompt

	return saved, nil
}

func (r *DailyPromptRepository) GetByID(ctx context.Context, id uuid.UUID) (model.DailyPrompt, error) {
	d, err := scanDailyPrompt(r.db.QueryRow(ctx, dailyPromptSelect+` WHERE d.id = $1`, id))
	if err != nil {
		return model.DailyPrompt{}, storageError("get daily prompt by id", err)
	}
	return d, nil
}

func (r *DailyPromptRepository) GetByDate(ctx context.Context, date time.Time) (model.DailyPrompt, error) {
	d, err := scanDailyPrompt(r.db.QueryRow(ctx, dailyPromptSelect+` WHERE d.date = $1`, model.DateOnly(date)))
	if err != nil {
		return model.DailyPrompt{}, storageError("get daily prompt by date", err)
	}
	return d, nil
}

func (r *DailyPromptRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.DailyPrompt, error) {
	out := make(map[uuid.UUID]model.DailyPrompt, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, dailyPromptSelect+` WHERE d.id = ANY($1)`, ids)
	if err != nil {
		return nil, storageError("get daily prompts by ids", err)
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDailyPrompt(rows)
		if err != nil {
			return nil, storageError("scan daily prompt", err)
		}
		out[d.ID] = d
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("get daily prompts by ids", err)
	}

	return out, nil
}

func (r *DailyPromptRepository) List(ctx context.Context, limit, offset int) ([]model.DailyPrompt, error) {
	rows, err := r.db.Query(ctx, dailyPromptSelect+` ORDER BY d.date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, storageError("list daily prompts", err)
	}
	defer rows.Close()

	var out []model.DailyPrompt
	for rows.Next() {
		d, err := scanDailyPrompt(rows)
		if err != nil {
			return nil, storageError("scan daily prompt", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list daily prompts", err)
	}

	return out, nil
}
