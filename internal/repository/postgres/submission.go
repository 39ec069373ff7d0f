package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

var _ model.SubmissionStore = (*SubmissionRepository)(nil)

type SubmissionRepository struct {
	db *Connection
}

func NewSubmissionRepository(db *Connection) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

const submissionColumns = `s.id, s.user_id, s.daily_prompt_id, s.image_url, s.image_key, s.caption, s.submitted_at`

func scanSubmission(row pgx.Row) (model.Submission, error) {
	var s model.Submission
	err := row.Scan(&s.ID, &s.UserID, &s.DailyPromptID, &s.ImageURL, &s.ImageKey, &s.Caption, &s.SubmittedAt)
	return s, err
}

// CreateWithAward inserts the submission and, only if the insert won the
// (user, daily prompt) uniqueness check, applies the award and increments the
// challenge counter. Everything commits or rolls back together.
func (r *SubmissionRepository) CreateWithAward(ctx context.Context, submission model.Submission, award model.Award) (model.Submission, model.User, error) {
	const insertQuery = `
		INSERT INTO submissions (id, user_id, daily_prompt_id, image_url, image_key, caption, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, daily_prompt_id) DO NOTHING
		RETURNING id, user_id, daily_prompt_id, image_url, image_key, caption, submitted_at`
	const lockUserQuery = `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	const updateUserQuery = `
		UPDATE users
		SET points = $2, streak = $3, last_submission_date = $4, updated_at = NOW()
		WHERE id = $1`
	const counterQuery = `UPDATE daily_prompts SET total_submissions = total_submissions + 1 WHERE id = $1`

	var (
		saved model.Submission
		user  model.User
	)
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		user, err = scanUser(tx.QueryRow(ctx, lockUserQuery, submission.UserID))
		if err != nil {
			return storageError("lock user", err)
		}

		saved, err = scanSubmission(tx.QueryRow(ctx, insertQuery,
			submission.ID, submission.UserID, submission.DailyPromptID,
			submission.ImageURL, submission.ImageKey, submission.Caption, submission.SubmittedAt,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAlreadySubmitted
		}
		if err != nil {
			return storageError("insert submission", err)
		}

		user = user.ApplyAward(award)
		if _, err := tx.Exec(ctx, updateUserQuery,
			user.ID, user.Points, user.Streak, model.DateOnly(*user.LastSubmissionDate),
		); err != nil {
			return storageError("apply award", err)
		}

		cmd, err := tx.Exec(ctx, counterQuery, submission.DailyPromptID)
		if err != nil {
			return storageError("increment submission counter", err)
		}
		if cmd.RowsAffected() == 0 {
			return model.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return model.Submission{}, model.User{}, err
	}

	return saved, user, nil
}

func (r *SubmissionRepository) Exists(ctx context.Context, userID, dailyPromptID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM submissions WHERE user_id = $1 AND daily_prompt_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, dailyPromptID).Scan(&exists); err != nil {
		return false, storageError("check submission exists", err)
	}
	return exists, nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Submission, error) {
	s, err := scanSubmission(r.db.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions s WHERE s.id = $1`, id))
	if err != nil {
		return model.Submission{}, storageError("get submission by id", err)
	}

	page := []model.Submission{s}
	if err := r.attachSocial(ctx, page); err != nil {
		return model.Submission{}, err
	}
	return page[0], nil
}

// Delete removes the submission; likes and comments cascade. Points, streak
// and the challenge counter are left as they are.
func (r *SubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return storageError("delete submission", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *SubmissionRepository) ListByOwners(ctx context.Context, q model.FeedQuery) ([]model.Submission, error) {
	if len(q.OwnerIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + submissionColumns + `
		FROM submissions s
		WHERE s.user_id = ANY($1)
		  AND ($2::uuid IS NULL OR s.daily_prompt_id = $2)
		ORDER BY s.submitted_at DESC, s.id DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, q.OwnerIDs, q.DailyPromptID, q.Limit, q.Offset)
	if err != nil {
		return nil, storageError("list feed", err)
	}
	defer rows.Close()

	var page []model.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, storageError("scan submission", err)
		}
		page = append(page, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list feed", err)
	}

	if err := r.attachSocial(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// attachSocial loads the like sets and ordered comments of a page of
// submissions with one query each.
func (r *SubmissionRepository) attachSocial(ctx context.Context, page []model.Submission) error {
	if len(page) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(page))
	index := make(map[uuid.UUID]int, len(page))
	for i, s := range page {
		ids[i] = s.ID
		index[s.ID] = i
	}

	likeRows, err := r.db.Query(ctx,
		`SELECT submission_id, user_id FROM submission_likes WHERE submission_id = ANY($1) ORDER BY created_at, user_id`, ids)
	if err != nil {
		return storageError("load likes", err)
	}
	defer likeRows.Close()
	for likeRows.Next() {
		var submissionID, userID uuid.UUID
		if err := likeRows.Scan(&submissionID, &userID); err != nil {
			return storageError("scan like", err)
		}
		i := index[submissionID]
		page[i].Likes = append(page[i].Likes, userID)
	}
	if err := likeRows.Err(); err != nil {
		return storageError("load likes", err)
	}

	comments, err := r.comments(ctx, r.db, ids)
	if err != nil {
		return err
	}
	for _, c := range comments {
		i := index[c.SubmissionID]
		page[i].Comments = append(page[i].Comments, c)
	}

	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *SubmissionRepository) comments(ctx context.Context, q querier, submissionIDs []uuid.UUID) ([]model.Comment, error) {
	rows, err := q.Query(ctx,
		`SELECT id, submission_id, user_id, text, created_at FROM submission_comments WHERE submission_id = ANY($1) ORDER BY seq`,
		submissionIDs)
	if err != nil {
		return nil, storageError("load comments", err)
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.SubmissionID, &c.AuthorID, &c.Text, &c.CreatedAt); err != nil {
			return nil, storageError("scan comment", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("load comments", err)
	}
	return out, nil
}

// ToggleLike flips the (submission, user) like row with a single statement:
// the delete and the conditional insert see the same snapshot, and likes from
// different users touch different rows so none are lost.
func (r *SubmissionRepository) ToggleLike(ctx context.Context, submissionID, userID uuid.UUID) (model.LikeState, error) {
	const toggleQuery = `
		WITH removed AS (
			DELETE FROM submission_likes
			WHERE submission_id = $1 AND user_id = $2
			RETURNING 1
		), added AS (
			INSERT INTO submission_likes (submission_id, user_id)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM removed)
			ON CONFLICT DO NOTHING
			RETURNING 1
		)
		SELECT EXISTS (SELECT 1 FROM added)`
	const countQuery = `SELECT COUNT(*) FROM submission_likes WHERE submission_id = $1`

	var state model.LikeState
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		// Toggles on one submission run one at a time, so each sees the
		// previous toggle's like row.
		var locked uuid.UUID
		if err := tx.QueryRow(ctx, `SELECT id FROM submissions WHERE id = $1 FOR NO KEY UPDATE`, submissionID).Scan(&locked); err != nil {
			return storageError("lock submission", err)
		}

		if err := tx.QueryRow(ctx, toggleQuery, submissionID, userID).Scan(&state.IsLiked); err != nil {
			return storageError("toggle like", err)
		}
		if err := tx.QueryRow(ctx, countQuery, submissionID).Scan(&state.LikeCount); err != nil {
			return storageError("count likes", err)
		}
		return nil
	})
	if err != nil {
		return model.LikeState{}, err
	}

	return state, nil
}

// AddComment appends the comment and returns the full ordered thread.
func (r *SubmissionRepository) AddComment(ctx context.Context, comment model.Comment) ([]model.Comment, error) {
	const insertQuery = `
		INSERT INTO submission_comments (id, submission_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	var thread []model.Comment
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertQuery,
			comment.ID, comment.SubmissionID, comment.AuthorID, comment.Text, comment.CreatedAt,
		); err != nil {
			return storageError("insert comment", err)
		}

		var err error
		thread, err = r.comments(ctx, tx, []uuid.UUID{comment.SubmissionID})
		return err
	})
	if err != nil {
		return nil, err
	}

	return thread, nil
}
