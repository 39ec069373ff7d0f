package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// DefaultPrompts is the catalog installed on first start.
var DefaultPrompts = []model.Prompt{
	{Text: "Take a photo of your breakfast", Category: model.CategoryFood},
	{Text: "Something green growing where it shouldn't", Category: model.CategoryNature},
	{Text: "Take a photo with your best friend", Category: model.CategorySocial},
	{Text: "Your view right now", Category: model.CategoryRandom},
	{Text: "A shadow that looks like something else", Category: model.CategoryCreative},
	{Text: "The sky at this exact moment", Category: model.CategoryNature},
	{Text: "Your favorite snack", Category: model.CategoryFood},
	{Text: "A stranger's act of kindness", Category: model.CategorySocial},
	{Text: "Something that made you smile today", Category: model.CategoryRandom},
	{Text: "Reflections in a puddle or window", Category: model.CategoryCreative},
	{Text: "A meal cooked by someone else", Category: model.CategoryFood},
	{Text: "An animal you met today", Category: model.CategoryNature},
	{Text: "Your group doing the same pose", Category: model.CategorySocial},
	{Text: "The oldest thing in your bag", Category: model.CategoryRandom},
	{Text: "Everyday object from a weird angle", Category: model.CategoryCreative},
	{Text: "Something red", Category: model.CategoryRandom},
	{Text: "A flower in bloom", Category: model.CategoryNature},
	{Text: "Your drink of choice", Category: model.CategoryFood},
	{Text: "High five with someone new", Category: model.CategorySocial},
	{Text: "A pattern you found outside", Category: model.CategoryCreative},
}

// Catalog owns the prompt pool and its used/unused state.
type Catalog struct {
	prompts model.PromptStore
	logger  *logger.Logger
}

func NewCatalog(prompts model.PromptStore, logger *logger.Logger) *Catalog {
	return &Catalog{
		prompts: prompts,
		logger:  logger,
	}
}

// Seed inserts prompts whose text is not in the catalog yet and returns how
// many were added.
func (s *Catalog) Seed(ctx context.Context, seeds []model.Prompt) (int, error) {
	created := 0
	for _, seed := range seeds {
		text := strings.TrimSpace(seed.Text)
		if text == "" {
			return created, fmt.Errorf("%w: prompt text is empty", model.ErrInvalidInput)
		}
		category, err := model.ParseCategory(string(seed.Category))
		if err != nil {
			return created, err
		}

		_, ok, err := s.prompts.Create(ctx, model.Prompt{
			ID:       uuid.New(),
			Text:     text,
			Category: category,
		})
		if err != nil {
			return created, fmt.Errorf("failed to create prompt: %w", err)
		}
		if ok {
			created++
		}
	}

	s.logger.Debug("catalog seeded", "created", created, "total", len(seeds))
	return created, nil
}

func (s *Catalog) ListUnused(ctx context.Context) ([]model.Prompt, error) {
	prompts, err := s.prompts.ListUnused(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unused prompts: %w", err)
	}
	return prompts, nil
}

func (s *Catalog) ListAll(ctx context.Context) ([]model.Prompt, error) {
	prompts, err := s.prompts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return prompts, nil
}

// MarkUsed flags the prompt as shown on onDate.
func (s *Catalog) MarkUsed(ctx context.Context, id uuid.UUID, onDate time.Time) error {
	if err := s.prompts.MarkUsed(ctx, id, onDate); err != nil {
		return fmt.Errorf("failed to mark prompt used: %w", err)
	}
	return nil
}

// Release clears the used flag of a single prompt.
func (s *Catalog) Release(ctx context.Context, id uuid.UUID) error {
	if err := s.prompts.Release(ctx, id); err != nil {
		return fmt.Errorf("failed to release prompt: %w", err)
	}
	return nil
}

// ResetAll returns every prompt to the unused pool.
func (s *Catalog) ResetAll(ctx context.Context) (int64, error) {
	n, err := s.prompts.ResetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset prompts: %w", err)
	}
	return n, nil
}

// ReleaseOrphaned heals prompts that were marked used more than grace ago but
// never got a daily prompt for their used date.
func (s *Catalog) ReleaseOrphaned(ctx context.Context, grace time.Duration) (int64, error) {
	n, err := s.prompts.ReleaseOrphaned(ctx, grace)
	if err != nil {
		return 0, fmt.Errorf("failed to release orphaned prompts: %w", err)
	}
	return n, nil
}
