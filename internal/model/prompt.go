package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PromptStore persists the challenge prompt pool.
type PromptStore interface {
	Create(ctx context.Context, prompt Prompt) (Prompt, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (Prompt, error)
	ListUnused(ctx context.Context) ([]Prompt, error)
	ListAll(ctx context.Context) ([]Prompt, error)
	// MarkUsed fails with ErrPromptTaken when the prompt is already used.
	MarkUsed(ctx context.Context, id uuid.UUID, onDate time.Time) error
	Release(ctx context.Context, id uuid.UUID) error
	ResetAll(ctx context.Context) (int64, error)
	ReleaseOrphaned(ctx context.Context, grace time.Duration) (int64, error)
}

// Prompt is a reusable challenge text.
type Prompt struct {
	ID        uuid.UUID
	Text      string
	Category  Category
	Used      bool
	UsedOn    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category enumerates prompt categories.
type Category string

const (
	CategoryFood     Category = "food"
	CategoryNature   Category = "nature"
	CategorySocial   Category = "social"
	CategoryCreative Category = "creative"
	CategoryRandom   Category = "random"
)

// ParseCategory validates a category name. Empty input yields CategoryRandom.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryFood, CategoryNature, CategorySocial, CategoryCreative, CategoryRandom:
		return c, nil
	case "":
		return CategoryRandom, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
	}
}
