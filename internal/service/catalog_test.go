package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aldonunez05/sb-hacks/internal/mocks"
	"github.com/aldonunez05/sb-hacks/internal/model"
	"github.com/aldonunez05/sb-hacks/internal/testutil"
)

func TestCatalog_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, date(2024, 1, 1, 0))

	created, err := e.catalog.Seed(ctx, DefaultPrompts)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultPrompts), created)

	created, err = e.catalog.Seed(ctx, DefaultPrompts)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	all, err := e.catalog.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultPrompts))
	for _, p := range all {
		assert.False(t, p.Used)
	}
}

func TestCatalog_SeedValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, date(2024, 1, 1, 0))

	_, err := e.catalog.Seed(ctx, []model.Prompt{{Text: "  "}})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = e.catalog.Seed(ctx, []model.Prompt{{Text: "x", Category: "sports"}})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	created, err := e.catalog.Seed(ctx, []model.Prompt{{Text: "no category"}})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	all, err := e.catalog.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryRandom, all[0].Category)
}

func TestDefaultPrompts_Valid(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range DefaultPrompts {
		_, err := model.ParseCategory(string(p.Category))
		assert.NoError(t, err, p.Text)
		assert.False(t, seen[p.Text], "duplicate prompt %q", p.Text)
		seen[p.Text] = true
	}
}

func TestCatalog_MarkUsedNotFound(t *testing.T) {
	ctx := context.Background()
	prompts := mocks.NewPromptStore(t)
	prompts.On("MarkUsed", ctx, mock.Anything, mock.Anything).Return(model.ErrNotFound).Once()
	prompts.On("Create", ctx, mock.Anything).Return(model.Prompt{}, false, errors.Join(model.ErrStorage, errors.New("x"))).Once()

	c := NewCatalog(prompts, testutil.MakeNoopLogger())
	err := c.MarkUsed(ctx, uuid.New(), date(2024, 1, 1, 0))
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = c.Seed(ctx, []model.Prompt{{Text: "a"}})
	require.ErrorIs(t, err, model.ErrStorage)
}
