package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aldonunez05/sb-hacks/internal/model"
	"github.com/aldonunez05/sb-hacks/internal/testutil"
)

// testClock is a settable clock safe for concurrent readers.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(t time.Time) *testClock { return &testClock{now: t} }

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// env wires every service over one memStore.
type env struct {
	clock  *testClock
	store  *memStore
	images *memImages

	catalog     *Catalog
	publisher   *Publisher
	challenge   *Challenge
	ledger      *Ledger
	feed        *Feed
	social      *Social
	users       *Users
	leaderboard *Leaderboard
}

func newEnv(t *testing.T, now time.Time) *env {
	t.Helper()

	clock := newTestClock(now)
	store := newMemStore(clock.Now)
	images := newMemImages()
	log := testutil.MakeNoopLogger()

	catalog := NewCatalog(store, log)
	return &env{
		clock:       clock,
		store:       store,
		images:      images,
		catalog:     catalog,
		publisher:   NewPublisher(catalog, store.DailyPrompts(), time.UTC, clock.Now, nil, log),
		challenge:   NewChallenge(store.DailyPrompts(), time.UTC),
		ledger:      NewLedger(store.Submissions(), store.DailyPrompts(), images, nil, time.UTC, clock.Now, nil, log),
		feed:        NewFeed(store.Submissions(), store.Users(), store.DailyPrompts(), log),
		social:      NewSocial(store.Submissions(), store.Users(), clock.Now, nil, log),
		users:       NewUsers(store.Users(), store.Submissions(), store.DailyPrompts(), log),
		leaderboard: NewLeaderboard(store.Users(), nil, log),
	}
}

func (e *env) seedPrompts(t *testing.T, n int) {
	t.Helper()
	seeds := make([]model.Prompt, n)
	for i := range seeds {
		seeds[i] = model.Prompt{Text: "prompt " + string(rune('A'+i)), Category: model.CategoryRandom}
	}
	created, err := e.catalog.Seed(context.Background(), seeds)
	require.NoError(t, err)
	require.Equal(t, n, created)
}

func (e *env) addUser(t *testing.T, name string) model.User {
	t.Helper()
	u, err := e.users.Register(context.Background(), uuid.New(), name, "")
	require.NoError(t, err)
	return u
}

func (e *env) user(t *testing.T, id uuid.UUID) model.User {
	t.Helper()
	u, err := e.users.Profile(context.Background(), id)
	require.NoError(t, err)
	return u
}

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}
