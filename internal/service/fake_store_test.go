package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

// memStore is a mutex-guarded in-memory implementation of every store the
// services use. Uniqueness rules match the database constraints.
type memStore struct {
	mu    sync.Mutex
	clock Clock

	prompts      map[uuid.UUID]model.Prompt
	promptOrder  []uuid.UUID
	dailyPrompts map[uuid.UUID]model.DailyPrompt
	byDate       map[time.Time]uuid.UUID
	users        map[uuid.UUID]model.User
	friends      map[uuid.UUID]map[uuid.UUID]bool
	submissions  map[uuid.UUID]model.Submission
	byOwnerDP    map[[2]uuid.UUID]uuid.UUID
}

var (
	_ model.PromptStore      = (*memStore)(nil)
	_ model.DailyPromptStore = (*memDailyPrompts)(nil)
	_ model.UserStore        = (*memUsers)(nil)
	_ model.SubmissionStore  = (*memSubmissions)(nil)
)

func newMemStore(clock Clock) *memStore {
	return &memStore{
		clock:        clock,
		prompts:      make(map[uuid.UUID]model.Prompt),
		dailyPrompts: make(map[uuid.UUID]model.DailyPrompt),
		byDate:       make(map[time.Time]uuid.UUID),
		users:        make(map[uuid.UUID]model.User),
		friends:      make(map[uuid.UUID]map[uuid.UUID]bool),
		submissions:  make(map[uuid.UUID]model.Submission),
		byOwnerDP:    make(map[[2]uuid.UUID]uuid.UUID),
	}
}

// Views over the same state for the interfaces whose method names collide.
type (
	memDailyPrompts struct{ *memStore }
	memUsers        struct{ *memStore }
	memSubmissions  struct{ *memStore }
)

func (s *memStore) DailyPrompts() *memDailyPrompts { return &memDailyPrompts{s} }
func (s *memStore) Users() *memUsers               { return &memUsers{s} }
func (s *memStore) Submissions() *memSubmissions   { return &memSubmissions{s} }

// prompts

func (s *memStore) Create(_ context.Context, p model.Prompt) (model.Prompt, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.prompts {
		if existing.Text == p.Text {
			return model.Prompt{}, false, nil
		}
	}
	p.CreatedAt, p.UpdatedAt = s.clock(), s.clock()
	s.prompts[p.ID] = p
	s.promptOrder = append(s.promptOrder, p.ID)
	return p, true, nil
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prompts[id]
	if !ok {
		return model.Prompt{}, model.ErrNotFound
	}
	return p, nil
}

func (s *memStore) list(filter func(model.Prompt) bool) []model.Prompt {
	out := []model.Prompt{}
	for _, id := range s.promptOrder {
		if p := s.prompts[id]; filter(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *memStore) ListUnused(context.Context) ([]model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(p model.Prompt) bool { return !p.Used }), nil
}

func (s *memStore) ListAll(context.Context) ([]model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(model.Prompt) bool { return true }), nil
}

func (s *memStore) MarkUsed(_ context.Context, id uuid.UUID, onDate time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prompts[id]
	if !ok {
		return model.ErrNotFound
	}
	if p.Used {
		return model.ErrPromptTaken
	}
	d := model.DateOnly(onDate)
	p.Used, p.UsedOn, p.UpdatedAt = true, &d, s.clock()
	s.prompts[id] = p
	return nil
}

func (s *memStore) Release(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prompts[id]
	if !ok {
		return model.ErrNotFound
	}
	p.Used, p.UsedOn = false, nil
	s.prompts[id] = p
	return nil
}

func (s *memStore) ResetAll(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.prompts {
		p.Used, p.UsedOn = false, nil
		s.prompts[id] = p
	}
	return int64(len(s.prompts)), nil
}

func (s *memStore) ReleaseOrphaned(_ context.Context, grace time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	markedBefore := s.clock().Add(-grace)
	var n int64
	for id, p := range s.prompts {
		if !p.Used || p.UsedOn == nil || !p.UpdatedAt.Before(markedBefore) {
			continue
		}
		if dpID, ok := s.byDate[*p.UsedOn]; ok && s.dailyPrompts[dpID].PromptID == id {
			continue
		}
		p.Used, p.UsedOn = false, nil
		s.prompts[id] = p
		n++
	}
	return n, nil
}

// daily prompts

func (s *memDailyPrompts) Create(_ context.Context, dp model.DailyPrompt) (model.DailyPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	date := model.DateOnly(dp.Date)
	if _, ok := s.byDate[date]; ok {
		return model.DailyPrompt{}, model.ErrAlreadyPublished
	}
	if _, ok := s.prompts[dp.PromptID]; !ok {
		return model.DailyPrompt{}, model.ErrNotFound
	}
	dp.Date, dp.TotalSubmissions, dp.CreatedAt = date, 0, s.clock()
	s.dailyPrompts[dp.ID] = dp
	s.byDate[date] = dp.ID
	return dp, nil
}

func (s *memDailyPrompts) joined(id uuid.UUID) (model.DailyPrompt, bool) {
	dp, ok := s.dailyPrompts[id]
	if ok {
		dp.Prompt = s.prompts[dp.PromptID]
	}
	return dp, ok
}

func (s *memDailyPrompts) GetByID(_ context.Context, id uuid.UUID) (model.DailyPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dp, ok := s.joined(id)
	if !ok {
		return model.DailyPrompt{}, model.ErrNotFound
	}
	return dp, nil
}

func (s *memDailyPrompts) GetByDate(_ context.Context, date time.Time) (model.DailyPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byDate[model.DateOnly(date)]
	if !ok {
		return model.DailyPrompt{}, model.ErrNotFound
	}
	dp, _ := s.joined(id)
	return dp, nil
}

func (s *memDailyPrompts) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]model.DailyPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uuid.UUID]model.DailyPrompt, len(ids))
	for _, id := range ids {
		if dp, ok := s.joined(id); ok {
			out[id] = dp
		}
	}
	return out, nil
}

func (s *memDailyPrompts) List(_ context.Context, limit, offset int) ([]model.DailyPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]model.DailyPrompt, 0, len(s.dailyPrompts))
	for id := range s.dailyPrompts {
		dp, _ := s.joined(id)
		all = append(all, dp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return page(all, limit, offset), nil
}

// users

func (s *memUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUsers) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uuid.UUID]model.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (s *memUsers) Create(_ context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.ID == u.ID || existing.Username == u.Username {
			return model.User{}, model.ErrConflict
		}
	}
	u.CreatedAt, u.UpdatedAt = s.clock(), s.clock()
	s.users[u.ID] = u
	return u, nil
}

func (s *memUsers) FriendIDs(_ context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []uuid.UUID{}
	for f := range s.friends[id] {
		out = append(out, f)
	}
	return out, nil
}

func (s *memUsers) link(a, b uuid.UUID) {
	if s.friends[a] == nil {
		s.friends[a] = make(map[uuid.UUID]bool)
	}
	s.friends[a][b] = true
}

func (s *memUsers) AddFriendship(_ context.Context, a, b uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[a]; !ok {
		return model.ErrNotFound
	}
	if _, ok := s.users[b]; !ok {
		return model.ErrNotFound
	}
	s.link(a, b)
	s.link(b, a)
	return nil
}

func (s *memUsers) RemoveFriendship(_ context.Context, a, b uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.friends[a][b] {
		return model.ErrNotFound
	}
	delete(s.friends[a], b)
	delete(s.friends[b], a)
	return nil
}

func (s *memUsers) TopByPoints(_ context.Context, limit int) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Points != all[j].Points {
			return all[i].Points > all[j].Points
		}
		return bytes.Compare(all[i].ID[:], all[j].ID[:]) < 0
	})
	return page(all, limit, 0), nil
}

func (s *memUsers) Search(_ context.Context, query string, excludeID uuid.UUID, limit int) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(query)
	var found []model.User
	for id, u := range s.users {
		if id != excludeID && strings.Contains(strings.ToLower(u.Username), needle) {
			found = append(found, u)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Username < found[j].Username })
	return page(found, limit, 0), nil
}

// submissions

func (s *memSubmissions) CreateWithAward(_ context.Context, sub model.Submission, award model.Award) (model.Submission, model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]uuid.UUID{sub.UserID, sub.DailyPromptID}
	if _, ok := s.byOwnerDP[key]; ok {
		return model.Submission{}, model.User{}, model.ErrAlreadySubmitted
	}
	user, ok := s.users[sub.UserID]
	if !ok {
		return model.Submission{}, model.User{}, fmt.Errorf("user: %w", model.ErrNotFound)
	}
	dp, ok := s.dailyPrompts[sub.DailyPromptID]
	if !ok {
		return model.Submission{}, model.User{}, fmt.Errorf("daily prompt: %w", model.ErrNotFound)
	}

	user = user.ApplyAward(award)
	dp.TotalSubmissions++
	s.users[user.ID] = user
	s.dailyPrompts[dp.ID] = dp
	s.submissions[sub.ID] = sub
	s.byOwnerDP[key] = sub.ID
	return sub, user, nil
}

func (s *memSubmissions) Exists(_ context.Context, userID, dailyPromptID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byOwnerDP[[2]uuid.UUID{userID, dailyPromptID}]
	return ok, nil
}

func (s *memSubmissions) GetByID(_ context.Context, id uuid.UUID) (model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[id]
	if !ok {
		return model.Submission{}, model.ErrNotFound
	}
	return sub, nil
}

func (s *memSubmissions) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[id]
	if !ok {
		return model.ErrNotFound
	}
	delete(s.submissions, id)
	delete(s.byOwnerDP, [2]uuid.UUID{sub.UserID, sub.DailyPromptID})
	return nil
}

func (s *memSubmissions) ListByOwners(_ context.Context, q model.FeedQuery) ([]model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owners := make(map[uuid.UUID]bool, len(q.OwnerIDs))
	for _, id := range q.OwnerIDs {
		owners[id] = true
	}
	var all []model.Submission
	for _, sub := range s.submissions {
		if !owners[sub.UserID] {
			continue
		}
		if q.DailyPromptID != nil && sub.DailyPromptID != *q.DailyPromptID {
			continue
		}
		all = append(all, sub)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].SubmittedAt.Equal(all[j].SubmittedAt) {
			return all[i].SubmittedAt.After(all[j].SubmittedAt)
		}
		return bytes.Compare(all[i].ID[:], all[j].ID[:]) > 0
	})
	return page(all, q.Limit, q.Offset), nil
}

func (s *memSubmissions) ToggleLike(_ context.Context, submissionID, userID uuid.UUID) (model.LikeState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[submissionID]
	if !ok {
		return model.LikeState{}, model.ErrNotFound
	}
	liked := false
	likes := make([]uuid.UUID, 0, len(sub.Likes)+1)
	for _, id := range sub.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	if len(likes) == len(sub.Likes) {
		likes = append(likes, userID)
		liked = true
	}
	sub.Likes = likes
	s.submissions[submissionID] = sub
	return model.LikeState{LikeCount: len(likes), IsLiked: liked}, nil
}

func (s *memSubmissions) AddComment(_ context.Context, c model.Comment) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[c.SubmissionID]
	if !ok {
		return nil, model.ErrNotFound
	}
	sub.Comments = append(sub.Comments, c)
	s.submissions[c.SubmissionID] = sub
	return append([]model.Comment(nil), sub.Comments...), nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

// memImages records uploaded objects.
type memImages struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func newMemImages() *memImages {
	return &memImages{objects: make(map[string][]byte)}
}

func (m *memImages) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return "https://img.test/" + key, nil
}

func (m *memImages) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return errors.New("no such key")
	}
	delete(m.objects, key)
	return nil
}

func (m *memImages) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
