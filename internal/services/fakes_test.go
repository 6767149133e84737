package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cofounderbase/internal/models"
	"cofounderbase/internal/repositories"
)

// In-memory store fakes. They mirror the repository contracts: reads return
// (nil, nil) on a miss, writes return repositories.ErrNotFound, and the vote
// mutations are guarded the same way the SQL is.

var errStoreDown = errors.New("store unavailable")

type memProfileStore struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]models.Profile
	clock    time.Time
	failNext bool
	failAll  bool
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{
		byID:  make(map[uuid.UUID]models.Profile),
		clock: time.Unix(1000, 0).UTC(),
	}
}

func (m *memProfileStore) failing() error {
	if m.failAll || m.failNext {
		m.failNext = false
		return errStoreDown
	}
	return nil
}

func (m *memProfileStore) Create(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing(); err != nil {
		return err
	}
	m.clock = m.clock.Add(time.Second)
	p.CreatedAt = m.clock
	p.UpdatedAt = m.clock
	m.byID[p.ID] = *p
	return nil
}

func (m *memProfileStore) GetByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing(); err != nil {
		return nil, err
	}
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memProfileStore) Update(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing(); err != nil {
		return err
	}
	if _, ok := m.byID[p.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.clock = m.clock.Add(time.Second)
	p.UpdatedAt = m.clock
	m.byID[p.ID] = *p
	return nil
}

func (m *memProfileStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing(); err != nil {
		return err
	}
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memProfileStore) List(_ context.Context, f repositories.ProfileFilters) ([]models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing(); err != nil {
		return nil, err
	}

	var out []models.Profile
	for _, p := range m.byID {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Industry != "" && !contains(p.Industry, f.Industry) {
			continue
		}
		if f.Skills != "" && !contains(p.Skills, f.Skills) {
			continue
		}
		if f.SkillsNeeded != "" && !contains(p.SkillsNeeded, f.SkillsNeeded) {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.StartupStage != "" && p.StartupStage != f.StartupStage {
			continue
		}
		if f.Availability != "" && p.Availability != f.Availability {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type memFeatureStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]models.Feature
	failAll bool
}

func newMemFeatureStore() *memFeatureStore {
	return &memFeatureStore{byID: make(map[uuid.UUID]models.Feature)}
}

func (m *memFeatureStore) Create(_ context.Context, f *models.Feature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errStoreDown
	}
	f.CreatedAt = time.Now().UTC()
	f.UpdatedAt = f.CreatedAt
	m.byID[f.ID] = *f
	return nil
}

func (m *memFeatureStore) GetByID(_ context.Context, id uuid.UUID) (*models.Feature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStoreDown
	}
	f, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := f
	cp.Voters = append([]string(nil), f.Voters...)
	return &cp, nil
}

func (m *memFeatureStore) List(_ context.Context) ([]models.Feature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStoreDown
	}
	var out []models.Feature
	for _, f := range m.byID {
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Votes > out[j].Votes
	})
	return out, nil
}

func (m *memFeatureStore) AddVote(_ context.Context, id uuid.UUID, voter string) (*models.Feature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStoreDown
	}
	f, ok := m.byID[id]
	if !ok || contains(f.Voters, voter) {
		return nil, nil
	}
	f.Voters = append(append([]string(nil), f.Voters...), voter)
	f.Votes = len(f.Voters)
	m.byID[id] = f
	cp := f
	return &cp, nil
}

func (m *memFeatureStore) RemoveVote(_ context.Context, id uuid.UUID, voter string) (*models.Feature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStoreDown
	}
	f, ok := m.byID[id]
	if !ok || !contains(f.Voters, voter) {
		return nil, nil
	}
	voters := make([]string, 0, len(f.Voters)-1)
	for _, v := range f.Voters {
		if v != voter {
			voters = append(voters, v)
		}
	}
	f.Voters = voters
	f.Votes = len(voters)
	m.byID[id] = f
	cp := f
	return &cp, nil
}

type memSettingsStore struct {
	mu      sync.Mutex
	stored  *models.Settings
	failAll bool
}

func (m *memSettingsStore) Get(_ context.Context) (*models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStoreDown
	}
	if m.stored == nil {
		return nil, nil
	}
	cp := *m.stored
	return &cp, nil
}

func (m *memSettingsStore) Create(_ context.Context, s *models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errStoreDown
	}
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	m.stored = &cp
	return nil
}

func (m *memSettingsStore) Update(_ context.Context, s *models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errStoreDown
	}
	if m.stored == nil {
		return repositories.ErrNotFound
	}
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	m.stored = &cp
	return nil
}

// fakeNotifier records dispatch attempts and can be told to fail.
type fakeNotifier struct {
	mu          sync.Mutex
	submissions []string // recipient addresses
	approvals   []string // "addr|name|url"
	fail        bool
}

func (n *fakeNotifier) SendSubmissionConfirmation(to, name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("smtp down")
	}
	n.submissions = append(n.submissions, to)
	return nil
}

func (n *fakeNotifier) SendProfileApproval(to, name, profileURL string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("smtp down")
	}
	n.approvals = append(n.approvals, to+"|"+name+"|"+profileURL)
	return nil
}
