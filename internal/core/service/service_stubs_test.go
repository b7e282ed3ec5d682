package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository for service tests.
type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = uuid.NewString()
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Phone != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Phone == *upd.Phone {
				return nil, domain.ErrPhoneTaken
			}
		}
		u.Phone = *upd.Phone
	}
	if upd.City != nil {
		u.City = *upd.City
	}
	if upd.District != nil {
		u.District = *upd.District
	}
	if upd.Street != nil {
		u.Street = *upd.Street
	}
	if upd.Gender != nil {
		u.Gender = *upd.Gender
	}
	if upd.Regions != nil {
		u.Regions = append([]string(nil), upd.Regions...)
	}
	if upd.ProfileImageURL != nil {
		u.ProfileImageURL = *upd.ProfileImageURL
	}
	if upd.BasePrice != nil {
		u.BasePrice = upd.BasePrice
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

// stubOfferRepo is an in-memory ports.OfferRepository for service tests.
type stubOfferRepo struct {
	mu     sync.Mutex
	offers []*domain.Offer
}

func (r *stubOfferRepo) Create(_ context.Context, offer *domain.Offer) (*domain.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *offer
	if copy.ID == "" {
		copy.ID = uuid.NewString()
	}
	r.offers = append(r.offers, &copy)
	out := copy
	return &out, nil
}

func (r *stubOfferRepo) ListByCleaner(_ context.Context, cleanerID string) ([]*domain.Offer, error) {
	return r.list(func(o *domain.Offer) bool { return o.CleanerID == cleanerID }), nil
}

func (r *stubOfferRepo) ListByCustomer(_ context.Context, customerID string) ([]*domain.Offer, error) {
	return r.list(func(o *domain.Offer) bool { return o.CustomerID == customerID }), nil
}

func (r *stubOfferRepo) list(match func(*domain.Offer) bool) []*domain.Offer {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Offer
	for _, o := range r.offers {
		if match(o) {
			copy := *o
			out = append(out, &copy)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// stubVersions is an in-memory ports.TokenVersions.
type stubVersions struct {
	mu       sync.Mutex
	versions map[string]int64
	err      error
}

func newStubVersions() *stubVersions {
	return &stubVersions{versions: make(map[string]int64)}
}

func (s *stubVersions) Current(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return s.versions[userID], nil
}

func (s *stubVersions) Bump(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	s.versions[userID]++
	return s.versions[userID], nil
}

// stubCache is an in-memory ports.DirectoryCache.
type stubCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	hits    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (s *stubCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	payload, ok := s.entries[key]
	if ok {
		s.hits++
	}
	return payload, ok, nil
}

func (s *stubCache) Set(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = payload
	return nil
}

// noopMailer drops mail in tests.
type noopMailer struct{}

func (noopMailer) SendWelcome(context.Context, string, string) error { return nil }
