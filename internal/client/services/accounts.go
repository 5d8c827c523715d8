// Package services contains application services for the MovieKeeper client.
// This file defines the account & favorites store: registration, login and
// logout against a local account collection, and favorites scoped to the
// active session, all persisted into a kv.Store.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/dmitrijs2005/moviekeeper/internal/client/credentials"
	"github.com/dmitrijs2005/moviekeeper/internal/client/models"
	"github.com/dmitrijs2005/moviekeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moviekeeper/internal/common"
	"github.com/google/uuid"
)

// AccountStore defines the account and favorites operations for the shell.
//
// Contract:
//   - Register: reject duplicates, validate and create an account; does not
//     start a session.
//   - Login: start a session for the account with the given email.
//   - Logout: end the session.
//   - AddToFavorites / RemoveFromFavorites: edit the session account's
//     favorites; both require a session.
//   - IsFavorite, Favorites, IsAuthenticated, CurrentAccount: read the
//     in-memory state only.
//
// Mutations return only after the backing store reflects the new state.
type AccountStore interface {
	Register(ctx context.Context, username, email, secret string) (models.PublicAccount, error)
	Login(ctx context.Context, email, secret string) (models.PublicAccount, error)
	Logout(ctx context.Context) error
	AddToFavorites(ctx context.Context, movie models.MovieRef) error
	RemoveFromFavorites(ctx context.Context, movieID string) error
	IsFavorite(movieID string) bool
	Favorites() []models.Favorite
	IsAuthenticated() bool
	CurrentAccount() (models.PublicAccount, bool)
}

// Option customizes an account store.
type Option func(*accountStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *accountStore) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString for new account ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *accountStore) { s.newID = newID }
}

type accountStore struct {
	mu       sync.Mutex
	store    kv.Store
	verifier credentials.Verifier
	now      func() time.Time
	newID    func() string

	accounts []models.Account
	session  *models.PublicAccount
}

// NewAccountStore loads the persisted accounts and session from store.
// Missing entries mean no accounts and no session. A session whose account
// no longer exists is dropped.
func NewAccountStore(ctx context.Context, store kv.Store, verifier credentials.Verifier, opts ...Option) (AccountStore, error) {
	s := &accountStore{
		store:    store,
		verifier: verifier,
		now:      time.Now,
		newID:    uuid.NewString,
		accounts: []models.Account{},
	}
	for _, o := range opts {
		o(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *accountStore) load(ctx context.Context) error {
	raw, err := s.store.Get(ctx, common.AccountsKey)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	if raw != nil {
		var accounts []models.Account
		if err := json.Unmarshal(raw, &accounts); err != nil {
			return fmt.Errorf("%w: %s: %v", common.ErrCorruptState, common.AccountsKey, err)
		}
		if accounts != nil {
			s.accounts = accounts
		}
	}

	raw, err = s.store.Get(ctx, common.SessionKey)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var session models.PublicAccount
	if err := json.Unmarshal(raw, &session); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrCorruptState, common.SessionKey, err)
	}

	i := s.indexByID(s.accounts, session.ID)
	if i < 0 {
		if err := s.store.Delete(ctx, common.SessionKey); err != nil {
			return fmt.Errorf("failed to drop orphan session: %w", err)
		}
		return nil
	}

	// The account collection is authoritative for favorites.
	pub := s.accounts[i].Public()
	s.session = &pub
	return nil
}

func validateRegistration(username, email, secret string) error {
	if username == "" || email == "" || secret == "" {
		return fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if secretLength(secret) < common.MinSecretLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, common.MinSecretLength)
	}
	return nil
}

// secretLength counts UTF-16 code units, so a character outside the BMP
// counts twice.
func secretLength(secret string) int {
	n := 0
	for _, r := range secret {
		n += utf16.RuneLen(r)
	}
	return n
}

// Register checks for an existing email or username before validating the
// input, so a taken email wins over any validation failure.
func (s *accountStore) Register(ctx context.Context, username, email, secret string) (models.PublicAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Email == email || a.Username == username {
			return models.PublicAccount{}, common.ErrDuplicateAccount
		}
	}

	if err := validateRegistration(username, email, secret); err != nil {
		return models.PublicAccount{}, err
	}

	sealed, err := s.verifier.Seal(secret)
	if err != nil {
		return models.PublicAccount{}, fmt.Errorf("failed to seal secret: %w", err)
	}

	acc := models.Account{
		ID:        s.newID(),
		Username:  username,
		Email:     email,
		Secret:    sealed,
		Favorites: []models.Favorite{},
		CreatedAt: s.now(),
	}

	accounts := append(cloneAccounts(s.accounts), acc)
	if err := s.persist(ctx, accounts, s.session, false); err != nil {
		return models.PublicAccount{}, err
	}
	s.accounts = accounts

	return acc.Public(), nil
}

func (s *accountStore) Login(ctx context.Context, email, secret string) (models.PublicAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := -1
	for j, a := range s.accounts {
		if a.Email == email {
			i = j
			break
		}
	}
	if i < 0 {
		return models.PublicAccount{}, common.ErrNotFound
	}

	acc := s.accounts[i]
	if !s.verifier.Verify(acc.Secret, secret) {
		return models.PublicAccount{}, common.ErrInvalidCredential
	}

	pub := acc.Public()
	if err := s.persistSession(ctx, &pub); err != nil {
		return models.PublicAccount{}, err
	}
	s.session = &pub

	return clonePublic(pub), nil
}

func (s *accountStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistSession(ctx, nil); err != nil {
		return err
	}
	s.session = nil
	return nil
}

func (s *accountStore) AddToFavorites(ctx context.Context, movie models.MovieRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.sessionIndex()
	if err != nil {
		return err
	}
	if s.accounts[i].FavoriteIndex(movie.MovieID) >= 0 {
		return common.ErrDuplicateFavorite
	}

	accounts := cloneAccounts(s.accounts)
	favs := models.CloneFavorites(accounts[i].Favorites)
	accounts[i].Favorites = append(favs, movie.Favorite(s.now()))

	return s.commitFavorites(ctx, accounts, i)
}

func (s *accountStore) RemoveFromFavorites(ctx context.Context, movieID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.sessionIndex()
	if err != nil {
		return err
	}

	accounts := cloneAccounts(s.accounts)
	favs := make([]models.Favorite, 0, len(accounts[i].Favorites))
	for _, f := range accounts[i].Favorites {
		if f.MovieID != movieID {
			favs = append(favs, f)
		}
	}
	accounts[i].Favorites = favs

	return s.commitFavorites(ctx, accounts, i)
}

func (s *accountStore) IsFavorite(movieID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session != nil && s.session.HasFavorite(movieID)
}

func (s *accountStore) Favorites() []models.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return []models.Favorite{}
	}
	return models.CloneFavorites(s.session.Favorites)
}

func (s *accountStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session != nil
}

func (s *accountStore) CurrentAccount() (models.PublicAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.PublicAccount{}, false
	}
	return clonePublic(*s.session), true
}

// sessionIndex returns the position of the session account. Callers hold mu.
func (s *accountStore) sessionIndex() (int, error) {
	if s.session == nil {
		return -1, common.ErrUnauthenticated
	}
	i := s.indexByID(s.accounts, s.session.ID)
	if i < 0 {
		return -1, common.ErrUnauthenticated
	}
	return i, nil
}

// commitFavorites persists accounts together with a session rebuilt from
// accounts[i], then installs both in memory.
func (s *accountStore) commitFavorites(ctx context.Context, accounts []models.Account, i int) error {
	pub := accounts[i].Public()
	if err := s.persist(ctx, accounts, &pub, true); err != nil {
		return err
	}
	s.accounts = accounts
	s.session = &pub
	return nil
}

// persist writes the account collection and, when withSession is set, the
// session entry in a single transaction.
func (s *accountStore) persist(ctx context.Context, accounts []models.Account, session *models.PublicAccount, withSession bool) error {
	rawAccounts, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}

	return s.store.Atomically(ctx, func(ctx context.Context, r kv.Repository) error {
		if err := r.Set(ctx, common.AccountsKey, rawAccounts); err != nil {
			return fmt.Errorf("failed to save accounts: %w", err)
		}
		if withSession {
			return writeSession(ctx, r, session)
		}
		return nil
	})
}

func (s *accountStore) persistSession(ctx context.Context, session *models.PublicAccount) error {
	return writeSession(ctx, s.store, session)
}

func writeSession(ctx context.Context, r kv.Repository, session *models.PublicAccount) error {
	if session == nil {
		if err := r.Delete(ctx, common.SessionKey); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.Set(ctx, common.SessionKey, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *accountStore) indexByID(accounts []models.Account, id string) int {
	for i, a := range accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// cloneAccounts copies the slice header level only; callers replace, never
// mutate, a Favorites slice they want to change.
func cloneAccounts(accounts []models.Account) []models.Account {
	out := make([]models.Account, len(accounts))
	copy(out, accounts)
	return out
}

func clonePublic(p models.PublicAccount) models.PublicAccount {
	p.Favorites = models.CloneFavorites(p.Favorites)
	return p
}
