package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/common"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
)

// Authenticator calls the remote login and registration endpoints.
type Authenticator interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
}

var errCorruptRecord = errors.New("stored credential record is inconsistent")

// Store is the single authoritative session holder. It is safe for
// concurrent use.
type Store struct {
	store  securestore.Store
	auth   Authenticator
	logger logging.Logger

	mu             sync.RWMutex
	user           *models.User
	token          string
	isLoading      bool
	restored       bool
	authenticating int

	lmu       sync.Mutex
	listeners map[uint64]func(Snapshot)
	nextID    uint64
}

// New returns a store in the Restoring state with IsLoading true.
func New(store securestore.Store, auth Authenticator, logger logging.Logger) *Store {
	return &Store{
		store:     store,
		auth:      auth,
		logger:    logger.With("component", "session"),
		isLoading: true,
		listeners: make(map[uint64]func(Snapshot)),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	var u *models.User
	if s.user != nil {
		cp := *s.user
		u = &cp
	}
	return Snapshot{
		User:            u,
		Token:           s.token,
		IsAuthenticated: s.authenticatedLocked(),
		IsLoading:       s.isLoading,
		Status:          s.statusLocked(),
	}
}

func (s *Store) authenticatedLocked() bool {
	return s.user != nil && s.token != ""
}

func (s *Store) statusLocked() Status {
	switch {
	case s.authenticating > 0:
		return StatusAuthenticating
	case !s.restored:
		return StatusRestoring
	case s.authenticatedLocked():
		return StatusAuthenticated
	default:
		return StatusUnauthenticated
	}
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticatedLocked()
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusLocked()
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *models.User {
	return s.Snapshot().User
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// TokenExpiry reports the expiry of the current token when it is a JWT
// carrying an exp claim.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	return TokenExpiry(token)
}

// SetLoading sets the loading flag directly.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.isLoading = loading
	s.mu.Unlock()
	s.notify()
}

// Login authenticates with credentials. On success the credentials are
// persisted before the session exposes them.
func (s *Store) Login(ctx context.Context, creds models.LoginCredentials) error {
	return s.authenticate(ctx, "login", func(ctx context.Context) (*models.AuthResponse, error) {
		return s.auth.Login(ctx, creds)
	})
}

// Register creates an account and signs in with it. Same contract as Login.
func (s *Store) Register(ctx context.Context, data models.RegisterData) error {
	return s.authenticate(ctx, "register", func(ctx context.Context) (*models.AuthResponse, error) {
		return s.auth.Register(ctx, data)
	})
}

func (s *Store) authenticate(ctx context.Context, op string, call func(context.Context) (*models.AuthResponse, error)) error {
	s.mu.Lock()
	s.isLoading = true
	s.authenticating++
	s.mu.Unlock()
	s.notify()

	resp, err := call(ctx)
	if err == nil && !resp.Valid() {
		err = fmt.Errorf("%s: %w", op, common.ErrInvalidAuthResponse)
	}

	persisted := false
	if err == nil {
		if err = s.persist(ctx, resp); err == nil {
			persisted = true
		}
	}

	s.mu.Lock()
	s.authenticating--
	s.isLoading = false
	switch {
	case persisted:
		u := *resp.User
		s.user = &u
		s.token = resp.AccessToken
		s.restored = true
	case resp.Valid():
		// the durable record was rolled back; memory must not keep
		// credentials the store no longer has
		s.user = nil
		s.token = ""
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		s.logger.Info(ctx, op+" failed", "error", err)
		return err
	}

	s.logger.Info(ctx, op+" succeeded", "user_id", resp.User.ID, "role", resp.User.Role)
	return nil
}

// persist writes the token then the user. On failure both keys are removed
// so no half-written record survives.
func (s *Store) persist(ctx context.Context, resp *models.AuthResponse) error {
	raw, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = securestore.SetMany(ctx, s.store,
		securestore.Entry{Key: common.TokenStorageKey, Value: resp.AccessToken},
		securestore.Entry{Key: common.UserStorageKey, Value: string(raw)},
	)
	if err == nil {
		return nil
	}

	if derr := s.clearStored(context.WithoutCancel(ctx)); derr != nil {
		s.logger.Error(ctx, "rollback of partial credential record failed", "error", derr)
	}
	return fmt.Errorf("persist session: %w", err)
}

// Logout deletes the stored credentials and clears the session. Storage
// failures are logged; memory is cleared regardless.
func (s *Store) Logout(ctx context.Context) {
	if err := s.clearStored(ctx); err != nil {
		s.logger.Warn(ctx, "clear stored credentials failed, logging out anyway", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.notify()

	s.logger.Info(ctx, "logged out")
}

// LoadStoredAuth restores the session from the durable store. Any failure
// leaves the session unauthenticated. IsLoading is false afterwards.
func (s *Store) LoadStoredAuth(ctx context.Context) {
	user, token, err := s.readStored(ctx)
	if err != nil {
		s.logger.Warn(ctx, "restore session failed", "error", err)
		if errors.Is(err, errCorruptRecord) || errors.Is(err, securestore.ErrCorrupt) {
			if derr := s.clearStored(ctx); derr != nil {
				s.logger.Warn(ctx, "purge inconsistent credential record failed", "error", derr)
			}
		}
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.isLoading = false
	s.restored = true
	s.mu.Unlock()
	s.notify()

	if user != nil {
		s.logger.Debug(ctx, "session restored", "user_id", user.ID, "role", user.Role)
	}
}

// readStored returns (nil, "", nil) when there is no record, and an error
// wrapping errCorruptRecord when only part of it is present or the user
// cannot be decoded. Values the backend cannot open surface as
// securestore.ErrCorrupt.
func (s *Store) readStored(ctx context.Context) (*models.User, string, error) {
	token, hasToken, err := s.store.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return nil, "", fmt.Errorf("read token: %w", err)
	}
	raw, hasUser, err := s.store.Get(ctx, common.UserStorageKey)
	if err != nil {
		return nil, "", fmt.Errorf("read user: %w", err)
	}

	hasToken = hasToken && token != ""
	switch {
	case !hasToken && !hasUser:
		return nil, "", nil
	case !hasToken || !hasUser:
		return nil, "", fmt.Errorf("%w: token present=%t, user present=%t", errCorruptRecord, hasToken, hasUser)
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, "", fmt.Errorf("%w: decode user: %w", errCorruptRecord, err)
	}
	if u.ID == "" {
		return nil, "", fmt.Errorf("%w: user has no id", errCorruptRecord)
	}
	return &u, token, nil
}

func (s *Store) clearStored(ctx context.Context) error {
	return securestore.DeleteMany(ctx, s.store, common.TokenStorageKey, common.UserStorageKey)
}

// Subscribe registers fn to receive a snapshot after every state change.
// Listeners run synchronously on the mutating goroutine and must not call
// back into mutating operations.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

func (s *Store) notify() {
	snap := s.Snapshot()

	s.lmu.Lock()
	fns := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.lmu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
