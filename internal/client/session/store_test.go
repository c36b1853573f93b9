package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/client/securestore/mocks"
	"github.com/dmitrijs2005/trainerhub/internal/common"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeAuth struct {
	mu        sync.Mutex
	loginResp *models.AuthResponse
	loginErr  error
	regResp   *models.AuthResponse
	regErr    error

	gotCreds models.LoginCredentials
	gotReg   models.RegisterData

	// observe is called while the remote call is in flight
	observe func()
}

func (f *fakeAuth) Login(_ context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	f.mu.Lock()
	f.gotCreds = creds
	f.mu.Unlock()
	if f.observe != nil {
		f.observe()
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	f.mu.Lock()
	f.gotReg = data
	f.mu.Unlock()
	if f.observe != nil {
		f.observe()
	}
	return f.regResp, f.regErr
}

func studentResp() *models.AuthResponse {
	return &models.AuthResponse{
		User:        &models.User{ID: "u1", Email: "a@b.com", Name: "Ana", Role: models.RoleStudent},
		AccessToken: "tok-123",
	}
}

func requireInvariant(t *testing.T, s *Store) {
	t.Helper()
	snap := s.Snapshot()
	assert.Equal(t, snap.User != nil && snap.Token != "", snap.IsAuthenticated)
}

func newStore(store securestore.Store, auth Authenticator) *Store {
	return New(store, auth, logging.Nop())
}

func TestNew_InitialState(t *testing.T) {
	s := newStore(securestore.NewMemoryStore(), &fakeAuth{})

	snap := s.Snapshot()
	assert.True(t, snap.IsLoading)
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
	assert.Equal(t, StatusRestoring, snap.Status)
	assert.Equal(t, TreeLoading, NavigationTree(snap))
}

// Example scenario: login a@b.com / secret1 against a stub returning tok-123.
func TestLogin_Success(t *testing.T) {
	mem := securestore.NewMemoryStore()
	auth := &fakeAuth{loginResp: studentResp()}
	s := newStore(mem, auth)
	ctx := context.Background()
	s.LoadStoredAuth(ctx)

	err := s.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", auth.gotCreds.Email)
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
	assert.Equal(t, "tok-123", s.Token())
	assert.Equal(t, StatusAuthenticated, s.Status())
	requireInvariant(t, s)

	tok, ok, err := mem.Get(ctx, common.TokenStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-123", tok)

	raw, ok, err := mem.Get(ctx, common.UserStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	var stored models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "u1", stored.ID)
	assert.Equal(t, models.RoleStudent, stored.Role)
}

func TestLogin_LoadingWhileInFlight(t *testing.T) {
	auth := &fakeAuth{loginResp: studentResp()}
	s := newStore(securestore.NewMemoryStore(), auth)
	s.LoadStoredAuth(context.Background())

	var during Snapshot
	auth.observe = func() { during = s.Snapshot() }

	require.NoError(t, s.Login(context.Background(), models.LoginCredentials{Email: "a@b.com", Password: "x"}))
	assert.True(t, during.IsLoading)
	assert.False(t, during.IsAuthenticated)
	assert.Equal(t, StatusAuthenticating, during.Status)
}

func TestLogin_BeforeRestoreIsAuthenticated(t *testing.T) {
	s := newStore(securestore.NewMemoryStore(), &fakeAuth{loginResp: studentResp()})

	require.NoError(t, s.Login(context.Background(), models.LoginCredentials{Email: "a@b.com", Password: "secret1"}))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, StatusAuthenticated, s.Status())
	assert.Equal(t, TreeStudent, NavigationTree(s.Snapshot()))
}

func TestLogin_FailureLeavesNoPartialState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	// restore reads, but no writes may happen
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, nil).Times(2)

	boom := errors.New("invalid credentials")
	s := newStore(store, &fakeAuth{loginErr: boom})
	ctx := context.Background()
	s.LoadStoredAuth(ctx)

	err := s.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "bad"})
	require.ErrorIs(t, err, boom)

	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
	assert.Equal(t, StatusUnauthenticated, s.Status())
}

func TestLogin_InvalidResponseIsFailure(t *testing.T) {
	mem := securestore.NewMemoryStore()
	s := newStore(mem, &fakeAuth{loginResp: &models.AuthResponse{User: &models.User{ID: "u1"}}})
	s.LoadStoredAuth(context.Background())

	err := s.Login(context.Background(), models.LoginCredentials{})
	require.ErrorIs(t, err, common.ErrInvalidAuthResponse)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 0, mem.Len())
}

func TestLogin_PersistFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()
	diskFull := errors.New("disk full")

	gomock.InOrder(
		store.EXPECT().Set(gomock.Any(), common.TokenStorageKey, "tok-123").Return(nil),
		store.EXPECT().Set(gomock.Any(), common.UserStorageKey, gomock.Any()).Return(diskFull),
	)
	store.EXPECT().Delete(gomock.Any(), common.TokenStorageKey).Return(nil)
	store.EXPECT().Delete(gomock.Any(), common.UserStorageKey).Return(nil)

	s := newStore(store, &fakeAuth{loginResp: studentResp()})
	s.SetLoading(false)

	err := s.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "secret1"})
	require.ErrorIs(t, err, diskFull)
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
	requireInvariant(t, s)
}

func TestRegister_SameContractAsLogin(t *testing.T) {
	mem := securestore.NewMemoryStore()
	resp := &models.AuthResponse{
		User:        &models.User{ID: "p1", Email: "coach@b.com", Name: "Coach", Role: models.RolePersonal},
		AccessToken: "tok-p1",
	}
	auth := &fakeAuth{regResp: resp}
	s := newStore(mem, auth)
	ctx := context.Background()
	s.LoadStoredAuth(ctx)

	data := models.RegisterData{Name: "Coach", Email: "coach@b.com", Password: "secret1", Role: models.RolePersonal}
	require.NoError(t, s.Register(ctx, data))

	assert.Equal(t, data, auth.gotReg)
	assert.Equal(t, TreePersonal, NavigationTree(s.Snapshot()))
	assert.Equal(t, 2, mem.Len())

	s.Logout(ctx)
	auth.regErr = errors.New("email already registered")
	require.ErrorIs(t, s.Register(ctx, data), auth.regErr)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 0, mem.Len())
}

func TestLogin_ThenRestartRestoresSameSession(t *testing.T) {
	mem := securestore.NewMemoryStore()
	ctx := context.Background()

	first := newStore(mem, &fakeAuth{loginResp: studentResp()})
	first.LoadStoredAuth(ctx)
	require.NoError(t, first.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "secret1"}))

	second := newStore(mem, &fakeAuth{})
	second.LoadStoredAuth(ctx)

	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, first.Token(), second.Token())
	assert.Equal(t, first.User(), second.User())
}

func TestLoadStoredAuth_RoundTrip(t *testing.T) {
	mem := securestore.NewMemoryStore()
	ctx := context.Background()
	user := models.User{ID: "u1", Email: "a@b.com", Name: "Ana", Role: models.RoleStudent, PersonalID: "p1"}
	raw, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, common.TokenStorageKey, "tok-123"))
	require.NoError(t, mem.Set(ctx, common.UserStorageKey, string(raw)))

	s := newStore(mem, &fakeAuth{})
	s.LoadStoredAuth(ctx)

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
	assert.Equal(t, &user, s.User())
	assert.Equal(t, StatusAuthenticated, s.Status())
	assert.Equal(t, TreeStudent, NavigationTree(s.Snapshot()))
}

func TestLoadStoredAuth_EmptyStore(t *testing.T) {
	s := newStore(securestore.NewMemoryStore(), &fakeAuth{})
	s.LoadStoredAuth(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.False(t, s.IsLoading())
	assert.Equal(t, StatusUnauthenticated, s.Status())
	assert.Equal(t, TreeAuth, NavigationTree(s.Snapshot()))
}

func TestLoadStoredAuth_CorruptRecordsArePurged(t *testing.T) {
	tests := []struct {
		name  string
		token string
		user  string
	}{
		{name: "bad json", token: "tok", user: "{not json"},
		{name: "null user", token: "tok", user: "null"},
		{name: "token only", token: "tok"},
		{name: "user only", user: `{"id":"u1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := securestore.NewMemoryStore()
			ctx := context.Background()
			if tt.token != "" {
				require.NoError(t, mem.Set(ctx, common.TokenStorageKey, tt.token))
			}
			if tt.user != "" {
				require.NoError(t, mem.Set(ctx, common.UserStorageKey, tt.user))
			}

			s := newStore(mem, &fakeAuth{})
			s.LoadStoredAuth(ctx)

			assert.False(t, s.IsAuthenticated())
			assert.False(t, s.IsLoading())
			assert.Equal(t, 0, mem.Len())
		})
	}
}

func TestLoadStoredAuth_TransientReadErrorKeepsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), common.TokenStorageKey).Return("", false, errors.New("database is locked"))
	// no Delete expected: a transient read failure leaves the record alone

	s := newStore(store, &fakeAuth{})
	require.NotPanics(t, func() { s.LoadStoredAuth(context.Background()) })

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
}

func TestLoadStoredAuth_UnreadableValueIsPurged(t *testing.T) {
	tests := []struct {
		name    string
		corrupt string
	}{
		{name: "token", corrupt: common.TokenStorageKey},
		{name: "user", corrupt: common.UserStorageKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			store.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, key string) (string, bool, error) {
					if key == tt.corrupt {
						return "", false, securestore.ErrCorrupt
					}
					return "tok-123", true, nil
				}).AnyTimes()
			store.EXPECT().Delete(gomock.Any(), common.TokenStorageKey).Return(nil)
			store.EXPECT().Delete(gomock.Any(), common.UserStorageKey).Return(nil)

			s := newStore(store, &fakeAuth{})
			s.LoadStoredAuth(context.Background())

			assert.False(t, s.IsAuthenticated())
			assert.False(t, s.IsLoading())
			assert.Equal(t, StatusUnauthenticated, s.Status())
		})
	}
}

func TestLogout_Idempotent(t *testing.T) {
	mem := securestore.NewMemoryStore()
	s := newStore(mem, &fakeAuth{loginResp: studentResp()})
	ctx := context.Background()
	s.LoadStoredAuth(ctx)
	require.NoError(t, s.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "secret1"}))

	s.Logout(ctx)
	first := s.Snapshot()
	s.Logout(ctx)
	second := s.Snapshot()

	assert.Equal(t, first, second)
	assert.Nil(t, second.User)
	assert.Empty(t, second.Token)
	assert.False(t, second.IsAuthenticated)
	assert.Equal(t, 0, mem.Len())
}

func TestLogout_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("keychain unavailable")).Times(2)

	s := newStore(store, &fakeAuth{loginResp: studentResp()})
	ctx := context.Background()
	require.NoError(t, s.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "secret1"}))
	require.True(t, s.IsAuthenticated())

	require.NotPanics(t, func() { s.Logout(ctx) })
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestSetLoading(t *testing.T) {
	s := newStore(securestore.NewMemoryStore(), &fakeAuth{})
	s.SetLoading(false)
	assert.False(t, s.IsLoading())
	s.SetLoading(true)
	assert.True(t, s.IsLoading())
}

func TestSubscribe_ReceivesSnapshots(t *testing.T) {
	s := newStore(securestore.NewMemoryStore(), &fakeAuth{loginResp: studentResp()})
	ctx := context.Background()

	var got []Status
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		assert.Equal(t, snap.User != nil && snap.Token != "", snap.IsAuthenticated)
		got = append(got, snap.Status)
	})

	s.LoadStoredAuth(ctx)
	require.NoError(t, s.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "secret1"}))
	s.Logout(ctx)

	assert.Equal(t, []Status{
		StatusUnauthenticated,
		StatusAuthenticating,
		StatusAuthenticated,
		StatusUnauthenticated,
	}, got)

	unsubscribe()
	s.SetLoading(true)
	assert.Len(t, got, 4)
}

func TestUser_ReturnsCopy(t *testing.T) {
	s := newStore(securestore.NewMemoryStore(), &fakeAuth{loginResp: studentResp()})
	ctx := context.Background()
	require.NoError(t, s.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "secret1"}))

	u := s.User()
	u.Name = "mutated"
	assert.Equal(t, "Ana", s.User().Name)
}

func TestConcurrentOperationsKeepInvariant(t *testing.T) {
	s := newStore(securestore.NewMemoryStore(), &fakeAuth{loginResp: studentResp()})
	ctx := context.Background()
	s.LoadStoredAuth(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = s.Login(ctx, models.LoginCredentials{Email: "a@b.com", Password: "secret1"})
		}()
		go func() {
			defer wg.Done()
			s.Logout(ctx)
		}()
		go func() {
			defer wg.Done()
			snap := s.Snapshot()
			if snap.IsAuthenticated != (snap.User != nil && snap.Token != "") {
				t.Errorf("invariant violated: %+v", snap)
			}
		}()
	}
	wg.Wait()
	requireInvariant(t, s)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "restoring", StatusRestoring.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
	assert.Equal(t, "unknown", Status(42).String())
}
