package session_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/trainerhub/internal/client/client"
	"github.com/dmitrijs2005/trainerhub/internal/client/models"
	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/client/session"
	"github.com/dmitrijs2005/trainerhub/internal/common"
	"github.com/dmitrijs2005/trainerhub/internal/cryptox"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
)

type noAuth struct{}

func (noAuth) Login(context.Context, models.LoginCredentials) (*models.AuthResponse, error) {
	return nil, client.ErrUnauthorized
}

func (noAuth) Register(context.Context, models.RegisterData) (*models.AuthResponse, error) {
	return nil, client.ErrUnauthorized
}

func openSQLite(t *testing.T) (*securestore.SQLiteStore, string) {
	t.Helper()
	key, err := cryptox.GenerateKey()
	require.NoError(t, err)
	sealer, err := cryptox.NewSealer(key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "credentials.db")
	store, err := securestore.OpenSQLite(context.Background(), path, sealer)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestLoadStoredAuth_TamperedUserRowClearsCredentials(t *testing.T) {
	ctx := context.Background()
	store, path := openSQLite(t)

	require.NoError(t, securestore.SetMany(ctx, store,
		securestore.Entry{Key: common.TokenStorageKey, Value: "tok-123"},
		securestore.Entry{Key: common.UserStorageKey, Value: `{"id":"u1","email":"a@b.com","name":"Ana","role":"STUDENT"}`},
	))

	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.ExecContext(ctx, `UPDATE credentials SET value = X'00010203' WHERE key = ?`, common.UserStorageKey)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	sess := session.New(store, noAuth{}, logging.Nop())
	sess.LoadStoredAuth(ctx)

	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsLoading())

	for _, k := range []string{common.TokenStorageKey, common.UserStorageKey} {
		_, ok, err := store.Get(ctx, k)
		require.NoError(t, err, k)
		assert.False(t, ok, k)
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	gw, err := client.New(client.Options{BaseURL: srv.URL + "/api"}, store, logging.Nop())
	require.NoError(t, err)

	var out []models.Student
	require.NoError(t, gw.Get(ctx, "/students", nil, &out))
	assert.Empty(t, gotAuth)
}
