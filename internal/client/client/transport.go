package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/common"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
	"github.com/google/uuid"
)

// authTransport attaches stored credentials to outgoing requests and purges
// them when the server rejects them.
type authTransport struct {
	base           http.RoundTripper
	store          securestore.Store
	logger         logging.Logger
	onUnauthorized func(ctx context.Context)
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// a RoundTripper must not modify the caller's request
	r := req.Clone(ctx)

	token, ok, err := t.store.Get(ctx, common.TokenStorageKey)
	switch {
	case err != nil:
		t.logger.Warn(ctx, "read access token failed, sending request unauthenticated",
			"method", r.Method, "path", r.URL.Path, "error", err)
	case ok && token != "":
		r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	resp, err := t.base.RoundTrip(r)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.purge(ctx, r)
	}
	return resp, nil
}

// purge deletes the stored credential record. Failures are logged only; the
// 401 response is what the caller needs to see.
func (t *authTransport) purge(ctx context.Context, r *http.Request) {
	ctx = context.WithoutCancel(ctx)

	t.logger.Info(ctx, "server rejected credentials, clearing stored session",
		"method", r.Method, "path", r.URL.Path, "request_id", r.Header.Get(common.RequestIDHeaderName))

	if err := securestore.DeleteMany(ctx, t.store, common.TokenStorageKey, common.UserStorageKey); err != nil {
		t.logger.Error(ctx, "clear stored credentials failed", "error", err)
	}

	if t.onUnauthorized != nil {
		t.onUnauthorized(ctx)
	}
}
