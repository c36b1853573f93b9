package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSealer(t *testing.T) *Sealer {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	s, err := NewSealer(key)
	require.NoError(t, err)
	return s
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s := newTestSealer(t)

	sealed, err := s.Seal([]byte("tok-123"), []byte("accessToken"))
	require.NoError(t, err)
	require.NotContains(t, string(sealed), "tok-123")

	plain, err := s.Open(sealed, []byte("accessToken"))
	require.NoError(t, err)
	require.Equal(t, "tok-123", string(plain))
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	s := newTestSealer(t)

	a, err := s.Seal([]byte("same"), nil)
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"), nil)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestOpen_WrongAssociatedDataFails(t *testing.T) {
	s := newTestSealer(t)

	sealed, err := s.Seal([]byte("tok"), []byte("accessToken"))
	require.NoError(t, err)

	_, err = s.Open(sealed, []byte("user"))
	require.Error(t, err)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	a := newTestSealer(t)
	b := newTestSealer(t)

	sealed, err := a.Seal([]byte("tok"), nil)
	require.NoError(t, err)

	_, err = b.Open(sealed, nil)
	require.Error(t, err)
}

func TestOpen_TamperedPayloadFails(t *testing.T) {
	s := newTestSealer(t)

	sealed, err := s.Seal([]byte("tok"), nil)
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xFF

	_, err = s.Open(sealed, nil)
	require.Error(t, err)
}

func TestOpen_ShortPayload(t *testing.T) {
	s := newTestSealer(t)
	_, err := s.Open([]byte{1, 2, 3}, nil)
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestNewSealer_RejectsBadKey(t *testing.T) {
	_, err := NewSealer([]byte("short"))
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewSealer_CopiesKey(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	s, err := NewSealer(key)
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("v"), nil)
	require.NoError(t, err)

	for i := range key {
		key[i] = 0
	}

	plain, err := s.Open(sealed, nil)
	require.NoError(t, err)
	require.Equal(t, "v", string(plain))
}
