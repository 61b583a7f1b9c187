package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdash/internal/erp"
)

func newTestManager(t *testing.T, handler http.Handler) (*Manager, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mgr := NewManager(NewStore(t.TempDir()))
	mgr.AttachClient(erp.New(srv.URL, mgr.Token))
	return mgr, srv
}

func authOK(w http.ResponseWriter) {
	w.Write([]byte(`{"user":{"name":"Mina","email":"mina@x.com","role":"manager"},"token":"tok-1"}`))
}

func TestLoginInstallsAndPersists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		authOK(w)
	}))
	t.Cleanup(srv.Close)

	stateDir := t.TempDir()
	mgr := NewManager(NewStore(stateDir))
	mgr.AttachClient(erp.New(srv.URL, mgr.Token))

	require.NoError(t, mgr.Login(context.Background(), "mina@x.com", "pw"))
	require.True(t, mgr.LoggedIn())
	assert.Equal(t, "tok-1", mgr.Token())
	assert.Equal(t, "Mina", mgr.Current().User.Name)

	// A second manager over the same store picks the session back up.
	fresh := NewManager(NewStore(stateDir))
	fresh.Restore()
	require.True(t, fresh.LoggedIn())
	assert.Equal(t, "tok-1", fresh.Token())
}

func TestLoginFailureIsGeneric(t *testing.T) {
	mgr, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"No account with this email"}`))
	}))

	err := mgr.Login(context.Background(), "ghost@x.com", "pw")
	require.Error(t, err)
	// The remote's detail stays in the logs; the caller sees one fixed
	// message either way.
	assert.Equal(t, "invalid email or password", err.Error())
	assert.False(t, mgr.LoggedIn())
}

func TestSignupSurfacesRemoteMessage(t *testing.T) {
	mgr, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Email already registered"}`))
	}))

	err := mgr.Signup(context.Background(), "Mina", "mina@x.com", "pw1234", "manager")
	require.Error(t, err)
	assert.Equal(t, "Email already registered", err.Error())
}

func TestSignupLogsIn(t *testing.T) {
	mgr, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		authOK(w)
	}))

	require.NoError(t, mgr.Signup(context.Background(), "Mina", "mina@x.com", "pw1234", "manager"))
	assert.True(t, mgr.LoggedIn())
}

func TestLogoutClearsDespiteRemoteFailure(t *testing.T) {
	mgr, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			authOK(w)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	require.NoError(t, mgr.Login(context.Background(), "mina@x.com", "pw"))
	mgr.Logout(context.Background())

	assert.False(t, mgr.LoggedIn())
	assert.Empty(t, mgr.Token())

	// The persisted session is gone too.
	sess, err := mgr.store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRestoreMissingFile(t *testing.T) {
	mgr := NewManager(NewStore(t.TempDir()))
	mgr.Restore()
	assert.False(t, mgr.LoggedIn())
	assert.Empty(t, mgr.Token())
}
