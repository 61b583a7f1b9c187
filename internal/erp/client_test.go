package erp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "tok-123" })
	_, err := c.ListEmployees(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestNoTokenNoAuthHeader(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Employee not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.GetEmployee(context.Background(), "missing")

	assert.True(t, IsNotFound(err))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Employee not found", apiErr.Message)
}

func TestServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListEmployees(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.Status)
	assert.Empty(t, apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestUpdateOmitsEmptyPassword(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`{"_id":"e1","user":{"name":"Ana","email":"ana@x.com","role":"employee"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.UpdateEmployee(context.Background(), "e1", UpdateEmployeeRequest{
		Name:  "Ana",
		Email: "ana@x.com",
	})
	require.NoError(t, err)

	_, hasPassword := body["password"]
	assert.False(t, hasPassword, "blank password must not reach the wire")
	assert.Equal(t, "Ana", body["name"])
}

func TestLoginKeepsRemoteMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Incorrect password for this account"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Login(context.Background(), "a@b.com", "nope")

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Incorrect password for this account", authErr.RemoteMessage)
}

func TestLoginTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, nil)
	_, err := c.Login(context.Background(), "a@b.com", "pw")

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "login failed", authErr.Message)
}

func TestTotalSales(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/totalSales/e42", r.URL.Path)
		w.Write([]byte(`{"totalSales":1234.5}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	total, err := c.TotalSalesFor(context.Background(), "e42")
	require.NoError(t, err)
	assert.Equal(t, 1234.5, total)
}

func TestIncentiveSlab(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/incentiveSlab/e1", r.URL.Path)
		w.Write([]byte(`["5% quarterly bonus","travel allowance"]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	slab, err := c.IncentiveSlab(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"5% quarterly bonus", "travel allowance"}, slab)
}
