package alerts_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tg_ledger/internal/config"
	"tg_ledger/internal/infrastructure/alerts"
)

func TestSourceFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["первое","второе"]`))
	}))
	defer server.Close()

	source := alerts.NewSource(config.Alerts{URL: server.URL, Token: "secret"})

	texts, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"первое", "второе"}, texts)
}

func TestSourceFetchBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	source := alerts.NewSource(config.Alerts{URL: server.URL})

	_, err := source.Fetch(context.Background())
	require.Error(t, err)
}

func TestSeenIndex(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seen.json")

	idx, err := alerts.NewSeenIndex(path)
	require.NoError(t, err)

	isNew, err := idx.MarkSeen("куплен аккаунт")
	require.NoError(t, err)
	require.True(t, isNew)

	isNew, err = idx.MarkSeen("куплен аккаунт")
	require.NoError(t, err)
	require.False(t, isNew)

	// a freshly loaded index remembers what the old one saw
	reloaded, err := alerts.NewSeenIndex(path)
	require.NoError(t, err)

	isNew, err = reloaded.MarkSeen("куплен аккаунт")
	require.NoError(t, err)
	require.False(t, isNew)

	isNew, err = reloaded.MarkSeen("другой текст")
	require.NoError(t, err)
	require.True(t, isNew)
}
