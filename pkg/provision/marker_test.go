package provision

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Lifecycle(t *testing.T) {
	store := NewFileStoreWithDir(t.TempDir())

	assert.False(t, store.IsProvisioned("alice"), "absence means never attempted")

	require.NoError(t, store.MarkProvisioned("alice"))
	assert.True(t, store.IsProvisioned("alice"))

	// Idempotent write
	require.NoError(t, store.MarkProvisioned("alice"))
	assert.True(t, store.IsProvisioned("alice"))

	require.NoError(t, store.Clear("alice"))
	assert.False(t, store.IsProvisioned("alice"))

	// Clearing an absent marker is fine
	require.NoError(t, store.Clear("alice"))
}

func TestFileStore_ScopedPerUser(t *testing.T) {
	store := NewFileStoreWithDir(t.TempDir())

	require.NoError(t, store.MarkProvisioned("alice"))

	assert.True(t, store.IsProvisioned("alice"))
	assert.False(t, store.IsProvisioned("bob"))
	assert.NotEqual(t, store.Path("alice"), store.Path("bob"))
}

func TestFileStore_PathUsesFixedPrefix(t *testing.T) {
	store := NewFileStoreWithDir("/tmp")

	path := store.Path("alice")
	assert.Equal(t, filepath.Join("/tmp", MarkerPrefix+"alice"), path)
}

func TestFileStore_SanitizesUsername(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStoreWithDir(dir)

	require.NoError(t, store.MarkProvisioned(`DOMAIN\alice`))

	assert.True(t, store.IsProvisioned(`DOMAIN\alice`))
	base := filepath.Base(store.Path(`DOMAIN\alice`))
	assert.NotContains(t, base, `\`)
	assert.Equal(t, MarkerPrefix+"DOMAIN-alice", base)
}

func TestFileStore_ReceiptIsWrittenButExistenceIsTheSignal(t *testing.T) {
	store := NewFileStoreWithDir(t.TempDir())

	require.NoError(t, store.MarkProvisioned("alice"))

	data, err := os.ReadFile(store.Path("alice"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "run=")
	assert.Contains(t, string(data), "completed=")

	// Contents are never parsed: an externally-created empty file counts
	require.NoError(t, os.WriteFile(store.Path("bob"), nil, 0644))
	assert.True(t, store.IsProvisioned("bob"))
}

func TestCurrentUser_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, CurrentUser())
}

func TestSanitizeUser(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"alice", "alice"},
		{"DOMAIN\\alice", "DOMAIN-alice"},
		{"a b/c:d", "a-b-c-d"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := sanitizeUser(tt.in)
			assert.Equal(t, tt.expected, got)
			assert.False(t, strings.ContainsAny(got, `/\: `))
		})
	}
}
