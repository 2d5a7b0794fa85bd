package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory marker store.
type fakeStore struct {
	provisioned map[string]bool
	markErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{provisioned: make(map[string]bool)}
}

func (s *fakeStore) IsProvisioned(username string) bool { return s.provisioned[username] }

func (s *fakeStore) MarkProvisioned(username string) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.provisioned[username] = true
	return nil
}

func (s *fakeStore) Clear(username string) error {
	delete(s.provisioned, username)
	return nil
}

func (s *fakeStore) Path(username string) string { return "/tmp/fake-" + username }

func TestGate_FreshUserRunsFullSequence(t *testing.T) {
	store := newFakeStore()
	pip := &fakePip{}
	gate := NewGate(store, NewInstaller(pip))

	result, err := gate.Ensure(context.Background(), "alice", nil)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, Names(), pip.calls)
	assert.True(t, store.IsProvisioned("alice"))
}

func TestGate_ProvisionedUserSkipsSetup(t *testing.T) {
	store := newFakeStore()
	store.provisioned["alice"] = true
	pip := &fakePip{}
	gate := NewGate(store, NewInstaller(pip))

	result, err := gate.Ensure(context.Background(), "alice", nil)

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, pip.calls, "no installation operation may run behind the gate")
}

func TestGate_ClearedMarkerRerunsSetup(t *testing.T) {
	store := newFakeStore()
	pip := &fakePip{}
	gate := NewGate(store, NewInstaller(pip))

	_, err := gate.Ensure(context.Background(), "alice", nil)
	require.NoError(t, err)
	require.NoError(t, store.Clear("alice"))

	_, err = gate.Ensure(context.Background(), "alice", nil)
	require.NoError(t, err)

	assert.Len(t, pip.calls, 2*len(Names()), "full sequence must re-run after reset")
}

func TestGate_FinalFailureWithholdsMarker(t *testing.T) {
	store := newFakeStore()
	pip := &fakePip{failOn: map[string]error{
		Sentinel().Name: errors.New("native build failed"),
	}}
	gate := NewGate(store, NewInstaller(pip))

	result, err := gate.Ensure(context.Background(), "alice", nil)

	require.NoError(t, err, "a failed pass is recoverable, not an error")
	require.NotNil(t, result)
	assert.False(t, result.Succeeded())
	assert.False(t, store.IsProvisioned("alice"), "marker must be withheld so the next run retries")
}

func TestGate_MarkerWriteFailureIsAnError(t *testing.T) {
	store := newFakeStore()
	store.markErr = errors.New("disk full")
	gate := NewGate(store, NewInstaller(&fakePip{}))

	result, err := gate.Ensure(context.Background(), "alice", nil)

	require.Error(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Succeeded())
}

func TestGate_SkipEmitsSkippedEvent(t *testing.T) {
	store := newFakeStore()
	store.provisioned["alice"] = true
	gate := NewGate(store, NewInstaller(&fakePip{}))
	tracker := NewProgressTracker()

	_, err := gate.Ensure(context.Background(), "alice", tracker.Callback())

	require.NoError(t, err)
	require.Len(t, tracker.Events(), 1)
	assert.Equal(t, StageSkipped, tracker.Events()[0].Stage)
}
