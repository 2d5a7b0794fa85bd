package provision

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePip records install calls and fails the packages it is told to.
type fakePip struct {
	calls  []string
	failOn map[string]error
}

func (f *fakePip) Install(_ context.Context, name string) (string, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.failOn[name]; ok {
		return "", err
	}
	return "Successfully installed " + name, nil
}

func TestInstaller_RunsManifestInOrder(t *testing.T) {
	pip := &fakePip{}
	installer := NewInstaller(pip)

	result := installer.Run(context.Background(), nil)

	assert.Equal(t, Names(), pip.calls)
	require.Len(t, result.Steps, len(Names()))
	assert.True(t, result.Succeeded())
	assert.Empty(t, result.Failed())
}

func TestInstaller_FinalFailureFlipsAggregate(t *testing.T) {
	pip := &fakePip{failOn: map[string]error{
		Sentinel().Name: errors.New("GDAL headers not found"),
	}}
	installer := NewInstaller(pip)

	result := installer.Run(context.Background(), nil)

	assert.False(t, result.Succeeded())
	require.Len(t, result.Failed(), 1)
	assert.Equal(t, Sentinel().Name, result.Failed()[0].Package.Name)
	// Every package was still attempted
	assert.Equal(t, Names(), pip.calls)
}

func TestInstaller_MidFailureDoesNotFlipAggregate(t *testing.T) {
	pip := &fakePip{failOn: map[string]error{
		"matplotlib": errors.New("no wheel for this platform"),
	}}
	installer := NewInstaller(pip)

	result := installer.Run(context.Background(), nil)

	// The aggregate reads only the final, most failure-prone entry
	assert.True(t, result.Succeeded())
	assert.Len(t, result.Failed(), 1)
}

func TestInstaller_ProgressEvents(t *testing.T) {
	pip := &fakePip{failOn: map[string]error{
		Sentinel().Name: errors.New("boom"),
	}}
	installer := NewInstaller(pip)
	tracker := NewProgressTracker()

	installer.Run(context.Background(), tracker.Callback())

	assert.True(t, tracker.HasErrors())

	var installing int
	for _, e := range tracker.Events() {
		if e.Stage == StageInstalling {
			installing++
		}
	}
	assert.Equal(t, len(Names()), installing)
}

func TestResult_EmptyNeverSucceeds(t *testing.T) {
	result := &Result{}
	assert.False(t, result.Succeeded())
}

func TestManifest_Shape(t *testing.T) {
	packages := Manifest()

	require.NotEmpty(t, packages)
	assert.Equal(t, "numpy", packages[0].Name, "numpy must install first")
	assert.Equal(t, "rasterio", Sentinel().Name, "rasterio is the failure-prone sentinel")

	// Manifest returns a copy
	packages[0].Name = "mutated"
	assert.Equal(t, "numpy", Manifest()[0].Name)
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"single", "single"},
		{"first\nlast", "last"},
		{"first\nlast\n\n  \n", "last"},
		{"", ""},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			assert.Equal(t, tt.expected, lastLine(tt.output))
		})
	}
}
