package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

func TestNewReferenceIndex_GroupsByBaseName(t *testing.T) {
	index, err := NewReferenceIndex([]m.Path{
		"/ref/a/notes.txt",
		"/ref/b/notes.txt",
		"/ref/readme.md",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, index.Names())
	assert.Equal(t, []m.Path{"/ref/a/notes.txt", "/ref/b/notes.txt"}, index.Candidates("notes.txt"))
	assert.Equal(t, []m.Path{"/ref/readme.md"}, index.Candidates("readme.md"))
	assert.Nil(t, index.Candidates("absent.txt"))
}

func TestNewReferenceIndex_PreservesInsertionOrder(t *testing.T) {
	paths := []m.Path{"/z/f", "/m/f", "/a/f"}

	index, err := NewReferenceIndex(paths)
	require.NoError(t, err)

	assert.Equal(t, paths, index.Candidates("f"))
}

func TestNewReferenceIndex_FailsLoudlyWithoutBaseName(t *testing.T) {
	for _, bad := range []m.Path{"", ".", "/"} {
		_, err := NewReferenceIndex([]m.Path{bad})
		require.ErrorIs(t, err, ErrNoBaseName, "path %q", bad)
	}
}
