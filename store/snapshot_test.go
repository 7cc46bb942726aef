package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotCommitAndGet(t *testing.T) {
	var s Snapshot[[]string]

	_, ok := s.Get()
	assert.False(t, ok, "nothing applied yet")

	tag := s.Begin()
	assert.True(t, s.Commit(tag, []string{"a"}))

	value, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, value)
}

func TestSnapshotDiscardsStaleResponse(t *testing.T) {
	var s Snapshot[int]

	older := s.Begin()
	newer := s.Begin()

	// The newer fetch resolves first; the superseded one arrives late and
	// must not overwrite it.
	assert.True(t, s.Commit(newer, 2))
	assert.False(t, s.Commit(older, 1))

	value, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestSnapshotOutOfOrderBeforeNewestResolves(t *testing.T) {
	var s Snapshot[int]

	older := s.Begin()
	newer := s.Begin()

	// Once a newer fetch has been issued, an older response is stale even
	// if the newer one has not resolved yet.
	assert.False(t, s.Commit(older, 1))
	assert.True(t, s.Commit(newer, 2))

	value, _ := s.Get()
	assert.Equal(t, 2, value)
}
