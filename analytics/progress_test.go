package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 50, ProgressPercent(1, 2))
	assert.Equal(t, 100, ProgressPercent(2, 2))
	assert.Equal(t, 0, ProgressPercent(0, 3))
	assert.Equal(t, 33, ProgressPercent(1, 3))
	assert.Equal(t, 67, ProgressPercent(2, 3))
	assert.Equal(t, 13, ProgressPercent(1, 8))
}

func TestProgressPercentZeroTotal(t *testing.T) {
	assert.Equal(t, 0, ProgressPercent(0, 0))
	assert.Equal(t, 0, ProgressPercent(5, 0))
	assert.Equal(t, 0, ProgressPercent(3, -1))
}
