package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalBothFormats(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15"`), &d))
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T10:30:00Z"`), &d))
	assert.Equal(t, 10, d.Time.Hour())
}

func TestDateUnmarshalEmpty(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.Time.IsZero())
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/01/2024"`), &d))
}

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC))
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Time.Equal(back.Time))
}
