package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 5, 12, 30, 45, 123456789, time.UTC)

	decoded, err := DecodeCursor(EncodeCursor(created))
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.True(t, created.Equal(*decoded))
}

func TestDecodeCursorEmpty(t *testing.T) {
	decoded, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeCursorInvalid(t *testing.T) {
	_, err := DecodeCursor("yesterday")
	assert.Error(t, err)
}
