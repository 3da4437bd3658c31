package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 20, ClampPageSize(0))
	assert.Equal(t, 1, ClampPageSize(-5))
	assert.Equal(t, 1, ClampPageSize(1))
	assert.Equal(t, 35, ClampPageSize(35))
	assert.Equal(t, 50, ClampPageSize(50))
	assert.Equal(t, 50, ClampPageSize(100))
}

func TestPtrString(t *testing.T) {
	assert.Nil(t, PtrString(""))

	s := PtrString("hello")
	assert.NotNil(t, s)
	assert.Equal(t, "hello", *s)
}
