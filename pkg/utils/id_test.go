package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDispatchID(t *testing.T) {
	first := NewDispatchID()
	second := NewDispatchID()

	assert.Len(t, first, 10)
	assert.NotEqual(t, first, second)
}
