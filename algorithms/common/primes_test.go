package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	// 1 is deliberately accepted as a dilation candidate
	assert.True(t, IsPrime(1))
	assert.True(t, IsPrime(2))
	assert.True(t, IsPrime(3))
	assert.True(t, IsPrime(13))
	assert.True(t, IsPrime(23))

	assert.False(t, IsPrime(0))
	assert.False(t, IsPrime(4))
	assert.False(t, IsPrime(9))
	assert.False(t, IsPrime(15))
	assert.False(t, IsPrime(25))
}

func TestPrimesUpTo(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 5, 7}, PrimesUpTo(10))
	assert.Equal(t, []int{1}, PrimesUpTo(1))
	assert.Empty(t, PrimesUpTo(0))
}
