package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	assert.Equal(t, FromString("1"), FromString("1"), "hashing must be stable")
	assert.NotEqual(t, FromString("1"), FromString("2"))
	assert.NotEqual(t, FromString(""), FromString(" "))
}

func TestDefault(t *testing.T) {
	now := time.Unix(1700000000, 999)
	assert.Equal(t, "1700000000", Default(now))
}

func TestNewRand_Reproducible(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}
}

func TestNewRand_SeedSensitive(t *testing.T) {
	assert.NotEqual(t, NewRand(1).Uint64(), NewRand(2).Uint64())
}
