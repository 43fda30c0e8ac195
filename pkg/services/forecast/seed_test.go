package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	t.Run("success - sums character codes plus offset", func(t *testing.T) {
		// 'A' = 65, 'B' = 66
		assert.Equal(t, 131, Seed("AB", 0))
		assert.Equal(t, 141, Seed("AB", 10))
	})

	t.Run("success - empty string returns offset", func(t *testing.T) {
		assert.Equal(t, 0, Seed("", 0))
		assert.Equal(t, 485, Seed("", 485))
	})

	t.Run("success - never negative", func(t *testing.T) {
		assert.Equal(t, 0, Seed("", -42))
	})

	t.Run("success - deterministic", func(t *testing.T) {
		assert.Equal(t, Seed("Roof leak", 388), Seed("Roof leak", 388))
	})
}
