package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyValid(t *testing.T) {
	for _, d := range Difficulties {
		assert.True(t, d.Valid(), d)
	}
	assert.False(t, Difficulty("").Valid())
	assert.False(t, Difficulty("Easy").Valid())
	assert.False(t, Difficulty("extreme").Valid())
}
