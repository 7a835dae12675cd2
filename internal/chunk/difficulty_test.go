package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficultyAcceptsKnownNamesCaseInsensitively(t *testing.T) {
	cases := map[string]Difficulty{
		"Easy": Easy, "normal": Normal, "HARD": Hard, "Wild": Wild, "zen": Zen, "": Normal,
	}
	for input, want := range cases {
		got, err := ParseDifficulty(input)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseDifficultyRejectsUnknownName(t *testing.T) {
	_, err := ParseDifficulty("extreme")
	assert.Error(t, err)
}
