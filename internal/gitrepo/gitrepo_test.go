package gitrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteSpecShorthand(t *testing.T) {
	s, err := ParseRemoteSpec("unhappychoice/gittype")
	require.NoError(t, err)
	assert.Equal(t, "github.com", s.Host)
	assert.Equal(t, "unhappychoice", s.Owner)
	assert.Equal(t, "gittype", s.Name)
}

func TestParseRemoteSpecHTTPS(t *testing.T) {
	s, err := ParseRemoteSpec("https://github.com/unhappychoice/gittype.git")
	require.NoError(t, err)
	assert.Equal(t, "github.com", s.Host)
	assert.Equal(t, "unhappychoice", s.Owner)
	assert.Equal(t, "gittype", s.Name)
}

func TestParseRemoteSpecSSHShorthand(t *testing.T) {
	s, err := ParseRemoteSpec("git@github.com:unhappychoice/gittype.git")
	require.NoError(t, err)
	assert.Equal(t, "unhappychoice", s.Owner)
	assert.Equal(t, "gittype", s.Name)
}

func TestParseRemoteSpecRejectsGarbage(t *testing.T) {
	_, err := ParseRemoteSpec("not a url at all")
	assert.Error(t, err)
}

func TestParseRemoteSpecRejectsEmpty(t *testing.T) {
	_, err := ParseRemoteSpec("")
	assert.Error(t, err)
}
