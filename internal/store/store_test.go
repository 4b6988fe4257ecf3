package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := GenerateCode()
		require.Len(t, code, CodeLength)
		for _, c := range code {
			assert.Contains(t, codeChars, string(c))
		}
		seen[code] = true
	}
	// 32^4 codes; 200 draws colliding down to a handful would mean a
	// broken generator.
	assert.Greater(t, len(seen), 190)
}

func TestCodeAlphabetAvoidsAmbiguousCharacters(t *testing.T) {
	for _, c := range "01IO" {
		assert.NotContains(t, codeChars, string(c))
	}
	assert.Equal(t, strings.ToUpper(codeChars), codeChars)
}

func TestCreateRetriesOnCollision(t *testing.T) {
	codes := []string{"AAAA", "AAAA", "AAAA", "BBBB"}
	i := 0
	s := NewRoomStore(func() string {
		code := codes[i]
		i++
		return code
	})

	first := s.Create()
	second := s.Create()

	assert.Equal(t, "AAAA", first.Code())
	assert.Equal(t, "BBBB", second.Code())
	assert.Equal(t, 2, s.Count())
}

func TestGetAndDelete(t *testing.T) {
	s := NewRoomStore(func() string { return "GAME" })
	room := s.Create()

	got, ok := s.Get(room.Code())
	require.True(t, ok)
	assert.Same(t, room, got)

	_, ok = s.Get("ZZZZ")
	assert.False(t, ok)

	s.Delete(room.Code())
	_, ok = s.Get(room.Code())
	assert.False(t, ok)
	assert.Equal(t, 0, s.Count())
}
