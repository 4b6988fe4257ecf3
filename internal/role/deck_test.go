package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSize(t *testing.T) {
	for players := 3; players <= 10; players++ {
		deck, err := Build(players)
		require.NoError(t, err)
		assert.Len(t, deck, players+CenterSize, "player count %d", players)
	}
}

func TestBuildComposition(t *testing.T) {
	deck, err := Build(3)
	require.NoError(t, err)
	assert.Equal(t, []Role{Werewolf, Werewolf, Minion, Seer, Robber, Troublemaker}, deck)

	deck, err = Build(8)
	require.NoError(t, err)
	require.Len(t, deck, 11)
	assert.Equal(t, baseDeck, deck[:len(baseDeck)])
	assert.Equal(t, []Role{Villager, Villager, Villager}, deck[len(baseDeck):])
}

func TestBuildNeverRegeneratesVariableDecks(t *testing.T) {
	first, err := Build(5)
	require.NoError(t, err)
	second, err := Build(5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestShuffleIsPermutation(t *testing.T) {
	deck, err := Build(7)
	require.NoError(t, err)

	shuffled := Shuffle(deck)
	assert.ElementsMatch(t, deck, shuffled)
}

func TestShuffleLeavesInputUntouched(t *testing.T) {
	deck, err := Build(5)
	require.NoError(t, err)
	before := make([]Role, len(deck))
	copy(before, deck)

	Shuffle(deck)
	assert.Equal(t, before, deck)
}

func TestShuffleProducesDifferentOrderings(t *testing.T) {
	deck, err := Build(8)
	require.NoError(t, err)

	moved := false
	for range 50 {
		shuffled := Shuffle(deck)
		for i := range deck {
			if shuffled[i] != deck[i] {
				moved = true
			}
		}
		if moved {
			break
		}
	}
	assert.True(t, moved, "50 shuffles of an 11 card deck never changed the order")
}

func TestDealSplit(t *testing.T) {
	deck, err := Build(5)
	require.NoError(t, err)

	dealt, center := Deal(deck, 5)
	assert.Len(t, dealt, 5)
	assert.Len(t, center, CenterSize)

	combined := append(append([]Role{}, dealt...), center...)
	assert.ElementsMatch(t, deck, combined)
}

func TestComposeSizeCheck(t *testing.T) {
	deck, err := compose(baseDeck, 4)
	require.NoError(t, err)
	assert.Len(t, deck, 7)
}
