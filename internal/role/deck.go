package role

import (
	"fmt"
	"math/rand"
)

// CenterSize is the number of face-down cards set aside every game.
const CenterSize = 3

// baseDeck is the default composition. It is truncated or padded with
// villagers so the deck always holds playerCount+CenterSize cards.
var baseDeck = []Role{
	Werewolf, Werewolf,
	Minion,
	Seer,
	Robber,
	Troublemaker,
	Drunk,
	Insomniac,
}

// Build returns the role deck for the given player count.
func Build(playerCount int) ([]Role, error) {
	return compose(baseDeck, playerCount)
}

func compose(base []Role, playerCount int) ([]Role, error) {
	need := playerCount + CenterSize
	deck := make([]Role, 0, need)
	deck = append(deck, base[:min(len(base), need)]...)
	for len(deck) < need {
		deck = append(deck, Villager)
	}
	if len(deck) != need {
		return nil, fmt.Errorf("role deck size mismatch: have %d cards, need %d", len(deck), need)
	}
	return deck, nil
}

// Shuffle returns a uniformly random permutation of the deck. The input
// slice is left untouched.
func Shuffle(deck []Role) []Role {
	out := make([]Role, len(deck))
	copy(out, deck)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Deal splits a shuffled deck into one card per player plus the center.
func Deal(deck []Role, playerCount int) (dealt []Role, center []Role) {
	return deck[:playerCount], deck[playerCount:]
}
