package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werewolves-night/onenight/internal/role"
)

// fakeConn records every event a player would receive.
type fakeConn struct {
	events []any
}

func (c *fakeConn) Send(event any) {
	c.events = append(c.events, event)
}

func eventsOf[T any](c *fakeConn) []T {
	var out []T
	for _, e := range c.events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func lastOf[T any](t *testing.T, c *fakeConn) T {
	t.Helper()
	all := eventsOf[T](c)
	require.NotEmpty(t, all, "no %T received", *new(T))
	return all[len(all)-1]
}

type testRoom struct {
	room  *Room
	conns map[string]*fakeConn
	ids   map[string]string
}

func newTestRoom(t *testing.T, names ...string) *testRoom {
	t.Helper()
	tr := &testRoom{
		room:  NewRoom("GAME"),
		conns: make(map[string]*fakeConn),
		ids:   make(map[string]string),
	}
	for _, name := range names {
		conn := &fakeConn{}
		id, err := tr.room.Join(conn, name)
		require.NoError(t, err)
		tr.conns[name] = conn
		tr.ids[name] = id
	}
	return tr
}

// start readies everyone and starts the game with a fixed deck order, so
// tests control exactly which role each player is dealt.
func (tr *testRoom) start(t *testing.T, host string, deck []role.Role) {
	t.Helper()
	tr.room.shuffle = func(built []role.Role) []role.Role {
		require.ElementsMatch(t, built, deck, "fixed deck must be a permutation of the built deck")
		return deck
	}
	for name := range tr.conns {
		require.NoError(t, tr.room.SetReady(tr.ids[name], true))
	}
	require.NoError(t, tr.room.StartGame(tr.ids[host]))
}

func (tr *testRoom) pendingID(t *testing.T) string {
	t.Helper()
	require.NotNil(t, tr.room.pending, "no pending action")
	return tr.room.pending.id
}

func (tr *testRoom) submit(name string, action Action) error {
	return tr.room.SubmitAction(tr.ids[name], tr.room.pending.id, action)
}

func roleMultiset(r *Room) map[role.Role]int {
	m := make(map[role.Role]int)
	for _, p := range r.players {
		m[p.currentRole]++
	}
	for _, c := range r.center {
		m[c]++
	}
	return m
}

func centerPtr(i int) *int { return &i }

func TestJoinBroadcastsLobby(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob")

	joined := lastOf[JoinedRoom](t, tr.conns["alice"])
	assert.Equal(t, "GAME", joined.RoomCode)
	assert.True(t, joined.IsHost)

	joined = lastOf[JoinedRoom](t, tr.conns["bob"])
	assert.False(t, joined.IsHost)

	lobby := lastOf[LobbyState](t, tr.conns["alice"])
	assert.Equal(t, PhaseLobby, lobby.Phase)
	assert.False(t, lobby.Started)
	require.Len(t, lobby.Players, 2)
	assert.Equal(t, "alice", lobby.Players[0].Name)
	assert.True(t, lobby.Players[0].IsHost)
	assert.Equal(t, "bob", lobby.Players[1].Name)
}

func TestJoinRejectsBadNames(t *testing.T) {
	tr := newTestRoom(t, "alice")

	_, err := tr.room.Join(&fakeConn{}, "   ")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = tr.room.Join(&fakeConn{}, "ALICE")
	assert.ErrorIs(t, err, ErrNameTaken)

	_, err = tr.room.Join(&fakeConn{}, "  alice  ")
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestJoinTruncatesLongNames(t *testing.T) {
	tr := newTestRoom(t, "alice")

	_, err := tr.room.Join(&fakeConn{}, "abcdefghijklmnopqrstuvwx")
	require.NoError(t, err)
	lobby := lastOf[LobbyState](t, tr.conns["alice"])
	assert.Equal(t, "abcdefghijklmnop", lobby.Players[1].Name)
}

func TestJoinRejectedAfterStart(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob", "carol")
	tr.start(t, "alice", []role.Role{
		role.Werewolf, role.Werewolf, role.Seer,
		role.Minion, role.Robber, role.Troublemaker,
	})

	_, err := tr.room.Join(&fakeConn{}, "dave")
	assert.ErrorIs(t, err, ErrGameStarted)
}

func TestSetReadyIsNoopAfterStart(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob", "carol")
	tr.start(t, "alice", []role.Role{
		role.Werewolf, role.Werewolf, role.Seer,
		role.Minion, role.Robber, role.Troublemaker,
	})

	require.NoError(t, tr.room.SetReady(tr.ids["alice"], false))
	lobby := lastOf[LobbyState](t, tr.conns["alice"])
	assert.True(t, lobby.Players[0].Ready, "ready flag must not change once started")
}

func TestStartGameGuards(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob")

	assert.ErrorIs(t, tr.room.StartGame(tr.ids["bob"]), ErrNotHost)
	assert.ErrorIs(t, tr.room.StartGame(tr.ids["alice"]), ErrNotEnoughPlayers)

	_, err := tr.room.Join(&fakeConn{}, "carol")
	require.NoError(t, err)
	assert.ErrorIs(t, tr.room.StartGame(tr.ids["alice"]), ErrNotAllReady)

	assert.ErrorIs(t, tr.room.StartGame("unknown"), ErrNotJoined)
}

func TestStartGameDealsAndAdvances(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob", "carol")
	tr.start(t, "alice", []role.Role{
		role.Werewolf, role.Werewolf, role.Seer,
		role.Minion, role.Robber, role.Troublemaker,
	})

	r := tr.room
	assert.True(t, r.started)
	assert.Len(t, r.center, role.CenterSize)
	assert.Equal(t, role.Werewolf, r.players[0].originalRole)
	assert.Equal(t, role.Seer, r.players[2].originalRole)

	started := lastOf[GameStarted](t, tr.conns["bob"])
	assert.Equal(t, PhaseSetup, started.Phase)

	private := eventsOf[PrivateState](tr.conns["carol"])
	require.NotEmpty(t, private)
	assert.Equal(t, role.Seer, private[0].OriginalRole)
	assert.Equal(t, role.Seer, private[0].CurrentRole)

	// Two werewolves dealt, so the first night phase summons both.
	assert.Equal(t, Phase("NIGHT_WEREWOLF"), r.phase)
	prompt := lastOf[PromptAction](t, tr.conns["alice"])
	assert.Equal(t, SchemaConfirmOnly, prompt.Prompt.Schema.Type)
	wait := lastOf[PhaseWait](t, tr.conns["carol"])
	assert.Equal(t, Phase("NIGHT_WEREWOLF"), wait.Phase)
}

func TestStartGameTwiceRejected(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob", "carol")
	tr.start(t, "alice", []role.Role{
		role.Werewolf, role.Werewolf, role.Seer,
		role.Minion, role.Robber, role.Troublemaker,
	})

	assert.ErrorIs(t, tr.room.StartGame(tr.ids["alice"]), ErrGameStarted)
}

func TestHostTransferOnDisconnect(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob", "carol")

	empty := tr.room.Disconnect(tr.ids["alice"])
	assert.False(t, empty)

	lobby := lastOf[LobbyState](t, tr.conns["bob"])
	require.Len(t, lobby.Players, 2)
	assert.Equal(t, "bob", lobby.Players[0].Name)
	assert.True(t, lobby.Players[0].IsHost)
	assert.False(t, lobby.Players[1].IsHost)
}

func TestDisconnectLastPlayerReportsEmpty(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob")

	assert.False(t, tr.room.Disconnect(tr.ids["alice"]))
	assert.True(t, tr.room.Disconnect(tr.ids["bob"]))
	assert.True(t, tr.room.Disconnect("unknown"))
}

func TestDisconnectDuringPendingActionCompletesPhase(t *testing.T) {
	tr := newTestRoom(t, "alice", "bob", "carol")
	tr.start(t, "alice", []role.Role{
		role.Werewolf, role.Werewolf, role.Seer,
		role.Minion, role.Robber, role.Troublemaker,
	})

	require.Equal(t, Phase("NIGHT_WEREWOLF"), tr.room.phase)
	require.NoError(t, tr.submit("alice", Action{Type: "confirm_only"}))
	require.Equal(t, Phase("NIGHT_WEREWOLF"), tr.room.phase, "one werewolf missing, phase must hold")

	tr.room.Disconnect(tr.ids["bob"])
	assert.Equal(t, Phase("NIGHT_SEER"), tr.room.phase, "leaving actor must not hang the phase")
	prompt := lastOf[PromptAction](t, tr.conns["carol"])
	assert.Equal(t, SchemaSeer, prompt.Prompt.Schema.Type)
}
