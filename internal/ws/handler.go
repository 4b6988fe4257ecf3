package ws

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/werewolves-night/onenight/internal/game"
	"github.com/werewolves-night/onenight/internal/store"
)

const maxMessageSize = 4096

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades connections and routes parsed messages to rooms.
type Handler struct {
	store *store.RoomStore
}

// NewHandler creates a websocket handler backed by the given room store.
func NewHandler(st *store.RoomStore) *Handler {
	return &Handler{store: st}
}

// session tracks which room and player a connection is bound to after a
// successful join.
type session struct {
	client   *Client
	room     *game.Room
	playerID string
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := newClient(conn)
	go client.writePump()
	h.readLoop(client)
}

// readLoop delivers one parsed message at a time, in arrival order, to
// the session's room.
func (h *Handler) readLoop(client *Client) {
	sess := &session{client: client}
	defer func() {
		h.leave(sess)
		client.shutdown()
	}()

	limiter := rate.NewLimiter(rate.Limit(20), 40)
	client.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return
		}
		if !limiter.Allow() {
			client.Send(errorEvent{Type: "error", Message: "Too many messages"})
			continue
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			client.Send(errorEvent{Type: "error", Message: "Invalid JSON"})
			continue
		}

		h.dispatch(sess, msg)
	}
}

func (h *Handler) dispatch(sess *session, msg clientMessage) {
	switch msg.Type {
	case msgCreateRoom:
		room := h.store.Create()
		log.Info().Str("room", room.Code()).Msg("room created")
		sess.client.Send(roomCreated{Type: "room_created", RoomCode: room.Code()})

	case msgJoinRoom:
		if sess.room != nil {
			sess.client.Send(errorEvent{Type: "error", Message: "Already in a room"})
			return
		}
		code := strings.ToUpper(strings.TrimSpace(msg.RoomCode))
		room, ok := h.store.Get(code)
		if !ok {
			sess.client.Send(errorEvent{Type: "error", Message: "Room not found"})
			return
		}
		playerID, err := room.Join(sess.client, msg.Name)
		if err != nil {
			sess.client.Send(errorEvent{Type: "error", Message: upperFirst(err.Error())})
			return
		}
		sess.room = room
		sess.playerID = playerID

	case msgSetReady:
		room, ok := h.requireRoom(sess)
		if !ok {
			return
		}
		if err := room.SetReady(sess.playerID, msg.Ready); err != nil {
			sess.client.Send(errorEvent{Type: "error", Message: upperFirst(err.Error())})
		}

	case msgStartGame:
		room, ok := h.requireRoom(sess)
		if !ok {
			return
		}
		if err := room.StartGame(sess.playerID); err != nil {
			sess.client.Send(errorEvent{Type: "error", Message: upperFirst(err.Error())})
		}

	case msgSubmitAction:
		room, ok := h.requireRoom(sess)
		if !ok {
			return
		}
		if err := room.SubmitAction(sess.playerID, msg.ActionID, msg.Action); err != nil {
			sess.client.Send(errorEvent{Type: "error", Message: upperFirst(err.Error())})
		}

	default:
		sess.client.Send(errorEvent{Type: "error", Message: "Unsupported action"})
	}
}

func (h *Handler) requireRoom(sess *session) (*game.Room, bool) {
	if sess.room == nil {
		sess.client.Send(errorEvent{Type: "error", Message: "Not in a room"})
		return nil, false
	}
	return sess.room, true
}

// leave detaches the session's player from its room and reaps the room
// once the last player is gone.
func (h *Handler) leave(sess *session) {
	if sess.room == nil {
		return
	}
	if empty := sess.room.Disconnect(sess.playerID); empty {
		h.store.Delete(sess.room.Code())
		log.Info().Str("room", sess.room.Code()).Msg("empty room deleted")
	}
	sess.room = nil
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
