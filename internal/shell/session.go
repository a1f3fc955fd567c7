package shell

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/restohub/internal/router"
	"github.com/ziadkadry99/restohub/internal/view"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type     string `json:"type"` // "navigate", "favorite" or "menu"
	Fragment string `json:"fragment,omitempty"`
	ID       string `json:"id,omitempty"`
	Action   string `json:"action,omitempty"` // "toggle" or "close"
}

type renderReply struct {
	Type     string `json:"type"` // "render"
	Seq      uint64 `json:"seq"`
	Fragment string `json:"fragment"`
	HTML     string `json:"html"`
}

type favoriteReply struct {
	Type     string `json:"type"` // "favorite"
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
	Label    string `json:"label"`
}

type menuReply struct {
	Type string `json:"type"` // "menu"
	Open bool   `json:"open"`
}

type errorReply struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

// session is one connected browser tab.
type session struct {
	id   string
	site Site
	conn *websocket.Conn
	nav  *router.Navigator
	menu Menu

	ctx     context.Context
	writeMu sync.Mutex
	wg      sync.WaitGroup

	// lastToggle is closed once the most recently received favorite toggle
	// has finished. Only the read loop touches it.
	lastToggle chan struct{}
}

func (s *Shell) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("shell: websocket upgrade: %v", err)
		return
	}

	// The session outlives request-scoped deadlines but ends with the socket.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	sess := &session{
		id:   uuid.New().String(),
		site: s.site,
		conn: conn,
		ctx:  ctx,

		lastToggle: closedChan(),
	}
	sess.nav = router.NewNavigator(s.site, sess.deliver)

	log.Printf("shell: session %s opened", sess.id)
	defer func() {
		cancel()
		sess.wg.Wait()
		conn.Close()
		log.Printf("shell: session %s closed", sess.id)
	}()

	sess.readLoop()
}

func (sess *session) readLoop() {
	for {
		_, msg, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("shell: session %s read: %v", sess.id, err)
			}
			return
		}

		var m clientMessage
		if err := json.Unmarshal(msg, &m); err != nil {
			sess.sendError("invalid message format")
			continue
		}

		switch m.Type {
		case "navigate":
			sess.goNavigate(m.Fragment)
		case "favorite":
			if m.ID == "" {
				sess.sendError("id is required")
				continue
			}
			sess.goToggleFavorite(m.ID)
		case "menu":
			sess.handleMenu(m.Action)
		default:
			sess.sendError("unknown message type: " + m.Type)
		}
	}
}

// goNavigate stamps the navigation in arrival order and runs it without
// blocking the read loop. It first waits for favorite toggles received
// before it, so a favorites page sees them. The navigator drops renders that
// were overtaken by a later navigation.
func (sess *session) goNavigate(fragment string) {
	run := sess.nav.Begin(fragment)
	toggled := sess.lastToggle
	sess.wg.Add(1)
	go func() {
		defer sess.wg.Done()
		if !sess.wait(toggled) {
			return
		}
		res, err := run(sess.ctx)
		if err != nil {
			log.Printf("shell: session %s deliver %q: %v", sess.id, fragment, err)
			return
		}
		if res.Stale {
			log.Printf("shell: session %s dropped stale render of %q (seq %d)", sess.id, fragment, res.Seq)
		}
	}()
}

// goToggleFavorite runs toggles one after another in arrival order.
func (sess *session) goToggleFavorite(id string) {
	prev := sess.lastToggle
	done := make(chan struct{})
	sess.lastToggle = done
	sess.wg.Add(1)
	go func() {
		defer sess.wg.Done()
		defer close(done)
		if !sess.wait(prev) {
			return
		}
		favorite, err := sess.site.ToggleFavorite(sess.ctx, id)
		if err != nil {
			log.Printf("shell: session %s toggle favorite %s: %v", sess.id, id, err)
			sess.sendError("Gagal memperbarui favorit")
			return
		}
		sess.send(favoriteReply{
			Type:     "favorite",
			ID:       id,
			Favorite: favorite,
			Label:    view.FavoriteLabel(favorite),
		})
	}()
}

// wait blocks until ch is closed or the session ends.
func (sess *session) wait(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-sess.ctx.Done():
		return false
	}
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (sess *session) handleMenu(action string) {
	var open bool
	switch action {
	case "toggle":
		open = sess.menu.Toggle()
	case "close":
		open = sess.menu.Close()
	default:
		sess.sendError("unknown menu action: " + action)
		return
	}
	sess.send(menuReply{Type: "menu", Open: open})
}

// deliver is the navigator sink.
func (sess *session) deliver(res router.Result) error {
	return sess.write(renderReply{
		Type:     "render",
		Seq:      res.Seq,
		Fragment: res.Fragment,
		HTML:     string(res.HTML),
	})
}

func (sess *session) send(v any) {
	if err := sess.write(v); err != nil {
		log.Printf("shell: session %s write: %v", sess.id, err)
	}
}

func (sess *session) sendError(message string) {
	sess.send(errorReply{Type: "error", Message: message})
}

// write serializes writes; gorilla connections allow one concurrent writer.
func (sess *session) write(v any) error {
	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return sess.conn.WriteJSON(v)
}
