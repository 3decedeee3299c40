package websocket

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krct/facultydesk_backend/middleware"
	"github.com/krct/facultydesk_backend/models"
)

func dialTestClient(t *testing.T, hub *Hub, userID primitive.ObjectID) *websocket.Conn {
	t.Helper()

	token, err := middleware.GenerateJWT(userID.Hex(), "priya.r@krct.ac.in", models.RoleFaculty)
	require.NoError(t, err)

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return HandleWebSocket(c, hub)
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// The connected event is written after registration, so reading it
	// guarantees the hub knows the client.
	var hello Event
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, "connected", hello.Type)
	return conn
}

func TestConcurrentPushesReachClient(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hub := NewHub()
	go hub.Run()

	userID := primitive.NewObjectID()
	conn := dialTestClient(t, hub, userID)

	const pushes = 40
	var wg sync.WaitGroup
	for i := 0; i < pushes; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				hub.Broadcast(Event{Type: EventCircular, Message: "new circular"})
			} else {
				assert.NoError(t, hub.SendToUser(userID, Event{Type: EventMessage, Message: "direct"}))
			}
		}(i)
	}
	wg.Wait()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < pushes; i++ {
		var event Event
		require.NoError(t, conn.ReadJSON(&event))
	}
}

func TestSendToUserNotConnected(t *testing.T) {
	hub := NewHub()
	err := hub.SendToUser(primitive.NewObjectID(), Event{Type: EventMessage, Message: "hello"})
	require.Error(t, err)
}
