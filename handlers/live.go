// handlers/live.go - Live reward feed over WebSocket
package handlers

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"herodle/models"
)

// Message is the frame shape pushed to live feed subscribers.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

var (
	liveClients = make(map[*websocket.Conn]bool)
	liveMu      sync.Mutex
)

// RewardsFeed keeps a subscriber connected until it hangs up. Clients only
// listen; inbound frames are drained and dropped.
func RewardsFeed(conn *websocket.Conn) {
	liveMu.Lock()
	liveClients[conn] = true
	count := len(liveClients)
	liveMu.Unlock()

	log.Printf("🌐 Live feed subscriber connected (%d total)", count)

	defer func() {
		liveMu.Lock()
		delete(liveClients, conn)
		liveMu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastReward pushes an award event to every live feed subscriber.
// Dead connections are dropped on write failure.
func BroadcastReward(reward *models.RewardResult) {
	liveMu.Lock()
	defer liveMu.Unlock()

	msg := Message{Type: "reward", Payload: reward}
	for conn := range liveClients {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("Live feed write failed, dropping subscriber: %v", err)
			conn.Close()
			delete(liveClients, conn)
		}
	}
}
