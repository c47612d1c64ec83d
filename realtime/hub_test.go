package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastToRoom(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	viewer := NewClient(hub, nil, TournamentRoom)
	other := NewClient(hub, nil, "elsewhere")
	hub.Register <- viewer
	hub.Register <- other

	require.Eventually(t, func() bool {
		return hub.ClientCount(TournamentRoom) == 1 && hub.ClientCount("elsewhere") == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastToRoom(TournamentRoom, Message{Type: MessageRoundGenerated, Payload: map[string]int{"round_number": 2}})

	select {
	case raw := <-viewer.Send:
		var got struct {
			Type    string         `json:"type"`
			Payload map[string]int `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, MessageRoundGenerated, got.Type)
		assert.Equal(t, 2, got.Payload["round_number"])
	case <-time.After(time.Second):
		t.Fatal("viewer did not receive the broadcast")
	}

	assert.Empty(t, other.Send)
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil, TournamentRoom)
	hub.Register <- client
	hub.Unregister <- client

	require.Eventually(t, func() bool {
		return hub.ClientCount(TournamentRoom) == 0
	}, time.Second, 10*time.Millisecond)

	client.Mu.Lock()
	closed := client.IsClosed
	client.Mu.Unlock()
	assert.True(t, closed)

	_, ok := <-client.Send
	assert.False(t, ok)

	hub.BroadcastToRoom(TournamentRoom, Message{Type: MessageStandingsReset})
}

func TestHub_FullBufferDropsMessage(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil, TournamentRoom)
	hub.Register <- client
	require.Eventually(t, func() bool {
		return hub.ClientCount(TournamentRoom) == 1
	}, time.Second, 10*time.Millisecond)

	for i := 0; i < sendBufferSize+5; i++ {
		hub.BroadcastToRoom(TournamentRoom, Message{Type: MessageResultsRecorded})
	}
	assert.Len(t, client.Send, sendBufferSize)
}
