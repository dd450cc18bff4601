package mq

import (
	"encoding/json"
	"log"

	"campushub/globals"
	"campushub/models"
	"campushub/rdx"
)

// NoticeChannel carries refresh notices from writers to the websocket hub.
const NoticeChannel = "notices"

// Notice is the frame published to Redis and relayed to dashboards.
type Notice struct {
	Event string       `json:"event"`
	Index models.Index `json:"index"`
}

// Emit publishes a refresh notice to Redis. Writers call it after a
// successful create/update/delete so dashboards can refetch.
func Emit(eventName string, content models.Index) {
	data, err := json.Marshal(Notice{Event: eventName, Index: content})
	if err != nil {
		log.Printf("[Emit] Failed to marshal notice: %v", err)
		return
	}

	if err := rdx.Conn.Publish(globals.Ctx, NoticeChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish notice: %v", err)
	}
}
