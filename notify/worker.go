package notify

import (
	"log"

	"campushub/globals"
	"campushub/mq"
	"campushub/rdx"
)

// StartNoticeWorker relays refresh notices from the Redis channel to every
// connected dashboard. Run it once from main.
func StartNoticeWorker(hub *Hub) {
	sub := rdx.Conn.Subscribe(globals.Ctx, mq.NoticeChannel)
	ch := sub.Channel()

	log.Println("[NoticeWorker] Listening for notices...")

	for msg := range ch {
		hub.Broadcast([]byte(msg.Payload))
	}
}
