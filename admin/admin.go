package admin

import (
	"context"
	"log"
	"net/http"

	"campushub/db"
	"campushub/models"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type eventOverview struct {
	Event         models.Event `json:"event"`
	Registrations int64        `json:"registrations"`
}

// GetEventsOverview lists every event with its registration count. The
// route is admin-only.
func GetEventsOverview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cursor, err := db.EventsCollection.Find(context.TODO(), bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	var events []models.Event
	if err := cursor.All(context.TODO(), &events); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	overview := make([]eventOverview, 0, len(events))
	for _, event := range events {
		count, err := db.RegistrationsCollection.CountDocuments(context.TODO(), bson.M{"eventid": event.EventID})
		if err != nil {
			log.Printf("Failed to count registrations for event %s: %v", event.EventID, err)
		}
		overview = append(overview, eventOverview{Event: event, Registrations: count})
	}

	utils.RespondWithJSON(w, http.StatusOK, overview)
}
