package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"campushub/db"
	"campushub/models"
	"campushub/mq"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var eventpicUploadPath = "./static/eventpic"

// CreateEvent accepts a multipart form with an `event` JSON part and an
// optional `banner` image.
func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	if r.FormValue("event") == "" {
		http.Error(w, "Missing event data", http.StatusBadRequest)
		return
	}

	var event models.Event
	if err := json.Unmarshal([]byte(r.FormValue("event")), &event); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}

	if err := ValidateEvent(&event); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	event.CreatorID = requestingUserID
	event.EventID = utils.GenerateID(14)
	event.CreatedAt = time.Now().UTC()
	event.UpdatedAt = event.CreatedAt

	// Check for EventID collisions
	exists := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": event.EventID}).Err()
	if exists == nil {
		http.Error(w, "Event ID collision, try again", http.StatusInternalServerError)
		return
	}

	bannerFile, header, err := r.FormFile("banner")
	if err != nil && err != http.ErrMissingFile {
		http.Error(w, "Error retrieving banner file", http.StatusBadRequest)
		return
	}
	if bannerFile != nil {
		defer bannerFile.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		fileName, err := utils.SaveImageWithThumb(bannerFile, eventpicUploadPath, event.EventID, 300)
		if err != nil {
			http.Error(w, "Error saving banner", http.StatusInternalServerError)
			return
		}
		event.BannerImage = "/static/eventpic/" + fileName
	}

	result, err := db.EventsCollection.InsertOne(context.TODO(), event)
	if err != nil || result.InsertedID == nil {
		log.Printf("Error inserting event into MongoDB: %v", err)
		http.Error(w, "Error saving event", http.StatusInternalServerError)
		return
	}

	go mq.Emit("event-created", models.Index{EntityType: "event", EntityId: event.EventID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, event)
}

func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page := 1
	limit := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	int64Limit := int64(limit)
	int64Skip := int64((page - 1) * limit)

	cursor, err := db.EventsCollection.Find(context.TODO(), bson.M{}, &options.FindOptions{
		Skip:  &int64Skip,
		Limit: &int64Limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	var events []models.Event
	if err = cursor.All(context.TODO(), &events); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": id}).Decode(&event)
	if err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, event)
}

// GetMyEvents lists events created by the caller (host dashboard).
func GetMyEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestingUserID := utils.GetUserIDFromRequest(r)

	cursor, err := db.EventsCollection.Find(context.TODO(), bson.M{"creatorid": requestingUserID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	var events []models.Event
	if err = cursor.All(context.TODO(), &events); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

// GetUpcomingEvents lists events starting today or later (student
// dashboard). Dates sort lexicographically in the stored format.
func GetUpcomingEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	today := time.Now().Format(time.DateOnly)

	cursor, err := db.EventsCollection.Find(context.TODO(), bson.M{"startDate": bson.M{"$gte": today}},
		options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}}))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	var events []models.Event
	if err = cursor.All(context.TODO(), &events); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	requestingUserID := utils.GetUserIDFromRequest(r)

	var existing models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID}).Decode(&existing)
	if err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	if existing.CreatorID != requestingUserID {
		http.Error(w, "Unauthorized to edit this event", http.StatusForbidden)
		return
	}

	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := ValidateEvent(&event); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	event.EventID = existing.EventID
	event.CreatorID = existing.CreatorID
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = time.Now().UTC()
	if event.BannerImage == "" {
		event.BannerImage = existing.BannerImage
	}

	_, err = db.EventsCollection.ReplaceOne(context.TODO(), bson.M{"eventid": eventID}, event)
	if err != nil {
		http.Error(w, "Error updating event", http.StatusInternalServerError)
		return
	}

	go mq.Emit("event-updated", models.Index{EntityType: "event", EntityId: eventID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, event)
}

// DeleteEvent removes an event. Hosts may delete their own events; admins
// may delete any. Guarded by RequireReauth in the routes.
func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	requestingUserID := utils.GetUserIDFromRequest(r)
	role := utils.GetRoleFromRequest(r)

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID}).Decode(&event)
	if err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	if event.CreatorID != requestingUserID && role != "admin" {
		log.Printf("User %s attempted to delete event %s they did not create", requestingUserID, eventID)
		http.Error(w, "Unauthorized to delete this event", http.StatusForbidden)
		return
	}

	_, err = db.EventsCollection.DeleteOne(context.TODO(), bson.M{"eventid": eventID})
	if err != nil {
		http.Error(w, "error deleting event", http.StatusInternalServerError)
		return
	}

	// Drop registrations and receipts hanging off the event.
	if _, err := db.RegistrationsCollection.DeleteMany(context.TODO(), bson.M{"eventid": eventID}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if _, err := db.ReceiptsCollection.DeleteMany(context.TODO(), bson.M{"eventid": eventID}); err != nil {
		log.Printf("Error deleting receipts for event %s: %v", eventID, err)
	}

	go mq.Emit("event-deleted", models.Index{EntityType: "event", EntityId: eventID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}
