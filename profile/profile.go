package profile

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campushub/db"
	"campushub/models"
	"campushub/rdx"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetProfile returns the role record governing the caller.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	role := utils.GetRoleFromRequest(r)

	if cached, err := GetCachedProfile(userID); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	record, err := loadRoleRecord(context.TODO(), role, userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	if data, err := json.Marshal(record); err == nil {
		if err := CacheProfile(userID, string(data)); err != nil {
			log.Printf("Failed to cache profile for %s: %v", userID, err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, record)
}

func loadRoleRecord(ctx context.Context, role, userID string) (any, error) {
	filter := bson.M{"userid": userID}
	switch role {
	case "host":
		var host models.Host
		if err := db.HostsCollection.FindOne(ctx, filter).Decode(&host); err != nil {
			return nil, err
		}
		return host, nil
	case "admin":
		var admin models.Admin
		if err := db.AdminsCollection.FindOne(ctx, filter).Decode(&admin); err != nil {
			return nil, err
		}
		return admin, nil
	default:
		var student models.Student
		if err := db.StudentsCollection.FindOne(ctx, filter).Decode(&student); err != nil {
			return nil, err
		}
		return student, nil
	}
}

// UpdateDetails applies the role-specific "complete your details" form.
func UpdateDetails(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	role := utils.GetRoleFromRequest(r)

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	allowed := allowedDetailFields(role)
	updates := bson.M{}
	for k, v := range fields {
		if utils.Contains(allowed, k) && v != "" {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		http.Error(w, "No valid fields to update", http.StatusBadRequest)
		return
	}
	updates["updated_at"] = time.Now()

	collection := db.StudentsCollection
	switch role {
	case "host":
		collection = db.HostsCollection
	case "admin":
		collection = db.AdminsCollection
	}

	result, err := collection.UpdateOne(context.TODO(), bson.M{"userid": userID}, bson.M{"$set": updates})
	if err != nil || result.MatchedCount == 0 {
		http.Error(w, "Failed to update details", http.StatusInternalServerError)
		return
	}

	InvalidateCachedProfile(userID)

	record, err := loadRoleRecord(context.TODO(), role, userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, record)
}

func allowedDetailFields(role string) []string {
	switch role {
	case "host":
		return []string{"organization", "contact", "firstName", "lastName"}
	case "admin":
		return []string{"department", "firstName", "lastName"}
	default:
		return []string{"rollNo", "branch", "year", "department", "firstName", "lastName"}
	}
}

// --- Redis profile cache ---

func CacheProfile(userID string, profileJSON string) error {
	return rdx.SetWithExpiry("profile:"+userID, profileJSON, 10*time.Minute)
}

func GetCachedProfile(userID string) (string, error) {
	return rdx.RdxGet("profile:" + userID)
}

func InvalidateCachedProfile(userID string) error {
	return rdx.RdxDel("profile:" + userID)
}
