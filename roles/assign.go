package roles

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"campushub/db"
	"campushub/models"
	"campushub/mq"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func upsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}

// Assign is the only writer of the role pointer. It materializes the
// target role record synchronously before flipping the pointer, so a
// later login never finds the pointer ahead of its record.
func Assign(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		UserID string `json:"userid"`
		Role   string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if input.Role != "student" && input.Role != "host" && input.Role != "admin" {
		http.Error(w, "Unknown role", http.StatusBadRequest)
		return
	}

	var student models.Student
	err := db.StudentsCollection.FindOne(context.TODO(), bson.M{"userid": input.UserID}).Decode(&student)
	if err != nil {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}

	switch input.Role {
	case "host":
		update := bson.M{"$setOnInsert": models.Host{
			UserID:    student.UserID,
			Email:     student.Email,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}}
		opts := upsert()
		if _, err := db.HostsCollection.UpdateOne(context.TODO(), bson.M{"userid": student.UserID}, update, opts); err != nil {
			http.Error(w, "Failed to create host record", http.StatusInternalServerError)
			return
		}
	case "admin":
		update := bson.M{"$setOnInsert": models.Admin{
			UserID:    student.UserID,
			Email:     student.Email,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}}
		opts := upsert()
		if _, err := db.AdminsCollection.UpdateOne(context.TODO(), bson.M{"userid": student.UserID}, update, opts); err != nil {
			http.Error(w, "Failed to create admin record", http.StatusInternalServerError)
			return
		}
	}

	_, err = db.StudentsCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": input.UserID},
		bson.M{"$set": bson.M{"role": input.Role, "updated_at": time.Now()}},
	)
	if err != nil {
		http.Error(w, "Failed to assign role", http.StatusInternalServerError)
		return
	}

	go mq.Emit("role-assigned", models.Index{EntityType: "user", EntityId: input.UserID, Method: "PUT"})

	utils.SendResponse(w, http.StatusOK, map[string]string{"userid": input.UserID, "role": input.Role}, "Role assigned", nil)
}
