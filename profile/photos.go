package profile

import (
	"context"
	"net/http"
	"time"

	"campushub/db"
	"campushub/models"
	"campushub/mq"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var userpicUploadPath = "./static/userpic"

// EditProfilePhoto saves an uploaded photo under /static/userpic with a
// 128px thumbnail and stores the served URL on every role record the
// account has, so the denormalized member snapshots pick it up on join.
func EditProfilePhoto(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "Missing photo file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	fileName, err := utils.SaveImageWithThumb(file, userpicUploadPath, userID, 128)
	if err != nil {
		http.Error(w, "Failed to save photo", http.StatusInternalServerError)
		return
	}

	photoURL := "/static/userpic/" + fileName
	update := bson.M{"$set": bson.M{"profilePhoto": photoURL, "updated_at": time.Now()}}
	filter := bson.M{"userid": userID}

	if _, err := db.StudentsCollection.UpdateOne(context.TODO(), filter, update); err != nil {
		http.Error(w, "Failed to update profile photo", http.StatusInternalServerError)
		return
	}
	// Best effort for the mirrored role records; they may not exist.
	db.HostsCollection.UpdateOne(context.TODO(), filter, update)
	db.AdminsCollection.UpdateOne(context.TODO(), filter, update)

	InvalidateCachedProfile(userID)

	go mq.Emit("profilephoto-updated", models.Index{EntityType: "user", EntityId: userID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"profilePhoto": photoURL})
}
