package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"campushub/db"
	"campushub/globals"
	"campushub/models"
	"campushub/rdx"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = globals.JwtSecret

const reauthTTL = 5 * time.Minute

// Reauthenticate re-proves account ownership immediately before a
// sensitive write (event deletion, registration). It checks the current
// password and hands back a single-use token which the sensitive endpoint
// consumes via the X-Reauth-Token header.
func Reauthenticate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Password == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var student models.Student
	err := db.StudentsCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&student)
	if err != nil {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Incorrect password, please try again", http.StatusUnauthorized)
		return
	}

	token := utils.GenerateID(32)
	if err := rdx.SetWithExpiry("reauth:"+userID, token, reauthTTL); err != nil {
		http.Error(w, "Failed to issue reauth token", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"reauthToken": token}, "Reauthentication successful", nil)
}
