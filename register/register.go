package register

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campushub/db"
	"campushub/models"
	"campushub/mq"
	"campushub/pay"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RegisterForEvent writes the registration snapshot once the caller has
// confirmed and reauthenticated (RequireReauth guards the route). Free
// events finish here; paid events answer with a gateway order and wait
// for the verify callback.
func RegisterForEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	uid := utils.GetUserIDFromRequest(r)

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID}).Decode(&event)
	if err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	// The whole flow fails if the student profile is missing; the
	// snapshot has nothing to copy.
	var student models.Student
	err = db.StudentsCollection.FindOne(context.TODO(), bson.M{"userid": uid}).Decode(&student)
	if err != nil {
		http.Error(w, "Student profile not found", http.StatusInternalServerError)
		return
	}

	exists := db.RegistrationsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID, "uid": uid}).Err()
	if exists == nil {
		http.Error(w, "Already registered for this event", http.StatusConflict)
		return
	} else if exists != mongo.ErrNoDocuments {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	registration := models.Registration{
		EventID:      eventID,
		UID:          uid,
		FirstName:    student.FirstName,
		LastName:     student.LastName,
		Email:        student.Email,
		RegisteredAt: time.Now(),
	}

	fee := FeeMinorUnits(event.RegistrationFee)
	state, err := Next(StateReauthenticate, InputReauthOK, fee)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if state == StateSuccess {
		if _, err := db.RegistrationsCollection.InsertOne(context.TODO(), registration); err != nil {
			http.Error(w, "Failed to register", http.StatusInternalServerError)
			return
		}
		go mq.Emit("registration-completed", models.Index{EntityType: "event", EntityId: eventID, ItemId: uid, Method: "POST"})
		utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
			"state":        state,
			"registration": registration,
		})
		return
	}

	// The order is created first and pinned to the registration; the verify
	// callback only accepts this order id.
	order, err := pay.CreateOrder(fee, "INR", eventID+":"+uid)
	if err != nil {
		log.Printf("Failed to create order for event %s, user %s: %v", eventID, uid, err)
		http.Error(w, "Failed to create payment order", http.StatusInternalServerError)
		return
	}
	orderID, _ := order["id"].(string)
	if orderID == "" {
		http.Error(w, "Failed to create payment order", http.StatusInternalServerError)
		return
	}
	registration.OrderID = orderID

	if _, err := db.RegistrationsCollection.InsertOne(context.TODO(), registration); err != nil {
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"state":        state,
		"registration": registration,
		"order":        order,
		"amount":       fee,
		"currency":     "INR",
	})
}

// VerifyPayment checks the checkout callback signature and writes the
// payment receipt under the registration. A failed receipt write is an
// error, not a success: the registration then exists without a matched
// receipt, which is the documented inconsistency window.
func VerifyPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	uid := utils.GetUserIDFromRequest(r)

	var input struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID}).Decode(&event)
	if err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	var registration models.Registration
	err = db.RegistrationsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID, "uid": uid}).Decode(&registration)
	if err != nil {
		http.Error(w, "Registration not found", http.StatusNotFound)
		return
	}

	if err := ValidateCallback(registration.OrderID, input.OrderID, input.PaymentID, input.Signature); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !pay.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Payment verification failed"})
		return
	}

	receipt := models.PaymentReceipt{
		PaymentID: input.PaymentID,
		OrderID:   input.OrderID,
		Signature: input.Signature,
		EventID:   eventID,
		UID:       uid,
		Amount:    FeeMinorUnits(event.RegistrationFee),
		Currency:  "INR",
		CreatedAt: time.Now(),
	}
	if _, err := db.ReceiptsCollection.InsertOne(context.TODO(), receipt); err != nil {
		log.Printf("Failed to store payment receipt %s for event %s: %v", input.PaymentID, eventID, err)
		http.Error(w, "Payment succeeded but storing the receipt failed", http.StatusInternalServerError)
		return
	}

	go mq.Emit("registration-completed", models.Index{EntityType: "event", EntityId: eventID, ItemId: uid, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "state": StateSuccess})
}

// GetMyRegistrations lists the caller's registrations, newest first.
func GetMyRegistrations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	uid := utils.GetUserIDFromRequest(r)

	cursor, err := db.RegistrationsCollection.Find(context.TODO(), bson.M{"uid": uid},
		options.Find().SetSort(bson.D{{Key: "registered_at", Value: -1}}))
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	var registrations []models.Registration
	if err := cursor.All(context.TODO(), &registrations); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if registrations == nil {
		registrations = []models.Registration{}
	}

	utils.RespondWithJSON(w, http.StatusOK, registrations)
}
