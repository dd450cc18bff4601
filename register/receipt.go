package register

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"campushub/db"
	"campushub/models"
	"campushub/utils"
)

// PrintReceipt renders a PDF confirmation for a completed registration.
// Paid events must have a stored payment receipt; free events only need
// the registration itself.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	uid := utils.GetUserIDFromRequest(r)

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

	fee := FeeMinorUnits(event.RegistrationFee)
	var receipt models.PaymentReceipt
	if fee > 0 {
		err = db.ReceiptsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID, "uid": uid}).Decode(&receipt)
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Payment not completed", http.StatusPaymentRequired)
			return
		} else if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	qrData := fmt.Sprintf("eid=%s&uid=%s&ts=%d", eventID, uid, time.Now().Unix())
	qrCode, _ := qrcode.Encode(qrData, qrcode.Medium, 128)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	pdf.SetFillColor(245, 245, 255)

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Registration Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, fmt.Sprintf(
		"Name: %s %s\nEvent: %s\nEvent ID: %s\nRegistered: %s",
		registration.FirstName,
		registration.LastName,
		event.Name,
		eventID,
		registration.RegisteredAt.Format("02 Jan 2006 15:04"),
	), "", "L", false)

	if fee > 0 {
		pdf.Ln(3)
		pdf.MultiCell(0, 10, fmt.Sprintf(
			"Payment ID: %s\nOrder ID: %s\nAmount Paid: %.2f %s",
			receipt.PaymentID,
			receipt.OrderID,
			float64(receipt.Amount)/100,
			receipt.Currency,
		), "", "L", false)
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
	pdf.ImageOptions("qr", 150, 60, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Show this receipt at the venue for entry.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate receipt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+eventID+".pdf")
	w.Write(buf.Bytes())
}
