package pay

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"campushub/utils"

	razorpay "github.com/razorpay/razorpay-go"
	rputils "github.com/razorpay/razorpay-go/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	defaultAmount   = 50000 // paise
	defaultCurrency = "INR"
)

var client *razorpay.Client

func init() {
	client = razorpay.NewClient(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
}

// CreateOrder asks the gateway for an order. Amount is in minor units.
func CreateOrder(amount int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
	}
	if receipt != "" {
		data["receipt"] = receipt
	}
	return client.Order.Create(data, nil)
}

// VerifySignature checks the checkout callback's HMAC against our secret.
func VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return rputils.VerifyPaymentSignature(params, signature, os.Getenv("RAZORPAY_KEY_SECRET"))
}

// CreateOrderHandler is the thin order-creation endpoint the checkout
// widget calls: POST /api/razorpay/create-order.
func CreateOrderHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if r.Body != nil {
		// A missing or malformed body falls back to the defaults.
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Printf("create-order: unreadable body, using defaults: %v", err)
		}
	}

	if body.Amount <= 0 {
		body.Amount = defaultAmount
	}
	if body.Currency == "" {
		body.Currency = defaultCurrency
	}

	order, err := CreateOrder(body.Amount, body.Currency, utils.GetUUID())
	if err != nil {
		log.Printf("create-order: gateway error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}
