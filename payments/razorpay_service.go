package payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	config "github.com/akshat2912/vidyalaya/configs"
)

// RazorpayService creates subscription orders and verifies the signed
// callbacks Razorpay sends after checkout.
type RazorpayService struct {
	APIBase   string
	KeyID     string
	KeySecret string

	client *http.Client
}

type razorpayOrder struct {
	ID string `json:"id"`
}

func NewRazorpayService() *RazorpayService {
	return &RazorpayService{
		APIBase:   config.ConfigOr("RAZORPAY_API_BASE", "https://api.razorpay.com"),
		KeyID:     config.Config("RAZORPAY_KEY_ID"),
		KeySecret: config.Config("RAZORPAY_KEY_SECRET"),
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateOrder registers an order with the gateway and returns its order id.
// Amount is in paise. The call is not retried automatically; a blind retry
// could create a duplicate order.
func (s *RazorpayService) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	payload := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/orders", s.APIBase), bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.KeyID, s.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to create order, status %d: %s", resp.StatusCode, string(respBody))
	}

	var order razorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", err
	}
	if order.ID == "" {
		return "", fmt.Errorf("gateway returned an empty order id")
	}
	return order.ID, nil
}

// VerifySignature checks that signature equals the hex HMAC-SHA256 of
// "orderID|paymentID" under the key secret. This is the sole trust boundary
// for payment confirmation; it returns false on any mismatch and never errors.
func (s *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
