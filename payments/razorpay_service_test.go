package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testService(apiBase string) *RazorpayService {
	return &RazorpayService{
		APIBase:   apiBase,
		KeyID:     "rzp_test_key",
		KeySecret: "test_secret",
		client:    &http.Client{Timeout: 2 * time.Second},
	}
}

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	svc := testService("")

	orderID := "order_Nxy123"
	paymentID := "pay_Abc456"
	good := signFor("test_secret", orderID, paymentID)

	tests := []struct {
		name      string
		signature string
		want      bool
	}{
		{"valid signature", good, true},
		{"empty signature", "", false},
		{"tampered signature", good[:len(good)-1] + "0", false},
		{"signature for other key", signFor("wrong_secret", orderID, paymentID), false},
		{"signature for other payment", signFor("test_secret", orderID, "pay_Other"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.VerifySignature(orderID, paymentID, tt.signature); got != tt.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "test_secret" {
			t.Error("missing or wrong basic auth")
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if body["amount"].(float64) != 99800 {
			t.Errorf("amount = %v, want 99800", body["amount"])
		}
		if body["currency"].(string) != "INR" {
			t.Errorf("currency = %v, want INR", body["currency"])
		}

		json.NewEncoder(w).Encode(map[string]string{"id": "order_Nxy123"})
	}))
	defer ts.Close()

	svc := testService(ts.URL)
	orderID, err := svc.CreateOrder(99800, "INR", "reg_abc")
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if orderID != "order_Nxy123" {
		t.Fatalf("orderID = %s, want order_Nxy123", orderID)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"BAD_REQUEST_ERROR"}}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	svc := testService(ts.URL)
	if _, err := svc.CreateOrder(100, "INR", "reg_abc"); err == nil {
		t.Fatal("expected error for gateway 4xx")
	}
}

func TestCreateOrderEmptyID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer ts.Close()

	svc := testService(ts.URL)
	if _, err := svc.CreateOrder(100, "INR", "reg_abc"); err == nil {
		t.Fatal("expected error for empty order id")
	}
}
