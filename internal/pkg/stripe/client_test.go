package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestChargeSucceeded(t *testing.T) {
	var gotIdempotency string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("amount"); got != "15000" {
			t.Errorf("expected amount in minor units 15000, got %s", got)
		}
		gotIdempotency = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":15000}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "sk_test", BaseURL: srv.URL})
	intent, err := client.Charge(context.Background(), 150, "usd", "pm_card_visa", "book-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.ID != "pi_123" {
		t.Errorf("expected intent id pi_123, got %s", intent.ID)
	}
	if gotIdempotency != "book-1" {
		t.Errorf("expected idempotency key to be forwarded, got %q", gotIdempotency)
	}
}

func TestChargeDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "sk_test", BaseURL: srv.URL})
	_, err := client.Charge(context.Background(), 150, "usd", "pm_card_fail", "book-2")
	if !errors.Is(err, ErrCardDeclined) {
		t.Fatalf("expected ErrCardDeclined, got %v", err)
	}
}

func TestChargeNonSucceededStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"pi_456","status":"requires_action","amount":15000}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "sk_test", BaseURL: srv.URL})
	_, err := client.Charge(context.Background(), 150, "usd", "pm_card_3ds", "book-3")
	if !errors.Is(err, ErrCardDeclined) {
		t.Fatalf("expected ErrCardDeclined for non-succeeded status, got %v", err)
	}
}

func TestChargeTimeoutFailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{"id":"pi_789","status":"succeeded"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "sk_test", BaseURL: srv.URL, Timeout: 10 * time.Millisecond})
	_, err := client.Charge(context.Background(), 150, "usd", "pm_card_visa", "book-4")
	if !errors.Is(err, ErrCardDeclined) {
		t.Fatalf("expected timeout to map to ErrCardDeclined, got %v", err)
	}
}

func TestChargeValidatesInput(t *testing.T) {
	client := NewClient(Config{APIKey: "sk_test", BaseURL: "http://localhost:1"})
	if _, err := client.Charge(context.Background(), 0, "usd", "pm", "k"); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, err := client.Charge(context.Background(), 10, "usd", "", "k"); err == nil {
		t.Error("expected error for empty payment method")
	}
}
