package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFlutterwaveClient_VerifyTransactionSuccessful(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/transactions/verify_by_reference", r.URL.Path)
		require.Equal(t, "lizexpress_1_abc", r.URL.Query().Get("tx_ref"))
		require.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"message": "Transaction fetched successfully",
			"data": {"id": 12345, "tx_ref": "lizexpress_1_abc", "amount": 5000, "currency": "NGN", "status": "successful"}
		}`))
	}))
	defer srv.Close()

	client := NewFlutterwaveClient(srv.URL, "sk_test", "wh_secret", 5*time.Second)
	result, err := client.VerifyTransaction(context.Background(), "lizexpress_1_abc")
	require.NoError(t, err)
	require.True(t, result.Successful)
	require.Equal(t, "12345", result.GatewayTxID)
	require.Equal(t, float64(5000), result.Amount)
	require.Equal(t, "NGN", result.Currency)
}

func TestFlutterwaveClient_VerifyTransactionFailedCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": {"id": 99, "tx_ref": "lizexpress_2_def", "amount": 5000, "currency": "NGN", "status": "failed"}
		}`))
	}))
	defer srv.Close()

	client := NewFlutterwaveClient(srv.URL, "sk_test", "wh_secret", 5*time.Second)
	result, err := client.VerifyTransaction(context.Background(), "lizexpress_2_def")
	require.NoError(t, err)
	require.False(t, result.Successful)
	require.Equal(t, "failed", result.RawStatus)
}

func TestFlutterwaveClient_VerifyTransactionErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":"error","message":"No transaction was found for this id"}`))
	}))
	defer srv.Close()

	client := NewFlutterwaveClient(srv.URL, "sk_test", "wh_secret", 5*time.Second)
	_, err := client.VerifyTransaction(context.Background(), "missing")
	require.Error(t, err)

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer bad.Close()

	client = NewFlutterwaveClient(bad.URL, "sk_test", "wh_secret", 5*time.Second)
	_, err = client.VerifyTransaction(context.Background(), "x")
	require.Error(t, err)
}

func TestFlutterwaveClient_VerifyWebhookSignature(t *testing.T) {
	client := NewFlutterwaveClient("http://unused", "sk_test", "wh_secret", time.Second)

	require.True(t, client.VerifyWebhookSignature("wh_secret"))
	require.False(t, client.VerifyWebhookSignature("wrong"))
	require.False(t, client.VerifyWebhookSignature(""))

	noSecret := NewFlutterwaveClient("http://unused", "sk_test", "", time.Second)
	require.False(t, noSecret.VerifyWebhookSignature("anything"))
}
