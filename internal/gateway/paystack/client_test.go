package paystack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/gateway/paystack"
	"hotel-booking/pkg/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *paystack.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return paystack.New(utils.PaystackConfig{
		SecretKey:   "sk_test_secret",
		BaseURL:     srv.URL,
		CallbackURL: "https://hotel.example/booking",
	}, zap.NewNop())
}

func TestClient_Initialize(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "abc123",
				"reference":         "HB-20260110-120000-000001",
			},
		})
	})

	result, err := client.Initialize(context.Background(), paystack.InitializeRequest{
		Email:     "guest@example.com",
		Amount:    5000000,
		Reference: "HB-20260110-120000-000001",
		Metadata:  map[string]any{"booking_id": "b-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", result.AuthorizationURL)
	assert.Equal(t, "HB-20260110-120000-000001", result.Reference)

	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, "/transaction/initialize", gotPath)
	// Amount travels in minor units and the callback carries the reference.
	assert.Equal(t, float64(5000000), gotBody["amount"])
	assert.Equal(t, "https://hotel.example/booking?reference=HB-20260110-120000-000001", gotBody["callback_url"])
}

func TestClient_Initialize_ProviderRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "Invalid key",
		})
	})

	_, err := client.Initialize(context.Background(), paystack.InitializeRequest{
		Email:     "guest@example.com",
		Amount:    100,
		Reference: "ref-1",
	})

	assert.Error(t, err)
}

func TestClient_Verify_Success(t *testing.T) {
	var gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data": map[string]any{
				"status":   "success",
				"metadata": map[string]any{"booking_id": "b-1"},
			},
		})
	})

	result, err := client.Verify(context.Background(), "ref-1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "/transaction/verify/ref-1", gotPath)
	assert.Equal(t, "b-1", result.Metadata["booking_id"])
}

// A definitive non-success verdict is an answer, not an error: callers get
// Success=false and there is exactly one attempt.
func TestClient_Verify_Failed_NoRetry(t *testing.T) {
	attempts := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data": map[string]any{
				"status": "failed",
			},
		})
	})

	result, err := client.Verify(context.Background(), "ref-1")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, 1, attempts)
}

func TestClient_Verify_UpstreamErrorStatus_NoRetry(t *testing.T) {
	attempts := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, `{"status":false,"message":"server error"}`, http.StatusInternalServerError)
	})

	_, err := client.Verify(context.Background(), "ref-1")

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestClient_Verify_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.Verify(context.Background(), "ref-1")

	assert.Error(t, err)
}
