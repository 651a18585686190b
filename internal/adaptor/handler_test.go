package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/failure"
	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPaymentService struct {
	initResp   *response.InitializePaymentResponse
	initErr    error
	verifyResp *response.VerifyPaymentResponse
	verifyErr  error
	lastVerify string
}

func (s *stubPaymentService) InitializePayment(ctx context.Context, req *request.InitializePaymentRequest) (*response.InitializePaymentResponse, error) {
	return s.initResp, s.initErr
}

func (s *stubPaymentService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error) {
	s.lastVerify = req.Reference
	return s.verifyResp, s.verifyErr
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestVerifyPayment_ReferenceFromQuery(t *testing.T) {
	stub := &stubPaymentService{
		verifyResp: &response.VerifyPaymentResponse{Verified: true, Updated: true, Message: "ok"},
	}
	h := NewPaymentHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/payments/verify?reference=HB-123", nil)
	rec := httptest.NewRecorder()
	h.VerifyPayment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HB-123", stub.lastVerify)
	assert.True(t, decodeEnvelope(t, rec).Status)
}

func TestVerifyPayment_MissingReference(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.VerifyPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Status)
}

func TestVerifyPayment_ConflictKeepsResult(t *testing.T) {
	stub := &stubPaymentService{
		verifyResp: &response.VerifyPaymentResponse{Verified: true, Updated: false},
		verifyErr:  failure.Conflict("payment succeeded but the room is no longer available"),
	}
	h := NewPaymentHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"reference":"HB-456"}`))
	rec := httptest.NewRecorder()
	h.VerifyPayment(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Status)
	require.NotNil(t, envelope.Data, "the verification verdict rides along with the conflict")
}

func TestInitializePayment_UpstreamMapsTo502(t *testing.T) {
	stub := &stubPaymentService{
		initErr: failure.Upstream(assert.AnError),
	}
	h := NewPaymentHandler(stub, zap.NewNop())

	body := `{"full_name":"Ada Obi","phone":"08031234567","email":"ada@example.com","room_name":"Standard","room_number":101,"room_price":25000,"start_date":"2026-10-01T14:00:00Z","end_date":"2026-10-03T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments/initialize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.InitializePayment(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestInitializePayment_RejectsMalformedBody(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/initialize", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.InitializePayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteServiceError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, zap.NewNop(), assert.AnError, "test op")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error", envelope.Message)
}

func TestWriteServiceError_PassesThroughClassified(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, zap.NewNop(), failure.NotFound("booking"), "test op")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "booking not found", decodeEnvelope(t, rec).Message)
}
