package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/htlc-escrow/pkg/app/errors"
	"github.com/chainsafe/htlc-escrow/pkg/auth"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/service"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/service/mocks"
)

type errorBody struct {
	Error  string `json:"error"`
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

func newTestServer(svc service.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(auth.Middleware(nil, "", zap.NewNop()))
	service.RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func do(t *testing.T, h http.Handler, method, path, account, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	if account != "" {
		req.Header.Set(auth.AccountHeader, account)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestHTTP_CreateEscrow_RequiresCaller(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)

	rec := do(t, handler, http.MethodPost, "/escrows", "", `{"receiver":"bob"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := decodeError(t, rec); got.Code != http.StatusUnauthorized {
		t.Fatalf("expected code %d, got %d", http.StatusUnauthorized, got.Code)
	}
}

func TestHTTP_CreateEscrow_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTestServer(svc)

	rec := do(t, handler, http.MethodPost, "/escrows", "alice", "{invalid")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	got := decodeError(t, rec)
	if got.Error != "invalid JSON" || got.Reason != "InvalidRequest" {
		t.Fatalf("unexpected error body: %+v", got)
	}
}

func TestHTTP_CreateEscrow_PassesCallerAndBody(t *testing.T) {
	svc := mocks.NewService(t)
	deadline := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().
		CreateEscrow(mock.Anything, "alice", mock.MatchedBy(func(req *service.CreateEscrowRequest) bool {
			return req.Receiver == "bob" && req.Amount == "42" && req.At != nil && req.At.Equal(deadline)
		})).
		Return(&htlc.EscrowStatus{Escrow: htlc.Escrow{
			ID:       "esc-1",
			Sender:   "alice",
			Receiver: "bob",
			Amount:   htlc.NewAmount(42),
			State:    htlc.StateOpen,
			Deadline: deadline,
		}, Claimable: true}, nil)
	handler := newTestServer(svc)

	body := fmt.Sprintf(`{"receiver":"bob","amount":"42","commitment":"%s","deadline":"%s"}`,
		htlc.HashSecret([]byte("s")).String(), deadline.Format(time.RFC3339))
	rec := do(t, handler, http.MethodPost, "/escrows", "alice", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type %q, got %q", "application/json", ct)
	}

	var got struct {
		ID        string `json:"id"`
		Amount    string `json:"amount"`
		State     string `json:"state"`
		Claimable bool   `json:"claimable"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.ID != "esc-1" || got.Amount != "42" || got.State != "open" || !got.Claimable {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestHTTP_DomainErrorsCarryReason(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"not found", apperrors.WithReason(apperrors.ResourceNotFoundError(htlc.ErrNotFound, "not found: escrow x"), "NotFound"), http.StatusNotFound, "NotFound"},
		{"already finalized", apperrors.WithReason(apperrors.ConflictError(htlc.ErrAlreadyFinalized, "already finalized"), "AlreadyFinalized"), http.StatusConflict, "AlreadyFinalized"},
		{"concurrent claim", apperrors.WithReason(apperrors.LockedError(htlc.ErrConcurrentClaim, "payout already in progress"), "ConcurrentClaim"), http.StatusLocked, "ConcurrentClaim"},
		{"expired", apperrors.WithReason(apperrors.ForbiddenError(htlc.ErrExpired, "deadline passed"), "Expired"), http.StatusForbidden, "Expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			svc.EXPECT().
				ClaimEscrow(mock.Anything, "bob", "x", &service.SecretRequest{Secret: "00"}).
				Return(nil, tt.err)
			handler := newTestServer(svc)

			rec := do(t, handler, http.MethodPost, "/escrows/x/claim", "bob", `{"secret":"00"}`)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := decodeError(t, rec); got.Reason != tt.wantReason || got.Code != tt.wantStatus {
				t.Fatalf("unexpected error body: %+v", got)
			}
		})
	}
}

func TestHTTP_Pagination(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		ListEscrows(mock.Anything, "alice", service.Page{Offset: 5, Limit: 500}).
		Return(&service.EscrowList{Escrows: []htlc.EscrowStatus{}}, nil)
	svc.EXPECT().
		ListOrders(mock.Anything, "", service.Page{Offset: 0, Limit: 50}).
		Return(&service.OrderList{Orders: []htlc.Order{}}, nil)
	handler := newTestServer(svc)

	if rec := do(t, handler, http.MethodGet, "/escrows?account=alice&offset=5&limit=9999", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec := do(t, handler, http.MethodGet, "/orders", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec := do(t, handler, http.MethodGet, "/escrows?offset=-1", "", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for negative offset, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHTTP_CompleteRequest_AllowsAnonymousCaller(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		CompleteRequest(mock.Anything, "", "req-1", &service.CompleteRequestRequest{Secret: "ab", Recipient: "carol"}).
		Return(&service.PayoutResponse{
			ID:             "req-1",
			Kind:           "request_complete",
			Recipient:      "carol",
			Amount:         htlc.NewAmount(3),
			TransferStatus: "settled",
		}, nil)
	handler := newTestServer(svc)

	rec := do(t, handler, http.MethodPost, "/requests/req-1/complete", "", `{"secret":"ab","recipient":"carol"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got service.PayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.TransferStatus != "settled" || got.Recipient != "carol" || got.Amount.String() != "3" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestHTTP_RefundExpired_EmptyBody(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		RefundExpiredRequests(mock.Anything, "owner", &service.RefundExpiredRequest{}).
		Return(&service.BatchRefundResponse{Refunded: []service.PayoutResponse{}}, nil)
	handler := newTestServer(svc)

	rec := do(t, handler, http.MethodPost, "/requests/refund-expired", "owner", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestHTTP_AdminRoutes(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Owner(mock.Anything).Return(&service.OwnerResponse{Owner: "owner"}, nil)
	svc.EXPECT().
		SetResolver(mock.Anything, "owner", "relayer-1", &service.SetResolverRequest{Enabled: true}).
		Return(&service.ResolverResponse{Account: "relayer-1", Authorized: true}, nil)
	svc.EXPECT().Pause(mock.Anything, "owner").Return(&service.PauseResponse{Paused: true}, nil)
	handler := newTestServer(svc)

	rec := do(t, handler, http.MethodGet, "/admin/owner", "", "")
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte(`"owner":"owner"`)) {
		t.Fatalf("unexpected owner response: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, handler, http.MethodPut, "/admin/resolvers/relayer-1", "owner", `{"enabled":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	rec = do(t, handler, http.MethodPost, "/admin/pause", "owner", "")
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte(`"paused":true`)) {
		t.Fatalf("unexpected pause response: %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(t, handler, http.MethodPost, "/admin/unpause", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d without caller, got %d", http.StatusUnauthorized, rec.Code)
	}
}

type instantLedger struct{}

func (instantLedger) Transfer(context.Context, string, htlc.Amount) error { return nil }

// End to end through the real service and engine.
func TestHTTP_EscrowLifecycle(t *testing.T) {
	clock := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	eng, err := engine.New("owner", instantLedger{}, engine.WithClock(func() time.Time { return clock }))
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	svc := service.NewLog(service.NewService(eng, time.Second, zap.NewNop()), zap.NewNop())
	handler := newTestServer(svc)

	secret := []byte("lifecycle")
	body := fmt.Sprintf(`{"receiver":"bob","amount":"7","commitment":"%s","timelock_seconds":60}`, htlc.HashSecret(secret).String())
	rec := do(t, handler, http.MethodPost, "/escrows", "alice", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var created htlc.EscrowStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}

	rec = do(t, handler, http.MethodPost, "/secrets/check", "",
		fmt.Sprintf(`{"id":"%s","secret":"%x"}`, created.ID, secret))
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte(`"valid":true`)) {
		t.Fatalf("unexpected check response: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, handler, http.MethodPost, "/escrows/"+created.ID+"/claim", "mallory", fmt.Sprintf(`{"secret":"%x"}`, secret))
	if rec.Code != http.StatusForbidden || decodeError(t, rec).Reason != "Unauthorized" {
		t.Fatalf("expected 403 Unauthorized for wrong claimer, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, handler, http.MethodPost, "/escrows/"+created.ID+"/claim", "bob", fmt.Sprintf(`{"secret":"%x"}`, secret))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var payout service.PayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payout); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if payout.TransferStatus != "settled" || payout.Recipient != "bob" {
		t.Fatalf("unexpected payout: %+v", payout)
	}

	rec = do(t, handler, http.MethodGet, "/escrows/"+created.ID, "", "")
	var got htlc.EscrowStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.State != htlc.StateClaimed || got.Claimable {
		t.Fatalf("unexpected escrow after claim: %+v", got)
	}

	rec = do(t, handler, http.MethodGet, "/escrows/unknown", "", "")
	if rec.Code != http.StatusNotFound || decodeError(t, rec).Reason != "NotFound" {
		t.Fatalf("expected 404 NotFound, got %d %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := eng.Drain(ctx); err != nil {
		t.Fatalf("Drain() failed: %v", err)
	}
}
