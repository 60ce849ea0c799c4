package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/htlc-escrow/pkg/app/errors"
	apphttp "github.com/chainsafe/htlc-escrow/pkg/app/http"
	"github.com/chainsafe/htlc-escrow/pkg/auth"
)

const (
	maxBodyBytes     = 1 << 20
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the escrow, order, fill, request, secret and admin
// endpoints on the given chi router.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/escrows", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.createEscrow))
		r.Get("/", apphttp.HandleError(h.listEscrows))
		r.Get("/{id}", apphttp.HandleError(h.getEscrow))
		r.Post("/{id}/claim", apphttp.HandleError(h.claimEscrow))
		r.Post("/{id}/refund", apphttp.HandleError(h.refundEscrow))
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.createOrder))
		r.Get("/", apphttp.HandleError(h.listOrders))
		r.Get("/{id}", apphttp.HandleError(h.getOrder))
		r.Get("/{id}/progress", apphttp.HandleError(h.getProgress))
		r.Get("/{id}/fills", apphttp.HandleError(h.listOrderFills))
		r.Post("/{id}/fills", apphttp.HandleError(h.createFill))
	})

	r.Route("/fills", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.listFills))
		r.Get("/{id}", apphttp.HandleError(h.getFill))
		r.Post("/{id}/complete", apphttp.HandleError(h.completeFill))
		r.Post("/{id}/refund", apphttp.HandleError(h.refundFill))
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.requestSwap))
		r.Get("/", apphttp.HandleError(h.listRequests))
		r.Post("/refund-expired", apphttp.HandleError(h.refundExpired))
		r.Get("/{id}", apphttp.HandleError(h.getRequest))
		r.Post("/{id}/complete", apphttp.HandleError(h.completeRequest))
		r.Post("/{id}/refund", apphttp.HandleError(h.refundRequest))
	})

	r.Post("/secrets/verify", apphttp.HandleError(h.verifySecret))
	r.Post("/secrets/check", apphttp.HandleError(h.checkSecret))

	r.Route("/admin", func(r chi.Router) {
		r.Get("/owner", apphttp.HandleError(h.owner))
		r.Get("/stats", apphttp.HandleError(h.stats))
		r.Get("/resolvers/{account}", apphttp.HandleError(h.getResolver))
		r.Put("/resolvers/{account}", apphttp.HandleError(h.setResolver))
		r.Post("/pause", apphttp.HandleError(h.pause))
		r.Post("/unpause", apphttp.HandleError(h.unpause))
	})
}

func (h *HTTP) createEscrow(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	var req CreateEscrowRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.CreateEscrow(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) listEscrows(w http.ResponseWriter, r *http.Request) error {
	page, err := parsePage(r)
	if err != nil {
		return err
	}
	resp, err := h.service.ListEscrows(r.Context(), r.URL.Query().Get("account"), page)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getEscrow(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetEscrow(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) claimEscrow(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	var req SecretRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.ClaimEscrow(r.Context(), caller, chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) refundEscrow(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	resp, err := h.service.RefundEscrow(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) createOrder(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	var req CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.CreateOrder(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) listOrders(w http.ResponseWriter, r *http.Request) error {
	page, err := parsePage(r)
	if err != nil {
		return err
	}
	resp, err := h.service.ListOrders(r.Context(), r.URL.Query().Get("account"), page)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getOrder(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getProgress(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) listOrderFills(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.ListOrderFills(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) createFill(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	var req CreateFillRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.CreateFill(r.Context(), caller, chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) listFills(w http.ResponseWriter, r *http.Request) error {
	page, err := parsePage(r)
	if err != nil {
		return err
	}
	resp, err := h.service.ListFills(r.Context(), r.URL.Query().Get("account"), page)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getFill(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetFill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) completeFill(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	var req CompleteFillRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.CompleteFill(r.Context(), caller, chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) refundFill(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	resp, err := h.service.RefundFill(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) requestSwap(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	var req SwapRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.RequestSwap(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) listRequests(w http.ResponseWriter, r *http.Request) error {
	page, err := parsePage(r)
	if err != nil {
		return err
	}
	resp, err := h.service.ListRequests(r.Context(), r.URL.Query().Get("account"), page)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getRequest(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// completeRequest is open to anyone holding the secret; the caller is only
// checked by the engine when resolver-gated completion is on.
func (h *HTTP) completeRequest(w http.ResponseWriter, r *http.Request) error {
	caller, _ := auth.AccountFromContext(r.Context())
	var req CompleteRequestRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.CompleteRequest(r.Context(), caller, chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) refundRequest(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.RefundRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) refundExpired(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	var req RefundExpiredRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			return err
		}
	}
	resp, err := h.service.RefundExpiredRequests(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) verifySecret(w http.ResponseWriter, r *http.Request) error {
	var req VerifySecretRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.VerifySecret(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) checkSecret(w http.ResponseWriter, r *http.Request) error {
	var req CheckSecretRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.CheckSecret(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) owner(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Owner(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) stats(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Stats(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getResolver(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetResolver(r.Context(), chi.URLParam(r, "account"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) setResolver(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	var req SetResolverRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	resp, err := h.service.SetResolver(r.Context(), caller, chi.URLParam(r, "account"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) pause(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	resp, err := h.service.Pause(r.Context(), caller)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) unpause(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequireAccount(r)
	if err != nil {
		return err
	}
	resp, err := h.service.Unpause(r.Context(), caller)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.WithReason(apperrors.BadRequestError(err, "invalid JSON"), reasonInvalidRequest)
	}
	return nil
}

func parsePage(r *http.Request) (Page, error) {
	page := Page{Limit: defaultPageLimit}
	q := r.URL.Query()
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Page{}, apperrors.WithReason(apperrors.BadRequestError(err, "invalid offset"), reasonInvalidRequest)
		}
		page.Offset = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Page{}, apperrors.WithReason(apperrors.BadRequestError(err, "invalid limit"), reasonInvalidRequest)
		}
		page.Limit = min(n, maxPageLimit)
	}
	return page, nil
}
