package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/htlc-escrow/internal/metrics"
	apperrors "github.com/chainsafe/htlc-escrow/pkg/app/errors"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

const serviceName = "HTLCService"

const secretDisplaySize = 8

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the escrow Service.
// It logs method entry and exit with duration, records operation metrics and
// never writes secrets in full.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// track logs the start of method and returns the function that logs its outcome.
func (ls *logService) track(method string, fields ...zap.Field) func(err error, result ...zap.Field) {
	start := time.Now()
	base := append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)
	ls.logger.Info(method+" started", base...)

	return func(err error, result ...zap.Field) {
		duration := time.Since(start)
		metrics.OperationDuration.WithLabelValues(method).Observe(duration.Seconds())

		outcome := "ok"
		if err != nil {
			outcome = reasonOf(err)
		}
		metrics.OperationsTotal.WithLabelValues(method, outcome).Inc()

		out := append(base, zap.Duration("duration", duration))
		if err != nil {
			// Client errors are logged at warn level.
			if apperrors.IsInternalError(err) {
				ls.logger.Error(method+" failed", append(out, zap.Error(err))...)
			} else {
				ls.logger.Warn(method+" failed", append(out, zap.String("reason", outcome), zap.Error(err))...)
			}
			return
		}
		ls.logger.Info(method+" completed", append(out, result...)...)
	}
}

func (ls *logService) CreateEscrow(ctx context.Context, caller string, req *CreateEscrowRequest) (resp *htlc.EscrowStatus, err error) {
	done := ls.track("CreateEscrow",
		zap.String("caller", caller),
		zap.String("receiver", req.Receiver),
		zap.String("amount", req.Amount),
	)
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil, zap.String("escrow_id", resp.ID), zap.Time("deadline", resp.Deadline))
	}()
	return ls.svc.CreateEscrow(ctx, caller, req)
}

func (ls *logService) GetEscrow(ctx context.Context, id string) (resp *htlc.EscrowStatus, err error) {
	done := ls.track("GetEscrow", zap.String("escrow_id", id))
	defer func() { done(err) }()
	return ls.svc.GetEscrow(ctx, id)
}

func (ls *logService) ListEscrows(ctx context.Context, account string, page Page) (resp *EscrowList, err error) {
	done := ls.track("ListEscrows", zap.String("account", account), zap.Int("offset", page.Offset), zap.Int("limit", page.Limit))
	defer func() { done(err) }()
	return ls.svc.ListEscrows(ctx, account, page)
}

func (ls *logService) ClaimEscrow(ctx context.Context, caller, id string, req *SecretRequest) (resp *PayoutResponse, err error) {
	done := ls.track("ClaimEscrow",
		zap.String("caller", caller),
		zap.String("escrow_id", id),
		zap.String("secret", redactSecret(req.Secret)),
	)
	defer func() { done(err, payoutFields(resp)...) }()
	return ls.svc.ClaimEscrow(ctx, caller, id, req)
}

func (ls *logService) RefundEscrow(ctx context.Context, caller, id string) (resp *PayoutResponse, err error) {
	done := ls.track("RefundEscrow", zap.String("caller", caller), zap.String("escrow_id", id))
	defer func() { done(err, payoutFields(resp)...) }()
	return ls.svc.RefundEscrow(ctx, caller, id)
}

func (ls *logService) CreateOrder(ctx context.Context, caller string, req *CreateOrderRequest) (resp *htlc.Order, err error) {
	done := ls.track("CreateOrder",
		zap.String("caller", caller),
		zap.String("receiver", req.Receiver),
		zap.String("total_amount", req.TotalAmount),
	)
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil, zap.String("order_id", resp.ID))
	}()
	return ls.svc.CreateOrder(ctx, caller, req)
}

func (ls *logService) GetOrder(ctx context.Context, id string) (resp *htlc.Order, err error) {
	done := ls.track("GetOrder", zap.String("order_id", id))
	defer func() { done(err) }()
	return ls.svc.GetOrder(ctx, id)
}

func (ls *logService) GetProgress(ctx context.Context, id string) (resp *htlc.OrderProgress, err error) {
	done := ls.track("GetProgress", zap.String("order_id", id))
	defer func() { done(err) }()
	return ls.svc.GetProgress(ctx, id)
}

func (ls *logService) ListOrders(ctx context.Context, account string, page Page) (resp *OrderList, err error) {
	done := ls.track("ListOrders", zap.String("account", account), zap.Int("offset", page.Offset), zap.Int("limit", page.Limit))
	defer func() { done(err) }()
	return ls.svc.ListOrders(ctx, account, page)
}

func (ls *logService) CreateFill(ctx context.Context, caller, orderID string, req *CreateFillRequest) (resp *htlc.FillStatus, err error) {
	done := ls.track("CreateFill",
		zap.String("caller", caller),
		zap.String("order_id", orderID),
		zap.String("fill_amount", req.FillAmount),
		zap.String("attached", req.Attached),
	)
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil, zap.String("fill_id", resp.ID), zap.Uint64("index", resp.Index))
	}()
	return ls.svc.CreateFill(ctx, caller, orderID, req)
}

func (ls *logService) GetFill(ctx context.Context, id string) (resp *htlc.FillStatus, err error) {
	done := ls.track("GetFill", zap.String("fill_id", id))
	defer func() { done(err) }()
	return ls.svc.GetFill(ctx, id)
}

func (ls *logService) ListOrderFills(ctx context.Context, orderID string) (resp *FillList, err error) {
	done := ls.track("ListOrderFills", zap.String("order_id", orderID))
	defer func() { done(err) }()
	return ls.svc.ListOrderFills(ctx, orderID)
}

func (ls *logService) ListFills(ctx context.Context, account string, page Page) (resp *FillList, err error) {
	done := ls.track("ListFills", zap.String("account", account), zap.Int("offset", page.Offset), zap.Int("limit", page.Limit))
	defer func() { done(err) }()
	return ls.svc.ListFills(ctx, account, page)
}

func (ls *logService) CompleteFill(ctx context.Context, caller, id string, req *CompleteFillRequest) (resp *PayoutResponse, err error) {
	done := ls.track("CompleteFill",
		zap.String("caller", caller),
		zap.String("fill_id", id),
		zap.String("secret", redactSecret(req.Secret)),
		zap.String("foreign_reference", req.ForeignReference),
	)
	defer func() { done(err, payoutFields(resp)...) }()
	return ls.svc.CompleteFill(ctx, caller, id, req)
}

func (ls *logService) RefundFill(ctx context.Context, caller, id string) (resp *PayoutResponse, err error) {
	done := ls.track("RefundFill", zap.String("caller", caller), zap.String("fill_id", id))
	defer func() { done(err, payoutFields(resp)...) }()
	return ls.svc.RefundFill(ctx, caller, id)
}

func (ls *logService) RequestSwap(ctx context.Context, caller string, req *SwapRequest) (resp *htlc.RequestStatus, err error) {
	done := ls.track("RequestSwap",
		zap.String("caller", caller),
		zap.String("foreign_recipient", req.ForeignRecipient),
		zap.String("amount", req.Amount),
	)
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil, zap.String("request_id", resp.ID))
	}()
	return ls.svc.RequestSwap(ctx, caller, req)
}

func (ls *logService) GetRequest(ctx context.Context, id string) (resp *htlc.RequestStatus, err error) {
	done := ls.track("GetRequest", zap.String("request_id", id))
	defer func() { done(err) }()
	return ls.svc.GetRequest(ctx, id)
}

func (ls *logService) ListRequests(ctx context.Context, account string, page Page) (resp *RequestList, err error) {
	done := ls.track("ListRequests", zap.String("account", account), zap.Int("offset", page.Offset), zap.Int("limit", page.Limit))
	defer func() { done(err) }()
	return ls.svc.ListRequests(ctx, account, page)
}

func (ls *logService) CompleteRequest(ctx context.Context, caller, id string, req *CompleteRequestRequest) (resp *PayoutResponse, err error) {
	done := ls.track("CompleteRequest",
		zap.String("caller", caller),
		zap.String("request_id", id),
		zap.String("recipient", req.Recipient),
		zap.String("secret", redactSecret(req.Secret)),
	)
	defer func() { done(err, payoutFields(resp)...) }()
	return ls.svc.CompleteRequest(ctx, caller, id, req)
}

func (ls *logService) RefundRequest(ctx context.Context, id string) (resp *PayoutResponse, err error) {
	done := ls.track("RefundRequest", zap.String("request_id", id))
	defer func() { done(err, payoutFields(resp)...) }()
	return ls.svc.RefundRequest(ctx, id)
}

func (ls *logService) RefundExpiredRequests(ctx context.Context, caller string, req *RefundExpiredRequest) (resp *BatchRefundResponse, err error) {
	done := ls.track("RefundExpiredRequests", zap.String("caller", caller), zap.Int("limit", req.Limit))
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil, zap.Int("refunded", len(resp.Refunded)))
	}()
	return ls.svc.RefundExpiredRequests(ctx, caller, req)
}

func (ls *logService) VerifySecret(ctx context.Context, req *VerifySecretRequest) (resp *VerifyResponse, err error) {
	done := ls.track("VerifySecret", zap.String("commitment", req.Commitment))
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil, zap.Bool("valid", resp.Valid))
	}()
	return ls.svc.VerifySecret(ctx, req)
}

func (ls *logService) CheckSecret(ctx context.Context, req *CheckSecretRequest) (resp *VerifyResponse, err error) {
	done := ls.track("CheckSecret", zap.String("id", req.ID))
	defer func() {
		if err != nil {
			done(err)
			return
		}
		done(nil, zap.Bool("valid", resp.Valid))
	}()
	return ls.svc.CheckSecret(ctx, req)
}

func (ls *logService) Owner(ctx context.Context) (*OwnerResponse, error) {
	return ls.svc.Owner(ctx)
}

func (ls *logService) Stats(ctx context.Context) (*htlc.Stats, error) {
	return ls.svc.Stats(ctx)
}

func (ls *logService) GetResolver(ctx context.Context, account string) (*ResolverResponse, error) {
	return ls.svc.GetResolver(ctx, account)
}

func (ls *logService) SetResolver(ctx context.Context, caller, account string, req *SetResolverRequest) (resp *ResolverResponse, err error) {
	done := ls.track("SetResolver",
		zap.String("caller", caller),
		zap.String("account", account),
		zap.Bool("enabled", req.Enabled),
	)
	defer func() { done(err) }()
	return ls.svc.SetResolver(ctx, caller, account, req)
}

func (ls *logService) Pause(ctx context.Context, caller string) (resp *PauseResponse, err error) {
	done := ls.track("Pause", zap.String("caller", caller))
	defer func() { done(err) }()
	return ls.svc.Pause(ctx, caller)
}

func (ls *logService) Unpause(ctx context.Context, caller string) (resp *PauseResponse, err error) {
	done := ls.track("Unpause", zap.String("caller", caller))
	defer func() { done(err) }()
	return ls.svc.Unpause(ctx, caller)
}

func reasonOf(err error) string {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) && svcErr.Reason != "" {
		return svcErr.Reason
	}
	return string(htlc.KindOf(err))
}

func payoutFields(resp *PayoutResponse) []zap.Field {
	if resp == nil {
		return nil
	}
	return []zap.Field{
		zap.String("recipient", resp.Recipient),
		zap.String("amount", resp.Amount.String()),
		zap.String("transfer_status", resp.TransferStatus),
	}
}

// redactSecret keeps a short prefix and the length of a hex secret.
// Preimages unlock value and must not reach the logs.
func redactSecret(secret string) string {
	if secret == "" {
		return "<empty>"
	}
	if len(secret) > secretDisplaySize {
		return fmt.Sprintf("%s... (%d chars)", secret[:4], len(secret))
	}
	return fmt.Sprintf("<%d chars>", len(secret))
}
