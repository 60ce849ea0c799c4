// Package service exposes the escrow engine to API callers: it validates
// request DTOs, resolves callers and deadlines, waits briefly for payouts and
// translates domain errors into categorized service errors.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/htlc-escrow/pkg/app/errors"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
)

const reasonInvalidRequest = "InvalidRequest"

// Engine is the subset of *engine.Engine used by the service.
type Engine interface {
	Now() time.Time
	CreateEscrow(ctx context.Context, p engine.CreateEscrowParams) (htlc.Escrow, error)
	Claim(ctx context.Context, id string, secret []byte, claimer string) (*engine.Payout, error)
	Refund(ctx context.Context, id, refunder string) (*engine.Payout, error)
	EscrowStatus(id string) (htlc.EscrowStatus, error)
	ListEscrowsByAccount(account string, offset, limit int) []htlc.Escrow
	ListEscrows(offset, limit int) []htlc.Escrow

	CreateOrder(ctx context.Context, p engine.CreateOrderParams) (htlc.Order, error)
	CreateFill(ctx context.Context, p engine.CreateFillParams) (htlc.Fill, error)
	CompleteFill(ctx context.Context, fillID string, secret []byte, caller, foreignReference string) (*engine.Payout, error)
	RefundFill(ctx context.Context, fillID, refunder string) (*engine.Payout, error)
	GetOrder(id string) (htlc.Order, error)
	FillStatus(id string) (htlc.FillStatus, error)
	Progress(orderID string) (htlc.OrderProgress, error)
	ListFills(orderID string) ([]htlc.Fill, error)
	ListOrdersByAccount(account string, offset, limit int) []htlc.Order
	ListOrders(offset, limit int) []htlc.Order
	ListFillsByAccount(account string, offset, limit int) []htlc.Fill

	RequestSwap(ctx context.Context, p engine.RequestParams) (htlc.CrossChainRequest, error)
	CompleteRequest(ctx context.Context, id string, secret []byte, recipient, caller string) (*engine.Payout, error)
	RefundRequest(ctx context.Context, id string) (*engine.Payout, error)
	RefundExpiredRequests(ctx context.Context, caller string, limit int) ([]*engine.Payout, error)
	RequestStatus(id string) (htlc.RequestStatus, error)
	ListRequestsByAccount(account string, offset, limit int) []htlc.CrossChainRequest
	ListRequests(offset, limit int) []htlc.CrossChainRequest

	VerifySecret(secret []byte, commitment htlc.Commitment) bool
	CheckSecret(id string, secret []byte) bool

	Owner() string
	SetAuthorizedResolver(ctx context.Context, caller, account string, enabled bool) error
	IsAuthorizedResolver(account string) bool
	Pause(ctx context.Context, caller string) error
	Unpause(ctx context.Context, caller string) error
	Paused() bool
	Stats() htlc.Stats
}

// Service defines the escrow API business logic. caller is the authenticated
// account making the call.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreateEscrow(ctx context.Context, caller string, req *CreateEscrowRequest) (*htlc.EscrowStatus, error)
	GetEscrow(ctx context.Context, id string) (*htlc.EscrowStatus, error)
	ListEscrows(ctx context.Context, account string, page Page) (*EscrowList, error)
	ClaimEscrow(ctx context.Context, caller, id string, req *SecretRequest) (*PayoutResponse, error)
	RefundEscrow(ctx context.Context, caller, id string) (*PayoutResponse, error)

	CreateOrder(ctx context.Context, caller string, req *CreateOrderRequest) (*htlc.Order, error)
	GetOrder(ctx context.Context, id string) (*htlc.Order, error)
	GetProgress(ctx context.Context, id string) (*htlc.OrderProgress, error)
	ListOrders(ctx context.Context, account string, page Page) (*OrderList, error)
	CreateFill(ctx context.Context, caller, orderID string, req *CreateFillRequest) (*htlc.FillStatus, error)
	GetFill(ctx context.Context, id string) (*htlc.FillStatus, error)
	ListOrderFills(ctx context.Context, orderID string) (*FillList, error)
	ListFills(ctx context.Context, account string, page Page) (*FillList, error)
	CompleteFill(ctx context.Context, caller, id string, req *CompleteFillRequest) (*PayoutResponse, error)
	RefundFill(ctx context.Context, caller, id string) (*PayoutResponse, error)

	RequestSwap(ctx context.Context, caller string, req *SwapRequest) (*htlc.RequestStatus, error)
	GetRequest(ctx context.Context, id string) (*htlc.RequestStatus, error)
	ListRequests(ctx context.Context, account string, page Page) (*RequestList, error)
	CompleteRequest(ctx context.Context, caller, id string, req *CompleteRequestRequest) (*PayoutResponse, error)
	RefundRequest(ctx context.Context, id string) (*PayoutResponse, error)
	RefundExpiredRequests(ctx context.Context, caller string, req *RefundExpiredRequest) (*BatchRefundResponse, error)

	VerifySecret(ctx context.Context, req *VerifySecretRequest) (*VerifyResponse, error)
	CheckSecret(ctx context.Context, req *CheckSecretRequest) (*VerifyResponse, error)

	Owner(ctx context.Context) (*OwnerResponse, error)
	Stats(ctx context.Context) (*htlc.Stats, error)
	GetResolver(ctx context.Context, account string) (*ResolverResponse, error)
	SetResolver(ctx context.Context, caller, account string, req *SetResolverRequest) (*ResolverResponse, error)
	Pause(ctx context.Context, caller string) (*PauseResponse, error)
	Unpause(ctx context.Context, caller string) (*PauseResponse, error)
}

type htlcService struct {
	engine         Engine
	validate       *validator.Validate
	settlementWait time.Duration
	logger         *zap.Logger
}

// NewService creates the escrow service. Payout responses wait up to
// settlementWait for the ledger before reporting a pending transfer.
func NewService(eng Engine, settlementWait time.Duration, logger *zap.Logger) Service {
	return &htlcService{
		engine:         eng,
		validate:       validator.New(),
		settlementWait: settlementWait,
		logger:         logger,
	}
}

func (s *htlcService) CreateEscrow(ctx context.Context, caller string, req *CreateEscrowRequest) (*htlc.EscrowStatus, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	amount, err := htlc.ParseAmount(req.Amount)
	if err != nil {
		return nil, toServiceError(err)
	}
	commitment, err := htlc.ParseCommitment(req.Commitment)
	if err != nil {
		return nil, toServiceError(err)
	}

	esc, err := s.engine.CreateEscrow(ctx, engine.CreateEscrowParams{
		Sender:           caller,
		Receiver:         req.Receiver,
		Amount:           amount,
		Commitment:       commitment,
		Deadline:         req.Deadline.resolve(s.engine.Now()),
		ForeignReference: req.ForeignReference,
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	status := htlc.NewEscrowStatus(esc, s.engine.Now())
	return &status, nil
}

func (s *htlcService) GetEscrow(_ context.Context, id string) (*htlc.EscrowStatus, error) {
	status, err := s.engine.EscrowStatus(id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &status, nil
}

func (s *htlcService) ListEscrows(_ context.Context, account string, page Page) (*EscrowList, error) {
	if err := s.check(&page); err != nil {
		return nil, err
	}
	var rows []htlc.Escrow
	if account != "" {
		rows = s.engine.ListEscrowsByAccount(account, page.Offset, page.Limit)
	} else {
		rows = s.engine.ListEscrows(page.Offset, page.Limit)
	}
	now := s.engine.Now()
	out := &EscrowList{Escrows: make([]htlc.EscrowStatus, 0, len(rows))}
	for _, row := range rows {
		out.Escrows = append(out.Escrows, htlc.NewEscrowStatus(row, now))
	}
	return out, nil
}

func (s *htlcService) ClaimEscrow(ctx context.Context, caller, id string, req *SecretRequest) (*PayoutResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return nil, toServiceError(err)
	}
	p, err := s.engine.Claim(ctx, id, secret, caller)
	if err != nil {
		return nil, toServiceError(err)
	}
	return s.settle(ctx, p), nil
}

func (s *htlcService) RefundEscrow(ctx context.Context, caller, id string) (*PayoutResponse, error) {
	p, err := s.engine.Refund(ctx, id, caller)
	if err != nil {
		return nil, toServiceError(err)
	}
	return s.settle(ctx, p), nil
}

func (s *htlcService) CreateOrder(ctx context.Context, caller string, req *CreateOrderRequest) (*htlc.Order, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	total, err := htlc.ParseAmount(req.TotalAmount)
	if err != nil {
		return nil, toServiceError(err)
	}
	order, err := s.engine.CreateOrder(ctx, engine.CreateOrderParams{
		Sender:                caller,
		Receiver:              req.Receiver,
		TotalAmount:           total,
		Deadline:              req.Deadline.resolve(s.engine.Now()),
		ForeignTokenReference: req.ForeignTokenReference,
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	return &order, nil
}

func (s *htlcService) GetOrder(_ context.Context, id string) (*htlc.Order, error) {
	order, err := s.engine.GetOrder(id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &order, nil
}

func (s *htlcService) GetProgress(_ context.Context, id string) (*htlc.OrderProgress, error) {
	progress, err := s.engine.Progress(id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &progress, nil
}

func (s *htlcService) ListOrders(_ context.Context, account string, page Page) (*OrderList, error) {
	if err := s.check(&page); err != nil {
		return nil, err
	}
	var rows []htlc.Order
	if account != "" {
		rows = s.engine.ListOrdersByAccount(account, page.Offset, page.Limit)
	} else {
		rows = s.engine.ListOrders(page.Offset, page.Limit)
	}
	if rows == nil {
		rows = []htlc.Order{}
	}
	return &OrderList{Orders: rows}, nil
}

func (s *htlcService) CreateFill(ctx context.Context, caller, orderID string, req *CreateFillRequest) (*htlc.FillStatus, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	fillAmount, err := htlc.ParseAmount(req.FillAmount)
	if err != nil {
		return nil, toServiceError(err)
	}
	attached, err := htlc.ParseAmount(req.Attached)
	if err != nil {
		return nil, toServiceError(err)
	}
	commitment, err := htlc.ParseCommitment(req.Commitment)
	if err != nil {
		return nil, toServiceError(err)
	}
	fill, err := s.engine.CreateFill(ctx, engine.CreateFillParams{
		OrderID:    orderID,
		Sender:     caller,
		Commitment: commitment,
		FillAmount: fillAmount,
		Attached:   attached,
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	status := htlc.NewFillStatus(fill, s.engine.Now())
	return &status, nil
}

func (s *htlcService) GetFill(_ context.Context, id string) (*htlc.FillStatus, error) {
	status, err := s.engine.FillStatus(id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &status, nil
}

func (s *htlcService) ListOrderFills(_ context.Context, orderID string) (*FillList, error) {
	fills, err := s.engine.ListFills(orderID)
	if err != nil {
		return nil, toServiceError(err)
	}
	return s.fillList(fills), nil
}

func (s *htlcService) ListFills(_ context.Context, account string, page Page) (*FillList, error) {
	if err := s.check(&page); err != nil {
		return nil, err
	}
	if account == "" {
		return nil, apperrors.WithReason(
			apperrors.BadRequestError(nil, "account is required to list fills"), reasonInvalidRequest)
	}
	return s.fillList(s.engine.ListFillsByAccount(account, page.Offset, page.Limit)), nil
}

func (s *htlcService) fillList(fills []htlc.Fill) *FillList {
	now := s.engine.Now()
	out := &FillList{Fills: make([]htlc.FillStatus, 0, len(fills))}
	for _, f := range fills {
		out.Fills = append(out.Fills, htlc.NewFillStatus(f, now))
	}
	return out
}

func (s *htlcService) CompleteFill(ctx context.Context, caller, id string, req *CompleteFillRequest) (*PayoutResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return nil, toServiceError(err)
	}
	p, err := s.engine.CompleteFill(ctx, id, secret, caller, req.ForeignReference)
	if err != nil {
		return nil, toServiceError(err)
	}
	return s.settle(ctx, p), nil
}

func (s *htlcService) RefundFill(ctx context.Context, caller, id string) (*PayoutResponse, error) {
	p, err := s.engine.RefundFill(ctx, id, caller)
	if err != nil {
		return nil, toServiceError(err)
	}
	return s.settle(ctx, p), nil
}

func (s *htlcService) RequestSwap(ctx context.Context, caller string, req *SwapRequest) (*htlc.RequestStatus, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	amount, err := htlc.ParseAmount(req.Amount)
	if err != nil {
		return nil, toServiceError(err)
	}
	commitment, err := htlc.ParseCommitment(req.Commitment)
	if err != nil {
		return nil, toServiceError(err)
	}
	created, err := s.engine.RequestSwap(ctx, engine.RequestParams{
		Initiator:             caller,
		ForeignRecipient:      req.ForeignRecipient,
		Amount:                amount,
		ForeignTokenReference: req.ForeignTokenReference,
		Commitment:            commitment,
		Deadline:              req.Deadline.resolve(s.engine.Now()),
		AuxiliaryParams:       req.AuxiliaryParams,
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	status := htlc.NewRequestStatus(created, s.engine.Now())
	return &status, nil
}

func (s *htlcService) GetRequest(_ context.Context, id string) (*htlc.RequestStatus, error) {
	status, err := s.engine.RequestStatus(id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &status, nil
}

func (s *htlcService) ListRequests(_ context.Context, account string, page Page) (*RequestList, error) {
	if err := s.check(&page); err != nil {
		return nil, err
	}
	var rows []htlc.CrossChainRequest
	if account != "" {
		rows = s.engine.ListRequestsByAccount(account, page.Offset, page.Limit)
	} else {
		rows = s.engine.ListRequests(page.Offset, page.Limit)
	}
	now := s.engine.Now()
	out := &RequestList{Requests: make([]htlc.RequestStatus, 0, len(rows))}
	for _, row := range rows {
		out.Requests = append(out.Requests, htlc.NewRequestStatus(row, now))
	}
	return out, nil
}

func (s *htlcService) CompleteRequest(ctx context.Context, caller, id string, req *CompleteRequestRequest) (*PayoutResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return nil, toServiceError(err)
	}
	p, err := s.engine.CompleteRequest(ctx, id, secret, req.Recipient, caller)
	if err != nil {
		return nil, toServiceError(err)
	}
	return s.settle(ctx, p), nil
}

func (s *htlcService) RefundRequest(ctx context.Context, id string) (*PayoutResponse, error) {
	p, err := s.engine.RefundRequest(ctx, id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return s.settle(ctx, p), nil
}

func (s *htlcService) RefundExpiredRequests(ctx context.Context, caller string, req *RefundExpiredRequest) (*BatchRefundResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	payouts, err := s.engine.RefundExpiredRequests(ctx, caller, req.Limit)
	if err != nil {
		return nil, toServiceError(err)
	}
	out := &BatchRefundResponse{Refunded: make([]PayoutResponse, 0, len(payouts))}
	for _, p := range payouts {
		out.Refunded = append(out.Refunded, *s.settle(ctx, p))
	}
	return out, nil
}

func (s *htlcService) VerifySecret(_ context.Context, req *VerifySecretRequest) (*VerifyResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return nil, toServiceError(err)
	}
	commitment, err := htlc.ParseCommitment(req.Commitment)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &VerifyResponse{Valid: s.engine.VerifySecret(secret, commitment)}, nil
}

func (s *htlcService) CheckSecret(_ context.Context, req *CheckSecretRequest) (*VerifyResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &VerifyResponse{Valid: s.engine.CheckSecret(req.ID, secret)}, nil
}

func (s *htlcService) Owner(context.Context) (*OwnerResponse, error) {
	return &OwnerResponse{Owner: s.engine.Owner()}, nil
}

func (s *htlcService) Stats(context.Context) (*htlc.Stats, error) {
	stats := s.engine.Stats()
	return &stats, nil
}

func (s *htlcService) GetResolver(_ context.Context, account string) (*ResolverResponse, error) {
	return &ResolverResponse{Account: account, Authorized: s.engine.IsAuthorizedResolver(account)}, nil
}

func (s *htlcService) SetResolver(ctx context.Context, caller, account string, req *SetResolverRequest) (*ResolverResponse, error) {
	if err := s.engine.SetAuthorizedResolver(ctx, caller, account, req.Enabled); err != nil {
		return nil, toServiceError(err)
	}
	return &ResolverResponse{Account: account, Authorized: req.Enabled}, nil
}

func (s *htlcService) Pause(ctx context.Context, caller string) (*PauseResponse, error) {
	if err := s.engine.Pause(ctx, caller); err != nil {
		return nil, toServiceError(err)
	}
	return &PauseResponse{Paused: s.engine.Paused()}, nil
}

func (s *htlcService) Unpause(ctx context.Context, caller string) (*PauseResponse, error) {
	if err := s.engine.Unpause(ctx, caller); err != nil {
		return nil, toServiceError(err)
	}
	return &PauseResponse{Paused: s.engine.Paused()}, nil
}

// settle waits up to settlementWait for the transfer. The state change is
// already final, so a slow or failed transfer never turns into an error here.
func (s *htlcService) settle(ctx context.Context, p *engine.Payout) *PayoutResponse {
	if s.settlementWait > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, s.settlementWait)
		_ = p.Wait(waitCtx)
		cancel()
	}
	resp := &PayoutResponse{
		ID:             p.SubjectID,
		Kind:           string(p.Kind),
		Recipient:      p.Recipient,
		Amount:         p.Amount,
		TransferStatus: string(p.Status()),
	}
	if err := p.Err(); err != nil {
		resp.TransferError = err.Error()
		s.logger.Warn("Transfer failed after committed state change",
			zap.String("subject_id", p.SubjectID),
			zap.String("kind", string(p.Kind)),
			zap.Error(err),
		)
	}
	return resp
}

func (s *htlcService) check(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return apperrors.WithReason(apperrors.BadRequestError(err, validationMessage(err)), reasonInvalidRequest)
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("invalid request: field %s failed %s", fe.Field(), fe.Tag())
	}
	return "invalid request"
}

// toServiceError maps a domain error onto its API category and attaches the
// error kind as the reason.
func toServiceError(err error) error {
	if err == nil {
		return nil
	}
	kind := htlc.KindOf(err)
	var svcErr error
	switch kind {
	case htlc.KindNotFound:
		svcErr = apperrors.ResourceNotFoundError(err, err.Error())
	case htlc.KindAlreadyFinalized, htlc.KindConflict:
		svcErr = apperrors.ConflictError(err, err.Error())
	case htlc.KindExpired, htlc.KindNotYetExpired, htlc.KindUnauthorized:
		svcErr = apperrors.ForbiddenError(err, err.Error())
	case htlc.KindInvalidSecret, htlc.KindInvalidAmount, htlc.KindInvalidCommitment,
		htlc.KindInvalidForeignAddress, htlc.KindInvalidAccount:
		svcErr = apperrors.BadRequestError(err, err.Error())
	case htlc.KindConcurrentClaim, htlc.KindPaused:
		svcErr = apperrors.LockedError(err, err.Error())
	default:
		return apperrors.WithReason(apperrors.GeneralError(err), string(htlc.KindInternal))
	}
	return apperrors.WithReason(svcErr, string(kind))
}
