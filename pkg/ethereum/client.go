// Package ethereum implements a home ledger that pays out native value on an
// EVM chain from a vault key.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/htlc-escrow/pkg/config"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

const (
	defaultGasLimit       = 21000
	defaultReceiptPolling = 2 * time.Second
	weiDecimals           = 18
)

// ErrTransactionReverted is returned when a payout transaction is mined with a failed status.
var ErrTransactionReverted = errors.New("payout transaction reverted")

// Backend is the subset of the JSON-RPC client the ledger needs.
// *ethclient.Client satisfies it.
type Backend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Ledger sends native value from the vault address to payout recipients.
type Ledger struct {
	backend     Backend
	closer      func()
	chainID     *big.Int
	privateKey  *ecdsa.PrivateKey
	address     common.Address
	gasLimit    uint64
	maxGasPrice *big.Int
	polling     time.Duration
	logger      *zap.Logger

	// sendMu serializes nonce assignment and broadcast.
	sendMu sync.Mutex
}

// NewLedger dials the configured RPC endpoint.
func NewLedger(cfg *config.EVMLedgerConfig, logger *zap.Logger) (*Ledger, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	l, err := NewLedgerWithBackend(client, cfg, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	l.closer = client.Close

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("vault_address", l.address.Hex()))
	return l, nil
}

// NewLedgerWithBackend builds a ledger over an existing backend.
func NewLedgerWithBackend(backend Backend, cfg *config.EVMLedgerConfig, logger *zap.Logger) (*Ledger, error) {
	if cfg.ChainID <= 0 {
		return nil, fmt.Errorf("invalid chain id %d", cfg.ChainID)
	}
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.VaultPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	var maxGasPrice *big.Int
	if cfg.MaxGasPrice != "" {
		v, ok := new(big.Int).SetString(cfg.MaxGasPrice, 10)
		if !ok || v.Sign() <= 0 {
			return nil, fmt.Errorf("invalid max gas price %q", cfg.MaxGasPrice)
		}
		maxGasPrice = v
	}

	gasLimit := cfg.GasLimit
	if gasLimit == 0 {
		gasLimit = defaultGasLimit
	}
	polling := cfg.ReceiptPolling
	if polling <= 0 {
		polling = defaultReceiptPolling
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Ledger{
		backend:     backend,
		chainID:     big.NewInt(cfg.ChainID),
		privateKey:  privateKey,
		address:     crypto.PubkeyToAddress(privateKey.PublicKey),
		gasLimit:    gasLimit,
		maxGasPrice: maxGasPrice,
		polling:     polling,
		logger:      logger,
	}, nil
}

// Address is the vault address payouts are sent from.
func (l *Ledger) Address() common.Address { return l.address }

// Close closes the RPC client
func (l *Ledger) Close() {
	if l.closer != nil {
		l.closer()
	}
}

// Transfer sends amount wei to the hex address to and waits for the receipt.
func (l *Ledger) Transfer(ctx context.Context, to string, amount htlc.Amount) error {
	if !common.IsHexAddress(to) {
		return fmt.Errorf("%w: %q is not an Ethereum address", htlc.ErrInvalidAccount, to)
	}
	recipient := common.HexToAddress(to)

	tx, err := l.send(ctx, recipient, amount.Big())
	if err != nil {
		return err
	}

	l.logger.Info("Payout transaction sent",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("to", recipient.Hex()),
		zap.String("amount_eth", decimal.NewFromBigInt(tx.Value(), -weiDecimals).String()),
		zap.Uint64("nonce", tx.Nonce()))

	receipt, err := l.waitReceipt(ctx, tx.Hash())
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash().Hex())
	}
	return nil
}

func (l *Ledger) send(ctx context.Context, to common.Address, value *big.Int) (*types.Transaction, error) {
	l.sendMu.Lock()
	defer l.sendMu.Unlock()

	nonce, err := l.backend.PendingNonceAt(ctx, l.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	gasPrice, err := l.gasPrice(ctx)
	if err != nil {
		return nil, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      l.gasLimit,
		GasPrice: gasPrice,
	})
	signed, err := types.SignTx(tx, types.NewEIP155Signer(l.chainID), l.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := l.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}
	return signed, nil
}

func (l *Ledger) gasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := l.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}
	if l.maxGasPrice != nil && gasPrice.Cmp(l.maxGasPrice) > 0 {
		l.logger.Warn("Suggested gas price exceeds maximum",
			zap.String("suggested", gasPrice.String()),
			zap.String("max", l.maxGasPrice.String()))
		return new(big.Int).Set(l.maxGasPrice), nil
	}
	return gasPrice, nil
}

func (l *Ledger) waitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(l.polling)
	defer ticker.Stop()

	for {
		receipt, err := l.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get receipt for %s: %w", hash.Hex(), err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("payout %s not mined: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}
