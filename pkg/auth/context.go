package auth

import (
	"context"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyAccount is the context key for the authenticated home-ledger account
	ContextKeyAccount contextKey = "account"
)

// WithAccount adds the caller account to the context
func WithAccount(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, ContextKeyAccount, account)
}

// AccountFromContext retrieves the caller account from the context
func AccountFromContext(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(ContextKeyAccount).(string)
	return account, ok && account != ""
}
