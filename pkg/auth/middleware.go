package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/htlc-escrow/pkg/app/errors"
	apphttp "github.com/chainsafe/htlc-escrow/pkg/app/http"
)

// AccountHeader carries the caller account when token auth is disabled.
const AccountHeader = "X-Account"

// Middleware resolves the caller account for every request. With a validator
// the account comes from the bearer token claim; without one it is read from
// the X-Account header. Requests without an identity pass through anonymously;
// handlers that need a caller reject them.
func Middleware(validator *JWTValidator, claim string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validator == nil {
				if account := strings.TrimSpace(r.Header.Get(AccountHeader)); account != "" {
					r = r.WithContext(WithAccount(r.Context(), account))
				}
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearer(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			account, err := validator.Account(token, claim)
			if err != nil {
				logger.Debug("Bearer token rejected", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
		})
	}
}

// RequireAccount returns the caller account or an Unauthorized service error.
func RequireAccount(r *http.Request) (string, error) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "caller identity required")
	}
	return account, nil
}

func extractBearer(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
