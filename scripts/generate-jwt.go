//go:build ignore

// This script generates an HS256 bearer token for the escrow API when
// auth.hmac_secret is configured.
// Run with: go run scripts/generate-jwt.go -account alice -secret <hmac_secret>

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	account := flag.String("account", "", "Account placed in the sub claim")
	secret := flag.String("secret", os.Getenv("HTLC_JWT_SECRET"), "HMAC secret (defaults to $HTLC_JWT_SECRET)")
	issuer := flag.String("issuer", "", "Optional iss claim")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	if *account == "" || *secret == "" {
		fmt.Fprintln(os.Stderr, "both -account and -secret are required")
		os.Exit(1)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   *account,
		Issuer:    *issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(*ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
