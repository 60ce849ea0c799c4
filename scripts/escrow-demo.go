//go:build ignore

// escrow-demo.go - walks a local escrow server through a full swap.
//
// Expects a server started with auth disabled (caller taken from X-Account)
// and the memory ledger seeded for the sender, e.g.
//
//	ledger:
//	  memory:
//	    balances: { alice: "1000" }
//
// Test Flow:
// 1. Wait for the server to become ready
// 2. alice locks an escrow for bob behind a fresh secret
// 3. bob claims with the secret
// 4. alice registers a cross-chain request
// 5. Print the event feed
//
// Usage:
//
//	go run scripts/escrow-demo.go [-api http://localhost:8080]
package main

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
)

var apiURL = flag.String("api", "http://localhost:8080", "Escrow server base URL")

func main() {
	flag.Parse()

	if err := run(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
	printSuccess("demo completed")
}

func run() error {
	printHeader("Escrow demo")

	printStep("Waiting for %s/ready", *apiURL)
	if err := waitForEndpoint(*apiURL+"/ready", 30, time.Second); err != nil {
		return fmt.Errorf("server not ready: %w", err)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return err
	}
	sum := sha256.Sum256(secret)
	commitment := hex.EncodeToString(sum[:])

	printStep("alice locks 100 for bob")
	var escrow struct {
		ID       string `json:"id"`
		State    string `json:"state"`
		Deadline string `json:"deadline"`
	}
	if err := call(http.MethodPost, "/api/v1/escrows", "alice", map[string]any{
		"receiver":         "bob",
		"amount":           "100",
		"commitment":       commitment,
		"timelock_seconds": 3600,
	}, &escrow); err != nil {
		return err
	}
	printInfo("escrow %s (%s) expires %s", truncate(escrow.ID, 16), escrow.State, escrow.Deadline)

	printStep("bob claims with the secret")
	var payout struct {
		Recipient      string `json:"recipient"`
		Amount         string `json:"amount"`
		TransferStatus string `json:"transfer_status"`
	}
	if err := call(http.MethodPost, "/api/v1/escrows/"+escrow.ID+"/claim", "bob", map[string]any{
		"secret": hex.EncodeToString(secret),
	}, &payout); err != nil {
		return err
	}
	printInfo("paid %s to %s: %s", payout.Amount, payout.Recipient, payout.TransferStatus)

	printStep("alice requests a swap to Ethereum")
	var request struct {
		ID string `json:"id"`
	}
	if err := call(http.MethodPost, "/api/v1/requests", "alice", map[string]any{
		"foreign_recipient":       "0x79B3ff7ca5D5eeeF4d60bcEcD5C1294e0F328431",
		"amount":                  "50",
		"foreign_token_reference": "0x0000000000000000000000000000000000000000",
		"commitment":              commitment,
		"timelock_seconds":        600,
	}, &request); err != nil {
		return err
	}
	printInfo("request %s pending", truncate(request.ID, 16))

	printStep("Event feed")
	var feed struct {
		Events []struct {
			Sequence  int64  `json:"sequence"`
			Type      string `json:"type"`
			SubjectID string `json:"subject_id"`
		} `json:"events"`
	}
	if err := call(http.MethodGet, "/api/v1/events?limit=20", "", nil, &feed); err != nil {
		return err
	}
	for _, ev := range feed.Events {
		printInfo("#%d %-20s %s", ev.Sequence, ev.Type, truncate(ev.SubjectID, 16))
	}
	return nil
}

func call(method, path, account string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, *apiURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if account != "" {
		req.Header.Set("X-Account", account)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, string(raw))
	}
	return json.Unmarshal(raw, out)
}

func waitForEndpoint(url string, maxAttempts int, interval time.Duration) error {
	for i := 0; i < maxAttempts; i++ {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(interval)
	}
	return fmt.Errorf("timeout after %d attempts", maxAttempts)
}

func printHeader(msg string) {
	fmt.Printf("\n%s══════════════════════════════════════════════════════════════════════%s\n", colorBlue, colorReset)
	fmt.Printf("%s  %s%s\n", colorBlue, msg, colorReset)
	fmt.Printf("%s══════════════════════════════════════════════════════════════════════%s\n", colorBlue, colorReset)
}

func printStep(format string, args ...interface{}) {
	fmt.Printf("%s>>> %s%s\n", colorCyan, fmt.Sprintf(format, args...), colorReset)
}

func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, fmt.Sprintf(format, args...), colorReset)
}

func printError(format string, args ...interface{}) {
	fmt.Printf("%s✗ %s%s\n", colorRed, fmt.Sprintf(format, args...), colorReset)
}

func printInfo(format string, args ...interface{}) {
	fmt.Printf("    %s\n", fmt.Sprintf(format, args...))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
