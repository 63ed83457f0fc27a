//go:build ignore

// This script generates random secrets for session tokens and API keys.
// Run with: go run scripts/generate_keys.go [-api-keys N]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	apiKeyCount := flag.Int("api-keys", 1, "number of API keys to generate")
	flag.Parse()

	fmt.Println("=== Checkout Service Key Generator ===")
	fmt.Println()

	// HS256 signing key for session tokens (32 bytes = 256 bits)
	sessionSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating session secret: %v\n", err)
		os.Exit(1)
	}

	apiKeys := make([]string, 0, *apiKeyCount)
	for i := 0; i < *apiKeyCount; i++ {
		key, err := generateSecureKey(24)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
			os.Exit(1)
		}
		apiKeys = append(apiKeys, key)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Checkout sessions (history is kept per session token)")
	fmt.Printf("SESSION_SECRET_KEY=%s\n", sessionSecret)
	fmt.Println()
	fmt.Println("# API keys (only checked when AUTH_ENABLED=true)")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("API_KEYS=%s\n", strings.Join(apiKeys, ","))
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Rotating SESSION_SECRET_KEY invalidates every open session")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
}
