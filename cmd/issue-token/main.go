// Command issue-token prints a bearer token for the protected intake API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"intake-agent/internal/auth/processor"
	"intake-agent/internal/observability"

	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("subject", "", "identity the token is issued to")
	flag.Parse()

	if os.Getenv("GO_ENV") != "production" {
		_ = godotenv.Load("env.local")
	}

	if *subject == "" {
		log.Fatal("-subject is required")
	}

	logger := observability.NewLogger()
	authProc, err := processor.New(os.Getenv("JWT_SECRET"), logger)
	if err != nil {
		log.Fatalf("failed to create auth processor: %v", err)
	}

	token, err := authProc.GenerateJWTToken(context.Background(), *subject)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
