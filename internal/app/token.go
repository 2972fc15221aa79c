package app

import (
	"context"
	"fmt"

	"github.com/handykit/handykit/internal/config"
	"github.com/handykit/handykit/internal/logger"
	"github.com/handykit/handykit/pkg/token"
)

// ExecuteTokenUUIDCommand generates and prints a random version 4 UUID.
func ExecuteTokenUUIDCommand(ctx context.Context) {
	generated, err := token.UUIDv4()
	if err != nil {
		logger.Fatalf(ctx, "Failed to generate UUID: %v", err)
		return
	}

	fmt.Println(generated)
}

// ExecuteTokenStringCommand generates and prints a random string using the
// configured length and charset.
func ExecuteTokenStringCommand(ctx context.Context, cfg *config.Config) {
	generated, err := token.RandomString(cfg.TokenLength, cfg.ParsedTokenCharset)
	if err != nil {
		logger.Fatalf(ctx, "Failed to generate random string: %v", err)
		return
	}

	fmt.Println(generated)
}

// ExecuteTokenPasswordCommand hashes a password with argon2id and prints
// the encoded hash.
func ExecuteTokenPasswordCommand(ctx context.Context, password string) {
	encoded, err := token.HashPassword(password)
	if err != nil {
		logger.Fatalf(ctx, "Failed to hash password: %v", err)
		return
	}

	fmt.Println(encoded)
}
