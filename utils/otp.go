package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/go-redis/redis/v8"
)

// GenerateNumericOTP generates a secure random numeric OTP of the given length.
func GenerateNumericOTP(length int) (string, error) {
	const digits = "0123456789"
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		code[i] = digits[n.Int64()]
	}
	return string(code), nil
}

// StoreLoginOTP stores an OTP for the phone number with the standard TTL.
func StoreLoginOTP(ctx context.Context, phone, code string) error {
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}
	key := OTPKeyPrefix + phone
	if err := client.Set(ctx, key, code, OTPTTL).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// Sentinel errors for OTP verification.
var (
	ErrOTPNotFound = fmt.Errorf("OTP not found or expired")
	ErrOTPMismatch = fmt.Errorf("OTP does not match")
)

// VerifyLoginOTP compares the provided OTP with the stored one and deletes it
// on success.
func VerifyLoginOTP(ctx context.Context, phone, provided string) error {
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}
	key := OTPKeyPrefix + phone

	stored, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrOTPNotFound
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if stored != provided {
		return ErrOTPMismatch
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Sugar().Warnf("Failed to delete OTP after verification: %v", err)
	}
	return nil
}
