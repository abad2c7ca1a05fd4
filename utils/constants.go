package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// OTPKeyPrefix is the prefix used for Redis OTP keys.
const OTPKeyPrefix = "otp:"

// OTPTTL is how long an issued OTP stays valid.
const OTPTTL = 5 * time.Minute
