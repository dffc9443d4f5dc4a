package utils

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateResetToken returns a ULID string used as a password-reset token.
// ULIDs are sortable by creation time, which makes expired-token cleanup a
// simple range delete.
func GenerateResetToken() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// GenerateNumericCode returns an n-digit numeric code for MFA emails.
func GenerateNumericCode(n int) string {
	const digits = "0123456789"
	code := make([]byte, n)
	for i := range code {
		code[i] = digits[rand.Intn(len(digits))]
	}
	return string(code)
}
