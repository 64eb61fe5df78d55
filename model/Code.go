package model

import "time"

const (
	// CodeKeyPrefix namespaces verification codes in the shared store so
	// they never collide with other tenants of the same Redis instance.
	CodeKeyPrefix = "verify_code_"

	// CodeTTL is how long an issued code stays valid.
	CodeTTL = 300 * time.Second

	// CodeLength is the fixed width of a generated code.
	CodeLength = 6
)

// VerificationCode is the value object persisted (by value only) in the
// expiring store. It is never stored locally; the store's TTL is the single
// source of truth for expiry.
type VerificationCode struct {
	Code     string
	OwnerKey string
	TTL      time.Duration
}

// OwnerKey derives the store key for a destination email.
func OwnerKey(email string) string {
	return CodeKeyPrefix + email
}

// NewVerificationCode builds the value object for one issuance.
func NewVerificationCode(email, code string) VerificationCode {
	return VerificationCode{
		Code:     code,
		OwnerKey: OwnerKey(email),
		TTL:      CodeTTL,
	}
}
