package signature

import (
	"crypto/sha256" // Hashing of the canonical payload
	"crypto/subtle" // Constant-time token comparison
	"encoding/hex"  // Hex encoding of the digest
	"strconv"       // Canonical string forms of numeric fields

	"github.com/google/uuid" // Transaction identifiers
)

// Verifier recomputes and checks payment authenticity tokens.
// The secret is set once at startup and never mutated afterwards.
type Verifier struct {
	secret string // Shared secret appended to the canonical payload
}

// New returns a Verifier bound to the given shared secret
func New(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Token computes the authenticity token for a payment.
//
// The payment fields, excluding the token itself, are taken in
// lexicographic order of their wire names (account_id, amount,
// transaction_id, user_id), rendered in canonical form, concatenated,
// suffixed with the shared secret and hashed with SHA-256. The token is
// the lowercase hex encoding of the digest.
//
// Canonical forms: identifiers in base 10, amount via
// strconv.FormatFloat(f, 'f', -1, 64), transaction id as the RFC 4122
// string.
func (v *Verifier) Token(transactionID uuid.UUID, userID, accountID uint, amount float64) string {
	payload := strconv.FormatUint(uint64(accountID), 10) // account_id
	payload += strconv.FormatFloat(amount, 'f', -1, 64)  // amount
	payload += transactionID.String()                    // transaction_id
	payload += strconv.FormatUint(uint64(userID), 10)    // user_id
	payload += v.secret
	digest := sha256.Sum256([]byte(payload)) // Hash the canonical payload
	return hex.EncodeToString(digest[:])     // Hex-encode the digest
}

// Verify recomputes the token over the payment fields and compares it to
// the provided one in constant time. Any mismatch, including an empty or
// malformed provided token, yields false; Verify never panics.
func (v *Verifier) Verify(transactionID uuid.UUID, userID, accountID uint, amount float64, provided string) bool {
	expected := v.Token(transactionID, userID, accountID, amount)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
