// Package auth implements account authentication for the hub.
//
// # Flows
//
// Customers register and log in with email one-time codes: a request
// endpoint mails a 6-digit code, a verify endpoint exchanges it for a
// session. Administrators log in with email and password. Sessions are
// signed JWTs, returned in the response body and mirrored into an HTTP-only
// cookie.
//
// # Codes
//
// Codes are generated from crypto/rand and stored only as bcrypt hashes.
// Each code expires after a configured TTL, burns out after too many wrong
// attempts, and a resend throttle limits how often a fresh one can be
// requested. All verification failures surface as the same error so callers
// cannot distinguish a wrong code from an expired one.
package auth
