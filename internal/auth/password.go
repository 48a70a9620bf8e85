package auth

import "encoding/base64"

// Password comparison accepts either a plain-text match or a match against
// the base64 encoding used by the legacy seed data. Neither path is a
// one-way hash; a real deployment needs bcrypt or similar. Kept as-is so
// the login contract stays compatible with existing stored credentials.

// HashPassword returns the reversible encoding stored for new accounts.
func HashPassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// VerifyPassword reports whether the supplied password matches the stored
// value via either comparison path.
func VerifyPassword(password, stored string) bool {
	if password == stored {
		return true
	}
	return HashPassword(password) == stored
}
