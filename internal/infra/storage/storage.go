// Package storage implements the session persistence backends. Both
// implementations keep the session under the same fixed keys the original
// browser storage used; the token's expiry is not persisted separately, the
// session store re-derives it from the token itself at read time.
package storage

// Fixed storage keys. The key names are part of the storage contract and
// must not change: uloga is the backend's wire name for the role field.
const (
	keyToken    = "token"
	keyID       = "id"
	keyUsername = "username"
	keyRole     = "uloga"
	keyEmail    = "email"
)
