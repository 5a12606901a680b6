package password

import "errors"

// ErrEmptyPassword is returned by [Hasher.Hash] when the plaintext password
// is empty. Empty passwords are rejected before any hashing work is done.
var ErrEmptyPassword = errors.New("empty password provided")
