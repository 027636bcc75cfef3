package domain

// Identity is the decoded view of the session credential. It is always a pure
// re-derivation of the stored token; it never carries independent state.
type Identity struct {
	Username  string  `json:"username"`
	ID        int64   `json:"id"`
	Role      string  `json:"role"`
	PublicKey *string `json:"public_key"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == "admin"
}

// HasLinkedKey reports whether a public key is linked to the account.
func (i *Identity) HasLinkedKey() bool {
	return i != nil && i.PublicKey != nil && *i.PublicKey != ""
}
