// Package models defines client-side data models used by the jobseekr CLI.
package models

// User is the identity record returned by the account API. It is immutable
// from the client's point of view; a fresh value replaces the old one on every
// server-confirmed refresh.
type User struct {
	// Username is the unique account name (3–64 characters, server-enforced).
	Username string `json:"username"`

	// FirstName is the user's given name.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`

	// Title is the user's professional headline (e.g. "Backend Engineer").
	Title string `json:"title"`

	// ProfilePicture is an opaque reference to the avatar; may be empty.
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// DisplayName returns "First Last" falling back to the username when the
// name fields are empty.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}
