// Package models defines the domain types exchanged with the superheroes
// backend.
package models

// Superhero is a single gallery item as returned by the server. The server
// controls ordering; the client renders items as received.
type Superhero struct {
	ID        int64  `json:"id"`
	Superhero string `json:"superhero"`
	Image     string `json:"image"`
}

// Profile describes the account a session belongs to. Name may be empty in
// the server response; display code substitutes a placeholder.
type Profile struct {
	Name string `json:"name"`
}

// RegistrationForm carries all fields required to create an account.
type RegistrationForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

// IsComplete reports whether every required field is present.
func (f RegistrationForm) IsComplete() bool {
	return f.Username != "" && f.Email != "" && f.Password != "" &&
		f.Name != "" && f.Lastname != ""
}

// Reset clears all fields, including the password.
func (f *RegistrationForm) Reset() {
	*f = RegistrationForm{}
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
