package domain

import "github.com/go-playground/validator/v10"

// emailValidator backs the email format check. The validator package is the
// same one the API layer uses for request DTOs, so both layers agree on
// what a well-formed address looks like.
var emailValidator = validator.New()

// User represents a registered user of the demo API.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Age is optional; zero means "not provided".
	Age int `json:"age,omitempty"`
}

// NewUser creates a User with the given attributes and no assigned ID.
// The store assigns the ID on insert. Returns an error if validation fails.
func NewUser(name, email string, age int) (*User, error) {
	user := &User{
		Name:  name,
		Email: email,
		Age:   age,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if len(u.Name) < 2 || len(u.Name) > 50 {
		return ErrEmptyName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if err := emailValidator.Var(u.Email, "email"); err != nil {
		return ErrInvalidEmail
	}

	if u.Age != 0 && (u.Age < 1 || u.Age > 119) {
		return ErrInvalidAge
	}

	return nil
}
