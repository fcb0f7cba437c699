package user

import "strings"

// DomainObject is the business view of a user. It is only built by Adapter
// and has no setters; a value that passed Validate stays valid.
type DomainObject struct {
	Username string
	Email    string
}

// Validate checks the username, then the email, and returns the first
// violation as a *ValidationError. It never mutates the receiver.
func (d DomainObject) Validate() error {
	if err := d.validateUsername(); err != nil {
		return err
	}
	return d.validateEmail()
}

func (d DomainObject) validateUsername() error {
	if d.Username == "" {
		return newValidationError(ErrEmptyUsername, "Username", MsgEmptyUsername)
	}
	return nil
}

func (d DomainObject) validateEmail() error {
	if d.Email == "" || !strings.Contains(d.Email, "@") {
		return newValidationError(ErrInvalidEmailFormat, "Email", MsgInvalidEmailFormat)
	}
	return nil
}
