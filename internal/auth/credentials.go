package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
)

// ErrInvalidCredentials is returned for any unknown username/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginErrorMessage is shown to the user on a failed login.
const LoginErrorMessage = "帳號或密碼錯誤"

// household accounts; a shared PIN rather than real accounts.
var validUsers = map[string]string{
	"yvonne": "neihu",
	"albert": "neihu",
}

// Authenticate checks a username (case-insensitive) and password and
// returns the canonical lower-case username.
func Authenticate(username, password string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(username))
	want, ok := validUsers[name]
	if !ok || subtle.ConstantTimeCompare([]byte(want), []byte(password)) != 1 {
		return "", ErrInvalidCredentials
	}
	return name, nil
}
