package admin

import "errors"

// ErrInvalidCredentials is returned on sign-in with an unknown email or a
// wrong password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")
