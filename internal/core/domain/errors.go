package domain

import "errors"

var ErrPermissionDenied = errors.New("permission denied")
var ErrIdentityNotFound = errors.New("identity not found")
var ErrIdentityExists = errors.New("identity already exists")
var ErrProfileNotFound = errors.New("profile not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrResetTokenInvalid = errors.New("reset token invalid or already used")
