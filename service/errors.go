package service

import "errors"

// ErrBadRequest indicates a malformed request (no input, or both text and a
// URL supplied). It is an input error like engine.ErrTextTooShort: reported
// to the caller, never retried.
var ErrBadRequest = errors.New("bad request")
