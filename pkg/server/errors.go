package server

import (
	"errors"
	"strings"
)

// ErrUnknownTarget is returned by Send when the target name resolves to
// neither a connected user nor an existing room.
var ErrUnknownTarget = errors.New("unknown target")

// Error is a protocol error: a numeric reply code plus its human-readable
// parameters. Handlers return it instead of terminating the connection and
// the session loop renders it as a numeric reply to the offending user.
type Error struct {
	Code   string
	Params []string
}

func newError(code string, params ...string) *Error {
	return &Error{Code: code, Params: params}
}

func (e *Error) Error() string {
	return e.Code + " " + strings.Join(e.Params, " ")
}
