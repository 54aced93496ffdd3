package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks every failure to obtain a usable answer from the
	// backend: network errors, non-2xx statuses and undecodable bodies.
	ErrTransport = errors.New("attendance api unavailable")

	ErrBadRequest          = fmt.Errorf("%w: bad request", ErrTransport)
	ErrUnauthorized        = fmt.Errorf("%w: client unauthorized", ErrTransport)
	ErrForbidden           = fmt.Errorf("%w: forbidden", ErrTransport)
	ErrNotFound            = fmt.Errorf("%w: not found", ErrTransport)
	ErrConflict            = fmt.Errorf("%w: conflict", ErrTransport)
	ErrInternalServerError = fmt.Errorf("%w: internal server error", ErrTransport)
	ErrBadGateway          = fmt.Errorf("%w: bad gateway", ErrTransport)
	ErrUnexpectedResponse  = fmt.Errorf("%w: unexpected response", ErrTransport)
)
