package connector

import "errors"

var (
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrUnsupportedNetwork  = errors.New("unsupported network")
	ErrUnsupportedProvider = errors.New("unsupported provider")
)
