package handlers

import "errors"

var (
	errUnknownEntity = errors.New("unknown entity, want trucks or trips")
	errBadEntityKey  = errors.New("trip key must be an integer id")
)
