package domain

import "errors"

var (
	ErrNoData       = errors.New("no rate data available")
	ErrInvalidRange = errors.New("start date must not be after end date")
)
