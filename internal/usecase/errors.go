package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("resource not found")
	ErrProviderUnavailable = errors.New("season data provider unavailable")
	ErrInvalidGameweek     = errors.New("invalid gameweek")
)
