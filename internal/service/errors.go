package service

import (
	"errors"

	"player-registry/internal/domain"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = domain.ErrPlayerNotFound
)
