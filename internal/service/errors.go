package service

import "errors"

var (
	ErrConflict        = errors.New("user already exists")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidToken    = errors.New("invalid token")
	ErrNotFound        = errors.New("post not found")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrInvalidPassword = errors.New("invalid password")
)
