package model

import "errors"

var (
	// ErrInvalidStatKey is returned when a stat key or StatID is outside the closed stat set.
	ErrInvalidStatKey = errors.New("invalid stat key")

	// ErrInvalidCategory is returned for a TargetCategory other than Boss or Normal.
	ErrInvalidCategory = errors.New("invalid target category")
)
