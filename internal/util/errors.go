package util

import "errors"

var (
	ErrEmailRegistered = errors.New("email already registered")
	ErrNotEnrolled     = errors.New("not enrolled in course")

	// ErrReorderConflict: the submitted ordering is not a permutation of the
	// current sibling set. No row is written when this is returned.
	ErrReorderConflict = errors.New("ordering does not match current sibling set")

	ErrInvalidBlockType = errors.New("invalid block type")
	ErrOptionsNotChoice = errors.New("options are only valid for multiple-choice blocks")
	ErrInvalidVideoExt  = errors.New("invalid video file extension")
)
