package dto

import "errors"

// Infrastructure errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrInternalFailure = errors.New("internal failure")
)

// Identity gate errors. Each one maps to a distinct user-facing
// condition; none of them may escape a handler as a generic failure.
var (
	ErrDecodeFailed      = errors.New("could not decode image")
	ErrTooBlurry         = errors.New("image is too blurry")
	ErrNoFace            = errors.New("no face detected")
	ErrNoEnrollment      = errors.New("no enrolled face data")
	ErrFaceMismatch      = errors.New("face does not match enrolled data")
	ErrExtractionTimeout = errors.New("face extraction timed out")
)

// Voting errors.
var (
	ErrAlreadyVoted  = errors.New("vote already recorded")
	ErrUsernameTaken = errors.New("username already taken")
)
