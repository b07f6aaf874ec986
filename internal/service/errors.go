package service

import "errors"

var (
	// ErrRateLimited indicates the client exceeded its request window.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCompletionFailed indicates the upstream completion call failed.
	// The upstream/unexpected distinction is kept in logs and metrics only.
	ErrCompletionFailed = errors.New("failed to generate response")
)
