package anim

import "errors"

var (
	// ErrNotFound reports an unknown animation state or transition name.
	ErrNotFound = errors.New("anim: not found")
	// ErrDegenerate reports curve math that would divide by a zero extent or
	// operate on an empty curve. The curve is left unchanged.
	ErrDegenerate = errors.New("anim: degenerate curve")
	// ErrNotReady reports a state whose clip has not finished loading.
	ErrNotReady = errors.New("anim: clip not ready")
)
