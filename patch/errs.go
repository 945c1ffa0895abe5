package patch

import "errors"

var (
	ErrPatch = errors.New("invalid patch")
	ErrApply = errors.New("patch does not apply")
)
