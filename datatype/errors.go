package datatype

import "github.com/pkg/errors"

// Construction errors. Both are programmer errors: fix the call site rather
// than retrying. Returned errors wrap one of these; test with errors.Is.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)
