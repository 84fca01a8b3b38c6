package optionalbox

import "github.com/pkg/errors"

// ErrNoValue is returned by Value and Ptr, and panicked by MustValue, when
// the box is empty. Checked accessors wrap it with the failing call site's
// stack; match it with errors.Is.
var ErrNoValue = errors.New("no value present")
