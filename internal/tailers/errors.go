package tailers

import "errors"

var ErrUnknownStream = errors.New("unknown log stream")
