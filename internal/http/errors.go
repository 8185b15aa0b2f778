package http

import (
	"log-viewer/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParameter = "QRY_1000"
	codeTailUnavailable       = "TAIL_1000"
)

func errInvalidQueryParameter(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParameter, msg, cause)
}

// errTailUnavailable returns an error when a push subscription cannot be opened, e.g. during shutdown.
func errTailUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeTailUnavailable, "live tail is unavailable", cause)
}
