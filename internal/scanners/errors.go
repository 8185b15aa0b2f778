package scanners

import (
	"fmt"

	"log-viewer/internal/shared/svcerrors"
)

// Scanner errors
const (
	codeUnknownStream = "QRY_1001"

	codeInternalScanAborted = "QRY_9000"
)

func errUnknownStream(stream string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownStream, fmt.Sprintf("unknown log stream: %q", stream), nil)
}

// errInternalScanAborted returns an error when a scan is interrupted before it completes.
func errInternalScanAborted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalScanAborted, fmt.Errorf("scanAborted: %w", cause))
}
