package aggregators

import (
	"fmt"

	"log-viewer/internal/shared/svcerrors"
)

const (
	codeInternalStatisticsAborted      = "STA_9000"
	codeInternalStatisticsRollupFailed = "STA_9001"
)

// errInternalStatisticsAborted returns an error when the statistics pass is interrupted.
func errInternalStatisticsAborted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStatisticsAborted, fmt.Errorf("statisticsAborted: %w", cause))
}

// errInternalStatisticsRollupFailed returns an error when a stream tally cannot be rolled up.
func errInternalStatisticsRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStatisticsRollupFailed, fmt.Errorf("statisticsRollupFailed: %w", cause))
}
