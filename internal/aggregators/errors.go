package aggregators

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

const (
	codeReadFailed = "AGG_1000"
)

// errReadFailed returns an error when the log source fails mid-stream.
func errReadFailed(lineNumber int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOFailureError(codeReadFailed, fmt.Sprintf("failed to read log source at line %d", lineNumber), cause)
}
