package reporters

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

const (
	codeOpenFailed  = "RPT_1000"
	codeLoadFailed  = "RPT_1001"
	codeWriteFailed = "RPT_1002"
)

// errOpenFailed returns an error when the log file cannot be opened.
func errOpenFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOFailureError(codeOpenFailed, fmt.Sprintf("cannot open log file %q", path), cause)
}

// errLoadFailed returns an error when loading fails without a more specific code.
func errLoadFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOFailureError(codeLoadFailed, fmt.Sprintf("cannot load log file %q", path), cause)
}

// errWriteFailed returns an error when the report cannot be written out.
func errWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOFailureError(codeWriteFailed, "cannot write report", cause)
}
