package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used as the run id of a report.
var NewULID = func() string {
	return ulid.Make().String()
}
