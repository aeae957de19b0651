package parsers

import (
	"regexp"
	"strings"

	"log-report/internal/models"
)

// logLinePattern is the only grammar a line may follow. Groups:
//
//	1 client address  1-3 digit dotted quad, octets are not range checked
//	2 timestamp       bracket content
//	3 method          3-7 uppercase letters
//	4 url
//	5 protocol version
//	6 status code     exactly 3 digits
//	7 remainder       everything up to end of line
//
// The ident and user fields between the address and the timestamp are matched
// loosely and not captured.
var logLinePattern = regexp.MustCompile(`^(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}) .* \[(.*)\] "([A-Z]{3,7}) (.+?) (.+?)".(\d{3}) (.*)$`)

//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	// Parse returns the record of line and true, or false when line does not
	// follow the grammar. A non-match is an expected outcome, not an error.
	Parse(line string) (models.LogRecord, bool)
}

type recordParser struct {
	pattern *regexp.Regexp
}

func NewRecordParser() RecordParser {
	return &recordParser{pattern: logLinePattern}
}

func (p *recordParser) Parse(line string) (models.LogRecord, bool) {
	line = trimLineTerminator(line)

	match := p.pattern.FindStringSubmatch(line)
	if match == nil {
		return models.LogRecord{}, false
	}

	return models.LogRecord{
		ClientAddress:   match[1],
		Timestamp:       match[2],
		Method:          match[3],
		URL:             match[4],
		ProtocolVersion: match[5],
		StatusCode:      match[6],
		Remainder:       match[7],
	}, true
}

// trimLineTerminator drops one trailing "\n" or "\r\n".
func trimLineTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
