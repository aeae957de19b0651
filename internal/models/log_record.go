package models

import "strings"

// LogRecord is one access log line that matched the log line grammar.
// Values are built by the record parser only and never modified afterwards.
//
// Example line:
//
//	72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET /download/counter/ HTTP/1.1" 200 3574 "-" "Mozilla/5.0 ..."
//
// parses to:
//
//	ClientAddress:   "72.44.32.10"
//	Timestamp:       "09/Jul/2018:15:48:20 +0200"
//	Method:          "GET"
//	URL:             "/download/counter/"
//	ProtocolVersion: "HTTP/1.1"
//	StatusCode:      "200"
//	Remainder:       `3574 "-" "Mozilla/5.0 ..."`
type LogRecord struct {
	ClientAddress   string `json:"clientAddress"`
	Timestamp       string `json:"timestamp"`
	Method          string `json:"method"`
	URL             string `json:"url"`
	ProtocolVersion string `json:"protocolVersion"`
	StatusCode      string `json:"statusCode"`
	Remainder       string `json:"remainder"`
}

// ResponseBytes returns the first token of the remainder (the %b / %O field).
func (r LogRecord) ResponseBytes() string {
	fields := strings.Fields(r.Remainder)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Referer returns the first quoted field of the remainder, "" when absent.
func (r LogRecord) Referer() string {
	return r.quotedField(0)
}

// UserAgent returns the second quoted field of the remainder, "" when absent.
// A missing closing quote is tolerated.
func (r LogRecord) UserAgent() string {
	return r.quotedField(1)
}

// quotedField splits `3574 "ref" "ua"` on quotes; odd parts are quoted content.
func (r LogRecord) quotedField(index int) string {
	parts := strings.Split(r.Remainder, `"`)
	i := 2*index + 1
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}
