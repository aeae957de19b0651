package parsers

import (
	"fmt"
	"testing"

	"log-report/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	epiphanyUA = `Mozilla/5.0 (X11; U; Linux x86; en-US) AppleWebKit/534.7 (KHTML, like Gecko) Epiphany/2.30.6 Safari/534.7`
	chromeUA   = `Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/536.6 (KHTML, like Gecko) Chrome/20.0.1092.0 Safari/536.6`
)

func TestRecordParser_Parse_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want models.LogRecord
	}{
		{
			name: "combined format line",
			line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET /download/counter/ HTTP/1.1" 200 3574 "-" "` + epiphanyUA + `"`,
			want: models.LogRecord{
				ClientAddress:   "72.44.32.10",
				Timestamp:       "09/Jul/2018:15:48:20 +0200",
				Method:          "GET",
				URL:             "/download/counter/",
				ProtocolVersion: "HTTP/1.1",
				StatusCode:      "200",
				Remainder:       `3574 "-" "` + epiphanyUA + `"`,
			},
		},
		{
			name: "user field and unterminated user agent",
			line: `50.112.00.11 - admin [11/Jul/2018:17:33:01 +0200] "GET /asset.css HTTP/1.1" 200 3574 "-" "` + chromeUA,
			want: models.LogRecord{
				ClientAddress:   "50.112.00.11",
				Timestamp:       "11/Jul/2018:17:33:01 +0200",
				Method:          "GET",
				URL:             "/asset.css",
				ProtocolVersion: "HTTP/1.1",
				StatusCode:      "200",
				Remainder:       `3574 "-" "` + chromeUA,
			},
		},
		{
			name: "absolute url and trailing junk",
			line: `168.41.191.40 - - [09/Jul/2018:10:11:30 +0200] "GET http://example.net/faq/ HTTP/1.1" 200 3574 "-" "curl/7.88.1" junk extra`,
			want: models.LogRecord{
				ClientAddress:   "168.41.191.40",
				Timestamp:       "09/Jul/2018:10:11:30 +0200",
				Method:          "GET",
				URL:             "http://example.net/faq/",
				ProtocolVersion: "HTTP/1.1",
				StatusCode:      "200",
				Remainder:       `3574 "-" "curl/7.88.1" junk extra`,
			},
		},
		{
			name: "octets are not range checked",
			line: `999.0.00.256 - - [09/Jul/2018:10:11:30 +0200] "DELETE /x HTTP/2.0" 204 0`,
			want: models.LogRecord{
				ClientAddress:   "999.0.00.256",
				Timestamp:       "09/Jul/2018:10:11:30 +0200",
				Method:          "DELETE",
				URL:             "/x",
				ProtocolVersion: "HTTP/2.0",
				StatusCode:      "204",
				Remainder:       "0",
			},
		},
		{
			name: "seven letter method",
			line: `10.0.0.1 - - [t] "OPTIONS * HTTP/1.1" 200 -`,
			want: models.LogRecord{
				ClientAddress:   "10.0.0.1",
				Timestamp:       "t",
				Method:          "OPTIONS",
				URL:             "*",
				ProtocolVersion: "HTTP/1.1",
				StatusCode:      "200",
				Remainder:       "-",
			},
		},
		{
			name: "space in request target splits at the first space",
			line: `10.0.0.1 - - [t] "GET /a b HTTP/1.1" 200 1`,
			want: models.LogRecord{
				ClientAddress:   "10.0.0.1",
				Timestamp:       "t",
				Method:          "GET",
				URL:             "/a",
				ProtocolVersion: "b HTTP/1.1",
				StatusCode:      "200",
				Remainder:       "1",
			},
		},
		{
			name: "empty remainder after status",
			line: `10.0.0.1 - - [t] "GET / HTTP/1.1" 200 `,
			want: models.LogRecord{
				ClientAddress:   "10.0.0.1",
				Timestamp:       "t",
				Method:          "GET",
				URL:             "/",
				ProtocolVersion: "HTTP/1.1",
				StatusCode:      "200",
				Remainder:       "",
			},
		},
	}

	parser := NewRecordParser()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parser.Parse(tt.line)
			require.True(t, ok, "line should match: %s", tt.line)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordParser_Parse_LineTerminatorIgnored(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()
	line := `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET /download/counter/ HTTP/1.1" 200 3574 "-" "-"`

	want, ok := parser.Parse(line)
	require.True(t, ok)

	for _, terminator := range []string{"\n", "\r\n"} {
		got, ok := parser.Parse(line + terminator)
		require.True(t, ok, "terminator %q", terminator)
		assert.Equal(t, want, got, "terminator %q", terminator)
	}
}

func TestRecordParser_Parse_NoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "hostname instead of address", line: `example.com - - [09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 200 3574`},
		{name: "four digit octet", line: `1000.1.1.1 - - [09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 200 3574`},
		{name: "ipv6 address", line: `::1 - - [09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 200 3574`},
		{name: "missing opening bracket", line: `72.44.32.10 - - 09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 200 3574`},
		{name: "missing closing bracket", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200 "GET / HTTP/1.1" 200 3574`},
		{name: "lowercase method", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "get / HTTP/1.1" 200 3574`},
		{name: "two letter method", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GE / HTTP/1.1" 200 3574`},
		{name: "eight letter method", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "PROPFIND / HTTP/1.1" 200 3574`},
		{name: "missing closing quote", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET /download/counter/ HTTP/1.1 200 3574`},
		{name: "request without version", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET /" 200 3574`},
		{name: "two digit status", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 20 3574`},
		{name: "four digit status", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 2000 3574`},
		{name: "nothing after status", line: `72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 200`},
		{name: "leading whitespace", line: ` 72.44.32.10 - - [09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 200 3574`},
		{name: "no ident and user fields", line: `72.44.32.10 [09/Jul/2018:15:48:20 +0200] "GET / HTTP/1.1" 200 3574`},
	}

	parser := NewRecordParser()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parser.Parse(tt.line)
			assert.False(t, ok, "line should not match: %s", tt.line)
			assert.Equal(t, models.LogRecord{}, got)
		})
	}
}

func TestRecordParser_Parse_FieldsRebuildLine(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		{ClientAddress: "177.71.128.21", Timestamp: "10/Jul/2018:22:21:28 +0200", Method: "GET", URL: "/intranet-analytics/", ProtocolVersion: "HTTP/1.1", StatusCode: "200", Remainder: `3574 "-" "` + epiphanyUA + `"`},
		{ClientAddress: "1.2.3.4", Timestamp: "01/Jan/2020:00:00:00 +0000", Method: "POST", URL: "/api/v1/items?id=3", ProtocolVersion: "HTTP/2.0", StatusCode: "201", Remainder: "512"},
		{ClientAddress: "50.112.00.28", Timestamp: "11/Jul/2018:15:49:46 +0200", Method: "HEAD", URL: "/", ProtocolVersion: "HTTP/1.0", StatusCode: "500", Remainder: `0 "http://example.net/" "` + chromeUA + `"`},
	}

	parser := NewRecordParser()
	for _, want := range records {
		line := fmt.Sprintf(`%s - - [%s] "%s %s %s" %s %s`,
			want.ClientAddress, want.Timestamp, want.Method, want.URL, want.ProtocolVersion, want.StatusCode, want.Remainder)

		got, ok := parser.Parse(line)
		require.True(t, ok, "line should match: %s", line)
		assert.Equal(t, want, got)
	}
}
