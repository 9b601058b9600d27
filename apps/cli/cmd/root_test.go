package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/httpie/packages/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func newMockServer(t *testing.T) (*mock.Server, string) {
	t.Helper()
	s := mock.NewServer().
		Respond("/plain", &mock.MockResponse{
			StatusCode:  http.StatusOK,
			ContentType: "text/plain",
			Body:        "hello\n",
		}).
		Respond("/json", &mock.MockResponse{
			StatusCode:  http.StatusOK,
			ContentType: "application/json",
			Body:        `{"a":1}`,
		}).
		Respond("/missing", &mock.MockResponse{
			StatusCode:  http.StatusNotFound,
			ContentType: "application/json; charset=utf-8",
			Body:        `{"error":"not found"}`,
		}).
		Echo("/echo")

	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts.URL
}

func TestRun_GetPlainText(t *testing.T) {
	_, url := newMockServer(t)

	code, stdout, stderr := run("get", url+"/plain")

	require.Equal(t, ExitSuccess, code, stderr)
	plain := stripANSI(stdout)
	lines := strings.Split(plain, "\n")
	assert.Equal(t, "HTTP/1.1 200 OK", lines[0])
	assert.Contains(t, plain, "content-type: \"text/plain\"\n")
	assert.Contains(t, plain, "\nhello\n")
	assert.True(t, strings.HasSuffix(plain, "\n\nhello\n\n"))
}

func TestRun_GetJSON(t *testing.T) {
	_, url := newMockServer(t)

	code, stdout, stderr := run("get", url+"/json")

	require.Equal(t, ExitSuccess, code, stderr)
	_, body, found := strings.Cut(stdout, "\n\n")
	require.True(t, found)
	_, body, found = strings.Cut(body, "\n\n")
	require.True(t, found)

	assert.NotEqual(t, `{"a":1}`+"\n", body, "body should carry escape sequences")
	assert.Contains(t, body, "\x1b[")
	assert.Equal(t, `{"a":1}`+"\n", stripANSI(body))
}

func TestRun_HTTPErrorStatusExitsZero(t *testing.T) {
	_, url := newMockServer(t)

	code, stdout, _ := run("get", url+"/missing")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stripANSI(stdout), "HTTP/1.1 404 Not Found")
}

func TestRun_PostEcho(t *testing.T) {
	s, url := newMockServer(t)

	code, stdout, stderr := run("post", url+"/echo", "a=1", "b=2")

	require.Equal(t, ExitSuccess, code, stderr)
	last, ok := s.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "POST", last.Method)
	assert.Equal(t, "application/json", last.ContentType)
	assert.JSONEq(t, `{"a":"1","b":"2"}`, string(last.Body))

	// the echo comes back as JSON and is highlighted
	plain := stripANSI(stdout)
	assert.Contains(t, plain, "content-type: \"application/json\"")
	_, body, _ := strings.Cut(plain, "\n\n")
	_, body, _ = strings.Cut(body, "\n\n")
	assert.Equal(t, "1", gjson.Get(body, "a").String())
	assert.Equal(t, "2", gjson.Get(body, "b").String())
}

func TestRun_PostDuplicateKeys(t *testing.T) {
	s, url := newMockServer(t)

	code, _, stderr := run("post", url+"/echo", "k=v1", "k=v2")

	require.Equal(t, ExitSuccess, code, stderr)
	last, ok := s.LastRequest()
	require.True(t, ok)
	assert.JSONEq(t, `{"k":"v2"}`, string(last.Body))
}

func TestRun_PostWithoutPairs(t *testing.T) {
	s, url := newMockServer(t)

	code, _, stderr := run("post", url+"/echo")

	require.Equal(t, ExitSuccess, code, stderr)
	last, _ := s.LastRequest()
	assert.Equal(t, "{}", string(last.Body))
}

func TestRun_InvalidURL(t *testing.T) {
	code, stdout, stderr := run("get", "not a url")

	assert.Equal(t, ExitParseError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "not a url")
}

func TestRun_InvalidKvPair(t *testing.T) {
	s, url := newMockServer(t)

	code, _, stderr := run("post", url+"/echo", "a")

	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, stderr, "Failed to parse a")
	assert.Empty(t, s.Requests(), "nothing is sent when arguments are invalid")
}

func TestRun_NetworkErrorExitsOne(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	code, stdout, stderr := run("get", url)

	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error:")
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := run("--version")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "httpie 1.0\n", stdout)
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := run("--help")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "get")
	assert.Contains(t, stdout, "post")
	assert.Contains(t, stdout, "cal")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no subcommand", nil},
		{"unknown subcommand", []string{"put", "http://localhost"}},
		{"get without url", []string{"get"}},
		{"get with two urls", []string{"get", "http://a.com", "http://b.com"}},
		{"post without url", []string{"post"}},
		{"unknown flag", []string{"get", "--bogus", "http://a.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(tt.args...)
			assert.Equal(t, ExitParseError, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, stderr, "--help")
		})
	}
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	_, url := newMockServer(t)

	code, stdout, stderr := run("-v", "get", url+"/plain")

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr, "sending request")
	assert.Contains(t, stderr, "invocation")
	assert.NotContains(t, stdout, "sending request")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitParseError, exitCode(newUsageError(assert.AnError)))
	assert.Equal(t, ExitFailure, exitCode(assert.AnError))
}
