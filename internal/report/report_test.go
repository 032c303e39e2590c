package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hamed0406/statsprobe/internal/probe"
)

func TestWrite(t *testing.T) {
	cases := []struct {
		name string
		in   probe.Result
		want string
	}{
		{
			name: "success",
			in:   probe.Result{StatusCode: 200, Body: json.RawMessage(`{"ok":true}`)},
			want: "Status Code: 200\nResponse: {\"ok\":true}\n",
		},
		{
			name: "http error",
			in:   probe.Result{StatusCode: 500, ErrorText: "internal error"},
			want: "Status Code: 500\nError: internal error\n",
		},
		{
			name: "http error empty body",
			in:   probe.Result{StatusCode: 404},
			want: "Status Code: 404\nError: \n",
		},
		{
			name: "transport error",
			in:   probe.Result{Err: errors.New("connection refused")},
			want: "Error: connection refused\n",
		},
		{
			name: "decode error after status",
			in:   probe.Result{StatusCode: 200, Err: errors.New("decode body: invalid character 'o'")},
			want: "Status Code: 200\nError: decode body: invalid character 'o'\n",
		},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := Write(&buf, c.in); err != nil {
			t.Fatalf("%s: Write: %v", c.name, err)
		}
		if got := buf.String(); got != c.want {
			t.Fatalf("%s: got %q want %q", c.name, got, c.want)
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	if err := Write(failWriter{}, probe.Result{StatusCode: 200, Body: json.RawMessage(`1`)}); err == nil {
		t.Fatalf("want writer error")
	}
	if err := Write(failWriter{}, probe.Result{Err: errors.New("x")}); err == nil {
		t.Fatalf("want writer error without status line")
	}
}
