package probe

import (
	"context"
	"encoding/json"
)

// Kind classifies a Result.
type Kind int

const (
	// KindSuccess: HTTP 200 with a JSON body.
	KindSuccess Kind = iota
	// KindHTTPError: a response arrived with a status other than 200.
	KindHTTPError
	// KindTransportError: no usable response. Covers refused connections,
	// DNS and timeouts, and a 200 whose body could not be read or decoded.
	KindTransportError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindHTTPError:
		return "http_error"
	default:
		return "transport_error"
	}
}

// Result is the outcome of one probe request.
//
// Fields:
//   - StatusCode: 0 when no response was received.
//   - Body: compacted JSON, only for a 200 that decoded.
//   - ErrorText: raw body text for a non-200 status.
//   - Err: set when the request, body read or decode failed. StatusCode may
//     still be set if the failure came after the response headers.
type Result struct {
	StatusCode int
	Body       json.RawMessage
	ErrorText  string
	Err        error
	LatencyMS  float64
}

func (r Result) Kind() Kind {
	switch {
	case r.Err != nil:
		return KindTransportError
	case r.StatusCode == 200:
		return KindSuccess
	default:
		return KindHTTPError
	}
}

// Checker performs a single request against target.
type Checker interface {
	Check(ctx context.Context, target string) Result
}
