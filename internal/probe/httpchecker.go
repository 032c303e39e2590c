package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPChecker struct {
	Client *http.Client
	DNS    *DNSChecker
	Logger *zap.Logger
}

// NewHTTPChecker returns a checker whose client gives up after timeout.
// A zero timeout leaves the client unbounded.
func NewHTTPChecker(timeout time.Duration, logger *zap.Logger) *HTTPChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
		DNS:    NewDNSChecker(),
		Logger: logger,
	}
}

func (h *HTTPChecker) Check(ctx context.Context, target string) Result {
	log := h.Logger.With(zap.String("url", target))
	log.Info("probe_start")

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		log.Warn("probe_bad_request", zap.Error(err))
		return Result{Err: err}
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		out := Result{Err: err, LatencyMS: msSince(start)}
		h.logTransportError(ctx, log, target, out)
		return out
	}
	defer resp.Body.Close()

	out := Result{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(resp.Body)
	out.LatencyMS = msSince(start)
	switch {
	case err != nil:
		out.Err = fmt.Errorf("read body: %w", err)
	case resp.StatusCode != http.StatusOK:
		out.ErrorText = string(body)
	default:
		raw, derr := decodeJSON(body)
		if derr != nil {
			out.Err = fmt.Errorf("decode body: %w", derr)
		} else {
			out.Body = raw
		}
	}

	if out.Err != nil {
		log.Warn("probe_body_error",
			zap.Int("status", out.StatusCode),
			zap.Float64("latency_ms", out.LatencyMS),
			zap.Error(out.Err),
		)
		return out
	}
	log.Info("probe_done",
		zap.Int("status", out.StatusCode),
		zap.Stringer("kind", out.Kind()),
		zap.Float64("latency_ms", out.LatencyMS),
		zap.Int("body_bytes", len(body)),
	)
	return out
}

func (h *HTTPChecker) logTransportError(ctx context.Context, log *zap.Logger, target string, out Result) {
	var ne net.Error
	timeout := errors.As(out.Err, &ne) && ne.Timeout()
	log.Warn("probe_transport_error",
		zap.Bool("timeout", timeout),
		zap.Float64("latency_ms", out.LatencyMS),
		zap.Error(out.Err),
	)
	if h.DNS == nil || ctx.Err() != nil {
		return
	}
	dns := h.DNS.Check(ctx, extractHost(target))
	log.Warn("dns_check",
		zap.String("domain", dns.Domain),
		zap.String("class", string(dns.Class)),
		zap.Bool("has_a_or_aaaa", dns.HasAOrAAAA),
		zap.Strings("nameservers", dns.Nameservers),
		zap.String("cname", dns.CNAME),
		zap.String("resolver_error", dns.ResolverError),
	)
}

// decodeJSON checks that body is a single JSON value and returns it compacted.
func decodeJSON(body []byte) (json.RawMessage, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

func msSince(t time.Time) float64 {
	return time.Since(t).Seconds() * 1000
}
