package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// PredictPath is the service route appended to the endpoint.
const PredictPath = "/api/predict-graph-type"

// SourceRemote tags predictions made by Client.
const SourceRemote = "remote"

// DefaultTimeout bounds a round trip unless WithTimeout says otherwise.
const DefaultTimeout = 10 * time.Second

// maxResponseBytes bounds the response body read.
const maxResponseBytes = 1 << 20

var tracer = otel.Tracer("lvwalk.classify")

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each round trip (default DefaultTimeout). Zero keeps the
// http.Client's own timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit allows rps requests per second with the given burst.
// rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithClientLogger sets the structured logger.
func WithClientLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client calls the remote classification service.
type Client struct {
	url     string
	http    *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	flight  singleflight.Group
	logger  *slog.Logger
}

// NewClient returns a Client for the service at endpoint (scheme://host[:port]).
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		url:     strings.TrimRight(endpoint, "/") + PredictPath,
		http:    http.DefaultClient,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// response is the service's answer. Missing fields stay nil.
type response struct {
	Label      *int     `json:"label"`
	Confidence *float64 `json:"confidence"`
}

// Classify implements Classifier. Concurrent calls with an identical request
// share one round trip. The shared round trip outlives the caller that
// started it; each caller still gives up when its own ctx is done.
func (c *Client) Classify(ctx context.Context, req Request) (Prediction, error) {
	ctx, span := tracer.Start(ctx, "classify.Client.Classify",
		trace.WithAttributes(
			attribute.Int("graph.node_count", req.NodeCount),
			attribute.Int("graph.edge_pairs", len(req.Edges)),
		))
	defer span.End()

	if req.Edges == nil {
		req.Edges = [][2]int{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Prediction{}, fmt.Errorf("%w: encode: %v", ErrTransport, err)
	}

	shared := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(string(body), func() (any, error) {
		return c.post(shared, body)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.Err = fmt.Errorf("%w: %v", ErrTransport, ctx.Err())
	}
	span.SetAttributes(attribute.Bool("classify.shared", res.Shared))
	if err = res.Err; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("classification failed", "error", err, "node_count", req.NodeCount)
		return Prediction{}, err
	}

	p := res.Val.(Prediction)
	span.SetAttributes(
		attribute.String("classify.type", string(p.Type)),
		attribute.Float64("classify.confidence", p.Confidence),
	)

	return p, nil
}

// post performs one rate-limited round trip.
func (c *Client) post(ctx context.Context, body []byte) (Prediction, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Prediction{}, fmt.Errorf("%w: rate limit: %v", ErrTransport, err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Prediction{}, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	var r response
	if err = json.Unmarshal(raw, &r); err != nil {
		return Prediction{}, fmt.Errorf("%w: decode: %v", ErrRejected, err)
	}

	p := Prediction{Type: Unknown, Label: LabelNone, Source: SourceRemote}
	if r.Label != nil {
		p.Label = *r.Label
		p.Type = TypeForLabel(*r.Label)
	}
	if r.Confidence != nil {
		p.Confidence = *r.Confidence
	}

	return p, nil
}
