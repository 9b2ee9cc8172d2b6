package server

import (
	"context"
	"time"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/msto63/calword/foundation/utils/stringx"
	"github.com/msto63/calword/foundation/utils/timex"
	"github.com/msto63/calword/internal/calendar/service"
	coreGrpc "github.com/msto63/calword/pkg/core/grpc"
)

// Client is a typed client of the calendar service
type Client struct {
	conn    *grpc.ClientConn
	timeout time.Duration
	owned   bool
}

// NewClient wraps an existing connection
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn, timeout: coreGrpc.DefaultClientConfig("").Timeout}
}

// Dial connects to a calendar server at target
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	cfg := coreGrpc.DefaultClientConfig(target)
	conn, err := coreGrpc.Dial(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, timeout: cfg.Timeout, owned: true}, nil
}

// Close closes the connection if the client opened it
func (c *Client) Close() error {
	if c.owned {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	in, err := encodeMessage(req)
	if err != nil {
		return err
	}

	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out); err != nil {
		return coreGrpc.ErrorFromStatus(err)
	}
	return decodeMessage(out, resp)
}

func workdaysRequest(date time.Time, days int, schedule *timex.WorkingDaySchedule) WorkdaysRequest {
	req := WorkdaysRequest{Date: date.Format(time.RFC3339Nano), Days: &days}
	if schedule != nil {
		req.IncludeSaturday = &schedule.IncludeSaturday
		req.IncludeSunday = &schedule.IncludeSunday
	}
	return req
}

// AdvanceWorkingDays moves date forward by days working days. A nil schedule
// uses the server default.
func (c *Client) AdvanceWorkingDays(ctx context.Context, date time.Time, days int, schedule *timex.WorkingDaySchedule) (time.Time, error) {
	var resp DateResponse
	if err := c.invoke(ctx, service.OpAdvanceWorkingDays, workdaysRequest(date, days, schedule), &resp); err != nil {
		return time.Time{}, err
	}
	return timex.Parse(resp.Date)
}

// RetreatWorkingDays moves date backward by days working days
func (c *Client) RetreatWorkingDays(ctx context.Context, date time.Time, days int, schedule *timex.WorkingDaySchedule) (time.Time, error) {
	var resp DateResponse
	if err := c.invoke(ctx, service.OpRetreatWorkingDays, workdaysRequest(date, days, schedule), &resp); err != nil {
		return time.Time{}, err
	}
	return timex.Parse(resp.Date)
}

// OrdinalWords spells n as an English ordinal
func (c *Client) OrdinalWords(ctx context.Context, n int64) (string, error) {
	var resp OrdinalResponse
	if err := c.invoke(ctx, service.OpOrdinalWords, OrdinalRequest{N: (*Int64)(&n)}, &resp); err != nil {
		return "", err
	}
	return resp.Words, nil
}

// MatchDigitOrdinal recognizes digit ordinals like "21st"
func (c *Client) MatchDigitOrdinal(ctx context.Context, word string) (stringx.OrdinalMatch, error) {
	var resp stringx.OrdinalMatch
	err := c.invoke(ctx, service.OpMatchDigitOrdinal, MatchRequest{Word: word}, &resp)
	return resp, err
}

// FormatSpoken renders t for speech. A nil offset uses the server default.
func (c *Client) FormatSpoken(ctx context.Context, t time.Time, offsetHours *int) (string, error) {
	var resp SpokenResponse
	req := SpokenRequest{Time: timex.FormatISO(t), OffsetHours: offsetHours}
	if err := c.invoke(ctx, service.OpFormatSpoken, req, &resp); err != nil {
		return "", err
	}
	return resp.Spoken, nil
}

// ResolveDateTime resolves structured input into an event range
func (c *Client) ResolveDateTime(ctx context.Context, input timex.DateTimeInput, offsetHours *int) (timex.DateTimeRange, error) {
	var resp RangeResponse
	req := ResolveRequest{DateTimeInput: input, OffsetHours: offsetHours}
	if err := c.invoke(ctx, service.OpResolveDateTime, req, &resp); err != nil {
		return timex.DateTimeRange{}, err
	}

	start, err := timex.Parse(resp.Start)
	if err != nil {
		return timex.DateTimeRange{}, err
	}
	end, err := timex.Parse(resp.End)
	if err != nil {
		return timex.DateTimeRange{}, err
	}
	return timex.DateTimeRange{Start: start, End: end}, nil
}

// Health returns the serving status of the calendar service
func (c *Client) Health(ctx context.Context) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := healthpb.NewHealthClient(c.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: "calword"})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, coreGrpc.ErrorFromStatus(err)
	}
	return resp.GetStatus(), nil
}
