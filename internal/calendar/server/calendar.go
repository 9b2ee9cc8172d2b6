package server

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	mdwerrors "github.com/msto63/calword/foundation/core/errors"
	"github.com/msto63/calword/foundation/utils/timex"
	"github.com/msto63/calword/internal/calendar/service"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "calword.v1.Calendar"

// CalendarServer is the server API of the calendar service
type CalendarServer interface {
	AdvanceWorkingDays(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RetreatWorkingDays(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	OrdinalWords(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	MatchDigitOrdinal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	FormatSpoken(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ResolveDateTime(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// Ensure Server implements CalendarServer
var _ CalendarServer = (*Server)(nil)

type unaryMethod func(srv CalendarServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CalendarServer), ctx, req.(*structpb.Struct))
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FullMethod returns the gRPC path of a calendar method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CalendarServiceDesc describes the calendar service for grpc.Server
var CalendarServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalendarServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: service.OpAdvanceWorkingDays, Handler: unaryHandler(service.OpAdvanceWorkingDays, CalendarServer.AdvanceWorkingDays)},
		{MethodName: service.OpRetreatWorkingDays, Handler: unaryHandler(service.OpRetreatWorkingDays, CalendarServer.RetreatWorkingDays)},
		{MethodName: service.OpOrdinalWords, Handler: unaryHandler(service.OpOrdinalWords, CalendarServer.OrdinalWords)},
		{MethodName: service.OpMatchDigitOrdinal, Handler: unaryHandler(service.OpMatchDigitOrdinal, CalendarServer.MatchDigitOrdinal)},
		{MethodName: service.OpFormatSpoken, Handler: unaryHandler(service.OpFormatSpoken, CalendarServer.FormatSpoken)},
		{MethodName: service.OpResolveDateTime, Handler: unaryHandler(service.OpResolveDateTime, CalendarServer.ResolveDateTime)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calword/v1/calendar",
}

// RegisterCalendarServer registers srv on s
func RegisterCalendarServer(s grpc.ServiceRegistrar, srv CalendarServer) {
	s.RegisterService(&CalendarServiceDesc, srv)
}

// AdvanceWorkingDays implements CalendarServer.AdvanceWorkingDays
func (s *Server) AdvanceWorkingDays(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return s.workdays(ctx, req, service.OpAdvanceWorkingDays, s.service.AdvanceWorkingDays)
}

// RetreatWorkingDays implements CalendarServer.RetreatWorkingDays
func (s *Server) RetreatWorkingDays(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return s.workdays(ctx, req, service.OpRetreatWorkingDays, s.service.RetreatWorkingDays)
}

func (s *Server) workdays(ctx context.Context, req *structpb.Struct, method string,
	move func(context.Context, service.WorkdaysRequest) (time.Time, error)) (*structpb.Struct, error) {
	var in WorkdaysRequest
	if err := decodeMessage(req, &in); err != nil {
		return nil, err
	}
	if in.Days == nil {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleService, method, "days is required")
	}

	date, err := timex.Parse(in.Date)
	if err != nil {
		return nil, err
	}

	svcReq := service.WorkdaysRequest{Date: date, Days: *in.Days}
	if in.IncludeSaturday != nil || in.IncludeSunday != nil {
		schedule := s.service.Schedule()
		if in.IncludeSaturday != nil {
			schedule.IncludeSaturday = *in.IncludeSaturday
		}
		if in.IncludeSunday != nil {
			schedule.IncludeSunday = *in.IncludeSunday
		}
		svcReq.Schedule = &schedule
	}

	result, err := move(ctx, svcReq)
	if err != nil {
		return nil, err
	}
	return encodeMessage(DateResponse{Date: result.Format(time.RFC3339Nano)})
}

// OrdinalWords implements CalendarServer.OrdinalWords
func (s *Server) OrdinalWords(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in OrdinalRequest
	if err := decodeMessage(req, &in); err != nil {
		return nil, err
	}
	if in.N == nil {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleService, service.OpOrdinalWords, "n is required")
	}

	words, err := s.service.OrdinalWords(ctx, int64(*in.N))
	if err != nil {
		return nil, err
	}
	return encodeMessage(OrdinalResponse{Words: words})
}

// MatchDigitOrdinal implements CalendarServer.MatchDigitOrdinal
func (s *Server) MatchDigitOrdinal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in MatchRequest
	if err := decodeMessage(req, &in); err != nil {
		return nil, err
	}
	return encodeMessage(s.service.MatchDigitOrdinal(ctx, in.Word))
}

// FormatSpoken implements CalendarServer.FormatSpoken
func (s *Server) FormatSpoken(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in SpokenRequest
	if err := decodeMessage(req, &in); err != nil {
		return nil, err
	}

	t, err := timex.Parse(in.Time)
	if err != nil {
		return nil, err
	}

	spoken, err := s.service.FormatSpoken(ctx, t, in.OffsetHours)
	if err != nil {
		return nil, err
	}
	return encodeMessage(SpokenResponse{Spoken: spoken})
}

// ResolveDateTime implements CalendarServer.ResolveDateTime
func (s *Server) ResolveDateTime(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ResolveRequest
	if err := decodeMessage(req, &in); err != nil {
		return nil, err
	}

	result, err := s.service.ResolveDateTime(ctx, in.DateTimeInput, in.OffsetHours)
	if err != nil {
		return nil, err
	}
	return encodeMessage(RangeResponse{
		Start: timex.FormatISOMillis(result.Start),
		End:   timex.FormatISOMillis(result.End),
	})
}
