package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mdwerror "github.com/msto63/calword/foundation/core/error"
)

var codeMapping = map[mdwerror.Code]codes.Code{
	mdwerror.CodeInvalidArgument:    codes.InvalidArgument,
	mdwerror.CodeInvalidInput:       codes.InvalidArgument,
	mdwerror.CodeInvalidFormat:      codes.InvalidArgument,
	mdwerror.CodeValueOutOfRange:    codes.OutOfRange,
	mdwerror.CodeNotFound:           codes.NotFound,
	mdwerror.CodeConfigError:        codes.FailedPrecondition,
	mdwerror.CodeMissingConfig:      codes.FailedPrecondition,
	mdwerror.CodeDatabaseError:      codes.Internal,
	mdwerror.CodeServiceUnavailable: codes.Unavailable,
	mdwerror.CodeInternal:           codes.Internal,
	mdwerror.CodeUnknown:            codes.Unknown,
}

// GRPCCode returns the gRPC status code for an error code
func GRPCCode(code mdwerror.Code) codes.Code {
	if c, ok := codeMapping[code]; ok {
		return c
	}
	return codes.Unknown
}

// StatusFromError converts err into a gRPC status error. Status errors and
// context errors keep their codes; structured errors are mapped by code.
func StatusFromError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return status.Error(GRPCCode(mdwErr.Code()), err.Error())
	}
	return status.Error(codes.Unknown, err.Error())
}

// ErrorFromStatus turns a gRPC status error received by a client back into a
// structured error. Non-status errors are returned unchanged.
func ErrorFromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return err
	}

	code := mdwerror.CodeUnknown
	switch st.Code() {
	case codes.InvalidArgument:
		code = mdwerror.CodeInvalidArgument
	case codes.OutOfRange:
		code = mdwerror.CodeValueOutOfRange
	case codes.NotFound:
		code = mdwerror.CodeNotFound
	case codes.FailedPrecondition:
		code = mdwerror.CodeConfigError
	case codes.Unavailable, codes.DeadlineExceeded:
		code = mdwerror.CodeServiceUnavailable
	case codes.Internal:
		code = mdwerror.CodeInternal
	}
	return mdwerror.New(st.Message()).WithCode(code).WithDetail("grpc_code", st.Code().String())
}
