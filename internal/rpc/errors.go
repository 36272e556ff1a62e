package rpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorMapper converts a domain error to a status code. ok is false when the
// mapper does not recognize err.
type ErrorMapper func(err error) (code codes.Code, ok bool)

// Status converts err to a gRPC status error using the first matching
// mapper. Unrecognized errors become Internal without leaking detail.
func Status(err error, mappers ...ErrorMapper) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	for _, m := range mappers {
		if code, ok := m(err); ok {
			return status.Error(code, err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}

// Is builds an ErrorMapper that maps any error matching target to code.
func Is(target error, code codes.Code) ErrorMapper {
	return func(err error) (codes.Code, bool) {
		if errors.Is(err, target) {
			return code, true
		}
		return codes.OK, false
	}
}

// LoggingInterceptor logs every unary call that ends in a server-side
// failure.
func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			switch status.Code(err) {
			case codes.Internal, codes.Unknown, codes.Unavailable:
				log.ErrorContext(ctx, "rpc failed", slog.String("method", info.FullMethod), slog.Any("err", err))
			default:
				log.DebugContext(ctx, "rpc rejected", slog.String("method", info.FullMethod), slog.Any("err", err))
			}
		}
		return resp, err
	}
}
