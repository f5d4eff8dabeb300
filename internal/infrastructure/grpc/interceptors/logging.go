// Package interceptors holds the gRPC server interceptors of the catalog.
package interceptors

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
	pkglogger "github.com/narwhalmedia/catalog/pkg/logger"
)

// RequestIDHeader is the metadata key carrying the request id.
const RequestIDHeader = "x-request-id"

// UnaryLoggingInterceptor logs unary RPC calls under a request id and stores
// the request scoped logger in the handler context.
func UnaryLoggingInterceptor(logger interfaces.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		requestID := RequestID(ctx)
		ctx = pkglogger.WithFields(ctx, interfaces.String("request_id", requestID))
		reqLogger := logger.WithFields(
			interfaces.String("request_id", requestID),
			interfaces.String("method", info.FullMethod),
		)
		ctx = pkglogger.WithContext(ctx, reqLogger)

		resp, err := handler(ctx, req)

		fields := []interfaces.Field{
			interfaces.String("code", code(err).String()),
			interfaces.Duration("duration", time.Since(start)),
		}
		if err != nil {
			reqLogger.Error("gRPC request failed", append(fields, interfaces.Error(err))...)
		} else {
			reqLogger.Info("gRPC request completed", fields...)
		}

		return resp, err
	}
}

// StreamLoggingInterceptor logs streaming RPC calls.
func StreamLoggingInterceptor(logger interfaces.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()

		reqLogger := logger.WithFields(
			interfaces.String("request_id", RequestID(ss.Context())),
			interfaces.String("method", info.FullMethod),
			interfaces.Bool("client_stream", info.IsClientStream),
			interfaces.Bool("server_stream", info.IsServerStream),
		)

		err := handler(srv, &loggingServerStream{ServerStream: ss, logger: reqLogger})

		fields := []interfaces.Field{
			interfaces.String("code", code(err).String()),
			interfaces.Duration("duration", time.Since(start)),
		}
		if err != nil {
			reqLogger.Error("gRPC stream failed", append(fields, interfaces.Error(err))...)
		} else {
			reqLogger.Info("gRPC stream completed", fields...)
		}

		return err
	}
}

type loggingServerStream struct {
	grpc.ServerStream

	logger interfaces.Logger
}

func (s *loggingServerStream) Context() context.Context {
	return pkglogger.WithContext(s.ServerStream.Context(), s.logger)
}

func (s *loggingServerStream) SendMsg(m interface{}) error {
	err := s.ServerStream.SendMsg(m)
	if err != nil {
		s.logger.Error("failed to send message", interfaces.Error(err))
	}
	return err
}

// RequestID returns the request id of the incoming metadata, or a new one.
func RequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.New().String()
}

func code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Unknown
}
