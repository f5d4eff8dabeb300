package interceptors

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// UnaryErrorInterceptor translates catalog errors into gRPC status errors.
// Errors that already carry a status pass through.
func UnaryErrorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		return resp, ToStatus(err)
	}
}

// ToStatus maps err to a gRPC status error.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch pkgerrors.TypeOf(err) {
	case pkgerrors.ErrorTypeNotFound:
		return status.Error(codes.NotFound, err.Error())
	case pkgerrors.ErrorTypeBadRequest:
		return status.Error(codes.InvalidArgument, err.Error())
	case pkgerrors.ErrorTypeConflict:
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
