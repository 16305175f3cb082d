package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/rl1809/product-factory/internal/adapter/handler/pb"
	"github.com/rl1809/product-factory/internal/core/domain"
	"github.com/rl1809/product-factory/internal/core/service"
	"github.com/rl1809/product-factory/internal/metrics"
)

const requestIDMetadataKey = "x-request-id"

type GRPCHandler struct {
	pb.UnimplementedCatalogServiceServer
	catalog *service.CatalogService
}

func NewGRPCHandler(catalog *service.CatalogService) *GRPCHandler {
	return &GRPCHandler{catalog: catalog}
}

func (h *GRPCHandler) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.ProductResponse, error) {
	variant, err := domain.ParseVariant(req.GetVariant())
	if err != nil {
		return nil, mapError(err)
	}

	product, err := h.catalog.Create(ctx, variant)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.ProductResponse{Product: toPB(product)}, nil
}

func (h *GRPCHandler) BuildProduct(ctx context.Context, req *pb.BuildProductRequest) (*pb.ProductResponse, error) {
	draft, err := draftFromPB(req)
	if err != nil {
		return nil, mapError(err)
	}

	product, err := h.catalog.Build(ctx, draft)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.ProductResponse{Product: toPB(product)}, nil
}

func (h *GRPCHandler) CloneProduct(ctx context.Context, req *pb.CloneProductRequest) (*pb.ProductResponse, error) {
	source, err := fromPB(req.GetProduct())
	if err != nil {
		return nil, mapError(err)
	}

	clone, err := h.catalog.Clone(ctx, source)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.ProductResponse{Product: toPB(clone)}, nil
}

func (h *GRPCHandler) RegisterProduct(ctx context.Context, req *pb.RegisterProductRequest) (*pb.RegisterProductResponse, error) {
	product, err := fromPB(req.GetProduct())
	if err != nil {
		return nil, mapError(err)
	}

	if err := h.catalog.Register(ctx, product); err != nil {
		return nil, mapError(err)
	}
	return &pb.RegisterProductResponse{
		Message: fmt.Sprintf("Product %s added to inventory.", product.Name),
	}, nil
}

func (h *GRPCHandler) ListVariants(ctx context.Context, req *pb.ListVariantsRequest) (*pb.ListVariantsResponse, error) {
	return &pb.ListVariantsResponse{Variants: variantsToPB(h.catalog.Variants())}, nil
}

// mapError converts domain and context errors to gRPC status errors.
func mapError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownVariant), errors.Is(err, domain.ErrInvalidProductData):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}
	return status.Errorf(codes.Internal, "internal error: %v", err)
}

// LoggingInterceptor logs each unary call with its request id and counts it.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		requestID := incomingRequestID(ctx)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		metrics.GRPCRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
		logger.Debug("grpc request completed",
			zap.String("request_id", requestID),
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)))

		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIDMetadataKey); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.New().String()
}
