package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CatalogService_CreateProduct_FullMethodName   = "/factory.v1.CatalogService/CreateProduct"
	CatalogService_BuildProduct_FullMethodName    = "/factory.v1.CatalogService/BuildProduct"
	CatalogService_CloneProduct_FullMethodName    = "/factory.v1.CatalogService/CloneProduct"
	CatalogService_RegisterProduct_FullMethodName = "/factory.v1.CatalogService/RegisterProduct"
	CatalogService_ListVariants_FullMethodName    = "/factory.v1.CatalogService/ListVariants"
)

type CatalogServiceClient interface {
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	BuildProduct(ctx context.Context, in *BuildProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	CloneProduct(ctx context.Context, in *CloneProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	RegisterProduct(ctx context.Context, in *RegisterProductRequest, opts ...grpc.CallOption) (*RegisterProductResponse, error)
	ListVariants(ctx context.Context, in *ListVariantsRequest, opts ...grpc.CallOption) (*ListVariantsResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *catalogServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.invoke(ctx, CatalogService_CreateProduct_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) BuildProduct(ctx context.Context, in *BuildProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.invoke(ctx, CatalogService_BuildProduct_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) CloneProduct(ctx context.Context, in *CloneProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.invoke(ctx, CatalogService_CloneProduct_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) RegisterProduct(ctx context.Context, in *RegisterProductRequest, opts ...grpc.CallOption) (*RegisterProductResponse, error) {
	out := new(RegisterProductResponse)
	if err := c.invoke(ctx, CatalogService_RegisterProduct_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListVariants(ctx context.Context, in *ListVariantsRequest, opts ...grpc.CallOption) (*ListVariantsResponse, error) {
	out := new(ListVariantsResponse)
	if err := c.invoke(ctx, CatalogService_ListVariants_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type CatalogServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error)
	BuildProduct(context.Context, *BuildProductRequest) (*ProductResponse, error)
	CloneProduct(context.Context, *CloneProductRequest) (*ProductResponse, error)
	RegisterProduct(context.Context, *RegisterProductRequest) (*RegisterProductResponse, error)
	ListVariants(context.Context, *ListVariantsRequest) (*ListVariantsResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to stay forward compatible.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateProduct not implemented")
}

func (UnimplementedCatalogServiceServer) BuildProduct(context.Context, *BuildProductRequest) (*ProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BuildProduct not implemented")
}

func (UnimplementedCatalogServiceServer) CloneProduct(context.Context, *CloneProductRequest) (*ProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloneProduct not implemented")
}

func (UnimplementedCatalogServiceServer) RegisterProduct(context.Context, *RegisterProductRequest) (*RegisterProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterProduct not implemented")
}

func (UnimplementedCatalogServiceServer) ListVariants(context.Context, *ListVariantsRequest) (*ListVariantsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListVariants not implemented")
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func unaryHandler[Req any](fullMethod string, call func(CatalogServiceServer, context.Context, *Req) (any, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "factory.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProduct",
			Handler: unaryHandler(CatalogService_CreateProduct_FullMethodName,
				func(s CatalogServiceServer, ctx context.Context, in *CreateProductRequest) (any, error) {
					return s.CreateProduct(ctx, in)
				}),
		},
		{
			MethodName: "BuildProduct",
			Handler: unaryHandler(CatalogService_BuildProduct_FullMethodName,
				func(s CatalogServiceServer, ctx context.Context, in *BuildProductRequest) (any, error) {
					return s.BuildProduct(ctx, in)
				}),
		},
		{
			MethodName: "CloneProduct",
			Handler: unaryHandler(CatalogService_CloneProduct_FullMethodName,
				func(s CatalogServiceServer, ctx context.Context, in *CloneProductRequest) (any, error) {
					return s.CloneProduct(ctx, in)
				}),
		},
		{
			MethodName: "RegisterProduct",
			Handler: unaryHandler(CatalogService_RegisterProduct_FullMethodName,
				func(s CatalogServiceServer, ctx context.Context, in *RegisterProductRequest) (any, error) {
					return s.RegisterProduct(ctx, in)
				}),
		},
		{
			MethodName: "ListVariants",
			Handler: unaryHandler(CatalogService_ListVariants_FullMethodName,
				func(s CatalogServiceServer, ctx context.Context, in *ListVariantsRequest) (any, error) {
					return s.ListVariants(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "factory/v1/catalog.proto",
}
