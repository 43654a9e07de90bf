// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: copywriter.proto

package copywriter

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CopywriterService_DraftSection_FullMethodName  = "/copywriter.CopywriterService/DraftSection"
	CopywriterService_DraftDocument_FullMethodName = "/copywriter.CopywriterService/DraftDocument"
)

// CopywriterServiceClient is the client API for CopywriterService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CopywriterService is the external copy-generation service. Content
// payloads cross the wire as JSON strings; the engine treats them as
// opaque hashable values.
type CopywriterServiceClient interface {
	DraftSection(ctx context.Context, in *DraftSectionRequest, opts ...grpc.CallOption) (*DraftSectionResponse, error)
	DraftDocument(ctx context.Context, in *DraftDocumentRequest, opts ...grpc.CallOption) (*DraftDocumentResponse, error)
}

type copywriterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCopywriterServiceClient(cc grpc.ClientConnInterface) CopywriterServiceClient {
	return &copywriterServiceClient{cc}
}

func (c *copywriterServiceClient) DraftSection(ctx context.Context, in *DraftSectionRequest, opts ...grpc.CallOption) (*DraftSectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DraftSectionResponse)
	err := c.cc.Invoke(ctx, CopywriterService_DraftSection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *copywriterServiceClient) DraftDocument(ctx context.Context, in *DraftDocumentRequest, opts ...grpc.CallOption) (*DraftDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DraftDocumentResponse)
	err := c.cc.Invoke(ctx, CopywriterService_DraftDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CopywriterServiceServer is the server API for CopywriterService service.
// All implementations must embed UnimplementedCopywriterServiceServer
// for forward compatibility.
//
// CopywriterService is the external copy-generation service. Content
// payloads cross the wire as JSON strings; the engine treats them as
// opaque hashable values.
type CopywriterServiceServer interface {
	DraftSection(context.Context, *DraftSectionRequest) (*DraftSectionResponse, error)
	DraftDocument(context.Context, *DraftDocumentRequest) (*DraftDocumentResponse, error)
	mustEmbedUnimplementedCopywriterServiceServer()
}

// UnimplementedCopywriterServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCopywriterServiceServer struct{}

func (UnimplementedCopywriterServiceServer) DraftSection(context.Context, *DraftSectionRequest) (*DraftSectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DraftSection not implemented")
}
func (UnimplementedCopywriterServiceServer) DraftDocument(context.Context, *DraftDocumentRequest) (*DraftDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DraftDocument not implemented")
}
func (UnimplementedCopywriterServiceServer) mustEmbedUnimplementedCopywriterServiceServer() {}
func (UnimplementedCopywriterServiceServer) testEmbeddedByValue()                           {}

// UnsafeCopywriterServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CopywriterServiceServer will
// result in compilation errors.
type UnsafeCopywriterServiceServer interface {
	mustEmbedUnimplementedCopywriterServiceServer()
}

func RegisterCopywriterServiceServer(s grpc.ServiceRegistrar, srv CopywriterServiceServer) {
	// If the following call pancis, it indicates UnimplementedCopywriterServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CopywriterService_ServiceDesc, srv)
}

func _CopywriterService_DraftSection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DraftSectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CopywriterServiceServer).DraftSection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CopywriterService_DraftSection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CopywriterServiceServer).DraftSection(ctx, req.(*DraftSectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CopywriterService_DraftDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DraftDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CopywriterServiceServer).DraftDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CopywriterService_DraftDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CopywriterServiceServer).DraftDocument(ctx, req.(*DraftDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CopywriterService_ServiceDesc is the grpc.ServiceDesc for CopywriterService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CopywriterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "copywriter.CopywriterService",
	HandlerType: (*CopywriterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DraftSection",
			Handler:    _CopywriterService_DraftSection_Handler,
		},
		{
			MethodName: "DraftDocument",
			Handler:    _CopywriterService_DraftDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "copywriter.proto",
}
