// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: specs/v1/specs.proto

package specsv1

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
	SpecsService_ProcessDocuments_FullMethodName = "/specs.v1.SpecsService/ProcessDocuments"
	SpecsService_GetSpecs_FullMethodName         = "/specs.v1.SpecsService/GetSpecs"
	SpecsService_UpdateSpecs_FullMethodName      = "/specs.v1.SpecsService/UpdateSpecs"
	SpecsService_ClassifyDefects_FullMethodName  = "/specs.v1.SpecsService/ClassifyDefects"
	SpecsService_ExportMaster_FullMethodName     = "/specs.v1.SpecsService/ExportMaster"
)

// SpecsServiceClient is the client API for SpecsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SpecsService resolves product specifications out of uploaded documents
// and classifies reported defects against the merged master.
type SpecsServiceClient interface {
	// ProcessDocuments extracts, parses, and persists spec variants from a
	// batch of documents in one transactional run. Defect records, when
	// present, are classified against the run's fresh master.
	ProcessDocuments(ctx context.Context, in *ProcessDocumentsRequest, opts ...grpc.CallOption) (*ProcessDocumentsResponse, error)
	// GetSpecs answers a parameter-resolution query under a view/strategy.
	GetSpecs(ctx context.Context, in *GetSpecsRequest, opts ...grpc.CallOption) (*GetSpecsResponse, error)
	// UpdateSpecs applies manual USER overrides and returns the new master.
	UpdateSpecs(ctx context.Context, in *UpdateSpecsRequest, opts ...grpc.CallOption) (*UpdateSpecsResponse, error)
	// ClassifyDefects classifies a batch of defect records against the
	// current merged master.
	ClassifyDefects(ctx context.Context, in *ClassifyDefectsRequest, opts ...grpc.CallOption) (*ClassifyDefectsResponse, error)
	// ExportMaster renders the merged master as an XLSX workbook.
	ExportMaster(ctx context.Context, in *ExportMasterRequest, opts ...grpc.CallOption) (*ExportMasterResponse, error)
}

type specsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSpecsServiceClient(cc grpc.ClientConnInterface) SpecsServiceClient {
	return &specsServiceClient{cc}
}

func (c *specsServiceClient) ProcessDocuments(ctx context.Context, in *ProcessDocumentsRequest, opts ...grpc.CallOption) (*ProcessDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDocumentsResponse)
	err := c.cc.Invoke(ctx, SpecsService_ProcessDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *specsServiceClient) GetSpecs(ctx context.Context, in *GetSpecsRequest, opts ...grpc.CallOption) (*GetSpecsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSpecsResponse)
	err := c.cc.Invoke(ctx, SpecsService_GetSpecs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *specsServiceClient) UpdateSpecs(ctx context.Context, in *UpdateSpecsRequest, opts ...grpc.CallOption) (*UpdateSpecsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateSpecsResponse)
	err := c.cc.Invoke(ctx, SpecsService_UpdateSpecs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *specsServiceClient) ClassifyDefects(ctx context.Context, in *ClassifyDefectsRequest, opts ...grpc.CallOption) (*ClassifyDefectsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClassifyDefectsResponse)
	err := c.cc.Invoke(ctx, SpecsService_ClassifyDefects_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *specsServiceClient) ExportMaster(ctx context.Context, in *ExportMasterRequest, opts ...grpc.CallOption) (*ExportMasterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportMasterResponse)
	err := c.cc.Invoke(ctx, SpecsService_ExportMaster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SpecsServiceServer is the server API for SpecsService service.
// All implementations must embed UnimplementedSpecsServiceServer
// for forward compatibility.
//
// SpecsService resolves product specifications out of uploaded documents
// and classifies reported defects against the merged master.
type SpecsServiceServer interface {
	// ProcessDocuments extracts, parses, and persists spec variants from a
	// batch of documents in one transactional run. Defect records, when
	// present, are classified against the run's fresh master.
	ProcessDocuments(context.Context, *ProcessDocumentsRequest) (*ProcessDocumentsResponse, error)
	// GetSpecs answers a parameter-resolution query under a view/strategy.
	GetSpecs(context.Context, *GetSpecsRequest) (*GetSpecsResponse, error)
	// UpdateSpecs applies manual USER overrides and returns the new master.
	UpdateSpecs(context.Context, *UpdateSpecsRequest) (*UpdateSpecsResponse, error)
	// ClassifyDefects classifies a batch of defect records against the
	// current merged master.
	ClassifyDefects(context.Context, *ClassifyDefectsRequest) (*ClassifyDefectsResponse, error)
	// ExportMaster renders the merged master as an XLSX workbook.
	ExportMaster(context.Context, *ExportMasterRequest) (*ExportMasterResponse, error)
	mustEmbedUnimplementedSpecsServiceServer()
}

// UnimplementedSpecsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSpecsServiceServer struct{}

func (UnimplementedSpecsServiceServer) ProcessDocuments(context.Context, *ProcessDocumentsRequest) (*ProcessDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessDocuments not implemented")
}
func (UnimplementedSpecsServiceServer) GetSpecs(context.Context, *GetSpecsRequest) (*GetSpecsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSpecs not implemented")
}
func (UnimplementedSpecsServiceServer) UpdateSpecs(context.Context, *UpdateSpecsRequest) (*UpdateSpecsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateSpecs not implemented")
}
func (UnimplementedSpecsServiceServer) ClassifyDefects(context.Context, *ClassifyDefectsRequest) (*ClassifyDefectsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClassifyDefects not implemented")
}
func (UnimplementedSpecsServiceServer) ExportMaster(context.Context, *ExportMasterRequest) (*ExportMasterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportMaster not implemented")
}
func (UnimplementedSpecsServiceServer) mustEmbedUnimplementedSpecsServiceServer() {}
func (UnimplementedSpecsServiceServer) testEmbeddedByValue()                      {}

// UnsafeSpecsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SpecsServiceServer will
// result in compilation errors.
type UnsafeSpecsServiceServer interface {
	mustEmbedUnimplementedSpecsServiceServer()
}

func RegisterSpecsServiceServer(s grpc.ServiceRegistrar, srv SpecsServiceServer) {
	// If the following call pancis, it indicates UnimplementedSpecsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SpecsService_ServiceDesc, srv)
}

func _SpecsService_ProcessDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpecsServiceServer).ProcessDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpecsService_ProcessDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpecsServiceServer).ProcessDocuments(ctx, req.(*ProcessDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpecsService_GetSpecs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSpecsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpecsServiceServer).GetSpecs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpecsService_GetSpecs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpecsServiceServer).GetSpecs(ctx, req.(*GetSpecsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpecsService_UpdateSpecs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateSpecsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpecsServiceServer).UpdateSpecs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpecsService_UpdateSpecs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpecsServiceServer).UpdateSpecs(ctx, req.(*UpdateSpecsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpecsService_ClassifyDefects_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyDefectsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpecsServiceServer).ClassifyDefects(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpecsService_ClassifyDefects_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpecsServiceServer).ClassifyDefects(ctx, req.(*ClassifyDefectsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpecsService_ExportMaster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportMasterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpecsServiceServer).ExportMaster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpecsService_ExportMaster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpecsServiceServer).ExportMaster(ctx, req.(*ExportMasterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SpecsService_ServiceDesc is the grpc.ServiceDesc for SpecsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SpecsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "specs.v1.SpecsService",
	HandlerType: (*SpecsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessDocuments",
			Handler:    _SpecsService_ProcessDocuments_Handler,
		},
		{
			MethodName: "GetSpecs",
			Handler:    _SpecsService_GetSpecs_Handler,
		},
		{
			MethodName: "UpdateSpecs",
			Handler:    _SpecsService_UpdateSpecs_Handler,
		},
		{
			MethodName: "ClassifyDefects",
			Handler:    _SpecsService_ClassifyDefects_Handler,
		},
		{
			MethodName: "ExportMaster",
			Handler:    _SpecsService_ExportMaster_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "specs/v1/specs.proto",
}
