// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: copywriter.proto

package copywriter

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type DraftSectionRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Scope           string                 `protobuf:"bytes,1,opt,name=scope,proto3" json:"scope,omitempty"`
	Segment         string                 `protobuf:"bytes,2,opt,name=segment,proto3" json:"segment,omitempty"`
	Slot            string                 `protobuf:"bytes,3,opt,name=slot,proto3" json:"slot,omitempty"`
	Brief           string                 `protobuf:"bytes,4,opt,name=brief,proto3" json:"brief,omitempty"`
	BaseContentJson string                 `protobuf:"bytes,5,opt,name=base_content_json,json=baseContentJson,proto3" json:"base_content_json,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DraftSectionRequest) Reset() {
	*x = DraftSectionRequest{}
	mi := &file_copywriter_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DraftSectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DraftSectionRequest) ProtoMessage() {}

func (x *DraftSectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_copywriter_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DraftSectionRequest.ProtoReflect.Descriptor instead.
func (*DraftSectionRequest) Descriptor() ([]byte, []int) {
	return file_copywriter_proto_rawDescGZIP(), []int{0}
}

func (x *DraftSectionRequest) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *DraftSectionRequest) GetSegment() string {
	if x != nil {
		return x.Segment
	}
	return ""
}

func (x *DraftSectionRequest) GetSlot() string {
	if x != nil {
		return x.Slot
	}
	return ""
}

func (x *DraftSectionRequest) GetBrief() string {
	if x != nil {
		return x.Brief
	}
	return ""
}

func (x *DraftSectionRequest) GetBaseContentJson() string {
	if x != nil {
		return x.BaseContentJson
	}
	return ""
}

type DraftSectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContentJson   string                 `protobuf:"bytes,1,opt,name=content_json,json=contentJson,proto3" json:"content_json,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DraftSectionResponse) Reset() {
	*x = DraftSectionResponse{}
	mi := &file_copywriter_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DraftSectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DraftSectionResponse) ProtoMessage() {}

func (x *DraftSectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_copywriter_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DraftSectionResponse.ProtoReflect.Descriptor instead.
func (*DraftSectionResponse) Descriptor() ([]byte, []int) {
	return file_copywriter_proto_rawDescGZIP(), []int{1}
}

func (x *DraftSectionResponse) GetContentJson() string {
	if x != nil {
		return x.ContentJson
	}
	return ""
}

func (x *DraftSectionResponse) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type DraftDocumentRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Scope            string                 `protobuf:"bytes,1,opt,name=scope,proto3" json:"scope,omitempty"`
	Segment          string                 `protobuf:"bytes,2,opt,name=segment,proto3" json:"segment,omitempty"`
	Brief            string                 `protobuf:"bytes,3,opt,name=brief,proto3" json:"brief,omitempty"`
	BaseDocumentJson string                 `protobuf:"bytes,4,opt,name=base_document_json,json=baseDocumentJson,proto3" json:"base_document_json,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DraftDocumentRequest) Reset() {
	*x = DraftDocumentRequest{}
	mi := &file_copywriter_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DraftDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DraftDocumentRequest) ProtoMessage() {}

func (x *DraftDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_copywriter_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DraftDocumentRequest.ProtoReflect.Descriptor instead.
func (*DraftDocumentRequest) Descriptor() ([]byte, []int) {
	return file_copywriter_proto_rawDescGZIP(), []int{2}
}

func (x *DraftDocumentRequest) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *DraftDocumentRequest) GetSegment() string {
	if x != nil {
		return x.Segment
	}
	return ""
}

func (x *DraftDocumentRequest) GetBrief() string {
	if x != nil {
		return x.Brief
	}
	return ""
}

func (x *DraftDocumentRequest) GetBaseDocumentJson() string {
	if x != nil {
		return x.BaseDocumentJson
	}
	return ""
}

type DraftDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentJson  string                 `protobuf:"bytes,1,opt,name=document_json,json=documentJson,proto3" json:"document_json,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DraftDocumentResponse) Reset() {
	*x = DraftDocumentResponse{}
	mi := &file_copywriter_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DraftDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DraftDocumentResponse) ProtoMessage() {}

func (x *DraftDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_copywriter_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DraftDocumentResponse.ProtoReflect.Descriptor instead.
func (*DraftDocumentResponse) Descriptor() ([]byte, []int) {
	return file_copywriter_proto_rawDescGZIP(), []int{3}
}

func (x *DraftDocumentResponse) GetDocumentJson() string {
	if x != nil {
		return x.DocumentJson
	}
	return ""
}

func (x *DraftDocumentResponse) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

var File_copywriter_proto protoreflect.FileDescriptor

var file_copywriter_proto_rawDesc = string([]byte{
	0x0a, 0x10, 0x63, 0x6f, 0x70, 0x79, 0x77, 0x72, 0x69, 0x74, 0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x0a, 0x63, 0x6f, 0x70, 0x79, 0x77, 0x72, 0x69, 0x74, 0x65, 0x72, 0x22, 0x9b,
	0x01, 0x0a, 0x13, 0x44, 0x72, 0x61, 0x66, 0x74, 0x53, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x63, 0x6f, 0x70, 0x65, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x73, 0x63, 0x6f, 0x70, 0x65, 0x12, 0x18, 0x0a, 0x07,
	0x73, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x73,
	0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x73, 0x6c, 0x6f, 0x74, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x73, 0x6c, 0x6f, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x62, 0x72,
	0x69, 0x65, 0x66, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x62, 0x72, 0x69, 0x65, 0x66,
	0x12, 0x2a, 0x0a, 0x11, 0x62, 0x61, 0x73, 0x65, 0x5f, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74,
	0x5f, 0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0f, 0x62, 0x61, 0x73,
	0x65, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x4a, 0x73, 0x6f, 0x6e, 0x22, 0x4f, 0x0a, 0x14,
	0x44, 0x72, 0x61, 0x66, 0x74, 0x53, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x21, 0x0a, 0x0c, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x5f,
	0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x6f, 0x6e, 0x74,
	0x65, 0x6e, 0x74, 0x4a, 0x73, 0x6f, 0x6e, 0x12, 0x14, 0x0a, 0x05, 0x6d, 0x6f, 0x64, 0x65, 0x6c,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x22, 0x8a, 0x01,
	0x0a, 0x14, 0x44, 0x72, 0x61, 0x66, 0x74, 0x44, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x63, 0x6f, 0x70, 0x65, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x73, 0x63, 0x6f, 0x70, 0x65, 0x12, 0x18, 0x0a, 0x07,
	0x73, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x73,
	0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x62, 0x72, 0x69, 0x65, 0x66, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x62, 0x72, 0x69, 0x65, 0x66, 0x12, 0x2c, 0x0a, 0x12,
	0x62, 0x61, 0x73, 0x65, 0x5f, 0x64, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x5f, 0x6a, 0x73,
	0x6f, 0x6e, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x62, 0x61, 0x73, 0x65, 0x44, 0x6f,
	0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x4a, 0x73, 0x6f, 0x6e, 0x22, 0x52, 0x0a, 0x15, 0x44, 0x72,
	0x61, 0x66, 0x74, 0x44, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x64, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x5f,
	0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x64, 0x6f, 0x63, 0x75,
	0x6d, 0x65, 0x6e, 0x74, 0x4a, 0x73, 0x6f, 0x6e, 0x12, 0x14, 0x0a, 0x05, 0x6d, 0x6f, 0x64, 0x65,
	0x6c, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x32, 0xbc,
	0x01, 0x0a, 0x11, 0x43, 0x6f, 0x70, 0x79, 0x77, 0x72, 0x69, 0x74, 0x65, 0x72, 0x53, 0x65, 0x72,
	0x76, 0x69, 0x63, 0x65, 0x12, 0x51, 0x0a, 0x0c, 0x44, 0x72, 0x61, 0x66, 0x74, 0x53, 0x65, 0x63,
	0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1f, 0x2e, 0x63, 0x6f, 0x70, 0x79, 0x77, 0x72, 0x69, 0x74, 0x65,
	0x72, 0x2e, 0x44, 0x72, 0x61, 0x66, 0x74, 0x53, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x63, 0x6f, 0x70, 0x79, 0x77, 0x72, 0x69, 0x74,
	0x65, 0x72, 0x2e, 0x44, 0x72, 0x61, 0x66, 0x74, 0x53, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x54, 0x0a, 0x0d, 0x44, 0x72, 0x61, 0x66, 0x74,
	0x44, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x20, 0x2e, 0x63, 0x6f, 0x70, 0x79, 0x77,
	0x72, 0x69, 0x74, 0x65, 0x72, 0x2e, 0x44, 0x72, 0x61, 0x66, 0x74, 0x44, 0x6f, 0x63, 0x75, 0x6d,
	0x65, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21, 0x2e, 0x63, 0x6f, 0x70,
	0x79, 0x77, 0x72, 0x69, 0x74, 0x65, 0x72, 0x2e, 0x44, 0x72, 0x61, 0x66, 0x74, 0x44, 0x6f, 0x63,
	0x75, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x30, 0x5a,
	0x2e, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x7a, 0x68, 0x61, 0x6e,
	0x67, 0x2d, 0x6c, 0x69, 0x7a, 0x2f, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x73, 0x74, 0x6f, 0x72, 0x79,
	0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x63, 0x6f, 0x70, 0x79, 0x77, 0x72, 0x69, 0x74, 0x65, 0x72, 0x62,
	0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_copywriter_proto_rawDescOnce sync.Once
	file_copywriter_proto_rawDescData []byte
)

func file_copywriter_proto_rawDescGZIP() []byte {
	file_copywriter_proto_rawDescOnce.Do(func() {
		file_copywriter_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_copywriter_proto_rawDesc), len(file_copywriter_proto_rawDesc)))
	})
	return file_copywriter_proto_rawDescData
}

var file_copywriter_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_copywriter_proto_goTypes = []any{
	(*DraftSectionRequest)(nil),   // 0: copywriter.DraftSectionRequest
	(*DraftSectionResponse)(nil),  // 1: copywriter.DraftSectionResponse
	(*DraftDocumentRequest)(nil),  // 2: copywriter.DraftDocumentRequest
	(*DraftDocumentResponse)(nil), // 3: copywriter.DraftDocumentResponse
}
var file_copywriter_proto_depIdxs = []int32{
	0, // 0: copywriter.CopywriterService.DraftSection:input_type -> copywriter.DraftSectionRequest
	2, // 1: copywriter.CopywriterService.DraftDocument:input_type -> copywriter.DraftDocumentRequest
	1, // 2: copywriter.CopywriterService.DraftSection:output_type -> copywriter.DraftSectionResponse
	3, // 3: copywriter.CopywriterService.DraftDocument:output_type -> copywriter.DraftDocumentResponse
	2, // [2:4] is the sub-list for method output_type
	0, // [0:2] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_copywriter_proto_init() }
func file_copywriter_proto_init() {
	if File_copywriter_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_copywriter_proto_rawDesc), len(file_copywriter_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_copywriter_proto_goTypes,
		DependencyIndexes: file_copywriter_proto_depIdxs,
		MessageInfos:      file_copywriter_proto_msgTypes,
	}.Build()
	File_copywriter_proto = out.File
	file_copywriter_proto_goTypes = nil
	file_copywriter_proto_depIdxs = nil
}
