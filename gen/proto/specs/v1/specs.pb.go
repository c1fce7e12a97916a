// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: specs/v1/specs.proto

package specsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
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

type DocumentUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentUpload) Reset() {
	*x = DocumentUpload{}
	mi := &file_specs_v1_specs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentUpload) ProtoMessage() {}

func (x *DocumentUpload) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentUpload.ProtoReflect.Descriptor instead.
func (*DocumentUpload) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{0}
}

func (x *DocumentUpload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *DocumentUpload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ProcessDocumentsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Documents []*DocumentUpload      `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	// Optional defect records to classify once the run commits.
	DefectRecords []*structpb.Struct `protobuf:"bytes,2,rep,name=defect_records,json=defectRecords,proto3" json:"defect_records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentsRequest) Reset() {
	*x = ProcessDocumentsRequest{}
	mi := &file_specs_v1_specs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentsRequest) ProtoMessage() {}

func (x *ProcessDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessDocumentsRequest) GetDocuments() []*DocumentUpload {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *ProcessDocumentsRequest) GetDefectRecords() []*structpb.Struct {
	if x != nil {
		return x.DefectRecords
	}
	return nil
}

type ProcessDocumentsResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	DocumentsProcessed int32                  `protobuf:"varint,1,opt,name=documents_processed,json=documentsProcessed,proto3" json:"documents_processed,omitempty"`
	VariantsCreated    int32                  `protobuf:"varint,2,opt,name=variants_created,json=variantsCreated,proto3" json:"variants_created,omitempty"`
	VariantsUpdated    int32                  `protobuf:"varint,3,opt,name=variants_updated,json=variantsUpdated,proto3" json:"variants_updated,omitempty"`
	// origin filename -> parsed candidate count
	ParsedBySource map[string]int32 `protobuf:"bytes,4,rep,name=parsed_by_source,json=parsedBySource,proto3" json:"parsed_by_source,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	Master         []*ResolvedSpec  `protobuf:"bytes,5,rep,name=master,proto3" json:"master,omitempty"`
	Decisions      []string         `protobuf:"bytes,6,rep,name=decisions,proto3" json:"decisions,omitempty"`
	Warnings       []string         `protobuf:"bytes,7,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessDocumentsResponse) Reset() {
	*x = ProcessDocumentsResponse{}
	mi := &file_specs_v1_specs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentsResponse) ProtoMessage() {}

func (x *ProcessDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessDocumentsResponse) GetDocumentsProcessed() int32 {
	if x != nil {
		return x.DocumentsProcessed
	}
	return 0
}

func (x *ProcessDocumentsResponse) GetVariantsCreated() int32 {
	if x != nil {
		return x.VariantsCreated
	}
	return 0
}

func (x *ProcessDocumentsResponse) GetVariantsUpdated() int32 {
	if x != nil {
		return x.VariantsUpdated
	}
	return 0
}

func (x *ProcessDocumentsResponse) GetParsedBySource() map[string]int32 {
	if x != nil {
		return x.ParsedBySource
	}
	return nil
}

func (x *ProcessDocumentsResponse) GetMaster() []*ResolvedSpec {
	if x != nil {
		return x.Master
	}
	return nil
}

func (x *ProcessDocumentsResponse) GetDecisions() []string {
	if x != nil {
		return x.Decisions
	}
	return nil
}

func (x *ProcessDocumentsResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type ResolvedSpec struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Param    string                 `protobuf:"bytes,1,opt,name=param,proto3" json:"param,omitempty"`
	Value    string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Unit     string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	Source   string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	Priority int32                  `protobuf:"varint,5,opt,name=priority,proto3" json:"priority,omitempty"`
	// RFC 3339 UTC
	UploadedAt    string `protobuf:"bytes,6,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	Raw           string `protobuf:"bytes,7,opt,name=raw,proto3" json:"raw,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolvedSpec) Reset() {
	*x = ResolvedSpec{}
	mi := &file_specs_v1_specs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolvedSpec) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolvedSpec) ProtoMessage() {}

func (x *ResolvedSpec) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolvedSpec.ProtoReflect.Descriptor instead.
func (*ResolvedSpec) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{3}
}

func (x *ResolvedSpec) GetParam() string {
	if x != nil {
		return x.Param
	}
	return ""
}

func (x *ResolvedSpec) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ResolvedSpec) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *ResolvedSpec) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ResolvedSpec) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *ResolvedSpec) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *ResolvedSpec) GetRaw() string {
	if x != nil {
		return x.Raw
	}
	return ""
}

type GetSpecsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// "merged" (default) or "raw"
	View string `protobuf:"bytes,1,opt,name=view,proto3" json:"view,omitempty"`
	// "priority" (default), "latest", or "all"
	Strategy      string `protobuf:"bytes,2,opt,name=strategy,proto3" json:"strategy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSpecsRequest) Reset() {
	*x = GetSpecsRequest{}
	mi := &file_specs_v1_specs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSpecsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSpecsRequest) ProtoMessage() {}

func (x *GetSpecsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSpecsRequest.ProtoReflect.Descriptor instead.
func (*GetSpecsRequest) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{4}
}

func (x *GetSpecsRequest) GetView() string {
	if x != nil {
		return x.View
	}
	return ""
}

func (x *GetSpecsRequest) GetStrategy() string {
	if x != nil {
		return x.Strategy
	}
	return ""
}

type SpecGroup struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Variants      []*ResolvedSpec        `protobuf:"bytes,1,rep,name=variants,proto3" json:"variants,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpecGroup) Reset() {
	*x = SpecGroup{}
	mi := &file_specs_v1_specs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpecGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpecGroup) ProtoMessage() {}

func (x *SpecGroup) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpecGroup.ProtoReflect.Descriptor instead.
func (*SpecGroup) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{5}
}

func (x *SpecGroup) GetVariants() []*ResolvedSpec {
	if x != nil {
		return x.Variants
	}
	return nil
}

type GetSpecsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// exactly one of the three is populated, mirroring view/strategy
	Merged        []*ResolvedSpec       `protobuf:"bytes,1,rep,name=merged,proto3" json:"merged,omitempty"`
	Grouped       map[string]*SpecGroup `protobuf:"bytes,2,rep,name=grouped,proto3" json:"grouped,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Raw           []*ResolvedSpec       `protobuf:"bytes,3,rep,name=raw,proto3" json:"raw,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSpecsResponse) Reset() {
	*x = GetSpecsResponse{}
	mi := &file_specs_v1_specs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSpecsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSpecsResponse) ProtoMessage() {}

func (x *GetSpecsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSpecsResponse.ProtoReflect.Descriptor instead.
func (*GetSpecsResponse) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{6}
}

func (x *GetSpecsResponse) GetMerged() []*ResolvedSpec {
	if x != nil {
		return x.Merged
	}
	return nil
}

func (x *GetSpecsResponse) GetGrouped() map[string]*SpecGroup {
	if x != nil {
		return x.Grouped
	}
	return nil
}

func (x *GetSpecsResponse) GetRaw() []*ResolvedSpec {
	if x != nil {
		return x.Raw
	}
	return nil
}

type UpdateSpecsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// parameter -> update payload; each value is either a structured
	// {value, unit, source} object or a free-text string like "25 mm"
	Updates       *structpb.Struct `protobuf:"bytes,1,opt,name=updates,proto3" json:"updates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateSpecsRequest) Reset() {
	*x = UpdateSpecsRequest{}
	mi := &file_specs_v1_specs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateSpecsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateSpecsRequest) ProtoMessage() {}

func (x *UpdateSpecsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateSpecsRequest.ProtoReflect.Descriptor instead.
func (*UpdateSpecsRequest) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateSpecsRequest) GetUpdates() *structpb.Struct {
	if x != nil {
		return x.Updates
	}
	return nil
}

type UpdateSpecsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applied       int32                  `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	Master        []*ResolvedSpec        `protobuf:"bytes,2,rep,name=master,proto3" json:"master,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateSpecsResponse) Reset() {
	*x = UpdateSpecsResponse{}
	mi := &file_specs_v1_specs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateSpecsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateSpecsResponse) ProtoMessage() {}

func (x *UpdateSpecsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateSpecsResponse.ProtoReflect.Descriptor instead.
func (*UpdateSpecsResponse) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateSpecsResponse) GetApplied() int32 {
	if x != nil {
		return x.Applied
	}
	return 0
}

func (x *UpdateSpecsResponse) GetMaster() []*ResolvedSpec {
	if x != nil {
		return x.Master
	}
	return nil
}

type ClassifyDefectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*structpb.Struct     `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyDefectsRequest) Reset() {
	*x = ClassifyDefectsRequest{}
	mi := &file_specs_v1_specs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyDefectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyDefectsRequest) ProtoMessage() {}

func (x *ClassifyDefectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyDefectsRequest.ProtoReflect.Descriptor instead.
func (*ClassifyDefectsRequest) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{9}
}

func (x *ClassifyDefectsRequest) GetRecords() []*structpb.Struct {
	if x != nil {
		return x.Records
	}
	return nil
}

type ClassifyDefectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Decisions     []string               `protobuf:"bytes,1,rep,name=decisions,proto3" json:"decisions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyDefectsResponse) Reset() {
	*x = ClassifyDefectsResponse{}
	mi := &file_specs_v1_specs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyDefectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyDefectsResponse) ProtoMessage() {}

func (x *ClassifyDefectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyDefectsResponse.ProtoReflect.Descriptor instead.
func (*ClassifyDefectsResponse) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{10}
}

func (x *ClassifyDefectsResponse) GetDecisions() []string {
	if x != nil {
		return x.Decisions
	}
	return nil
}

type ExportMasterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Strategy      string                 `protobuf:"bytes,1,opt,name=strategy,proto3" json:"strategy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMasterRequest) Reset() {
	*x = ExportMasterRequest{}
	mi := &file_specs_v1_specs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMasterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMasterRequest) ProtoMessage() {}

func (x *ExportMasterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMasterRequest.ProtoReflect.Descriptor instead.
func (*ExportMasterRequest) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{11}
}

func (x *ExportMasterRequest) GetStrategy() string {
	if x != nil {
		return x.Strategy
	}
	return ""
}

type ExportMasterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Xlsx          []byte                 `protobuf:"bytes,2,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMasterResponse) Reset() {
	*x = ExportMasterResponse{}
	mi := &file_specs_v1_specs_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMasterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMasterResponse) ProtoMessage() {}

func (x *ExportMasterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_specs_v1_specs_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMasterResponse.ProtoReflect.Descriptor instead.
func (*ExportMasterResponse) Descriptor() ([]byte, []int) {
	return file_specs_v1_specs_proto_rawDescGZIP(), []int{12}
}

func (x *ExportMasterResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportMasterResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_specs_v1_specs_proto protoreflect.FileDescriptor

const file_specs_v1_specs_proto_rawDesc = "" +
	"\n" +
	"\x14specs/v1/specs.proto\x12\bspecs.v1\x1a\x1cgoogle/protobuf/struct.proto\"F\n" +
	"\x0eDocumentUpload\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\x91\x01\n" +
	"\x17ProcessDocumentsRequest\x126\n" +
	"\tdocuments\x18\x01 \x03(\v2\x18.specs.v1.DocumentUploadR\tdocuments\x12>\n" +
	"\x0edefect_records\x18\x02 \x03(\v2\x17.google.protobuf.StructR\rdefectRecords\"\xb0\x03\n" +
	"\x18ProcessDocumentsResponse\x12/\n" +
	"\x13documents_processed\x18\x01 \x01(\x05R\x12documentsProcessed\x12)\n" +
	"\x10variants_created\x18\x02 \x01(\x05R\x0fvariantsCreated\x12)\n" +
	"\x10variants_updated\x18\x03 \x01(\x05R\x0fvariantsUpdated\x12`\n" +
	"\x10parsed_by_source\x18\x04 \x03(\v26.specs.v1.ProcessDocumentsResponse.ParsedBySourceEntryR\x0eparsedBySource\x12.\n" +
	"\x06master\x18\x05 \x03(\v2\x16.specs.v1.ResolvedSpecR\x06master\x12\x1c\n" +
	"\tdecisions\x18\x06 \x03(\tR\tdecisions\x12\x1a\n" +
	"\bwarnings\x18\a \x03(\tR\bwarnings\x1aA\n" +
	"\x13ParsedBySourceEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\xb5\x01\n" +
	"\fResolvedSpec\x12\x14\n" +
	"\x05param\x18\x01 \x01(\tR\x05param\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\x12\x1a\n" +
	"\bpriority\x18\x05 \x01(\x05R\bpriority\x12\x1f\n" +
	"\vuploaded_at\x18\x06 \x01(\tR\n" +
	"uploadedAt\x12\x10\n" +
	"\x03raw\x18\a \x01(\tR\x03raw\"A\n" +
	"\x0fGetSpecsRequest\x12\x12\n" +
	"\x04view\x18\x01 \x01(\tR\x04view\x12\x1a\n" +
	"\bstrategy\x18\x02 \x01(\tR\bstrategy\"?\n" +
	"\tSpecGroup\x122\n" +
	"\bvariants\x18\x01 \x03(\v2\x16.specs.v1.ResolvedSpecR\bvariants\"\x80\x02\n" +
	"\x10GetSpecsResponse\x12.\n" +
	"\x06merged\x18\x01 \x03(\v2\x16.specs.v1.ResolvedSpecR\x06merged\x12A\n" +
	"\agrouped\x18\x02 \x03(\v2'.specs.v1.GetSpecsResponse.GroupedEntryR\agrouped\x12(\n" +
	"\x03raw\x18\x03 \x03(\v2\x16.specs.v1.ResolvedSpecR\x03raw\x1aO\n" +
	"\fGroupedEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12)\n" +
	"\x05value\x18\x02 \x01(\v2\x13.specs.v1.SpecGroupR\x05value:\x028\x01\"G\n" +
	"\x12UpdateSpecsRequest\x121\n" +
	"\aupdates\x18\x01 \x01(\v2\x17.google.protobuf.StructR\aupdates\"_\n" +
	"\x13UpdateSpecsResponse\x12\x18\n" +
	"\aapplied\x18\x01 \x01(\x05R\aapplied\x12.\n" +
	"\x06master\x18\x02 \x03(\v2\x16.specs.v1.ResolvedSpecR\x06master\"K\n" +
	"\x16ClassifyDefectsRequest\x121\n" +
	"\arecords\x18\x01 \x03(\v2\x17.google.protobuf.StructR\arecords\"7\n" +
	"\x17ClassifyDefectsResponse\x12\x1c\n" +
	"\tdecisions\x18\x01 \x03(\tR\tdecisions\"1\n" +
	"\x13ExportMasterRequest\x12\x1a\n" +
	"\bstrategy\x18\x01 \x01(\tR\bstrategy\"F\n" +
	"\x14ExportMasterResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x12\n" +
	"\x04xlsx\x18\x02 \x01(\fR\x04xlsx2\x9f\x03\n" +
	"\fSpecsService\x12Y\n" +
	"\x10ProcessDocuments\x12!.specs.v1.ProcessDocumentsRequest\x1a\".specs.v1.ProcessDocumentsResponse\x12A\n" +
	"\bGetSpecs\x12\x19.specs.v1.GetSpecsRequest\x1a\x1a.specs.v1.GetSpecsResponse\x12J\n" +
	"\vUpdateSpecs\x12\x1c.specs.v1.UpdateSpecsRequest\x1a\x1d.specs.v1.UpdateSpecsResponse\x12V\n" +
	"\x0fClassifyDefects\x12 .specs.v1.ClassifyDefectsRequest\x1a!.specs.v1.ClassifyDefectsResponse\x12M\n" +
	"\fExportMaster\x12\x1d.specs.v1.ExportMasterRequest\x1a\x1e.specs.v1.ExportMasterResponseB'Z%specmaster/gen/proto/specs/v1;specsv1b\x06proto3"

var (
	file_specs_v1_specs_proto_rawDescOnce sync.Once
	file_specs_v1_specs_proto_rawDescData []byte
)

func file_specs_v1_specs_proto_rawDescGZIP() []byte {
	file_specs_v1_specs_proto_rawDescOnce.Do(func() {
		file_specs_v1_specs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_specs_v1_specs_proto_rawDesc), len(file_specs_v1_specs_proto_rawDesc)))
	})
	return file_specs_v1_specs_proto_rawDescData
}

var file_specs_v1_specs_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_specs_v1_specs_proto_goTypes = []any{
	(*DocumentUpload)(nil),           // 0: specs.v1.DocumentUpload
	(*ProcessDocumentsRequest)(nil),  // 1: specs.v1.ProcessDocumentsRequest
	(*ProcessDocumentsResponse)(nil), // 2: specs.v1.ProcessDocumentsResponse
	(*ResolvedSpec)(nil),             // 3: specs.v1.ResolvedSpec
	(*GetSpecsRequest)(nil),          // 4: specs.v1.GetSpecsRequest
	(*SpecGroup)(nil),                // 5: specs.v1.SpecGroup
	(*GetSpecsResponse)(nil),         // 6: specs.v1.GetSpecsResponse
	(*UpdateSpecsRequest)(nil),       // 7: specs.v1.UpdateSpecsRequest
	(*UpdateSpecsResponse)(nil),      // 8: specs.v1.UpdateSpecsResponse
	(*ClassifyDefectsRequest)(nil),   // 9: specs.v1.ClassifyDefectsRequest
	(*ClassifyDefectsResponse)(nil),  // 10: specs.v1.ClassifyDefectsResponse
	(*ExportMasterRequest)(nil),      // 11: specs.v1.ExportMasterRequest
	(*ExportMasterResponse)(nil),     // 12: specs.v1.ExportMasterResponse
	nil,                              // 13: specs.v1.ProcessDocumentsResponse.ParsedBySourceEntry
	nil,                              // 14: specs.v1.GetSpecsResponse.GroupedEntry
	(*structpb.Struct)(nil),          // 15: google.protobuf.Struct
}
var file_specs_v1_specs_proto_depIdxs = []int32{
	0,  // 0: specs.v1.ProcessDocumentsRequest.documents:type_name -> specs.v1.DocumentUpload
	15, // 1: specs.v1.ProcessDocumentsRequest.defect_records:type_name -> google.protobuf.Struct
	13, // 2: specs.v1.ProcessDocumentsResponse.parsed_by_source:type_name -> specs.v1.ProcessDocumentsResponse.ParsedBySourceEntry
	3,  // 3: specs.v1.ProcessDocumentsResponse.master:type_name -> specs.v1.ResolvedSpec
	3,  // 4: specs.v1.SpecGroup.variants:type_name -> specs.v1.ResolvedSpec
	3,  // 5: specs.v1.GetSpecsResponse.merged:type_name -> specs.v1.ResolvedSpec
	14, // 6: specs.v1.GetSpecsResponse.grouped:type_name -> specs.v1.GetSpecsResponse.GroupedEntry
	3,  // 7: specs.v1.GetSpecsResponse.raw:type_name -> specs.v1.ResolvedSpec
	15, // 8: specs.v1.UpdateSpecsRequest.updates:type_name -> google.protobuf.Struct
	3,  // 9: specs.v1.UpdateSpecsResponse.master:type_name -> specs.v1.ResolvedSpec
	15, // 10: specs.v1.ClassifyDefectsRequest.records:type_name -> google.protobuf.Struct
	5,  // 11: specs.v1.GetSpecsResponse.GroupedEntry.value:type_name -> specs.v1.SpecGroup
	1,  // 12: specs.v1.SpecsService.ProcessDocuments:input_type -> specs.v1.ProcessDocumentsRequest
	4,  // 13: specs.v1.SpecsService.GetSpecs:input_type -> specs.v1.GetSpecsRequest
	7,  // 14: specs.v1.SpecsService.UpdateSpecs:input_type -> specs.v1.UpdateSpecsRequest
	9,  // 15: specs.v1.SpecsService.ClassifyDefects:input_type -> specs.v1.ClassifyDefectsRequest
	11, // 16: specs.v1.SpecsService.ExportMaster:input_type -> specs.v1.ExportMasterRequest
	2,  // 17: specs.v1.SpecsService.ProcessDocuments:output_type -> specs.v1.ProcessDocumentsResponse
	6,  // 18: specs.v1.SpecsService.GetSpecs:output_type -> specs.v1.GetSpecsResponse
	8,  // 19: specs.v1.SpecsService.UpdateSpecs:output_type -> specs.v1.UpdateSpecsResponse
	10, // 20: specs.v1.SpecsService.ClassifyDefects:output_type -> specs.v1.ClassifyDefectsResponse
	12, // 21: specs.v1.SpecsService.ExportMaster:output_type -> specs.v1.ExportMasterResponse
	17, // [17:22] is the sub-list for method output_type
	12, // [12:17] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_specs_v1_specs_proto_init() }
func file_specs_v1_specs_proto_init() {
	if File_specs_v1_specs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_specs_v1_specs_proto_rawDesc), len(file_specs_v1_specs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_specs_v1_specs_proto_goTypes,
		DependencyIndexes: file_specs_v1_specs_proto_depIdxs,
		MessageInfos:      file_specs_v1_specs_proto_msgTypes,
	}.Build()
	File_specs_v1_specs_proto = out.File
	file_specs_v1_specs_proto_goTypes = nil
	file_specs_v1_specs_proto_depIdxs = nil
}
