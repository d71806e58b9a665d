// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: trust/v1/trust.proto

package trustv1

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

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{0}
}

func (x *LoginRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type TokenPairResponse struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	UserId       string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	AccessToken  string                 `protobuf:"bytes,2,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken string                 `protobuf:"bytes,3,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	// Unix-время (секунды) истечения access-токена.
	AccessExpiresAt int64 `protobuf:"varint,4,opt,name=access_expires_at,json=accessExpiresAt,proto3" json:"access_expires_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *TokenPairResponse) Reset() {
	*x = TokenPairResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TokenPairResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TokenPairResponse) ProtoMessage() {}

func (x *TokenPairResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TokenPairResponse.ProtoReflect.Descriptor instead.
func (*TokenPairResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{1}
}

func (x *TokenPairResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *TokenPairResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *TokenPairResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

func (x *TokenPairResponse) GetAccessExpiresAt() int64 {
	if x != nil {
		return x.AccessExpiresAt
	}
	return 0
}

type RefreshTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RefreshToken  string                 `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshTokenRequest) Reset() {
	*x = RefreshTokenRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshTokenRequest) ProtoMessage() {}

func (x *RefreshTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshTokenRequest.ProtoReflect.Descriptor instead.
func (*RefreshTokenRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{2}
}

func (x *RefreshTokenRequest) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type RevokeTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RefreshToken  string                 `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeTokenRequest) Reset() {
	*x = RevokeTokenRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeTokenRequest) ProtoMessage() {}

func (x *RevokeTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeTokenRequest.ProtoReflect.Descriptor instead.
func (*RevokeTokenRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{3}
}

func (x *RevokeTokenRequest) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type RevokeTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeTokenResponse) Reset() {
	*x = RevokeTokenResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeTokenResponse) ProtoMessage() {}

func (x *RevokeTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeTokenResponse.ProtoReflect.Descriptor instead.
func (*RevokeTokenResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{4}
}

func (x *RevokeTokenResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

type RevokeAllSessionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeAllSessionsRequest) Reset() {
	*x = RevokeAllSessionsRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeAllSessionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeAllSessionsRequest) ProtoMessage() {}

func (x *RevokeAllSessionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeAllSessionsRequest.ProtoReflect.Descriptor instead.
func (*RevokeAllSessionsRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{5}
}

func (x *RevokeAllSessionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type RevokeAllSessionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RevokedCount  int64                  `protobuf:"varint,1,opt,name=revoked_count,json=revokedCount,proto3" json:"revoked_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeAllSessionsResponse) Reset() {
	*x = RevokeAllSessionsResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeAllSessionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeAllSessionsResponse) ProtoMessage() {}

func (x *RevokeAllSessionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeAllSessionsResponse.ProtoReflect.Descriptor instead.
func (*RevokeAllSessionsResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{6}
}

func (x *RevokeAllSessionsResponse) GetRevokedCount() int64 {
	if x != nil {
		return x.RevokedCount
	}
	return 0
}

type ValidateTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateTokenRequest) Reset() {
	*x = ValidateTokenRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateTokenRequest) ProtoMessage() {}

func (x *ValidateTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateTokenRequest.ProtoReflect.Descriptor instead.
func (*ValidateTokenRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{7}
}

func (x *ValidateTokenRequest) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

type ValidateTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Valid         bool                   `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateTokenResponse) Reset() {
	*x = ValidateTokenResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateTokenResponse) ProtoMessage() {}

func (x *ValidateTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateTokenResponse.ProtoReflect.Descriptor instead.
func (*ValidateTokenResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{8}
}

func (x *ValidateTokenResponse) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

func (x *ValidateTokenResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type LikePostRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PostId        string                 `protobuf:"bytes,1,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LikePostRequest) Reset() {
	*x = LikePostRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LikePostRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LikePostRequest) ProtoMessage() {}

func (x *LikePostRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LikePostRequest.ProtoReflect.Descriptor instead.
func (*LikePostRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{9}
}

func (x *LikePostRequest) GetPostId() string {
	if x != nil {
		return x.PostId
	}
	return ""
}

func (x *LikePostRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type LikePostResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	LikeId string                 `protobuf:"bytes,1,opt,name=like_id,json=likeId,proto3" json:"like_id,omitempty"`
	// Момент лайка в миллисекундах Unix — ровно он входит в подпись.
	LikedAtMs     int64  `protobuf:"varint,2,opt,name=liked_at_ms,json=likedAtMs,proto3" json:"liked_at_ms,omitempty"`
	Signature     string `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LikePostResponse) Reset() {
	*x = LikePostResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LikePostResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LikePostResponse) ProtoMessage() {}

func (x *LikePostResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LikePostResponse.ProtoReflect.Descriptor instead.
func (*LikePostResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{10}
}

func (x *LikePostResponse) GetLikeId() string {
	if x != nil {
		return x.LikeId
	}
	return ""
}

func (x *LikePostResponse) GetLikedAtMs() int64 {
	if x != nil {
		return x.LikedAtMs
	}
	return 0
}

func (x *LikePostResponse) GetSignature() string {
	if x != nil {
		return x.Signature
	}
	return ""
}

type ViewPostRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PostId        string                 `protobuf:"bytes,1,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ViewPostRequest) Reset() {
	*x = ViewPostRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ViewPostRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ViewPostRequest) ProtoMessage() {}

func (x *ViewPostRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ViewPostRequest.ProtoReflect.Descriptor instead.
func (*ViewPostRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{11}
}

func (x *ViewPostRequest) GetPostId() string {
	if x != nil {
		return x.PostId
	}
	return ""
}

func (x *ViewPostRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ViewPostResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ViewPostResponse) Reset() {
	*x = ViewPostResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ViewPostResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ViewPostResponse) ProtoMessage() {}

func (x *ViewPostResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ViewPostResponse.ProtoReflect.Descriptor instead.
func (*ViewPostResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{12}
}

func (x *ViewPostResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

type PostStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PostId        string                 `protobuf:"bytes,1,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PostStatsRequest) Reset() {
	*x = PostStatsRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PostStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PostStatsRequest) ProtoMessage() {}

func (x *PostStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PostStatsRequest.ProtoReflect.Descriptor instead.
func (*PostStatsRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{13}
}

func (x *PostStatsRequest) GetPostId() string {
	if x != nil {
		return x.PostId
	}
	return ""
}

type PostStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Likes         int64                  `protobuf:"varint,1,opt,name=likes,proto3" json:"likes,omitempty"`
	Views         int64                  `protobuf:"varint,2,opt,name=views,proto3" json:"views,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PostStatsResponse) Reset() {
	*x = PostStatsResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PostStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PostStatsResponse) ProtoMessage() {}

func (x *PostStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PostStatsResponse.ProtoReflect.Descriptor instead.
func (*PostStatsResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{14}
}

func (x *PostStatsResponse) GetLikes() int64 {
	if x != nil {
		return x.Likes
	}
	return 0
}

func (x *PostStatsResponse) GetViews() int64 {
	if x != nil {
		return x.Views
	}
	return 0
}

type ListPostLikesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PostId        string                 `protobuf:"bytes,1,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPostLikesRequest) Reset() {
	*x = ListPostLikesRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPostLikesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPostLikesRequest) ProtoMessage() {}

func (x *ListPostLikesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPostLikesRequest.ProtoReflect.Descriptor instead.
func (*ListPostLikesRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{15}
}

func (x *ListPostLikesRequest) GetPostId() string {
	if x != nil {
		return x.PostId
	}
	return ""
}

type Like struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PostId        string                 `protobuf:"bytes,2,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	UserId        string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	LikedAtMs     int64                  `protobuf:"varint,4,opt,name=liked_at_ms,json=likedAtMs,proto3" json:"liked_at_ms,omitempty"`
	Signature     string                 `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Like) Reset() {
	*x = Like{}
	mi := &file_trust_v1_trust_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Like) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Like) ProtoMessage() {}

func (x *Like) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Like.ProtoReflect.Descriptor instead.
func (*Like) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{16}
}

func (x *Like) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Like) GetPostId() string {
	if x != nil {
		return x.PostId
	}
	return ""
}

func (x *Like) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Like) GetLikedAtMs() int64 {
	if x != nil {
		return x.LikedAtMs
	}
	return 0
}

func (x *Like) GetSignature() string {
	if x != nil {
		return x.Signature
	}
	return ""
}

type ListPostLikesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Likes         []*Like                `protobuf:"bytes,1,rep,name=likes,proto3" json:"likes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPostLikesResponse) Reset() {
	*x = ListPostLikesResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPostLikesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPostLikesResponse) ProtoMessage() {}

func (x *ListPostLikesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPostLikesResponse.ProtoReflect.Descriptor instead.
func (*ListPostLikesResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{17}
}

func (x *ListPostLikesResponse) GetLikes() []*Like {
	if x != nil {
		return x.Likes
	}
	return nil
}

type VerifyLikeIntegrityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LikeId        string                 `protobuf:"bytes,1,opt,name=like_id,json=likeId,proto3" json:"like_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyLikeIntegrityRequest) Reset() {
	*x = VerifyLikeIntegrityRequest{}
	mi := &file_trust_v1_trust_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyLikeIntegrityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyLikeIntegrityRequest) ProtoMessage() {}

func (x *VerifyLikeIntegrityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyLikeIntegrityRequest.ProtoReflect.Descriptor instead.
func (*VerifyLikeIntegrityRequest) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{18}
}

func (x *VerifyLikeIntegrityRequest) GetLikeId() string {
	if x != nil {
		return x.LikeId
	}
	return ""
}

type VerifyLikeIntegrityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Valid         bool                   `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyLikeIntegrityResponse) Reset() {
	*x = VerifyLikeIntegrityResponse{}
	mi := &file_trust_v1_trust_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyLikeIntegrityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyLikeIntegrityResponse) ProtoMessage() {}

func (x *VerifyLikeIntegrityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_v1_trust_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyLikeIntegrityResponse.ProtoReflect.Descriptor instead.
func (*VerifyLikeIntegrityResponse) Descriptor() ([]byte, []int) {
	return file_trust_v1_trust_proto_rawDescGZIP(), []int{19}
}

func (x *VerifyLikeIntegrityResponse) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

var File_trust_v1_trust_proto protoreflect.FileDescriptor

const file_trust_v1_trust_proto_rawDesc = "" +
	"\n" +
	"\x14trust/v1/trust.proto\x12\btrust.v1\"'\n" +
	"\fLoginRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\xa0\x01\n" +
	"\x11TokenPairResponse\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12!\n" +
	"\faccess_token\x18\x02 \x01(\tR\vaccessToken\x12#\n" +
	"\rrefresh_token\x18\x03 \x01(\tR\frefreshToken\x12*\n" +
	"\x11access_expires_at\x18\x04 \x01(\x03R\x0faccessExpiresAt\":\n" +
	"\x13RefreshTokenRequest\x12#\n" +
	"\rrefresh_token\x18\x01 \x01(\tR\frefreshToken\"9\n" +
	"\x12RevokeTokenRequest\x12#\n" +
	"\rrefresh_token\x18\x01 \x01(\tR\frefreshToken\"%\n" +
	"\x13RevokeTokenResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\"3\n" +
	"\x18RevokeAllSessionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"@\n" +
	"\x19RevokeAllSessionsResponse\x12#\n" +
	"\rrevoked_count\x18\x01 \x01(\x03R\frevokedCount\"9\n" +
	"\x14ValidateTokenRequest\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\"F\n" +
	"\x15ValidateTokenResponse\x12\x14\n" +
	"\x05valid\x18\x01 \x01(\bR\x05valid\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"C\n" +
	"\x0fLikePostRequest\x12\x17\n" +
	"\apost_id\x18\x01 \x01(\tR\x06postId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"i\n" +
	"\x10LikePostResponse\x12\x17\n" +
	"\alike_id\x18\x01 \x01(\tR\x06likeId\x12\x1e\n" +
	"\vliked_at_ms\x18\x02 \x01(\x03R\tlikedAtMs\x12\x1c\n" +
	"\tsignature\x18\x03 \x01(\tR\tsignature\"C\n" +
	"\x0fViewPostRequest\x12\x17\n" +
	"\apost_id\x18\x01 \x01(\tR\x06postId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"\"\n" +
	"\x10ViewPostResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\"+\n" +
	"\x10PostStatsRequest\x12\x17\n" +
	"\apost_id\x18\x01 \x01(\tR\x06postId\"?\n" +
	"\x11PostStatsResponse\x12\x14\n" +
	"\x05likes\x18\x01 \x01(\x03R\x05likes\x12\x14\n" +
	"\x05views\x18\x02 \x01(\x03R\x05views\"/\n" +
	"\x14ListPostLikesRequest\x12\x17\n" +
	"\apost_id\x18\x01 \x01(\tR\x06postId\"\x86\x01\n" +
	"\x04Like\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\apost_id\x18\x02 \x01(\tR\x06postId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x1e\n" +
	"\vliked_at_ms\x18\x04 \x01(\x03R\tlikedAtMs\x12\x1c\n" +
	"\tsignature\x18\x05 \x01(\tR\tsignature\"=\n" +
	"\x15ListPostLikesResponse\x12$\n" +
	"\x05likes\x18\x01 \x03(\v2\x0e.trust.v1.LikeR\x05likes\"5\n" +
	"\x1aVerifyLikeIntegrityRequest\x12\x17\n" +
	"\alike_id\x18\x01 \x01(\tR\x06likeId\"3\n" +
	"\x1bVerifyLikeIntegrityResponse\x12\x14\n" +
	"\x05valid\x18\x01 \x01(\bR\x05valid2\x96\x06\n" +
	"\fTrustService\x12<\n" +
	"\x05Login\x12\x16.trust.v1.LoginRequest\x1a\x1b.trust.v1.TokenPairResponse\x12J\n" +
	"\fRefreshToken\x12\x1d.trust.v1.RefreshTokenRequest\x1a\x1b.trust.v1.TokenPairResponse\x12J\n" +
	"\vRevokeToken\x12\x1c.trust.v1.RevokeTokenRequest\x1a\x1d.trust.v1.RevokeTokenResponse\x12\\\n" +
	"\x11RevokeAllSessions\x12\".trust.v1.RevokeAllSessionsRequest\x1a#.trust.v1.RevokeAllSessionsResponse\x12P\n" +
	"\rValidateToken\x12\x1e.trust.v1.ValidateTokenRequest\x1a\x1f.trust.v1.ValidateTokenResponse\x12A\n" +
	"\bLikePost\x12\x19.trust.v1.LikePostRequest\x1a\x1a.trust.v1.LikePostResponse\x12A\n" +
	"\bViewPost\x12\x19.trust.v1.ViewPostRequest\x1a\x1a.trust.v1.ViewPostResponse\x12D\n" +
	"\tPostStats\x12\x1a.trust.v1.PostStatsRequest\x1a\x1b.trust.v1.PostStatsResponse\x12P\n" +
	"\rListPostLikes\x12\x1e.trust.v1.ListPostLikesRequest\x1a\x1f.trust.v1.ListPostLikesResponse\x12b\n" +
	"\x13VerifyLikeIntegrity\x12$.trust.v1.VerifyLikeIntegrityRequest\x1a%.trust.v1.VerifyLikeIntegrityResponseB:Z8github.com/pribylovaa/secure-social/gen/go/trust;trustv1b\x06proto3"

var (
	file_trust_v1_trust_proto_rawDescOnce sync.Once
	file_trust_v1_trust_proto_rawDescData []byte
)

func file_trust_v1_trust_proto_rawDescGZIP() []byte {
	file_trust_v1_trust_proto_rawDescOnce.Do(func() {
		file_trust_v1_trust_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_trust_v1_trust_proto_rawDesc), len(file_trust_v1_trust_proto_rawDesc)))
	})
	return file_trust_v1_trust_proto_rawDescData
}

var file_trust_v1_trust_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_trust_v1_trust_proto_goTypes = []any{
	(*LoginRequest)(nil),                // 0: trust.v1.LoginRequest
	(*TokenPairResponse)(nil),           // 1: trust.v1.TokenPairResponse
	(*RefreshTokenRequest)(nil),         // 2: trust.v1.RefreshTokenRequest
	(*RevokeTokenRequest)(nil),          // 3: trust.v1.RevokeTokenRequest
	(*RevokeTokenResponse)(nil),         // 4: trust.v1.RevokeTokenResponse
	(*RevokeAllSessionsRequest)(nil),    // 5: trust.v1.RevokeAllSessionsRequest
	(*RevokeAllSessionsResponse)(nil),   // 6: trust.v1.RevokeAllSessionsResponse
	(*ValidateTokenRequest)(nil),        // 7: trust.v1.ValidateTokenRequest
	(*ValidateTokenResponse)(nil),       // 8: trust.v1.ValidateTokenResponse
	(*LikePostRequest)(nil),             // 9: trust.v1.LikePostRequest
	(*LikePostResponse)(nil),            // 10: trust.v1.LikePostResponse
	(*ViewPostRequest)(nil),             // 11: trust.v1.ViewPostRequest
	(*ViewPostResponse)(nil),            // 12: trust.v1.ViewPostResponse
	(*PostStatsRequest)(nil),            // 13: trust.v1.PostStatsRequest
	(*PostStatsResponse)(nil),           // 14: trust.v1.PostStatsResponse
	(*ListPostLikesRequest)(nil),        // 15: trust.v1.ListPostLikesRequest
	(*Like)(nil),                        // 16: trust.v1.Like
	(*ListPostLikesResponse)(nil),       // 17: trust.v1.ListPostLikesResponse
	(*VerifyLikeIntegrityRequest)(nil),  // 18: trust.v1.VerifyLikeIntegrityRequest
	(*VerifyLikeIntegrityResponse)(nil), // 19: trust.v1.VerifyLikeIntegrityResponse
}
var file_trust_v1_trust_proto_depIdxs = []int32{
	16, // 0: trust.v1.ListPostLikesResponse.likes:type_name -> trust.v1.Like
	0,  // 1: trust.v1.TrustService.Login:input_type -> trust.v1.LoginRequest
	2,  // 2: trust.v1.TrustService.RefreshToken:input_type -> trust.v1.RefreshTokenRequest
	3,  // 3: trust.v1.TrustService.RevokeToken:input_type -> trust.v1.RevokeTokenRequest
	5,  // 4: trust.v1.TrustService.RevokeAllSessions:input_type -> trust.v1.RevokeAllSessionsRequest
	7,  // 5: trust.v1.TrustService.ValidateToken:input_type -> trust.v1.ValidateTokenRequest
	9,  // 6: trust.v1.TrustService.LikePost:input_type -> trust.v1.LikePostRequest
	11, // 7: trust.v1.TrustService.ViewPost:input_type -> trust.v1.ViewPostRequest
	13, // 8: trust.v1.TrustService.PostStats:input_type -> trust.v1.PostStatsRequest
	15, // 9: trust.v1.TrustService.ListPostLikes:input_type -> trust.v1.ListPostLikesRequest
	18, // 10: trust.v1.TrustService.VerifyLikeIntegrity:input_type -> trust.v1.VerifyLikeIntegrityRequest
	1,  // 11: trust.v1.TrustService.Login:output_type -> trust.v1.TokenPairResponse
	1,  // 12: trust.v1.TrustService.RefreshToken:output_type -> trust.v1.TokenPairResponse
	4,  // 13: trust.v1.TrustService.RevokeToken:output_type -> trust.v1.RevokeTokenResponse
	6,  // 14: trust.v1.TrustService.RevokeAllSessions:output_type -> trust.v1.RevokeAllSessionsResponse
	8,  // 15: trust.v1.TrustService.ValidateToken:output_type -> trust.v1.ValidateTokenResponse
	10, // 16: trust.v1.TrustService.LikePost:output_type -> trust.v1.LikePostResponse
	12, // 17: trust.v1.TrustService.ViewPost:output_type -> trust.v1.ViewPostResponse
	14, // 18: trust.v1.TrustService.PostStats:output_type -> trust.v1.PostStatsResponse
	17, // 19: trust.v1.TrustService.ListPostLikes:output_type -> trust.v1.ListPostLikesResponse
	19, // 20: trust.v1.TrustService.VerifyLikeIntegrity:output_type -> trust.v1.VerifyLikeIntegrityResponse
	11, // [11:21] is the sub-list for method output_type
	1,  // [1:11] is the sub-list for method input_type
	1,  // [1:1] is the sub-list for extension type_name
	1,  // [1:1] is the sub-list for extension extendee
	0,  // [0:1] is the sub-list for field type_name
}

func init() { file_trust_v1_trust_proto_init() }
func file_trust_v1_trust_proto_init() {
	if File_trust_v1_trust_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_trust_v1_trust_proto_rawDesc), len(file_trust_v1_trust_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_trust_v1_trust_proto_goTypes,
		DependencyIndexes: file_trust_v1_trust_proto_depIdxs,
		MessageInfos:      file_trust_v1_trust_proto_msgTypes,
	}.Build()
	File_trust_v1_trust_proto = out.File
	file_trust_v1_trust_proto_goTypes = nil
	file_trust_v1_trust_proto_depIdxs = nil
}
