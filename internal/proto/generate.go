// Package proto holds the protobuf messages and gRPC stubs of ChatService,
// generated from proto/privachat/v1/chat.proto.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/privachat --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/privachat privachat/v1/chat.proto
