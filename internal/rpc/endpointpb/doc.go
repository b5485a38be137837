// Package endpointpb holds the generated bindings of proto/endpoint_service.proto.
package endpointpb

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=module=sentence-analyzer --go-grpc_out=../../.. --go-grpc_opt=module=sentence-analyzer proto/endpoint_service.proto
