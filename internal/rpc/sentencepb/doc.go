// Package sentencepb holds the generated bindings of proto/sentence_service.proto.
package sentencepb

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=module=sentence-analyzer --go-grpc_out=../../.. --go-grpc_opt=module=sentence-analyzer proto/sentence_service.proto
