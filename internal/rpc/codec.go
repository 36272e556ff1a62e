// Package rpc carries plain Go message structs over gRPC with a JSON codec
// and provides the glue the hand-declared service descriptors share.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype; requests travel as application/grpc+json.
const CodecName = "json"

type codec struct{}

func (codec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (codec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(codec{})
}

// CallOption selects the JSON codec for a client call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}

// DialOption makes the JSON codec the default for every call on a conn.
func DialOption() grpc.DialOption {
	return grpc.WithDefaultCallOptions(CallOption())
}
