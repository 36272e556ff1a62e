// Package notifyv1 declares the pureez.notify.v1.NotificationService
// messages and service descriptor.
package notifyv1

import (
	"context"
	"encoding/json"

	"github.com/Biz-Hub01/pureez/internal/rpc"
	"google.golang.org/grpc"
)

type SubscribeRequest struct {
	SessionId string `json:"sessionId"`
}

type Event struct {
	SessionId string          `json:"sessionId,omitempty"`
	Kind      string          `json:"kind"`
	Message   string          `json:"message"`
	AtUnixMs  int64           `json:"atUnixMs"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const NotificationService_Subscribe_FullMethodName = "/pureez.notify.v1.NotificationService/Subscribe"

type NotificationService_SubscribeServer = rpc.ServerStream[Event]

type NotificationService_SubscribeClient = rpc.ClientStream[Event]

type NotificationServiceServer interface {
	Subscribe(*SubscribeRequest, *NotificationService_SubscribeServer) error
}

func _NotificationService_Subscribe_Handler(srv any, stream grpc.ServerStream) error {
	in := new(SubscribeRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(NotificationServiceServer).Subscribe(in, &NotificationService_SubscribeServer{ServerStream: stream})
}

var NotificationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pureez.notify.v1.NotificationService",
	HandlerType: (*NotificationServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       _NotificationService_Subscribe_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "pureez/notify/v1/notify.proto",
}

func RegisterNotificationServiceServer(s grpc.ServiceRegistrar, srv NotificationServiceServer) {
	s.RegisterService(&NotificationService_ServiceDesc, srv)
}

type NotificationServiceClient interface {
	Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (*NotificationService_SubscribeClient, error)
}

type notificationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNotificationServiceClient(cc grpc.ClientConnInterface) NotificationServiceClient {
	return &notificationServiceClient{cc: cc}
}

func (c *notificationServiceClient) Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (*NotificationService_SubscribeClient, error) {
	return rpc.OpenServerStream[Event](ctx, c.cc, &NotificationService_ServiceDesc.Streams[0], NotificationService_Subscribe_FullMethodName, in, opts...)
}
