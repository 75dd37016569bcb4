package window

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName — полное имя gRPC-сервиса.
const ServiceName = "ventana.v1.WindowService"

// WindowServiceServer — серверная сторона сервиса. Сообщения — google.protobuf.Struct.
type WindowServiceServer interface {
	ListSystems(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Calculate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveEntry(context.Context, *structpb.Struct) (*structpb.Struct, error)
	History(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEntry(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveEntry(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(WindowServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unary собирает grpc.MethodDesc так же, как это делает protoc-gen-go-grpc.
func unary(name string, m unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return m(srv.(WindowServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return m(srv.(WindowServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod возвращает полное имя метода ("/ventana.v1.WindowService/Calculate").
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// ServiceDesc — описание сервиса для grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WindowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListSystems", WindowServiceServer.ListSystems),
		unary("Calculate", WindowServiceServer.Calculate),
		unary("SaveEntry", WindowServiceServer.SaveEntry),
		unary("History", WindowServiceServer.History),
		unary("GetEntry", WindowServiceServer.GetEntry),
		unary("RemoveEntry", WindowServiceServer.RemoveEntry),
		unary("ClearHistory", WindowServiceServer.ClearHistory),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ventana/v1/window.proto",
}

// Register регистрирует реализацию на сервере.
func Register(s grpc.ServiceRegistrar, srv WindowServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client — клиент сервиса поверх любого соединения.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient создаёт клиента.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call вызывает метод name с запросом in.
func (c *Client) Call(ctx context.Context, name string, in map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(name), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
