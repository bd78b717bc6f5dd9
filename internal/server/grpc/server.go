package grpc

import (
	"context"
	"net"

	"github.com/miragechat/identity/internal/logging"
	pb "github.com/miragechat/identity/internal/proto"
	"github.com/miragechat/identity/internal/server/metrics"
	"google.golang.org/grpc"
)

// usersService is the slice of the users service the transport needs.
type usersService interface {
	StartRegistration(ctx context.Context, name, email, username, password string) error
	VerifyUser(ctx context.Context, email, code string) error
	Signin(ctx context.Context, identifier, password string) (string, error)
	VerifySession(ctx context.Context, token string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthenticationServiceServer
	address string
	users   usersService
	logger  logging.Logger
	metrics *metrics.Metrics
}

func NewGRPCServer(a string, l logging.Logger, us usersService, m *metrics.Metrics) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		metrics: m,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor))

	// registers service
	pb.RegisterAuthenticationServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
