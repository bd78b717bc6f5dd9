package grpc

import (
	"context"

	"github.com/miragechat/identity/internal/common"
	pb "github.com/miragechat/identity/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto the two codes the API exposes:
// validation failures keep their message, everything else is opaque.
func toStatus(err error) error {
	if common.IsValidation(err) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func (s *GRPCServer) StartRegistration(ctx context.Context, req *pb.StartRegistrationRequest) (*pb.StartRegistrationResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	err := s.users.StartRegistration(ctx, req.Name, req.Email, req.Username, req.Password)

	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.StartRegistrationResponse{}, nil

}

func (s *GRPCServer) VerifyUser(ctx context.Context, req *pb.VerifyUserRequest) (*pb.VerifyUserResponse, error) {

	err := s.users.VerifyUser(ctx, req.Email, req.VerificationCode)

	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.VerifyUserResponse{}, nil

}

func (s *GRPCServer) Signin(ctx context.Context, req *pb.SigninRequest) (*pb.SigninResponse, error) {

	token, err := s.users.Signin(ctx, req.Identifier, req.Password)

	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.SigninResponse{Jwt: token}, nil

}

func (s *GRPCServer) VerifySession(ctx context.Context, req *pb.VerifySessionRequest) (*pb.VerifySessionResponse, error) {

	err := s.users.VerifySession(ctx, req.Jwt)

	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.VerifySessionResponse{}, nil

}
