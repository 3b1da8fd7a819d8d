package server

import (
	"context"
	"log/slog"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/platform/logger"
	"github.com/streamsvc/userd/internal/service"
	"github.com/streamsvc/userd/proto/userv1"
)

// defaultStreamBuffer is used when no explicit stream buffer capacity is
// configured. It bounds how many rows may sit between the storage cursor and
// the network writer of one streaming call.
const defaultStreamBuffer = 32

// UserServer implements the generated userv1.UserServiceServer by delegating
// every operation to the application service. It contains no business logic
// of its own: requests are unpacked, the service is called, and results or
// errors are packed back into protocol terms.
type UserServer struct {
	userv1.UnimplementedUserServiceServer

	service      service.UserService
	logger       *slog.Logger
	streamBuffer int
}

// NewUserServer creates the gRPC-facing user service adapter. streamBuffer
// caps the per-call channel between the storage cursor and the network; a
// non-positive value selects the default.
func NewUserServer(svc service.UserService, streamBuffer int, log *slog.Logger) *UserServer {
	if svc == nil {
		panic("service cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	if streamBuffer <= 0 {
		streamBuffer = defaultStreamBuffer
	}

	return &UserServer{
		service:      svc,
		logger:       log.With(slog.String("component", "user_server")),
		streamBuffer: streamBuffer,
	}
}

// CreateUser validates and persists a new user.
func (s *UserServer) CreateUser(ctx context.Context, req *userv1.CreateUserRequest) (*userv1.CreateUserResponse, error) {
	user, err := s.service.CreateUser(ctx, req.GetName(), req.GetSurname())
	if err != nil {
		return nil, statusFromError(err, "failed to create user")
	}
	return &userv1.CreateUserResponse{User: toProtoUser(user)}, nil
}

// GetUserById returns the user with the requested ID.
func (s *UserServer) GetUserById(ctx context.Context, req *userv1.GetUserByIdRequest) (*userv1.GetUserByIdResponse, error) {
	user, err := s.service.GetUserByID(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err, "failed to get user")
	}
	return &userv1.GetUserByIdResponse{User: toProtoUser(user)}, nil
}

// GetUserByName returns the earliest-created user with the requested name.
func (s *UserServer) GetUserByName(ctx context.Context, req *userv1.GetUserByNameRequest) (*userv1.GetUserByNameResponse, error) {
	user, err := s.service.GetUserByName(ctx, req.GetName())
	if err != nil {
		return nil, statusFromError(err, "failed to get user by name")
	}
	return &userv1.GetUserByNameResponse{User: toProtoUser(user)}, nil
}

// GetUsers returns the whole collection in one response.
func (s *UserServer) GetUsers(ctx context.Context, req *userv1.GetUsersRequest) (*userv1.GetUsersResponse, error) {
	users, err := s.service.GetUsers(ctx)
	if err != nil {
		return nil, statusFromError(err, "failed to get users")
	}

	resp := &userv1.GetUsersResponse{
		Users: make([]*userv1.User, 0, len(users)),
		Count: int32(len(users)),
	}
	for _, user := range users {
		resp.Users = append(resp.Users, toProtoUser(user))
	}
	return resp, nil
}

// StreamUsers streams the whole collection one user per message. A producer
// goroutine drains the service cursor into a bounded channel while this
// handler drains the channel into the network, so a slow client throttles
// storage reads instead of growing a buffer. The deferred Stop guarantees the
// producer and its cursor are gone before the handler returns, whichever side
// finishes first.
func (s *UserServer) StreamUsers(_ *userv1.StreamUsersRequest, stream userv1.UserService_StreamUsersServer) error {
	ctx := stream.Context()
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.service.StreamUsers(ctx)
	if err != nil {
		return statusFromError(err, "failed to stream users")
	}

	bridge := startUserStream(ctx, cursor, s.streamBuffer, log)
	defer bridge.Stop()

	for user := range bridge.Users() {
		if err := stream.Send(&userv1.StreamUsersResponse{User: toProtoUser(user)}); err != nil {
			log.Debug("stream send failed, consumer gone", slog.String("error", err.Error()))
			return err
		}
	}

	if err := bridge.Err(); err != nil {
		return statusFromError(err, "failed to stream users")
	}
	return nil
}

// toProtoUser converts the domain entity to its wire representation.
func toProtoUser(u *domain.User) *userv1.User {
	return &userv1.User{
		Id:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
	}
}
