// Package client wraps the generated gRPC client with a small typed API for
// the CLI and tests.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/streamsvc/userd/proto/userv1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a connected user-service client. Callers own it and must Close
// it when done.
type Client struct {
	conn *grpc.ClientConn
	api  userv1.UserServiceClient
}

// New dials addr without transport security.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	return &Client{
		conn: conn,
		api:  userv1.NewUserServiceClient(conn),
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// CreateUser creates a user and returns it with the server-assigned ID.
func (c *Client) CreateUser(ctx context.Context, name, surname string) (*userv1.User, error) {
	resp, err := c.api.CreateUser(ctx, &userv1.CreateUserRequest{Name: name, Surname: surname})
	if err != nil {
		return nil, err
	}
	return resp.GetUser(), nil
}

// GetUserByID fetches a single user by ID.
func (c *Client) GetUserByID(ctx context.Context, id int32) (*userv1.User, error) {
	resp, err := c.api.GetUserById(ctx, &userv1.GetUserByIdRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return resp.GetUser(), nil
}

// GetUserByName fetches the earliest-created user with the given name.
func (c *Client) GetUserByName(ctx context.Context, name string) (*userv1.User, error) {
	resp, err := c.api.GetUserByName(ctx, &userv1.GetUserByNameRequest{Name: name})
	if err != nil {
		return nil, err
	}
	return resp.GetUser(), nil
}

// GetUsers fetches the whole collection in one response.
func (c *Client) GetUsers(ctx context.Context) ([]*userv1.User, error) {
	resp, err := c.api.GetUsers(ctx, &userv1.GetUsersRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetUsers(), nil
}

// StreamUsers drains the user stream, invoking fn once per received user in
// server order. It returns nil when the stream ends cleanly, the stream
// error if it does not, or fn's error if fn stops the drain.
func (c *Client) StreamUsers(ctx context.Context, fn func(*userv1.User) error) error {
	stream, err := c.api.StreamUsers(ctx, &userv1.StreamUsersRequest{})
	if err != nil {
		return err
	}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(resp.GetUser()); err != nil {
			return err
		}
	}
}
