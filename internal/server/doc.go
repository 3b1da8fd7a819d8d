// Package server handles incoming gRPC requests, translating them into
// service calls and service results into responses and status codes. It acts
// as an adapter between external clients and the internal application
// services, and owns the streaming bridge that moves rows from a storage
// cursor to the network at the pace the client consumes them.
package server
