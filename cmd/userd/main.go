// Package main implements the entry point for the userd server, a gRPC
// service that manages the user resource and streams the full collection to
// callers at the pace they consume it.
package main

func main() {
	Execute()
}
