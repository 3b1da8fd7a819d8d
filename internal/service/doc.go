// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// The service package implements the application layer in the clean architecture,
// containing use cases that coordinate the flow of data between external interfaces
// (the gRPC server) and the domain layer. It abstracts away infrastructure
// details while orchestrating domain entities to fulfill business requirements.
//
// Key components:
//
// 1. Service Interfaces:
//   - Define application-specific operations available to the delivery mechanisms
//   - UserService covers the full lifecycle of the user resource
//
// 2. Use Case Implementations:
//   - Coordinate between repositories and domain validation
//   - Apply transactional boundaries where an operation must be atomic
//
// 3. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies include repositories and cross-cutting concerns
//
// 4. Error Handling:
//   - Translate store-specific errors to the application-level taxonomy
//   - Keep storage detail out of errors that reach the transport layer
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations, maintaining the Dependency
// Inversion Principle of clean architecture.
package service
