// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: users, posts, answers, questions and bands
//   - Inputs: the payloads accepted by the create operations
//   - Domain Errors: business rule violation errors
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, GraphQL)
//   - Identifiers are uuid.UUID values generated by the database
//   - Inputs carry validation tags checked by the use case layer
package domain
