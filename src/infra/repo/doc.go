// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Each entity has its own file (users.go, posts.go, ...) with methods on the
// shared PostgresRepository.
//
// Besides the single-row and list queries, every one-to-many relationship
// has a batch query of the form
//
//	SELECT ... FROM questions WHERE band_id = ANY($1)
//
// which the request loaders in src/app/gql call once per batch of keys.
package repo
