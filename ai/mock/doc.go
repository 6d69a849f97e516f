// Package mock provides test doubles for the ai package interfaces.
//
// The mock embedder produces deterministic vectors derived from text hashes,
// so tests can rely on stable similarity relationships without a live
// embedding service.
package mock
