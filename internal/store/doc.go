// Package store defines the persistence interfaces for the application's
// resource collections and the sentinel errors their implementations
// return. Implementations live in subpackages (see store/memory).
package store
