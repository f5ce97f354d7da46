// Package domain defines the core business entities and errors.
//
// Entities carry their own validation rules so that no store implementation
// can persist an invalid record, independent of what the API layer checks.
package domain
