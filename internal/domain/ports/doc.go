// Package ports defines the interfaces (ports) that storage adapters must implement.
// Business logic depends only on these contracts, so implementations can be swapped
// at composition time (SQL-backed, in-memory) and mocked in unit tests.
package ports
