// Package pool lends and reclaims element buffers.
//
// [Pool] is the contract every seqkit component rents through. [Shared] is
// the default, goroutine-safe implementation: power-of-two size buckets
// backed by sync.Pool. [Tracked] wraps any Pool and counts rentals and
// returns, rejects double returns, and reports leaks through the logger and
// OpenTelemetry metrics.
//
// [Buffer] is a scoped owner of exactly one rented buffer:
//
//	buf := pool.Rent(pool.Default[int](), 128)
//	defer buf.Close()
//	copy(buf.Slice(), src)
package pool
