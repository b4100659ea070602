// Package kernel provides shared domain primitives for the quoting engine.
//
// It currently holds the UUID value object used to identify carriers and
// other aggregates. Primitives in this package are immutable, validated on
// construction, and safe for concurrent use.
package kernel
