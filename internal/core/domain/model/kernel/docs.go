// Package kernel holds the domain primitives shared by every aggregate:
// the UUID value object wrapping github.com/google/uuid, and the
// ConstructorGuard that lets commands and queries reject zero-value
// instances that skipped their constructor.
package kernel
