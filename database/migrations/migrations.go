// Package migrations defines the schema history. Each file registers
// itself with pkg/migration from init, so blank-importing this package
// (as cmd/crmd and cmd/server do) is enough to make `crmd migrate` see
// every migration.
package migrations
