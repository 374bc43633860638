// Package storage persists generated files, primarily the weekly CRM
// report exports. Two drivers ship with it: "local" (default) and "s3",
// which also covers S3-compatible stores such as MinIO and R2.
//
//	storage.Connect()
//	storage.Put("reports/crm-report-2026-01-05.csv", data)
//	storage.Use("s3").Put("reports/crm-report-2026-01-05.csv", data)
package storage

import "io"

// Disk is implemented by every storage driver.
type Disk interface {
	// Put writes content to path, creating any parent directories.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the whole file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser the caller must close.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether path holds a file.
	Exists(path string) bool

	// Delete removes path. A missing file is not an error.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string

	// Files lists the files directly inside directory.
	Files(directory string) ([]string, error)
}
