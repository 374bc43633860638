package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/shashiranjanraj/charvi/config"
	"github.com/shashiranjanraj/charvi/pkg/logger"
)

var (
	mu          sync.RWMutex
	disks       = map[string]Disk{}
	defaultName string
)

// Connect boots the configured disks. The local disk is always present;
// the s3 disk joins it when S3_BUCKET is set. Call once at startup.
func Connect() {
	mu.Lock()
	defer mu.Unlock()

	defaultName = config.Get("STORAGE_DISK", "local")
	disks["local"] = newLocalDisk()

	if config.Get("S3_BUCKET", "") != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}
}

// Use returns the named disk ("local" or "s3"). Asking for a disk that
// was never configured is a programming error, hence the panic.
func Use(name string) Disk {
	mu.RLock()
	d, ok := disks[name]
	mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// Register installs a custom driver under name, replacing any existing
// disk. Tests use it to capture report uploads.
func Register(name string, d Disk) {
	mu.Lock()
	disks[name] = d
	mu.Unlock()
}

func active() Disk { return Use(defaultName) }

// The remaining functions proxy to the default disk, selected by the
// STORAGE_DISK setting.

func Put(path string, content []byte) error    { return active().Put(path, content) }
func PutStream(path string, r io.Reader) error { return active().PutStream(path, r) }
func Get(path string) ([]byte, error)          { return active().Get(path) }
func GetStream(path string) (io.ReadCloser, error) {
	return active().GetStream(path)
}
func Exists(path string) bool                  { return active().Exists(path) }
func Delete(path string) error                 { return active().Delete(path) }
func URL(path string) string                   { return active().URL(path) }
func Files(directory string) ([]string, error) { return active().Files(directory) }
