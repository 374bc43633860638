package jobs_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/charvi/app/jobs"
	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/pkg/orm"
	"github.com/shashiranjanraj/charvi/pkg/storage"
)

func newTestDeps(t *testing.T) (*jobs.Deps, *orm.Query) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))

	q := orm.New(db)
	return &jobs.Deps{
		Products: services.NewProductService(q),
		Orders:   services.NewOrderService(q),
		Reports:  services.NewReportService(q),
	}, q
}

func TestRunRestock(t *testing.T) {
	deps, q := newTestDeps(t)

	three := 3
	_, err := deps.Products.Create(services.CreateProductInput{Name: "Laptop", Price: 999.99, Stock: &three})
	require.NoError(t, err)

	require.NoError(t, jobs.Run("restock", deps))

	var laptop models.Product
	require.NoError(t, q.Gorm().First(&laptop).Error)
	require.Equal(t, 13, laptop.Stock)
}

// memoryDisk captures report uploads so the test can inspect them.
type memoryDisk struct {
	files map[string][]byte
}

func (d *memoryDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}
func (d *memoryDisk) PutStream(path string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return d.Put(path, content)
}
func (d *memoryDisk) Get(path string) ([]byte, error) {
	content, ok := d.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}
func (d *memoryDisk) GetStream(path string) (io.ReadCloser, error) {
	content, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}
func (d *memoryDisk) Exists(path string) bool {
	_, ok := d.files[path]
	return ok
}
func (d *memoryDisk) Delete(path string) error {
	delete(d.files, path)
	return nil
}
func (d *memoryDisk) URL(path string) string { return "memory://" + path }
func (d *memoryDisk) Files(string) ([]string, error) {
	out := make([]string, 0, len(d.files))
	for p := range d.files {
		out = append(out, p)
	}
	return out, nil
}

func TestRunReportArchivesCSV(t *testing.T) {
	deps, _ := newTestDeps(t)

	t.Setenv("STORAGE_DISK", "memory")
	storage.Connect()
	disk := &memoryDisk{files: map[string][]byte{}}
	storage.Register("memory", disk)

	require.NoError(t, jobs.Run("report", deps))

	files, err := disk.Files("")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Contains(t, files[0], "crm-report-")

	content, err := disk.Get(files[0])
	require.NoError(t, err)
	require.Contains(t, string(content), "generated_at,customers,orders,total_revenue")
	require.Contains(t, string(content), ",0,0,0.00")
}

func TestRunUnknownJob(t *testing.T) {
	deps, _ := newTestDeps(t)
	require.Error(t, jobs.Run("no-such-job", deps))
}

func TestNamesCoverEveryJob(t *testing.T) {
	require.ElementsMatch(t,
		[]string{"heartbeat", "restock", "order-reminders", "report"},
		jobs.Names(),
	)
}
