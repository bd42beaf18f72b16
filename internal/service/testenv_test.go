package service

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/repository"
	"coursecraft_backend/pkg/database"
	"coursecraft_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newOutlineService wires an OutlineService over a fresh database with the
// cache disabled.
func newOutlineService(db *gorm.DB) *OutlineService {
	return NewOutlineService(
		repository.NewSectionRepository(db),
		repository.NewPageRepository(db),
		repository.NewBlockRepository(db),
		repository.NewCourseRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewEnrollmentRepository(db),
		nil,
	)
}

func seedCourse(t *testing.T, db *gorm.DB, title string) *model.Course {
	t.Helper()

	course := &model.Course{Title: title, OwnerID: 1}
	require.NoError(t, repository.NewCourseRepository(db).Create(course))
	return course
}
