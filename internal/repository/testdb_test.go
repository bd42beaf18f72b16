package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"coursecraft_backend/internal/model"
	"coursecraft_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database with the full schema applied.
// Each call gets its own named memory database so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createCourse(t *testing.T, db *gorm.DB, title string) *model.Course {
	t.Helper()

	course := &model.Course{Title: title, OwnerID: 1}
	require.NoError(t, NewCourseRepository(db).Create(course))
	return course
}

func createSection(t *testing.T, db *gorm.DB, courseID, title string) *model.Section {
	t.Helper()

	section := &model.Section{CourseID: courseID, Title: title}
	require.NoError(t, NewSectionRepository(db).Create(section))
	return section
}

func createPage(t *testing.T, db *gorm.DB, sectionID, title string) *model.Page {
	t.Helper()

	page := &model.Page{SectionID: sectionID, Title: title}
	require.NoError(t, NewPageRepository(db).Create(page))
	return page
}

func createBlock(t *testing.T, db *gorm.DB, pageID string, typ model.BlockType) *model.Block {
	t.Helper()

	block := &model.Block{PageID: pageID, Type: typ, Title: string(typ)}
	require.NoError(t, NewBlockRepository(db).Create(block))
	return block
}

func sectionOrder(t *testing.T, db *gorm.DB, courseID string) ([]string, []int) {
	t.Helper()

	sections, err := NewSectionRepository(db).ListByCourse(courseID)
	require.NoError(t, err)

	ids := make([]string, len(sections))
	positions := make([]int, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
		positions[i] = s.Position
	}
	return ids, positions
}
