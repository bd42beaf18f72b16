package repository

import (
	"testing"

	"coursecraft_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListChildrenEmptyParent(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Empty")

	sections, err := NewSectionRepository(db).ListByCourse(course.ID)
	require.NoError(t, err)
	assert.Empty(t, sections)

	section := createSection(t, db, course.ID, "Intro")
	pages, err := NewPageRepository(db).ListBySection(section.ID)
	require.NoError(t, err)
	assert.Empty(t, pages)

	page := createPage(t, db, section.ID, "Welcome")
	blocks, err := NewBlockRepository(db).ListByPage(page.ID)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewCourseRepository(db).FindByID(model.GenerateUUID())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = NewBlockRepository(db).FindByID(model.GenerateUUID())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteSectionCompactsSiblings(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	c := createSection(t, db, course.ID, "C")

	repo := NewSectionRepository(db)
	require.NoError(t, repo.Delete(b.ID))

	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, []string{a.ID, c.ID}, ids)
	assert.Equal(t, []int{0, 1}, positions)

	_, err := repo.FindByID(b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBlockCompactsSiblings(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")
	section := createSection(t, db, course.ID, "Intro")
	page := createPage(t, db, section.ID, "Welcome")

	first := createBlock(t, db, page.ID, model.BlockHeading)
	second := createBlock(t, db, page.ID, model.BlockText)
	third := createBlock(t, db, page.ID, model.BlockImage)

	repo := NewBlockRepository(db)
	require.NoError(t, repo.Delete(first.ID))

	blocks, err := repo.ListByPage(page.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, second.ID, blocks[0].ID)
	assert.Equal(t, third.ID, blocks[1].ID)
	assert.Equal(t, 0, blocks[0].Position)
	assert.Equal(t, 1, blocks[1].Position)
}

func TestDeleteSectionRemovesDescendants(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")
	section := createSection(t, db, course.ID, "Intro")
	page := createPage(t, db, section.ID, "Welcome")
	block := createBlock(t, db, page.ID, model.BlockText)

	require.NoError(t, NewSectionRepository(db).Delete(section.ID))

	_, err := NewPageRepository(db).FindByID(page.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = NewBlockRepository(db).FindByID(block.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteCourseRemovesSubtreeAndEnrollments(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")
	section := createSection(t, db, course.ID, "Intro")
	page := createPage(t, db, section.ID, "Welcome")
	block := createBlock(t, db, page.ID, model.BlockText)

	enrollments := NewEnrollmentRepository(db)
	require.NoError(t, enrollments.Create(&model.Enrollment{UserID: 7, CourseID: course.ID}))

	require.NoError(t, NewCourseRepository(db).Delete(course.ID))

	_, err := NewSectionRepository(db).FindByID(section.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = NewPageRepository(db).FindByID(page.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = NewBlockRepository(db).FindByID(block.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	enrolled, err := enrollments.Exists(7, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestDeleteCourseLeavesOtherCoursesIntact(t *testing.T) {
	db := newTestDB(t)
	doomed := createCourse(t, db, "Doomed")
	kept := createCourse(t, db, "Kept")
	keptSection := createSection(t, db, kept.ID, "Intro")
	createSection(t, db, doomed.ID, "Intro")

	require.NoError(t, NewCourseRepository(db).Delete(doomed.ID))

	ids, positions := sectionOrder(t, db, kept.ID)
	assert.Equal(t, []string{keptSection.ID}, ids)
	assert.Equal(t, []int{0}, positions)
}

func TestCreateAfterDeleteReusesTailPosition(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	require.NoError(t, NewSectionRepository(db).Delete(a.ID))

	c := createSection(t, db, course.ID, "C")
	assert.Equal(t, 1, c.Position)

	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, []string{b.ID, c.ID}, ids)
	assert.Equal(t, []int{0, 1}, positions)
}
