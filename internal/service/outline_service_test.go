package service

import (
	"context"
	"testing"

	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetOutlineReturnsOrderedTree(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)
	ctx := context.Background()
	course := seedCourse(t, db, "Go Basics")

	intro := &model.Section{CourseID: course.ID, Title: "Intro"}
	require.NoError(t, svc.CreateSection(ctx, intro))
	advanced := &model.Section{CourseID: course.ID, Title: "Advanced"}
	require.NoError(t, svc.CreateSection(ctx, advanced))

	welcome := &model.Page{SectionID: intro.ID, Title: "Welcome"}
	require.NoError(t, svc.CreatePage(ctx, welcome))

	heading := &model.Block{PageID: welcome.ID, Type: model.BlockHeading, Title: "Hello"}
	require.NoError(t, svc.CreateBlock(ctx, heading, nil))
	quiz := &model.Block{PageID: welcome.ID, Type: model.BlockQuestionChoice, Title: "Pick one"}
	require.NoError(t, svc.CreateBlock(ctx, quiz, []string{"A", "B", "C"}))

	outline, err := svc.GetOutline(ctx, course.ID)
	require.NoError(t, err)

	assert.Equal(t, course.ID, outline.Course.ID)
	require.Len(t, outline.Sections, 2)
	assert.Equal(t, intro.ID, outline.Sections[0].Section.ID)
	assert.Equal(t, advanced.ID, outline.Sections[1].Section.ID)

	require.Len(t, outline.Sections[0].Pages, 1)
	assert.Empty(t, outline.Sections[1].Pages)

	blocks := outline.Sections[0].Pages[0].Blocks
	require.Len(t, blocks, 2)
	assert.Equal(t, heading.ID, blocks[0].ID)
	assert.Equal(t, quiz.ID, blocks[1].ID)
	assert.Equal(t, []string{"A", "B", "C"}, blocks[1].Options)
	assert.Empty(t, blocks[0].Options)
}

func TestGetOutlineReflectsReorder(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)
	ctx := context.Background()
	course := seedCourse(t, db, "Go Basics")

	a := &model.Section{CourseID: course.ID, Title: "A"}
	require.NoError(t, svc.CreateSection(ctx, a))
	b := &model.Section{CourseID: course.ID, Title: "B"}
	require.NoError(t, svc.CreateSection(ctx, b))

	require.NoError(t, svc.ReorderSections(ctx, course.ID, []string{b.ID, a.ID}))

	outline, err := svc.GetOutline(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, outline.Sections, 2)
	assert.Equal(t, b.ID, outline.Sections[0].Section.ID)
	assert.Equal(t, a.ID, outline.Sections[1].Section.ID)
}

func TestGetOutlineUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)

	_, err := svc.GetOutline(context.Background(), model.GenerateUUID())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateSectionUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)

	section := &model.Section{CourseID: model.GenerateUUID(), Title: "Orphan"}
	err := svc.CreateSection(context.Background(), section)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateBlockValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)
	ctx := context.Background()
	course := seedCourse(t, db, "Go Basics")

	section := &model.Section{CourseID: course.ID, Title: "Intro"}
	require.NoError(t, svc.CreateSection(ctx, section))
	page := &model.Page{SectionID: section.ID, Title: "Welcome"}
	require.NoError(t, svc.CreatePage(ctx, page))

	bogus := &model.Block{PageID: page.ID, Type: "carousel"}
	assert.ErrorIs(t, svc.CreateBlock(ctx, bogus, nil), util.ErrInvalidBlockType)

	text := &model.Block{PageID: page.ID, Type: model.BlockText}
	assert.ErrorIs(t, svc.CreateBlock(ctx, text, []string{"A"}), util.ErrOptionsNotChoice)

	choice := &model.Block{PageID: page.ID, Type: model.BlockQuestionChoice}
	require.NoError(t, svc.CreateBlock(ctx, choice, []string{"A", "B"}))

	views, err := svc.ListBlocks(page.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []string{"A", "B"}, views[0].Options)
}

func TestUpdateBlockOptions(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)
	ctx := context.Background()
	course := seedCourse(t, db, "Go Basics")

	section := &model.Section{CourseID: course.ID, Title: "Intro"}
	require.NoError(t, svc.CreateSection(ctx, section))
	page := &model.Page{SectionID: section.ID, Title: "Quiz"}
	require.NoError(t, svc.CreatePage(ctx, page))

	choice := &model.Block{PageID: page.ID, Type: model.BlockQuestionChoice, Title: "Pick"}
	require.NoError(t, svc.CreateBlock(ctx, choice, []string{"A", "B"}))

	view, err := svc.UpdateBlock(ctx, choice.ID, "Pick again", "", []string{"X", "Y", "Z"})
	require.NoError(t, err)
	assert.Equal(t, "Pick again", view.Title)
	assert.Equal(t, []string{"X", "Y", "Z"}, view.Options)

	text := &model.Block{PageID: page.ID, Type: model.BlockText, Content: "hello"}
	require.NoError(t, svc.CreateBlock(ctx, text, nil))
	_, err = svc.UpdateBlock(ctx, text.ID, "t", "c", []string{"A"})
	assert.ErrorIs(t, err, util.ErrOptionsNotChoice)
}

func TestDeleteBlockDropsAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)
	ctx := context.Background()
	course := seedCourse(t, db, "Go Basics")

	section := &model.Section{CourseID: course.ID, Title: "Intro"}
	require.NoError(t, svc.CreateSection(ctx, section))
	page := &model.Page{SectionID: section.ID, Title: "Quiz"}
	require.NoError(t, svc.CreatePage(ctx, page))
	block := &model.Block{PageID: page.ID, Type: model.BlockQuestionYesNo, Title: "Sure?"}
	require.NoError(t, svc.CreateBlock(ctx, block, nil))

	require.NoError(t, svc.AnswerRepo.Upsert(&model.Answer{UserID: 5, BlockID: block.ID, Text: "yes"}))
	require.NoError(t, svc.DeleteBlock(ctx, block.ID))

	answers, err := svc.AnswerRepo.ListByBlock(block.ID)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestSubtreeReadsGatedByEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)
	ctx := context.Background()
	course := seedCourse(t, db, "Gated")

	section := &model.Section{CourseID: course.ID, Title: "Intro"}
	require.NoError(t, svc.CreateSection(ctx, section))
	page := &model.Page{SectionID: section.ID, Title: "Welcome"}
	require.NoError(t, svc.CreatePage(ctx, page))
	block := &model.Block{PageID: page.ID, Type: model.BlockText}
	require.NoError(t, svc.CreateBlock(ctx, block, nil))

	_, err := svc.ListSectionsForUser(course.ID, 5, model.Student)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
	_, err = svc.ListPagesForUser(section.ID, 5, model.Student)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
	_, err = svc.ListBlocksForUser(page.ID, 5, model.Student)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	// Staff roles pass without an enrollment row.
	sections, err := svc.ListSectionsForUser(course.ID, 2, model.Teacher)
	require.NoError(t, err)
	assert.Len(t, sections, 1)

	require.NoError(t, svc.EnrollmentRepo.Create(&model.Enrollment{UserID: 5, CourseID: course.ID}))

	sections, err = svc.ListSectionsForUser(course.ID, 5, model.Student)
	require.NoError(t, err)
	assert.Len(t, sections, 1)
	pages, err := svc.ListPagesForUser(section.ID, 5, model.Student)
	require.NoError(t, err)
	assert.Len(t, pages, 1)
	blocks, err := svc.ListBlocksForUser(page.ID, 5, model.Student)
	require.NoError(t, err)
	assert.Len(t, blocks, 1)
}

func TestSubtreeReadsUnknownParent(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)

	_, err := svc.ListSectionsForUser(model.GenerateUUID(), 2, model.Teacher)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = svc.ListPagesForUser(model.GenerateUUID(), 2, model.Teacher)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = svc.ListBlocksForUser(model.GenerateUUID(), 2, model.Teacher)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReorderConflictSurfacesFromService(t *testing.T) {
	db := newTestDB(t)
	svc := newOutlineService(db)
	ctx := context.Background()
	course := seedCourse(t, db, "Go Basics")

	a := &model.Section{CourseID: course.ID, Title: "A"}
	require.NoError(t, svc.CreateSection(ctx, a))
	b := &model.Section{CourseID: course.ID, Title: "B"}
	require.NoError(t, svc.CreateSection(ctx, b))

	err := svc.ReorderSections(ctx, course.ID, []string{a.ID})
	assert.ErrorIs(t, err, util.ErrReorderConflict)
}
