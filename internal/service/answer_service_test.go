package service

import (
	"context"
	"testing"

	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/repository"
	"coursecraft_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAnswerFixture(t *testing.T) (*AnswerService, *OutlineService, *model.Page) {
	t.Helper()

	db := newTestDB(t)
	outline := newOutlineService(db)
	ctx := context.Background()
	course := seedCourse(t, db, "Go Basics")

	section := &model.Section{CourseID: course.ID, Title: "Intro"}
	require.NoError(t, outline.CreateSection(ctx, section))
	page := &model.Page{SectionID: section.ID, Title: "Quiz"}
	require.NoError(t, outline.CreatePage(ctx, page))

	svc := NewAnswerService(repository.NewAnswerRepository(db), repository.NewBlockRepository(db))
	return svc, outline, page
}

func TestSubmitAnswerUpserts(t *testing.T) {
	svc, outline, page := testAnswerFixture(t)
	ctx := context.Background()

	block := &model.Block{PageID: page.ID, Type: model.BlockQuestionYesNo, Title: "Sure?"}
	require.NoError(t, outline.CreateBlock(ctx, block, nil))

	first, err := svc.Submit(5, block.ID, "yes")
	require.NoError(t, err)
	assert.Equal(t, "yes", first.Text)

	second, err := svc.Submit(5, block.ID, "no")
	require.NoError(t, err)
	assert.Equal(t, "no", second.Text)

	rows, err := svc.ListByBlock(block.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSubmitAnswerRejectsNonAnswerableBlock(t *testing.T) {
	svc, outline, page := testAnswerFixture(t)
	ctx := context.Background()

	for _, typ := range []model.BlockType{
		model.BlockHeading,
		model.BlockText,
		model.BlockImage,
		model.BlockVideo,
		model.BlockVideoPost,
	} {
		block := &model.Block{PageID: page.ID, Type: typ}
		require.NoError(t, outline.CreateBlock(ctx, block, nil))

		_, err := svc.Submit(5, block.ID, "anything")
		assert.ErrorIs(t, err, util.ErrInvalidBlockType, "type %s", typ)
	}
}

func TestSubmitAnswerAcceptsFileUploadReference(t *testing.T) {
	svc, outline, page := testAnswerFixture(t)
	ctx := context.Background()

	block := &model.Block{PageID: page.ID, Type: model.BlockFileUpload, Title: "Homework"}
	require.NoError(t, outline.CreateBlock(ctx, block, nil))

	answer, err := svc.Submit(5, block.ID, "/uploads/homework.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/homework.pdf", answer.Text)
}

func TestSubmitAnswerUnknownBlock(t *testing.T) {
	svc, _, _ := testAnswerFixture(t)

	_, err := svc.Submit(5, model.GenerateUUID(), "yes")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetOwnAnswerMissing(t *testing.T) {
	svc, outline, page := testAnswerFixture(t)
	ctx := context.Background()

	block := &model.Block{PageID: page.ID, Type: model.BlockQuestionYesNo}
	require.NoError(t, outline.CreateBlock(ctx, block, nil))

	_, err := svc.GetOwn(5, block.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
