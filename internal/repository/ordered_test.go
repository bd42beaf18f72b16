package repository

import (
	"testing"

	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppendsAtTail(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	c := createSection(t, db, course.ID, "C")

	assert.Equal(t, 0, a.Position)
	assert.Equal(t, 1, b.Position)
	assert.Equal(t, 2, c.Position)

	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestReorderAppliesSubmittedOrder(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	c := createSection(t, db, course.ID, "C")

	repo := NewSectionRepository(db)
	require.NoError(t, repo.Reorder(course.ID, []string{c.ID, a.ID, b.ID}))

	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, ids)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestReorderIdempotent(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	c := createSection(t, db, course.ID, "C")

	repo := NewSectionRepository(db)
	order := []string{b.ID, c.ID, a.ID}
	require.NoError(t, repo.Reorder(course.ID, order))
	require.NoError(t, repo.Reorder(course.ID, order))

	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, order, ids)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

// Moving the element at index 0 to index 2 in [A,B,C,D] yields [B,C,A,D].
func TestReorderMoveSemantics(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	c := createSection(t, db, course.ID, "C")
	d := createSection(t, db, course.ID, "D")

	repo := NewSectionRepository(db)
	require.NoError(t, repo.Reorder(course.ID, []string{b.ID, c.ID, a.ID, d.ID}))

	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, []string{b.ID, c.ID, a.ID, d.ID}, ids)
	assert.Equal(t, []int{0, 1, 2, 3}, positions)

	moved, err := repo.FindByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, moved.Position)
}

// A move followed by the inverse move restores the original ordering.
func TestReorderRoundTripRestoresOrder(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	c := createSection(t, db, course.ID, "C")

	repo := NewSectionRepository(db)
	require.NoError(t, repo.Reorder(course.ID, []string{b.ID, a.ID, c.ID}))
	require.NoError(t, repo.Reorder(course.ID, []string{a.ID, b.ID, c.ID}))

	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestReorderRejectsNonPermutation(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	c := createSection(t, db, course.ID, "C")

	repo := NewSectionRepository(db)

	cases := []struct {
		name  string
		order []string
	}{
		{"missing id", []string{a.ID, b.ID}},
		{"unknown id", []string{a.ID, b.ID, model.GenerateUUID()}},
		{"duplicate id", []string{a.ID, a.ID, b.ID}},
		{"extra id", []string{a.ID, b.ID, c.ID, model.GenerateUUID()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.Reorder(course.ID, tc.order)
			assert.ErrorIs(t, err, util.ErrReorderConflict)
		})
	}

	// Nothing was rewritten by the rejected attempts.
	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

// Two competing full orderings applied one after the other leave the
// second writer's ordering, with unique contiguous positions.
func TestReorderLastWriterWins(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")

	a := createSection(t, db, course.ID, "A")
	b := createSection(t, db, course.ID, "B")
	c := createSection(t, db, course.ID, "C")

	repo := NewSectionRepository(db)
	require.NoError(t, repo.Reorder(course.ID, []string{c.ID, b.ID, a.ID}))
	require.NoError(t, repo.Reorder(course.ID, []string{b.ID, a.ID, c.ID}))

	ids, positions := sectionOrder(t, db, course.ID)
	assert.Equal(t, []string{b.ID, a.ID, c.ID}, ids)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestReorderScopedToParent(t *testing.T) {
	db := newTestDB(t)
	first := createCourse(t, db, "First")
	second := createCourse(t, db, "Second")

	a := createSection(t, db, first.ID, "A")
	b := createSection(t, db, first.ID, "B")
	x := createSection(t, db, second.ID, "X")
	y := createSection(t, db, second.ID, "Y")

	repo := NewSectionRepository(db)
	require.NoError(t, repo.Reorder(first.ID, []string{b.ID, a.ID}))

	ids, positions := sectionOrder(t, db, second.ID)
	assert.Equal(t, []string{x.ID, y.ID}, ids)
	assert.Equal(t, []int{0, 1}, positions)

	// Siblings from another parent are not part of the permutation.
	err := repo.Reorder(first.ID, []string{x.ID, y.ID})
	assert.ErrorIs(t, err, util.ErrReorderConflict)
}

func TestBlockReorder(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics")
	section := createSection(t, db, course.ID, "Intro")
	page := createPage(t, db, section.ID, "Welcome")

	heading := createBlock(t, db, page.ID, model.BlockHeading)
	text := createBlock(t, db, page.ID, model.BlockText)
	video := createBlock(t, db, page.ID, model.BlockVideo)

	repo := NewBlockRepository(db)
	require.NoError(t, repo.Reorder(page.ID, []string{video.ID, heading.ID, text.ID}))

	blocks, err := repo.ListByPage(page.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, video.ID, blocks[0].ID)
	assert.Equal(t, heading.ID, blocks[1].ID)
	assert.Equal(t, text.ID, blocks[2].ID)
	for i, blk := range blocks {
		assert.Equal(t, i, blk.Position)
	}
}
