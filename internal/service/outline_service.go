package service

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/repository"
	"coursecraft_backend/internal/util"
	"coursecraft_backend/pkg/logger"
	"coursecraft_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	outlineCacheKeyPrefix = "course_outline:"
	outlineCacheTTL       = 10 * time.Minute
)

// OutlineService owns the course -> section -> page -> block hierarchy:
// ordered reads, tail-append creates, edits, cascading deletes and the
// sibling reorder operation. Every write invalidates the course's cached
// outline.
type OutlineService struct {
	SectionRepo    *repository.SectionRepository
	PageRepo       *repository.PageRepository
	BlockRepo      *repository.BlockRepository
	CourseRepo     *repository.CourseRepository
	AnswerRepo     *repository.AnswerRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Redis          *redis.Client
}

func NewOutlineService(
	sectionRepo *repository.SectionRepository,
	pageRepo *repository.PageRepository,
	blockRepo *repository.BlockRepository,
	courseRepo *repository.CourseRepository,
	answerRepo *repository.AnswerRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	rdb *redis.Client,
) *OutlineService {
	return &OutlineService{
		SectionRepo:    sectionRepo,
		PageRepo:       pageRepo,
		BlockRepo:      blockRepo,
		CourseRepo:     courseRepo,
		AnswerRepo:     answerRepo,
		EnrollmentRepo: enrollmentRepo,
		Redis:          rdb,
	}
}

// authorizeCourseRead is the same enrollment gate CourseService applies to
// course reads: staff roles pass, students must be enrolled.
func (s *OutlineService) authorizeCourseRead(courseID string, userID uint, role model.UserRole) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return err
	}
	if role != model.Student {
		return nil
	}

	enrolled, err := s.EnrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return util.ErrNotEnrolled
	}
	return nil
}

// GetOutline returns the full expanded tree of a course, from redis when
// the cached copy is still valid, from the database otherwise. Cache
// failures fall through to the DB silently.
func (s *OutlineService) GetOutline(ctx context.Context, courseID string) (*model.CourseOutline, error) {
	key := outlineCacheKeyPrefix + courseID

	if s.Redis != nil {
		if data, err := s.Redis.Get(ctx, key).Bytes(); err == nil {
			var outline model.CourseOutline
			if err := json.Unmarshal(data, &outline); err == nil {
				return &outline, nil
			}
		}
	}

	outline, err := s.buildOutline(courseID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(outline); err == nil {
			if err := s.Redis.Set(ctx, key, data, outlineCacheTTL).Err(); err != nil {
				logger.Log.Warn("outline cache write failed", zap.String("course", courseID), zap.Error(err))
			}
		}
	}

	return outline, nil
}

func (s *OutlineService) buildOutline(courseID string) (*model.CourseOutline, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	sections, err := s.SectionRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	outline := &model.CourseOutline{Course: *course, Sections: make([]model.SectionOutline, 0, len(sections))}
	for _, section := range sections {
		pages, err := s.PageRepo.ListBySection(section.ID)
		if err != nil {
			return nil, err
		}

		so := model.SectionOutline{Section: section, Pages: make([]model.PageOutline, 0, len(pages))}
		for _, page := range pages {
			blocks, err := s.BlockRepo.ListByPage(page.ID)
			if err != nil {
				return nil, err
			}

			po := model.PageOutline{Page: page, Blocks: make([]model.BlockView, 0, len(blocks))}
			for _, block := range blocks {
				po.Blocks = append(po.Blocks, model.NewBlockView(block))
			}
			so.Pages = append(so.Pages, po)
		}
		outline.Sections = append(outline.Sections, so)
	}

	return outline, nil
}

func (s *OutlineService) invalidateOutline(ctx context.Context, courseID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, outlineCacheKeyPrefix+courseID).Err(); err != nil {
		logger.Log.Warn("outline cache invalidation failed", zap.String("course", courseID), zap.Error(err))
	}
}

// courseIDOfSection / courseIDOfPage walk up the tree for cache
// invalidation and permission checks.
func (s *OutlineService) courseIDOfSection(sectionID string) (string, error) {
	section, err := s.SectionRepo.FindByID(sectionID)
	if err != nil {
		return "", err
	}
	return section.CourseID, nil
}

func (s *OutlineService) courseIDOfPage(pageID string) (string, error) {
	page, err := s.PageRepo.FindByID(pageID)
	if err != nil {
		return "", err
	}
	return s.courseIDOfSection(page.SectionID)
}

func (s *OutlineService) courseIDOfBlock(blockID string) (string, error) {
	block, err := s.BlockRepo.FindByID(blockID)
	if err != nil {
		return "", err
	}
	return s.courseIDOfPage(block.PageID)
}

// Sections

func (s *OutlineService) ListSections(courseID string) ([]model.Section, error) {
	return s.SectionRepo.ListByCourse(courseID)
}

// ListSectionsForUser gates the read on enrollment for students before
// returning the ordered sibling list.
func (s *OutlineService) ListSectionsForUser(courseID string, userID uint, role model.UserRole) ([]model.Section, error) {
	if err := s.authorizeCourseRead(courseID, userID, role); err != nil {
		return nil, err
	}
	return s.SectionRepo.ListByCourse(courseID)
}

func (s *OutlineService) CreateSection(ctx context.Context, section *model.Section) error {
	if _, err := s.CourseRepo.FindByID(section.CourseID); err != nil {
		return err
	}
	if err := s.SectionRepo.Create(section); err != nil {
		return err
	}
	s.invalidateOutline(ctx, section.CourseID)
	return nil
}

func (s *OutlineService) UpdateSection(ctx context.Context, id, title string) (*model.Section, error) {
	section, err := s.SectionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	section.Title = title
	if err := s.SectionRepo.Update(section); err != nil {
		return nil, err
	}
	s.invalidateOutline(ctx, section.CourseID)
	return section, nil
}

func (s *OutlineService) DeleteSection(ctx context.Context, id string) error {
	courseID, err := s.courseIDOfSection(id)
	if err != nil {
		return err
	}
	if err := s.SectionRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateOutline(ctx, courseID)
	return nil
}

func (s *OutlineService) ReorderSections(ctx context.Context, courseID string, orderedIDs []string) error {
	err := s.SectionRepo.Reorder(courseID, orderedIDs)
	s.recordReorder("section", err)
	if err != nil {
		return err
	}
	s.invalidateOutline(ctx, courseID)
	return nil
}

// Pages

func (s *OutlineService) ListPages(sectionID string) ([]model.Page, error) {
	return s.PageRepo.ListBySection(sectionID)
}

func (s *OutlineService) ListPagesForUser(sectionID string, userID uint, role model.UserRole) ([]model.Page, error) {
	courseID, err := s.courseIDOfSection(sectionID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCourseRead(courseID, userID, role); err != nil {
		return nil, err
	}
	return s.PageRepo.ListBySection(sectionID)
}

func (s *OutlineService) CreatePage(ctx context.Context, page *model.Page) error {
	courseID, err := s.courseIDOfSection(page.SectionID)
	if err != nil {
		return err
	}
	if err := s.PageRepo.Create(page); err != nil {
		return err
	}
	s.invalidateOutline(ctx, courseID)
	return nil
}

func (s *OutlineService) UpdatePage(ctx context.Context, id, title string) (*model.Page, error) {
	page, err := s.PageRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	page.Title = title
	if err := s.PageRepo.Update(page); err != nil {
		return nil, err
	}
	if courseID, err := s.courseIDOfSection(page.SectionID); err == nil {
		s.invalidateOutline(ctx, courseID)
	}
	return page, nil
}

func (s *OutlineService) DeletePage(ctx context.Context, id string) error {
	courseID, err := s.courseIDOfPage(id)
	if err != nil {
		return err
	}
	if err := s.PageRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateOutline(ctx, courseID)
	return nil
}

func (s *OutlineService) ReorderPages(ctx context.Context, sectionID string, orderedIDs []string) error {
	err := s.PageRepo.Reorder(sectionID, orderedIDs)
	s.recordReorder("page", err)
	if err != nil {
		return err
	}
	if courseID, cerr := s.courseIDOfSection(sectionID); cerr == nil {
		s.invalidateOutline(ctx, courseID)
	}
	return nil
}

// Blocks

func (s *OutlineService) ListBlocks(pageID string) ([]model.BlockView, error) {
	blocks, err := s.BlockRepo.ListByPage(pageID)
	if err != nil {
		return nil, err
	}
	views := make([]model.BlockView, 0, len(blocks))
	for _, b := range blocks {
		views = append(views, model.NewBlockView(b))
	}
	return views, nil
}

func (s *OutlineService) ListBlocksForUser(pageID string, userID uint, role model.UserRole) ([]model.BlockView, error) {
	courseID, err := s.courseIDOfPage(pageID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCourseRead(courseID, userID, role); err != nil {
		return nil, err
	}
	return s.ListBlocks(pageID)
}

func (s *OutlineService) CreateBlock(ctx context.Context, block *model.Block, options []string) error {
	if !model.ValidBlockType(block.Type) {
		return util.ErrInvalidBlockType
	}
	if len(options) > 0 && block.Type != model.BlockQuestionChoice {
		return util.ErrOptionsNotChoice
	}
	if err := block.SetOptions(options); err != nil {
		return err
	}

	courseID, err := s.courseIDOfPage(block.PageID)
	if err != nil {
		return err
	}
	if err := s.BlockRepo.Create(block); err != nil {
		return err
	}
	s.invalidateOutline(ctx, courseID)
	return nil
}

func (s *OutlineService) UpdateBlock(ctx context.Context, id, title, content string, options []string) (*model.BlockView, error) {
	block, err := s.BlockRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if len(options) > 0 && block.Type != model.BlockQuestionChoice {
		return nil, util.ErrOptionsNotChoice
	}

	block.Title = title
	block.Content = content
	if block.Type == model.BlockQuestionChoice {
		if err := block.SetOptions(options); err != nil {
			return nil, err
		}
	}

	if err := s.BlockRepo.Update(block); err != nil {
		return nil, err
	}
	if courseID, cerr := s.courseIDOfPage(block.PageID); cerr == nil {
		s.invalidateOutline(ctx, courseID)
	}
	view := model.NewBlockView(*block)
	return &view, nil
}

// DeleteBlock also drops the per-user answers attached to the block, since
// answer rows reference it by id.
func (s *OutlineService) DeleteBlock(ctx context.Context, id string) error {
	courseID, err := s.courseIDOfBlock(id)
	if err != nil {
		return err
	}
	if err := s.BlockRepo.Delete(id); err != nil {
		return err
	}
	if err := s.AnswerRepo.DeleteByBlock(id); err != nil {
		logger.Log.Warn("orphan answers not removed", zap.String("block", id), zap.Error(err))
	}
	s.invalidateOutline(ctx, courseID)
	return nil
}

func (s *OutlineService) ReorderBlocks(ctx context.Context, pageID string, orderedIDs []string) error {
	err := s.BlockRepo.Reorder(pageID, orderedIDs)
	s.recordReorder("block", err)
	if err != nil {
		return err
	}
	if courseID, cerr := s.courseIDOfPage(pageID); cerr == nil {
		s.invalidateOutline(ctx, courseID)
	}
	return nil
}

func (s *OutlineService) recordReorder(entity string, err error) {
	outcome := "ok"
	switch {
	case err == util.ErrReorderConflict:
		outcome = "conflict"
	case err != nil:
		outcome = "error"
	}
	monitoring.ReorderCounter.WithLabelValues(entity, outcome).Inc()
}
