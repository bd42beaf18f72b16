package service

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/repository"
	"coursecraft_backend/internal/util"
)

// Answerable block types: the two question variants plus file upload, whose
// answer text carries the uploaded file reference.
func answerable(t model.BlockType) bool {
	switch t {
	case model.BlockQuestionYesNo, model.BlockQuestionChoice, model.BlockFileUpload:
		return true
	}
	return false
}

type AnswerService struct {
	AnswerRepo *repository.AnswerRepository
	BlockRepo  *repository.BlockRepository
}

func NewAnswerService(answerRepo *repository.AnswerRepository, blockRepo *repository.BlockRepository) *AnswerService {
	return &AnswerService{
		AnswerRepo: answerRepo,
		BlockRepo:  blockRepo,
	}
}

// Submit upserts the caller's answer for a block. The user id always comes
// from the authenticated session, never from the request body.
func (s *AnswerService) Submit(userID uint, blockID, text string) (*model.Answer, error) {
	block, err := s.BlockRepo.FindByID(blockID)
	if err != nil {
		return nil, err
	}
	if !answerable(block.Type) {
		return nil, util.ErrInvalidBlockType
	}

	answer := &model.Answer{UserID: userID, BlockID: blockID, Text: text}
	if err := s.AnswerRepo.Upsert(answer); err != nil {
		return nil, err
	}
	return s.AnswerRepo.FindByUserAndBlock(userID, blockID)
}

func (s *AnswerService) GetOwn(userID uint, blockID string) (*model.Answer, error) {
	return s.AnswerRepo.FindByUserAndBlock(userID, blockID)
}

func (s *AnswerService) ListByBlock(blockID string) ([]model.Answer, error) {
	return s.AnswerRepo.ListByBlock(blockID)
}
