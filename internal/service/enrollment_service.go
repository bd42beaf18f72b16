package service

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/repository"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

func (s *EnrollmentService) Enroll(userID uint, courseID string) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return err
	}
	return s.EnrollmentRepo.Create(&model.Enrollment{UserID: userID, CourseID: courseID})
}

func (s *EnrollmentService) Unenroll(userID uint, courseID string) error {
	return s.EnrollmentRepo.Delete(userID, courseID)
}

func (s *EnrollmentService) IsEnrolled(userID uint, courseID string) (bool, error) {
	return s.EnrollmentRepo.Exists(userID, courseID)
}

func (s *EnrollmentService) ListByCourse(courseID string) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByCourse(courseID)
}
