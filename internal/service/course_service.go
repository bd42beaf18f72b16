package service

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/repository"
	"coursecraft_backend/internal/util"
	"context"

	"github.com/go-redis/redis/v8"
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Redis          *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Redis:          rdb,
	}
}

func (s *CourseService) Create(course *model.Course) error {
	return s.CourseRepo.Create(course)
}

// ListForUser: teachers and admins see every course, students only what
// they are enrolled in.
func (s *CourseService) ListForUser(userID uint, role model.UserRole) ([]model.Course, error) {
	if role == model.Teacher || role == model.Admin {
		return s.CourseRepo.FindAll()
	}
	return s.CourseRepo.FindEnrolledByUser(userID)
}

// GetForUser enforces the enrollment gate for students server-side.
func (s *CourseService) GetForUser(courseID string, userID uint, role model.UserRole) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	if role == model.Student {
		enrolled, err := s.EnrollmentRepo.Exists(userID, courseID)
		if err != nil {
			return nil, err
		}
		if !enrolled {
			return nil, util.ErrNotEnrolled
		}
	}

	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id, title, description string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	course.Title = title
	course.Description = description
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateOutline(ctx, id)
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateOutline(ctx, id)
	return nil
}

func (s *CourseService) invalidateOutline(ctx context.Context, courseID string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(ctx, outlineCacheKeyPrefix+courseID)
}
