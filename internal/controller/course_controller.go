package controller

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/service"
	"coursecraft_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CourseController struct {
	CourseService  *service.CourseService
	OutlineService *service.OutlineService
}

func NewCourseController(courseService *service.CourseService, outlineService *service.OutlineService) *CourseController {
	return &CourseController{CourseService: courseService, OutlineService: outlineService}
}

type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// ListCourses godoc
// @Summary Courses visible to the caller
// @Description Teachers and admins see all courses, students their enrolled ones
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	courses, err := c.CourseService.ListForUser(claims.UserID, claims.Role)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Single course by id
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	course, err := c.CourseService.GetForUser(ctx.Param("id"), claims.UserID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case err == util.ErrNotEnrolled:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// GetOutline godoc
// @Summary Full expanded tree of a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response{data=model.CourseOutline}
// @Router /api/courses/{id}/outline [get]
func (c *CourseController) GetOutline(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	courseID := ctx.Param("id")

	if _, err := c.CourseService.GetForUser(courseID, claims.UserID, claims.Role); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case err == util.ErrNotEnrolled:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	outline, err := c.OutlineService.GetOutline(ctx.Request.Context(), courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, outline)
}

// CreateCourse godoc
// @Summary Create a course (teacher/admin)
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CourseRequest true "Course data"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     claims.UserID,
	}

	if err := c.CourseService.Create(course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Edit course title/description (teacher/admin)
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param request body CourseRequest true "Course data"
// @Success 200 {object} util.Response{data=model.Course}
// @Router /api/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(ctx.Request.Context(), ctx.Param("id"), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course and its whole subtree (teacher/admin)
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.CourseService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
