// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"blogfolio/internal/models"
	"blogfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProjects handles GET /api/projects
// @Summary List portfolio projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects [get]
func (s *Server) GetProjects(c *fiber.Ctx) error {
	projects, err := s.projectService.ListProjects(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projects)
}

// GetProject handles GET /api/projects/:id
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} models.ErrorResponse
// @Router /projects/{id} [get]
func (s *Server) GetProject(c *fiber.Ctx) error {
	id, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	project, err := s.projectService.GetProject(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body object{title=string,description=string,link=string} true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        string `json:"link"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	project, err := s.projectService.CreateProject(c.Context(), service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject handles PUT /api/projects/:id
// @Summary Update a project
// @Description Partial update; absent fields are left unchanged
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [put]
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Link        *string `json:"link"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	project, err := s.projectService.UpdateProject(c.Context(), service.UpdateProjectInput{
		ProjectID:   id,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(project)
}

// DeleteProject handles DELETE /api/projects/:id
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	if err := s.projectService.DeleteProject(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
