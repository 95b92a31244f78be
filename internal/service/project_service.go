package service

import (
	"context"
	"net/url"

	"blogfolio/internal/models"
	"blogfolio/internal/repository"
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
}

type CreateProjectInput struct {
	Title       string
	Description string
	Link        string
}

type UpdateProjectInput struct {
	ProjectID   uint
	Title       *string
	Description *string
	Link        *string
}

func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Description == "" {
		return nil, models.NewValidationError("Description is required")
	}
	if err := validateProjectLink(in.Link); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *ProjectService) UpdateProject(ctx context.Context, in UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		project.Title = *in.Title
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, models.NewValidationError("Description cannot be empty")
		}
		project.Description = *in.Description
	}
	if in.Link != nil {
		if err := validateProjectLink(*in.Link); err != nil {
			return nil, err
		}
		project.Link = *in.Link
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}

// validateProjectLink accepts an empty link; when set it must be an absolute
// http(s) URL.
func validateProjectLink(link string) error {
	if link == "" {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return models.NewValidationError("Link must be a valid http(s) URL")
	}
	return nil
}
