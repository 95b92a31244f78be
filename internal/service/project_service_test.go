package service

import (
	"context"
	"testing"

	"blogfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectRepoStub is a stub for repository.ProjectRepository.
type projectRepoStub struct {
	createFn  func(context.Context, *models.Project) error
	getByIDFn func(context.Context, uint) (*models.Project, error)
	listFn    func(context.Context) ([]*models.Project, error)
	updateFn  func(context.Context, *models.Project) error
	deleteFn  func(context.Context, uint) error
}

func (s *projectRepoStub) Create(ctx context.Context, project *models.Project) error {
	return s.createFn(ctx, project)
}
func (s *projectRepoStub) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	return s.getByIDFn(ctx, id)
}
func (s *projectRepoStub) List(ctx context.Context) ([]*models.Project, error) {
	return s.listFn(ctx)
}
func (s *projectRepoStub) Update(ctx context.Context, project *models.Project) error {
	return s.updateFn(ctx, project)
}
func (s *projectRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopProjectRepo() *projectRepoStub {
	return &projectRepoStub{
		createFn: func(_ context.Context, _ *models.Project) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Project, error) {
			return &models.Project{ID: id, Title: "Portfolio", Description: "This site"}, nil
		},
		listFn:   func(_ context.Context) ([]*models.Project, error) { return nil, nil },
		updateFn: func(_ context.Context, _ *models.Project) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func TestProjectService_CreateProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		svc := NewProjectService(noopProjectRepo())
		_, err := svc.CreateProject(ctx, CreateProjectInput{Description: "desc"})
		assertValidationError(t, err)
	})

	t.Run("bad link", func(t *testing.T) {
		t.Parallel()
		svc := NewProjectService(noopProjectRepo())
		_, err := svc.CreateProject(ctx, CreateProjectInput{
			Title:       "Portfolio",
			Description: "This site",
			Link:        "ftp://example.com",
		})
		assertValidationError(t, err)
	})

	t.Run("empty link accepted", func(t *testing.T) {
		t.Parallel()
		repo := noopProjectRepo()
		repo.createFn = func(_ context.Context, p *models.Project) error {
			p.ID = 3
			return nil
		}
		svc := NewProjectService(repo)
		project, err := svc.CreateProject(ctx, CreateProjectInput{Title: "Portfolio", Description: "This site"})
		require.NoError(t, err)
		assert.Equal(t, uint(3), project.ID)
	})
}

func TestProjectService_UpdateProject_PartialFields(t *testing.T) {
	t.Parallel()

	var saved *models.Project
	repo := noopProjectRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Project, error) {
		return &models.Project{ID: id, Title: "Old", Description: "Old desc", Link: "https://old.example.com"}, nil
	}
	repo.updateFn = func(_ context.Context, p *models.Project) error {
		saved = p
		return nil
	}
	svc := NewProjectService(repo)

	_, err := svc.UpdateProject(context.Background(), UpdateProjectInput{
		ProjectID: 3,
		Title:     strPtr("New"),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "New", saved.Title)
	assert.Equal(t, "Old desc", saved.Description)
	assert.Equal(t, "https://old.example.com", saved.Link)
}

func TestProjectService_DeleteProject_NotFound(t *testing.T) {
	t.Parallel()

	repo := noopProjectRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Project, error) {
		return nil, models.NewNotFoundError("Project", id)
	}
	svc := NewProjectService(repo)

	err := svc.DeleteProject(context.Background(), 99)
	assertNotFoundError(t, err)
}
