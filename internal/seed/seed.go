// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"blogfolio/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	Users    int
	Posts    int
	Projects int
	// SkipBcrypt stores the demo password verbatim. Dev fast mode only;
	// logins against such rows will fail.
	SkipBcrypt bool
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rnd  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	if opts.Users <= 0 {
		opts.Users = 10
	}
	if opts.Posts <= 0 {
		opts.Posts = 30
	}
	if opts.Projects <= 0 {
		opts.Projects = 5
	}
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll deletes all seeded data. Delete order respects foreign keys.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"likes", "comments", "posts", "projects", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// Run populates the database with users, posts, threaded comments, likes,
// and portfolio projects.
func (s *Seeder) Run() error {
	users, err := s.createUsers()
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	slog.Info("seeded users", "count", len(users))

	posts, err := s.createPosts(users)
	if err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}
	slog.Info("seeded posts", "count", len(posts))

	comments, err := s.createComments(users, posts)
	if err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}
	slog.Info("seeded comments", "count", comments)

	likes, err := s.createLikes(users, posts)
	if err != nil {
		return fmt.Errorf("seeding likes: %w", err)
	}
	slog.Info("seeded likes", "count", likes)

	projects, err := s.createProjects()
	if err != nil {
		return fmt.Errorf("seeding projects: %w", err)
	}
	slog.Info("seeded projects", "count", projects)

	return nil
}

func (s *Seeder) demoPassword() string {
	if s.opts.SkipBcrypt {
		return "password123"
	}
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return string(hashed)
}

func (s *Seeder) createUsers() ([]models.User, error) {
	password := s.demoPassword()

	users := make([]models.User, 0, s.opts.Users+1)
	// One deterministic admin so the user listing endpoint is reachable.
	users = append(users, models.User{
		Email:    "admin@example.com",
		Password: password,
		Name:     "Admin",
		Role:     models.RoleAdmin,
	})
	for i := 0; i < s.opts.Users; i++ {
		users = append(users, models.User{
			Email:    fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), gofakeit.Email()),
			Password: password,
			Name:     gofakeit.Name(),
			Role:     models.RoleUser,
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Seeder) createPosts(users []models.User) ([]models.Post, error) {
	posts := make([]models.Post, 0, s.opts.Posts)
	for i := 0; i < s.opts.Posts; i++ {
		author := users[s.rnd.Intn(len(users))]
		post := models.Post{
			Title:    gofakeit.Sentence(6),
			Content:  gofakeit.Paragraph(2, 4, 8, "\n\n"),
			Category: models.Categories[s.rnd.Intn(len(models.Categories))],
			UserID:   author.ID,
		}
		// realistic created_at spread over the last 90 days
		daysBack := s.rnd.Intn(90)
		hoursBack := s.rnd.Intn(24)
		post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
		posts = append(posts, post)
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// createComments writes top-level comments first, then replies referencing
// them, so the one-level nesting rule holds for all generated data.
func (s *Seeder) createComments(users []models.User, posts []models.Post) (int, error) {
	count := 0
	for _, post := range posts {
		topLevel := make([]models.Comment, 0, 3)
		for i := 0; i < s.rnd.Intn(4); i++ {
			topLevel = append(topLevel, models.Comment{
				Content: gofakeit.Sentence(10),
				PostID:  post.ID,
				UserID:  users[s.rnd.Intn(len(users))].ID,
			})
		}
		if len(topLevel) == 0 {
			continue
		}
		if err := s.db.Create(&topLevel).Error; err != nil {
			return count, err
		}
		count += len(topLevel)

		for _, parent := range topLevel {
			if s.rnd.Intn(2) == 0 {
				continue
			}
			parentID := parent.ID
			reply := models.Comment{
				Content:  gofakeit.Sentence(8),
				PostID:   post.ID,
				UserID:   users[s.rnd.Intn(len(users))].ID,
				ParentID: &parentID,
			}
			if err := s.db.Create(&reply).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (s *Seeder) createLikes(users []models.User, posts []models.Post) (int, error) {
	count := 0
	for _, post := range posts {
		// distinct users per post so the (user_id, post_id) unique index holds
		perm := s.rnd.Perm(len(users))
		n := s.rnd.Intn(len(users) + 1)
		for _, idx := range perm[:n] {
			like := models.Like{UserID: users[idx].ID, PostID: post.ID}
			if err := s.db.Create(&like).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (s *Seeder) createProjects() (int, error) {
	projects := make([]models.Project, 0, s.opts.Projects)
	for i := 0; i < s.opts.Projects; i++ {
		projects = append(projects, models.Project{
			Title:       gofakeit.AppName(),
			Description: gofakeit.Paragraph(1, 2, 10, " "),
			Link:        gofakeit.URL(),
		})
	}
	if err := s.db.Create(&projects).Error; err != nil {
		return 0, err
	}
	return len(projects), nil
}
