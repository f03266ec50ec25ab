package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/joho/godotenv"

	"backend/models"
	"backend/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectExists   = errors.New("project already exists")
)

// ProjectStore is the persistence boundary for projects.
type ProjectStore interface {
	List() []models.Project
	Get(id string) (models.Project, error)
	Insert(project models.Project) error
	Update(id string, fn func(*models.Project) error) (models.Project, error)
	Delete(id string) error
}

// MemoryStore keeps projects in process memory. Reads and writes go
// through deep copies so callers never share state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]models.Project
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string]models.Project)}
}

func (s *MemoryStore) List() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p.Clone())
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects
}

func (s *MemoryStore) Get(id string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return p.Clone(), nil
}

func (s *MemoryStore) Insert(project models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[project.ID]; ok {
		return fmt.Errorf("%w: %s", ErrProjectExists, project.ID)
	}
	s.projects[project.ID] = project.Clone()
	return nil
}

// Update applies fn to a copy of the project under the write lock and
// commits it only when fn succeeds.
func (s *MemoryStore) Update(id string, fn func(*models.Project) error) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	updated := p.Clone()
	if err := fn(&updated); err != nil {
		return models.Project{}, err
	}
	s.projects[id] = updated
	return updated.Clone(), nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	delete(s.projects, id)
	return nil
}

var store ProjectStore

// InitStore builds the process-wide store and optionally seeds it
// with the sample farmhouse project.
func InitStore() ProjectStore {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	s := NewMemoryStore()

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		sample := models.NewProject("Luxury Farmhouse")
		sample.Description = "Single-story luxury farmhouse sample plan"
		sample.AddFloorPlan(repository.LuxuryFarmhousePlan())
		if err := s.Insert(sample); err != nil {
			log.Println("Failed to seed sample project:", err)
		} else {
			log.Println("Seeded sample project", sample.ID)
		}
	}

	store = s
	return s
}

func GetStore() ProjectStore {
	return store
}
