package catalog

import (
	"context"
	"fmt"

	pgrepo "github.com/Hisham6667/summer-sports-server/internal/repo/postgres"
)

type InstructorStore interface {
	List(ctx context.Context) ([]pgrepo.InstructorRecord, error)
}

type ClassStore interface {
	List(ctx context.Context) ([]pgrepo.ClassRecord, error)
}

// Service exposes the public reference collections. Both reads are
// unauthenticated and return full contents in insertion order.
type Service struct {
	instructors InstructorStore
	classes     ClassStore
}

func NewService(instructors InstructorStore, classes ClassStore) *Service {
	return &Service{
		instructors: instructors,
		classes:     classes,
	}
}

func (s *Service) ListInstructors(ctx context.Context) ([]pgrepo.InstructorRecord, error) {
	if s.instructors == nil {
		return nil, fmt.Errorf("instructor store is nil")
	}
	return s.instructors.List(ctx)
}

func (s *Service) ListClasses(ctx context.Context) ([]pgrepo.ClassRecord, error) {
	if s.classes == nil {
		return nil, fmt.Errorf("class store is nil")
	}
	return s.classes.List(ctx)
}
