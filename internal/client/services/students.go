package services

import (
	"context"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

const studentsPath = "/students"

// StudentService manages a trainer's students.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, data models.CreateStudentData) (*models.Student, error)
	Update(ctx context.Context, id string, data models.UpdateStudentData) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	api API
}

func NewStudentService(api API) StudentService {
	return &studentService{api: api}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	if err := s.api.Get(ctx, studentsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*models.Student, error) {
	var out models.Student
	if err := s.api.Get(ctx, resourcePath(studentsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *studentService) Create(ctx context.Context, data models.CreateStudentData) (*models.Student, error) {
	var out models.Student
	if err := s.api.Post(ctx, studentsPath, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *studentService) Update(ctx context.Context, id string, data models.UpdateStudentData) (*models.Student, error) {
	var out models.Student
	if err := s.api.Patch(ctx, resourcePath(studentsPath, id), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, resourcePath(studentsPath, id))
}
