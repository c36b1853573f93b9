package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

const evaluationsPath = "/evaluations"

// EvaluationService manages physical evaluations of a student.
type EvaluationService interface {
	List(ctx context.Context, studentID string) ([]models.Evaluation, error)
	Get(ctx context.Context, id string) (*models.Evaluation, error)
	Progress(ctx context.Context, studentID string) (*models.ProgressData, error)
	Create(ctx context.Context, data models.CreateEvaluationData) (*models.Evaluation, error)
	Update(ctx context.Context, id string, data models.UpdateEvaluationData) (*models.Evaluation, error)
	Delete(ctx context.Context, id string) error
}

type evaluationService struct {
	api API
}

func NewEvaluationService(api API) EvaluationService {
	return &evaluationService{api: api}
}

func (s *evaluationService) List(ctx context.Context, studentID string) ([]models.Evaluation, error) {
	var out []models.Evaluation
	if err := s.api.Get(ctx, evaluationsPath, url.Values{"studentId": {studentID}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *evaluationService) Get(ctx context.Context, id string) (*models.Evaluation, error) {
	var out models.Evaluation
	if err := s.api.Get(ctx, resourcePath(evaluationsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *evaluationService) Progress(ctx context.Context, studentID string) (*models.ProgressData, error) {
	var out models.ProgressData
	if err := s.api.Get(ctx, evaluationsPath+"/progress", url.Values{"studentId": {studentID}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *evaluationService) Create(ctx context.Context, data models.CreateEvaluationData) (*models.Evaluation, error) {
	var out models.Evaluation
	if err := s.api.Post(ctx, evaluationsPath, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *evaluationService) Update(ctx context.Context, id string, data models.UpdateEvaluationData) (*models.Evaluation, error) {
	var out models.Evaluation
	if err := s.api.Patch(ctx, resourcePath(evaluationsPath, id), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *evaluationService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, resourcePath(evaluationsPath, id))
}
