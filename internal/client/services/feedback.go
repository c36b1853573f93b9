package services

import (
	"context"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

const feedbackPath = "/feedback"

// FeedbackService covers workout feedback threads. Students create
// feedback; trainers respond, resolve and reopen it.
type FeedbackService interface {
	Create(ctx context.Context, data models.CreateFeedbackData) (*models.Feedback, error)
	List(ctx context.Context, status models.FeedbackStatus) ([]models.Feedback, error)
	Get(ctx context.Context, id string) (*models.Feedback, error)
	AddResponse(ctx context.Context, id string, data models.CreateResponseData) (*models.FeedbackResponse, error)
	Resolve(ctx context.Context, id string) (*models.Feedback, error)
	Reopen(ctx context.Context, id string) (*models.Feedback, error)
}

type feedbackService struct {
	api API
}

func NewFeedbackService(api API) FeedbackService {
	return &feedbackService{api: api}
}

func (s *feedbackService) Create(ctx context.Context, data models.CreateFeedbackData) (*models.Feedback, error) {
	var out models.Feedback
	if err := s.api.Post(ctx, feedbackPath, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *feedbackService) List(ctx context.Context, status models.FeedbackStatus) ([]models.Feedback, error) {
	var out []models.Feedback
	if err := s.api.Get(ctx, feedbackPath, optionalQuery("status", string(status)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *feedbackService) Get(ctx context.Context, id string) (*models.Feedback, error) {
	var out models.Feedback
	if err := s.api.Get(ctx, resourcePath(feedbackPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *feedbackService) AddResponse(ctx context.Context, id string, data models.CreateResponseData) (*models.FeedbackResponse, error) {
	var out models.FeedbackResponse
	if err := s.api.Post(ctx, resourcePath(feedbackPath, id, "response"), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *feedbackService) Resolve(ctx context.Context, id string) (*models.Feedback, error) {
	return s.transition(ctx, id, "resolve")
}

func (s *feedbackService) Reopen(ctx context.Context, id string) (*models.Feedback, error) {
	return s.transition(ctx, id, "reopen")
}

func (s *feedbackService) transition(ctx context.Context, id, action string) (*models.Feedback, error) {
	var out models.Feedback
	if err := s.api.Patch(ctx, resourcePath(feedbackPath, id, action), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
