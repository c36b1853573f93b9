package services

import (
	"context"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// PersonalOverview is what a trainer sees first.
type PersonalOverview struct {
	Students         []models.Student
	Summary          *models.FinancialSummary
	ExpiringWorkouts []models.Workout
	OpenFeedback     []models.Feedback
}

// StudentOverview is what a student sees first.
type StudentOverview struct {
	Workouts []models.Workout
	Progress *models.ProgressData
	Payments *models.PaymentsResponse
}

// StudentDetail is a trainer's view of one student.
type StudentDetail struct {
	Student     *models.Student
	Workouts    []models.Workout
	Evaluations []models.Evaluation
}

// DashboardService aggregates several resource calls into one view. The
// calls run concurrently; the first failure cancels the rest and is
// returned.
type DashboardService interface {
	Personal(ctx context.Context) (*PersonalOverview, error)
	Student(ctx context.Context, studentID string) (*StudentOverview, error)
	StudentDetail(ctx context.Context, studentID string) (*StudentDetail, error)
}

type dashboardService struct {
	students    StudentService
	workouts    WorkoutService
	feedback    FeedbackService
	finances    FinanceService
	evaluations EvaluationService
}

func NewDashboardService(students StudentService, workouts WorkoutService, feedback FeedbackService,
	finances FinanceService, evaluations EvaluationService) DashboardService {
	return &dashboardService{
		students:    students,
		workouts:    workouts,
		feedback:    feedback,
		finances:    finances,
		evaluations: evaluations,
	}
}

func (d *dashboardService) Personal(ctx context.Context) (*PersonalOverview, error) {
	var out PersonalOverview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Students, err = d.students.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Summary, err = d.finances.Summary(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.ExpiringWorkouts, err = d.workouts.Expiring(ctx, DefaultExpiringDays)
		return err
	})
	g.Go(func() (err error) {
		out.OpenFeedback, err = d.feedback.List(ctx, models.FeedbackOpen)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *dashboardService) Student(ctx context.Context, studentID string) (*StudentOverview, error) {
	var out StudentOverview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Workouts, err = d.workouts.List(ctx, "")
		return err
	})
	g.Go(func() (err error) {
		out.Progress, err = d.evaluations.Progress(ctx, studentID)
		return err
	})
	g.Go(func() (err error) {
		out.Payments, err = d.finances.Payments(ctx, "", "")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *dashboardService) StudentDetail(ctx context.Context, studentID string) (*StudentDetail, error) {
	var out StudentDetail
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Student, err = d.students.Get(ctx, studentID)
		return err
	})
	g.Go(func() (err error) {
		out.Workouts, err = d.workouts.List(ctx, studentID)
		return err
	})
	g.Go(func() (err error) {
		out.Evaluations, err = d.evaluations.List(ctx, studentID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
