package services

// Services bundles every resource service bound to one gateway.
type Services struct {
	Auth          AuthService
	Students      StudentService
	Exercises     ExerciseService
	Workouts      WorkoutService
	TrainingPlans TrainingPlanService
	Feedback      FeedbackService
	Finances      FinanceService
	Evaluations   EvaluationService
	Dashboard     DashboardService
}

func New(api API) *Services {
	s := &Services{
		Auth:          NewAuthService(api),
		Students:      NewStudentService(api),
		Exercises:     NewExerciseService(api),
		Workouts:      NewWorkoutService(api),
		TrainingPlans: NewTrainingPlanService(api),
		Feedback:      NewFeedbackService(api),
		Finances:      NewFinanceService(api),
		Evaluations:   NewEvaluationService(api),
	}
	s.Dashboard = NewDashboardService(s.Students, s.Workouts, s.Feedback, s.Finances, s.Evaluations)
	return s
}
