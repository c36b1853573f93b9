package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

func (a *App) myID() string {
	if u := a.session.User(); u != nil {
		return u.ID
	}
	return ""
}

func (a *App) studentDashboard(ctx context.Context, _ []string) error {
	o, err := a.svc.Dashboard.Student(ctx, a.myID())
	if err != nil {
		return err
	}

	pending := models.PendingWorkouts(o.Workouts)
	fmt.Fprintf(a.out, "Pending workouts (%d of %d):\n", len(pending), len(o.Workouts))
	printWorkouts(a.out, pending, a.now())
	fmt.Fprintln(a.out, "\nProgress:")
	printProgress(a.out, o.Progress)
	if o.Payments != nil {
		fmt.Fprintln(a.out, "\nPayments:")
		printSummary(a.out, &o.Payments.Summary)
	}
	return nil
}

func (a *App) myWorkouts(ctx context.Context, args []string) error {
	list, err := a.svc.Workouts.List(ctx, a.myID())
	if err != nil {
		return err
	}
	if len(args) == 0 || args[0] != "all" {
		list = models.PendingWorkouts(list)
	}
	printWorkouts(a.out, list, a.now())
	return nil
}

func (a *App) workout(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("workout <id>")
	}
	w, err := a.svc.Workouts.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printWorkout(a.out, w)
	return nil
}

func (a *App) complete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("complete <workout-id>")
	}
	w, err := a.svc.Workouts.Complete(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s completed. Well done!\n", w.Name)
	return nil
}

func (a *App) myPlans(ctx context.Context, _ []string) error {
	list, err := a.svc.TrainingPlans.List(ctx, a.myID())
	if err != nil {
		return err
	}
	printPlans(a.out, models.ActivePlans(list))
	return nil
}

func (a *App) plan(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("plan <plan-id>")
	}
	p, err := a.svc.TrainingPlans.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printPlan(a.out, p)
	return nil
}

func (a *App) myFeedback(ctx context.Context, _ []string) error {
	list, err := a.svc.Feedback.List(ctx, "")
	if err != nil {
		return err
	}
	printFeedback(a.out, list)
	return nil
}

func (a *App) sendFeedback(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("sendfeedback <workout-id>")
	}
	msg, err := GetMultiline(a.reader, "How did it go?", a.out)
	if err != nil {
		return err
	}
	if msg == "" {
		return usageError("feedback cannot be empty")
	}

	f, err := a.svc.Feedback.Create(ctx, models.CreateFeedbackData{WorkoutID: args[0], Message: msg})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Feedback sent (%s).\n", f.ID)
	return nil
}

func (a *App) progress(ctx context.Context, _ []string) error {
	p, err := a.svc.Evaluations.Progress(ctx, a.myID())
	if err != nil {
		return err
	}
	printProgress(a.out, p)
	return nil
}

func (a *App) myPayments(ctx context.Context, _ []string) error {
	resp, err := a.svc.Finances.Payments(ctx, a.myID(), "")
	if err != nil {
		return err
	}
	printPayments(a.out, resp)
	return nil
}
