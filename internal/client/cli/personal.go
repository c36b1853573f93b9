package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

// defaultPaymentTerm is the due date offered for a new payment.
const defaultPaymentTerm = 30 * 24 * time.Hour

var errNoUploader = errors.New("video upload is not configured (set TRAINERHUB_S3_BUCKET)")

func (a *App) personalDashboard(ctx context.Context, _ []string) error {
	o, err := a.svc.Dashboard.Personal(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Students: %d\n", len(o.Students))
	printSummary(a.out, o.Summary)
	fmt.Fprintf(a.out, "\nExpiring workouts (%d):\n", len(o.ExpiringWorkouts))
	printWorkouts(a.out, o.ExpiringWorkouts, a.now())
	fmt.Fprintf(a.out, "\nOpen feedback (%d):\n", len(o.OpenFeedback))
	printFeedback(a.out, o.OpenFeedback)
	return nil
}

func (a *App) students(ctx context.Context, args []string) error {
	list, err := a.svc.Students.List(ctx)
	if err != nil {
		return err
	}
	printStudents(a.out, models.FilterStudents(list, strings.Join(args, " ")))
	return nil
}

func (a *App) student(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("student <id>")
	}

	d, err := a.svc.Dashboard.StudentDetail(ctx, args[0])
	if err != nil {
		return err
	}

	s := d.Student
	fmt.Fprintf(a.out, "%s <%s>\n", s.Name, s.Email)
	if s.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", s.Phone)
	}
	fmt.Fprintf(a.out, "Since: %s\n\nWorkouts:\n", formatDate(&s.CreatedAt))
	printWorkouts(a.out, d.Workouts, a.now())
	fmt.Fprintln(a.out, "\nEvaluations:")
	printProgress(a.out, &models.ProgressData{Evaluations: d.Evaluations})
	return nil
}

func (a *App) newStudent(ctx context.Context, _ []string) error {
	name, err := a.ask("Student name")
	if err != nil {
		return err
	}
	email, err := a.ask("Student email")
	if err != nil {
		return err
	}
	phone, err := a.ask("Phone (optional)")
	if err != nil {
		return err
	}
	password, err := a.readSecret("Initial password")
	if err != nil {
		return err
	}

	check := models.RegisterData{Name: name, Email: email, Password: password, Role: models.RoleStudent}
	if err := check.Validate(); err != nil {
		return err
	}

	s, err := a.svc.Students.Create(ctx, models.CreateStudentData{Name: name, Email: email, Password: password, Phone: phone})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Student %s added (%s)\n", s.Name, s.ID)
	return nil
}

// exercises lists the catalog. The first argument is taken as a muscle
// group when it names one; the rest is a name query.
func (a *App) exercises(ctx context.Context, args []string) error {
	group := ""
	if len(args) > 0 {
		for _, g := range models.MuscleGroups {
			if strings.EqualFold(g, args[0]) {
				group = g
				args = args[1:]
				break
			}
		}
	}

	list, err := a.svc.Exercises.List(ctx, group)
	if err != nil {
		return err
	}
	printExercises(a.out, models.FilterExercises(list, group, strings.Join(args, " ")))
	return nil
}

func (a *App) newExercise(ctx context.Context, _ []string) error {
	name, err := a.ask("Exercise name")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return usageError("exercise name is required")
	}
	group, err := a.ask("Muscle group (" + strings.Join(models.MuscleGroups, ", ") + ")")
	if err != nil {
		return err
	}
	equipment, err := a.ask("Equipment (optional)")
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	e, err := a.svc.Exercises.Create(ctx, models.CreateExerciseData{
		Name:        name,
		MuscleGroup: group,
		Equipment:   equipment,
		Description: description,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exercise %s added (%s)\n", e.Name, e.ID)
	return nil
}

func (a *App) uploadVideo(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("upload-video <exercise-id> <file>")
	}
	if a.uploader == nil {
		return errNoUploader
	}

	url, err := a.uploader.UploadVideo(ctx, args[1])
	if err != nil {
		return err
	}
	e, err := a.svc.Exercises.Update(ctx, args[0], models.UpdateExerciseData{VideoURL: &url})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Video attached to %s: %s\n", e.Name, url)
	return nil
}

// editExercise offers each field with its current value; an empty answer
// keeps it. Only changed fields are sent.
func (a *App) editExercise(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("editexercise <exercise-id>")
	}
	e, err := a.svc.Exercises.Get(ctx, args[0])
	if err != nil {
		return err
	}

	var data models.UpdateExerciseData
	fields := []struct {
		label   string
		current string
		dst     **string
	}{
		{"Name", e.Name, &data.Name},
		{"Muscle group", e.MuscleGroup, &data.MuscleGroup},
		{"Equipment", e.Equipment, &data.Equipment},
		{"Description", e.Description, &data.Description},
		{"Video URL", e.VideoURL, &data.VideoURL},
	}
	changed := false
	for _, f := range fields {
		v, err := a.ask(fmt.Sprintf("%s [%s]", f.label, f.current))
		if err != nil {
			return err
		}
		if v == "" || v == f.current {
			continue
		}
		*f.dst = &v
		changed = true
	}
	if !changed {
		fmt.Fprintln(a.out, "Nothing changed.")
		return nil
	}

	updated, err := a.svc.Exercises.Update(ctx, e.ID, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exercise %s updated.\n", updated.Name)
	return nil
}

func (a *App) removeExercise(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("rmexercise <exercise-id>")
	}
	ok, err := a.confirm(fmt.Sprintf("Delete exercise %s?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := a.svc.Exercises.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Exercise deleted.")
	return nil
}

func (a *App) plans(ctx context.Context, args []string) error {
	studentID := ""
	if len(args) > 0 {
		studentID = args[0]
	}
	list, err := a.svc.TrainingPlans.List(ctx, studentID)
	if err != nil {
		return err
	}
	printPlans(a.out, list)
	return nil
}

// newPlan walks through a plan draft: name, then the exercises of each
// workout, given as catalog ids or unique name fragments.
func (a *App) newPlan(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("newplan <student-id>")
	}

	catalog, err := a.svc.Exercises.List(ctx, "")
	if err != nil {
		return err
	}

	draft := models.NewPlanDraft(args[0], a.now())
	if draft.Name, err = a.ask("Plan name"); err != nil {
		return err
	}

	for w := 0; ; {
		err := a.pickExercises(catalog, draft.Workouts[w].Name, func(ex models.Exercise) error {
			return draft.AddExercise(w, ex)
		})
		if err != nil {
			return err
		}

		more, err := a.confirm("Add another workout?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
		w = draft.AddWorkout()
	}

	data, err := draft.Build()
	if err != nil {
		return err
	}
	plan, err := a.svc.TrainingPlans.Create(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Plan %s created (%s), %s to %s\n", plan.Name, plan.ID, formatDate(&plan.StartDate), formatDate(&plan.EndDate))
	return nil
}

// pickExercises reads one line of exercise references for label and passes
// each resolved exercise to add. Unresolved references are reported and
// skipped.
func (a *App) pickExercises(catalog []models.Exercise, label string, add func(models.Exercise) error) error {
	line, err := a.ask(fmt.Sprintf("%s: exercises (ids or names, comma separated)", label))
	if err != nil {
		return err
	}
	for _, ref := range strings.Split(line, ",") {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		ex, err := resolveExercise(catalog, ref)
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if err := add(ex); err != nil {
			fmt.Fprintln(a.out, err)
		}
	}
	return nil
}

func resolveExercise(catalog []models.Exercise, ref string) (models.Exercise, error) {
	for _, e := range catalog {
		if e.ID == ref {
			return e, nil
		}
	}
	matches := models.FilterExercises(catalog, "", ref)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Exercise{}, fmt.Errorf("no exercise matches %q", ref)
	default:
		return models.Exercise{}, fmt.Errorf("%q matches %d exercises, be more specific", ref, len(matches))
	}
}

func (a *App) togglePlan(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("toggleplan <plan-id>")
	}
	res, err := a.svc.TrainingPlans.ToggleActive(ctx, args[0])
	if err != nil {
		return err
	}
	state := "inactive"
	if res.IsActive {
		state = "active"
	}
	fmt.Fprintf(a.out, "Plan is now %s.\n", state)
	return nil
}

func (a *App) removePlan(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("rmplan <plan-id>")
	}
	ok, err := a.confirm(fmt.Sprintf("Delete training plan %s and its workouts?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := a.svc.TrainingPlans.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Training plan deleted.")
	return nil
}

// newWorkout builds a standalone workout. The optional second argument
// sets the expiry in days from now.
func (a *App) newWorkout(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError("newworkout <student-id> [days]")
	}
	draft := models.NewWorkoutDraft(args[0])
	if len(args) == 2 {
		days, err := strconv.Atoi(args[1])
		if err != nil || days <= 0 {
			return usageError("newworkout <student-id> [days]")
		}
		exp := a.now().AddDate(0, 0, days)
		draft.ExpiresAt = &exp
	}

	catalog, err := a.svc.Exercises.List(ctx, "")
	if err != nil {
		return err
	}

	if draft.Name, err = a.ask("Workout name"); err != nil {
		return err
	}
	if draft.Description, err = a.ask("Description (optional)"); err != nil {
		return err
	}
	if err := a.pickExercises(catalog, draft.Name, draft.AddExercise); err != nil {
		return err
	}

	data, err := draft.Build()
	if err != nil {
		return err
	}
	w, err := a.svc.Workouts.Create(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Workout %s created (%s) with %d exercise(s).\n", w.Name, w.ID, len(data.Exercises))
	return nil
}

func (a *App) workouts(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("workouts <student-id>")
	}
	list, err := a.svc.Workouts.List(ctx, args[0])
	if err != nil {
		return err
	}
	printWorkouts(a.out, list, a.now())
	return nil
}

func (a *App) expiring(ctx context.Context, args []string) error {
	days := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return usageError("expiring [days]")
		}
		days = n
	}

	workouts, err := a.svc.Workouts.Expiring(ctx, days)
	if err != nil {
		return err
	}
	plans, err := a.svc.TrainingPlans.Expiring(ctx, days)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Workouts:")
	printWorkouts(a.out, workouts, a.now())
	fmt.Fprintln(a.out, "\nPlans:")
	printPlans(a.out, plans)
	return nil
}

func parseFeedbackStatus(args []string) (models.FeedbackStatus, error) {
	if len(args) == 0 {
		return "", nil
	}
	switch s := models.FeedbackStatus(strings.ToUpper(args[0])); s {
	case models.FeedbackOpen, models.FeedbackResolved:
		return s, nil
	default:
		return "", usageError("feedback [OPEN|RESOLVED]")
	}
}

func (a *App) feedback(ctx context.Context, args []string) error {
	status, err := parseFeedbackStatus(args)
	if err != nil {
		return err
	}
	list, err := a.svc.Feedback.List(ctx, status)
	if err != nil {
		return err
	}
	printFeedback(a.out, list)
	return nil
}

// showFeedback prints one feedback with its reply thread.
func (a *App) showFeedback(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("showfeedback <feedback-id>")
	}
	f, err := a.svc.Feedback.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printFeedbackDetail(a.out, f)
	return nil
}

func (a *App) respond(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("respond <feedback-id>")
	}
	msg, err := GetMultiline(a.reader, "Your reply", a.out)
	if err != nil {
		return err
	}
	if msg == "" {
		return usageError("reply cannot be empty")
	}

	if _, err := a.svc.Feedback.AddResponse(ctx, args[0], models.CreateResponseData{Message: msg}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Reply sent.")
	return nil
}

func (a *App) resolve(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("resolve <feedback-id>")
	}
	if _, err := a.svc.Feedback.Resolve(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Feedback resolved.")
	return nil
}

func (a *App) reopen(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("reopen <feedback-id>")
	}
	if _, err := a.svc.Feedback.Reopen(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Feedback reopened.")
	return nil
}

func parsePaymentStatus(args []string) (models.PaymentStatus, error) {
	if len(args) == 0 {
		return "", nil
	}
	switch s := models.PaymentStatus(strings.ToUpper(args[0])); s {
	case models.PaymentPending, models.PaymentPaid, models.PaymentOverdue:
		return s, nil
	default:
		return "", usageError("payments [PENDING|PAID|OVERDUE]")
	}
}

func (a *App) payments(ctx context.Context, args []string) error {
	status, err := parsePaymentStatus(args)
	if err != nil {
		return err
	}
	resp, err := a.svc.Finances.Payments(ctx, "", status)
	if err != nil {
		return err
	}
	printPayments(a.out, resp)
	return nil
}

func (a *App) newPayment(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("newpayment <student-id>")
	}

	amount, err := GetNumber(a.reader, "Amount", a.out, 0)
	if err != nil {
		return err
	}
	if amount <= 0 {
		return usageError("amount must be positive")
	}

	def := a.now().Add(defaultPaymentTerm)
	raw, err := a.ask(fmt.Sprintf("Due date (YYYY-MM-DD, default %s)", def.Format(dateLayout)))
	if err != nil {
		return err
	}
	due := def
	if raw != "" {
		if due, err = time.ParseInLocation(dateLayout, raw, time.Local); err != nil {
			return usageError("due date must look like 2024-01-31")
		}
	}

	description, err := a.ask("Description (optional)")
	if err != nil {
		return err
	}

	p, err := a.svc.Finances.CreatePayment(ctx, models.CreatePaymentData{
		StudentID:   args[0],
		Amount:      amount,
		DueDate:     due,
		Description: description,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Payment %s of %s due %s created.\n", p.ID, money(p.Amount), formatDate(&p.DueDate))
	return nil
}

func (a *App) markPaid(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("markpaid <payment-id>")
	}
	p, err := a.svc.Finances.MarkPaid(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Payment %s marked %s.\n", p.ID, p.Status)
	return nil
}
