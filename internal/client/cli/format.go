package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func printStudents(w io.Writer, list []models.Student) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No students.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tWORKOUTS\tEVALUATIONS")
	for _, s := range list {
		var workouts, evals int
		if s.Count != nil {
			workouts, evals = s.Count.StudentWorkouts, s.Count.Evaluations
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", s.ID, s.Name, s.Email, workouts, evals)
	}
	tw.Flush()
}

func printExercises(w io.Writer, list []models.Exercise) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No exercises.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tMUSCLE GROUP\tEQUIPMENT\tVIDEO")
	for _, e := range list {
		video := "-"
		if e.VideoURL != "" {
			video = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.MuscleGroup, e.Equipment, video)
	}
	tw.Flush()
}

func printWorkouts(w io.Writer, list []models.Workout, now time.Time) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No workouts.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEXERCISES\tEXPIRES\tSTATUS")
	for _, wo := range list {
		status := "pending"
		if wo.Completed() {
			status = "done " + formatDate(wo.CompletedAt)
		} else if wo.ExpiresAt != nil {
			if days := models.DaysUntil(*wo.ExpiresAt, now); days <= 0 {
				status = "expired"
			} else {
				status = fmt.Sprintf("pending, %d day(s) left", days)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", wo.ID, wo.Name, len(wo.Exercises), formatDate(wo.ExpiresAt), status)
	}
	tw.Flush()
}

func printWorkout(w io.Writer, wo *models.Workout) {
	fmt.Fprintf(w, "%s (%s)\n", wo.Name, wo.ID)
	if wo.Description != "" {
		fmt.Fprintln(w, wo.Description)
	}
	if wo.TrainingPlan != nil {
		fmt.Fprintf(w, "Plan: %s\n", wo.TrainingPlan.Name)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tEXERCISE\tSETS\tREPS\tREST\tWEIGHT")
	for _, e := range wo.Exercises {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%ds\t%s\n", e.Order, e.Exercise.Name, e.Sets, e.Reps, e.RestSeconds, e.Weight)
	}
	tw.Flush()
}

func printPlans(w io.Writer, list []models.TrainingPlan) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No training plans.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSTUDENT\tFROM\tTO\tWORKOUTS\tACTIVE")
	for _, p := range list {
		student := p.StudentID
		if p.Student != nil {
			student = p.Student.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%t\n",
			p.ID, p.Name, student, formatDate(&p.StartDate), formatDate(&p.EndDate), len(p.Workouts), p.IsActive)
	}
	tw.Flush()
}

func printFeedback(w io.Writer, list []models.Feedback) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No feedback.")
		return
	}
	for _, f := range list {
		from := f.StudentID
		if f.Student != nil {
			from = f.Student.Name
		}
		workout := f.WorkoutID
		if f.Workout != nil {
			workout = f.Workout.Name
		}
		fmt.Fprintf(w, "[%s] %s  %s on %s (%s)\n  %s\n", f.Status, f.ID, from, workout, formatDate(&f.CreatedAt), f.Message)
		for _, r := range f.Responses {
			fmt.Fprintf(w, "    > %s\n", r.Message)
		}
	}
}

func printFeedbackDetail(w io.Writer, f *models.Feedback) {
	from := f.StudentID
	if f.Student != nil {
		from = f.Student.Name
	}
	workout := f.WorkoutID
	if f.Workout != nil {
		workout = f.Workout.Name
	}
	fmt.Fprintf(w, "Feedback %s [%s]\nFrom: %s\nWorkout: %s\nSent: %s\n\n%s\n",
		f.ID, f.Status, from, workout, f.CreatedAt.Local().Format(dateTimeLayout), f.Message)
	if f.ResolvedAt != nil {
		fmt.Fprintf(w, "Resolved: %s\n", formatDate(f.ResolvedAt))
	}

	if len(f.Responses) == 0 {
		fmt.Fprintln(w, "\nNo replies yet.")
		return
	}
	fmt.Fprintf(w, "\nReplies (%d):\n", len(f.Responses))
	for _, r := range f.Responses {
		by := r.PersonalID
		if r.Personal != nil {
			by = r.Personal.Name
		}
		fmt.Fprintf(w, "  %s, %s:\n    %s\n", by, r.CreatedAt.Local().Format(dateTimeLayout), r.Message)
	}
}

func printPlan(w io.Writer, p *models.TrainingPlan) {
	state := "inactive"
	if p.IsActive {
		state = "active"
	}
	fmt.Fprintf(w, "%s (%s), %s\n%s to %s\n", p.Name, p.ID, state, formatDate(&p.StartDate), formatDate(&p.EndDate))
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
	for i := range p.Workouts {
		fmt.Fprintln(w)
		printWorkout(w, &p.Workouts[i])
	}
}

func printPayments(w io.Writer, resp *models.PaymentsResponse) {
	if len(resp.Payments) == 0 {
		fmt.Fprintln(w, "No payments.")
	} else {
		tw := newTable(w)
		fmt.Fprintln(tw, "ID\tSTUDENT\tAMOUNT\tDUE\tSTATUS\tDESCRIPTION")
		for _, p := range resp.Payments {
			student := p.StudentID
			if p.Student != nil {
				student = p.Student.Name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, student, money(p.Amount), formatDate(&p.DueDate), p.Status, p.Description)
		}
		tw.Flush()
	}
	printSummary(w, &resp.Summary)
}

func printSummary(w io.Writer, s *models.FinancialSummary) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "Pending: %s  Overdue: %s  Received: %s", money(s.PendingAmount), money(s.OverdueAmount), money(s.TotalReceived))
	if s.MonthlyRevenue > 0 {
		fmt.Fprintf(w, "  This month: %s", money(s.MonthlyRevenue))
	}
	if s.TotalDue > 0 {
		fmt.Fprintf(w, "  Due: %s", money(s.TotalDue))
	}
	fmt.Fprintln(w)
}

func printProgress(w io.Writer, p *models.ProgressData) {
	if p == nil || len(p.Evaluations) == 0 {
		fmt.Fprintln(w, "No evaluations yet.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tWEIGHT\tHEIGHT\tBMI\tBODY FAT")
	for _, e := range p.Evaluations {
		fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%s\t%s\n",
			formatDate(&e.EvaluationDate), e.Weight, e.Height, optFloat(e.BMI), optFloat(e.BodyFat))
	}
	tw.Flush()

	if p.Progress != nil {
		fmt.Fprintf(w, "Over %d day(s): weight %+.1f, BMI %s, body fat %s\n",
			p.Progress.PeriodDays, p.Progress.WeightChange, optSigned(p.Progress.BMIChange), optSigned(p.Progress.BodyFatChange))
	}
}

func optFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func optSigned(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f", *v)
}
