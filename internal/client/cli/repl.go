package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/trainerhub/internal/client/session"
)

var errUsage = errors.New("usage")

func usageError(usage string) error {
	return fmt.Errorf("%w: %s", errUsage, usage)
}

// command is one REPL verb available in a navigation tree.
type command struct {
	name  string
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

// execIface is the surface the REPL needs. The real App satisfies it;
// tests can provide a lightweight stub.
type execIface interface {
	tree() session.Tree
	prompt() string
	commands(tree session.Tree) []command
	handleError(ctx context.Context, err error)
}

// runREPL reads one command per line and dispatches it against the command
// set of the current navigation tree, which is re-evaluated before every
// line. help lists that set; exit and quit leave the loop, as does the end
// of input. Command errors go to handleError and never stop the loop.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprint(w, a.prompt())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(w, a.commands(a.tree()))
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		cmd, ok := findCommand(a.commands(a.tree()), name)
		if !ok {
			fmt.Fprintln(w, "Unknown command:", name)
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			a.handleError(ctx, err)
		}
	}
}

func findCommand(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(w io.Writer, cmds []command) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Available commands:")
	for _, c := range cmds {
		fmt.Fprintf(tw, "  %s\t%s\n", c.usage, c.help)
	}
	fmt.Fprintf(tw, "  %s\t%s\n", "help", "show this list")
	fmt.Fprintf(tw, "  %s\t%s\n", "exit", "leave the program")
	tw.Flush()
}

// commands returns the verbs of tree.
func (a *App) commands(tree session.Tree) []command {
	switch tree {
	case session.TreeAuth:
		return a.authCommands()
	case session.TreePersonal:
		return append(a.accountCommands(), a.personalCommands()...)
	case session.TreeStudent:
		return append(a.accountCommands(), a.studentCommands()...)
	default:
		return nil
	}
}

func (a *App) authCommands() []command {
	return []command{
		{name: "login", usage: "login", help: "sign in with email and password", run: a.login},
		{name: "register", usage: "register", help: "create an account", run: a.register},
	}
}

func (a *App) accountCommands() []command {
	return []command{
		{name: "whoami", usage: "whoami", help: "show the signed-in user", run: a.whoami},
		{name: "logout", usage: "logout", help: "sign out and forget stored credentials", run: a.logout},
	}
}

func (a *App) personalCommands() []command {
	return []command{
		{name: "dashboard", usage: "dashboard", help: "overview of students, payments and feedback", run: a.personalDashboard},
		{name: "students", usage: "students [query]", help: "list students", run: a.students},
		{name: "student", usage: "student <id>", help: "show one student", run: a.student},
		{name: "newstudent", usage: "newstudent", help: "add a student", run: a.newStudent},
		{name: "exercises", usage: "exercises [muscle] [query]", help: "browse the exercise catalog", run: a.exercises},
		{name: "newexercise", usage: "newexercise", help: "add an exercise", run: a.newExercise},
		{name: "editexercise", usage: "editexercise <exercise-id>", help: "edit an exercise", run: a.editExercise},
		{name: "rmexercise", usage: "rmexercise <exercise-id>", help: "delete an exercise", run: a.removeExercise},
		{name: "upload-video", usage: "upload-video <exercise-id> <file>", help: "attach a demo video to an exercise", run: a.uploadVideo},
		{name: "plans", usage: "plans [student-id]", help: "list training plans", run: a.plans},
		{name: "newplan", usage: "newplan <student-id>", help: "build a training plan", run: a.newPlan},
		{name: "toggleplan", usage: "toggleplan <plan-id>", help: "activate or deactivate a plan", run: a.togglePlan},
		{name: "rmplan", usage: "rmplan <plan-id>", help: "delete a training plan", run: a.removePlan},
		{name: "workouts", usage: "workouts <student-id>", help: "list a student's workouts", run: a.workouts},
		{name: "newworkout", usage: "newworkout <student-id> [days]", help: "create a single workout", run: a.newWorkout},
		{name: "expiring", usage: "expiring [days]", help: "workouts and plans about to expire", run: a.expiring},
		{name: "feedback", usage: "feedback [OPEN|RESOLVED]", help: "list student feedback", run: a.feedback},
		{name: "showfeedback", usage: "showfeedback <feedback-id>", help: "show feedback and its replies", run: a.showFeedback},
		{name: "respond", usage: "respond <feedback-id>", help: "reply to feedback", run: a.respond},
		{name: "resolve", usage: "resolve <feedback-id>", help: "mark feedback resolved", run: a.resolve},
		{name: "reopen", usage: "reopen <feedback-id>", help: "reopen resolved feedback", run: a.reopen},
		{name: "payments", usage: "payments [PENDING|PAID|OVERDUE]", help: "list payments", run: a.payments},
		{name: "newpayment", usage: "newpayment <student-id>", help: "bill a student", run: a.newPayment},
		{name: "markpaid", usage: "markpaid <payment-id>", help: "record a payment", run: a.markPaid},
	}
}

func (a *App) studentCommands() []command {
	return []command{
		{name: "dashboard", usage: "dashboard", help: "your workouts, progress and payments", run: a.studentDashboard},
		{name: "workouts", usage: "workouts [all]", help: "your pending workouts", run: a.myWorkouts},
		{name: "workout", usage: "workout <id>", help: "show a workout", run: a.workout},
		{name: "complete", usage: "complete <workout-id>", help: "mark a workout done", run: a.complete},
		{name: "plans", usage: "plans", help: "your active training plans", run: a.myPlans},
		{name: "plan", usage: "plan <plan-id>", help: "show a training plan and its workouts", run: a.plan},
		{name: "exercises", usage: "exercises [muscle] [query]", help: "browse the exercise catalog", run: a.exercises},
		{name: "feedback", usage: "feedback", help: "your feedback and replies", run: a.myFeedback},
		{name: "showfeedback", usage: "showfeedback <feedback-id>", help: "show feedback and its replies", run: a.showFeedback},
		{name: "sendfeedback", usage: "sendfeedback <workout-id>", help: "send feedback about a workout", run: a.sendFeedback},
		{name: "progress", usage: "progress", help: "your evaluation history", run: a.progress},
		{name: "payments", usage: "payments", help: "your payments", run: a.myPayments},
	}
}
