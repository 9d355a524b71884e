package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/recurrence"
	routinesvc "github.com/antoniovita/projeto-gymAI-sub000/internal/routine"
)

type RoutineAddCmd struct {
	Title    string `arg:"" help:"Routine title."`
	Days     string `required:"" help:"Comma-separated weekdays (e.g. mon,wed,fri)."`
	Content  string `help:"Optional description."`
	Category string `help:"Free-form category label."`
}

func (c *RoutineAddCmd) Run(ctx *Context) error {
	weekdays, err := recurrence.ParseList(c.Days)
	if err != nil {
		return err
	}

	r, err := ctx.Routines.Create(models.Routine{
		Title:    c.Title,
		Content:  c.Content,
		Category: c.Category,
		OwnerID:  ctx.Owner,
		Weekdays: weekdays,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added routine %q (%s) on %s\n", r.Title, r.ID, strings.Join(r.Weekdays.Names(), ", "))
	return nil
}

type RoutineListCmd struct {
	All bool `help:"Include deactivated routines."`
}

func (c *RoutineListCmd) Run(ctx *Context) error {
	routines, err := ctx.Store.ListRoutines(ctx.Owner, c.All)
	if err != nil {
		return err
	}
	if len(routines) == 0 {
		fmt.Println("No routines.")
		return nil
	}

	for _, r := range routines {
		status := ""
		if !r.Active {
			status = " (inactive)"
		}
		total, err := ctx.Routines.TotalReward(r.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s%s  [%s]  reward=%d\n", r.ID, r.Title, status, strings.Join(r.Weekdays.Names(), ","), total)
	}
	return nil
}

type RoutineEditCmd struct {
	ID       string `arg:"" help:"Routine ID."`
	Title    string `help:"New title."`
	Days     string `help:"New comma-separated weekdays."`
	Content  string `help:"New description."`
	Category string `help:"New category."`
}

func (c *RoutineEditCmd) Run(ctx *Context) error {
	r, err := ctx.Store.GetRoutine(c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		r.Title = c.Title
	}
	if c.Days != "" {
		weekdays, err := recurrence.ParseList(c.Days)
		if err != nil {
			return err
		}
		r.Weekdays = weekdays
	}
	if c.Content != "" {
		r.Content = c.Content
	}
	if c.Category != "" {
		r.Category = c.Category
	}

	if err := ctx.Routines.Update(r); err != nil {
		return err
	}
	fmt.Printf("Updated routine %q on %s\n", r.Title, strings.Join(r.Weekdays.Names(), ", "))
	return nil
}

type RoutineRestoreCmd struct {
	ID string `arg:"" help:"Routine ID."`
}

func (c *RoutineRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Routines.Reactivate(c.ID); err != nil {
		return err
	}
	fmt.Println("Routine reactivated.")
	return nil
}

type RoutineDoneCmd struct {
	ID     string `arg:"" help:"Routine ID."`
	Day    string `help:"Day (YYYY-MM-DD), defaults to today."`
	Reward int    `help:"Reward to grant." default:"0"`
}

func (c *RoutineDoneCmd) Run(ctx *Context) error {
	day, err := dayOrToday(c.Day)
	if err != nil {
		return err
	}

	completion, err := ctx.Routines.Complete(c.ID, day, c.Reward)
	if err != nil {
		if errors.Is(err, routinesvc.ErrAlreadyCompleted) {
			fmt.Printf("Routine already completed on %s, nothing to do.\n", day)
			return nil
		}
		return err
	}

	// Rewards are the caller's contract: grant here, revoke exactly what
	// Uncomplete reports on undo.
	if completion.Reward > 0 {
		entry := models.RewardEntry{
			ID:        uuid.New().String(),
			OwnerID:   ctx.Owner,
			Amount:    completion.Reward,
			Reason:    "routine " + c.ID + " " + day,
			CreatedAt: time.Now(),
		}
		if err := ctx.Store.AddRewardEntry(entry); err != nil {
			return err
		}
	}

	fmt.Printf("Completed routine on %s (+%d reward)\n", day, completion.Reward)
	return nil
}

type RoutineUndoneCmd struct {
	ID  string `arg:"" help:"Routine ID."`
	Day string `help:"Day (YYYY-MM-DD), defaults to today."`
}

func (c *RoutineUndoneCmd) Run(ctx *Context) error {
	day, err := dayOrToday(c.Day)
	if err != nil {
		return err
	}

	reward, err := ctx.Routines.Uncomplete(c.ID, day)
	if err != nil {
		if errors.Is(err, routinesvc.ErrNotCompleted) {
			fmt.Printf("Routine was not completed on %s, nothing to do.\n", day)
			return nil
		}
		return err
	}

	if reward > 0 {
		entry := models.RewardEntry{
			ID:        uuid.New().String(),
			OwnerID:   ctx.Owner,
			Amount:    -reward,
			Reason:    "undo routine " + c.ID + " " + day,
			CreatedAt: time.Now(),
		}
		if err := ctx.Store.AddRewardEntry(entry); err != nil {
			return err
		}
	}

	fmt.Printf("Uncompleted routine on %s (-%d reward)\n", day, reward)
	return nil
}

type RoutineSkipCmd struct {
	ID  string `arg:"" help:"Routine ID."`
	Day string `help:"Day to skip (YYYY-MM-DD), defaults to today."`
}

func (c *RoutineSkipCmd) Run(ctx *Context) error {
	day, err := dayOrToday(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.Routines.SkipDay(c.ID, day); err != nil {
		return err
	}
	fmt.Printf("Skipped routine on %s\n", day)
	return nil
}

type RoutineUnskipCmd struct {
	ID  string `arg:"" help:"Routine ID."`
	Day string `help:"Day to restore (YYYY-MM-DD), defaults to today."`
}

func (c *RoutineUnskipCmd) Run(ctx *Context) error {
	day, err := dayOrToday(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.Routines.UnskipDay(c.ID, day); err != nil {
		return err
	}
	fmt.Printf("Restored routine on %s\n", day)
	return nil
}

type RoutineDeleteCmd struct {
	ID        string `arg:"" help:"Routine ID."`
	Permanent bool   `help:"Remove the record entirely instead of deactivating."`
}

func (c *RoutineDeleteCmd) Run(ctx *Context) error {
	if c.Permanent {
		if err := ctx.Routines.Delete(c.ID); err != nil {
			return err
		}
		fmt.Println("Routine permanently deleted.")
		return nil
	}
	if err := ctx.Routines.Deactivate(c.ID); err != nil {
		return err
	}
	fmt.Println("Routine deactivated; history retained.")
	return nil
}

func dayOrToday(s string) (string, error) {
	d, err := parseDay(s)
	if err != nil {
		return "", err
	}
	return recurrence.DayKey(d), nil
}
