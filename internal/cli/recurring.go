package cli

import (
	"fmt"
	"strings"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/recurrence"
)

type RecurringAddCmd struct {
	Title    string `arg:"" help:"Recurring task title."`
	Days     string `required:"" help:"Comma-separated weekdays (e.g. 1,3,5 or mon,wed,fri)."`
	At       string `help:"Time of day (HH:MM)." default:"09:00"`
	Content  string `help:"Optional description."`
	Category string `help:"Free-form category label."`
	Generate bool   `help:"Materialize the default window immediately." default:"true" negatable:""`
}

func (c *RecurringAddCmd) Run(ctx *Context) error {
	weekdays, err := recurrence.ParseList(c.Days)
	if err != nil {
		return err
	}

	rt, err := ctx.Generator.Create(models.RecurringTask{
		Title:     c.Title,
		Content:   c.Content,
		Category:  c.Category,
		OwnerID:   ctx.Owner,
		TimeOfDay: c.At,
		Weekdays:  weekdays,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added recurring task %q (%s) on %s\n", rt.Title, rt.ID, strings.Join(rt.Weekdays.Names(), ", "))

	if c.Generate {
		start, end := ctx.Generator.Window(todayStart())
		count, err := ctx.Generator.Generate(rt, start, end)
		if err != nil {
			return err
		}
		fmt.Printf("Generated %d task(s) through %s\n", count, recurrence.DayKey(end))
	}
	return nil
}

type RecurringListCmd struct{}

func (c *RecurringListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.ListRecurringTasks(ctx.Owner)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No recurring tasks.")
		return nil
	}
	for _, rt := range tasks {
		fmt.Printf("%s  %s  [%s]  at %s\n", rt.ID, rt.Title, strings.Join(rt.Weekdays.Names(), ","), rt.TimeOfDay)
	}
	return nil
}

type RecurringEditCmd struct {
	ID       string `arg:"" help:"Recurring task ID."`
	Title    string `help:"New title."`
	Days     string `help:"New comma-separated weekdays."`
	At       string `help:"New time of day (HH:MM)."`
	Content  string `help:"New description."`
	Category string `help:"New category."`
	Horizon  int    `help:"Regeneration window in days." default:"7"`
}

func (c *RecurringEditCmd) Run(ctx *Context) error {
	rt, err := ctx.Store.GetRecurringTask(c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		rt.Title = c.Title
	}
	if c.Days != "" {
		weekdays, err := recurrence.ParseList(c.Days)
		if err != nil {
			return err
		}
		rt.Weekdays = weekdays
	}
	if c.At != "" {
		rt.TimeOfDay = c.At
	}
	if c.Content != "" {
		rt.Content = c.Content
	}
	if c.Category != "" {
		rt.Category = c.Category
	}

	start := todayStart()
	end := start.AddDate(0, 0, c.Horizon-1)
	count, err := ctx.Generator.Update(rt, start, end)
	if err != nil {
		return err
	}
	fmt.Printf("Updated recurring task; regenerated %d task(s)\n", count)
	return nil
}

type RecurringDeleteCmd struct {
	ID string `arg:"" help:"Recurring task ID."`
}

func (c *RecurringDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Generator.Delete(c.ID); err != nil {
		return err
	}
	fmt.Println("Recurring task and its generated rows deleted.")
	return nil
}

type GenerateCmd struct {
	ID   string `help:"Generate for a single recurring task (all when empty)."`
	From string `help:"Window start (YYYY-MM-DD), defaults to today."`
	Days int    `help:"Window length in days; overrides the default horizon." default:"0"`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	from, err := parseDay(c.From)
	if err != nil {
		return err
	}

	start, end := ctx.Generator.Window(from)
	if c.Days > 0 {
		end = start.AddDate(0, 0, c.Days-1)
	}

	var tasks []models.RecurringTask
	if c.ID != "" {
		rt, err := ctx.Store.GetRecurringTask(c.ID)
		if err != nil {
			return err
		}
		tasks = []models.RecurringTask{rt}
	} else {
		tasks, err = ctx.Store.ListRecurringTasks(ctx.Owner)
		if err != nil {
			return err
		}
	}

	total := 0
	for _, rt := range tasks {
		count, err := ctx.Generator.Generate(rt, start, end)
		if err != nil {
			return err
		}
		total += count
	}
	fmt.Printf("Generated %d task(s) for %s through %s\n", total, recurrence.DayKey(start), recurrence.DayKey(end))
	return nil
}
