package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/constants"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	At       string `required:"" help:"Scheduled time (YYYY-MM-DD HH:MM)."`
	Content  string `help:"Optional description."`
	Category string `help:"Free-form category label."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	scheduledAt, err := time.ParseInLocation(constants.DateFormat+" "+constants.TimeFormat, c.At, time.Local)
	if err != nil {
		return fmt.Errorf("invalid --at value %q: %w", c.At, err)
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Content:     c.Content,
		Category:    c.Category,
		OwnerID:     ctx.Owner,
		ScheduledAt: scheduledAt,
		CreatedAt:   time.Now(),
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task %q (%s) at %s\n", task.Title, task.ID, scheduledAt.Format(constants.DateFormat+" "+constants.TimeFormat))
	return nil
}

type TaskListCmd struct {
	From string `help:"Range start (YYYY-MM-DD), defaults to today."`
	To   string `help:"Range end (YYYY-MM-DD), defaults to a week out."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	start, err := parseDay(c.From)
	if err != nil {
		return err
	}
	var end time.Time
	if c.To == "" {
		end = start.AddDate(0, 0, constants.DefaultHorizonDays-1)
	} else {
		end, err = parseDay(c.To)
		if err != nil {
			return err
		}
	}
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	tasks, err := ctx.Store.ListTasks(ctx.Owner, start, end)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, t := range tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s  (%s)\n", mark, t.ScheduledAt.Format(constants.DateFormat+" "+constants.TimeFormat), t.Title, t.ID)
	}
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}
	task.Done = true
	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	fmt.Printf("Completed task %q\n", task.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return err
	}
	fmt.Println("Task deleted.")
	return nil
}
