package cli

import (
	"fmt"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/constants"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
)

type TimelineCmd struct {
	From string `help:"Range start (YYYY-MM-DD), defaults to today."`
	To   string `help:"Range end (YYYY-MM-DD), defaults to a week out."`
}

func (c *TimelineCmd) Run(ctx *Context) error {
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

	items, err := ctx.Timeline.Timeline(ctx.Owner, start, end)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Nothing scheduled.")
		return nil
	}

	for _, item := range items {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		source := ""
		if item.Source == models.SourceRoutine {
			source = "  (routine)"
		}
		fmt.Printf("[%s] %s  %s%s\n", mark, item.ScheduledAt.Format(constants.DateFormat+" "+constants.TimeFormat), item.Title, source)
	}
	return nil
}

type RewardBalanceCmd struct{}

func (c *RewardBalanceCmd) Run(ctx *Context) error {
	balance, err := ctx.Store.RewardBalance(ctx.Owner)
	if err != nil {
		return err
	}
	fmt.Printf("Reward balance: %d\n", balance)
	return nil
}

func todayStart() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
