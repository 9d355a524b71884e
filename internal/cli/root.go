package cli

import (
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/backup"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/constants"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/generator"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/routine"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/timeline"
)

// Context carries the wired engine for command Run methods.
type Context struct {
	Store     storage.Store
	Routines  *routine.Service
	Generator *generator.Generator
	Timeline  *timeline.Merger
	Backup    *backup.Manager
	Owner     string
}

// parseDay parses a YYYY-MM-DD flag value, defaulting to today when empty.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.Parse(constants.DateFormat, s)
}
