package cli

import (
	"fmt"
	"strings"

	"github.com/lamnguyen/habitkit/internal/habits"
	"github.com/lamnguyen/habitkit/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's title and description."`
	Done   HabitDoneCmd   `cmd:"" help:"Mark a habit as done for today."`
	Undone HabitUndoneCmd `cmd:"" help:"Clear a habit's done-today flag."`
	Pause  HabitPauseCmd  `cmd:"" help:"Pause a habit (hidden from the default list)."`
	Resume HabitResumeCmd `cmd:"" help:"Resume a paused habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit permanently."`
	Reset  HabitResetCmd  `cmd:"" help:"Clear the done-today flag on every habit."`
}

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `help:"Optional description." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	title := strings.TrimSpace(c.Title)
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	if err := ctx.Store.CreateHabit(title, strings.TrimSpace(c.Description)); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", title)
	return nil
}

type HabitListCmd struct {
	All   bool   `help:"Include paused habits."`
	Query string `help:"Keep only habits whose title matches (diacritic-insensitive)." default:""`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	all, err := ctx.Store.ListAll()
	if err != nil {
		return err
	}

	visible := habits.Filter(all, c.Query, !c.All)
	if len(visible) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range visible {
		fmt.Println(FormatHabitLine(h))
	}
	return nil
}

type HabitEditCmd struct {
	ID          int64  `arg:"" help:"Habit id."`
	Title       string `required:"" help:"New title."`
	Description string `help:"New description (empty clears it)." default:""`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	title := strings.TrimSpace(c.Title)
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabit(c.ID)
	if err != nil {
		return err
	}
	if habit == nil {
		fmt.Printf("Habit %d not found.\n", c.ID)
		return nil
	}

	if err := ctx.Store.UpdateHabit(c.ID, title, strings.TrimSpace(c.Description)); err != nil {
		return err
	}

	fmt.Printf("Updated habit %d: %s\n", c.ID, title)
	return nil
}

type HabitDoneCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.SetDoneToday(c.ID, true); err != nil {
		return err
	}
	fmt.Printf("Marked habit %d as done today.\n", c.ID)
	return nil
}

type HabitUndoneCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HabitUndoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.SetDoneToday(c.ID, false); err != nil {
		return err
	}
	fmt.Printf("Unmarked habit %d.\n", c.ID)
	return nil
}

type HabitPauseCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HabitPauseCmd) Run(ctx *Context) error {
	if err := ctx.Store.SetActive(c.ID, false); err != nil {
		return err
	}
	fmt.Printf("Paused habit %d.\n", c.ID)
	return nil
}

type HabitResumeCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HabitResumeCmd) Run(ctx *Context) error {
	if err := ctx.Store.SetActive(c.ID, true); err != nil {
		return err
	}
	fmt.Printf("Resumed habit %d.\n", c.ID)
	return nil
}

type HabitDeleteCmd struct {
	ID  int64 `arg:"" help:"Habit id."`
	Yes bool  `help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if !c.Yes {
		fmt.Printf("Delete habit %d permanently? [y/N] ", c.ID)
		var answer string
		fmt.Scanln(&answer)
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.DeleteHabit(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit %d.\n", c.ID)
	return nil
}

// HabitResetCmd is the day-boundary reset hook: nothing runs it
// automatically.
type HabitResetCmd struct{}

func (c *HabitResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.ResetAllDoneToday(); err != nil {
		return err
	}
	fmt.Println("Cleared the done-today flag on all habits.")
	return nil
}
