package main

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/config"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show spawn rates and milestones per year",
	Long: `Prints every year in which something changes: a new debris spawn
rate, a historic milestone in the HUD, or the plasma gun unlocking.

Examples:
  spacegarbage timeline
  spacegarbage timeline --difficulty hard
  spacegarbage timeline --config ./my-game.yaml`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows := timelineRows(cfg)
	columns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Debris every", Width: 16},
		{Title: "Cannon", Width: 7},
		{Title: "Milestone", Width: 42},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(styles),
	)
	fmt.Println(t.View())

	if cfg.FrozenCalendar {
		fmt.Printf("\nThe calendar is frozen at %d.\n", cfg.StartingYear)
	} else {
		fmt.Printf("\nOne year passes every %s.\n", cfg.YearLength)
	}
	return nil
}

// timelineRows lists the years at which the spawn rate, the HUD phrase or
// the cannon state changes, starting from the configured first year.
func timelineRows(cfg config.Config) []table.Row {
	years := []int{cfg.StartingYear, cfg.CannonUnlockedYear}
	for _, step := range cfg.Garbage.Schedule {
		years = append(years, step.From)
	}
	for y := range cfg.Phrases {
		years = append(years, y)
	}
	slices.Sort(years)
	years = slices.Compact(years)

	schedule := config.NewSpawnSchedule(cfg.Garbage.Schedule)
	var rows []table.Row
	for _, y := range years {
		if y < cfg.StartingYear {
			continue
		}
		every := "-"
		if delay, ok := schedule.Delay(y); ok {
			every = fmt.Sprintf("%d ticks (%s)", delay, cfg.Tick*time.Duration(delay))
		}
		cannon := "locked"
		if y >= cfg.CannonUnlockedYear {
			cannon = "ready"
		}
		rows = append(rows, table.Row{strconv.Itoa(y), every, cannon, cfg.Phrases[y]})
	}
	return rows
}
