package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/frames"
)

var flagShow bool

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "List the loaded art",
	Long: `Shows every frame of the art set with its size in rows and columns.
With --show the frames themselves are printed too.

Examples:
  spacegarbage frames
  spacegarbage frames --frames ./my-art --show`,
	Args: cobra.NoArgs,
	RunE: runFrames,
}

func init() {
	framesCmd.Flags().BoolVar(&flagShow, "show", false, "Print each frame")
}

var (
	groupStyle = lipgloss.NewStyle().Bold(true)
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

func runFrames(cmd *cobra.Command, args []string) error {
	set, err := frames.Open(flagFrames)
	if err != nil {
		return err
	}

	groups := []struct {
		title string
		items []frames.Named
	}{
		{"Rocket", set.Rocket},
		{"Garbage", set.Garbage},
		{"Explosion", set.Explosion},
		{"Game over", []frames.Named{{Name: "game_over", Frame: set.GameOver}}},
	}

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, g := range groups {
		for _, n := range g.items {
			maxNameLen = max(maxNameLen, len(n.Name))
		}
	}

	for _, g := range groups {
		fmt.Println(groupStyle.Render(g.title))
		fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Size")
		fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----")
		for _, n := range g.items {
			fmt.Printf("  %-*s  %dx%d\n", maxNameLen, n.Name, n.Frame.Rows, n.Frame.Cols)
			if flagShow {
				fmt.Println(frameStyle.Render(n.Frame.String()))
			}
		}
		fmt.Println()
	}
	return nil
}
