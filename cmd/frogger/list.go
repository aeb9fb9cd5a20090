package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available layouts",
	Long:  `Shows every layout in the loaded configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	names := cfg.LayoutNames()
	if len(names) == 0 {
		fmt.Println("No layouts available.")
		return nil
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Printf("  %-*s  %4s  %5s  %s\n", maxNameLen, "Name", "Rows", "Goals", "Description")
	fmt.Printf("  %-*s  %4s  %5s  %s\n", maxNameLen, "----", "----", "-----", "-----------")

	for _, name := range names {
		l, _ := cfg.Layout(name)
		fmt.Printf("  %-*s  %4d  %5d  %s\n", maxNameLen, name, len(l.Rows), l.GoalSlots(), l.Description)
	}

	fmt.Println()
	fmt.Println("Run 'frogger play --layout <name>' to play a layout.")
	return nil
}
