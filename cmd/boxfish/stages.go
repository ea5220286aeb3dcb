package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the stages",
	Long: `Shows the stages in play order. With --stages-dir every stage file in
the directory is parsed and validated; any error is reported and the
command fails.`,
	Args: cobra.NoArgs,
	Run:  runStages,
}

func runStages(_ *cobra.Command, _ []string) {
	stages := mustLoadStages()

	maxIDLen := 2 // "ID" header
	for _, st := range stages {
		maxIDLen = max(maxIDLen, len(st.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-4s  %s\n", maxIDLen, "ID", "Size", "Bits", "Name")
	fmt.Printf("  %-*s  %-7s  %-4s  %s\n", maxIDLen, "--", "----", "----", "----")

	for _, st := range stages {
		w, h := st.Size()
		fmt.Printf("  %-*s  %-7s  %-4d  %s\n", maxIDLen, st.ID, fmt.Sprintf("%dx%d", w, h), len(st.Spawn.Bits), st.Name)
	}

	fmt.Println()
	fmt.Println("Run 'boxfish play --stage <id>' to start on a stage.")
}
