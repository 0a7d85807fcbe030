package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	clearYes bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all bookmarks in the project",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !clearYes {
			fmt.Print("Delete ALL bookmarks? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return
			}
		}

		svc, _ := openProject(false)

		if err := svc.Clear(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing bookmarks: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("All bookmarks deleted.")
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
}
