package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions <file-or-url>",
	Short: "Print study questions for a paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runAnalysis(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for i, q := range res.Questions {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q)
		}
		cards, _ := cmd.Flags().GetBool("flashcards")
		if !cards {
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout())
		for _, c := range res.Flashcards {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n    %s\n", c.Section, c.Front, c.Back)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("flashcards", false, "also print flashcards")

	rootCmd.AddCommand(questionsCmd)
}
