package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "show <имя>",
		Short: "Вывести текст сниппета",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tree, err := loadTree()
			if err != nil {
				return err
			}
			snip, err := findSnippet(tree, args[0], category)
			if err != nil {
				return err
			}
			fmt.Print(snip.Content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "искать только в этой категории")

	return cmd
}
