package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shtamp/internal/clip"
	"shtamp/internal/i18n"
)

func newCopyCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "copy <имя>",
		Short: "Скопировать сниппет в буфер обмена",
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
			if err := clip.New().Set(snip.Content); err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", i18n.T("notify_copied"), snip.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "искать только в этой категории")

	return cmd
}
