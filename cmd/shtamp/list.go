package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shtamp/internal/i18n"
	"shtamp/internal/model"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Показать все сниппеты",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tree, err := loadTree()
			if err != nil {
				return err
			}
			fmt.Print(formatTree(tree.Snapshot()))
			return nil
		},
	}
}

// formatTree собирает текстовое дерево: категория с числом сниппетов,
// под ней сниппеты с отступом. Зарезервированная категория показывается
// локализованным именем.
func formatTree(views []model.CategoryView) string {
	var b strings.Builder
	for _, view := range views {
		name := view.Name
		if view.Reserved {
			name = i18n.T("picker_uncategorized")
		}
		fmt.Fprintf(&b, "%s (%d)\n", name, len(view.Snippets))
		for _, s := range view.Snippets {
			fmt.Fprintf(&b, "  %s\n", s.Name)
		}
	}
	return b.String()
}
