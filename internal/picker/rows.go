package picker

import "shtamp/internal/model"

// rowKind distinguishes category headers from snippet rows.
type rowKind int

const (
	rowCategory rowKind = iota
	rowSnippet
)

// row is one visible line of the list.
type row struct {
	kind     rowKind
	category string // owning category
	name     string // snippet name, empty for headers
	expanded bool
	reserved bool
	count    int // snippets in the category, for headers
}

// key returns a stable identifier for widget state.
func (r row) key() string {
	if r.kind == rowCategory {
		return "c\x00" + r.category
	}
	return "s\x00" + r.category + "\x00" + r.name
}

// flatten builds visible rows from the tree. Collapsed categories
// contribute only their header.
func flatten(views []model.CategoryView) []row {
	rows := make([]row, 0, len(views)*4)
	for _, v := range views {
		rows = append(rows, row{
			kind:     rowCategory,
			category: v.Name,
			expanded: v.Expanded,
			reserved: v.Reserved,
			count:    len(v.Snippets),
		})
		if !v.Expanded {
			continue
		}
		for _, s := range v.Snippets {
			rows = append(rows, row{
				kind:     rowSnippet,
				category: v.Name,
				name:     s.Name,
			})
		}
	}
	return rows
}

// clampSelection keeps the selection inside the row range.
func clampSelection(rows []row, selected int) int {
	if len(rows) == 0 {
		return 0
	}
	if selected < 0 {
		return 0
	}
	if selected >= len(rows) {
		return len(rows) - 1
	}
	return selected
}

// reorderOp describes a requested move of a row among its siblings.
type reorderOp struct {
	category bool   // true when a whole category moves
	inCat    string // owning category for snippet moves
	dragged  string
	target   string
}

// reorderUp resolves moving the row at i one step up. The dragged row
// ends up in front of its previous sibling.
func reorderUp(rows []row, i int) (reorderOp, bool) {
	if i < 0 || i >= len(rows) {
		return reorderOp{}, false
	}
	r := rows[i]

	if r.kind == rowSnippet {
		if i == 0 {
			return reorderOp{}, false
		}
		prev := rows[i-1]
		if prev.kind != rowSnippet || prev.category != r.category {
			return reorderOp{}, false
		}
		return reorderOp{inCat: r.category, dragged: r.name, target: prev.name}, true
	}

	// Categories: look for the previous header
	if r.reserved {
		return reorderOp{}, false
	}
	for j := i - 1; j >= 0; j-- {
		if rows[j].kind != rowCategory {
			continue
		}
		if rows[j].reserved {
			return reorderOp{}, false
		}
		return reorderOp{category: true, dragged: r.category, target: rows[j].category}, true
	}
	return reorderOp{}, false
}

// reorderDown resolves moving the row at i one step down. The next
// sibling is reinserted in front of the dragged row.
func reorderDown(rows []row, i int) (reorderOp, bool) {
	if i < 0 || i >= len(rows) {
		return reorderOp{}, false
	}
	r := rows[i]

	if r.kind == rowSnippet {
		if i+1 >= len(rows) {
			return reorderOp{}, false
		}
		next := rows[i+1]
		if next.kind != rowSnippet || next.category != r.category {
			return reorderOp{}, false
		}
		return reorderOp{inCat: r.category, dragged: next.name, target: r.name}, true
	}

	if r.reserved {
		return reorderOp{}, false
	}
	for j := i + 1; j < len(rows); j++ {
		if rows[j].kind != rowCategory {
			continue
		}
		if rows[j].reserved {
			return reorderOp{}, false
		}
		return reorderOp{category: true, dragged: rows[j].category, target: r.category}, true
	}
	return reorderOp{}, false
}
