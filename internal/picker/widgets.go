package picker

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"shtamp/internal/i18n"
)

// Color palette - modern dark theme
var (
	colorBG         = color.NRGBA{R: 30, G: 30, B: 34, A: 245}
	colorPanel      = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	colorPanelLight = color.NRGBA{R: 55, G: 55, B: 62, A: 255}
	colorText       = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorTextDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorAccent     = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
	colorSelected   = color.NRGBA{R: 60, G: 100, B: 160, A: 255}
	colorDanger     = color.NRGBA{R: 200, G: 70, B: 70, A: 255}
)

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	// Fill background
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	w.mu.Lock()
	rows := w.rows
	selected := w.selected
	w.mu.Unlock()

	total := 0
	for _, r := range rows {
		if r.kind == rowCategory {
			total += r.count
		}
	}

	var selRow row
	hasSel := selected >= 0 && selected < len(rows)
	if hasSel {
		selRow = rows[selected]
	}
	editEnabled := hasSel && (selRow.kind == rowSnippet || !selRow.reserved)
	deleteEnabled := editEnabled

	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Title row with keyboard hint
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						th := material.NewTheme()
						th.Palette.Fg = colorText
						lbl := material.Label(th, unit.Sp(18), i18n.T("picker_title"))
						lbl.Font.Weight = font.Bold
						return lbl.Layout(gtx)
					}),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{}
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						th := material.NewTheme()
						th.Palette.Fg = colorTextDim
						lbl := material.Label(th, unit.Sp(11), i18n.T("picker_hint"))
						return lbl.Layout(gtx)
					}),
				)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),

			// Snippet list
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				if total == 0 {
					return w.drawEmptyState(gtx)
				}
				return w.drawRows(gtx, rows, selected)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),

			// Action buttons
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return w.drawButton(gtx, &w.addBtn, i18n.T("picker_add"), colorAccent, true)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return w.drawButton(gtx, &w.editBtn, i18n.T("picker_edit"), colorPanel, editEnabled)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return w.drawButton(gtx, &w.deleteBtn, i18n.T("picker_delete"), colorDanger, deleteEnabled)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return w.drawButton(gtx, &w.newCatBtn, i18n.T("picker_new_category"), colorPanel, true)
					}),
				)
			}),
		)
	})
}

func (w *Window) drawEmptyState(gtx layout.Context) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = colorTextDim
		lbl := material.Label(th, unit.Sp(14), i18n.T("picker_empty"))
		return lbl.Layout(gtx)
	})
}

func (w *Window) drawRows(gtx layout.Context, rows []row, selected int) layout.Dimensions {
	// Panel background
	rr := gtx.Dp(unit.Dp(10))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: gtx.Constraints.Max},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanel, rect.Op(gtx.Ops))

	return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		return material.List(th, &w.list).Layout(gtx, len(rows), func(gtx layout.Context, i int) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(3)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return w.drawRow(gtx, i, rows[i], i == selected)
			})
		})
	})
}

func (w *Window) drawRow(gtx layout.Context, index int, r row, selected bool) layout.Dimensions {
	btn := w.getRowButton(r.key())

	if btn.Clicked(gtx) {
		w.mu.Lock()
		already := w.selected == index
		w.selected = index
		w.mu.Unlock()

		if r.kind == rowCategory {
			if w.callbacks.OnToggle != nil {
				go w.callbacks.OnToggle(r.category, !r.expanded)
			}
		} else if already {
			// Clicking the selected snippet again pastes it
			if w.callbacks.OnSelect != nil {
				go w.callbacks.OnSelect(r.category, r.name)
			}
			go w.Hide()
		}
	}

	bgColor := colorPanelLight
	if selected {
		bgColor = colorSelected
	}

	// Record content to measure size
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		if r.kind == rowCategory {
			return w.drawHeaderContent(gtx, r)
		}
		return w.drawSnippetContent(gtx, r)
	})
	call := macro.Stop()

	// Draw background
	rr := gtx.Dp(unit.Dp(6))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bgColor, rect.Op(gtx.Ops))

	// Replay content
	call.Add(gtx.Ops)

	return dims
}

func (w *Window) drawHeaderContent(gtx layout.Context, r row) layout.Dimensions {
	name := r.category
	if r.reserved {
		name = i18n.T("picker_uncategorized")
	}

	return layout.Inset{
		Top: unit.Dp(8), Bottom: unit.Dp(8),
		Left: unit.Dp(10), Right: unit.Dp(10),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			// Disclosure triangle
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return drawTriangle(gtx, r.expanded, colorTextDim)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			// Category name
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = colorText
				lbl := material.Label(th, unit.Sp(14), name)
				lbl.Font.Weight = font.Medium
				return lbl.Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			// Snippet count
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = colorTextDim
				lbl := material.Label(th, unit.Sp(11), fmt.Sprintf("%d", r.count))
				return lbl.Layout(gtx)
			}),
		)
	})
}

func (w *Window) drawSnippetContent(gtx layout.Context, r row) layout.Dimensions {
	return layout.Inset{
		Top: unit.Dp(7), Bottom: unit.Dp(7),
		Left: unit.Dp(28), Right: unit.Dp(10),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = colorText
		lbl := material.Label(th, unit.Sp(13), r.name)
		return lbl.Layout(gtx)
	})
}

// drawTriangle draws a disclosure triangle, pointing down when expanded.
func drawTriangle(gtx layout.Context, expanded bool, col color.NRGBA) layout.Dimensions {
	size := gtx.Dp(unit.Dp(10))
	s := float32(size)

	var path clip.Path
	path.Begin(gtx.Ops)
	if expanded {
		path.MoveTo(f32.Pt(0, s*0.3))
		path.LineTo(f32.Pt(s, s*0.3))
		path.LineTo(f32.Pt(s*0.5, s*0.9))
	} else {
		path.MoveTo(f32.Pt(s*0.25, 0))
		path.LineTo(f32.Pt(s*0.85, s*0.5))
		path.LineTo(f32.Pt(s*0.25, s))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())

	return layout.Dimensions{Size: image.Pt(size, size)}
}

func (w *Window) drawButton(gtx layout.Context, btn *widget.Clickable, label string, bgColor color.NRGBA, enabled bool) layout.Dimensions {
	textColor := colorText
	if !enabled {
		bgColor = colorPanel
		textColor = colorTextDim
	}

	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(9), Bottom: unit.Dp(9),
			Left: unit.Dp(6), Right: unit.Dp(6),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = textColor
				lbl := material.Label(th, unit.Sp(12), label)
				lbl.Font.Weight = font.Medium
				return lbl.Layout(gtx)
			})
		})
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: image.Pt(gtx.Constraints.Max.X, dims.Size.Y)},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bgColor, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, dims.Size.Y)}
}
