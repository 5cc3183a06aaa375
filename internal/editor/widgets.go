package editor

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"shtamp/internal/i18n"
	"shtamp/internal/model"
)

// Color palette - modern dark theme
var (
	colorBG         = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	colorPanel      = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	colorPanelLight = color.NRGBA{R: 55, G: 55, B: 62, A: 255}
	colorText       = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorTextDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorAccent     = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
)

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	// Fill background
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	canSave := w.nameEditor.Text() != "" && w.contentEditor.Text() != ""

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Heading
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = colorText
				lbl := material.Label(th, unit.Sp(18), w.heading())
				lbl.Font.Weight = font.Bold
				return lbl.Layout(gtx)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),

			// Name field
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawFieldLabel(gtx, i18n.T("editor_name"))
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawEditorPanel(gtx, &w.nameEditor, unit.Sp(14))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),

			// Content field
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawFieldLabel(gtx, i18n.T("editor_content"))
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return w.drawEditorPanel(gtx, &w.contentEditor, unit.Sp(14))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),

			// Category cycler
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawFieldLabel(gtx, i18n.T("editor_category"))
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawCategoryButton(gtx)
					}),
				)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),

			// Buttons
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{}
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawButton(gtx, &w.cancelBtn, i18n.T("editor_cancel"), colorPanel, true)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawButton(gtx, &w.saveBtn, i18n.T("editor_save"), colorAccent, canSave)
					}),
				)
			}),
		)
	})
}

func (w *Window) drawFieldLabel(gtx layout.Context, text string) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorTextDim
	lbl := material.Label(th, unit.Sp(12), text)
	lbl.Font.Weight = font.Medium
	return lbl.Layout(gtx)
}

func (w *Window) drawEditorPanel(gtx layout.Context, editor *widget.Editor, size unit.Sp) layout.Dimensions {
	// Record content to measure size
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = colorText

		ed := material.Editor(th, editor, "")
		ed.TextSize = size
		ed.Color = colorText
		ed.HintColor = colorTextDim

		if editor.SingleLine {
			return ed.Layout(gtx)
		}
		// Multiline field takes all remaining space
		gtx.Constraints.Min.Y = gtx.Constraints.Max.Y - gtx.Dp(unit.Dp(20))
		return ed.Layout(gtx)
	})
	call := macro.Stop()

	// Draw panel background
	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: image.Pt(gtx.Constraints.Max.X, dims.Size.Y)},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanelLight, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, dims.Size.Y)}
}

func (w *Window) drawCategoryButton(gtx layout.Context) layout.Dimensions {
	name := w.currentCategory()
	if name == model.ReservedName {
		name = i18n.T("picker_uncategorized")
	}

	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, &w.categoryBtn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(8), Bottom: unit.Dp(8),
			Left: unit.Dp(16), Right: unit.Dp(16),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = colorText
			lbl := material.Label(th, unit.Sp(13), name)
			lbl.Font.Weight = font.Medium
			return lbl.Layout(gtx)
		})
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(6))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanelLight, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
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
			Top: unit.Dp(10), Bottom: unit.Dp(10),
			Left: unit.Dp(20), Right: unit.Dp(20),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = textColor
			lbl := material.Label(th, unit.Sp(14), label)
			lbl.Font.Weight = font.Medium
			return lbl.Layout(gtx)
		})
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bgColor, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}
