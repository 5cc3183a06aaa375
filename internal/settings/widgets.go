package settings

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

	"shtamp/internal/config"
	"shtamp/internal/i18n"
)

// Color palette - modern dark theme
var (
	colorBG         = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	colorPanel      = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	colorPanelLight = color.NRGBA{R: 55, G: 55, B: 62, A: 255}
	colorText       = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorTextDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorAccent     = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
	colorWarning    = color.NRGBA{R: 255, G: 180, B: 0, A: 255}
)

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	// Fill background
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	// Main layout with padding
	return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Title (fixed)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawTitle(gtx)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			// Scrollable content area
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				return material.List(th, &w.contentList).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						// UI Language section
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawUILanguageSection(gtx)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						// Notifications section
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawNotificationsSection(gtx)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						// Double Shift section
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawDoubleTapSection(gtx)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						// Hotkey section
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawHotkeySection(gtx)
						}),
					)
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Buttons (fixed at bottom)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawButtons(gtx)
			}),
		)
	})
}

func (w *Window) drawTitle(gtx layout.Context) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorText

	label := material.Label(th, unit.Sp(22), i18n.T("settings_title"))
	label.Font.Weight = font.Bold
	return label.Layout(gtx)
}

func (w *Window) drawSectionHeader(gtx layout.Context, text string) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorTextDim

	label := material.Label(th, unit.Sp(12), text)
	label.Font.Weight = font.Medium
	return label.Layout(gtx)
}

func (w *Window) drawUILanguageSection(gtx layout.Context) layout.Dimensions {
	selectedLang := w.getSelectedUILang()

	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Section header
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, i18n.T("settings_ui_language"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Language buttons
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawLangButton(gtx, i18n.RU, "Русский", selectedLang == i18n.RU)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawLangButton(gtx, i18n.EN, "English", selectedLang == i18n.EN)
					}),
				)
			}),
		)
	})
}

func (w *Window) drawLangButton(gtx layout.Context, lang i18n.Language, label string, selected bool) layout.Dimensions {
	btn := w.getLangButton(lang)

	bgColor := colorPanel
	textColor := colorTextDim
	if selected {
		bgColor = colorAccent
		textColor = colorText
	}

	// Record content to measure size
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(8), Bottom: unit.Dp(8),
			Left: unit.Dp(16), Right: unit.Dp(16),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = textColor
			lbl := material.Label(th, unit.Sp(14), label)
			lbl.Font.Weight = font.Medium
			return lbl.Layout(gtx)
		})
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

func (w *Window) drawNotificationsSection(gtx layout.Context) layout.Dimensions {
	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Section header
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, i18n.T("settings_notifications"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Toggle and description
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					// Toggle
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawToggle(gtx, &w.notifyEnabled)
					}),

					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),

					// Description
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								th := material.NewTheme()
								th.Palette.Fg = colorText
								lbl := material.Label(th, unit.Sp(14), i18n.T("settings_notifications_enable"))
								lbl.Font.Weight = font.Medium
								return lbl.Layout(gtx)
							}),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								th := material.NewTheme()
								th.Palette.Fg = colorTextDim
								lbl := material.Label(th, unit.Sp(11), i18n.T("settings_notifications_hint"))
								return lbl.Layout(gtx)
							}),
						)
					}),
				)
			}),
		)
	})
}

func (w *Window) drawDoubleTapSection(gtx layout.Context) layout.Dimensions {
	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Section header
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, i18n.T("settings_double_tap"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Toggle and description
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					// Toggle
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return w.drawToggle(gtx, &w.tapEnabled)
					}),

					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),

					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						th := material.NewTheme()
						th.Palette.Fg = colorText
						lbl := material.Label(th, unit.Sp(14), i18n.T("settings_double_tap_enable"))
						lbl.Font.Weight = font.Medium
						return lbl.Layout(gtx)
					}),
				)
			}),

			// Threshold field (if double tap enabled)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !w.tapEnabled.Value {
					return layout.Dimensions{}
				}
				return layout.Inset{Top: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							th := material.NewTheme()
							th.Palette.Fg = colorTextDim
							lbl := material.Label(th, unit.Sp(14), i18n.T("settings_double_tap_threshold"))
							return lbl.Layout(gtx)
						}),
						layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawThresholdField(gtx)
						}),
					)
				})
			}),
		)
	})
}

func (w *Window) drawThresholdField(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Dp(unit.Dp(64))
	gtx.Constraints.Max.X = gtx.Constraints.Min.X

	// Record content to measure size
	macro := op.Record(gtx.Ops)
	dims := layout.Inset{
		Top: unit.Dp(6), Bottom: unit.Dp(6),
		Left: unit.Dp(10), Right: unit.Dp(10),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = colorText
		ed := material.Editor(th, &w.thresholdEd, "400")
		ed.TextSize = unit.Sp(14)
		return ed.Layout(gtx)
	})
	call := macro.Stop()

	// Draw background
	rr := gtx.Dp(unit.Dp(6))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanelLight, rect.Op(gtx.Ops))

	// Replay content
	call.Add(gtx.Ops)

	return dims
}

func (w *Window) drawHotkeySection(gtx layout.Context) layout.Dimensions {
	isRecording := w.isRecordingHotkey()
	_, currentKey := w.getHotkeyState()

	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Section header
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, i18n.T("settings_hotkey"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Hotkey display and edit button
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					// Current hotkey preview
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return w.drawHotkeyPreview(gtx, isRecording)
					}),

					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),

					// Edit button
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if isRecording {
							return w.drawButton(gtx, &w.hotkeyEditBtn, i18n.T("settings_hotkey_cancel"), colorWarning, colorText, true)
						}
						return w.drawButton(gtx, &w.hotkeyEditBtn, i18n.T("settings_hotkey_edit"), colorAccent, colorText, true)
					}),

					// Clear button (only when a combo is set)
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if isRecording || currentKey == "" {
							return layout.Dimensions{}
						}
						return layout.Inset{Left: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return w.drawButton(gtx, &w.hotkeyClearBtn, i18n.T("settings_hotkey_clear"), colorPanelLight, colorText, true)
						})
					}),
				)
			}),
		)
	})
}

func (w *Window) drawToggle(gtx layout.Context, toggle *widget.Bool) layout.Dimensions {
	th := material.NewTheme()

	// Use material Switch
	sw := material.Switch(th, toggle, "")
	sw.Color.Enabled = colorAccent
	sw.Color.Disabled = colorPanel

	return sw.Layout(gtx)
}

func (w *Window) drawHotkeyPreview(gtx layout.Context, isRecording bool) layout.Dimensions {
	var hotkeyStr string
	var textColor color.NRGBA
	var bgColor color.NRGBA

	if isRecording {
		// Show recording state
		mods, key := w.getRecordingState()
		parts := buildHotkeyParts(mods, key)

		if len(parts) > 0 {
			hotkeyStr = ""
			for i, p := range parts {
				if i > 0 {
					hotkeyStr += " + "
				}
				hotkeyStr += p
			}
		} else {
			hotkeyStr = i18n.T("settings_hotkey_prompt")
		}
		textColor = colorWarning
		bgColor = color.NRGBA{R: 80, G: 60, B: 20, A: 255}
	} else {
		// Show current hotkey
		mods, key := w.getHotkeyState()
		parts := buildHotkeyParts(mods, key)

		if len(parts) > 0 {
			hotkeyStr = ""
			for i, p := range parts {
				if i > 0 {
					hotkeyStr += " + "
				}
				hotkeyStr += p
			}
		} else {
			hotkeyStr = i18n.T("settings_hotkey_not_set")
		}
		textColor = colorAccent
		bgColor = colorPanelLight
	}

	// Record content to measure size
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = textColor
		label := material.Label(th, unit.Sp(16), "⌨  "+hotkeyStr)
		label.Font.Weight = font.Medium
		return label.Layout(gtx)
	})
	call := macro.Stop()

	// Draw background with measured size
	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bgColor, rect.Op(gtx.Ops))

	// Replay content
	call.Add(gtx.Ops)

	return dims
}

func buildHotkeyParts(mods map[config.Modifier]bool, key config.Key) []string {
	parts := []string{}

	if mods[config.ModCtrl] {
		parts = append(parts, "Ctrl")
	}
	if mods[config.ModShift] {
		parts = append(parts, "Shift")
	}
	if mods[config.ModAlt] {
		parts = append(parts, "Alt")
	}
	if mods[config.ModSuper] {
		parts = append(parts, "Super")
	}

	keyName := keyDisplayName(key)
	if keyName != "" {
		parts = append(parts, keyName)
	}

	return parts
}

func keyDisplayName(key config.Key) string {
	switch key {
	case config.KeySpace:
		return "Space"
	case config.KeyReturn:
		return "Enter"
	case config.KeyTab:
		return "Tab"
	default:
		if key == "" {
			return ""
		}
		// F-keys and letters show as uppercase
		s := string(key)
		if len(s) == 1 {
			return string(s[0] - 32)
		}
		if s[0] == 'f' {
			return "F" + s[1:]
		}
		return s
	}
}

func (w *Window) drawPanel(gtx layout.Context, content layout.Widget) layout.Dimensions {
	// First layout content to get its size
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(16)).Layout(gtx, content)
	call := macro.Stop()

	// Draw background with content size
	rr := gtx.Dp(unit.Dp(12))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanel, rect.Op(gtx.Ops))

	// Replay content drawing
	call.Add(gtx.Ops)

	return dims
}

func (w *Window) drawButtons(gtx layout.Context) layout.Dimensions {
	return layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{}
		}),

		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawButton(gtx, &w.cancelBtn, i18n.T("settings_cancel"), colorPanel, colorText, true)
		}),

		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),

		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawButton(gtx, &w.applyBtn, i18n.T("settings_apply"), colorAccent, colorText, true)
		}),
	)
}

func (w *Window) drawButton(gtx layout.Context, btn *widget.Clickable, label string, bgColor, textColor color.NRGBA, enabled bool) layout.Dimensions {
	if !enabled {
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
