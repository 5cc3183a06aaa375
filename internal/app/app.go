// Package app содержит основную логику приложения.
package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"shtamp/internal/clip"
	"shtamp/internal/config"
	"shtamp/internal/dialog"
	"shtamp/internal/editor"
	"shtamp/internal/hotkey"
	"shtamp/internal/i18n"
	"shtamp/internal/inject"
	"shtamp/internal/model"
	"shtamp/internal/notify"
	"shtamp/internal/picker"
	"shtamp/internal/settings"
	"shtamp/internal/startup"
	"shtamp/internal/store"
	"shtamp/internal/tap"
	"shtamp/internal/tray"
)

const (
	// FocusDelay - пауза между скрытием окна и вставкой, чтобы фокус
	// успел вернуться в прежнее приложение
	FocusDelay = 150 * time.Millisecond
)

// App представляет главное приложение.
type App struct {
	config    *config.Config
	store     *store.Store
	tree      *model.Tree
	injector  inject.Injector
	clipboard clip.Writer
	notifier  *notify.Notifier
	tray      *tray.Tray
	hotkey    *hotkey.Handler
	monitor   *tap.Monitor

	pickerWin   *picker.Window
	editorWin   *editor.Window
	settingsWin *settings.Window

	// Дерево меняет только горутина loop: окна шлют сигналы в toggleCh
	// и замыкания в calls, сами дерево не трогают.
	toggleCh chan struct{}
	calls    chan func()
	quitCh   chan struct{}

	// Сниппет, открытый в редакторе. Пустое имя означает добавление.
	editName     string
	editCategory string

	loadErr   error
	closeOnce sync.Once
}

// New создаёт новое приложение.
func New() (*App, error) {
	cfg := config.New()

	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	path, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}
	st := store.New(path)

	doc, loadErr := st.Load()
	if loadErr != nil {
		log.Printf("Ошибка загрузки сниппетов: %v", loadErr)
	}
	if doc == nil {
		// Файл не прочитался. Работаем с пустым документом, файл на
		// диске не трогаем до первой правки.
		doc = store.Empty()
	}

	a := &App{
		config:    cfg,
		store:     st,
		injector:  inject.New(),
		clipboard: clip.New(),
		notifier:  notify.New(cfg.NotificationsEnabled()),
		toggleCh:  make(chan struct{}, 1),
		calls:     make(chan func(), 16),
		quitCh:    make(chan struct{}),
		loadErr:   loadErr,
	}

	a.tree = model.New(doc, st)
	a.tree.OnChange(func() {
		a.pickerWin.Refresh(a.tree.Snapshot())
	})

	// Окно выбора сниппетов
	a.pickerWin = picker.New(picker.Callbacks{
		OnSelect:          a.onSelect,
		OnCopy:            a.onCopy,
		OnToggle:          a.onToggle,
		OnReorderSnippet:  a.onReorderSnippet,
		OnReorderCategory: a.onReorderCategory,
		OnAdd:             a.onAdd,
		OnEdit:            a.onEdit,
		OnRenameCategory:  a.onRenameCategory,
		OnDelete:          a.onDelete,
		OnDeleteCategory:  a.onDeleteCategory,
		OnNewCategory:     a.onNewCategory,
		OnHidden: func() {
			a.tray.SetState(tray.StateIdle)
		},
	})

	// Окно редактора сниппетов
	a.editorWin = editor.New(a.onEditorSave)

	// Глобальная комбинация и двойной Shift шлют один и тот же сигнал
	a.hotkey = hotkey.New(a.requestToggle)
	a.monitor = tap.NewMonitor(a.toggleCh, cfg.DoubleTap().Threshold())
	a.monitor.SetEnabled(cfg.DoubleTap().Enabled)

	// Окно настроек
	a.settingsWin = settings.New(cfg)
	a.settingsWin.OnHotkeyChange(func(hk config.HotkeyConfig) {
		a.config.SetHotkey(hk)
		// Перерегистрируем горячую клавишу
		if err := a.hotkey.Register(hk); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши: %v", err)
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}
	})
	a.settingsWin.OnDoubleTapChange(func(dt config.DoubleTapConfig) {
		a.config.SetDoubleTap(dt)
		a.monitor.SetEnabled(dt.Enabled)
		a.monitor.SetThreshold(dt.Threshold())
	})
	a.settingsWin.OnNotificationsChange(func(enabled bool) {
		a.config.SetNotifications(enabled)
		a.notifier.SetEnabled(enabled)
		a.tray.SetNotifications(enabled)
	})

	// Создаём системный трей с обработчиками
	a.tray = tray.New(tray.Callbacks{
		OnOpen: func() {
			a.do(a.showPicker)
		},
		OnNotificationsToggle: func() bool {
			enabled := a.config.ToggleNotifications()
			a.notifier.SetEnabled(enabled)
			return enabled
		},
		OnAutostartToggle: func() bool {
			on, err := startup.Toggle()
			if err != nil {
				log.Printf("Ошибка автозапуска: %v", err)
				a.notifier.Error(err.Error())
			}
			return on
		},
		OnSettingsClick: func() {
			a.settingsWin.Show()
		},
		OnQuit: func() {
			a.Close()
		},
	}, cfg.NotificationsEnabled(), startup.Enabled())

	// Callback для смены языка UI - обновляем трей
	a.settingsWin.OnUILangChange(func(lang i18n.Language) {
		a.tray.RefreshUI()
	})

	return a, nil
}

// Run запускает приложение. Блокирует до выхода из трея.
func (a *App) Run() {
	go a.loop()

	// SIGINT и SIGTERM завершают приложение так же, как пункт меню
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			log.Printf("Получен сигнал %v, завершаем работу", sig)
			a.Close()
			a.tray.Quit()
		case <-a.quitCh:
		}
	}()

	a.tray.Run(func() {
		// Регистрируем горячую клавишу после инициализации трея
		if err := a.hotkey.Register(a.config.Hotkey()); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши: %v", err)
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}

		// Запускаем слушатель двойного Shift
		if err := a.monitor.Start(); err != nil {
			log.Printf("Ошибка слушателя Shift: %v", err)
			a.notifier.Error(i18n.T("error_shift_listener"))
		}

		// Ошибку загрузки показываем после появления трея
		if a.loadErr != nil {
			go dialog.ShowError("Shtamp", i18n.T("error_store_load")+": "+a.loadErr.Error())
		}

		a.notifier.Info(i18n.T("notify_ready"))
	})
}

// loop выполняет все обращения к дереву последовательно.
func (a *App) loop() {
	for {
		select {
		case <-a.toggleCh:
			a.togglePicker()
		case fn := <-a.calls:
			fn()
		case <-a.quitCh:
			return
		}
	}
}

// do передаёт замыкание горутине loop.
func (a *App) do(fn func()) {
	select {
	case a.calls <- fn:
	case <-a.quitCh:
	}
}

// requestToggle просит открыть или скрыть окно выбора. Вызывается из
// обработчика комбинации клавиш и из меню трея.
func (a *App) requestToggle() {
	select {
	case a.toggleCh <- struct{}{}:
	default:
		// Предыдущий сигнал ещё не обработан
	}
}

func (a *App) togglePicker() {
	if a.pickerWin.IsVisible() {
		a.hidePicker()
		return
	}
	a.showPicker()
}

func (a *App) showPicker() {
	a.pickerWin.Refresh(a.tree.Snapshot())
	a.pickerWin.Show()
	a.tray.SetState(tray.StateOpen)
}

func (a *App) hidePicker() {
	a.pickerWin.Hide()
	a.tray.SetState(tray.StateIdle)
}

// onSelect вставляет выбранный сниппет. Окно к этому моменту уже
// закрывается само.
func (a *App) onSelect(category, name string) {
	a.do(func() {
		snip, ok := a.tree.Snippet(category, name)
		a.tray.SetState(tray.StateIdle)
		if !ok {
			return
		}

		// Вставляем в отдельной горутине: пауза на возврат фокуса не
		// должна задерживать обработку следующих событий
		go func() {
			time.Sleep(FocusDelay)
			if err := a.injector.Inject(snip.Content); err != nil {
				log.Printf("Ошибка вставки: %v", err)
				a.notifier.Error(i18n.T("error_insert"))
				return
			}
			a.notifier.Pasted(snip.Name)
		}()
	})
}

// onCopy кладёт сниппет в буфер обмена без вставки.
func (a *App) onCopy(category, name string) {
	a.do(func() {
		snip, ok := a.tree.Snippet(category, name)
		a.tray.SetState(tray.StateIdle)
		if !ok {
			return
		}

		if err := a.clipboard.Set(snip.Content); err != nil {
			log.Printf("Ошибка копирования: %v", err)
			a.notifier.Error(i18n.T("error_clipboard"))
			return
		}
		a.notifier.Copied(snip.Name)
	})
}

func (a *App) onToggle(category string, expanded bool) {
	a.do(func() {
		a.checkSave(a.tree.SetExpansion(category, expanded))
	})
}

func (a *App) onReorderSnippet(category, dragged, target string) {
	a.do(func() {
		a.checkSave(a.tree.ReorderSnippet(category, dragged, target))
	})
}

func (a *App) onReorderCategory(dragged, target string) {
	a.do(func() {
		a.checkSave(a.tree.ReorderCategory(dragged, target))
	})
}

// onAdd открывает редактор для нового сниппета в указанной категории.
func (a *App) onAdd(category string) {
	a.do(func() {
		a.editName = ""
		a.editCategory = ""
		if category == "" {
			category = model.ReservedName
		}
		a.editorWin.Show(editor.Request{
			Title:      i18n.T("editor_title_add"),
			Category:   category,
			Categories: a.tree.CategoryNames(),
		})
	})
}

// onEdit открывает редактор с содержимым существующего сниппета.
func (a *App) onEdit(category, name string) {
	a.do(func() {
		snip, ok := a.tree.Snippet(category, name)
		if !ok {
			return
		}
		a.editName = name
		a.editCategory = category
		a.editorWin.Show(editor.Request{
			Title:      i18n.T("editor_title_edit"),
			Name:       snip.Name,
			Content:    snip.Content,
			Category:   category,
			Categories: a.tree.CategoryNames(),
		})
	})
}

// onEditorSave применяет результат редактора: добавление либо правку,
// в том числе перенос в другую категорию.
func (a *App) onEditorSave(name, content, category string) {
	a.do(func() {
		var err error
		if a.editName == "" {
			err = a.tree.AddSnippet(name, content, category)
		} else {
			err = a.tree.EditSnippet(a.editName, a.editCategory, name, content, category)
		}
		a.editName = ""
		a.editCategory = ""
		if err != nil {
			a.mutationError(err)
		}
	})
}

func (a *App) onRenameCategory(category string) {
	a.do(func() {
		if category == model.ReservedName {
			return
		}
		newName, err := dialog.AskName(i18n.T("dialog_rename_category"), i18n.T("dialog_category_prompt"), category)
		if err != nil {
			return // отмена
		}
		if err := a.tree.RenameCategory(category, newName); err != nil {
			a.mutationError(err)
		}
	})
}

func (a *App) onDelete(category, name string) {
	a.do(func() {
		msg := fmt.Sprintf(i18n.T("confirm_delete_snippet"), name)
		if !dialog.Confirm("Shtamp", msg) {
			return
		}
		a.checkSave(a.tree.DeleteSnippet(name, category))
	})
}

func (a *App) onDeleteCategory(category string) {
	a.do(func() {
		if category == model.ReservedName {
			return
		}
		msg := fmt.Sprintf(i18n.T("confirm_delete_category"), category)
		if !dialog.Confirm("Shtamp", msg) {
			return
		}
		a.checkSave(a.tree.DeleteCategory(category))
	})
}

func (a *App) onNewCategory() {
	a.do(func() {
		name, err := dialog.AskName(i18n.T("dialog_add_category"), i18n.T("dialog_category_prompt"), "")
		if err != nil {
			return // отмена
		}
		if err := a.tree.AddCategory(name); err != nil {
			a.mutationError(err)
		}
	})
}

// checkSave показывает ошибку сохранения, не прерывая работу: документ
// в памяти актуален, файл догонит при следующей удачной записи.
func (a *App) checkSave(err error) {
	if err == nil {
		return
	}
	log.Printf("Ошибка сохранения: %v", err)
	a.notifier.Error(i18n.T("error_store_save"))
}

// mutationError показывает ошибку изменения дерева. Ошибки валидации
// идут в диалог, ошибки сохранения - в уведомление.
func (a *App) mutationError(err error) {
	log.Printf("Ошибка изменения: %v", err)
	var verr *model.ValidationError
	var derr *model.DuplicateNameError
	if errors.As(err, &verr) || errors.As(err, &derr) {
		dialog.ShowError("Shtamp", err.Error())
		return
	}
	a.notifier.Error(i18n.T("error_store_save"))
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		close(a.quitCh)

		if a.hotkey != nil {
			a.hotkey.Unregister()
		}
		if a.monitor != nil {
			a.monitor.Stop()
		}
		if a.pickerWin != nil {
			a.pickerWin.Hide()
		}
		if a.editorWin != nil {
			a.editorWin.Hide()
		}
		if a.settingsWin != nil {
			a.settingsWin.Hide()
		}
	})
}
