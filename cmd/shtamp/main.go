// Shtamp - быстрая вставка текстовых сниппетов из системного трея.
//
// Работает в фоне, по двойному нажатию Shift показывает окно со
// сниппетами. Выбранный сниппет попадает в буфер обмена и вставляется
// в активное окно.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"shtamp/internal/app"
	"shtamp/internal/hotkey"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	root := &cobra.Command{
		Use:   "shtamp",
		Short: "Вставка сниппетов по двойному Shift",
		Long: `Shtamp живёт в системном трее и по двойному нажатию Shift показывает
окно со сниппетами. Выбранный сниппет попадает в буфер обмена и
вставляется в активное окно.

Без аргументов запускается трей. Подкоманды list, show и copy читают
файл сниппетов напрямую, запущенное приложение для них не нужно.`,
		SilenceUsage: true,
		Run: func(_ *cobra.Command, _ []string) {
			runTray()
		},
	}

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newCopyCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTray() {
	log.Printf("Shtamp %s запускается...", Version)

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(func() {
		application, err := app.New()
		if err != nil {
			log.Printf("Ошибка инициализации: %v", err)
			os.Exit(1)
		}

		log.Println("Приложение запущено. Двойной Shift открывает окно.")
		application.Run()
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("shtamp %s\n", Version)
		},
	}
}
