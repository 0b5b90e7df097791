// Package cli реализует командную строку бота на cobra.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"osbot/internal/config"
	"osbot/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "osbot",
	Short: "Бот для игры про планировщик процессов",
	Long: `osbot читает цвета ячеек игрового поля (процессоры, очередь, память, диск)
и нажимает на них, чтобы процессы завершались, а страницы были в памяти.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "путь к config.yaml (по умолчанию ./config.yaml, если есть)")
}

// Execute запускает корневую команду. Вызывается из main.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app общие зависимости всех команд
type app struct {
	cfg config.Config
	log *logger.LoggerManager
}

func loadApp() (*app, error) {
	c, err := config.InitConfig(configPath)
	if err != nil {
		return nil, err
	}

	loggerManager, err := logger.NewLoggerManager(c.LogFilePath, c.LogLevel)
	if err != nil {
		return nil, err
	}
	return &app{cfg: c, log: loggerManager}, nil
}

func (a *app) close() {
	if err := a.log.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "Error closing log file:", err)
	}
}
