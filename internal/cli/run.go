package cli

import (
	"github.com/spf13/cobra"

	"osbot/internal/bot"
	"osbot/internal/click_manager"
	"osbot/internal/interrupt"
	"osbot/internal/screen"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run NUM_CPUS NUM_RAM_ROWS",
	Short: "Запустить бесконечный цикл управления игрой",
	Args:  requireArgs("CPU number", "ram row number"),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	numCPUs, numRamRows, err := parseCounts(args)
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	capturer, err := screen.NewDisplayCapturer(a.cfg.Display)
	if err != nil {
		return err
	}

	driver, err := newPointerDriver(a.cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := driver.Close(); err != nil {
			a.log.LogError(err, "Error closing pointer driver")
		}
	}()

	clickManager := click_manager.NewClickManager(driver, a.cfg.SettleDelay, a.log)
	bounds := capturer.Bounds()
	clickManager.SetMargins(bounds.Min.X, bounds.Min.Y)

	width, height := capturer.Size()
	runner, err := bot.NewRunner(a.cfg.Layout, numCPUs, numRamRows, width, height, capturer, clickManager, a.log)
	if err != nil {
		return err
	}

	interruptManager := interrupt.NewInterruptManager(a.log, a.cfg.Hotkeys)
	ctx, release := interruptManager.Watch(cmd.Context())
	defer release()

	return runner.Run(ctx)
}
