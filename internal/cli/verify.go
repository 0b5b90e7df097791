package cli

import (
	"github.com/spf13/cobra"

	"osbot/internal/calibration"
	"osbot/internal/screen"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify NUM_CPUS NUM_RAM_ROWS OUTPUT_PATH",
	Short: "Сохранить скриншот с крестиками во всех опрашиваемых точках",
	Args:  requireArgs("CPU number", "ram row number", "path for verification image"),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	numCPUs, numRamRows, err := parseCounts(args)
	if err != nil {
		return err
	}
	path := args[2]

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	capturer, err := screen.NewDisplayCapturer(a.cfg.Display)
	if err != nil {
		return err
	}

	marker := calibration.Marker{Radius: a.cfg.Marker.Radius, Color: a.cfg.MarkerColor()}
	n, err := calibration.Verify(capturer, a.cfg.Layout, numCPUs, numRamRows, marker, path)
	if err != nil {
		return err
	}

	a.log.Info("🖼️ Изображение сохранено: %s (%d точек)", path, n)
	return nil
}
