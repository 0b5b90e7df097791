package cli

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/spf13/cobra"

	"osbot/internal/interrupt"
	"osbot/internal/mouse"
	"osbot/internal/screen"
)

func init() {
	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Печатать позицию курсора и ее долю от размеров экрана",
	Args:  requireArgs(),
	RunE:  runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	capturer, err := screen.NewDisplayCapturer(a.cfg.Display)
	if err != nil {
		return err
	}

	interruptManager := interrupt.NewInterruptManager(a.log, a.cfg.Hotkeys)
	ctx, release := interruptManager.Watch(cmd.Context())
	defer release()

	printCursor(ctx, cmd.OutOrStdout(), a.cfg.PrintInterval, capturer.Bounds(), mouse.Position)
	return nil
}

// printCursor каждые interval печатает "x, y, fx, fy", где fx и fy доли ширины и высоты монитора
func printCursor(ctx context.Context, w io.Writer, interval time.Duration, bounds image.Rectangle, position func() image.Point) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			p := position().Sub(bounds.Min)
			fmt.Fprintf(w, "%d, %d, %v, %v\n", p.X, p.Y,
				float64(p.X)/float64(bounds.Dx()), float64(p.Y)/float64(bounds.Dy()))
		}
	}
}
