package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"osbot/internal/arduino"
	"osbot/internal/click_manager"
	"osbot/internal/config"
	"osbot/internal/mouse"
)

// requireArgs требует ровно len(names) позиционных аргументов и называет недостающий
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return errors.Errorf("no %s passed in", names[len(args)])
		}
		if len(args) > len(names) {
			return errors.Errorf("unexpected argument %q", args[len(names)])
		}
		return nil
	}
}

// parseCounts разбирает <numCpus> <numRamRows>
func parseCounts(args []string) (numCPUs, numRamRows int, err error) {
	numCPUs, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Errorf("CPU count was not a number: %q", args[0])
	}
	if numCPUs < 1 {
		return 0, 0, errors.Errorf("CPU count must be at least 1, got %d", numCPUs)
	}

	numRamRows, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Errorf("ram row count was not a number: %q", args[1])
	}
	if numRamRows < 1 {
		return 0, 0, errors.Errorf("ram row count must be at least 1, got %d", numRamRows)
	}
	return numCPUs, numRamRows, nil
}

type pointerDriver interface {
	click_manager.PointerDriver
	Close() error
}

func newPointerDriver(c config.Config) (pointerDriver, error) {
	switch c.Input.Backend {
	case config.BackendArduino:
		return arduino.Open(c.Input.Port, c.Input.BaudRate)
	case config.BackendRobotgo:
		return mouse.NewDriver(), nil
	}
	return nil, errors.Errorf("unknown input backend %q", c.Input.Backend)
}
