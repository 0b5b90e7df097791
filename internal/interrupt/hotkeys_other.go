//go:build !windows

package interrupt

import (
	"context"

	"github.com/pkg/errors"
)

func monitorHotkeys(context.Context, func()) error {
	return errors.New("global hotkeys are only supported on windows")
}
