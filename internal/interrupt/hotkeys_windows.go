//go:build windows

package interrupt

import (
	"context"

	"github.com/moutend/go-hook/pkg/keyboard"
	"github.com/moutend/go-hook/pkg/types"
	"github.com/pkg/errors"
)

// monitorHotkeys ставит глобальный перехват клавиатуры и вызывает onStop по Q
func monitorHotkeys(ctx context.Context, onStop func()) error {
	eventChan := make(chan types.KeyboardEvent, 100)
	if err := keyboard.Install(nil, eventChan); err != nil {
		return errors.Wrap(err, "failed to install keyboard hook")
	}

	go func() {
		defer keyboard.Uninstall()
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventChan:
				if event.Message == types.WM_KEYDOWN && event.VKCode == types.VK_Q {
					onStop()
				}
			}
		}
	}()
	return nil
}
