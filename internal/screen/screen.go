package screen

import (
	"image"

	"github.com/kbinani/screenshot"
	"github.com/pkg/errors"
)

// DisplayCapturer захватывает один монитор целиком
type DisplayCapturer struct {
	display int
	bounds  image.Rectangle
}

// NewDisplayCapturer проверяет, что монитор с индексом display существует
func NewDisplayCapturer(display int) (*DisplayCapturer, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, errors.New("no active display found")
	}
	if display < 0 || display >= n {
		return nil, errors.Errorf("display %d not found, %d active", display, n)
	}
	return &DisplayCapturer{
		display: display,
		bounds:  screenshot.GetDisplayBounds(display),
	}, nil
}

// Bounds границы монитора в координатах рабочего стола
func (c *DisplayCapturer) Bounds() image.Rectangle {
	return c.bounds
}

// Size ширина и высота монитора
func (c *DisplayCapturer) Size() (int, int) {
	return c.bounds.Dx(), c.bounds.Dy()
}

// Capture захватывает скриншот всего монитора
func (c *DisplayCapturer) Capture() (*image.RGBA, error) {
	img, err := screenshot.CaptureDisplay(c.display)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to capture display %d", c.display)
	}
	return img, nil
}
