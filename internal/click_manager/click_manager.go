package click_manager

import (
	"image"
	"time"

	"github.com/pkg/errors"

	"osbot/internal/logger"
)

// PointerDriver низкоуровневое управление курсором (robotgo или плата)
type PointerDriver interface {
	Move(p image.Point) error
	Click() error
}

// ClickManager управляет кликами: перемещение, пауза, нажатие
type ClickManager struct {
	driver  PointerDriver
	settle  time.Duration
	sleep   func(time.Duration)
	marginX int
	marginY int
	logger  *logger.LoggerManager
}

// NewClickManager создает новый экземпляр ClickManager.
// settle пауза между перемещением курсора и нажатием, чтобы игра успела его увидеть.
func NewClickManager(driver PointerDriver, settle time.Duration, loggerManager *logger.LoggerManager) *ClickManager {
	return &ClickManager{
		driver: driver,
		settle: settle,
		sleep:  time.Sleep,
		logger: loggerManager,
	}
}

// SetMargins задает смещение монитора относительно начала рабочего стола
func (m *ClickManager) SetMargins(marginX, marginY int) {
	m.marginX = marginX
	m.marginY = marginY
}

// ClickCoordinates выполняет клик по указанным координатам с учетом отступов
func (m *ClickManager) ClickCoordinates(coordinate image.Point) error {
	finalCoordinates := image.Point{
		X: m.marginX + coordinate.X,
		Y: m.marginY + coordinate.Y,
	}

	if err := m.driver.Move(finalCoordinates); err != nil {
		return errors.Wrapf(err, "failed to move pointer to %v", finalCoordinates)
	}
	m.sleep(m.settle)
	if err := m.driver.Click(); err != nil {
		return errors.Wrapf(err, "failed to click at %v", finalCoordinates)
	}

	if m.logger != nil && m.logger.DebugEnabled() {
		m.logger.Debug("🖱️ Клик по координатам %v", finalCoordinates)
	}
	return nil
}
