package interrupt

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"osbot/internal/logger"
)

// InterruptManager останавливает цикл по горячей клавише Q или по сигналу процесса
type InterruptManager struct {
	loggerManager *logger.LoggerManager
	hotkeys       bool
	once          sync.Once
	cancel        context.CancelFunc
}

// NewInterruptManager создает новый менеджер прерываний.
// hotkeys == false отключает перехват клавиатуры, сигналы обрабатываются всегда.
func NewInterruptManager(loggerManager *logger.LoggerManager, hotkeys bool) *InterruptManager {
	return &InterruptManager{
		loggerManager: loggerManager,
		hotkeys:       hotkeys,
	}
}

// Watch возвращает контекст, который отменяется по Q, SIGINT или SIGTERM.
// Возвращенная функция освобождает перехватчики.
func (im *InterruptManager) Watch(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stopSignals := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(ctx)
	im.cancel = cancel

	if im.hotkeys {
		if err := monitorHotkeys(ctx, im.Interrupt); err != nil {
			im.loggerManager.Info("⌨️ Горячие клавиши недоступны: %v", err)
		} else {
			im.loggerManager.Info("🔥 Нажмите Q для остановки")
		}
	}

	return ctx, func() {
		cancel()
		stopSignals()
	}
}

// Interrupt отменяет контекст, выданный Watch
func (im *InterruptManager) Interrupt() {
	im.once.Do(func() {
		im.loggerManager.Info("⏹️ Прерывание по запросу пользователя")
		if im.cancel != nil {
			im.cancel()
		}
	})
}
