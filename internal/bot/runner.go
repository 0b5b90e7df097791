// Package bot связывает чтение экрана, решение и нажатия в один цикл управления.
package bot

import (
	"context"
	"image"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"osbot/internal/game"
	"osbot/internal/layout"
	"osbot/internal/logger"
	"osbot/internal/policy"
	"osbot/internal/reader"
)

// Capturer источник скриншота всего экрана
type Capturer interface {
	Capture() (*image.RGBA, error)
}

// Clicker нажимает в пиксельных координатах экрана
type Clicker interface {
	ClickCoordinates(coordinate image.Point) error
}

// Report итог одной итерации
type Report struct {
	Iteration int
	State     game.GameState
	Actions   []policy.Action
}

// Runner цикл управления игрой. Владеет размерами областей и экрана.
type Runner struct {
	numCPUs    int
	screen     layout.Screen
	capturer   Capturer
	clicker    Clicker
	logger     *logger.LoggerManager
	iterations int
}

// NewRunner создает Runner для numCPUs процессоров и numRamRows строк памяти
// на экране width x height.
func NewRunner(table layout.Table, numCPUs, numRamRows, width, height int, capturer Capturer, clicker Clicker, loggerManager *logger.LoggerManager) (*Runner, error) {
	if numCPUs < 1 {
		return nil, errors.Errorf("cpu count must be >= 1, got %d", numCPUs)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	s, err := layout.NewScreen(table, numRamRows, width, height)
	if err != nil {
		return nil, err
	}
	return &Runner{
		numCPUs:  numCPUs,
		screen:   s,
		capturer: capturer,
		clicker:  clicker,
		logger:   loggerManager,
	}, nil
}

// Iterations количество завершенных итераций
func (r *Runner) Iterations() int {
	return r.iterations
}

// RunOnce делает свежий снимок, планирует и выполняет все действия итерации.
// Отмена контекста проверяется перед каждым нажатием.
func (r *Runner) RunOnce(ctx context.Context) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	img, err := r.capturer.Capture()
	if err != nil {
		return Report{}, errors.Wrap(err, "screen capture failed")
	}

	state := reader.ReadState(img, r.screen.Table, r.numCPUs, r.screen.NumRamRows)
	actions := policy.Plan(state, r.screen.Capacity(layout.RAM))
	report := Report{Iteration: r.iterations + 1, State: state, Actions: actions}

	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		p := r.screen.Point(a.Kind.Region(), a.Slot)
		if err := r.clicker.ClickCoordinates(p); err != nil {
			return report, errors.Wrapf(err, "action %s failed", a)
		}
	}

	r.iterations++
	r.logReport(report)
	return report, nil
}

// Run повторяет RunOnce без пауз, пока контекст не отменен
// или внешний компонент не вернул ошибку.
func (r *Runner) Run(ctx context.Context) error {
	r.info("▶️ Запуск цикла: процессоров=%d, строк памяти=%d, экран=%dx%d",
		r.numCPUs, r.screen.NumRamRows, r.screen.Width, r.screen.Height)

	for {
		if _, err := r.RunOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				r.info("⏹️ Цикл остановлен после %d итераций", r.iterations)
				return nil
			}
			return err
		}
	}
}

func (r *Runner) info(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Info(format, args...)
	}
}

func (r *Runner) logReport(report Report) {
	if r.logger == nil || !r.logger.DebugEnabled() {
		return
	}
	r.logger.WithFields(logrus.Fields{
		"iteration": report.Iteration,
		"open_cpus": report.State.OpenCPUs(),
		"idle":      len(report.State.Idle),
		"ram":       len(report.State.RAM),
		"disk":      len(report.State.Disk),
		"actions":   report.Actions,
	}).Debug("iteration done")
}
