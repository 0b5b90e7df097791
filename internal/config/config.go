package config

import (
	"image/color"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"osbot/internal/layout"
)

// Поддерживаемые способы нажатия
const (
	BackendRobotgo = "robotgo"
	BackendArduino = "arduino"
)

// Input настройки устройства ввода
type Input struct {
	Backend  string `mapstructure:"backend"`
	Port     string `mapstructure:"port"`
	BaudRate int    `mapstructure:"baud_rate"`
}

// Marker внешний вид крестика в режиме калибровки
type Marker struct {
	Radius int   `mapstructure:"radius"`
	Color  []int `mapstructure:"color"`
}

// Основная структура конфигурации
type Config struct {
	LogFilePath   string        `mapstructure:"log_file_path"`
	LogLevel      string        `mapstructure:"log_level"`
	SettleDelay   time.Duration `mapstructure:"settle_delay"`
	PrintInterval time.Duration `mapstructure:"print_interval"`
	Display       int           `mapstructure:"display"`
	Hotkeys       bool          `mapstructure:"hotkeys"`
	Input         Input         `mapstructure:"input"`
	Marker        Marker        `mapstructure:"marker"`
	Layout        layout.Table  `mapstructure:"layout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_file_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("settle_delay", "5ms")
	v.SetDefault("print_interval", "500ms")
	v.SetDefault("display", 0)
	v.SetDefault("hotkeys", true)
	v.SetDefault("input.backend", BackendRobotgo)
	v.SetDefault("input.port", "")
	v.SetDefault("input.baud_rate", 9600)
	v.SetDefault("marker.radius", 6)
	v.SetDefault("marker.color", []int{50, 50, 255, 255})

	table := layout.DefaultTable()
	for _, k := range []layout.Kind{layout.CPU, layout.Idle, layout.RAM, layout.Disk, layout.IO} {
		r := table.Region(k)
		prefix := "layout." + k.String() + "."
		v.SetDefault(prefix+"start_x", r.StartX)
		v.SetDefault(prefix+"start_y", r.StartY)
		v.SetDefault(prefix+"inc_x", r.IncX)
		v.SetDefault(prefix+"inc_y", r.IncY)
		v.SetDefault(prefix+"row_width", r.RowWidth)
		v.SetDefault(prefix+"rows", r.Rows)
	}
}

// InitConfig читает конфигурацию из YAML файла.
// При пустом path ищется config.yaml в текущей директории; его отсутствие не ошибка.
// Любой ключ можно переопределить переменной окружения OSBOT_<KEY>.
func InitConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("osbot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "error reading config file")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unable to decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate проверяет согласованность настроек
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	switch c.Input.Backend {
	case BackendRobotgo:
	case BackendArduino:
		if c.Input.Port == "" {
			return errors.New("input.port is required for the arduino backend")
		}
		if c.Input.BaudRate <= 0 {
			return errors.Errorf("input.baud_rate must be positive, got %d", c.Input.BaudRate)
		}
	default:
		return errors.Errorf("unknown input.backend %q", c.Input.Backend)
	}
	if c.SettleDelay < 0 {
		return errors.Errorf("settle_delay must not be negative, got %s", c.SettleDelay)
	}
	if c.PrintInterval <= 0 {
		return errors.Errorf("print_interval must be positive, got %s", c.PrintInterval)
	}
	if c.Marker.Radius < 1 {
		return errors.Errorf("marker.radius must be >= 1, got %d", c.Marker.Radius)
	}
	if len(c.Marker.Color) != 4 {
		return errors.Errorf("marker.color must have 4 components, got %d", len(c.Marker.Color))
	}
	for _, v := range c.Marker.Color {
		if v < 0 || v > 255 {
			return errors.Errorf("marker.color component %d out of range", v)
		}
	}
	return nil
}

// MarkerColor цвет крестика калибровки
func (c Config) MarkerColor() color.RGBA {
	mc := c.Marker.Color
	return color.RGBA{R: uint8(mc[0]), G: uint8(mc[1]), B: uint8(mc[2]), A: uint8(mc[3])}
}
