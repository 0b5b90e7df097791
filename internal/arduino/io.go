package arduino

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
)

// ResponseReceived строка, которой плата подтверждает команду
const ResponseReceived = "received"

// InitializePort открывает последовательный порт платы
func InitializePort(name string, baud int) (*serial.Port, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:     name,
		Baud:     baud,
		Parity:   serial.ParityNone,
		StopBits: serial.Stop1,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening arduino port %s", name)
	}
	return port, nil
}

// SendMove отправляет команду перемещения курсора
func SendMove(w io.Writer, x, y int) error {
	return send(w, fmt.Sprintf("move:%d,%d\n", x, y))
}

// SendFastClick отправляет команду нажатия левой кнопки
func SendFastClick(w io.Writer) error {
	return send(w, "fast_click\n")
}

func send(w io.Writer, message string) error {
	if _, err := io.WriteString(w, message); err != nil {
		return errors.Wrap(err, "error writing to arduino")
	}
	return nil
}

// WaitForResponse читает одну строку ответа и сверяет ее с ожидаемой
func WaitForResponse(r *bufio.Reader, expectedResponse string) error {
	line, err := r.ReadString('\n')
	if err != nil {
		return errors.Wrap(err, "error reading from arduino")
	}
	response := strings.TrimSpace(line)
	if response != expectedResponse {
		return errors.Errorf("unexpected response: '%s'", response)
	}
	return nil
}
