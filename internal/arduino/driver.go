package arduino

import (
	"bufio"
	"image"
	"io"
	"sync"
)

// Driver двигает курсор и нажимает кнопку через плату, эмулирующую мышь.
// Каждая команда ждет подтверждения ResponseReceived.
type Driver struct {
	mu     sync.Mutex
	port   io.ReadWriteCloser
	reader *bufio.Reader
}

// NewDriver оборачивает открытый порт
func NewDriver(port io.ReadWriteCloser) *Driver {
	return &Driver{
		port:   port,
		reader: bufio.NewReader(port),
	}
}

// Open открывает порт и возвращает Driver
func Open(name string, baud int) (*Driver, error) {
	port, err := InitializePort(name, baud)
	if err != nil {
		return nil, err
	}
	return NewDriver(port), nil
}

// ProcessAndWait выполняет отправку команды и ожидание ответа от платы
func (d *Driver) ProcessAndWait(send func(io.Writer) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := send(d.port); err != nil {
		return err
	}
	return WaitForResponse(d.reader, ResponseReceived)
}

// Move переносит курсор в абсолютные координаты
func (d *Driver) Move(p image.Point) error {
	return d.ProcessAndWait(func(w io.Writer) error {
		return SendMove(w, p.X, p.Y)
	})
}

// Click нажимает левую кнопку
func (d *Driver) Click() error {
	return d.ProcessAndWait(SendFastClick)
}

// Close закрывает порт
func (d *Driver) Close() error {
	return d.port.Close()
}
