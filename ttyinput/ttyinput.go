// This file is part of frameinput.
//
// frameinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// frameinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with frameinput.  If not, see <https://www.gnu.org/licenses/>.

package ttyinput

import (
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/userinput"
	"github.com/pkg/term"
)

// the number of decoded events that can be waiting to be consumed by
// userinput. events are dropped if the queue is full
const queueLength = 256

// how long a read of the terminal waits before checking for Close()
const readTimeout = 100 * time.Millisecond

// ANSI sequences to show and hide the cursor
const (
	cursorShow = "\x1b[?25h"
	cursorHide = "\x1b[?25l"
)

// Backend is the terminal implementation of userinput.Backend.
type Backend struct {
	tty    *term.Term
	output io.Writer

	queue chan userinput.Event

	interrupt atomic.Bool
	stop      atomic.Bool
	dropped   logger.Once
	done      chan bool

	// io.EOF from the input is the read timeout and not the end of the input
	eofIsTimeout bool
}

// Open the terminal device in raw mode. The device is usually "/dev/tty".
// Output is used to show and hide the cursor and can be nil.
func Open(device string, output io.Writer) (*Backend, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("tty: %v", err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf("tty: %v", err)
	}

	b := newBackend(tty, output, true)
	b.tty = tty
	logger.Logf(logger.Allow, "tty", "reading from %s", device)

	return b, nil
}

func newBackend(input io.Reader, output io.Writer, eofIsTimeout bool) *Backend {
	b := &Backend{
		output:       output,
		queue:        make(chan userinput.Event, queueLength),
		done:         make(chan bool),
		eofIsTimeout: eofIsTimeout,
	}
	go b.read(input)
	return b
}

// read from the input until Close() is called or the input is exhausted. runs
// in its own goroutine.
func (b *Backend) read(input io.Reader) {
	defer close(b.done)

	buf := make([]byte, 64)
	for !b.stop.Load() {
		n, err := input.Read(buf)

		if n > 0 {
			d := decode(buf[:n])
			if d.interrupt {
				b.interrupt.Store(true)
			}
			for _, ev := range d.events {
				select {
				case b.queue <- ev:
					b.dropped.Reset()
				default:
					logger.Log(&b.dropped, "tty", "dropped keyboard event")
				}
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) && b.eofIsTimeout {
				continue
			}
			if !errors.Is(err, io.EOF) && !b.stop.Load() {
				logger.Log(logger.Allow, "tty", curated.Errorf("read: %v", err))
			}
			return
		}
	}
}

// Close stops reading from the terminal and restores the terminal to the
// mode it was in before Open().
func (b *Backend) Close() error {
	b.stop.Store(true)
	<-b.done

	if b.output != nil {
		_, _ = io.WriteString(b.output, cursorShow)
	}

	if b.tty == nil {
		return nil
	}
	if err := b.tty.Restore(); err != nil {
		return curated.Errorf("tty: %v", err)
	}
	if err := b.tty.Close(); err != nil {
		return curated.Errorf("tty: %v", err)
	}
	return nil
}

// Interrupted returns true if CTRL-C has been pressed. In raw mode the
// terminal does not send an interrupt signal.
func (b *Backend) Interrupted() bool {
	return b.interrupt.Load()
}

// Pump implements the userinput.Source interface.
func (b *Backend) Pump() {
}

// Peep implements the userinput.Source interface. Only the keyboard class
// ever has events.
func (b *Backend) Peep(class userinput.Class, events []userinput.Event) int {
	if class != userinput.ClassKeyboard {
		return 0
	}

	var n int
	for n < len(events) {
		select {
		case ev := <-b.queue:
			events[n] = ev
			n++
		default:
			return n
		}
	}
	return n
}

// NumDevices implements the userinput.Devices interface.
func (b *Backend) NumDevices() int {
	return 0
}

// IsController implements the userinput.Devices interface.
func (b *Backend) IsController(_ int) bool {
	return false
}

// DeviceInstanceID implements the userinput.Devices interface.
func (b *Backend) DeviceInstanceID(_ int) userinput.InstanceID {
	return userinput.NoController
}

// OpenController implements the userinput.Devices interface.
func (b *Backend) OpenController(index int) (userinput.Controller, error) {
	return nil, curated.Errorf("tty: no controller at index %d", index)
}

// QuitControllers implements the userinput.Devices interface.
func (b *Backend) QuitControllers() {
}

// ShowCursor implements the userinput.Platform interface.
func (b *Backend) ShowCursor(show bool) error {
	if b.output == nil {
		return nil
	}
	s := cursorHide
	if show {
		s = cursorShow
	}
	_, err := io.WriteString(b.output, s)
	return err
}

// SetWindowGrab implements the userinput.Platform interface.
func (b *Backend) SetWindowGrab(_ bool) {
}

// SetRelativeMouseMode implements the userinput.Platform interface.
func (b *Backend) SetRelativeMouseMode(_ bool) {
}

// StopTextInput implements the userinput.Platform interface.
func (b *Backend) StopTextInput() {
}

// MousePosition implements the userinput.Platform interface.
func (b *Backend) MousePosition() (int32, int32) {
	return 0, 0
}

// WarpMouse implements the userinput.Platform interface.
func (b *Backend) WarpMouse(_, _ int32) {
}

// ScancodeName implements the userinput.KeyNamer interface.
func (b *Backend) ScancodeName(scancode int) string {
	return scancodeNames[scancode]
}
