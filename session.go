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


package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/monitor"
	"github.com/jetsetilly/frameinput/userinput"
)

// focus changes and quit requests from the platform. the input package only
// deals with input events so these must be collected separately
type platformState struct {
	quit        bool
	focusGained bool
	focusLost   bool
}

// platform is a userinput.Backend that also owns the window or terminal
// that the events come from.
type platform interface {
	userinput.Backend
	poll() platformState
	destroy() error
}

// sessionOptions are the values taken from the command line that affect a
// session.
type sessionOptions struct {
	exclusive bool
	holds     bool
	json      bool
	fps       int
	memviz    string
}

// session runs the input loop for a single platform. It implements the
// Servicer interface and must be created and serviced in the main thread.
type session struct {
	plat platform
	inp  *userinput.Input
	mon  *monitor.Monitor

	// paces calls to Service(). nil if there is no frame limit
	ticker *time.Ticker

	// closed when the platform requests that the program end
	quit    chan bool
	quitted bool

	memviz string
}

func newSession(plat platform, output io.Writer, opts sessionOptions) (*session, error) {
	cfg, err := userinput.NewConfig()
	if err != nil {
		return nil, curated.Errorf("session: %v", err)
	}

	s := &session{
		plat:   plat,
		inp:    userinput.NewInput(plat, cfg, opts.exclusive),
		quit:   make(chan bool),
		memviz: opts.memviz,
	}

	if opts.fps > 0 {
		s.ticker = time.NewTicker(time.Second / time.Duration(opts.fps))
	}

	s.mon = monitor.NewMonitor(output, s.inp)
	s.mon.Holds = opts.holds
	s.mon.JSON = opts.json
	s.inp.Capture(s.mon)
	s.inp.SetGrab(true)

	return s, nil
}

// Service implements the Servicer interface.
func (s *session) Service() {
	if s.ticker != nil {
		<-s.ticker.C
	}

	s.inp.Tick()

	st := s.plat.poll()
	if st.focusLost {
		s.inp.AppDeactivate()
	}
	if st.focusGained {
		s.inp.AppActivate()
	}
	if st.quit && !s.quitted {
		s.quitted = true
		close(s.quit)
	}
}

// Destroy implements the Servicer interface.
func (s *session) Destroy(output io.Writer) {
	if s.ticker != nil {
		s.ticker.Stop()
	}

	s.inp.DumpStatistics(output)

	if s.memviz != "" {
		if err := s.writeMemviz(); err != nil {
			fmt.Fprintf(output, "* %v\n", err)
		}
	}

	s.inp.Release(s.mon)
	s.inp.Destroy()

	if err := s.plat.destroy(); err != nil {
		fmt.Fprintf(output, "* %v\n", err)
	}
}

// the graph is of the snapshot and not the Input itself. the Input holds
// references to platform types that can't be safely walked
func (s *session) writeMemviz() error {
	f, err := os.Create(s.memviz)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	state := s.inp.Snapshot()
	memviz.Map(f, &state)
	logger.Logf(logger.Allow, "memviz", "input state written to %s", s.memviz)

	return nil
}
