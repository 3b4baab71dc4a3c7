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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/modalflag"
	"github.com/jetsetilly/frameinput/prefs"
	"github.com/jetsetilly/frameinput/sdlinput"
	"github.com/jetsetilly/frameinput/statsview"
	"github.com/jetsetilly/frameinput/ttyinput"
	"github.com/jetsetilly/frameinput/userinput"
)

// flags shared by the MONITOR and TTY modes.
type sessionFlags struct {
	prefs     *string
	exclusive *bool
	holds     *bool
	json      *bool
	echo      *bool
	fps       *int
	memviz    *string

	// nil if statsview is not available in this build
	stats     *bool
	statsAddr *string
}

func addSessionFlags(md *modalflag.Modes) *sessionFlags {
	f := &sessionFlags{
		prefs:     md.AddString("prefs", "", "preferences to apply. eg. \"input.mouse.invert::true; input.controller.deadzone::15\""),
		exclusive: md.AddBool("exclusive", false, "hide the cursor and use relative mouse movement while input is grabbed"),
		holds:     md.AddBool("holds", false, "print hold events"),
		json:      md.AddBool("json", false, "print events as JSON"),
		echo:      md.AddBool("echo", false, "echo log to stdout"),
		fps:       md.AddInt("fps", 60, "number of input frames per second. zero for no limit"),
		memviz:    md.AddString("memviz", "", "write graph of the input state to file on exit (graphviz dot format)"),
	}
	if statsview.Available() {
		f.stats = md.AddBool("statsview", false, "run stats server")
		f.statsAddr = md.AddString("statsaddr", statsview.DefaultAddress, "address of stats server")
	}
	return f
}

// apply the flags that have an effect outside of the session and return the
// options for the session.
func (f *sessionFlags) apply(output io.Writer) sessionOptions {
	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	if *f.echo {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if f.stats != nil && *f.stats {
		statsview.Launch(output, *f.statsAddr)
	}

	return sessionOptions{
		exclusive: *f.exclusive,
		holds:     *f.holds,
		json:      *f.json,
		fps:       *f.fps,
		memviz:    *f.memviz,
	}
}

// run the session returned by the creator until the platform requests
// that the session end.
func runSession(sync *mainSync, creator func() (Servicer, error)) error {
	sync.creator <- creator

	select {
	case svc := <-sync.creation:
		<-svc.(*session).quit
	case err := <-sync.creationError:
		return err
	}

	return nil
}

type sdlPlatform struct {
	*sdlinput.Backend
}

func (p sdlPlatform) poll() platformState {
	w := p.PollWindow()
	return platformState{
		quit:        w.Quit,
		focusGained: w.FocusGained,
		focusLost:   w.FocusLost,
	}
}

func (p sdlPlatform) destroy() error {
	return p.Destroy()
}

func monitorMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("Opens a window and prints the input received by the window. Press ESC to\ntoggle the input grab and TAB to toggle exclusive mode.")

	flgs := addSessionFlags(md)
	width := md.AddInt("width", 640, "width of window")
	height := md.AddInt("height", 480, "height of window")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	opts := flgs.apply(os.Stdout)

	return runSession(sync, func() (Servicer, error) {
		b, err := sdlinput.NewBackend("frameinput", int32(*width), int32(*height))
		if err != nil {
			return nil, err
		}
		s, err := newSession(sdlPlatform{Backend: b}, os.Stdout, opts)
		if err != nil {
			_ = b.Destroy()
			return nil, err
		}
		return s, nil
	})
}

type ttyPlatform struct {
	*ttyinput.Backend
}

func (p ttyPlatform) poll() platformState {
	return platformState{quit: p.Interrupted()}
}

func (p ttyPlatform) destroy() error {
	return p.Close()
}

// a terminal in raw mode does not translate newlines
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	_, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func ttyMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("Reads key presses from the terminal. Press CTRL-C to quit.")

	flgs := addSessionFlags(md)
	device := md.AddString("device", "/dev/tty", "terminal device to read from")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	output := crlfWriter{w: os.Stdout}
	opts := flgs.apply(output)

	// CTRL-C is read from the terminal as a key press
	sync.state <- stateRequest{req: reqNoIntSig}

	return runSession(sync, func() (Servicer, error) {
		b, err := ttyinput.Open(*device, output)
		if err != nil {
			return nil, err
		}
		s, err := newSession(ttyPlatform{Backend: b}, output, opts)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		return s, nil
	})
}

// the preferences used by the Config type in the order they are printed
func configPrefs(cfg *userinput.Config) []struct {
	key string
	p   prefs.Pref
} {
	return []struct {
		key string
		p   prefs.Pref
	}{
		{key: userinput.PrefMouseSens, p: &cfg.MouseSens},
		{key: userinput.PrefMouseSensScale, p: &cfg.MouseSensScale},
		{key: userinput.PrefMouseInvert, p: &cfg.MouseInvert},
		{key: userinput.PrefMouseStopDelay, p: &cfg.MouseStopDelay},
		{key: userinput.PrefControllerSens, p: &cfg.ControllerSens},
		{key: userinput.PrefControllerDeadZone, p: &cfg.ControllerDeadZone},
	}
}

func prefsMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Prints the input preferences after the -prefs flag has been applied.")

	p := md.AddString("prefs", "", "preferences to apply")

	r, err := md.Parse()
	if err != nil || r != modalflag.ParseContinue {
		return err
	}

	if *p != "" {
		prefs.PushCommandLineStack(*p)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "unused preferences: %s\n", unused)
			}
		}()
	}

	cfg, err := userinput.NewConfig()
	if err != nil {
		return err
	}

	for _, c := range configPrefs(cfg) {
		fmt.Fprintf(output, "%-28s %s\n", c.key, c.p.String())
	}

	return nil
}
