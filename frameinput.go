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
	"os/signal"

	"github.com/jetsetilly/frameinput/modalflag"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. the TTY mode reads CTRL-C as a key
	// press and decides for itself when to quit.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// Servicer facilitates the creation, servicing and destruction of input
// sessions that need to be run in the main thread.
//
// There is no Create() function. Instead the creator is a channel which
// accepts a function that returns an instance of Servicer.
type Servicer interface {
	// cleanup resources used by the session
	Destroy(io.Writer)

	// Service() MUST ONLY by called as part of a larger loop from the main
	// thread. It runs a single frame of the input loop.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window and event handling (including
// creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (Servicer, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan Servicer
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (Servicer, error)),
		creation:      make(chan Servicer),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new session creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created
	//     session
	//
	done := false
	var svc Servicer
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if svc != nil {
				svc.Destroy(os.Stderr)
			}
			done = true

		case creator := <-sync.creator:
			if svc != nil {
				svc.Destroy(os.Stderr)
			}

			s, err := creator()
			if err != nil {
				// don't assign the result of creator() to svc directly. a
				// nil pointer in an interface is not a nil interface
				svc = nil
				sync.creationError <- err
			} else {
				svc = s
				sync.creation <- svc
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if svc != nil {
					svc.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if svc != nil {
				svc.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate session creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MONITOR", "TTY", "PREFS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitorMode(md, sync)

	case "TTY":
		err = ttyMode(md, sync)

	case "PREFS":
		err = prefsMode(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}
