package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ezrec/iloc/emulator"
)

const (
	DEFAULT_INTERVAL = 100 * time.Millisecond

	KEY_STEP   = 's'
	KEY_RUN    = 'r'
	KEY_QUIT   = 'q'
	KEY_CTRL_C = 0x03
)

// Session drives an emulator from the keyboard and redraws the screen after
// every change.
type Session struct {
	Verbose  bool                       // If set, enables verbose logging.
	Emu      *emulator.Emulator         // Machine to drive.
	Interval time.Duration              // Time between steps when running.
	In       io.Reader                  // Key input.
	Out      io.Writer                  // Screen output.
	Size     func() (width, height int) // Screen size, or DEFAULT_WIDTH x DEFAULT_HEIGHT if nil.

	running bool
}

// readKeys forwards single key presses until the reader fails or quit is
// closed.
func readKeys(in io.Reader, keys chan<- byte, quit <-chan struct{}) {
	defer close(keys)

	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			select {
			case keys <- b:
			case <-quit:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// status returns the status line text.
func (ss *Session) status(snap *emulator.Snapshot) string {
	var state string
	switch {
	case snap.Fault != nil:
		state = f("fault: %v", snap.Fault)
	case snap.Done():
		state = f("halted")
	case ss.running:
		state = f("running")
	default:
		state = f("paused")
	}
	return f("[s] step  [r] run/pause  [q] quit  pc=%v  %v", snap.Pc, state)
}

// draw redraws the whole screen.
func (ss *Session) draw() (err error) {
	width, height := DEFAULT_WIDTH, DEFAULT_HEIGHT
	if ss.Size != nil {
		width, height = ss.Size()
	}

	snap := ss.Emu.Snapshot()
	_, err = fmt.Fprint(ss.Out, escHome+Frame(snap, width, height, ss.status(&snap)))
	return
}

// step advances the machine by one instruction. Running stops once the
// program has ended.
func (ss *Session) step() (err error) {
	done, err := ss.Emu.Tick()
	if err != nil {
		ss.running = false
		return
	}
	if done {
		if ss.Verbose && ss.running {
			log.Printf("tui: program ended")
		}
		ss.running = false
	}
	return
}

// Run handles keys and timer ticks until the user quits, the input ends, a
// fault occurs, or ctx is done. A fault is returned after the final screen
// has been drawn.
func (ss *Session) Run(ctx context.Context) (err error) {
	interval := ss.Interval
	if interval <= 0 {
		interval = DEFAULT_INTERVAL
	}

	quit := make(chan struct{})
	defer close(quit)

	keys := make(chan byte)
	go readKeys(ss.In, keys, quit)

	resize := make(chan os.Signal, 1)
	stop := notifyResize(resize)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ss.running = false

	err = ss.draw()
	if err != nil {
		return
	}

	for {
		var stepErr error
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-resize:
		case <-ticker.C:
			if !ss.running {
				continue
			}
			stepErr = ss.step()
		case key, ok := <-keys:
			if !ok {
				return
			}
			switch key {
			case KEY_STEP:
				ss.running = false
				stepErr = ss.step()
			case KEY_RUN:
				ss.running = !ss.running
			case KEY_QUIT, 'Q', KEY_CTRL_C:
				return
			default:
				continue
			}
		}

		err = ss.draw()
		if err != nil {
			return
		}

		if stepErr != nil {
			err = stepErr
			return
		}
	}
}
