// Package ptyharness is test-only support for driving a Renderer against a
// real pseudo-terminal instead of a plain in-memory buffer, so an
// integration test can read back the exact escape-code bytes a terminal
// would receive.
package ptyharness

import (
	"fmt"
	"os"

	"github.com/creack/pty"
)

// Pair is an open pseudo-terminal: Slave is the terminal side the Renderer
// under test writes to, as a program writes to its controlling terminal;
// Master is read from by the test to inspect the byte stream that terminal
// receives. Bytes written to Master arrive as terminal input on Slave, where
// a read in the default canonical mode waits for a line terminator.
type Pair struct {
	Master *os.File
	Slave  *os.File
}

// Open allocates a new pty pair.
func Open() (*Pair, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("ptyharness: open: %w", err)
	}
	return &Pair{Master: master, Slave: slave}, nil
}

// Close releases both ends of the pair.
func (p *Pair) Close() error {
	err1 := p.Master.Close()
	err2 := p.Slave.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
