package main

import (
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/rockstorm/bridge"
	"github.com/lixenwraith/rockstorm/parameter"
)

// procPipe speaks to a child process over its stdin and stdout
type procPipe struct {
	io.Reader
	stdin io.WriteCloser
	cmd   *exec.Cmd
}

func (p *procPipe) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Close ends the child's input and reaps it
func (p *procPipe) Close() error {
	err := p.stdin.Close()
	if werr := p.cmd.Wait(); err == nil {
		err = werr
	}
	return err
}

// newBackend resolves the -bridge flag
// "" disables the bridge, "null" runs the in-process stub, anything else is a command speaking msgpack on stdio
func newBackend(spec string) (bridge.Backend, error) {
	switch spec {
	case "":
		return nil, nil
	case "null":
		return bridge.NewNullBackend(parameter.BridgeStepInterval), nil
	}

	args := strings.Fields(spec)
	if len(args) == 0 {
		return nil, errors.Errorf("empty bridge command %q", spec)
	}
	cmd := exec.Command(args[0], args[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "bridge stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "bridge stdout")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "start bridge %q", args[0])
	}
	return bridge.NewStreamBackend(&procPipe{Reader: stdout, stdin: stdin, cmd: cmd}), nil
}
