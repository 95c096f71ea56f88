package bridge

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/rockstorm/core"
)

// Wire frames are msgpack encoded, one value per frame, no extra length prefix

type wireControl struct {
	Thrust        float64   `msgpack:"thrust"`
	Rotate        float64   `msgpack:"rotate"`
	Fire          bool      `msgpack:"fire"`
	PointerActive bool      `msgpack:"pointer_active"`
	PointerTarget []float64 `msgpack:"pointer_target,omitempty"`
}

type wireMessage struct {
	Type    string       `msgpack:"type"`
	Seq     uint64       `msgpack:"seq"`
	Control *wireControl `msgpack:"control,omitempty"`
}

type wireBody struct {
	ID       uint64     `msgpack:"id"`
	Position [3]float64 `msgpack:"position"`
	Rotation [4]float64 `msgpack:"rotation"`
}

type wireSnapshot struct {
	Type     string     `msgpack:"type"`
	Seq      uint64     `msgpack:"seq"`
	Entities []wireBody `msgpack:"entities"`
}

// StreamBackend talks to an external physics process over a byte stream,
// typically the stdin/stdout pipes of a child process
type StreamBackend struct {
	rw io.ReadWriteCloser
}

// NewStreamBackend wraps rw, which is closed when Run returns
func NewStreamBackend(rw io.ReadWriteCloser) *StreamBackend {
	return &StreamBackend{rw: rw}
}

// Run implements Backend
func (s *StreamBackend) Run(ctx context.Context, inbox <-chan Message, publish func(*Snapshot)) error {
	var closeOnce sync.Once
	closeStream := func() { closeOnce.Do(func() { s.rw.Close() }) }
	defer closeStream()

	readErr := make(chan error, 1)
	core.Go(func() {
		readErr <- readSnapshots(s.rw, publish)
	})

	enc := msgpack.NewEncoder(s.rw)
	for {
		select {
		case <-ctx.Done():
			closeStream()
			<-readErr
			return nil
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case msg := <-inbox:
			if err := enc.Encode(toWire(msg)); err != nil {
				closeStream()
				<-readErr
				return err
			}
		}
	}
}

func readSnapshots(r io.Reader, publish func(*Snapshot)) error {
	dec := msgpack.NewDecoder(r)
	for {
		var ws wireSnapshot
		if err := dec.Decode(&ws); err != nil {
			return err
		}
		if ws.Type != "Snapshot" {
			continue
		}
		publish(fromWire(ws))
	}
}

func toWire(msg Message) wireMessage {
	wm := wireMessage{Type: msg.Type.String(), Seq: msg.Seq}
	if msg.Type == MsgControlUpdate {
		c := msg.Control
		wc := &wireControl{
			Thrust:        c.Thrust,
			Rotate:        c.Rotate,
			Fire:          c.Fire,
			PointerActive: c.PointerActive,
		}
		if c.PointerTarget != nil {
			wc.PointerTarget = []float64{c.PointerTarget.X, c.PointerTarget.Y}
		}
		wm.Control = wc
	}
	return wm
}

func fromWire(ws wireSnapshot) *Snapshot {
	s := &Snapshot{Seq: ws.Seq, Bodies: make([]BodyState, len(ws.Entities))}
	for i, e := range ws.Entities {
		b := &s.Bodies[i]
		b.ID = core.EntityID(e.ID)
		b.Position.X, b.Position.Y, b.Position.Z = e.Position[0], e.Position[1], e.Position[2]
		b.Rotation.X, b.Rotation.Y, b.Rotation.Z, b.Rotation.W = e.Rotation[0], e.Rotation[1], e.Rotation[2], e.Rotation[3]
	}
	return s
}
