package main

import (
	"fmt"
	"io"

	"github.com/milk9111/parkour/input"
	"github.com/milk9111/parkour/session"
)

// run steps the session n frames. A frame is logged when it falls on the
// every-th frame or when the movement state changed.
func run(sess *session.Session, src input.Source, n, every int, out io.Writer) error {
	if every <= 0 {
		every = 1
	}
	prev := sess.Snapshot().Movement
	for i := range n {
		keys, err := src.Poll()
		if err != nil {
			return err
		}
		sess.Update(keys)

		snap := sess.Snapshot()
		if i%every == 0 || snap.Movement != prev {
			if _, err := fmt.Fprintf(out, "%s  keys=[%s]\n", snap.Line(), input.HeldNames(keys)); err != nil {
				return err
			}
		}
		prev = snap.Movement
	}
	return nil
}
