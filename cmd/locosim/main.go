// Command locosim runs a session headless, driven by a tengo key script, and
// prints one line per logged frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/parkour/input"
	"github.com/milk9111/parkour/prefabs"
	"github.com/milk9111/parkour/session"
)

func main() {
	dir := flag.String("prefabs", "prefabs", "directory whose files override the embedded config")
	scriptName := flag.String("script", "showcase.tengo", "key script: a file path, or a name under prefabs/scripts")
	frames := flag.Int("frames", 0, "frames to run; 0 uses the script's own frames value")
	step := flag.Float64("step", session.DefaultStepSeconds, "seconds per frame")
	every := flag.Int("every", 1, "log every n-th frame and every movement change")
	dump := flag.Bool("dump", false, "print the final snapshot as YAML")
	flag.Parse()

	store := prefabs.NewStore(*dir)
	src, err := loadScript(store, *scriptName, *step)
	if err != nil {
		log.Fatal(err)
	}

	n := *frames
	if n <= 0 {
		n = src.Frames()
	}
	if n <= 0 {
		log.Fatalf("script %s declares no frames; pass -frames", *scriptName)
	}

	sess, err := session.New(context.Background(), session.Config{Store: store, StepSeconds: *step})
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	if err := run(sess, src, n, *every, os.Stdout); err != nil {
		log.Fatal(err)
	}

	if *dump {
		data, err := sess.Snapshot().YAML()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	}
}

func loadScript(store *prefabs.Store, name string, step float64) (*input.ScriptSource, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		data, err = store.LoadScript(name)
		if err != nil {
			return nil, fmt.Errorf("load script %s: %w", name, err)
		}
	}
	return input.NewScriptSource(data, step)
}
