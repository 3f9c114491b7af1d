// Command curveplot draws an animation state's root-motion curve before and
// after a chain of retargeting edits.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/prefabs"
)

func main() {
	dir := flag.String("prefabs", "prefabs", "directory whose files override the embedded config")
	state := flag.String("state", "vault", "animation state whose clip is plotted")
	out := flag.String("out", "", "output PNG; defaults to <state>.png")
	var chain edits
	flag.Var(&chain, "edit", "retargeting step op:axis[:args], repeatable (e.g. fit:x:0.3:0.7:6, arc:z)")
	flag.Parse()

	if *out == "" {
		*out = *state + ".png"
	}

	store := prefabs.NewStore(*dir)
	defs, err := store.LoadAnimConfig(prefabs.AnimConfigFile)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := store.LoadTuning(prefabs.TuningFile)
	if err != nil {
		log.Fatal(err)
	}

	raw, err := loadCurve(context.Background(), store, defs, *state)
	if err != nil {
		log.Fatal(err)
	}
	edited, err := retarget(raw, chain, cfg.Movement.HangDropArc)
	if err != nil {
		log.Fatal(err)
	}

	title := *state
	if len(chain) > 0 {
		title += " (" + chain.String() + ")"
	}
	if err := savePlot(*out, title, raw, edited); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}

// loadCurve loads only the named state's clip.
func loadCurve(ctx context.Context, loader anim.ClipLoader, defs []anim.StateDef, name string) (anim.Curve, error) {
	reg, err := anim.NewRegistry(defs)
	if err != nil {
		return anim.Curve{}, err
	}
	defer reg.Close()

	s, err := reg.Lookup(name)
	if err != nil {
		return anim.Curve{}, err
	}
	clip, err := loader.LoadClip(ctx, s.ClipRef())
	if err != nil {
		return anim.Curve{}, err
	}
	return clip.Root, nil
}

// retarget applies the chain to a copy of raw.
func retarget(raw anim.Curve, chain edits, arc anim.Arc) (anim.Curve, error) {
	c := raw.Clone()
	for _, e := range chain {
		if err := e.apply(&c, arc); err != nil {
			return anim.Curve{}, err
		}
	}
	return c, nil
}
