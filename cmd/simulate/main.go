// Command simulate walks the random bot over a saved track without
// opening a window, logging every step.
package main

import (
	"flag"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/racetrack/bot"
	"github.com/zucenko/racetrack/store"
)

func main() {
	name := flag.String("track", "your_map", "saved track name")
	steps := flag.Int("steps", 200, "maximum number of random steps")
	seed := flag.Int64("seed", 0, "random seed, 0 means time-based")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(*seed))

	m, err := store.Open()
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	track, err := store.Load(m, *name)
	if err != nil {
		log.Fatalf("load track %q: %v", *name, err)
	}

	loc := track.Spawn
	log.Infof("walking %q from %v towards %v (seed %d)", *name, loc, track.Target, *seed)
	for i := 1; i <= *steps; i++ {
		next, err := bot.Move(r, loc, track)
		if err != nil {
			log.Warnf("step %d: %v", i, err)
			return
		}
		loc = next
		log.Infof("step %d -> row %d col %d", i, loc.Row, loc.Col)
		if loc == track.Target {
			log.Infof("reached target in %d steps", i)
			return
		}
	}
	log.Infof("gave up after %d steps at %v", *steps, loc)
}
