// Package bot is the placeholder random runner: it moves uniformly at
// random between traversable neighbor cells and does nothing smarter.
package bot

import (
	"errors"
	"math/rand"

	"github.com/zucenko/racetrack/model"
)

var ErrNoMove = errors.New("bot: no traversable neighbor")

var directions = []model.Point{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Move picks one of the four neighbors of loc that the track currently
// allows, or ErrNoMove when the runner is boxed in.
func Move(r *rand.Rand, loc model.Point, t *model.Track) (model.Point, error) {
	safe := t.TraversableCells()
	options := make([]model.Point, 0, len(directions))
	for _, d := range directions {
		n := model.Point{Row: loc.Row + d.Row, Col: loc.Col + d.Col}
		if safe[n] {
			options = append(options, n)
		}
	}
	if len(options) == 0 {
		return loc, ErrNoMove
	}
	return options[r.Intn(len(options))], nil
}
