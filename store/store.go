// Package store persists tracks as versioned gob records inside the
// per-user game data directory.
package store

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/quasilyte/gdata/v2"

	"github.com/zucenko/racetrack/model"
)

// Version tags the record format so future field additions cannot be
// misread as old saves.
const Version = 1

const tracksObject = "tracks"

var (
	ErrCorrupt  = errors.New("store: corrupt track record")
	ErrVersion  = errors.New("store: unsupported track record version")
	ErrNotFound = errors.New("store: no such track")
)

// record is the full on-disk state of one track, spec'd field for
// field by the model.
type record struct {
	Version int
	Walls   [][]int
	Active  [][]bool
	Buttons [][]bool
	Colors  [][]int
	Target  model.Point
	Spawn   model.Point
	ScreenW int
	ScreenH int
}

// Encode writes t to w. The record round-trips: decoding it yields a
// track equal to t in every field.
func Encode(w io.Writer, t *model.Track) error {
	rec := record{
		Version: Version,
		Walls:   t.Walls,
		Active:  t.Active,
		Buttons: t.Buttons,
		Colors:  t.Colors,
		Target:  t.Target,
		Spawn:   t.Spawn,
		ScreenW: t.ScreenW,
		ScreenH: t.ScreenH,
	}
	if err := gob.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("store: encode track: %w", err)
	}
	return nil
}

// Decode reads a track record from r. The caller's current track is
// never touched: on any failure Decode returns an error and no track.
func Decode(r io.Reader) (*model.Track, error) {
	var rec record
	if err := gob.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersion, rec.Version, Version)
	}
	t, err := model.New(rec.Walls, rec.Active, rec.Buttons, rec.Colors,
		rec.Target, rec.Spawn, rec.ScreenW, rec.ScreenH)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return t, nil
}

// Open returns the storage manager for this game's data directory.
func Open() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: "racetrack"})
	if err != nil {
		return nil, fmt.Errorf("store: open storage: %w", err)
	}
	return m, nil
}

// Save persists t under the given track name.
func Save(m *gdata.Manager, name string, t *model.Track) error {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return err
	}
	if err := m.SaveObjectProp(tracksObject, name, buf.Bytes()); err != nil {
		return fmt.Errorf("store: save track %q: %w", name, err)
	}
	return nil
}

// Load reads the track saved under the given name.
func Load(m *gdata.Manager, name string) (*model.Track, error) {
	if !m.ObjectPropExists(tracksObject, name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := m.LoadObjectProp(tracksObject, name)
	if err != nil {
		return nil, fmt.Errorf("store: load track %q: %w", name, err)
	}
	return Decode(bytes.NewReader(data))
}
