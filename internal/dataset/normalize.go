package dataset

import (
	"log/slog"
	"strconv"

	"radialplot/internal/logging"
)

// MaxSlots bounds ids when entries are slotted by id. Ids outside
// [0, MaxSlots) are dropped so a stray large id cannot blow up gap filling.
const MaxSlots = 1024

// Source is an input collection accepted by Normalize: an already ordered
// Dataset or a Keyed map.
type Source interface {
	normalize(logger *slog.Logger) Dataset
}

// Normalize converts src into an ordered sequence where out[e.ID] == e.
// A nil source yields nil; callers must check.
func Normalize(src Source, logger *slog.Logger) Dataset {
	if src == nil {
		return nil
	}
	ds := src.normalize(logging.OrDefault(logger))
	if len(ds) == 0 {
		return nil
	}
	return ds
}

func (ds Dataset) normalize(logger *slog.Logger) Dataset {
	ordered, holes := true, false
	for i, e := range ds {
		switch {
		case e == nil:
			holes = true
		case e.ID != i:
			ordered = false
		}
	}

	if !ordered {
		// Ids decide the slots, not positions.
		k := make(Keyed, len(ds))
		for i, e := range ds {
			if e != nil {
				k[strconv.Itoa(i)] = e
			}
		}
		return k.normalize(logger)
	}
	if !holes {
		return ds
	}

	// Copy before patching so the caller's slice is left alone.
	out := append(Dataset(nil), ds...)
	for i, e := range out {
		if e == nil {
			logger.Warn("nil entry replaced with zero entry", "slot", i)
			out[i] = &Entry{ID: i, Name: strconv.Itoa(i)}
		}
	}
	return out
}

func (k Keyed) normalize(logger *slog.Logger) Dataset {
	size := 0
	for key, e := range k {
		if e == nil {
			logger.Warn("nil entry skipped", "key", key)
			continue
		}
		if e.ID < 0 || e.ID >= MaxSlots {
			logger.Warn("entry with out-of-range id skipped", "key", key, "id", e.ID, "max", MaxSlots-1)
			continue
		}
		if e.ID+1 > size {
			size = e.ID + 1
		}
	}

	out := make(Dataset, size)
	for key, e := range k {
		if e == nil || e.ID < 0 || e.ID >= MaxSlots {
			continue
		}
		if prev := out[e.ID]; prev != nil {
			logger.Warn("duplicate entry id, keeping lowest name", "id", e.ID, "key", key)
			if prev.Name <= e.Name {
				continue
			}
		}
		out[e.ID] = e
	}

	// Holes get zero placeholders so slot i still maps to angle i.
	for i, e := range out {
		if e == nil {
			logger.Warn("id gap filled with zero entry", "id", i)
			out[i] = &Entry{ID: i, Name: strconv.Itoa(i)}
		}
	}
	return out
}
