package dataset

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"radialplot/internal/logging"
)

// File is the content of a chart data file.
type File struct {
	Dataset Dataset
	Compare Dataset
	Scenes  []Scene
}

// jsonEntry accepts loosely typed values; coercion happens in toEntry.
type jsonEntry struct {
	ID    *int   `json:"id"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type jsonFile struct {
	Dataset json.RawMessage   `json:"dataset"`
	Compare json.RawMessage   `json:"compare"`
	Scenes  []json.RawMessage `json:"scenes"`
}

// xmlFile matches the XML data file schema:
//
//	<RadialPlot>
//	  <Dataset><Entry Id="0" Name="A" Value="30"/>…</Dataset>
//	  <Compare>…</Compare>
//	  <Scene>…</Scene>
//	</RadialPlot>
type xmlFile struct {
	Dataset xmlSet   `xml:"Dataset"`
	Compare *xmlSet  `xml:"Compare"`
	Scenes  []xmlSet `xml:"Scene"`
}

type xmlSet struct {
	Entries []xmlEntry `xml:"Entry"`
}

type xmlEntry struct {
	ID    string `xml:"Id,attr"`
	Name  string `xml:"Name,attr"`
	Value string `xml:"Value,attr"`
}

// LoadFile reads a JSON or XML data file, chosen by extension.
func LoadFile(path string, logger *slog.Logger) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var f *File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		f, err = ParseXML(raw, logger)
	default:
		f, err = ParseJSON(raw, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}
	return f, nil
}

// ParseJSON decodes a data file. The document is either
// {"dataset": …, "compare": …, "scenes": […]} or a bare dataset.
func ParseJSON(raw []byte, logger *slog.Logger) (*File, error) {
	logger = logging.OrDefault(logger)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil || probe["dataset"] == nil {
		ds, err := Decode(raw, logger)
		if err != nil {
			return nil, err
		}
		return &File{Dataset: ds}, nil
	}

	var jf jsonFile
	if err := json.Unmarshal(raw, &jf); err != nil {
		return nil, err
	}

	f := &File{}
	var err error
	if f.Dataset, err = Decode(jf.Dataset, logger); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if len(jf.Compare) > 0 && string(jf.Compare) != "null" {
		if f.Compare, err = Decode(jf.Compare, logger); err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
	}
	for i, s := range jf.Scenes {
		var entries []jsonEntry
		if err := json.Unmarshal(s, &entries); err != nil {
			return nil, fmt.Errorf("scene %d: %w", i, err)
		}
		scene := make(Scene, len(entries))
		for j, je := range entries {
			scene[j] = je.toEntry(j, "", logger)
		}
		f.Scenes = append(f.Scenes, scene)
	}
	return f, nil
}

// Decode reads a dataset in array form ([{…}, …]) or id-keyed object form
// ({"a": {"id": 0, …}, …}) and normalises it. Bad values become 0 and are
// logged; only malformed JSON is an error.
func Decode(raw []byte, logger *slog.Logger) (Dataset, error) {
	logger = logging.OrDefault(logger)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var entries []jsonEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		ds := make(Dataset, len(entries))
		for i, je := range entries {
			ds[i] = je.toEntry(i, "", logger)
		}
		return Normalize(ds, logger), nil
	}

	var keyed map[string]jsonEntry
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, err
	}
	k := make(Keyed, len(keyed))
	for key, je := range keyed {
		if je.ID == nil {
			logger.Warn("keyed entry without id skipped", "key", key)
			continue
		}
		k[key] = je.toEntry(*je.ID, key, logger)
	}
	return Normalize(k, logger), nil
}

func (je jsonEntry) toEntry(slot int, key string, logger *slog.Logger) *Entry {
	e := &Entry{ID: slot, Name: je.Name}
	if je.ID != nil {
		e.ID = *je.ID
	}
	if e.Name == "" {
		e.Name = key
	}
	e.Value = coerce(je.Value, e, logger)
	return e
}

func coerce(v any, e *Entry, logger *slog.Logger) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err == nil {
			return f
		}
	case nil:
		logger.Warn("missing value coerced to 0", "id", e.ID, "name", e.Name)
		return 0
	}
	logger.Warn("non-numeric value coerced to 0", "id", e.ID, "name", e.Name, "value", v)
	return 0
}

// ParseXML decodes the XML data file form.
func ParseXML(raw []byte, logger *slog.Logger) (*File, error) {
	logger = logging.OrDefault(logger)

	var xf xmlFile
	if err := xml.Unmarshal(raw, &xf); err != nil {
		return nil, err
	}

	f := &File{Dataset: Normalize(xf.Dataset.keyed(logger), logger)}
	if xf.Compare != nil {
		f.Compare = Normalize(xf.Compare.keyed(logger), logger)
	}
	for _, s := range xf.Scenes {
		scene := make(Scene, len(s.Entries))
		for i, xe := range s.Entries {
			scene[i] = xe.toEntry(i, logger)
		}
		f.Scenes = append(f.Scenes, scene)
	}
	return f, nil
}

func (s xmlSet) keyed(logger *slog.Logger) Keyed {
	k := make(Keyed, len(s.Entries))
	for i, xe := range s.Entries {
		e := xe.toEntry(i, logger)
		k[strconv.Itoa(i)+":"+e.Name] = e
	}
	return k
}

func (xe xmlEntry) toEntry(slot int, logger *slog.Logger) *Entry {
	e := &Entry{ID: slot, Name: xe.Name}
	if xe.ID != "" {
		id, err := strconv.Atoi(xe.ID)
		if err != nil {
			logger.Warn("bad entry id, using position", "id", xe.ID, "slot", slot)
		} else {
			e.ID = id
		}
	}
	if xe.Value == "" {
		e.Value = coerce(nil, e, logger)
	} else {
		e.Value = coerce(xe.Value, e, logger)
	}
	return e
}
