package nodeeditor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/phanxgames/nodeeditor/geom"
)

// NodeSettings is the persisted state of one node. A row may exist without a
// live node (a pre-seeded layout, or a node destroyed this session) and is
// never removed automatically.
type NodeSettings struct {
	ID       int
	Location geom.Point
}

// SettingsStore is the in-memory table of NodeSettings backed by a JSON file:
//
//	{"nodes": {"<id>": {"location": {"x": <number>, "y": <number>}}}}
//
// Unknown keys are ignored on load.
type SettingsStore struct {
	path  string
	rows  []*NodeSettings
	index map[int]*NodeSettings
	dirty bool
}

// NewSettingsStore creates an empty store for path. An empty path disables
// loading and saving.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path, index: make(map[int]*NodeSettings)}
}

// Path returns the backing file path.
func (s *SettingsStore) Path() string { return s.path }

// Find returns the row for id, or nil.
func (s *SettingsStore) Find(id int) *NodeSettings {
	return s.index[id]
}

// Add appends a zero-location row for id and returns it. Callers check Find
// first; Add does not deduplicate.
func (s *SettingsStore) Add(id int) *NodeSettings {
	row := &NodeSettings{ID: id}
	s.rows = append(s.rows, row)
	s.index[id] = row
	return row
}

func (s *SettingsStore) findOrAdd(id int) *NodeSettings {
	if row := s.Find(id); row != nil {
		return row
	}
	return s.Add(id)
}

// Rows returns all rows in insertion order. The returned slice MUST NOT be
// mutated by the caller.
func (s *SettingsStore) Rows() []*NodeSettings {
	return s.rows
}

// MarkDirty records that committed node bounds changed since the last save.
func (s *SettingsStore) MarkDirty() { s.dirty = true }

// Dirty reports whether a save is owed.
func (s *SettingsStore) Dirty() bool { return s.dirty }

// takeDirty clears the dirty flag and reports whether it was set.
func (s *SettingsStore) takeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Load reads the settings file into the table. A missing path or file is not
// an error. For an unreadable or malformed document Load adds nothing and
// returns an error wrapping ErrMalformedSettings (or the read error); entries
// of a partially valid document are loaded as far as they are usable.
func (s *SettingsStore) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read settings %s: %w", s.path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedSettings, s.path, err)
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s: root is not an object", ErrMalformedSettings, s.path)
	}
	nodes, ok := root["nodes"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s: missing \"nodes\" object", ErrMalformedSettings, s.path)
	}

	// Sorted so that keys parsing to the same id resolve the same way every run.
	keys := make([]string, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		row := s.findOrAdd(parseNodeID(key))
		if loc, ok := readLocation(nodes[key]); ok {
			row.Location = loc
		}
	}
	return nil
}

// readLocation extracts {"location": {"x": n, "y": n}} from a node entry.
// Both coordinates must be numbers; they are truncated toward zero.
func readLocation(entry any) (geom.Point, bool) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return geom.Point{}, false
	}
	loc, ok := obj["location"].(map[string]any)
	if !ok {
		return geom.Point{}, false
	}
	x, xok := loc["x"].(float64)
	y, yok := loc["y"].(float64)
	if !xok || !yok {
		return geom.Point{}, false
	}
	return geom.PointF{X: x, Y: y}.ToPoint(), true
}

// parseNodeID reads a base-10 integer prefix the way strtoll does: leading
// whitespace and an optional sign are accepted, parsing stops at the first
// non-digit, no digits yields 0, and out-of-range values saturate. The result
// is narrowed to 32 bits, so saturated values wrap.
func parseNodeID(key string) int {
	s := strings.TrimLeft(key, " \t\n\v\f\r")
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0
	}
	v, err := strconv.ParseInt(sign+s[:n], 10, 64)
	if err != nil {
		v = math.MaxInt64
		if sign == "-" {
			v = math.MinInt64
		}
	}
	return int(int32(v))
}

type settingsDocument struct {
	Nodes map[string]nodeDocument `json:"nodes"`
}

type nodeDocument struct {
	Location locationDocument `json:"location"`
}

type locationDocument struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Save copies each live node's committed location into its row and writes
// every row, including rows with no live node, to the settings file. A missing
// path is a no-op.
func (s *SettingsStore) Save(nodes []*Node) error {
	if s.path == "" {
		return nil
	}
	for _, n := range nodes {
		s.findOrAdd(n.ID).Location = n.Bounds.Location
	}
	data, err := s.marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}

// marshal renders the table as an indented settings document.
func (s *SettingsStore) marshal() ([]byte, error) {
	doc := settingsDocument{Nodes: make(map[string]nodeDocument, len(s.rows))}
	for _, row := range s.rows {
		doc.Nodes[strconv.Itoa(row.ID)] = nodeDocument{Location: locationDocument{
			X: float64(row.Location.X),
			Y: float64(row.Location.Y),
		}}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return append(data, '\n'), nil
}
