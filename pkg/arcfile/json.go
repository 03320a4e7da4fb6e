package arcfile

import (
	"encoding/json"
	"fmt"
)

// ParseJSON parses a scene from JSON. A missing canvas takes the default.
func ParseJSON(data []byte) (*Scene, error) {
	s := &Scene{Canvas: DefaultCanvas()}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	Logger().Debug("arcfile: parsed scene", "name", s.Name, "arcs", len(s.Arcs))
	return s, nil
}

// ToJSON converts a scene to JSON.
func ToJSON(s *Scene, pretty bool) ([]byte, error) {
	out := *s
	if out.Arcs == nil {
		out.Arcs = []ArcSpec{}
	}
	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
