package entities

import (
	"encoding/json"
	"maps"
)

const AffinityKey = "AFFINITY"

type AffinityOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SystemEnviron maps environment variable names to URLs of related
// systems. AFFINITY is the one key that carries a list instead of a URL.
type SystemEnviron struct {
	URLs     map[string]string
	Affinity []AffinityOption
}

func (e *SystemEnviron) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = SystemEnviron{URLs: make(map[string]string, len(raw))}
	for key, value := range raw {
		if key == AffinityKey {
			if err := json.Unmarshal(value, &e.Affinity); err != nil {
				return err
			}
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			// flags and numbers are not urls
			continue
		}
		e.URLs[key] = s
	}
	return nil
}

func (e SystemEnviron) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.URLs)+1)
	for k, v := range e.URLs {
		out[k] = v
	}
	if e.Affinity != nil {
		out[AffinityKey] = e.Affinity
	}
	return json.Marshal(out)
}

// Clone returns a deep copy.
func (e SystemEnviron) Clone() SystemEnviron {
	return SystemEnviron{
		URLs:     maps.Clone(e.URLs),
		Affinity: append([]AffinityOption(nil), e.Affinity...),
	}
}
