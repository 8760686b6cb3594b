package output

import (
	"encoding/json"

	toon "github.com/mateuszkardas/toon-go"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToTOON serializes v as TOON, a compact line format for tabular data.
func ToTOON(v interface{}) (string, error) {
	return toon.Marshal(v, nil)
}

func (r *Renderer) writeJSON(v interface{}) error {
	data, err := ToJSON(v, r.pretty)
	if err != nil {
		return err
	}
	return r.lines(string(data))
}

func (r *Renderer) writeTOON(v interface{}) error {
	data, err := ToTOON(v)
	if err != nil {
		return err
	}
	return r.lines(data)
}
