package display

import (
	"encoding/json"
)

// MarshalJSON is compact for machine callers and indented otherwise.
func MarshalJSON(v interface{}) ([]byte, error) {
	if MachineCaller() {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
