package domain

import (
	"bytes"
	"encoding/json"
)

// The v4 API returns rocket and launchpad as bare IDs unless the query
// populates them. Both shapes decode into the same struct.

func (r *Rocket) UnmarshalJSON(data []byte) error {
	if id, ok := bareID(data); ok {
		*r = Rocket{ID: id}
		return nil
	}
	type plain Rocket
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Rocket(p)
	return nil
}

func (lp *Launchpad) UnmarshalJSON(data []byte) error {
	if id, ok := bareID(data); ok {
		*lp = Launchpad{ID: id}
		return nil
	}
	type plain Launchpad
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*lp = Launchpad(p)
	return nil
}

func bareID(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return "", false
	}
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return "", false
	}
	return id, true
}
