package pyprints

import (
	"encoding/json"
	"slices"
)

// Printers is the listing produced by the bundled tool's "list --json"
// command. Raw holds the payload exactly as emitted.
type Printers struct {
	// Names lists the installed printers
	Names []string
	// Default is the OS default printer, empty when none is set
	Default string
	// Raw is the unmodified JSON payload
	Raw json.RawMessage
}

type printersJSON struct {
	Printers []string `json:"printers"`
	Default  *string  `json:"default"`
}

// UnmarshalJSON decodes the tool payload, keeping a copy in Raw. The
// payload is forwarded as is: fields whose shape differs from the expected
// string list and string are left zero instead of failing the decode.
func (p *Printers) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	p.Names = nil
	p.Default = ""
	p.Raw = append(json.RawMessage(nil), data...)

	if raw, ok := fields["printers"]; ok {
		var names []string
		if json.Unmarshal(raw, &names) == nil {
			p.Names = names
		}
	}
	if raw, ok := fields["default"]; ok {
		var def *string
		if json.Unmarshal(raw, &def) == nil && def != nil {
			p.Default = *def
		}
	}
	return nil
}

// MarshalJSON returns Raw when present, so a listing round-trips unchanged
func (p Printers) MarshalJSON() ([]byte, error) {
	if len(p.Raw) > 0 {
		return p.Raw, nil
	}
	v := printersJSON{Printers: p.Names}
	if v.Printers == nil {
		v.Printers = []string{}
	}
	if p.Default != "" {
		v.Default = &p.Default
	}
	return json.Marshal(v)
}

// Has reports whether name is an installed printer
func (p Printers) Has(name string) bool {
	return slices.Contains(p.Names, name)
}

// Preferred returns the default printer, else the first listed printer,
// else the empty string.
func (p Printers) Preferred() string {
	if p.Default != "" {
		return p.Default
	}
	if len(p.Names) > 0 {
		return p.Names[0]
	}
	return ""
}
