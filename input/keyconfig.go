package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Keymap documents are JSON of the form
//
//	{"bindings": {"jump": ["key:space", "mouse:left"], "left": ["key:a"]}}
//
// with actions named by strings and inputs in the ID string form. Where the
// bytes come from and go to is the host's concern; the tracker itself never
// touches the filesystem.

// LoadBindings parses a keymap document into a binding table. Unknown key or
// button names, non-array binding lists and malformed JSON are errors;
// duplicate entries collapse via Bind's set semantics.
func LoadBindings(data []byte) (*Bindings[string], error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("keymap: invalid JSON")
	}

	section := gjson.GetBytes(data, "bindings")
	if !section.Exists() {
		return nil, fmt.Errorf("keymap: missing \"bindings\" object")
	}
	if !section.IsObject() {
		return nil, fmt.Errorf("keymap: \"bindings\" is %s, expected object", section.Type)
	}

	binds := NewBindings[string]()
	var err error
	section.ForEach(func(action, list gjson.Result) bool {
		if !list.IsArray() {
			err = fmt.Errorf("keymap action %q: expected array of input ids", action.String())
			return false
		}
		for _, entry := range list.Array() {
			id, perr := ParseID(entry.String())
			if perr != nil {
				err = fmt.Errorf("keymap action %q: %w", action.String(), perr)
				return false
			}
			binds.Bind(id, action.String())
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return binds, nil
}

// ExportBindings renders a binding table back into keymap bytes, actions
// sorted for stable output. Action names using sjson path syntax characters
// are rejected rather than silently mangled.
func ExportBindings(b *Bindings[string]) ([]byte, error) {
	actions := b.Actions()
	sort.Strings(actions)

	out := []byte(`{"bindings":{}}`)
	for _, action := range actions {
		if strings.ContainsAny(action, ".|#@*?") {
			return nil, fmt.Errorf("keymap export: action %q contains path syntax", action)
		}
		ids := b.Transform(action)
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = id.String()
		}
		var err error
		out, err = sjson.SetBytes(out, "bindings."+action, names)
		if err != nil {
			return nil, fmt.Errorf("keymap export: action %q: %w", action, err)
		}
	}
	return out, nil
}
