package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
)

// Format names an export encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatTOML    Format = "toml"
)

// ParseFormat accepts an export format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatMsgpack, FormatTOML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, msgpack or toml)", s)
	}
}

// tomlDoc wraps the entries as an array of tables, one [[entry]] each.
type tomlDoc struct {
	Entry []Entry `toml:"entry"`
}

// Export encodes entries in the given format.
func Export(w io.Writer, entries []Entry, format Format, opts RenderOptions) error {
	switch format {
	case FormatText, "":
		return Render(w, entries, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(entries)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(tomlDoc{Entry: entries})
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Import decodes entries previously written by Export. Text is not
// importable.
func Import(r io.Reader, format Format) ([]Entry, error) {
	var out []Entry
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode msgpack: %w", err)
		}
	case FormatTOML:
		var doc tomlDoc
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		out = doc.Entry
	default:
		return nil, fmt.Errorf("format %q cannot be imported", format)
	}
	return out, nil
}

// Verify reports the first entry in got that differs from the built-in
// catalogue, or a count mismatch.
func Verify(got []Entry) error {
	if len(got) != len(entries) {
		return fmt.Errorf("catalogue has %d names, want %d", len(got), len(entries))
	}
	for i, e := range got {
		want := entries[i]
		if e.Name != want.Name || e.Group != want.Group || e.Kind != want.Kind ||
			e.Expansion != want.Expansion || e.Go != want.Go ||
			strings.Join(e.Params, ",") != strings.Join(want.Params, ",") {
			return fmt.Errorf("entry %d: got %s, want %s", i, e.Name, want.Name)
		}
	}
	return nil
}
