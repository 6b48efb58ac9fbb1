package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rebel/internal/catalog"
)

func newExpandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand NAME [ARG...] | expand --text SOURCE",
		Short: "Preview the textual expansion of a catalogue name",
		Long: `Show what the host preprocessor would produce for NAME applied to
ARGs, and how many times each argument appears in the result. Without
ARGs a function-like name is expanded over its own parameter names.`,
		RunE: runExpand,
	}
	cmd.Flags().String("text", "", "expand every catalogue name in a source fragment")
	cmd.Flags().Bool("json", false, "print the expansion and counts as JSON")
	return cmd
}

type expandPayload struct {
	Name      string           `json:"name"`
	Expansion string           `json:"expansion"`
	Go        string           `json:"go,omitempty"`
	Hazards   []catalog.Hazard `json:"hazards,omitempty"`
}

func runExpand(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if text, _ := cmd.Flags().GetString("text"); cmd.Flags().Changed("text") {
		if len(args) > 0 {
			return fmt.Errorf("--text takes no positional arguments")
		}
		out, err := catalog.ExpandText(text)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(cmd, expandPayload{Name: "<text>", Expansion: out})
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("expand needs a NAME or --text")
	}

	e, ok := catalog.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown name %q", args[0])
	}
	if !e.Macro() {
		// declarations have no substitution; show what they stand for
		if len(args) > 1 {
			return fmt.Errorf("%s is a %s and takes no arguments", e.Name, e.Kind)
		}
		if asJSON {
			return writeJSON(cmd, expandPayload{Name: e.Name, Expansion: e.Expansion, Go: e.Go})
		}
		return catalog.RenderExpansion(cmd.OutOrStdout(), e, e.Expansion, nil)
	}
	callArgs := args[1:]
	if len(callArgs) == 0 && e.Kind == catalog.KindFunction {
		callArgs = e.Params
	}
	out, err := catalog.Expand(e.Name, callArgs...)
	if err != nil {
		return err
	}
	hz, err := catalog.Hazards(e.Name)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd, expandPayload{Name: e.Signature(), Expansion: out, Go: e.Go, Hazards: hz})
	}
	return catalog.RenderExpansion(cmd.OutOrStdout(), e, strings.TrimSpace(out), hz)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
