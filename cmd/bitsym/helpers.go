package main

import (
	"fmt"
	"os"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bitsym/internal/manifest"
	"bitsym/internal/registry"
	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

// openRegistry builds the registry for one invocation: manifests from
// --manifest-dir when given, otherwise empty (types may still come from
// --inline or a snapshot).
func openRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	reg := registry.New()
	dir, err := cmd.Root().PersistentFlags().GetString("manifest-dir")
	if err != nil {
		return nil, err
	}
	if dir != "" {
		if _, err := manifest.LoadDir(cmd.Context(), dir, reg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// resolveDescriptor finds the named type in the registry, or builds it from
// the --inline member list on first use.
func resolveDescriptor(cmd *cobra.Command, reg *registry.Registry, typeID string) (*symbolic.Descriptor, error) {
	inline, err := cmd.Root().PersistentFlags().GetString("inline")
	if err != nil {
		return nil, err
	}
	if inline == "" {
		desc, ok := reg.Lookup(typeID)
		if !ok {
			return nil, fmt.Errorf("unknown symbolic type %q (no manifest declares it; see --manifest-dir and --inline)", typeID)
		}
		return desc, nil
	}
	return reg.GetOrBuild(typeID, func() (*symbolic.Descriptor, error) {
		return buildInline(cmd, typeID, inline)
	})
}

// buildInline parses "Name=value,Name=value" into a descriptor.
func buildInline(cmd *cobra.Command, typeID, inline string) (*symbolic.Descriptor, error) {
	widthFlag, err := cmd.Root().PersistentFlags().GetInt("width")
	if err != nil {
		return nil, err
	}
	width, err := safecast.Conv[uint8](widthFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid --width %d: %w", widthFlag, err)
	}
	signed, err := cmd.Root().PersistentFlags().GetBool("signed")
	if err != nil {
		return nil, err
	}

	var members []symbolic.Member
	for _, pair := range strings.Split(inline, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid --inline entry %q: want Name=value", pair)
		}
		v, err := wide.Parse(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid --inline value for %q: %w", name, err)
		}
		members = append(members, symbolic.Member{Name: strings.TrimSpace(name), Value: v})
	}
	return symbolic.Build(typeID, members, symbolic.Width(width), signed)
}

// parseValueArg reads a decimal or 0x hex command-line value.
func parseValueArg(arg string) (wide.Int, error) {
	v, err := wide.Parse(strings.TrimSpace(arg))
	if err != nil {
		return wide.Int{}, fmt.Errorf("invalid value %q: expected decimal or 0x hex", arg)
	}
	return v, nil
}

// configureColor applies the --color flag to the fatih/color global state
// and reports whether colored output is active.
func configureColor(cmd *cobra.Command) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		colorFlag = "auto"
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	color.NoColor = !useColor
	return useColor
}
