// Package manifest loads symbolic type declarations from TOML files and
// registers the resulting descriptors.
//
// A manifest declares one or more types:
//
//	[[types]]
//	name = "BorderSides"
//	width = 8
//	signed = false
//	flags = true
//
//	  [[types.members]]
//	  name = "None"
//	  value = 0
//
//	  [[types.members]]
//	  name = "Left"
//	  value = 1
//
// Member order in the file is declaration order and is preserved.
package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"

	"bitsym/internal/registry"
	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

// MemberDecl is one [[types.members]] entry.
type MemberDecl struct {
	Name  string `toml:"name"`
	Value int64  `toml:"value"`
}

// TypeDecl is one [[types]] entry. Flags is a declaration hint only; whether
// a type actually behaves as a flags type is determined by its members.
type TypeDecl struct {
	Name    string       `toml:"name"`
	Width   uint8        `toml:"width"`
	Signed  bool         `toml:"signed"`
	Flags   bool         `toml:"flags"`
	Members []MemberDecl `toml:"members"`
}

// File is the decoded contents of one manifest.
type File struct {
	Path  string
	Types []TypeDecl
}

// Load parses a single manifest file.
func Load(path string) (File, error) {
	var cfg struct {
		Types []TypeDecl `toml:"types"`
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return File{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("types") || len(cfg.Types) == 0 {
		return File{}, fmt.Errorf("%s: no [[types]] declared", path)
	}
	for _, t := range cfg.Types {
		if strings.TrimSpace(t.Name) == "" {
			return File{}, fmt.Errorf("%s: [[types]] entry missing name", path)
		}
	}
	return File{Path: path, Types: cfg.Types}, nil
}

// BuildDescriptor constructs the descriptor for one declaration.
func BuildDescriptor(decl TypeDecl) (*symbolic.Descriptor, error) {
	width := symbolic.Width(decl.Width)
	members := make([]symbolic.Member, 0, len(decl.Members))
	for _, m := range decl.Members {
		members = append(members, symbolic.Member{
			Name:  strings.TrimSpace(m.Name),
			Value: wide.FromInt64(m.Value),
		})
	}
	return symbolic.Build(strings.TrimSpace(decl.Name), members, width, decl.Signed)
}

// RegisterFile builds and registers every type declared in the file.
func RegisterFile(file File, reg *registry.Registry) error {
	for _, decl := range file.Types {
		desc, err := BuildDescriptor(decl)
		if err != nil {
			return fmt.Errorf("%s: %w", file.Path, err)
		}
		if err := reg.Register(desc); err != nil {
			return fmt.Errorf("%s: %w", file.Path, err)
		}
	}
	return nil
}

// LoadDir walks dir for .toml manifests and registers every declared type.
// Files are parsed concurrently; registration order between files is not
// defined, so type ids must be unique across the whole directory. Returns
// the number of types registered.
func LoadDir(ctx context.Context, dir string, reg *registry.Registry) (int, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".toml") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return 0, nil
	}

	jobs := runtime.GOMAXPROCS(0)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	counts := make([]int, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			file, err := Load(path)
			if err != nil {
				return err
			}
			if err := RegisterFile(file, reg); err != nil {
				return err
			}
			counts[i] = len(file.Types)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}
