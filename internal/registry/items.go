package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"mc-icons/pkg/blockmodel"
)

// ItemDir is the model directory holding one model per inventory item.
const ItemDir = "item"

// ListItems returns every item model found under the base and override trees,
// as sorted "namespace:item/name" identifiers. A missing override tree is ignored.
func ListItems(paths blockmodel.Paths) ([]string, error) {
	seen := make(map[string]bool)
	if err := collectItems(paths.Base, seen); err != nil {
		return nil, err
	}
	if paths.Overrides != "" {
		if err := collectItems(paths.Overrides, seen); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func collectItems(root string, seen map[string]bool) error {
	namespaces, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("could not list assets in %s: %w", root, err)
	}

	for _, ns := range namespaces {
		if !ns.IsDir() {
			continue
		}
		dir := filepath.Join(root, ns.Name(), "models", ItemDir)
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(p) != ".json" {
				return nil
			}
			rel, err := filepath.Rel(dir, p)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.ToSlash(rel), ".json")
			seen[blockmodel.ResourceLocation{Namespace: ns.Name(), Path: path.Join(ItemDir, name)}.String()] = true
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Filter keeps the names matching at least one glob pattern (path.Match syntax,
// matched against both "namespace:path" and the bare path). No patterns keeps everything.
func Filter(names []string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return names, nil
	}
	var out []string
	for _, name := range names {
		bare := blockmodel.ParseLocation(blockmodel.DefaultNamespace, name).Path
		for _, pattern := range patterns {
			full, err := path.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("bad model pattern %q: %w", pattern, err)
			}
			short, _ := path.Match(pattern, bare)
			if full || short {
				out = append(out, name)
				break
			}
		}
	}
	return out, nil
}
