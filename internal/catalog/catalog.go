package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pixil98/go-log/log"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

var foldCaser = cases.Fold()

func fold(s string) string {
	return foldCaser.String(s)
}

// fileDoc is the shape accepted on disk per spec.md §6: either a bare list
// of item records, or a wrapper object with an "items" key.
type fileDoc struct {
	Items []*ItemDef `json:"items" yaml:"items"`
}

// Catalog is the immutable, read-only-after-Load item registry (component A).
type Catalog struct {
	mu sync.RWMutex

	byID   map[string]*ItemDef
	byName map[string]string   // folded name/synonym -> item_id
	byTag  map[string][]string // folded tag -> item_ids
	byType map[ItemType][]string
}

// New creates an empty Catalog. Use Load or Register to populate it.
func New() *Catalog {
	return &Catalog{
		byID:   make(map[string]*ItemDef),
		byName: make(map[string]string),
		byTag:  make(map[string][]string),
		byType: make(map[ItemType][]string),
	}
}

// Load walks dir for .json/.yaml/.yml files and registers every ItemDef
// found, accepting either a bare array or {"items": [...]}. Load fails
// only on malformed input, per spec.md §4.1.
func (c *Catalog) Load(ctx context.Context, dir string) error {
	logger := log.GetLogger(ctx)

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		defs, err := decodeDoc(ext, raw)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		for _, def := range defs {
			if err := def.Validate(); err != nil {
				return fmt.Errorf("validating %s in %s: %w", def.ItemID, path, err)
			}
			if c.has(def.ItemID) {
				logger.Errorf("duplicate item id %q in %s overwrites previous definition", def.ItemID, path)
			}
			c.Register(def)
		}
		return nil
	})
}

func decodeDoc(ext string, raw []byte) ([]*ItemDef, error) {
	var doc fileDoc
	var list []*ItemDef

	switch ext {
	case ".json":
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			return list, nil
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			return list, nil
		}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	}
	return doc.Items, nil
}

func (c *Catalog) has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.byID[id]
	return ok
}

// Register adds (or overwrites) an item definition and indexes its name,
// synonyms and tags. Overwriting a duplicate id is allowed; callers that
// care about warning on overwrite should check ByID first (Load does).
func (c *Catalog) Register(def *ItemDef) {
	def.normalize()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.byID[def.ItemID] = def

	c.byName[fold(def.Name)] = def.ItemID
	for _, syn := range def.Synonyms {
		c.byName[fold(syn)] = def.ItemID
	}

	for _, tag := range def.Tags {
		key := fold(tag)
		c.byTag[key] = appendUnique(c.byTag[key], def.ItemID)
	}
	c.byType[def.ItemType] = appendUnique(c.byType[def.ItemType], def.ItemID)
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

// ByID looks up an item by exact id. Unknown ids return (nil, false).
func (c *Catalog) ByID(id string) (*ItemDef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.byID[id]
	return def, ok
}

// ByName looks up an item by case-insensitive exact name or synonym match.
func (c *Catalog) ByName(name string) (*ItemDef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.byName[fold(name)]
	if !ok {
		return nil, false
	}
	def, ok := c.byID[id]
	return def, ok
}

// ByTag returns every item carrying tag (case-insensitive).
func (c *Catalog) ByTag(tag string) []*ItemDef {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve(c.byTag[fold(tag)])
}

// ByType returns every item of the given type.
func (c *Catalog) ByType(t ItemType) []*ItemDef {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve(c.byType[t])
}

func (c *Catalog) resolve(ids []string) []*ItemDef {
	out := make([]*ItemDef, 0, len(ids))
	for _, id := range ids {
		if def, ok := c.byID[id]; ok {
			out = append(out, def)
		}
	}
	return out
}

// Search matches substr case-insensitively against name, synonyms,
// description and tags.
func (c *Catalog) Search(substr string) []*ItemDef {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := fold(substr)
	var out []*ItemDef
	for _, def := range c.byID {
		if strings.Contains(fold(def.Name), needle) ||
			strings.Contains(fold(def.Description), needle) {
			out = append(out, def)
			continue
		}
		matched := false
		for _, syn := range def.Synonyms {
			if strings.Contains(fold(syn), needle) {
				matched = true
				break
			}
		}
		if !matched {
			for _, tag := range def.Tags {
				if strings.Contains(fold(tag), needle) {
					matched = true
					break
				}
			}
		}
		if matched {
			out = append(out, def)
		}
	}
	return out
}

// AllNames returns every registered item's display name, sorted, for
// seeding the Command Pipeline's entity-tagger vocabulary (spec.md §4.7).
func (c *Catalog) AllNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.byID))
	for _, def := range c.byID {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
