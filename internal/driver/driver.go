// Package driver orchestrates transpilation: file loading, parsing,
// translation, caching, and assembly of the final program text.
package driver

import (
	"fmt"
	"strings"
	"time"

	"oxjs/internal/cache"
	"oxjs/internal/jsgen"
	"oxjs/internal/parser"
	"oxjs/internal/registry"
	"oxjs/internal/source"
)

// Unit is the transpilation result for one source file: the generated
// fragments without the runtime preamble, so units compose into one
// program without duplicating it.
type Unit struct {
	Path      string
	Hash      cache.Digest
	JS        string
	FromCache bool
}

// TranspileFile loads, parses and translates one file. A non-nil cache
// is consulted by content hash before any parsing happens.
func TranspileFile(path string, c *cache.Cache) (*Unit, error) {
	fs := source.NewFileSet()
	file, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return transpile(file, c)
}

// TranspileSource translates in-memory content under a synthetic path,
// bypassing the cache. Used for stdin input and tests.
func TranspileSource(path string, content []byte) (*Unit, error) {
	fs := source.NewFileSet()
	file, err := fs.AddVirtual(path, content)
	if err != nil {
		return nil, err
	}
	return transpile(file, nil)
}

func transpile(file *source.File, c *cache.Cache) (*Unit, error) {
	if entry, ok, err := c.Get(file.Hash); err != nil {
		return nil, fmt.Errorf("%s: cache read: %w", file.Path, err)
	} else if ok {
		return &Unit{Path: file.Path, Hash: file.Hash, JS: entry.JS, FromCache: true}, nil
	}

	tree, err := parser.ParseFile(file)
	if err != nil {
		return nil, err
	}

	frags := make([]string, 0, len(tree.Items))
	for _, item := range tree.Items {
		frag, err := jsgen.TranslateItem(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Path, err)
		}
		frags = append(frags, frag)
	}
	js := strings.Join(frags, "\n\n")

	if err := c.Put(file.Hash, &cache.Payload{
		SourcePath: file.Path,
		SourceHash: file.Hash,
		JS:         js,
		CreatedAt:  time.Now().Unix(),
	}); err != nil {
		return nil, fmt.Errorf("%s: cache write: %w", file.Path, err)
	}
	return &Unit{Path: file.Path, Hash: file.Hash, JS: js}, nil
}

// AssembleProgram builds one executable program from units in the
// given order: runtime preamble first, then every unit's fragments.
func AssembleProgram(units []*Unit) string {
	reg := registry.New()
	for _, u := range units {
		reg.Add(u.Path, u.JS)
	}
	var b strings.Builder
	b.WriteString(jsgen.Preamble())
	body := reg.JS()
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}
