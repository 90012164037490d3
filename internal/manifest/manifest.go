package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cepress/cli/internal/templates"
)

// Manifest is the package.json of a generated project.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         Scripts           `json:"scripts"`
	Keywords        []string          `json:"keywords"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Script is a single npm script.
type Script struct {
	Name    string
	Command string
}

// Scripts keeps npm scripts in the order they are declared, so package.json
// lists start, dev and test first.
type Scripts []Script

// Get returns the command registered under name.
func (s Scripts) Get(name string) (string, bool) {
	for _, sc := range s {
		if sc.Name == name {
			return sc.Command, true
		}
	}
	return "", false
}

// MarshalJSON encodes the scripts as a JSON object in declaration order.
func (s Scripts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, sc.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, sc.Command); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeString appends s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// JSON renders the manifest with two-space indentation and a trailing newline.
func (m *Manifest) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Builder assembles manifests, resolving every package version concurrently.
type Builder struct {
	resolver *Resolver
}

// NewBuilder creates a builder using resolver for package versions.
func NewBuilder(resolver *Resolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build resolves the versions of every required package and assembles the
// manifest. Per-package lookup failures fall back individually; only a
// cancelled context fails the build.
func (b *Builder) Build(ctx context.Context, cfg templates.Configuration) (*Manifest, error) {
	reqs := Requirements(cfg)
	versions := make([]string, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			versions[i] = b.resolver.Resolve(gctx, req.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving package versions: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolving package versions: %w", err)
	}

	m := &Manifest{
		Name:        cfg.ProjectName,
		Version:     "1.0.0",
		Description: "Express.js API generated with cepress",
		Main:        "src/server.js",
		Scripts: Scripts{
			{Name: "start", Command: "node src/server.js"},
			{Name: "dev", Command: "nodemon src/server.js"},
			{Name: "test", Command: `echo "Error: no test specified" && exit 1`},
		},
		Keywords:        []string{"express", "api", "nodejs"},
		Author:          "",
		License:         "MIT",
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}

	if cfg.UsePrisma {
		m.Scripts = append(m.Scripts,
			Script{Name: "prisma", Command: "prisma"},
			Script{Name: "migrate", Command: "prisma migrate dev"},
		)
	}

	for i, req := range reqs {
		if req.Dev {
			m.DevDependencies[req.Name] = versions[i]
		} else {
			m.Dependencies[req.Name] = versions[i]
		}
	}

	return m, nil
}

// BuildJSON builds the manifest and renders it as package.json content.
func (b *Builder) BuildJSON(ctx context.Context, cfg templates.Configuration) ([]byte, error) {
	m, err := b.Build(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return m.JSON()
}
