package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	oerrors "github.com/cepress/cli/internal/errors"
	"github.com/cepress/cli/internal/output"
)

// ManifestBuilder produces the package manifest for a configuration.
type ManifestBuilder interface {
	BuildJSON(ctx context.Context, cfg Configuration) ([]byte, error)
}

// CommandRunner executes an external command inside a directory.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// Generator composes a project from a configuration.
type Generator struct {
	opts     GenerateOptions
	manifest ManifestBuilder
	runner   CommandRunner
	renderer *Renderer
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions, manifest ManifestBuilder, runner CommandRunner) *Generator {
	return &Generator{
		opts:     opts,
		manifest: manifest,
		runner:   runner,
		renderer: NewRenderer(),
	}
}

// Generate writes the project to disk.
// It fails before touching the filesystem when the configuration is invalid
// or the target already exists. Later failures leave a partial tree behind.
func (g *Generator) Generate(ctx context.Context) (*GenerateResult, error) {
	cfg := g.opts.Config.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	plog := output.ProjectLogger(cfg.ProjectName)
	plog.Debug("generating project", "config", cfg.String(), "target", g.opts.TargetDir)

	w := &writer{root: g.opts.TargetDir, log: plog}

	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	pkg, err := g.manifest.BuildJSON(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", ManifestPath, err)
	}
	if err := w.write(ManifestPath, pkg); err != nil {
		return nil, err
	}

	for _, dir := range SkeletonDirs {
		if err := os.MkdirAll(filepath.Join(w.root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	data := NewData(cfg)

	files, err := g.renderer.RenderPhase(data, PhaseBase)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if err := w.write(f.Path, f.Content); err != nil {
			return nil, err
		}
	}

	if cfg.UsePrisma {
		prisma := &prismaSetup{
			renderer:     g.renderer,
			runner:       g.runner,
			skipGenerate: g.opts.SkipGenerate,
		}
		if err := prisma.run(ctx, w, data); err != nil {
			return nil, err
		}
	}

	return &GenerateResult{
		Files:     w.files,
		Rewritten: w.rewritten,
		Config:    cfg,
		TargetDir: g.opts.TargetDir,
	}, nil
}

// checkTargetDir rejects any existing entry at the target path.
func (g *Generator) checkTargetDir() error {
	_, err := os.Stat(g.opts.TargetDir)
	if err == nil {
		return oerrors.NewAlreadyExistsError(g.opts.TargetDir)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking target directory: %w", err)
	}
	return nil
}

// PlannedFile is one entry of a generation plan.
type PlannedFile struct {
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description" yaml:"description"`
	Template    string `json:"template,omitempty" yaml:"template,omitempty"`
}

// Plan returns the files a configuration produces, in write order,
// without touching the filesystem.
func Plan(cfg Configuration) ([]PlannedFile, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plan := []PlannedFile{{Path: ManifestPath, Description: "Package manifest"}}
	for _, phase := range []Phase{PhaseBase, PhasePrisma} {
		for _, s := range Select(cfg, phase) {
			plan = append(plan, PlannedFile{Path: s.Path, Description: s.Description, Template: s.Template})
		}
	}
	return plan, nil
}

// writer records every file written below root, in order.
type writer struct {
	root      string
	log       *log.Logger
	files     []string
	rewritten []string
}

func (w *writer) write(rel string, content []byte) error {
	target := filepath.Join(w.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}

	if w.record(rel) {
		w.log.Debug("rewrote file", "path", rel)
	} else {
		w.log.Debug("created file", "path", rel)
	}
	return nil
}

// record appends rel unless it was already written, and reports whether it
// was. Rewrites keep the original position.
func (w *writer) record(rel string) bool {
	if slices.Contains(w.files, rel) {
		if !slices.Contains(w.rewritten, rel) {
			w.rewritten = append(w.rewritten, rel)
		}
		return true
	}
	w.files = append(w.files, rel)
	return false
}
