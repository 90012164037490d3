package templates

import (
	"context"
	"fmt"

	oerrors "github.com/cepress/cli/internal/errors"
)

// prismaSetup writes the Prisma schema, rewrites the connection placeholder
// and generates the client.
type prismaSetup struct {
	renderer     *Renderer
	runner       CommandRunner
	skipGenerate bool
}

func (p *prismaSetup) run(ctx context.Context, w *writer, data Data) error {
	files, err := p.renderer.RenderPhase(data, PhasePrisma)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := w.write(f.Path, f.Content); err != nil {
			return err
		}
	}

	env, err := p.renderer.RenderEnv(data, PrismaConnectionPlaceholder(data.Config.Database))
	if err != nil {
		return err
	}
	if err := w.write(".env.example", env); err != nil {
		return err
	}

	if p.skipGenerate {
		w.log.Debug("skipping prisma generate")
		return nil
	}

	w.log.Debug("running prisma generate", "dir", w.root)
	if err := p.runner.Run(ctx, w.root, "npx", "prisma", "generate"); err != nil {
		return fmt.Errorf("%w: npx prisma generate: %w", oerrors.ErrToolFailed, err)
	}
	return nil
}
