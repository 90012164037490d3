package templates

import (
	"context"
	"fmt"
	"sync"
)

// allConfigurations enumerates every valid configuration.
func allConfigurations() []Configuration {
	var out []Configuration
	for _, db := range []Database{SQLite, PostgreSQL, MySQL} {
		for _, prisma := range []bool{false, true} {
			if prisma && !db.SupportsPrisma() {
				continue
			}
			for _, auth := range []Auth{AuthNone, AuthJWT} {
				for _, swagger := range []bool{false, true} {
					for _, models := range []Models{UserPost, NoModels} {
						out = append(out, Configuration{
							ProjectName: "demo-api",
							Database:    db,
							UsePrisma:   prisma,
							Auth:        auth,
							Swagger:     swagger,
							Validation:  Zod,
							Models:      models,
						})
					}
				}
			}
		}
	}
	return out
}

type fakeManifest struct {
	calls int
	err   error
}

func (f *fakeManifest) BuildJSON(_ context.Context, cfg Configuration) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte(fmt.Sprintf("{\n  \"name\": %q\n}\n", cfg.ProjectName)), nil
}

type runCall struct {
	Dir  string
	Name string
	Args []string
}

type fakeRunner struct {
	mu    sync.Mutex
	calls []runCall
	err   error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, runCall{Dir: dir, Name: name, Args: args})
	return f.err
}
