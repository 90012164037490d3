package templates

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed files
var filesFS embed.FS

// TemplateFS returns the embedded template files rooted at files/.
func TemplateFS() fs.FS {
	sub, err := fs.Sub(filesFS, "files")
	if err != nil {
		// files/ is embedded at build time; Sub only fails on invalid paths.
		panic(err)
	}
	return sub
}

// ListTemplateFiles returns every embedded template path, sorted.
func ListTemplateFiles() ([]string, error) {
	var files []string

	err := fs.WalkDir(TemplateFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
