package output

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	blank      = "    "

	// descColumn is the column file descriptions are aligned to.
	descColumn = 44
)

// treeDir is one directory of a rendered file tree.
type treeDir struct {
	dirs  map[string]*treeDir
	files map[string]string
}

func newTreeDir() *treeDir {
	return &treeDir{dirs: map[string]*treeDir{}, files: map[string]string{}}
}

func (d *treeDir) add(p, desc string) {
	name, rest, nested := strings.Cut(p, "/")
	if !nested {
		d.files[name] = desc
		return
	}
	child, ok := d.dirs[name]
	if !ok {
		child = newTreeDir()
		d.dirs[name] = child
	}
	child.add(rest, desc)
}

type treeItem struct {
	name string
	desc string
	dir  *treeDir
}

// items lists directories first, then files, each alphabetically.
func (d *treeDir) items() []treeItem {
	out := make([]treeItem, 0, len(d.dirs)+len(d.files))
	for _, name := range slices.Sorted(maps.Keys(d.dirs)) {
		out = append(out, treeItem{name: name + "/", dir: d.dirs[name]})
	}
	for _, name := range slices.Sorted(maps.Keys(d.files)) {
		out = append(out, treeItem{name: name, desc: d.files[name]})
	}
	return out
}

func (d *treeDir) render(sb *strings.Builder, prefix string, muted func(...string) string) {
	items := d.items()
	for i, it := range items {
		connector, indent := branch, pipe
		if i == len(items)-1 {
			connector, indent = lastBranch, blank
		}

		line := prefix + connector + it.name
		if it.desc != "" {
			pad := max(descColumn-utf8.RuneCountInString(line), 2)
			line += strings.Repeat(" ", pad) + muted(it.desc)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')

		if it.dir != nil {
			it.dir.render(sb, prefix+indent, muted)
		}
	}
}

// RenderFileTree renders the files of a project below a root directory
// named root. Descriptions are aligned to a fixed column.
func RenderFileTree(root string, entries []FileEntry) string {
	if len(entries) == 0 {
		return ""
	}

	tree := newTreeDir()
	for _, e := range entries {
		tree.add(strings.ReplaceAll(e.Path, "\\", "/"), e.Description)
	}

	styles := GetStyles()
	var sb strings.Builder
	sb.WriteString(styles.Bold.Render(root + "/"))
	sb.WriteByte('\n')
	tree.render(&sb, "", styles.Muted.Render)
	return sb.String()
}
