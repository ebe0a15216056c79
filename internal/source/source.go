// Package source loads the initial items of the list.
package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rileylov/sortable/internal/config"
)

// ErrNoItems is returned by sources that produced nothing.
var ErrNoItems = errors.New("no items found")

// Item is one row of the list.
type Item struct {
	ID     string
	Label  string
	Detail string
	Done   bool
	// Locked items stay in place and cannot be dragged or focused.
	Locked bool
}

// NewItem returns an item with a fresh id.
func NewItem(label string) Item {
	return Item{ID: uuid.NewString(), Label: label}
}

// Source produces the initial items.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
	// Name describes the source for the status line.
	Name() string
}

// FromConfig picks the source: command line arguments first, then the
// configured file, directory or locate query, then the demo list.
func FromConfig(cfg config.SourceConfig, args []string) Source {
	limit := cfg.Limit
	switch {
	case len(args) > 0:
		return Args(args)
	case cfg.File != "":
		return File{Path: cfg.File, Limit: limit}
	case cfg.Dir != "":
		return Dir{Path: cfg.Dir, Limit: limit}
	case cfg.Locate != "":
		return Locate{Query: cfg.Locate, Limit: limit}
	}
	return Demo()
}

// Args is a fixed list of labels.
type Args []string

func (a Args) Name() string { return "arguments" }

func (a Args) Load(context.Context) ([]Item, error) {
	items := make([]Item, 0, len(a))
	for _, s := range a {
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, NewItem(s))
		}
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

// Demo returns the list shown when no source is configured.
func Demo() Args {
	return Args{
		"Grapefruit", "Yuzu", "Citron", "Kumquat", "Pomelo",
		"Bergamot", "Calamansi", "Finger lime", "Sudachi", "Tangelo",
	}
}

// File reads one item per line. Blank lines and lines starting with '#' are
// skipped; a line starting with "[x] " is loaded as done.
type File struct {
	Path  string
	Limit int
}

func (f File) Name() string { return filepath.Base(f.Path) }

func (f File) Load(ctx context.Context) ([]Item, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open item file: %w", err)
	}
	defer fh.Close()

	var items []Item
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		item := NewItem(line)
		if rest, ok := strings.CutPrefix(line, "[x] "); ok {
			item.Label, item.Done = rest, true
		} else if rest, ok := strings.CutPrefix(line, "[ ] "); ok {
			item.Label = rest
		}
		items = append(items, item)
		if f.Limit > 0 && len(items) >= f.Limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read item file: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

// Dir lists the direct children of a directory, sorted by name, with their
// size as detail.
type Dir struct {
	Path  string
	Limit int
}

func (d Dir) Name() string { return d.Path }

func (d Dir) Load(ctx context.Context) ([]Item, error) {
	root := filepath.Clean(d.Path)
	var (
		mu    sync.Mutex
		items []Item
	)
	conf := &fastwalk.Config{Follow: true}
	err := fastwalk.Walk(conf, root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if filepath.Dir(path) != root {
			if de.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}
		info, err := fastwalk.StatDirEntry(path, de)
		if err != nil {
			return nil
		}
		item := NewItem(de.Name())
		if info.IsDir() {
			item.Label += "/"
			item.Detail = "dir"
		} else {
			item.Detail = humanize.IBytes(uint64(info.Size()))
		}
		mu.Lock()
		items = append(items, item)
		mu.Unlock()
		if de.IsDir() {
			return fastwalk.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	slices.SortFunc(items, func(a, b Item) int { return strings.Compare(a.Label, b.Label) })
	if d.Limit > 0 && len(items) > d.Limit {
		items = items[:d.Limit]
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

// Locate runs plocate and turns every matching path into an item.
type Locate struct {
	Query string
	Limit int
	// Command overrides the executable; tests point it at a stub.
	Command string
}

func (l Locate) Name() string { return "plocate " + l.Query }

func (l Locate) Load(ctx context.Context) ([]Item, error) {
	bin := l.Command
	if bin == "" {
		bin = "plocate"
	}
	args := []string{l.Query}
	if l.Limit > 0 {
		args = append([]string{"-l", strconv.Itoa(l.Limit)}, args...)
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("plocate: %s: %w", msg, err)
		}
		if stdout.Len() == 0 {
			return nil, ErrNoItems
		}
		return nil, fmt.Errorf("plocate: %w", err)
	}

	var items []Item
	for _, line := range strings.Split(stdout.String(), "\n") {
		if line == "" {
			continue
		}
		item := NewItem(line)
		if info, err := os.Stat(line); err == nil && !info.IsDir() {
			item.Detail = humanize.IBytes(uint64(info.Size()))
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}
