package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Disk is a Medium backed by diskv, one file per key under a base directory.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

var _ Medium = (*Disk)(nil)
var _ Watcher = (*Disk)(nil)

// NewDisk opens (lazily creating) the medium rooted at basePath.
func NewDisk(basePath string) *Disk {
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// Other processes write the same files; a read cache would
			// serve stale sessions.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}
}

// BasePath returns the directory holding the medium's files.
func (p *Disk) BasePath() string {
	return p.basePath
}

// Path returns the file that stores key.
func (p *Disk) Path(key string) string {
	pk := keyToPathTransform(key)
	return filepath.Join(append([]string{p.basePath}, append(pk.Path, pk.FileName)...)...)
}

func (p *Disk) Get(key string) (string, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), nil
}

func (p *Disk) Set(key, value string) error {
	if key == "" {
		return errors.New("store: key required")
	}
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *Disk) Remove(key string) error {
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *Disk) Keys(ctx context.Context) []string {
	if _, err := os.Stat(p.basePath); err != nil {
		return nil
	}
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// maxNameLen keeps every path element under the common 255 byte limit.
const maxNameLen = 200

// dirMark ends every directory element of a split key. It is outside the
// base64url alphabet, so a directory never shares a name with a key's file.
const dirMark = "~"

// keyToPathTransform encodes every key as base64 so identity ids containing
// '@', '/' or '.' stay filesystem safe. Encodings longer than maxNameLen are
// split into nested directories. Watched keys are short and stay at the top
// level.
func keyToPathTransform(s string) *diskv.PathKey {
	name := base64.RawURLEncoding.EncodeToString([]byte(s))
	path := []string{}
	for len(name) > maxNameLen {
		path = append(path, name[:maxNameLen]+dirMark)
		name = name[maxNameLen:]
	}
	return &diskv.PathKey{
		Path:     path,
		FileName: name,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	var b strings.Builder
	for _, dir := range pathKey.Path {
		part, ok := strings.CutSuffix(dir, dirMark)
		if !ok || len(part) != maxNameLen {
			return ""
		}
		b.WriteString(part)
	}
	b.WriteString(pathKey.FileName)
	key, err := base64.RawURLEncoding.DecodeString(b.String())
	if err != nil {
		// Foreign files in the directory (logs, temp files) are not keys.
		return ""
	}
	return string(key)
}
