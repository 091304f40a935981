// Package provider installs template packs from remote sources into
// the local packs directory, where the scanner picks them up as an
// additional templates root.
package provider

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unjucks/unjucks/internal/debug"
)

// PackRef references a remote template pack.
type PackRef struct {
	// Provider is the provider name (only "github" is supported).
	Provider string
	// Owner is the repository owner.
	Owner string
	// Repo is the repository name.
	Repo string
	// Path is the subdirectory within the repository holding the
	// templates root (optional).
	Path string
	// Ref is the branch, tag, or commit SHA.
	Ref string
}

// DirName returns the directory name a pack installs under.
func (r PackRef) DirName() string {
	name := r.Owner + "--" + r.Repo
	if r.Path != "" {
		name += "--" + strings.ReplaceAll(r.Path, "/", "-")
	}
	return name
}

// String returns a human-readable pack reference.
func (r PackRef) String() string {
	url := "github.com/" + r.Owner + "/" + r.Repo
	if r.Path != "" {
		url += "/" + r.Path
	}
	if r.Ref != "" && r.Ref != "main" {
		url += "@" + r.Ref
	}
	return url
}

// Pack describes an installed template pack.
type Pack struct {
	// Name is the pack directory name.
	Name string
	// Path is the absolute path to the pack's templates root.
	Path string
}

// Installer fetches remote packs into a local directory.
type Installer interface {
	// Install downloads and extracts a pack. Returns the install path.
	Install(ctx context.Context, ref PackRef) (string, error)
}

// ListPacks returns the packs installed under packsDir, sorted by
// name. A missing directory yields an empty list.
func ListPacks(packsDir string) ([]Pack, error) {
	entries, err := os.ReadDir(packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewFetchError("local", packsDir, err)
	}

	var packs []Pack
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		packs = append(packs, Pack{
			Name: entry.Name(),
			Path: filepath.Join(packsDir, entry.Name()),
		})
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].Name < packs[j].Name })
	debug.Debug("[provider] Found %d installed pack(s) in %s", len(packs), packsDir)
	return packs, nil
}
