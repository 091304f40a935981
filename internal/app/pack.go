package app

import (
	"context"

	"github.com/unjucks/unjucks/internal/config"
	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/provider"
)

// PackAddOptions contains options for installing a template pack.
type PackAddOptions struct {
	// URL is the pack reference (owner/repo, GitHub URL, or SSH URL).
	URL string
	// PacksDir is where packs install. Defaults to ~/.unjucks/packs.
	PacksDir string
}

// PackAdd downloads and installs a template pack.
func PackAdd(ctx context.Context, opts PackAddOptions) (*provider.Pack, error) {
	ref, err := provider.ParsePackURL(opts.URL)
	if err != nil {
		return nil, NewPackError("invalid pack reference", err)
	}

	packsDir := opts.PacksDir
	if packsDir == "" {
		packsDir = config.DefaultPacksDir()
	}
	if packsDir == "" {
		return nil, NewPackError("cannot determine packs directory", nil)
	}

	installer := provider.NewGitHubInstaller(packsDir)
	path, err := installer.Install(ctx, ref)
	if err != nil {
		return nil, NewPackError("failed to install pack", err)
	}

	debug.Debug("[app] Installed pack %s", ref.String())
	return &provider.Pack{Name: ref.DirName(), Path: path}, nil
}

// PackList returns the installed packs.
func PackList(packsDir string) ([]provider.Pack, error) {
	if packsDir == "" {
		packsDir = config.DefaultPacksDir()
	}
	if packsDir == "" {
		return nil, NewPackError("cannot determine packs directory", nil)
	}

	packs, err := provider.ListPacks(packsDir)
	if err != nil {
		return nil, NewPackError("failed to list packs", err)
	}
	return packs, nil
}
