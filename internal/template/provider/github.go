package provider

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/unjucks/unjucks/internal/debug"
)

const (
	tarballURLFormat = "https://github.com/%s/%s/archive/%s.tar.gz"
	downloadTimeout  = 120 * time.Second
)

// GitHubInstaller downloads packs from GitHub as tarballs. It uses a
// token from the environment when one is available, which is required
// for private repositories and helps with rate limits.
type GitHubInstaller struct {
	// PacksDir is the directory packs install into.
	PacksDir string

	client *http.Client
}

// NewGitHubInstaller returns an installer targeting packsDir.
func NewGitHubInstaller(packsDir string) *GitHubInstaller {
	return &GitHubInstaller{
		PacksDir: packsDir,
		client:   &http.Client{Timeout: downloadTimeout},
	}
}

// Install downloads the pack tarball and extracts it into the packs
// directory, replacing any previous install of the same pack.
func (g *GitHubInstaller) Install(ctx context.Context, ref PackRef) (string, error) {
	debug.Debug("[provider] Installing pack %s", ref.String())

	tarPath, err := g.download(ctx, ref)
	if err != nil {
		return "", err
	}
	defer os.Remove(tarPath)

	installPath := filepath.Join(g.PacksDir, ref.DirName())

	// Extract into a staging directory first so a failed extraction
	// never clobbers a working install.
	staging, err := os.MkdirTemp(g.PacksDir, ".pack-*")
	if err != nil {
		if mkErr := os.MkdirAll(g.PacksDir, 0755); mkErr != nil {
			return "", NewFetchError("github", ref.String(), mkErr)
		}
		staging, err = os.MkdirTemp(g.PacksDir, ".pack-*")
		if err != nil {
			return "", NewFetchError("github", ref.String(), err)
		}
	}
	defer os.RemoveAll(staging)

	if err := extractTarGz(tarPath, staging, ref.Path); err != nil {
		return "", err
	}

	if err := os.RemoveAll(installPath); err != nil {
		return "", NewFetchError("github", ref.String(), err)
	}
	if err := os.Rename(staging, installPath); err != nil {
		return "", NewFetchError("github", ref.String(), err)
	}

	debug.Debug("[provider] Installed pack to %s", installPath)
	return installPath, nil
}

func (g *GitHubInstaller) download(ctx context.Context, ref PackRef) (string, error) {
	url := fmt.Sprintf(tarballURLFormat, ref.Owner, ref.Repo, ref.Ref)
	debug.Debug("[provider] Downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", NewFetchError("github", url, err)
	}
	if token := githubToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", NewFetchError("github", url, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", NewNotFoundError("github", ref.String())
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", NewAuthError("github", ref.String())
	default:
		return "", NewFetchError("github", url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	tmp, err := os.CreateTemp("", "unjucks-pack-*.tar.gz")
	if err != nil {
		return "", NewFetchError("github", url, err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", NewFetchError("github", url, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", NewFetchError("github", url, err)
	}
	return tmp.Name(), nil
}

// extractTarGz unpacks the archive into dest. GitHub tarballs wrap the
// repository in a single root directory which is stripped. When subdir
// is non-empty, only entries under that repository subdirectory are
// extracted, rooted at dest.
func extractTarGz(tarPath, dest, subdir string) error {
	f, err := os.Open(tarPath)
	if err != nil {
		return NewFetchError("github", tarPath, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return NewInvalidTemplateError(tarPath, fmt.Errorf("not a gzip archive: %w", err))
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	extracted := 0

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return NewInvalidTemplateError(tarPath, err)
		}

		rel := stripRootDir(hdr.Name)
		if rel == "" {
			continue
		}
		if subdir != "" {
			prefix := strings.TrimSuffix(subdir, "/") + "/"
			if !strings.HasPrefix(rel, prefix) {
				continue
			}
			rel = strings.TrimPrefix(rel, prefix)
			if rel == "" {
				continue
			}
		}

		target := filepath.Join(dest, filepath.FromSlash(rel))
		if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
			return NewInvalidTemplateError(tarPath, fmt.Errorf("archive entry escapes destination: %s", hdr.Name))
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return NewFetchError("github", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return NewFetchError("github", target, err)
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(hdr.Mode)&0777)
			if err != nil {
				return NewFetchError("github", target, err)
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return NewFetchError("github", target, err)
			}
			if err := out.Close(); err != nil {
				return NewFetchError("github", target, err)
			}
			extracted++
		}
	}

	if extracted == 0 {
		return NewInvalidTemplateError(tarPath, fmt.Errorf("archive contains no files under %q", subdir))
	}
	debug.Debug("[provider] Extracted %d file(s)", extracted)
	return nil
}

// stripRootDir removes the leading tarball root directory from an
// archive entry name.
func stripRootDir(name string) string {
	name = strings.TrimPrefix(name, "./")
	parts := strings.SplitN(name, "/", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// githubToken resolves an auth token from the environment, preferring
// GITHUB_TOKEN, then GH_TOKEN, then the gh CLI's stored credential.
func githubToken() string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}
	out, err := exec.Command("gh", "auth", "token").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
