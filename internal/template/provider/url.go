package provider

import (
	"fmt"
	"strings"
)

// ParsePackURL parses a pack reference in any of the accepted forms:
//
//	owner/repo
//	owner/repo/sub/dir
//	owner/repo@ref
//	github.com/owner/repo[/sub/dir][@ref]
//	https://github.com/owner/repo
//	https://github.com/owner/repo/tree/ref/sub/dir
//	git@github.com:owner/repo.git
//
// The ref defaults to "main" when not given.
func ParsePackURL(raw string) (PackRef, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PackRef{}, NewInvalidURLError(raw, fmt.Errorf("empty pack reference"))
	}

	// SSH form: git@github.com:owner/repo.git
	if strings.HasPrefix(s, "git@github.com:") {
		rest := strings.TrimPrefix(s, "git@github.com:")
		rest = strings.TrimSuffix(rest, ".git")
		return parseOwnerRepoPath(raw, rest)
	}

	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")

	if strings.HasPrefix(s, "github.com/") {
		rest := strings.TrimPrefix(s, "github.com/")
		rest = strings.TrimSuffix(rest, ".git")

		// Browser URL form with an explicit branch segment.
		if parts := strings.SplitN(rest, "/", 4); len(parts) >= 3 && parts[2] == "tree" {
			if len(parts) < 4 || parts[3] == "" {
				return PackRef{}, NewInvalidURLError(raw, fmt.Errorf("tree URL is missing a branch"))
			}
			branchAndPath := strings.SplitN(parts[3], "/", 2)
			ref := PackRef{
				Provider: "github",
				Owner:    parts[0],
				Repo:     parts[1],
				Ref:      branchAndPath[0],
			}
			if len(branchAndPath) == 2 {
				ref.Path = strings.Trim(branchAndPath[1], "/")
			}
			return ref, nil
		}

		return parseOwnerRepoPath(raw, rest)
	}

	// Shorthand: owner/repo[/sub/dir][@ref]
	return parseOwnerRepoPath(raw, s)
}

func parseOwnerRepoPath(raw, s string) (PackRef, error) {
	ref := PackRef{Provider: "github", Ref: "main"}

	if at := strings.LastIndex(s, "@"); at >= 0 {
		ref.Ref = s[at+1:]
		s = s[:at]
		if ref.Ref == "" {
			return PackRef{}, NewInvalidURLError(raw, fmt.Errorf("empty ref after @"))
		}
	}

	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return PackRef{}, NewInvalidURLError(raw, fmt.Errorf("expected owner/repo, got %q", s))
	}

	ref.Owner = parts[0]
	ref.Repo = strings.TrimSuffix(parts[1], ".git")
	if len(parts) > 2 {
		ref.Path = strings.Join(parts[2:], "/")
	}
	return ref, nil
}
