// Package scanner discovers generators and templates under a templates
// root and loads template files and their unjucks.yaml configuration.
package scanner

import (
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// Scanner discovers templates on the local filesystem.
type Scanner struct {
	// Root is the absolute path to the templates root directory.
	Root string
}

// New creates a Scanner for the given templates root.
func New(root string) *Scanner {
	return &Scanner{Root: root}
}

// ResolveRoot locates a templates root. When override is non-empty it
// is used directly; otherwise the default directory name is searched
// in startDir and each parent.
func ResolveRoot(startDir, override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", NewRootError(override, err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return "", NewRootNotFoundError(override)
		}
		return abs, nil
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", NewRootError(startDir, err)
	}

	for {
		candidate := filepath.Join(dir, model.TemplatesDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			debug.Debug("[scanner] Found templates root: %s", candidate)
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", NewRootNotFoundError(model.TemplatesDirName)
		}
		dir = parent
	}
}

// ListGenerators returns all generators under the root, sorted by name.
func (s *Scanner) ListGenerators() ([]model.Generator, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, NewRootError(s.Root, err)
	}

	var generators []model.Generator
	for _, entry := range entries {
		if !entry.IsDir() || isHiddenName(entry.Name()) {
			continue
		}

		gen, err := s.LoadGenerator(entry.Name())
		if err != nil {
			return nil, err
		}
		generators = append(generators, *gen)
	}

	sort.Slice(generators, func(i, j int) bool {
		return generators[i].Name < generators[j].Name
	})

	debug.Debug("[scanner] Found %d generators under %s", len(generators), s.Root)
	return generators, nil
}

// LoadGenerator loads a single generator and its template names.
func (s *Scanner) LoadGenerator(name string) (*model.Generator, error) {
	genPath := filepath.Join(s.Root, name)
	info, err := os.Stat(genPath)
	if err != nil || !info.IsDir() {
		return nil, NewGeneratorNotFoundError(name)
	}

	entries, err := os.ReadDir(genPath)
	if err != nil {
		return nil, NewScanError(genPath, err)
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() && !isHiddenName(entry.Name()) {
			templates = append(templates, entry.Name())
		}
	}
	sort.Strings(templates)

	config, err := s.loadConfig(genPath)
	if err != nil {
		return nil, err
	}

	return &model.Generator{
		Name:      name,
		Path:      genPath,
		Templates: templates,
		Config:    config,
	}, nil
}

// LoadTemplate loads a template with its files and effective config
// (template-level unjucks.yaml merged over the generator-level one).
func (s *Scanner) LoadTemplate(generator, name string) (*model.Template, error) {
	gen, err := s.LoadGenerator(generator)
	if err != nil {
		return nil, err
	}

	tplPath := filepath.Join(gen.Path, name)
	info, err := os.Stat(tplPath)
	if err != nil || !info.IsDir() {
		return nil, NewTemplateNotFoundError(generator, name)
	}

	tplConfig, err := s.loadConfig(tplPath)
	if err != nil {
		return nil, err
	}

	effective := model.TemplateConfig{}
	if gen.Config != nil {
		effective = *gen.Config
	}
	if tplConfig != nil {
		effective = effective.Merge(*tplConfig)
	}

	settings := effective.EffectiveSettings()
	files, err := s.collectFiles(tplPath, settings)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, NewEmptyTemplateError(generator, name)
	}

	debug.Debug("[scanner] Loaded template %s/%s: %d files", generator, name, len(files))
	return &model.Template{
		Generator: generator,
		Name:      name,
		RootPath:  tplPath,
		Files:     files,
		Config:    effective,
	}, nil
}

// loadConfig reads unjucks.yaml from dir if present. Returns nil when
// the file does not exist.
func (s *Scanner) loadConfig(dir string) (*model.TemplateConfig, error) {
	path := filepath.Join(dir, model.TemplateConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewScanError(path, err)
	}

	var config model.TemplateConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, NewConfigParseError(path, err)
	}

	debug.Debug("[scanner] Loaded config %s: %d variables", path, len(config.Variables))
	return &config, nil
}

// isHiddenName reports whether a directory entry should be excluded
// from discovery.
func isHiddenName(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
