package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// collectFiles recursively collects all files in the template
// directory. Excludes the unjucks.yaml config file.
func (s *Scanner) collectFiles(templateRoot string, settings model.TemplateSettings) ([]model.TemplateFile, error) {
	var files []model.TemplateFile
	var totalBytes int64

	includeDotfiles := settings.IncludeDotfiles == nil || *settings.IncludeDotfiles

	err := filepath.Walk(templateRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Broken symlinks surface here from Lstat; skip them
			// instead of failing the whole scan.
			if os.IsNotExist(err) {
				debug.Debug("[scanner] Skipping broken symlink: %s", path)
				return nil
			}
			return err
		}

		relPath, relErr := filepath.Rel(templateRoot, path)
		if relErr != nil {
			return relErr
		}

		if info.IsDir() {
			if path != templateRoot && !includeDotfiles && isHiddenName(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			debug.Debug("[scanner] Skipping non-regular file: %s", path)
			return nil
		}

		if filepath.Base(path) == model.TemplateConfigFile {
			return nil
		}
		if !includeDotfiles && isHiddenName(info.Name()) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return NewScanError(relPath, err)
		}

		files = append(files, model.TemplateFile{
			Path:     filepath.ToSlash(relPath),
			Content:  content,
			Mode:     info.Mode(),
			IsBinary: isBinaryFile(relPath, content, settings.BinaryExtensions),
		})
		totalBytes += int64(len(content))
		return nil
	})

	if err != nil {
		return nil, err
	}

	debug.Debug("[scanner] Collected %d files, total size: %d bytes", len(files), totalBytes)
	return files, nil
}

// isBinaryFile reports whether a file must be copied verbatim, either
// by extension or by content sniffing.
func isBinaryFile(path string, content []byte, binaryExtensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, binaryExt := range binaryExtensions {
		if ext == binaryExt {
			return true
		}
	}
	return isBinaryContent(content)
}

// isBinaryContent checks the first 512 bytes for null bytes.
func isBinaryContent(content []byte) bool {
	checkLen := len(content)
	if checkLen > 512 {
		checkLen = 512
	}
	return bytes.IndexByte(content[:checkLen], 0) != -1
}
