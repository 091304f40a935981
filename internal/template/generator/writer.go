package generator

import (
	"os"
	"path/filepath"

	"github.com/unjucks/unjucks/internal/debug"
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile writes content to a file with the given permissions.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parents.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	preserveExecutable bool
}

// NewFileWriter creates a new FileWriter. If preserveExecutable is
// true, executable bits from the template source are kept; otherwise
// files are created 0644.
func NewFileWriter(preserveExecutable bool) Writer {
	return &FileWriter{preserveExecutable: preserveExecutable}
}

// WriteFile writes content atomically via a temporary file and rename,
// creating parent directories as needed.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return err
		}
	}

	fileMode := mode & os.ModePerm
	if !w.preserveExecutable {
		fileMode = 0o644
	} else if fileMode&0o600 == 0 {
		// Ensure at least read/write for owner.
		fileMode |= 0o600
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return NewWriteError(path, err)
	}

	_, writeErr := f.Write(content)
	closeErr := f.Close()

	if writeErr != nil {
		_ = os.Remove(tempFile)
		return NewWriteError(path, writeErr)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return NewWriteError(path, closeErr)
	}

	// Mode on OpenFile is masked by umask; enforce the requested bits.
	if err := os.Chmod(tempFile, fileMode); err != nil {
		_ = os.Remove(tempFile)
		return NewWriteError(path, err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return NewWriteError(path, err)
	}

	return nil
}

// CreateDir creates a directory and any necessary parents with 0755.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return NewWriteError(path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
