package patcher

import (
	"fmt"
	"os"
)

// OSFileSystem implements FileSystem using the real filesystem.
type OSFileSystem struct{}

var _ FileSystem = (*OSFileSystem)(nil)

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// OverwriteFile opens path without O_CREATE so the file keeps its mode and
// a vanished target is reported instead of recreated.
func (OSFileSystem) OverwriteFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return nil
}
