package patcher

// FileSystem abstracts the file access a patch needs.
type FileSystem interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// OverwriteFile truncates an existing file and writes data to it.
	// It must not create the file when it does not exist.
	OverwriteFile(path string, data []byte) error
}
