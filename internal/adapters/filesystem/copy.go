package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"wemtool/internal/domain"
)

// CopyFile copies src to dst byte for byte, keeping the permission bits and
// modification time. A missing source yields an error matching
// domain.ErrSourceMissing; any other failure is a *domain.CopyError.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if isNotExist(err) {
			return fmt.Errorf("%s: %w", src, domain.ErrSourceMissing)
		}
		return &domain.CopyError{Source: src, Destination: dst, Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return &domain.CopyError{Source: src, Destination: dst, Err: err}
	}
	if info.IsDir() {
		return &domain.CopyError{Source: src, Destination: dst, Err: errors.New("source is a directory")}
	}

	dir := filepath.Dir(dst)
	// Directories are normally created before dispatch; MkdirAll is a no-op then.
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &domain.CopyError{Source: src, Destination: dst, Err: err}
	}

	// Readers of dst see the old file or the complete new one, never a mix
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return &domain.CopyError{Source: src, Destination: dst, Err: err}
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.CopyError{Source: src, Destination: dst, Err: err}
	}

	if _, err := io.Copy(tmp, in); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return fail(err)
	}
	if err := os.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return fail(err)
	}
	return nil
}
