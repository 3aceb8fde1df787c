package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/theirongolddev/ccb/internal/model"
)

// ReadFile loads every benefit from the JSON file at path.
//
// A missing file yields an empty collection and ErrNoDataFile. An unreadable
// or malformed file yields an empty collection and a *LoadError. The returned
// collection is never nil.
func ReadFile(path string) (*model.Benefits, error) {
	f, err := os.Open(path) //nolint:gosec // path is user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NewBenefits(), fmt.Errorf("%w: %s", ErrNoDataFile, path)
		}
		return model.NewBenefits(), &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.NewBenefits(), &LoadError{Path: path, Err: err}
	}

	bs := model.NewBenefits()
	if err := json.Unmarshal(data, bs); err != nil {
		return model.NewBenefits(), &LoadError{Path: path, Err: err, Malformed: true}
	}
	return bs, nil
}

// WriteFile overwrites path with the whole collection, pretty-printed with a
// four-space indent in insertion order. Missing parent directories are created.
func WriteFile(path string, bs *model.Benefits) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(bs); err != nil {
		return &SaveError{Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return &SaveError{Path: path, Err: fmt.Errorf("creating data dir: %w", err)}
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // user data file, not secret
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return &SaveError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// backupFile copies src to dst, replacing dst.
func backupFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // path is user configuration
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // copy of user data file
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
