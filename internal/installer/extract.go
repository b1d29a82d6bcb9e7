package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"bytes"
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/spf13/afero"
	"github.com/xi2/xz" // For reading .xz compressed data

	"github.com/ravi0900/linux-setup/internal/logger"
)

// extractArchive routes to the appropriate extraction function based on the
// archive filename. When stripTop is true the single leading path component
// of every entry is discarded so the archive contents land directly in dest.
func (ins *Installer) extractArchive(src, dest string, stripTop bool) error {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] compression type is zip\n")
		return ins.extractZip(src, dest, stripTop)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] compression type is .7z\n")
		return ins.extract7z(src, dest, stripTop)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] compression type is .tar.*\n")
		return ins.extractTarArchive(src, dest, stripTop)
	default:
		return fmt.Errorf("unsupported archive format: %s", src)
	}
}

// stripTopComponent drops the leading directory level from an archive entry
// name. The empty result for single-component names (the top-level directory
// entry itself) tells the caller to skip the entry.
func stripTopComponent(name string) string {
	parts := strings.SplitN(strings.TrimPrefix(name, "./"), "/", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// extractTarArchive handles tar and compressed tar variants.
func (ins *Installer) extractTarArchive(src, dest string, stripTop bool) error {
	logger.Debug("[DEBUG] uncompressing %s to %s\n", src, dest)
	f, err := ins.fs.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break // End of archive
		}
		if err != nil {
			return err
		}

		name := hdr.Name
		if stripTop {
			if name = stripTopComponent(name); name == "" {
				continue
			}
		}

		target, err := joinEntry(dest, name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := ins.fs.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := ins.writeEntry(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			// MemMapFs cannot hold symlinks; skip rather than fail there.
			if linker, ok := ins.fs.(afero.Linker); ok {
				if err := linker.SymlinkIfPossible(hdr.Linkname, target); err != nil && !os.IsExist(err) {
					return err
				}
			} else {
				logger.Debug("[DEBUG] filesystem cannot create symlink %s -> %s, skipping\n", target, hdr.Linkname)
			}
		}
	}
	return nil
}

// extractZip extracts a .zip archive.
func (ins *Installer) extractZip(src, dest string, stripTop bool) error {
	data, err := afero.ReadFile(ins.fs, src)
	if err != nil {
		return err
	}
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}

	for _, f := range r.File {
		name := f.Name
		if stripTop {
			if name = stripTopComponent(name); name == "" {
				continue
			}
		}
		target, err := joinEntry(dest, name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := ins.fs.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = ins.writeEntry(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// extract7z handles .7z extraction using the sevenzip library.
func (ins *Installer) extract7z(src, dest string, stripTop bool) error {
	data, err := afero.ReadFile(ins.fs, src)
	if err != nil {
		return fmt.Errorf("failed to open 7z archive: %w", err)
	}
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to open 7z archive: %w", err)
	}

	for _, f := range r.File {
		name := f.Name
		if stripTop {
			if name = stripTopComponent(name); name == "" {
				continue
			}
		}
		target, err := joinEntry(dest, name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := ins.fs.MkdirAll(target, f.Mode()); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = ins.writeEntry(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// joinEntry maps a slash-separated archive entry name onto a path under
// dest. An entry whose cleaned path escapes dest (a `..` traversal) is
// rejected so a hostile archive cannot write outside the target.
func joinEntry(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if target != dest && !strings.HasPrefix(target, dest+string(filepath.Separator)) {
		return "", fmt.Errorf("archive entry %s escapes %s", name, dest)
	}
	return target, nil
}

// writeEntry writes one extracted file, creating parent directories and
// preserving the entry's permission bits so IDE launch scripts stay
// executable.
func (ins *Installer) writeEntry(target string, r io.Reader, mode os.FileMode) error {
	if err := ins.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	out, err := ins.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return ins.fs.Chmod(target, mode.Perm())
}
