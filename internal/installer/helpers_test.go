package installer

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ravi0900/linux-setup/internal/config"
)

// newTestInstaller builds an Installer over an in-memory filesystem with
// prompt answers scripted from input.
func newTestInstaller(input string) (*Installer, afero.Fs) {
	fs := afero.NewMemMapFs()
	settings := config.Settings{
		Shell:           "bash",
		ProfileFile:     "/home/dev/.profile",
		RCFile:          "/home/dev/.bashrc",
		ApplicationsDir: "/usr/share/applications",
	}
	return New(fs, strings.NewReader(input), settings), fs
}

// archiveFile is one entry of a test archive. A trailing slash in name marks
// a directory. mode defaults to 0644 when zero.
type archiveFile struct {
	name string
	body string
	mode int64
}

func writeTarGz(t *testing.T, fs afero.Fs, path string, files []archiveFile) {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for _, f := range files {
		mode := f.mode
		if mode == 0 {
			mode = 0644
		}
		hdr := &tar.Header{
			Name:     f.name,
			Mode:     mode,
			Size:     int64(len(f.body)),
			Typeflag: tar.TypeReg,
		}
		if strings.HasSuffix(f.name, "/") {
			hdr.Typeflag = tar.TypeDir
			hdr.Size = 0
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write tar header %s: %v", f.name, err)
		}
		if hdr.Typeflag == tar.TypeReg {
			if _, err := tw.Write([]byte(f.body)); err != nil {
				t.Fatalf("write tar body %s: %v", f.name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write archive %s: %v", path, err)
	}
}

func writeZip(t *testing.T, fs afero.Fs, path string, files []archiveFile) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		mode := f.mode
		if mode == 0 {
			mode = 0644
		}
		hdr := &zip.FileHeader{Name: f.name, Method: zip.Deflate}
		hdr.SetMode(os.FileMode(mode))
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", f.name, err)
		}
		if _, err := w.Write([]byte(f.body)); err != nil {
			t.Fatalf("write zip entry %s: %v", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write archive %s: %v", path, err)
	}
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func exists(fs afero.Fs, path string) bool {
	ok, _ := afero.Exists(fs, path)
	return ok
}
