package installer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ravi0900/linux-setup/internal/logger"
)

// fetchArchive resolves an archive reference to a local path. Plain paths
// are returned as-is; http(s) URLs are downloaded into the temp directory
// first so everything downstream only deals with local files.
func (ins *Installer) fetchArchive(ref string) (string, error) {
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return ref, nil
	}

	dest := filepath.Join(os.TempDir(), path.Base(ref))
	logger.Info("[INFO] Downloading %s to %s\n", ref, dest)

	resp, err := http.Get(ref)
	if err != nil {
		return "", fmt.Errorf("failed to GET %s: %w", ref, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download of %s failed: HTTP status %d", ref, resp.StatusCode)
	}

	out, err := ins.fs.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", dest, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded archive to %s\n", dest)
	return dest, nil
}
