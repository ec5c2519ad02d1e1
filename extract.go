package chromedriver

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
)

// extract decodes the in-memory zip payload into the destination directory,
// preserving the directory structure inside the archive. The release archive
// nests the executable under a directory named after the archive base, which
// is why the driver path contains that segment.
func (i *Installer) extract(payload []byte, destination string) (err error) {
	i.logdetail(fmt.Sprintf("extracting archive into %s", destination))

	start := time.Now()
	defer func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		if i.quiet {
			return
		}
		if err != nil {
			color.Red("     ✘ %s", elapsed)
			return
		}
		color.Green("     ✔ %s", elapsed)
	}()

	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return &ArchiveError{Err: err}
	}

	for _, file := range reader.File {
		target := filepath.Join(destination, file.Name)

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return &FilesystemError{Path: target, Err: err}
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return &FilesystemError{Path: filepath.Dir(target), Err: err}
		}

		if err := write(file, target); err != nil {
			return err
		}
	}

	return nil
}

// write copies a single archive entry to the target path.
func write(file *zip.File, target string) error {
	contents, err := file.Open()
	if err != nil {
		return &ArchiveError{Err: fmt.Errorf("failed to open %s: %w", file.Name, err)}
	}
	defer contents.Close()

	out, err := os.Create(target)
	if err != nil {
		return &FilesystemError{Path: target, Err: err}
	}
	defer out.Close()

	if _, err := io.Copy(out, contents); err != nil {
		return &ArchiveError{Err: fmt.Errorf("failed to copy %s: %w", file.Name, err)}
	}

	return nil
}
