package dose

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// StageTranslationSheet copies the translation workbook at src into destDir,
// named after the verse slug when one is known, and returns the staged path.
// The source is left untouched; each day gets its own copy to work in.
func StageTranslationSheet(src, destDir, slug string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("translation file not found: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create dose directory: %w", err)
	}

	name := filepath.Base(src)
	if slug != "" {
		name = slug + filepath.Ext(src)
	}
	dest := filepath.Join(destDir, name)

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create staged workbook: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("failed to copy translation file: %w", err)
	}
	return dest, nil
}

// OpenSpreadsheet launches the staged workbook in LibreOffice Calc. The
// executable can be overridden with LIBREOFFICE_EXE.
func OpenSpreadsheet(path string) error {
	exe := os.Getenv("LIBREOFFICE_EXE")
	if exe == "" {
		exe = "libreoffice"
	}
	if err := exec.Command(exe, "--calc", path).Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
