package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const desktopFileName = "beezer.desktop"

// Desktop installs a freedesktop.org launcher entry.
type Desktop struct {
	// Path of the .desktop file. Empty selects the XDG applications dir.
	Path string
	// Exec is the command the launcher runs.
	Exec string
	Name string
}

// Verify Desktop implements Detector and Installer at compile time.
var (
	_ Detector  = (*Desktop)(nil)
	_ Installer = (*Desktop)(nil)
)

func (d *Desktop) path() (string, error) {
	if d.Path != "" {
		return d.Path, nil
	}
	return xdg.DataFile(filepath.Join("applications", desktopFileName))
}

// Available reports true when no launcher has been installed yet.
func (d *Desktop) Available(_ context.Context) (bool, error) {
	path, err := d.path()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, err
}

// Install writes the launcher entry.
func (d *Desktop) Install() error {
	path, err := d.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create applications dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(d.entry()), 0o644); err != nil { //nolint:gosec // desktop entries are world-readable
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (d *Desktop) entry() string {
	name := d.Name
	if name == "" {
		name = "Beezer"
	}
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", name)
	fmt.Fprintf(&b, "Exec=%s\n", quoteExec(d.Exec))
	b.WriteString("Terminal=true\n")
	b.WriteString("Categories=AudioVideo;Audio;\n")
	return b.String()
}

var (
	execArgEscaper   = strings.NewReplacer(`"`, `\"`, "`", "\\`", `$`, `\$`, `\`, `\\`)
	execValueEscaper = strings.NewReplacer(`\`, `\\`, `%`, `%%`)
)

// quoteExec renders path as a single quoted Exec argument. Reserved
// characters are escaped for the argument and then for the string value.
func quoteExec(path string) string {
	return execValueEscaper.Replace(`"` + execArgEscaper.Replace(path) + `"`)
}
