// Package banner renders the optional startup banners. Each variant prefers
// an external renderer script at the conventional path when one is present
// (invoked by path, result ignored) and falls back to an in-process
// rendering otherwise.
package banner

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/cneate93/btdoctor/assets"
)

const asciiArt = `
 _     _      _            _
| |__ | |_ __| | ___   ___| |_ ___  _ __
| '_ \| __/ _` + "`" + ` |/ _ \ / __| __/ _ \| '__|
| |_) | || (_| | (_) | (__| || (_) | |
|_.__/ \__\__,_|\___/ \___|\__\___/|_|
       offline Bluetooth troubleshooter
`

// ASCII returns the plain-text banner, or runs the external ASCII renderer
// when one is installed alongside the binary.
func ASCII() string {
	if runExternal(filepath.Join("banners", "ascii_banner.py")) {
		return ""
	}
	return asciiArt
}

// ANSI returns the colorized banner, or runs the external renderer when one
// is installed.
func ANSI() string {
	if runExternal(filepath.Join("banners", "ansi_banner.sh")) {
		return ""
	}
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		Render("btdoctor")
	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render("offline Bluetooth troubleshooter")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(0, 3)
	return box.Render(title + "\n" + subtitle)
}

// OpenHTMLPreview writes the embedded HTML banner to a temporary file and
// opens it in the default browser.
func OpenHTMLPreview() error {
	path := filepath.Join(os.TempDir(), "btdoctor-banner.html")
	if err := os.WriteFile(path, assets.BannerHTML, 0o644); err != nil {
		return err
	}
	return openInBrowser(path)
}

// runExternal invokes a banner renderer script by path and ignores its
// result. Reports whether a script existed to run.
func runExternal(script string) bool {
	if _, err := os.Stat(script); err != nil {
		return false
	}
	cmd := exec.Command(interpreterFor(script), script)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	_ = cmd.Run()
	return true
}

func interpreterFor(script string) string {
	switch filepath.Ext(script) {
	case ".py":
		if runtime.GOOS == "windows" {
			return "python"
		}
		return "python3"
	case ".sh":
		return "bash"
	default:
		return "sh"
	}
}

func openInBrowser(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}
