package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/llamactl/llamactl/internal/errors"
)

const (
	// releasesURL is the GitHub API endpoint for ollama releases.
	releasesURL = "https://api.github.com/repos/ollama/ollama/releases/latest"

	// releaseCacheTTL is how long a release check result stays fresh.
	releaseCacheTTL = 24 * time.Hour

	// releaseCheckTimeout bounds the GitHub API call so commands never hang
	// on a flaky network.
	releaseCheckTimeout = 3 * time.Second

	// installScriptURL is ollama's official Linux installer.
	installScriptURL = "https://ollama.com/install.sh"
)

// githubRelease holds the fields we use from GitHub's release API.
type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// releaseCache stores a cached release check.
type releaseCache struct {
	LatestVersion string    `json:"latest_version"`
	CheckedAt     time.Time `json:"checked_at"`
}

// Installer detects, installs, and updates the ollama binary.
type Installer struct {
	runner *Runner
	http   *http.Client
}

// NewInstaller creates an Installer around the given runner.
func NewInstaller(runner *Runner) *Installer {
	return &Installer{
		runner: runner,
		http:   &http.Client{Timeout: releaseCheckTimeout},
	}
}

// cachePath returns the release check cache file location, honoring
// XDG_CACHE_HOME.
func cachePath() (string, error) {
	dir := os.Getenv("XDG_CACHE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".cache")
	}
	return filepath.Join(dir, "llamactl", "release-check"), nil
}

func readReleaseCache() (*releaseCache, error) {
	path, err := cachePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cache releaseCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

func writeReleaseCache(cache *releaseCache) error {
	path, err := cachePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LatestVersion returns the newest released ollama version, using the cache
// when fresh. Returns "" (no error) when checks are disabled or the network
// is unavailable - an update notice is never worth failing a command for.
func (i *Installer) LatestVersion(ctx context.Context) string {
	if os.Getenv("LLAMACTL_NO_UPDATE_CHECK") == "1" {
		return ""
	}

	if cache, err := readReleaseCache(); err == nil && time.Since(cache.CheckedAt) < releaseCacheTTL {
		return cache.LatestVersion
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "llamactl")

	resp, err := i.http.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return ""
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = writeReleaseCache(&releaseCache{LatestVersion: latest, CheckedAt: time.Now()})
	return latest
}

// IsNewerVersion reports whether latest is strictly newer than current,
// comparing dotted numeric components. Unknown or dev versions never trigger
// an update notice.
func IsNewerVersion(current, latest string) bool {
	current = strings.TrimPrefix(current, "v")
	latest = strings.TrimPrefix(latest, "v")

	if current == "" || current == "dev" || current == "unknown" || latest == "" {
		return false
	}

	cur := strings.Split(current, ".")
	lat := strings.Split(latest, ".")
	for i := 0; i < len(cur) || i < len(lat); i++ {
		c, l := 0, 0
		if i < len(cur) {
			c, _ = strconv.Atoi(cur[i])
		}
		if i < len(lat) {
			l, _ = strconv.Atoi(lat[i])
		}
		if l != c {
			return l > c
		}
	}
	return false
}

// InstallCommand returns the platform's install command and whether this
// platform supports scripted installation at all.
func InstallCommand() (name string, args []string, ok bool) {
	switch runtime.GOOS {
	case "linux":
		return "sh", []string{"-c", "curl -fsSL " + installScriptURL + " | sh"}, true
	case "darwin":
		return "brew", []string{"install", "ollama"}, true
	default:
		return "", nil, false
	}
}

// Install runs the platform installer, streaming its output. The same command
// performs updates: the install script and brew both upgrade in place.
func (i *Installer) Install(ctx context.Context, stdout, stderr io.Writer) error {
	name, args, ok := InstallCommand()
	if !ok {
		return errors.New(errors.ErrOllama,
			fmt.Sprintf("No scripted installer for %s", runtime.GOOS),
			"Download ollama from https://ollama.com/download")
	}

	if name == "brew" {
		if _, err := exec.LookPath("brew"); err != nil {
			return errors.New(errors.ErrOllama,
				"Homebrew is required to install ollama on macOS",
				"Install brew from https://brew.sh, or download ollama from https://ollama.com/download")
		}
		// brew refuses to install over an existing formula; upgrade instead.
		if i.runner.Installed() {
			args = []string{"upgrade", "ollama"}
		}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.WrapWithCode(ctx.Err(), errors.ErrOllama,
				"Install was cancelled", "")
		}
		return errors.WrapWithCode(err, errors.ErrOllama,
			"The ollama installer failed",
			"See the output above, or install manually from https://ollama.com/download")
	}
	return nil
}

// Status describes the current install state for display.
type Status struct {
	Installed       bool   `json:"installed"`
	Version         string `json:"version,omitempty"`
	Latest          string `json:"latest,omitempty"`
	UpdateAvailable bool   `json:"update_available"`
}

// CheckStatus gathers install/version/update state in one call.
func (i *Installer) CheckStatus(ctx context.Context) Status {
	st := Status{Installed: i.runner.Installed()}
	if st.Installed {
		if v, err := i.runner.Version(ctx); err == nil {
			st.Version = v
		}
	}
	st.Latest = i.LatestVersion(ctx)
	st.UpdateAvailable = st.Installed && IsNewerVersion(st.Version, st.Latest)
	return st
}
