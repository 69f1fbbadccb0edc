// Package ollama is the boundary to the external ollama tool: an HTTP client
// for the local server, a runner that shells out to the CLI, and an installer
// that puts the binary on the machine in the first place.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/llamactl/llamactl/internal/errors"
)

// DefaultHost is where a stock ollama install listens.
const DefaultHost = "http://localhost:11434"

// clientTimeout bounds every API call; the local server answers these
// endpoints in milliseconds when it's up at all.
const clientTimeout = 5 * time.Second

// Client talks to the local ollama server's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. Empty means DefaultHost.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultHost
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: clientTimeout},
	}
}

// Model is one entry from /api/tags.
type Model struct {
	Name       string `json:"name"`
	ModifiedAt string `json:"modified_at"`
	Size       int64  `json:"size"`
	Digest     string `json:"digest"`
}

type tagsResponse struct {
	Models []Model `json:"models"`
}

// Tags lists the models the server has installed.
func (c *Client) Tags(ctx context.Context) ([]Model, error) {
	var resp tagsResponse
	if err := c.getJSON(ctx, "/api/tags", &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}

// ShowResponse is the subset of /api/show llamactl displays.
type ShowResponse struct {
	Modelfile  string       `json:"modelfile"`
	Parameters string       `json:"parameters"`
	Template   string       `json:"template"`
	Details    ModelDetails `json:"details"`
}

// ModelDetails describes a model's format and quantization.
type ModelDetails struct {
	Format            string `json:"format"`
	Family            string `json:"family"`
	ParameterSize     string `json:"parameter_size"`
	QuantizationLevel string `json:"quantization_level"`
}

// Show fetches details for one installed model.
func (c *Client) Show(ctx context.Context, name string) (*ShowResponse, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/show", strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.unreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.New(errors.ErrOllama,
			fmt.Sprintf("Model '%s' is not installed", name),
			"Run 'llamactl models' to see what's available")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrOllama,
			fmt.Sprintf("ollama server returned %d for /api/show", resp.StatusCode), "")
	}

	var show ShowResponse
	if err := json.NewDecoder(resp.Body).Decode(&show); err != nil {
		return nil, errors.Wrap(err, "Couldn't decode the server response")
	}
	return &show, nil
}

type versionResponse struct {
	Version string `json:"version"`
}

// Version returns the server's reported version.
func (c *Client) Version(ctx context.Context) (string, error) {
	var resp versionResponse
	if err := c.getJSON(ctx, "/api/version", &resp); err != nil {
		return "", err
	}
	return resp.Version, nil
}

// Ping checks the server is up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.unreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New(errors.ErrOllama,
			fmt.Sprintf("ollama server answered with status %d", resp.StatusCode),
			"Something else may be listening on "+c.baseURL)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.unreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New(errors.ErrOllama,
			fmt.Sprintf("ollama server returned %d for %s", resp.StatusCode, path), "")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "Couldn't decode the server response")
	}
	return nil
}

func (c *Client) unreachable(err error) error {
	return errors.WrapWithCode(err, errors.ErrOllama,
		"Couldn't reach the ollama server at "+c.baseURL,
		"Start it with 'ollama serve', or check ollama.host in your preferences")
}
