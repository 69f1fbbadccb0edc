package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	lerrors "github.com/llamactl/llamactl/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestClient_Tags(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		json.NewEncoder(w).Encode(tagsResponse{Models: []Model{
			{Name: "llama3.2:3b", Size: 2_000_000_000, Digest: "a80c4f17acd5"},
			{Name: "phi3:mini", Size: 2_200_000_000},
		}})
	})

	models, err := client.Tags(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "llama3.2:3b", models[0].Name)
	assert.Equal(t, int64(2_000_000_000), models[0].Size)
}

func TestClient_Tags_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url)
	_, err := client.Tags(context.Background())
	require.Error(t, err)
	assert.True(t, lerrors.IsCode(err, lerrors.ErrOllama))
	assert.Contains(t, err.Error(), "ollama serve")
}

func TestClient_Show(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/show", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "llama3.2:3b", body["name"])

		json.NewEncoder(w).Encode(ShowResponse{
			Details: ModelDetails{
				Family:            "llama",
				ParameterSize:     "3.2B",
				QuantizationLevel: "Q4_K_M",
			},
		})
	})

	show, err := client.Show(context.Background(), "llama3.2:3b")
	require.NoError(t, err)
	assert.Equal(t, "llama", show.Details.Family)
	assert.Equal(t, "Q4_K_M", show.Details.QuantizationLevel)
}

func TestClient_Show_NotInstalled(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	})

	_, err := client.Show(context.Background(), "missing:1b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not installed")
}

func TestClient_Version(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/version", r.URL.Path)
		json.NewEncoder(w).Encode(versionResponse{Version: "0.3.12"})
	})

	v, err := client.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.3.12", v)
}

func TestClient_Ping(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ollama is running"))
	})

	assert.NoError(t, client.Ping(context.Background()))
}

func TestClient_Ping_WrongService(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewClient_DefaultHost(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultHost, c.baseURL)

	c = NewClient("http://gpu-box:11434/")
	assert.Equal(t, "http://gpu-box:11434", c.baseURL)
}
