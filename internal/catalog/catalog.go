// Package catalog is the built-in registry of known ollama models with the
// resource requirements used for hardware-based recommendations. The registry
// is hardcoded and rewritten to a catalog file on every run; user-added
// entries in that file are read back and merged.
package catalog

import (
	"strings"

	"github.com/llamactl/llamactl/internal/util"
)

// Category groups models by what they're for.
type Category string

const (
	CategoryChat      Category = "chat"
	CategoryCode      Category = "code"
	CategoryVision    Category = "vision"
	CategoryEmbedding Category = "embedding"
)

// Categories lists all known categories in display order.
var Categories = []Category{CategoryChat, CategoryCode, CategoryVision, CategoryEmbedding}

// Entry describes a model llamactl knows how to recommend.
type Entry struct {
	// Name is the ollama model reference (e.g. "llama3.2:3b").
	Name string `yaml:"name"`

	// Parameters is the parameter count for display (e.g. "3B").
	Parameters string `yaml:"parameters"`

	// SizeBytes is the approximate download size.
	SizeBytes int64 `yaml:"size_bytes"`

	// MinMemory is the memory budget (RAM or VRAM) the model needs to run
	// comfortably.
	MinMemory uint64 `yaml:"min_memory_bytes"`

	Category    Category `yaml:"category"`
	Description string   `yaml:"description"`

	// Tags are alternate references that resolve to this entry.
	Tags []string `yaml:"tags,omitempty"`
}

const gib = uint64(1) << 30

// builtin is the hardcoded model registry. Sizes are approximate download
// sizes for the default quantization; minimum memory follows the usual local
// inference guidance (7B needs ~8 GiB, 13B ~16 GiB, 70B ~64 GiB).
var builtin = []Entry{
	{
		Name: "tinyllama", Parameters: "1.1B", SizeBytes: 638_000_000,
		MinMemory: 2 * gib, Category: CategoryChat,
		Description: "Tiny chat model, runs anywhere, good for testing",
		Tags:        []string{"tinyllama:latest", "tinyllama:1.1b"},
	},
	{
		Name: "llama3.2:1b", Parameters: "1B", SizeBytes: 1_300_000_000,
		MinMemory: 2 * gib, Category: CategoryChat,
		Description: "Meta Llama 3.2 1B, compact general chat",
		Tags:        []string{"llama3.2:1b-instruct-q4_K_M"},
	},
	{
		Name: "llama3.2:3b", Parameters: "3B", SizeBytes: 2_000_000_000,
		MinMemory: 4 * gib, Category: CategoryChat,
		Description: "Meta Llama 3.2 3B, solid quality on modest hardware",
		Tags:        []string{"llama3.2", "llama3.2:latest"},
	},
	{
		Name: "phi3:mini", Parameters: "3.8B", SizeBytes: 2_200_000_000,
		MinMemory: 4 * gib, Category: CategoryChat,
		Description: "Microsoft Phi-3 Mini, strong reasoning for its size",
		Tags:        []string{"phi3", "phi3:latest"},
	},
	{
		Name: "gemma2:2b", Parameters: "2B", SizeBytes: 1_600_000_000,
		MinMemory: 4 * gib, Category: CategoryChat,
		Description: "Google Gemma 2 2B, efficient small model",
	},
	{
		Name: "mistral:7b", Parameters: "7B", SizeBytes: 4_100_000_000,
		MinMemory: 8 * gib, Category: CategoryChat,
		Description: "Mistral 7B, fast general-purpose chat",
		Tags:        []string{"mistral", "mistral:latest"},
	},
	{
		Name: "llama3.1:8b", Parameters: "8B", SizeBytes: 4_700_000_000,
		MinMemory: 8 * gib, Category: CategoryChat,
		Description: "Meta Llama 3.1 8B, the all-round default",
		Tags:        []string{"llama3.1", "llama3.1:latest"},
	},
	{
		Name: "qwen2.5:7b", Parameters: "7B", SizeBytes: 4_700_000_000,
		MinMemory: 8 * gib, Category: CategoryChat,
		Description: "Qwen 2.5 7B, strong multilingual chat",
	},
	{
		Name: "gemma2:9b", Parameters: "9B", SizeBytes: 5_400_000_000,
		MinMemory: 12 * gib, Category: CategoryChat,
		Description: "Google Gemma 2 9B, high quality mid-size model",
		Tags:        []string{"gemma2", "gemma2:latest"},
	},
	{
		Name: "gemma2:27b", Parameters: "27B", SizeBytes: 16_000_000_000,
		MinMemory: 32 * gib, Category: CategoryChat,
		Description: "Google Gemma 2 27B, near-frontier quality",
	},
	{
		Name: "qwen2.5:32b", Parameters: "32B", SizeBytes: 20_000_000_000,
		MinMemory: 32 * gib, Category: CategoryChat,
		Description: "Qwen 2.5 32B for heavyweight reasoning",
	},
	{
		Name: "llama3.1:70b", Parameters: "70B", SizeBytes: 40_000_000_000,
		MinMemory: 64 * gib, Category: CategoryChat,
		Description: "Meta Llama 3.1 70B, workstation-class quality",
	},
	{
		Name: "qwen2.5-coder:7b", Parameters: "7B", SizeBytes: 4_700_000_000,
		MinMemory: 8 * gib, Category: CategoryCode,
		Description: "Qwen 2.5 Coder 7B, best small coding model",
		Tags:        []string{"qwen2.5-coder", "qwen2.5-coder:latest"},
	},
	{
		Name: "codellama:7b", Parameters: "7B", SizeBytes: 3_800_000_000,
		MinMemory: 8 * gib, Category: CategoryCode,
		Description: "Code Llama 7B for completion and chat about code",
		Tags:        []string{"codellama", "codellama:latest"},
	},
	{
		Name: "codellama:13b", Parameters: "13B", SizeBytes: 7_400_000_000,
		MinMemory: 16 * gib, Category: CategoryCode,
		Description: "Code Llama 13B, better quality, needs more memory",
	},
	{
		Name: "deepseek-coder-v2:16b", Parameters: "16B", SizeBytes: 8_900_000_000,
		MinMemory: 16 * gib, Category: CategoryCode,
		Description: "DeepSeek Coder V2 16B, strong at code generation",
	},
	{
		Name: "moondream", Parameters: "1.8B", SizeBytes: 1_700_000_000,
		MinMemory: 4 * gib, Category: CategoryVision,
		Description: "Moondream 2, tiny vision model for image questions",
		Tags:        []string{"moondream:latest"},
	},
	{
		Name: "llava:7b", Parameters: "7B", SizeBytes: 4_700_000_000,
		MinMemory: 8 * gib, Category: CategoryVision,
		Description: "LLaVA 7B multimodal chat over images",
		Tags:        []string{"llava", "llava:latest"},
	},
	{
		Name: "llava:13b", Parameters: "13B", SizeBytes: 8_000_000_000,
		MinMemory: 16 * gib, Category: CategoryVision,
		Description: "LLaVA 13B, higher quality image understanding",
	},
	{
		Name: "nomic-embed-text", Parameters: "137M", SizeBytes: 274_000_000,
		MinMemory: 1 * gib, Category: CategoryEmbedding,
		Description: "Nomic text embeddings, large context window",
		Tags:        []string{"nomic-embed-text:latest"},
	},
	{
		Name: "mxbai-embed-large", Parameters: "335M", SizeBytes: 670_000_000,
		MinMemory: 1 * gib, Category: CategoryEmbedding,
		Description: "MixedBread large embeddings, strong retrieval quality",
	},
}

// Builtin returns a copy of the hardcoded registry.
func Builtin() []Entry {
	out := make([]Entry, len(builtin))
	copy(out, builtin)
	return out
}

// Lookup resolves a model reference against a set of entries, matching the
// entry name, any tag, or the base name without a tag suffix.
func Lookup(entries []Entry, ref string) (Entry, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Entry{}, false
	}

	base := util.BaseModelName(ref)
	for _, e := range entries {
		if e.Name == ref {
			return e, true
		}
		for _, tag := range e.Tags {
			if tag == ref {
				return e, true
			}
		}
	}
	// Second pass: tolerate "name" vs "name:tag" mismatches in either direction.
	for _, e := range entries {
		if util.BaseModelName(e.Name) == base {
			return e, true
		}
	}
	return Entry{}, false
}

// ByCategory filters entries to one category, preserving order.
func ByCategory(entries []Entry, cat Category) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}
