// Package llm wraps the generative model used for résumé suggestions.
package llm

// ModelTier selects a model by cost and capability.
type ModelTier string

const (
	// TierLite is for short rewrites such as summaries and skill lists
	TierLite ModelTier = "lite"
	// TierStandard is for longer rewrites
	TierStandard ModelTier = "standard"
)

// Provider names an LLM backend.
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// Config holds model selection and sampling settings.
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the Gemini defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature:     0.4,
		MaxOutputTokens: 512,
	}
}

// GetModel returns the model for tier, falling back to standard and then lite.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok && model != "" {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of c using model for tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := *c
	next.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return &next
}
