package generationimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/orgball2608/motivate-ai/internal/generation"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
	"google.golang.org/genai"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	HTTPClient *http.Client `optional:"true"`
}

type GenerationImpl struct {
	genai  *genai.Client
	http   *http.Client
	cfg    *config.Config
	logger logger.Logger
}

var _ generation.Client = (*GenerationImpl)(nil)

func New(opts Opts) (*GenerationImpl, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	g := &GenerationImpl{
		http:   httpClient,
		cfg:    opts.Config,
		logger: opts.Logger.WithComponent("Generation"),
	}

	if opts.Config.Gemini.APIKey == "" {
		g.logger.Warn("GEMINI_API_KEY is not set, generation requests will be rejected")
		return g, nil
	}

	cc := &genai.ClientConfig{
		APIKey:     opts.Config.Gemini.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if opts.Config.Gemini.BaseURL != "" {
		cc.HTTPOptions.BaseURL = opts.Config.Gemini.BaseURL
	}

	client, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}
	g.genai = client

	return g, nil
}

func (g *GenerationImpl) ready() error {
	if g.genai == nil {
		return errors.Configuration("GEMINI_API_KEY is not set")
	}
	return nil
}

// generateJSON asks the model for a JSON object with the given string keys and decodes it into out.
func (g *GenerationImpl) generateJSON(ctx context.Context, model, prompt string, out any, keys ...string) error {
	resp, err := g.genai.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   objectSchema(keys...),
	})
	if err != nil {
		return err
	}

	text := cleanJSON(resp.Text())
	if text == "" {
		return errors.New("empty response")
	}

	return json.Unmarshal([]byte(text), out)
}

func objectSchema(keys ...string) *genai.Schema {
	props := make(map[string]*genai.Schema, len(keys))
	for _, k := range keys {
		props[k] = &genai.Schema{Type: genai.TypeString}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   keys,
	}
}

// cleanJSON strips markdown code fences some models wrap JSON in.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
