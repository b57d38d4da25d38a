package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/azure"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/packages/param"
)

// ChatCompleter is the slice of the OpenAI SDK the client depends on.
// *openai.ChatCompletionService satisfies it; tests substitute a fake
// provider.
type ChatCompleter interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

var _ ChatCompleter = (*openai.ChatCompletionService)(nil)

// ClientConfig identifies the completion endpoint and deployment.
type ClientConfig struct {
	// Provider is "azure" for Azure OpenAI or "openai" for any
	// OpenAI-compatible endpoint.
	Provider string
	// Endpoint is the Azure resource endpoint (azure provider only).
	Endpoint string
	// APIVersion is the Azure API version (azure provider only).
	APIVersion string
	// BaseURL overrides the API base URL (openai provider only); empty means
	// the official OpenAI endpoint.
	BaseURL string
	APIKey  string
	// Model is the deployment name (azure) or model identifier.
	Model string
}

// Client issues chat completions with cross-model parameter compatibility.
// Models behind the same endpoint disagree on which parameters they accept
// (explicit temperature, JSON mode, max_completion_tokens vs the legacy
// max_tokens) and reject unsupported ones with provider-specific error text,
// so compatibility is learned by classified one-shot resubmissions rather
// than capability discovery.
type Client struct {
	chat     ChatCompleter
	model    string
	classify Classifier
	log      *slog.Logger
}

// NewClient builds a Client from endpoint configuration.
func NewClient(cfg ClientConfig, log *slog.Logger) (*Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model/deployment name is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is required")
	}

	var opts []option.RequestOption
	switch cfg.Provider {
	case "azure":
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("llm endpoint is required for the azure provider")
		}
		apiVersion := cfg.APIVersion
		if apiVersion == "" {
			apiVersion = "2024-10-21"
		}
		opts = append(opts, azure.WithEndpoint(cfg.Endpoint, apiVersion), azure.WithAPIKey(cfg.APIKey))
	case "openai", "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(cfg.BaseURL))
		}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	client := openai.NewClient(opts...)
	return &Client{
		chat:     &client.Chat.Completions,
		model:    cfg.Model,
		classify: ClassifyOpenAIError,
		log:      log,
	}, nil
}

// NewClientWithCompleter wires a Client around an existing completer and
// classifier. Tests use it to drive the fallback ladder against a fake
// provider; it also allows swapping the classifier table per provider.
func NewClientWithCompleter(chat ChatCompleter, model string, classify Classifier, log *slog.Logger) *Client {
	if classify == nil {
		classify = ClassifyOpenAIError
	}
	return &Client{chat: chat, model: model, classify: classify, log: log}
}

// completionRequest is one logical completion call.
type completionRequest struct {
	messages        []openai.ChatCompletionMessageParamUnion
	temperature     *float64
	maxOutputTokens int64
	jsonObject      bool
}

// completionResult is the raw outcome of a completion call.
type completionResult struct {
	content      string
	finishReason string
}

// createChatCompletion issues the request and walks the compatibility
// fallback ladder. Each rung is a single resubmission triggered only by its
// classified error; at most one base attempt plus three corrective calls are
// made, and anything unclassified surfaces as ProviderRejected.
func (c *Client) createChatCompletion(ctx context.Context, req completionRequest) (*completionResult, error) {
	params := openai.ChatCompletionNewParams{
		Model:               c.model,
		Messages:            req.messages,
		MaxCompletionTokens: openai.Int(req.maxOutputTokens),
	}
	if req.jsonObject {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}
	if req.temperature != nil {
		params.Temperature = openai.Float(*req.temperature)
	}

	resp, err := c.chat.New(ctx, params)
	if err == nil {
		return resultFrom(resp), nil
	}

	// Some models only support their implicit default temperature.
	if req.temperature != nil && c.classify(err) == ClassTemperatureUnsupported {
		c.log.Warn("model rejected explicit temperature, resubmitting without it", "error", err)
		params.Temperature = param.Opt[float64]{}
		resp, retryErr := c.chat.New(ctx, params)
		if retryErr == nil {
			return resultFrom(resp), nil
		}
		err = retryErr
	}

	// JSON mode is not available on every model/endpoint.
	if req.jsonObject && c.classify(err) == ClassJSONModeUnsupported {
		c.log.Warn("model rejected JSON mode, resubmitting without it", "error", err)
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{}
		resp, retryErr := c.chat.New(ctx, params)
		if retryErr == nil {
			return resultFrom(resp), nil
		}
		err = retryErr
	}

	// The output-length parameter was renamed between model generations and
	// deployments reject the name they don't know. Swap once in whichever
	// direction the rejection points.
	switch c.classify(err) {
	case ClassNewLengthParamUnsupported:
		c.log.Warn("model rejected max_completion_tokens, resubmitting with max_tokens", "error", err)
		params.MaxCompletionTokens = param.Opt[int64]{}
		params.MaxTokens = openai.Int(req.maxOutputTokens)
		resp, retryErr := c.chat.New(ctx, params)
		if retryErr == nil {
			return resultFrom(resp), nil
		}
		return nil, wrapf(ProviderRejected, retryErr, "completion failed after swapping to max_tokens")
	case ClassLegacyLengthParamUnsupported:
		c.log.Warn("model rejected max_tokens, resubmitting with max_completion_tokens", "error", err)
		params.MaxTokens = param.Opt[int64]{}
		params.MaxCompletionTokens = openai.Int(req.maxOutputTokens)
		resp, retryErr := c.chat.New(ctx, params)
		if retryErr == nil {
			return resultFrom(resp), nil
		}
		return nil, wrapf(ProviderRejected, retryErr, "completion failed after swapping to max_completion_tokens")
	}

	return nil, wrapf(ProviderRejected, err, "completion request failed")
}

func resultFrom(resp *openai.ChatCompletion) *completionResult {
	if resp == nil || len(resp.Choices) == 0 {
		return &completionResult{}
	}
	choice := resp.Choices[0]
	return &completionResult{
		content:      choice.Message.Content,
		finishReason: string(choice.FinishReason),
	}
}
