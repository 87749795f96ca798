package bedrock

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"sortsense/internal/classifier"
	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/port"
)

// invoker is the slice of the Bedrock runtime client we use, extracted
// for testing.
type invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Classifier implements port.Classifier against an AWS Bedrock vision model.
type Classifier struct {
	client  invoker
	modelID string
	timeout time.Duration
}

// NewClassifier creates a Bedrock-backed classifier from the vision config.
func NewClassifier(cfg *config.VisionConfig) (port.Classifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return newClassifier(bedrockruntime.NewFromConfig(awsCfg), cfg), nil
}

// NewClassifierWithClient creates a classifier with an injected runtime
// client (for testing).
func NewClassifierWithClient(client invoker, cfg *config.VisionConfig) port.Classifier {
	return newClassifier(client, cfg)
}

func newClassifier(client invoker, cfg *config.VisionConfig) *Classifier {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Classifier{
		client:  client,
		modelID: cfg.ModelID,
		timeout: timeout,
	}
}

func (c *Classifier) Classify(ctx context.Context, imageBytes []byte) ([]domain.ClassifiedItem, error) {
	prompt := classifier.BuildClassifyPrompt()
	encoded := base64.StdEncoding.EncodeToString(imageBytes)

	reqBody := map[string]interface{}{
		"input": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "input_text", "text": prompt},
					{"type": "input_image", "image_base64": encoded},
				},
			},
		},
		"max_tokens":  400,
		"temperature": 0.2,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        bodyBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("invoking bedrock model %s: %w", c.modelID, err)
	}

	text, err := extractText(out.Body)
	if err != nil {
		return nil, err
	}
	return classifier.ParseModelItems(text)
}

// extractText pulls the generated text out of the model response. Bedrock
// model families name the field differently, so try each known shape.
func extractText(body []byte) (string, error) {
	var resp struct {
		Generation string `json:"generation"`
		OutputText string `json:"output_text"`
		Outputs    []struct {
			Text string `json:"text"`
		} `json:"outputs"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling bedrock response: %w", err)
	}
	switch {
	case resp.Generation != "":
		return resp.Generation, nil
	case resp.OutputText != "":
		return resp.OutputText, nil
	case len(resp.Outputs) > 0 && resp.Outputs[0].Text != "":
		return resp.Outputs[0].Text, nil
	}
	return "", fmt.Errorf("no generated text in bedrock response")
}
