// Package rekognition implements image labeling and content moderation
// over photos stored in S3, backed by Amazon Rekognition.
package rekognition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"

	"github.com/heartmarshall/encuentrame-backend/internal/provider"
)

// api is the subset of the Rekognition client used by Provider.
type api interface {
	DetectLabels(ctx context.Context, in *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
	DetectModerationLabels(ctx context.Context, in *rekognition.DetectModerationLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectModerationLabelsOutput, error)
}

// Provider calls Rekognition for labels and moderation labels.
type Provider struct {
	client api
	log    *slog.Logger
}

// NewProvider loads the default AWS configuration for region and creates a Provider.
func NewProvider(ctx context.Context, region string, logger *slog.Logger) (*Provider, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("rekognition: load aws config: %w", err)
	}

	return newWithClient(rekognition.NewFromConfig(cfg), logger), nil
}

func newWithClient(client api, logger *slog.Logger) *Provider {
	return &Provider{
		client: client,
		log:    logger.With("adapter", "rekognition"),
	}
}

// DetectLabels returns object and scene labels for the photo at bucket/key.
// Returns provider.ErrObjectNotFound if the key does not resolve.
func (p *Provider) DetectLabels(ctx context.Context, bucket, key string, maxLabels int, minConfidence float64) ([]provider.LabelResult, error) {
	p.log.DebugContext(ctx, "detect labels", slog.String("key", key))

	out, err := p.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         s3Image(bucket, key),
		MaxLabels:     aws.Int32(int32(maxLabels)),
		MinConfidence: aws.Float32(float32(minConfidence)),
	})
	if err != nil {
		return nil, mapError("detect labels", key, err)
	}

	labels := make([]provider.LabelResult, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, provider.LabelResult{
			Name:       aws.ToString(l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)),
		})
	}
	return labels, nil
}

// DetectModeration returns unsafe-content labels for the photo at bucket/key.
// Returns provider.ErrObjectNotFound if the key does not resolve.
func (p *Provider) DetectModeration(ctx context.Context, bucket, key string, minConfidence float64) ([]provider.LabelResult, error) {
	p.log.DebugContext(ctx, "detect moderation labels", slog.String("key", key))

	out, err := p.client.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image:         s3Image(bucket, key),
		MinConfidence: aws.Float32(float32(minConfidence)),
	})
	if err != nil {
		return nil, mapError("detect moderation labels", key, err)
	}

	labels := make([]provider.LabelResult, 0, len(out.ModerationLabels))
	for _, l := range out.ModerationLabels {
		labels = append(labels, provider.LabelResult{
			Name:       aws.ToString(l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)),
		})
	}
	return labels, nil
}

func s3Image(bucket, key string) *types.Image {
	return &types.Image{
		S3Object: &types.S3Object{
			Bucket: aws.String(bucket),
			Name:   aws.String(key),
		},
	}
}

// mapError folds the ways Rekognition reports a missing S3 object into
// provider.ErrObjectNotFound.
func mapError(op, key string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("rekognition: %s %q: %w", op, key, provider.ErrObjectNotFound)
	}
	return fmt.Errorf("rekognition: %s %q: %w", op, key, err)
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ResourceNotFoundException", "InvalidS3ObjectException":
			return true
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return true
	}
	return false
}
