package adapters

import (
	"context"
	"time"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"beanflow-video-generator/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

type dynamoSegmentItem struct {
	RunId          string  `dynamodbav:"run_id"`
	SegmentId      string  `dynamodbav:"segment_id"`
	SegmentOrdinal int     `dynamodbav:"segment_ordinal"`
	Kind           string  `dynamodbav:"kind"`
	Text           string  `dynamodbav:"text"`
	Start          float64 `dynamodbav:"start"`
	Duration       float64 `dynamodbav:"duration"`
	FallbackReason string  `dynamodbav:"fallback_reason,omitempty"`
	TTL            int64   `dynamodbav:"ttl"`
}

type dynamoCache struct {
	logger       outbound.LoggerPort
	dynamoSvc    dynamodbiface.DynamoDBAPI
	dynamoConfig *config.DynamoConfig
	now          func() time.Time
}

func NewDynamoCache(logger outbound.LoggerPort, dynamoSvc dynamodbiface.DynamoDBAPI, dynamoConfig *config.DynamoConfig) outbound.SegmentCachePort {
	return &dynamoCache{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
		now:          time.Now,
	}
}

func (c *dynamoCache) Save(ctx context.Context, segment domain.VisualSegment, runID string) error {
	item := dynamoSegmentItem{
		RunId:          runID,
		SegmentId:      segment.ID,
		SegmentOrdinal: segment.Ordinal,
		Kind:           string(segment.Kind),
		Text:           segment.Text,
		Start:          segment.Start,
		Duration:       segment.Duration,
		FallbackReason: segment.FallbackReason,
		TTL:            c.now().Add(time.Duration(c.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal segment item", map[string]interface{}{
			"item": item,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save segment item", map[string]interface{}{
			"run_id":  runID,
			"ordinal": segment.Ordinal,
		})
		return err
	}

	return nil
}
