package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"beanflow-video-generator/application/ports/inbound"
	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/application/services"
	"beanflow-video-generator/config"
	"beanflow-video-generator/infrastructure/adapters"
	"beanflow-video-generator/infrastructure/cli"
	"beanflow-video-generator/script"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Failed to load .env file")
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	speechConfig, err := config.GetSpeechConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get speech config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	videoConfig := config.GetVideoConfig()
	slideConfig := config.GetSlideConfig()

	pitch, err := script.Load(pipelineConfig.ScriptFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load script")
	}

	zeroLogger := adapters.NewConsoleLogger(os.Stdout, pipelineConfig.LogLevel)

	terminal := cli.NewTerminal(os.Stdin, os.Stdout)
	footageApiKey, err := terminal.PromptFootageApiKey()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read Pexels API key")
	}
	pexelsConfig := config.GetPexelsConfig(footageApiKey)

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(pipelineConfig.RenderWorkers, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(zeroLogger, &http.Client{})

	speechSynthesizer, err := adapters.NewSpeechSynthesizer(speechConfig, contentFetcher, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create speech synthesizer")
	}

	workDir := os.TempDir()
	prober := adapters.NewFFprobeMediaProber(zeroLogger)
	slideRenderer := adapters.NewSlideRenderer(slideConfig, zeroLogger)
	segmentEncoder := adapters.NewFFmpegSegmentEncoder(zeroLogger, videoConfig, workDir)
	concatenateVideos := adapters.NewFFmpegVideoConcatenate(zeroLogger, workDir)
	videoExporter := adapters.NewFFmpegVideoExporter(zeroLogger, videoConfig, prober)

	narrationSynthesizer := services.NewNarrationSynthesizer(zeroLogger, speechSynthesizer, prober, pipelineConfig, speechConfig)

	var (
		planner inbound.SegmentPlannerPort
		mode    inbound.PipelineMode
	)
	if pexelsConfig.Enabled() {
		footageClient := adapters.NewPexelsFootageClient(contentFetcher, pexelsConfig, zeroLogger)
		planner = services.NewFootageSegmentPlanner(zeroLogger, footageClient, prober, pitch.Queries, pipelineConfig,
			pexelsConfig, config.DefaultSlideFontSize)
		mode = inbound.FootageMode
	} else {
		planner = services.NewSlideSegmentPlanner(zeroLogger, pitch.Scenes, config.SlideOnlyFontSize)
		mode = inbound.SlideOnlyMode
	}

	segmentComposer := services.NewSegmentComposer(zeroLogger, planner, slideRenderer, segmentEncoder, concatenateVideos,
		workerPool, workDir)

	videoPublisher, segmentCache := newAwsAdapters(zeroLogger, s3Config, dynamoConfig)

	pipeline := services.NewVideoCreatorPipeline(narrationSynthesizer, segmentComposer, videoExporter, zeroLogger,
		videoPublisher, segmentCache, pipelineConfig, mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := pipeline.StartPipeline(ctx, inbound.StartPipelineParams{Narration: pitch.Narration})
	if err != nil {
		stop()
		workerPool.Release()
		log.Fatal().Err(err).Msg("Failed to generate video")
	}

	terminal.PrintSummary(res)
}

// newAwsAdapters builds the optional S3 publisher and DynamoDB segment cache.
// Either is nil when its config is absent.
func newAwsAdapters(logger outbound.LoggerPort, s3Config *config.S3Config, dynamoConfig *config.DynamoConfig) (outbound.VideoPublisherPort, outbound.SegmentCachePort) {
	if s3Config == nil && dynamoConfig == nil {
		return nil, nil
	}

	var region string
	if s3Config != nil {
		region = s3Config.Region
	} else {
		region = dynamoConfig.Region
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            aws.Config{Region: aws.String(region)},
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create aws session")
	}

	var (
		videoPublisher outbound.VideoPublisherPort
		segmentCache   outbound.SegmentCachePort
	)
	if s3Config != nil {
		videoPublisher = adapters.NewS3VideoPublisher(logger, s3.New(sess), s3Config)
	}
	if dynamoConfig != nil {
		segmentCache = adapters.NewDynamoCache(logger, dynamodb.New(sess, aws.NewConfig().WithRegion(dynamoConfig.Region)), dynamoConfig)
	}

	return videoPublisher, segmentCache
}
