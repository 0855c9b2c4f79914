package di

import (
	"context"
	"time"

	"journeymap/application/ports"
	"journeymap/application/services"
	"journeymap/domain/insight"
	"journeymap/infrastructure/cache"
	"journeymap/infrastructure/completion"
	"journeymap/infrastructure/config"
	"journeymap/infrastructure/export"
	"journeymap/infrastructure/jobsearch"
	dynamorepo "journeymap/infrastructure/persistence/dynamodb"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideProfileRepository creates the profile repository
func ProvideProfileRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProfileRepository {
	return dynamorepo.NewProfileRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideCacheStore selects Redis when configured, in-process otherwise
func ProvideCacheStore(cfg *config.Config, logger *zap.Logger) (ports.CacheStore, error) {
	if cfg.RedisURL == "" {
		logger.Info("using in-process cache store")
		return cache.NewMemoryStore(), nil
	}
	store, err := cache.NewRedisStore(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	logger.Info("using redis cache store")
	return store, nil
}

// ProvideCompletionClient creates the completions API client
func ProvideCompletionClient(cfg *config.Config, logger *zap.Logger) insight.CompletionClient {
	return completion.NewClient(completion.Config{
		BaseURL: cfg.CompletionBaseURL,
		APIKey:  cfg.CompletionAPIKey,
		Model:   cfg.CompletionModel,
	}, logger)
}

// ProvideJobSearchClient creates the job search API client
func ProvideJobSearchClient(cfg *config.Config, logger *zap.Logger) insight.JobSearchClient {
	return jobsearch.NewClient(jobsearch.Config{
		BaseURL: cfg.JobSearchBaseURL,
		AppID:   cfg.JobSearchAppID,
		AppKey:  cfg.JobSearchAppKey,
	}, logger)
}

// ProvideInsightEngine creates the insight engine
func ProvideInsightEngine(completions insight.CompletionClient, jobs insight.JobSearchClient, logger *zap.Logger) *insight.Engine {
	return insight.NewEngine(completions, jobs, logger)
}

// ProvideVisualizationService creates the uncached visualization service
func ProvideVisualizationService(profiles ports.ProfileRepository, engine *insight.Engine, logger *zap.Logger) *services.VisualizationService {
	return services.NewVisualizationService(profiles, engine, logger)
}

// ProvideCachedVisualizer wraps the service with read-through caching
func ProvideCachedVisualizer(svc *services.VisualizationService, store ports.CacheStore, cfg *config.Config, logger *zap.Logger) *services.CachedVisualizer {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return services.NewCachedVisualizer(svc, store, ttl, logger)
}

// ProvideExporter creates the file exporter
func ProvideExporter(cfg *config.Config, logger *zap.Logger) *export.Exporter {
	return export.NewExporter(cfg.ExportDir, logger)
}
