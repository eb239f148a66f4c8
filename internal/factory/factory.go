// Package factory builds and owns the application dependency graph: config,
// logger, external clients, repositories and services.
package factory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/somu559/sineorcitizenregMod/internal/client"
	"github.com/somu559/sineorcitizenregMod/internal/config"
	"github.com/somu559/sineorcitizenregMod/internal/repository/mongostore"
	"github.com/somu559/sineorcitizenregMod/internal/service"
	"github.com/somu559/sineorcitizenregMod/internal/util"
)

// Factory manages the lifecycle of all application dependencies.
type Factory struct {
	config *config.Config

	mongoClient  *mongostore.Client
	visionClient *client.VisionClient

	registrationRepo *mongostore.RegistrationRepository

	registrationService *service.RegistrationService
	ocrService          *service.OCRService

	closeOnce sync.Once
}

// NewFactory loads configuration and initializes all clients, repositories
// and services.
func NewFactory() (*Factory, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	util.Init(cfg.Environment, cfg.Logging.Level, cfg.Logging.Format)

	f := &Factory{config: cfg}

	if err := f.initializeClients(); err != nil {
		return nil, fmt.Errorf("failed to initialize clients: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	f.registrationRepo, err = mongostore.NewRegistrationRepository(ctx, f.mongoClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize registration repository: %w", err)
	}

	f.registrationService = service.NewRegistrationService(f.registrationRepo, util.Get())

	var extractor service.TextExtractor
	if f.visionClient != nil {
		extractor = f.visionClient
	}
	f.ocrService = service.NewOCRService(extractor, util.Get())

	util.Info("Factory initialized successfully",
		util.String("environment", cfg.Environment),
		util.Bool("ocr_enabled", f.visionClient != nil),
	)

	return f, nil
}

// initializeClients connects the external collaborators concurrently. Mongo
// is mandatory; Vision is optional and the OCR endpoint degrades to a
// not-configured error when its credentials are absent.
func (f *Factory) initializeClients() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		mc, err := mongostore.NewClient(gctx, f.config, util.Get())
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		f.mongoClient = mc
		return nil
	})

	g.Go(func() error {
		if f.config.Vision.CredentialsJSON == "" {
			util.Warn("Vision credentials not set - OCR extraction disabled")
			return nil
		}
		vc, err := client.NewVisionClient(gctx, f.config, util.Get())
		if err != nil {
			return fmt.Errorf("vision: %w", err)
		}
		f.visionClient = vc
		return nil
	})

	return g.Wait()
}

// Config returns the loaded configuration.
func (f *Factory) Config() *config.Config {
	return f.config
}

// RegistrationService returns the registration service.
func (f *Factory) RegistrationService() *service.RegistrationService {
	return f.registrationService
}

// OCRService returns the OCR gateway service.
func (f *Factory) OCRService() *service.OCRService {
	return f.ocrService
}

// Close releases all clients exactly once.
func (f *Factory) Close() {
	f.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if f.visionClient != nil {
			if err := f.visionClient.Close(); err != nil {
				util.Error("Failed to close vision client", util.ErrorField(err))
			}
		}
		if f.mongoClient != nil {
			if err := f.mongoClient.Close(ctx); err != nil {
				util.Error("Failed to close mongo client", util.ErrorField(err))
			}
		}
		util.Sync()
	})
}
