package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
)

// InitNewRelic initializes New Relic application based on configuration.
// It returns nil when APM is disabled or cannot start; callers treat nil as "no APM".
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	appName := configs.NewRelic.AppName
	if appName == "" {
		appName = configs.App.Name
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled", logger.String("app_name", appName))
	return nrApp
}
