package config

import (
	"medvault-client/internal/pkg/constvars"
	"medvault-client/internal/pkg/exceptions"
	"medvault-client/internal/pkg/utils"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "medvault-client.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "medvault-client_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 5),
		},
		Backend: Backend{
			BaseUrl: utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8080"),
		},
		Session: Session{
			Store:           utils.GetEnvString("SESSION_STORE", constvars.SessionStoreFile),
			StorageFilePath: utils.GetEnvString("SESSION_STORAGE_FILE", "localStorage.json"),
			RedisNamespace:  utils.GetEnvString("SESSION_REDIS_NAMESPACE", ""),
			PatientRole:     utils.GetEnvString("SESSION_PATIENT_ROLE", constvars.MedVaultRolePatient),
			DoctorRole:      utils.GetEnvString("SESSION_DOCTOR_ROLE", constvars.MedVaultRoleDoctor),
		},
		Emergency: Emergency{
			RequestTimeoutInSeconds:          utils.GetEnvInt("EMERGENCY_REQUEST_TIMEOUT_IN_SECONDS", 15),
			MinProgressDisplayInMilliseconds: utils.GetEnvInt("EMERGENCY_MIN_PROGRESS_MS", 0),
			MaxRequestsPerMinute:             utils.GetEnvInt("EMERGENCY_MAX_REQUESTS_PER_MINUTE", 6),
			RequestBurst:                     utils.GetEnvInt("EMERGENCY_REQUEST_BURST", 2),
		},
		Triage: Triage{
			RequestTimeoutInSeconds: utils.GetEnvInt("TRIAGE_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RefreshCronSpec:         utils.GetEnvString("TRIAGE_REFRESH_CRON_SPEC", constvars.TriageDefaultCronSpec),
			PageSize:                utils.GetEnvInt("TRIAGE_PAGE_SIZE", constvars.TriageDefaultPageSize),
		},
		Metrics: Metrics{
			Namespace:          utils.GetEnvString("METRICS_NAMESPACE", "medvault"),
			TextfileOutputPath: utils.GetEnvString("METRICS_TEXTFILE_PATH", ""),
		},
	}
}

// Validate rejects configurations the client cannot run with.
func (c *InternalConfig) Validate() error {
	parsed, err := url.Parse(c.Backend.BaseUrl)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return exceptions.ErrInvalidConfig("BACKEND_BASE_URL must be an absolute URL")
	}
	c.Backend.BaseUrl = strings.TrimRight(c.Backend.BaseUrl, "/")

	switch c.Session.Store {
	case constvars.SessionStoreFile, constvars.SessionStoreRedis:
	default:
		return exceptions.ErrInvalidConfig("SESSION_STORE must be file or redis")
	}

	if c.Emergency.RequestTimeoutInSeconds <= 0 {
		return exceptions.ErrInvalidConfig("EMERGENCY_REQUEST_TIMEOUT_IN_SECONDS must be positive")
	}
	if c.Emergency.MinProgressDisplayInMilliseconds < 0 {
		return exceptions.ErrInvalidConfig("EMERGENCY_MIN_PROGRESS_MS must not be negative")
	}
	if c.Triage.PageSize <= 0 {
		c.Triage.PageSize = constvars.TriageDefaultPageSize
	}
	return nil
}
