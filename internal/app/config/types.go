package config

type (
	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App       App
	Backend   Backend
	Session   Session
	Emergency Emergency
	Triage    Triage
	Metrics   Metrics
}

type App struct {
	Env             string
	Version         string
	Timezone        string
	ShutdownTimeout int
}

type Backend struct {
	BaseUrl string
}

type Session struct {
	// Store is either "file" (local storage emulation) or "redis".
	Store           string
	StorageFilePath string
	RedisNamespace  string
	PatientRole     string
	DoctorRole      string
}

type Emergency struct {
	RequestTimeoutInSeconds int
	// MinProgressDisplayInMilliseconds keeps the progress dialog visible for at
	// least this long; the outcome still comes from the real response.
	MinProgressDisplayInMilliseconds int
	MaxRequestsPerMinute             int
	RequestBurst                     int
}

type Triage struct {
	RequestTimeoutInSeconds int
	RefreshCronSpec         string
	PageSize                int
}

type Metrics struct {
	Namespace          string
	TextfileOutputPath string
}
