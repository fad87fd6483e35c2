package main

import (
	"context"
	"io"
	"medvault-client/internal/app/config"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/drivers/database"
	"medvault-client/internal/app/drivers/logger"
	"medvault-client/internal/app/services/core/session"
	"medvault-client/internal/app/services/shared/metrics"
	sharedRedis "medvault-client/internal/app/services/shared/redis"
	"medvault-client/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions carries the global flags and everything PersistentPreRunE
// wires for the subcommands.
type rootOptions struct {
	sessionStore string
	storageFile  string
	backendURL   string
	verbose      bool

	bootstrap *config.Bootstrap
	recorder  *metrics.PrometheusRecorder
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "emergency",
		Short: "MedVault emergency request client",
		Long: `Send an emergency request to the MedVault care team, or, signed in as a
doctor, review and accept the emergency queue.

The signed-in user is read from the portal's local storage file or from the
shared Redis session store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setup(); err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), constvars.CONTEXT_REQUEST_ID_KEY, uuid.New().String()))
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.sessionStore, "session-store", "", "Session store: file or redis (overrides SESSION_STORE)")
	pf.StringVar(&opts.storageFile, "storage-file", "", "Local storage file holding the signed-in user (overrides SESSION_STORAGE_FILE)")
	pf.StringVar(&opts.backendURL, "backend-url", "", "MedVault backend base URL (overrides BACKEND_BASE_URL)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newHotlinesCmd())
	rootCmd.AddCommand(newRequestCmd(opts))
	rootCmd.AddCommand(newTriageCmd(opts))

	return rootCmd
}

// run executes one command line and always tears the bootstrap down, also
// when the command failed.
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	err := rootCmd.ExecuteContext(ctx)
	if shutdownErr := opts.shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}

func (o *rootOptions) setup() error {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if o.sessionStore != "" {
		internalConfig.Session.Store = o.sessionStore
	}
	if o.storageFile != "" {
		internalConfig.Session.StorageFilePath = o.storageFile
	}
	if o.backendURL != "" {
		internalConfig.Backend.BaseUrl = o.backendURL
	}
	if o.verbose {
		driverConfig.Logger.Level = "debug"
	}

	err := internalConfig.Validate()
	if err != nil {
		return err
	}

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return err
	}

	o.recorder = metrics.NewPrometheusRecorder(internalConfig.Metrics.Namespace)
	o.bootstrap = &config.Bootstrap{
		Logger:         log,
		Registry:       o.recorder.Registry(),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	log.Debug("emergency client bootstrapped",
		zap.String("session_store", internalConfig.Session.Store),
		zap.String("backend_base_url", internalConfig.Backend.BaseUrl),
		zap.String("app_env", internalConfig.App.Env),
	)
	return nil
}

// sessionProvider resolves the configured store and guards it with role.
// Redis is dialled on first use only.
func (o *rootOptions) sessionProvider(ctx context.Context, role string) (contracts.SessionProvider, error) {
	b := o.bootstrap
	sessionConfig := b.InternalConfig.Session

	var provider contracts.SessionProvider
	switch sessionConfig.Store {
	case constvars.SessionStoreRedis:
		if b.Redis == nil {
			client, err := database.NewRedisClient(ctx, b.DriverConfig, b.Logger)
			if err != nil {
				return nil, err
			}
			b.Redis = client
		}
		provider = session.NewRedisSession(sharedRedis.NewRedisRepository(b.Redis), sessionConfig.RedisNamespace, b.Logger)
	default:
		provider = session.NewLocalStorageSession(sessionConfig.StorageFilePath, b.Logger)
	}

	return session.NewSessionGuard(provider, role, b.Logger), nil
}

func (o *rootOptions) shutdown() error {
	if o.bootstrap == nil {
		return nil
	}
	timeout := time.Duration(o.bootstrap.InternalConfig.App.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return o.bootstrap.Shutdown(ctx)
}
