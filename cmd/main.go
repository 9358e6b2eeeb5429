package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"energyai/internal/handlers"
	"energyai/internal/logger"
	"energyai/internal/mail"
	"energyai/internal/repository"
	"energyai/internal/server"
	"energyai/internal/service"

	"github.com/spf13/viper"

	_ "energyai/docs"
)

// @title           EnergyAI API
// @version         1.0
// @description     Energy consumption prediction, analytics, and alerting.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services, err := service.NewService(repos, buildDeps(log))
	if err != nil {
		log.Fatalw("failed to build services", "err", err)
	}
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start the alert dispatch worker
	go services.Alerts.Run(ctx)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvPrefix("energyai")
	// nested keys map to underscored env vars: weather.api_key -> ENERGYAI_WEATHER_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // secrets come from ENERGYAI_* env vars
	return viper.ReadInConfig()
}

// buildDeps constructs the process-wide collaborators once, with injected
// configuration, and hands them down by reference.
func buildDeps(log *logger.Logger) service.Deps {
	return service.Deps{
		ML: service.NewMLClient(viper.GetString("ml.url")),
		Weather: service.NewWeatherService(
			viper.GetString("weather.api_key"),
			viper.GetFloat64("weather.lat"),
			viper.GetFloat64("weather.lon"),
		),
		Mail: mail.NewSMTPSender(mail.SMTPConfig{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.username"),
			Password: viper.GetString("smtp.password"),
			From:     viper.GetString("smtp.from"),
		}),
		SigningKey: viper.GetString("jwt.signing_key"),
		Region:     viper.GetString("carbon.region"),
		Log:        log,
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "energyai.db")
		dbPath = "energyai.db"
	}
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
