package main

import (
	"log"

	"farm-visit/cmd"
	"farm-visit/internal/data/repository"
	"farm-visit/internal/notify"
	"farm-visit/internal/wire"
	"farm-visit/pkg/database"
	"farm-visit/pkg/kafka"
	"farm-visit/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Info("Database migrations applied")
	}

	var dispatcher notify.Dispatcher
	if config.Kafka.Enabled() {
		producer, err := kafka.NewProducer(config.Kafka, config.Notify.Timeout)
		if err != nil {
			logger.Fatal("Failed to create kafka producer", zap.Error(err), zap.Strings("brokers", config.Kafka.Brokers))
		}
		dispatcher = notify.NewKafkaDispatcher(producer, config.Kafka.Topic)
		logger.Info("Kafka notifications enabled", zap.String("topic", config.Kafka.Topic))
	} else {
		dispatcher = notify.NewLogDispatcher(logger)
	}
	notifier := notify.NewAsync(dispatcher, config.Notify.Timeout, logger)
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Error("Failed to close notifier", zap.Error(err))
		}
	}()

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, notifier, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
