package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"consigna/internal/config"
	"consigna/internal/db"
	"consigna/internal/directory"
	"consigna/internal/handler"
	transport "consigna/internal/http"
	"consigna/internal/logger"
	"consigna/internal/mail"
	"consigna/internal/repository"
	"consigna/internal/scheduler"
	"consigna/internal/service"
	"consigna/internal/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open object store: %v", err)
	}
	defer store.Close()

	mailer, err := mail.NewSMTPMailer(mail.SMTPOptions{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	if err != nil {
		log.Fatalf("configure mailer: %v", err)
	}

	folderRepo := repository.NewFolderRepository()

	folderService := service.NewFolderService(folderRepo)
	fileService := service.NewFileService(store)
	notificationService := service.NewNotificationService(mailer)

	folderHandler := handler.NewFolderHandler(folderService)
	fileHandler := handler.NewFileHandler(fileService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	router := transport.NewRouter(folderHandler, fileHandler, notificationHandler, cfg.CORSOrigin)

	// The reminder poller runs only when an events database is configured.
	var sched *scheduler.Scheduler
	if cfg.EventsDBPath != "" {
		eventsDB, err := db.Open(cfg.EventsDBPath)
		if err != nil {
			log.Fatalf("open events database: %v", err)
		}
		defer eventsDB.Close()

		var resolver directory.Resolver
		if cfg.DirectoryURL != "" {
			resolver, err = directory.New(cfg.DirectoryURL, cfg.DirectoryToken)
			if err != nil {
				log.Fatalf("configure directory client: %v", err)
			}
		}

		reminderService := service.NewReminderService(
			repository.NewEventRepository(eventsDB),
			mailer,
			resolver,
			cfg.ReminderWindow,
		)
		sched = scheduler.New(reminderService, cfg.ReminderInterval)
		sched.Start()
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down", "module", "main", "action", "shutdown", "resource", "server", "result", "ok")
		if sched != nil {
			sched.Stop()
		}
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.ObjectStore, error) {
	if cfg.StoreURL != "" {
		return storage.NewBlobStore(ctx, cfg.StoreURL)
	}
	return storage.NewS3Store(ctx, storage.S3Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		KeyID:     cfg.S3KeyID,
		KeySecret: cfg.S3KeySecret,
		Bucket:    cfg.S3Bucket,
	})
}
