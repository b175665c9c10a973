package main

import (
	"context"
	"log"

	"github.com/befound-studio/studio-backend/config"
	httpapi "github.com/befound-studio/studio-backend/internal/api/http"
	"github.com/befound-studio/studio-backend/internal/bootstrap"
	"github.com/befound-studio/studio-backend/internal/contact/mailer"
	contactsvc "github.com/befound-studio/studio-backend/internal/contact/service"
	cronjob "github.com/befound-studio/studio-backend/internal/content/cron"
	"github.com/befound-studio/studio-backend/internal/content/repository"
	"github.com/befound-studio/studio-backend/internal/content/sanity"
	contentsvc "github.com/befound-studio/studio-backend/internal/content/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	client := sanity.NewClient(sanity.Options{
		ProjectID:  cfg.Content.ProjectID,
		Dataset:    cfg.Content.Dataset,
		APIVersion: cfg.Content.APIVersion,
		UseCDN:     cfg.Content.UseCDN,
	})

	var contentRepo repository.ContentRepository = repository.NewSanityRepository(client)
	var cachePinger httpapi.CachePinger

	if cfg.Cache.RedisAddr != "" {
		redisClient, err := bootstrap.OpenRedis(context.Background(), bootstrap.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
		})
		if err != nil {
			log.Printf("cache disabled: %v", err)
		} else {
			cached := repository.NewCachedRepository(contentRepo, redisClient, cfg.Cache.TTL)
			contentRepo = cached
			cachePinger = cached

			scheduler := cronjob.NewScheduler(cached, cfg.Content.RefreshSpec)
			scheduler.Start()
		}
	}

	smtp := mailer.NewSMTPMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "studio-backend",
		Version:     cfg.App.Version,
		Content:     contentsvc.New(contentRepo),
		Contact:     contactsvc.New(smtp, cfg.Mail.Inbox),
		Cache:       cachePinger,
	})

	log.Printf("listening on :%s (env=%s)", cfg.Server.Port, cfg.App.Environment)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
