package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/acme/autocert"

	"github.com/cakirmemati3-ui/video-backend/config"
	"github.com/cakirmemati3-ui/video-backend/consts"
	"github.com/cakirmemati3-ui/video-backend/controller"
	"github.com/cakirmemati3-ui/video-backend/log"
	"github.com/cakirmemati3-ui/video-backend/mdb"
	"github.com/cakirmemati3-ui/video-backend/router"
	"github.com/cakirmemati3-ui/video-backend/service"
)

var serve = &cobra.Command{
	Use:   "serve",
	Short: "run the fetch API server",
	Run: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatal("config error: %v", err)
		}
		_ = log.New(cfg.LogLevel, cfg.LogFormat, cfg.LogDir, log.LstdFlags)

		if err = service.CheckExtractor(cfg.YtdlpPath); err != nil {
			log.Fatal("startup check: %v", err)
		}

		rdb := mdb.InitRedis(cfg)

		extractor := service.NewYtdlpExtractor(cfg.YtdlpPath)
		fetcher := service.NewFetcher(extractor, cfg.MaxDownloadSizeMB,
			time.Duration(cfg.ExtractTimeoutSec)*time.Second)
		h := controller.NewHandler(fetcher)
		r := router.API(h, *cfg, rdb)

		srv := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: r,
		}

		log.Info("%s v%s", consts.AppName, consts.AppVersion)
		log.Info("rate limit: %d/min per IP, max file size: %dMB, extract timeout: %ds",
			cfg.RateLimitPerMinute, cfg.MaxDownloadSizeMB, cfg.ExtractTimeoutSec)

		go func() {
			if cfg.Domain != "" {
				// LetsEncrypt-managed TLS when a public domain is set
				manager := autocert.Manager{
					Prompt:     autocert.AcceptTOS,
					Cache:      autocert.DirCache("certs"),
					HostPolicy: autocert.HostWhitelist(cfg.Domain),
				}
				go func() {
					if err := http.ListenAndServe(":80", manager.HTTPHandler(nil)); err != nil {
						log.Error("acme listener: %v", err)
					}
				}()
				srv.Addr = ":443"
				srv.TLSConfig = manager.TLSConfig()
				log.Info("listening :443 for %s", cfg.Domain)
				if err := srv.ListenAndServeTLS("", ""); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("listen tls: %v", err)
				}
				return
			}
			log.Info("listening %s", cfg.ListenAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("listen: %v", err)
			}
		}()

		// Graceful shutdown
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Warn("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serve)
}
