package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/unlockedcoding/catalog/internal/catalog"
	"github.com/unlockedcoding/catalog/internal/config"
	"github.com/unlockedcoding/catalog/internal/pkg/logger"
	"github.com/unlockedcoding/catalog/internal/pkg/sftpclient"
	"github.com/unlockedcoding/catalog/internal/sitemap"
)

func main() {
	var (
		dataDir = flag.String("data", ".", "catalog data directory")
		baseURL = flag.String("base-url", "https://unlockedcoding.com", "site base URL for sitemap entries")
		outPath = flag.String("out", "out/sitemap.xml", "output sitemap path")
		upload  = flag.Bool("upload", false, "upload to SFTP after generating the file")
	)
	flag.Parse()

	start := time.Now()

	store := catalog.NewStore(*dataDir)
	urls := sitemap.Build(store, *baseURL, time.Now())

	if err := sitemap.Write(*outPath, urls); err != nil {
		logger.Fatal().Err(err).Msg("Failed to write sitemap")
	}
	logger.Info().Int("urls", len(urls)).Str("path", *outPath).Msg("Sitemap written")

	if *upload {
		cfg := sftpclient.Config{
			Host:      config.GetEnv("SFTP_HOST", ""),
			Port:      config.GetEnvAsInt("SFTP_PORT", 22),
			User:      config.GetEnv("SFTP_USER", ""),
			Pass:      config.GetEnv("SFTP_PASS", ""),
			RemoteDir: config.GetEnv("SFTP_DIR", "/"),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := sftpclient.UploadFile(ctx, cfg, *outPath, filepath.Base(*outPath)); err != nil {
			logger.Fatal().Err(err).Msg("Failed to upload sitemap")
		}
		logger.Info().Str("host", cfg.Host).Str("file", filepath.Base(*outPath)).Msg("Sitemap uploaded")
	}

	logger.Info().Dur("elapsed", time.Since(start)).Msg("Done")
	os.Exit(0)
}
