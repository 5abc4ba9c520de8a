// Command churchtools automates recurring tasks on a ChurchTools instance.
package main

import (
	"os"
	"path/filepath"

	"github.com/rh4001/ChurchToolsAPI/internal/adapters/driven/auth"
	"github.com/rh4001/ChurchToolsAPI/internal/adapters/driven/config/file"
	"github.com/rh4001/ChurchToolsAPI/internal/adapters/driven/storage/memory"
	"github.com/rh4001/ChurchToolsAPI/internal/adapters/driven/storage/sqlite"
	"github.com/rh4001/ChurchToolsAPI/internal/adapters/driving/cli"
	"github.com/rh4001/ChurchToolsAPI/internal/connectors/churchtools"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
	"github.com/rh4001/ChurchToolsAPI/internal/core/services"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

// Set at build time, e.g.
//
//	go build -ldflags "-X main.version=1.2.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%FT%TZ)"
var (
	version = "dev"
	commit  string
	date    string
)

func main() {
	var store *sqlite.Store

	cli.SetBuildInfo(version, commit, date)
	cli.SetSetup(func(configDir string) error {
		config, err := file.NewConfigStore(configDir)
		if err != nil {
			return err
		}

		tokens := auth.NewConfigTokenProvider(config)
		client := churchtools.NewClient(churchtools.LoadConfig(config), tokens)

		var importLog driven.ImportLogStore
		dataDir := ""
		if configDir != "" {
			dataDir = filepath.Join(configDir, "data")
		}
		store, err = sqlite.NewStore(dataDir)
		if err != nil {
			logger.Warn("Import log unavailable, re-runs rely on the id column: %v", err)
			importLog = memory.NewImportLogStore()
		} else {
			importLog = store.ImportLogStore()
		}

		newClient := func(domainURL, token string) driven.DirectoryClient {
			cfg := churchtools.LoadConfig(config)
			cfg.BaseURL = churchtools.NormalizeDomain(domainURL)
			return churchtools.NewClient(cfg, auth.NewStaticTokenProvider(token))
		}

		cli.SetAuthService(services.NewAuthService(config, client, newClient))
		cli.SetPhonebookService(services.NewPhonebookService(client, config))
		cli.SetCalendarService(services.NewCalendarImportService(client, importLog, config))
		cli.SetSongService(services.NewSongService(client))
		cli.SetFileService(services.NewFileService(client))
		return nil
	})

	err := cli.Execute()
	if store != nil {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("Closing database: %v", cerr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}
