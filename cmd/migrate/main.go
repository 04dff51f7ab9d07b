package main

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/migrations"
	"github.com/muhammadchandra19/crypto-collector/pkg/config"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
	"github.com/muhammadchandra19/crypto-collector/pkg/questdb"
)

// Applies the embedded schema files in lexical order. QuestDB's CREATE TABLE
// IF NOT EXISTS makes reruns safe, so there is no migration bookkeeping
// table.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	client, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		log.Fatalf("Failed to initialize QuestDB client: %v", err)
	}
	defer client.Close()

	entries, err := migrations.Files.ReadDir(".")
	if err != nil {
		log.Fatalf("Failed to read embedded migrations: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := migrations.Files.ReadFile(name)
		if err != nil {
			log.Fatalf("Failed to read migration %s: %v", name, err)
		}

		for _, statement := range splitStatements(string(content)) {
			if err := client.Exec(ctx, statement); err != nil {
				log.Fatalf("Migration %s failed: %v", name, err)
			}
		}
		lg.Info("migration applied", logger.Field{Key: "file", Value: name})
	}

	lg.Info("schema up to date", logger.Field{Key: "migrations", Value: len(names)})
}

// splitStatements breaks a schema file into individual statements, dropping
// comment lines and blanks.
func splitStatements(content string) []string {
	var statements []string
	for _, chunk := range strings.Split(content, ";") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		statement := strings.TrimSpace(strings.Join(lines, "\n"))
		if statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
