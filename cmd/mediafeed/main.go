package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bitacora/mediafeed/internal/config"
	"bitacora/mediafeed/internal/pipeline"
	"bitacora/mediafeed/internal/server"
	"bitacora/mediafeed/internal/youtube"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func main() {
	cfg := config.DefaultConfig()

	fetchCmd := flag.NewFlagSet("fetch", flag.ExitOnError)
	addCommonFlags(fetchCmd, cfg)

	var fetchLogLevelStr string
	fetchCmd.StringVar(&fetchLogLevelStr, "log-level", config.GetEnvString("MEDIAFEED_LOG_LEVEL", config.DefaultLogLevel),
		"Log level: debug, info, warn, error (env: MEDIAFEED_LOG_LEVEL)")

	serverCmd := flag.NewFlagSet("server", flag.ExitOnError)
	addCommonFlags(serverCmd, cfg)

	serverCmd.StringVar(&cfg.ServerHost, "host", config.GetEnvString("MEDIAFEED_HOST", config.DefaultServerHost),
		"Host to bind the server to (env: MEDIAFEED_HOST)")

	serverCmd.IntVar(&cfg.ServerPort, "port", config.GetEnvInt("MEDIAFEED_PORT", config.DefaultServerPort),
		"Port to listen on (env: MEDIAFEED_PORT)")

	serverCmd.StringVar(&cfg.ServerAPIKey, "server-key", config.GetEnvString("MEDIAFEED_SERVER_API_KEY", ""),
		"API key clients must send in X-API-Key, empty disables auth (env: MEDIAFEED_SERVER_API_KEY)")

	var serverLogLevelStr string
	serverCmd.StringVar(&serverLogLevelStr, "log-level", config.GetEnvString("MEDIAFEED_LOG_LEVEL", config.DefaultLogLevel),
		"Log level: debug, info, warn, error (env: MEDIAFEED_LOG_LEVEL)")

	if len(os.Args) < 2 {
		fmt.Println("Usage: mediafeed [command] [options]")
		fmt.Println("Commands: fetch, server")
		fmt.Println("\nFor command-specific options, use: mediafeed [command] -h")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "fetch":
		fetchCmd.Parse(os.Args[2:])

		// Handle log level parsing separately since it needs conversion
		if level, err := zerolog.ParseLevel(fetchLogLevelStr); err == nil {
			cfg.LogLevel = level
		}

		zerolog.SetGlobalLevel(cfg.LogLevel)

		if err := runFetch(cfg); err != nil {
			log.Error().Err(err).Msg("Fetch failed")
			os.Exit(1)
		}

	case "server":
		serverCmd.Parse(os.Args[2:])

		// Handle log level parsing separately
		if level, err := zerolog.ParseLevel(serverLogLevelStr); err == nil {
			cfg.LogLevel = level
		}

		zerolog.SetGlobalLevel(cfg.LogLevel)

		if err := runServer(cfg); err != nil {
			log.Error().Err(err).Msg("Server failed")
			os.Exit(1)
		}

	case "-h", "--help", "help":
		fmt.Println("Usage: mediafeed [command] [options]")
		fmt.Println("Commands: fetch, server")
		fmt.Println("\nFor command-specific options, use: mediafeed [command] -h")
		os.Exit(0)

	default:
		log.Error().Str("command", os.Args[1]).Msg("Unknown command")
		fmt.Println("Available commands: fetch, server")
		fmt.Println("\nFor command-specific options, use: mediafeed [command] -h")
		os.Exit(1)
	}
}

// addCommonFlags registers the flags shared by every subcommand that
// talks to the upstream API.
func addCommonFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.APIKey, "key", config.GetEnvString("MEDIAFEED_API_KEY", ""),
		"Upstream API key (env: MEDIAFEED_API_KEY)")

	fs.StringVar(&cfg.ChannelID, "channel", config.GetEnvString("MEDIAFEED_CHANNEL_ID", config.DefaultChannelID),
		"Channel ID whose uploads back playlist-less groups (env: MEDIAFEED_CHANNEL_ID)")

	fs.StringVar(&cfg.GroupsCSVPath, "playlists", config.GetEnvString("MEDIAFEED_PLAYLISTS_PATH", config.DefaultGroupsCSVPath),
		"Path to the playlist groups CSV file, built-in groups are used if missing (env: MEDIAFEED_PLAYLISTS_PATH)")

	fs.Int64Var(&cfg.PageSize, "page-size", int64(config.GetEnvInt("MEDIAFEED_PAGE_SIZE", config.DefaultPageSize)),
		"Number of items to request per group (env: MEDIAFEED_PAGE_SIZE)")

	fs.DurationVar(&cfg.FetchTimeout, "timeout", config.GetEnvDuration("MEDIAFEED_FETCH_TIMEOUT", config.DefaultFetchTimeout),
		"Per-group fetch timeout (env: MEDIAFEED_FETCH_TIMEOUT, in seconds)")
}

// loadGroups replaces the built-in groups with the CSV file contents
// when the file exists. A missing file is not an error.
func loadGroups(cfg *config.Config) error {
	if _, err := os.Stat(cfg.GroupsCSVPath); err != nil {
		log.Debug().Str("path", cfg.GroupsCSVPath).Msg("No playlist groups file found, using built-in groups")
		return nil
	}

	groups, err := config.LoadGroupsCSV(cfg.GroupsCSVPath)
	if err != nil {
		return fmt.Errorf("failed to load playlist groups: %w", err)
	}

	log.Info().Int("group_count", len(groups)).Str("path", cfg.GroupsCSVPath).Msg("Loaded playlist groups from CSV")
	cfg.Groups = groups
	return nil
}

// buildAggregator wires the upstream client into the pipeline.
func buildAggregator(ctx context.Context, cfg *config.Config) (*pipeline.Aggregator, *youtube.Client, error) {
	client, err := youtube.NewClient(ctx, cfg.APIKey, cfg.ChannelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize upstream client: %w", err)
	}

	agg, err := pipeline.New(client, cfg.Groups, cfg.PageSize, cfg.FetchTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize aggregator: %w", err)
	}

	return agg, client, nil
}

// runFetch executes a single aggregation cycle and writes the merged
// result as JSON to stdout.
func runFetch(cfg *config.Config) error {
	if err := loadGroups(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	agg, _, err := buildAggregator(ctx, cfg)
	if err != nil {
		return err
	}

	items := agg.FetchAll(ctx)
	if len(items) == 0 {
		log.Warn().Msg("Aggregation yielded no items, emitting placeholder content")
		items = pipeline.Placeholders()
	}

	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// runServer starts the HTTP API server with the provided configuration.
func runServer(cfg *config.Config) error {
	log.Debug().Msg("Starting server with debug logging enabled")

	if err := loadGroups(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	agg, client, err := buildAggregator(context.Background(), cfg)
	if err != nil {
		return err
	}

	return server.RunServer(agg, client, cfg.ListenAddr(), log.Logger, cfg.ServerAPIKey)
}
