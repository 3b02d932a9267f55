// Package main implements beaconctl, a tool for inspecting and converting
// tracker payloads: JSON to blob files, blob files back to JSON, query-string
// previews and event ID generation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beaconkit/beaconkit/internal/config"
	"github.com/beaconkit/beaconkit/internal/logging"
	"github.com/beaconkit/beaconkit/pkg/blob"
	"github.com/beaconkit/beaconkit/pkg/track"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		configFile  string
		dataDir     string
		logLevel    string
		logFormat   string
		mode        string
		inPath      string
		outPath     string
		count       int
		showVersion bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.StringVar(&dataDir, "data-dir", "", "Directory for payload blob files")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&logFormat, "log-format", "", "Log format: console, json")
	flag.StringVar(&mode, "mode", "", "Operation: encode, decode, query, id")
	flag.StringVar(&inPath, "in", "", "Input file (defaults to stdin for encode/query)")
	flag.StringVar(&outPath, "out", "", "Output file (defaults to data dir for encode, stdout otherwise)")
	flag.IntVar(&count, "n", 1, "Number of event IDs to generate in id mode")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "beaconctl - tracker payload inspection and conversion\n\n")
		fmt.Fprintf(os.Stderr, "Usage: beaconctl --mode <encode|decode|query|id> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  beaconctl --mode encode --in event.json --out event.blob\n")
		fmt.Fprintf(os.Stderr, "  beaconctl --mode decode --in event.blob\n")
		fmt.Fprintf(os.Stderr, "  beaconctl --mode query --in event.json\n")
		fmt.Fprintf(os.Stderr, "  beaconctl --mode id -n 5\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  BEACON_DATA_DIR       Directory for payload blob files\n")
		fmt.Fprintf(os.Stderr, "  BEACON_LOG_LEVEL      Log level (debug, info, warn, error)\n")
		fmt.Fprintf(os.Stderr, "  BEACON_LOG_FORMAT     Log format (console, json)\n")
		fmt.Fprintf(os.Stderr, "  BEACON_BLOB_COMPRESS  Snappy-compress blob bodies (true, false)\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("beaconctl %s (%s)\n", version, commit)
		os.Exit(0)
	}

	// Load configuration: file, then environment, then flags.
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.LoadFromFile(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "beaconctl: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	config.LoadFromEnv(cfg)
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "beaconctl: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "beaconctl: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(level, cfg.Log.Format)
	utils := track.New(log)

	switch mode {
	case "encode":
		err = runEncode(cfg, utils, inPath, outPath)
	case "decode":
		err = runDecode(utils, inPath)
	case "query":
		err = runQuery(utils, inPath)
	case "id":
		err = runID(utils, count)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("command failed")
		os.Exit(1)
	}
}

func readInput(inPath string) ([]byte, error) {
	if inPath == "" || inPath == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inPath)
}

func runEncode(cfg *config.Config, utils *track.Utils, inPath, outPath string) error {
	text, err := readInput(inPath)
	if err != nil {
		return err
	}
	p, err := utils.PayloadFromJSON(string(text))
	if err != nil {
		return err
	}

	if outPath == "" {
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}
		outPath = filepath.Join(cfg.DataDir, fmt.Sprintf("payload-%s.blob", utils.NewEventID()))
	}

	if cfg.Blob.Compress {
		if err := utils.WritePayloadFile(outPath, p); err != nil {
			return err
		}
	} else {
		data, err := blob.MarshalNoCompress(p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return err
		}
	}

	fmt.Println(outPath)
	return nil
}

func runDecode(utils *track.Utils, inPath string) error {
	p, err := utils.ReadPayloadFile(inPath)
	if err != nil {
		return err
	}
	text, err := utils.PayloadToJSON(p)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func runQuery(utils *track.Utils, inPath string) error {
	text, err := readInput(inPath)
	if err != nil {
		return err
	}
	p, err := utils.PayloadFromJSON(string(text))
	if err != nil {
		return err
	}
	fmt.Println(utils.QueryString(p))
	return nil
}

func runID(utils *track.Utils, count int) error {
	if err := track.Require(count > 0, "id count must be positive"); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		fmt.Println(utils.NewEventID())
	}
	return nil
}
