package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	lib "github.com/theoremus-urban-solutions/gtfs-od-compiler"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/config"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/formatter"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/overrides"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|server")
	gtfsPath := flag.String("gtfs", "", "GTFS static zip path or URL (overrides config)")
	agencyID := flag.String("agency", "", "agency_id (overrides config)")
	overridesPath := flag.String("overrides", "", "restriction overrides JSON path (overrides config)")
	out := flag.String("out", "", "output path; empty writes to stdout")
	format := flag.String("format", "", "csv|json (overrides config)")
	exportRules := flag.String("exportRules", "", "re-export the imported rule set to this path and exit")
	port := flag.Int("port", 0, "server port (overrides config)")
	logLevel := flag.String("log-level", "", "debug|info|warn|error|fatal|panic")
	flag.Parse()

	// .env is optional; ignore if missing.
	_ = godotenv.Load()

	if err := config.LoadAppConfig(); err != nil {
		// Config file is optional when the feed comes from flags.
		if *gtfsPath == "" {
			panic(err)
		}
		config.Config, _ = config.Parse(nil)
	}
	cfg := config.Config
	if *gtfsPath != "" {
		cfg.GTFS.StaticURL = *gtfsPath
	}
	if *agencyID != "" {
		cfg.GTFS.AgencyID = *agencyID
	}
	if *overridesPath != "" {
		cfg.Overrides.Path = *overridesPath
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *out != "" {
		cfg.Output.Path = *out
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	lib.InitLogging(cfg.LogLevel)

	ws, err := lib.LoadWorkspace(cfg)
	if err != nil {
		logrus.Fatalf("load workspace: %v", err)
	}

	if *exportRules != "" {
		data, err := overrides.Export(ws.Rules)
		if err != nil {
			logrus.Fatalf("export rules: %v", err)
		}
		if err := os.WriteFile(*exportRules, data, 0o644); err != nil {
			logrus.Fatalf("write %s: %v", *exportRules, err)
		}
		logrus.Infof("exported %d rules to %s", ws.Rules.Len(), *exportRules)
		return
	}

	switch *mode {
	case "oneshot":
		res := ws.Compile()
		logrus.Infof("compile: %d source trips -> %d emitted (%d split, %d skipped)",
			res.Stats.SourceTrips, res.Stats.EmittedTrips, res.Stats.SplitTrips, res.Stats.SkippedTrips)
		dst := os.Stdout
		if cfg.Output.Path != "" {
			f, err := os.Create(cfg.Output.Path)
			if err != nil {
				logrus.Fatalf("create %s: %v", cfg.Output.Path, err)
			}
			defer f.Close()
			dst = f
		}
		if cfg.Output.Format == "json" {
			if _, err := dst.Write(formatter.BuildJSON(res)); err != nil {
				logrus.Fatalf("write output: %v", err)
			}
		} else {
			if err := formatter.WriteCSVZip(dst, res); err != nil {
				logrus.Fatalf("write output: %v", err)
			}
		}
	case "server":
		lib.StartServer(ws, cfg.Server.Port)
		lib.HandleGracefulShutdown()
	default:
		logrus.Fatalf("unknown mode %q", *mode)
	}
}
