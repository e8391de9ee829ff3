package gtfsodc

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/compiler"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/config"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/overrides"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/restriction"
)

// Workspace bundles a loaded feed index with its restriction store. It is
// the unit both the CLI and the server operate on.
type Workspace struct {
	GTFS         *gtfs.Index
	Rules        *restriction.Store
	ImportReport *overrides.Report
}

// LoadWorkspace loads the static feed and, when configured, the overrides
// artifact. Unmatched override entries are logged and dropped; only feed or
// document level failures are returned as errors.
func LoadWorkspace(cfg config.AppConfig) (*Workspace, error) {
	idx, err := gtfs.NewIndexFromConfig(cfg.GTFS)
	if err != nil {
		return nil, err
	}
	logrus.Infof("loaded GTFS static: %d trips, %d stop_times", idx.TripCount(), idx.StopTimeCount())

	ws := &Workspace{GTFS: idx, Rules: restriction.NewStore()}
	if cfg.Overrides.Path != "" {
		data, err := os.ReadFile(cfg.Overrides.Path)
		if err != nil {
			return nil, err
		}
		report, err := overrides.Import(data, idx, ws.Rules)
		if err != nil {
			return nil, err
		}
		report.LogAll()
		ws.ImportReport = report
	}
	return ws, nil
}

// Compile runs the OD compiler over the workspace's current state.
func (w *Workspace) Compile() compiler.Result {
	return compiler.Compile(w.GTFS, w.Rules)
}
