package gtfsodc

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	server    *http.Server
	workspace *Workspace
)

// StartServer serves the compile and summary endpoints over the given
// workspace. Each compile request is one synchronous pass; there is no
// cancellation of a started compile.
func StartServer(ws *Workspace, port int) {
	workspace = ws
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/compile.json", handleCompileJSON)
	mux.HandleFunc("/api/compile.zip", handleCompileZip)
	mux.HandleFunc("/api/summary.json", handleSummaryJSON)

	addr := fmt.Sprintf(":%d", port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	}()
	logrus.Infof("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and drains the server.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logrus.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			logrus.Errorf("server shutdown error: %v", err)
		} else {
			logrus.Info("server shut down successfully")
		}
	}
}
