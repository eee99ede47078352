package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/itemsvc/internal/config"
)

func TestCLIParsing(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		config  string
		verbose bool
	}{
		{"default command", []string{}, "serve", "itemsvc.yaml", false},
		{"serve with config", []string{"-c", "/etc/itemsvc.yaml", "serve"}, "serve", "/etc/itemsvc.yaml", false},
		{"verbose", []string{"--verbose", "serve"}, "serve", "itemsvc.yaml", true},
		{"version", []string{"version"}, "version", "itemsvc.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			parser, err := kong.New(&cli, kong.Vars{"version": "test"})
			require.NoError(t, err)
			ctx, err := parser.Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.command, ctx.Command())
			assert.Equal(t, tt.verbose, cli.Verbose)
			if filepath.IsAbs(tt.config) {
				assert.Equal(t, tt.config, cli.Config)
			} else {
				assert.Equal(t, tt.config, filepath.Base(cli.Config))
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := &VersionCmd{out: &buf}
	require.NoError(t, cmd.Run(&Global{}, &CLI{}))
	assert.Contains(t, buf.String(), "itemsvc unknown")
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = 2 * time.Second
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "items.db")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunServer(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRunServer_BadDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "oracle"

	err := RunServer(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}
