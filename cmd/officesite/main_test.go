package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officesite/internal/config"
)

func execute(t *testing.T, args ...string) string {
	a := &app{cfg: config.FromEnv(func(string) string { return "" })}
	a.cfg.ConnRetries = 1

	cmd := newRootCmd(a)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()), buf.String())
	return buf.String()
}

func TestMigrateThenSeedSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "site.db")
	dbArgs := []string{"--db-driver", "sqlite", "--database-url", dsn}

	out := execute(t, append([]string{"migrate", "up"}, dbArgs...)...)
	assert.Contains(t, out, "create_locations")

	out = execute(t, append([]string{"seed"}, dbArgs...)...)
	assert.Contains(t, out, "Locations created: 9")
	assert.Contains(t, out, "pune")

	out = execute(t, append([]string{"seed"}, dbArgs...)...)
	assert.Contains(t, out, "nothing inserted")
}

func TestRedirectsCmd(t *testing.T) {
	out := execute(t, "redirects", "check", "/virtual-office-in-pune")
	assert.Contains(t, out, "/virtual-office-in-pune -> 301 /")

	out = execute(t, "redirects", "check", "/virtual-office-in-pune/")
	assert.Contains(t, out, "is not redirected")

	out = execute(t, "redirects", "list")
	assert.Contains(t, out, "paths redirect to /")
}

func TestServeCmdFlags(t *testing.T) {
	a := &app{cfg: config.FromEnv(func(string) string { return "" })}
	cmd := newServeCmd(a)

	flag := cmd.Flags().Lookup("addr")
	require.NotNil(t, flag)
	assert.Equal(t, ":8080", flag.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("skip-seed"))
}
