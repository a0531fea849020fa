package main

import (
	"fmt"
	"strconv"

	"github.com/go-extras/cobraflags"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rk2835/aquahub/internal/database"
	"github.com/rk2835/aquahub/internal/logger"
	"github.com/spf13/cobra"
)

const (
	targetFlag    = "target"
	latestVersion = "latest"
)

var migrateFlags = map[string]cobraflags.Flag{
	targetFlag: &cobraflags.StringFlag{
		Name:  targetFlag,
		Value: latestVersion,
		Usage: "Schema version to migrate to; 0 drops everything",
	},
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
		Example: `  aquahub migrate              # apply every pending migration
  aquahub migrate --target 0   # roll everything back`,
		RunE: migrateCommand,
	}

	cobraflags.RegisterMap(cmd, migrateFlags)
	return cmd
}

func migrateCommand(cmd *cobra.Command, _ []string) error {
	target, err := parseTarget(migrateFlags[targetFlag].GetString())
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Observability)

	return database.Migrate(cmd.Context(), &log, cfg, target)
}

// parseTarget maps "latest" to -1, which Migrate reads as the newest version.
func parseTarget(value string) (int32, error) {
	if value == "" || value == latestVersion {
		return -1, nil
	}

	target, err := strconv.ParseInt(value, 10, 32)
	if err != nil || target < 0 {
		return 0, fmt.Errorf("invalid --%s %q: want %q or a non-negative version", targetFlag, value, latestVersion)
	}
	return int32(target), nil
}
