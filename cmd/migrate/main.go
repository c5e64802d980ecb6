package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/config"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/migration"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const usage = `usage: migrate [-path file://migrations] <command>

commands:
  up           apply all pending migrations
  down [n]     roll back n migrations (default 1)
  version      print the current version
  force <v>    set the version without running migrations
`

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	path := flag.String("path", cfg.MigrationsPath, "migration source URL")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	runner, err := migration.NewRunner(*path, cfg.DB.URL(), logger)
	if err != nil {
		logger.Fatal("open migrations failed", zap.Error(err))
	}
	defer runner.Close()

	if err := run(runner, flag.Args()); err != nil {
		logger.Fatal("migrate failed", zap.String("command", flag.Arg(0)), zap.Error(err))
	}
}

func run(runner *migration.Runner, args []string) error {
	switch args[0] {
	case "up":
		return runner.Up()
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid step count %q", args[1])
			}
			steps = n
		}
		return runner.Down(steps)
	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version %d dirty=%t\n", version, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force needs a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		return runner.Force(v)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
