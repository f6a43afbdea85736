package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"daysched/internal/app"
)

// configEnv names the config file when -config is not given.
const configEnv = "DAYSCHED_CONFIG"

// loadEnv reads dotenv files into the environment. Missing files are fine;
// variables already set win.
func loadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}

	var cfgPath string
	flag.StringVar(&cfgPath, "config", os.Getenv(configEnv), "path to config yaml/json (optional, or $"+configEnv+")")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.NewApp(cfgPath, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
	if err := a.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fatal start:", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-a.Done():
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	if err := a.Stop(stopCtx); err != nil {
		fmt.Fprintln(os.Stderr, "stop:", err)
		os.Exit(1)
	}
}
