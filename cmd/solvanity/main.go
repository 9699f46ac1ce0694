package main

import (
	"fmt"
	"os"
	"path/filepath"

	"solvanity/internal/cli"
	"solvanity/pkg/appcfg"
	"solvanity/pkg/logx"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getwd: %v\n", err)
		os.Exit(2)
	}

	appConf, err := appcfg.Load(filepath.Join(cwd, "configs", "app.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config: %v (using defaults)\n", err)
		appConf = appcfg.Default()
	}

	if err := logx.Init(logx.Config{
		Level:                appConf.LogLevel,
		FilePath:             appConf.LogFile,
		ConsoleOnly:          appConf.LogFile == "",
		HideSecretsInConsole: appConf.HideSecretsInConsole,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "log init: %v\n", err)
		os.Exit(1)
	}
	defer logx.Close()

	logx.S().Infow("solvanity started",
		"cwd", cwd,
		"log_level", appConf.LogLevel,
		"hide_secrets_in_console", appConf.HideSecretsInConsole,
	)

	if err := cli.NewRootCmd(appConf).Execute(); err != nil {
		logx.Close()
		os.Exit(1)
	}
}
