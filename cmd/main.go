// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for cpmod.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/janderssonse/cpmod/internal/cli"
	"github.com/janderssonse/cpmod/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.App().Run(ctx, os.Args); err != nil {
		return exitCode(err)
	}

	return cli.ExitSuccess
}

// exitCode maps a command error to the process exit code. ExitErrors with an
// empty message were already reported by the command.
func exitCode(err error) int {
	exitErr := &domain.ExitError{}
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintf(os.Stderr, "[Error] %s\n", exitErr.Error())
		}

		return exitErr.Code
	}

	fmt.Fprintf(os.Stderr, "[Error] %v\n", err)

	return cli.ExitGeneralError
}
