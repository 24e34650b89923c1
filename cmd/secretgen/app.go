// Package main - secretgen: generate, validate, and inspect cryptoserver secret directories
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"io"

	"github.com/urfave/cli"
)

const (
	appName = "secretgen"
	version = "1.0"
)

const (
	cmdGen      = "gen"
	cmdValidate = "validate"
	cmdInspect  = "inspect"
	cmdKeyID    = "keyid"
)

var (
	modeFlag = cli.StringFlag{
		Name:  "mode, m",
		Usage: "secret store mode: MODE0, MODE16, or MODE32",
		Value: "MODE0",
	}
	dirFlag = cli.StringFlag{
		Name:  "dir, d",
		Usage: "secret directory",
		Value: "/secrets",
	}
	sparseFlag = cli.BoolFlag{
		Name:  "sparse",
		Usage: "create zero-filled sparse files of the correct size (testing only: all secrets are zero)",
	}
	forceFlag = cli.BoolFlag{
		Name:  "force, f",
		Usage: "overwrite existing files",
	}
	jsonFlag = cli.BoolFlag{
		Name:  "json, j",
		Usage: "JSON output",
	}
	hashFlag = cli.StringFlag{
		Name:  "hash",
		Usage: "key-id hash function: murmur3 or xxh32",
		Value: "murmur3",
	}
)

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "generate, validate, and inspect cryptoserver secret directories"
	app.Version = version + "." + build
	app.Writer = w
	app.Commands = []cli.Command{
		{
			Name:   cmdGen,
			Usage:  "populate secret directory with random secrets for a given mode",
			Flags:  []cli.Flag{modeFlag, dirFlag, sparseFlag, forceFlag},
			Action: genHandler,
		},
		{
			Name:   cmdValidate,
			Usage:  "check that secret directory has the exact layout a given mode requires",
			Flags:  []cli.Flag{modeFlag, dirFlag},
			Action: validateHandler,
		},
		{
			Name:   cmdInspect,
			Usage:  "show which mode(s) secret directory satisfies",
			Flags:  []cli.Flag{dirFlag, jsonFlag},
			Action: inspectHandler,
		},
		{
			Name:      cmdKeyID,
			Usage:     "show key ID, secret file, and offset for a given payload",
			ArgsUsage: "PAYLOAD|@FILE",
			Flags:     []cli.Flag{modeFlag, hashFlag},
			Action:    keyIDHandler,
		},
	}
	return app
}
