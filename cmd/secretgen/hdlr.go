// Package main - secretgen: generate, validate, and inspect cryptoserver secret directories
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/secret"
	"github.com/NVIDIA/cryptoserver/sign"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli"
)

// "mode, m" => "mode"
func flagName(f cli.Flag) string {
	name, _, _ := strings.Cut(f.GetName(), ",")
	return name
}

func parseMode(c *cli.Context) (cmn.Mode, error) {
	return cmn.ParseMode(c.String(flagName(modeFlag)))
}

func genHandler(c *cli.Context) error {
	mode, err := parseMode(c)
	if err != nil {
		return err
	}
	args := &secret.GenArgs{
		Dir:    c.String(flagName(dirFlag)),
		Mode:   mode,
		Sparse: c.Bool(flagName(sparseFlag)),
		Force:  c.Bool(flagName(forceFlag)),
	}
	if err := secret.Generate(args); err != nil {
		return err
	}
	if err := secret.Validate(context.Background(), mode, args.Dir); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s: generated %d file(s) in %q\n", mode, secret.NumFiles(mode), args.Dir)
	return nil
}

func validateHandler(c *cli.Context) error {
	mode, err := parseMode(c)
	if err != nil {
		return err
	}
	dir := c.String(flagName(dirFlag))
	if err := secret.Validate(context.Background(), mode, dir); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s: %q is valid\n", mode, dir)
	return nil
}

func inspectHandler(c *cli.Context) error {
	layout, err := secret.Inspect(c.String(flagName(dirFlag)))
	if err != nil {
		return err
	}
	if !c.Bool(flagName(jsonFlag)) {
		fmt.Fprintln(c.App.Writer, layout.String())
		return nil
	}
	modes := layout.Modes()
	out := struct {
		*secret.Layout
		Modes []string `json:"modes"`
	}{Layout: layout, Modes: make([]string, 0, len(modes))}
	for _, m := range modes {
		out.Modes = append(out.Modes, m.String())
	}
	b, err := jsoniter.MarshalIndent(out, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(b))
	return nil
}

func keyIDHandler(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expecting exactly one argument: %s", c.Command.ArgsUsage)
	}
	mode, err := parseMode(c)
	if err != nil {
		return err
	}
	keyHash, err := sign.ParseKeyHash(c.String(flagName(hashFlag)))
	if err != nil {
		return err
	}
	payload := []byte(c.Args().First())
	if fname, ok := strings.CutPrefix(string(payload), "@"); ok {
		if payload, err = os.ReadFile(fname); err != nil {
			return err
		}
	}
	var (
		keyID = keyHash(payload)
		loc   = secret.Locate(mode, keyID)
	)
	fmt.Fprintf(c.App.Writer, "key ID: %#08x\nmode:   %s\nfile:   %s\noffset: %d\n", keyID, mode, loc.Fname, loc.Off)
	return nil
}
