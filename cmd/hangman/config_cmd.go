package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/hangman/internal/config"
	"github.com/lox/hangman/internal/fileutil"
)

// ConfigCmd groups configuration subcommands
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a commented default configuration file"`
}

// ConfigInitCmd writes config.Template to disk
type ConfigInitCmd struct {
	Path  string `arg:"" optional:"" default:"hangman.hcl" help:"Destination file"`
	Force bool   `kong:"short='f',help='Overwrite an existing file'"`
}

func (c *ConfigInitCmd) Run() error {
	if !c.Force {
		if _, err := os.Stat(c.Path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", c.Path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	err := fileutil.WriteAtomic(c.Path, 0644, func(w io.Writer) error {
		_, err := io.WriteString(w, config.Template)
		return err
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", c.Path, err)
	}

	fmt.Printf("Wrote %s\n", c.Path)
	return nil
}
