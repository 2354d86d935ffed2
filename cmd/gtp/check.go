package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fractalqb/gtp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	checkCmd.RunE = checkFiles
	checkCmd.Flags().StringVarP(&checkCmd.setfile, "commands", "c", "",
		"Load the command set from a TOML or YAML file")
	rootCmd.AddCommand(&checkCmd.Command)
}

var checkCmd = struct {
	cobra.Command
	setfile string
}{
	Command: cobra.Command{
		Use:   "check [file ...]",
		Short: "Report protocol lines with unrecognized commands",
		Long: `Report protocol lines with unrecognized commands.

Lines are checked against the GTP version 2 standard command set unless
--commands names a file declaring the commands to accept:

    commands = ["play", "showboard", "quit"]   # TOML
    commands: [play, showboard, quit]          # YAML`,
	},
}

func checkFiles(cmd *cobra.Command, files []string) error {
	var bad int
	if checkCmd.setfile == "" {
		bad = checkAll(gtp.StdCommands, files)
	} else {
		reg, err := loadCommandSet(checkCmd.setfile)
		if err != nil {
			log.Fatal(err)
		}
		bad = checkAll(reg, files)
	}
	if bad > 0 {
		return fmt.Errorf("%d bad lines", bad)
	}
	return nil
}

func checkAll[T any](reg *gtp.Registry[T], files []string) (bad int) {
	if len(files) == 0 {
		return checkRd(reg, "stdin", os.Stdin, os.Stdout)
	}
	for _, f := range files {
		rd, err := os.Open(f)
		if err != nil {
			log.Fatal(err)
		}
		bad += checkRd(reg, f, rd, os.Stdout)
		rd.Close()
	}
	return bad
}

func checkRd[T any](reg *gtp.Registry[T], name string, rd io.Reader, w io.Writer) (bad int) {
	err := eachLine(rd, func(lno int, line string) {
		cmd, err := reg.Parse(line)
		switch {
		case err != nil:
			fmt.Fprintf(w, "%s:%d: %s\n", name, lno, err)
			bad++
		case cmd.Unrecognized():
			fmt.Fprintf(w, "%s:%d: unrecognized command '%s'\n",
				name, lno, cmd.Raw.Name)
			bad++
		}
	})
	if err != nil {
		fmt.Fprintf(w, "%s: %s\n", name, err)
		bad++
	}
	return bad
}

type commandSet struct {
	Commands []string `toml:"commands" yaml:"commands"`
}

// loadCommandSet reads a command set declaration, the format is chosen
// by file extension.
func loadCommandSet(file string) (*gtp.Registry[string], error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var set commandSet
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &set)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &set)
	default:
		return nil, fmt.Errorf("unsupported command set format '%s'", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if len(set.Commands) == 0 {
		return nil, fmt.Errorf("%s: empty command set", file)
	}
	reg := gtp.NewRegistry[string]()
	for _, name := range set.Commands {
		reg.Register(name, name)
	}
	return reg, nil
}
