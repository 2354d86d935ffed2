package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fractalqb/gtp"
	"github.com/spf13/cobra"
)

func init() {
	parseCmd.RunE = parseFiles
	rootCmd.AddCommand(&parseCmd.Command)
}

var parseCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "parse [file ...]",
		Short: "Parse protocol lines and print them in canonical form",
	},
}

func parseFiles(cmd *cobra.Command, files []string) error {
	bad := 0
	if len(files) == 0 {
		bad = parseRd("stdin", os.Stdin, os.Stdout)
	}
	for _, f := range files {
		rd, err := os.Open(f)
		if err != nil {
			log.Fatal(err)
		}
		bad += parseRd(f, rd, os.Stdout)
		rd.Close()
	}
	if bad > 0 {
		return fmt.Errorf("%d bad lines", bad)
	}
	return nil
}

func parseRd(name string, rd io.Reader, w io.Writer) (bad int) {
	err := eachLine(rd, func(lno int, line string) {
		raw, err := gtp.Parse[gtp.RawCommand](line)
		if err != nil {
			fmt.Fprintf(w, "%s:%d: %s\n", name, lno, err)
			bad++
			return
		}
		fmt.Fprintln(w, raw.String())
	})
	if err != nil {
		fmt.Fprintf(w, "%s: %s\n", name, err)
		bad++
	}
	return bad
}

// Protocol lines have no length limit, give the scanner more room than
// its default 64KiB.
const maxLineLen = 4 << 20

// eachLine calls do for every non-blank input line with '#' comments
// stripped, as engines preprocess their protocol input. A read or
// line-length error ends the scan and is returned, lines read so far
// stay processed.
func eachLine(rd io.Reader, do func(lno int, line string)) error {
	scn := bufio.NewScanner(rd)
	scn.Buffer(make([]byte, 0, 64<<10), maxLineLen)
	lno := 0
	for scn.Scan() {
		lno++
		line := scn.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		do(lno, line)
	}
	return scn.Err()
}
