// Command play runs a command script against an in-process session and
// writes the transcript to an output file. Each line is one command;
// blank lines and lines starting with # are skipped. A failed command
// becomes a transcript line and the run continues.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mhollis/fable-engine/internal/config"
	"github.com/mhollis/fable-engine/internal/logger"
	"github.com/mhollis/fable-engine/pkg/session"
	"github.com/mhollis/fable-engine/pkg/textfilter"
)

func main() {
	inPath := flag.String("in", "input.txt", "command script to run")
	outPath := flag.String("out", "output.txt", "transcript file to write")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg)

	in, err := os.Open(*inPath)
	if err != nil {
		log.Error("Failed to open script", "path", *inPath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(*outPath)
	if err != nil {
		log.Error("Failed to create transcript", "path", *outPath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = out.Close() }()

	s := session.New()
	var filter *textfilter.Filter
	if textfilter.ShouldFilter(cfg.Rating) {
		filter = textfilter.New()
	}

	log.Info("Running script", "session_id", s.ID, "script", *inPath)

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		output, err := s.Run(line)
		if err != nil {
			log.Debug("Command failed", "line", lineNo, "error", err)
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		for _, l := range output {
			if filter != nil {
				l = filter.Clean(l)
			}
			fmt.Fprintln(w, l)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("Failed to read script", "error", err)
		os.Exit(1)
	}

	if err := w.Flush(); err != nil {
		log.Error("Failed to write transcript", "error", err)
		os.Exit(1)
	}

	log.Info("Script finished", "lines", lineNo, "transcript", *outPath)
}
