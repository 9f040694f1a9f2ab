// main executable.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/poolqa/PngCheck/conf"
	"github.com/poolqa/PngCheck/loader"
	"github.com/poolqa/PngCheck/logger"
	"github.com/poolqa/PngCheck/pngChunk"
	"github.com/poolqa/PngCheck/report"
	"github.com/poolqa/PngCheck/watcher"
)

var version = "v0.0.1"

type commandOptions struct {
	Version bool     `help:"print version"`
	Conf    string   `help:"path to a config file" default:"pngcheck.yml"`
	Chunks  bool     `help:"list every chunk"`
	Watch   bool     `help:"inspect the files again each time they change"`
	Files   []string `arg:"" optional:"" name:"file" help:"PNG files to inspect"`
}

type program struct {
	conf   *conf.Conf
	logger *logger.Logger
	out    io.Writer
	dec    pngChunk.Decoder
	opts   report.Options
}

// inspect decodes a file and prints it. It returns false on failure.
func (p *program) inspect(fpath string) bool {
	c, size, err := loader.Load(fpath, uint64(p.conf.MaxFileSize), p.dec)
	if err != nil {
		p.logger.Log(logger.Error, "%s: %v", fpath, err)
		return false
	}

	p.logger.Log(logger.Debug, "%s: %d chunks, %d bytes", fpath, len(c.Chunks()), size)

	err = report.Write(p.out, fpath, size, c, p.opts)
	if err != nil {
		p.logger.Log(logger.Error, "%v", err)
		return false
	}
	return true
}

func (p *program) watch(files []string) error {
	w := &watcher.Watcher{FilePaths: files}
	err := w.Initialize()
	if err != nil {
		return err
	}
	defer w.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	p.logger.Log(logger.Info, "watching %d files", len(files))

	for {
		select {
		case fpath, ok := <-w.Watch():
			if !ok {
				return fmt.Errorf("file watcher stopped")
			}
			p.logger.Log(logger.Info, "%s changed", fpath)
			p.inspect(fpath)

		case <-interrupt:
			p.logger.Log(logger.Info, "shutting down gracefully")
			return nil
		}
	}
}

func run(args []string, out io.Writer) int {
	var cli commandOptions

	parser, err := kong.New(&cli,
		kong.Name("pngcheck"),
		kong.Description("pngcheck "+version+": validates the chunk structure of PNG files"),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr))
	if err != nil {
		panic(err)
	}

	_, err = parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	if cli.Version {
		fmt.Fprintln(out, version)
		return 0
	}

	if len(cli.Files) == 0 {
		parser.Errorf("at least one file is required")
		return 1
	}

	cnf, confFound, err := conf.Load(cli.Conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %s\n", err)
		return 1
	}

	l := &logger.Logger{
		Level:        logger.Level(cnf.LogLevel),
		Destinations: cnf.LogDestinations,
		File:         cnf.LogFile,
	}
	err = l.Initialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %s\n", err)
		return 1
	}
	defer l.Close()

	if confFound {
		l.Log(logger.Debug, "configuration loaded from %s", cli.Conf)
	}

	p := &program{
		conf:   cnf,
		logger: l,
		out:    out,
		dec: pngChunk.Decoder{
			StrictMethods: cnf.StrictMethods,
			VerifyWorkers: cnf.VerifyWorkers,
		},
		opts: report.Options{
			ListChunks:   cli.Chunks,
			PreviewBytes: cnf.PreviewBytes,
		},
	}

	failed := 0
	for _, fpath := range cli.Files {
		if !p.inspect(fpath) {
			failed++
		}
	}

	if cli.Watch {
		err = p.watch(cli.Files)
		if err != nil {
			l.Log(logger.Error, "%v", err)
			return 1
		}
	}

	if failed != 0 {
		l.Log(logger.Error, "%d of %d files are invalid", failed, len(cli.Files))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
