package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"ncaa-savior/ndb"
	"ncaa-savior/ndb/dhash"
	"ncaa-savior/ndb/dstruct"
	"ncaa-savior/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
		Tables      *TablesCmd      `arg:"subcommand:tables"`
		Hash        *HashCmd        `arg:"subcommand:hash"`
		Charset     string          `arg:"env:NCAADB_CHARSET" default:"latin1" help:"encoding of text fields: latin1, windows1252, cp437 or ascii"`
		Parallel    bool            `arg:"env:NCAADB_PARALLEL" help:"decode tables concurrently"`
		Verbose     bool            `arg:"-v,env:NCAADB_VERBOSE" help:"log decoding details to stderr"`
	}
	InteractiveCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"USR-DATA"`
	}
	ConvertCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"USR-DATA"`
		To    string `arg:"required" help:"path to destination file" placeholder:"file.json"`
		Table string `help:"only convert this table" placeholder:"PLAY"`
		Debug bool   `help:"dump headers and field directories too"`
		Force bool   `help:"overwrite the destination file"`
	}
	TablesCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"USR-DATA"`
	}
	HashCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"USR-DATA"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to read NCAA DB files (the packed table format of",
			"NCAA Football save files) and convert them to JSON.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (r Args) Options(stderr io.Writer) ndb.Options {
	level := slog.LevelInfo
	if r.Verbose {
		level = slog.LevelDebug
	}
	options := ndb.DefaultOptions()
	options.Charset = r.Charset
	options.Parallel = r.Parallel
	options.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return options
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func readDB(from string, options ndb.Options) (*dstruct.Database, error) {
	if !CheckExistence(from) {
		return nil, errors.Errorf("source file %s does not exist", from)
	}
	fileBytes, err := os.ReadFile(from)
	if err != nil {
		return nil, errors.Wrap(err, "error happened reading file")
	}
	db, err := ndb.DecodeDB(fileBytes, options)
	if err != nil {
		return nil, errors.Wrap(err, "error happened decoding DB file")
	}
	return db, nil
}

func StartConverting(cmd ConvertCmd, options ndb.Options, stdout io.Writer) error {
	if !CheckExistence(cmd.From) {
		return errors.Errorf("source file %s does not exist", cmd.From)
	}
	if CheckExistence(cmd.To) && !cmd.Force {
		return errors.Errorf(
			"destination file %s existed, type the command again with --force to allow overwriting",
			cmd.To,
		)
	}
	fileBytes, err := os.ReadFile(cmd.From)
	if err != nil {
		return errors.Wrap(err, "error happened reading file")
	}
	decodedBytes, err := ndb.DecodeJSON(fileBytes, options, cmd.Debug, cmd.Table)
	if err != nil {
		return errors.Wrap(err, "error happened decoding DB file to JSON")
	}
	if err := os.WriteFile(cmd.To, decodedBytes, 0644); err != nil {
		return errors.Wrap(err, "error happened writing to file at: "+cmd.To)
	}
	fmt.Fprintln(stdout, "Done converting. Please check your result file at: "+cmd.To)
	return nil
}

func StartListing(cmd TablesCmd, options ndb.Options, stdout io.Writer) error {
	db, err := readDB(cmd.From, options)
	if err != nil {
		return err
	}
	lines := lo.Map(
		db.Tables.Values(),
		func(table *dstruct.Table, _ int) string {
			return fmt.Sprintf(
				"%s\trecords=%d/%d\tfields=%d\tlen_bytes=%d",
				table.Name,
				table.Header.CurrentRecords,
				table.Header.MaxRecords,
				len(table.Fields),
				table.Header.LenBytes,
			)
		},
	)
	_, err = fmt.Fprintln(stdout, strings.Join(lines, "\n"))
	return err
}

func StartHashing(cmd HashCmd, options ndb.Options, stdout io.Writer) error {
	db, err := readDB(cmd.From, options)
	if err != nil {
		return err
	}
	for _, fingerprint := range dhash.FingerprintDB(*db) {
		if _, err := fmt.Fprintf(stdout, "%s\t%016x\n", fingerprint.Name, fingerprint.Fingerprint); err != nil {
			return err
		}
	}
	return nil
}

func StartInteractive(cmd InteractiveCmd, options ndb.Options) error {
	db, err := readDB(cmd.From, options)
	if err != nil {
		return err
	}
	return ui.Start(db)
}

func Run(args Args, stdout io.Writer, stderr io.Writer) error {
	options := args.Options(stderr)
	switch {
	case args.Convert != nil:
		return StartConverting(*args.Convert, options, stdout)
	case args.Tables != nil:
		return StartListing(*args.Tables, options, stdout)
	case args.Hash != nil:
		return StartHashing(*args.Hash, options, stdout)
	case args.Interactive != nil:
		return StartInteractive(*args.Interactive, options)
	default:
		return errors.New("a subcommand is required: convert, tables, hash or interactive")
	}
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.Fail("missing subcommand")
	}

	if err := Run(args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
