// Package cli wires up the scytale flags and dispatches to the cipher library.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/zoobzio/scytale"
	"github.com/zoobzio/scytale/internal/config"
	"github.com/zoobzio/scytale/internal/logger"
)

// version is overridable at link time:
//
//	go build -ldflags "-X github.com/zoobzio/scytale/internal/cli.version=1.1.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Streams are the standard streams a run reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Execute runs scytale against the process's standard streams.
func Execute(ctx context.Context, args []string) error {
	return Run(ctx, args, Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// Run parses args and runs the requested command.
func Run(ctx context.Context, args []string, s Streams) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("scytale", flag.ContinueOnError)
	fs.SetOutput(s.Err)

	// ── cipher ───────────────────────────────────────────────────
	fs.StringVarP(&cfg.Algorithm, "algorithm", "a", cfg.Algorithm, "Cipher to use (see 'scytale list')")
	fs.StringVarP(&cfg.Key, "key", "k", cfg.Key, "Cipher key")
	fs.BoolVar(&cfg.PromptKey, "prompt-key", cfg.PromptKey, "Read the key from the terminal without echo")
	fs.StringVarP(&cfg.Recipe, "recipe", "r", cfg.Recipe, "YAML recipe of chained cipher steps")

	// ── input ────────────────────────────────────────────────────
	fs.BoolVar(&cfg.Fold, "fold", cfg.Fold, "Strip accents so letters like é are ciphered as e")
	fs.IntVarP(&cfg.Top, "top", "n", cfg.Top, "Number of candidate shifts to print")

	// ── output ───────────────────────────────────────────────────
	envVerbose := cfg.Verbose
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(s.Err, fs) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	if !fs.Changed("verbose") {
		cfg.Verbose = envVerbose
	}

	if showVersion {
		fmt.Fprintf(s.Out, "scytale %s\n", version)
		return nil
	}
	if showHelp || len(args) == 0 {
		printUsage(s.Err, fs)
		return nil
	}

	rest := fs.Args()
	if len(rest) > 0 {
		cfg.Command, rest = rest[0], rest[1:]
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.Verbose)
	log.SetOutput(s.Err)
	log.Debug("command=%s algorithm=%s recipe=%q fold=%v", cfg.Command, cfg.Algorithm, cfg.Recipe, cfg.Fold)

	if cfg.Command == config.CommandList {
		return listAlgorithms(s.Out)
	}

	text, err := readText(rest, s.In)
	if err != nil {
		return err
	}
	if cfg.Fold {
		if text, err = foldText(text); err != nil {
			return fmt.Errorf("fold: %w", err)
		}
	} else if n := countNonASCIILetters(text); n > 0 {
		log.Warn("%d non-ASCII letters pass through unciphered; --fold maps accented letters to A-Z", n)
	}

	switch cfg.Command {
	case config.CommandFreq:
		return printFrequency(s.Out, text)
	case config.CommandShifts:
		return printShifts(s.Out, text, cfg.Top)
	}

	out, err := runCipher(ctx, cfg, text, s, log)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.Out, out)
	return nil
}

// runCipher encodes or decodes text with a single cipher or a recipe.
func runCipher(ctx context.Context, cfg *config.Config, text string, s Streams, log *logger.Logger) (string, error) {
	decode := cfg.Command == config.CommandDecode

	if cfg.Recipe != "" {
		r, err := config.LoadRecipe(cfg.Recipe)
		if err != nil {
			return "", err
		}
		p, err := scytale.BuildPipeline(r.Steps)
		if err != nil {
			return "", fmt.Errorf("recipe %s: %w", cfg.Recipe, err)
		}
		log.Info("loaded recipe %q with %d steps", r.Name, p.Len())
		log.Verbose("%s via recipe %q: %v", cfg.Command, r.Name, p.Algorithms())
		if decode {
			return p.Decode(text)
		}
		return p.Encode(text)
	}

	key := cfg.Key
	if cfg.PromptKey {
		var err error
		if key, err = promptKey(s.In, s.Err); err != nil {
			return "", err
		}
	}

	algo := scytale.Algo(cfg.Algorithm)
	log.Verbose("%s with %s, key %s", cfg.Command, algo, scytale.Fingerprint(key))
	if algo == scytale.AlgoOTP {
		if pad, need := len(scytale.Normalize(key)), len(scytale.Normalize(text)); pad > need {
			log.Warn("pad has %d letters, text uses %d; the remaining %d are unused", pad, need, pad-need)
		}
	}
	if decode {
		return scytale.Decode(ctx, algo, text, key)
	}
	return scytale.Encode(ctx, algo, text, key)
}

// readText joins positional arguments, or reads stdin when there are none.
// A single trailing newline from stdin is dropped.
func readText(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if in == nil {
		return "", errors.New("no text given")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `scytale - classical text ciphers v%s

Usage:
  scytale encode -a <algorithm> -k <key> [text...]   Encode text or stdin
  scytale decode -a <algorithm> -k <key> [text...]   Decode text or stdin
  scytale encode -r <recipe.yaml> [text...]          Run a chained recipe
  scytale list                                       List algorithms
  scytale freq [text...]                             Letter frequencies
  scytale shifts [-n N] [text...]                    Rank Caesar shifts

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Environment:
  SCYTALE_ALGORITHM, SCYTALE_KEY, SCYTALE_PROMPT_KEY, SCYTALE_RECIPE,
  SCYTALE_FOLD, SCYTALE_TOP, SCYTALE_VERBOSE

Examples:
  scytale encode -a caesar -k 3 "Hello, World!"
  scytale decode -a vigenere --prompt-key "Lxfopv ef rnhr"
  echo "WEAREDISCOVERED" | scytale encode -a rail -k 3
  scytale shifts -n 3 "Wkh txlfn eurzq ira"
`)
}
