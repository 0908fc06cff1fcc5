// Command matasano runs the XOR and block cipher exercises on standard input.
//
// Usage:
//
//	matasano <command> [flags] [args]
//
// Results are written to standard output, diagnostics to standard error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/pkg/errors"

	"matasano-xor-cryptanalysis/analysis"
	"matasano-xor-cryptanalysis/language"
	"matasano-xor-cryptanalysis/set1"
	"matasano-xor-cryptanalysis/set2"
)

// command is one exercise reachable from the command line.
type command struct {
	usage string
	run   func(env set1.Env, fs *flag.FlagSet, args []string) error
}

var commands = map[string]command{
	"hex2base64": {"convert hex to Base64", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		if err := parse(fs, args); err != nil {
			return err
		}
		return set1.Challenge1(env)
	}},
	"fixedxor": {"XOR two hex files of equal length: fixedxor A B", runFixedXOR},
	"singlexor": {"break hex input XORed with a single byte", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		if err := parse(fs, args); err != nil {
			return err
		}
		return set1.Challenge3(env)
	}},
	"detectxor": {"find the hex line XORed with a single byte", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		if err := parse(fs, args); err != nil {
			return err
		}
		return set1.Challenge4(env)
	}},
	"repxor": {"encrypt input with repeating-key XOR, hex output", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		key := fs.String("key", "ICE", "XOR key")
		if err := parse(fs, args); err != nil {
			return err
		}
		return set1.Challenge5(env, []byte(*key))
	}},
	"breakrepxor": {"break Base64 input encrypted with repeating-key XOR", runBreakRepXOR},
	"aesecb": {"decrypt Base64 AES-128-ECB input", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		key := fs.String("key", "YELLOW SUBMARINE", "AES-128 key")
		if err := parse(fs, args); err != nil {
			return err
		}
		return set1.Challenge7(env, []byte(*key))
	}},
	"detectecb": {"print hex lines with repeated blocks", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		size := fs.Int("block", analysis.AESBlockSize, "block size in bytes")
		if err := parse(fs, args); err != nil {
			return err
		}
		return set1.Challenge8(env, *size)
	}},
	"pkcs7": {"pad input with PKCS#7", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		size := fs.Int("size", 20, "block size in bytes")
		if err := parse(fs, args); err != nil {
			return err
		}
		return set2.Challenge9(env, *size)
	}},
	"aescbc": {"decrypt Base64 AES-128-CBC input with a zero IV", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		key := fs.String("key", "YELLOW SUBMARINE", "AES-128 key")
		if err := parse(fs, args); err != nil {
			return err
		}
		return set2.Challenge10(env, []byte(*key), set2.ZeroIV)
	}},
	"detectmode": {"tell ECB from CBC with a random encryption oracle", func(env set1.Env, fs *flag.FlagSet, args []string) error {
		count := fs.Int("n", 100, "number of trials")
		seed := fs.Int64("seed", 1, "random seed")
		if err := parse(fs, args); err != nil {
			return err
		}
		return set2.Challenge11(env, *count, *seed)
	}},
}

// usageError marks a malformed command line. An empty message means the
// flag set has already reported the problem.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageError{}
	}
	return nil
}

func runFixedXOR(env set1.Env, fs *flag.FlagSet, args []string) error {
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usageError{fmt.Sprintf("need 2 arguments, got %d instead", fs.NArg())}
	}
	a, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer a.Close()
	b, err := os.Open(fs.Arg(1))
	if err != nil {
		return err
	}
	defer b.Close()
	env.In = a
	return set1.Challenge2(env, b)
}

func runBreakRepXOR(env set1.Env, fs *flag.FlagSet, args []string) error {
	candidates := fs.Int("candidates", 5, "number of key sizes to try")
	lang := fs.Bool("lang", false, "rank results by English language confidence instead of score")
	if err := parse(fs, args); err != nil {
		return err
	}
	var rank set1.Ranker
	if *lang {
		rank = language.NewDetector().Rank
	}
	return set1.Challenge6(env, *candidates, rank)
}

// selfCheck makes sure the distance used to guess key sizes is sane.
func selfCheck() error {
	d, err := analysis.HammingDistance([]byte("this is a test"), []byte("wokka wokka!!!"))
	if err != nil {
		return err
	}
	if d != 37 {
		return errors.Errorf("validation failed: distance should be 37, but it is %d instead", d)
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: matasano [-v] <command> [flags] [args]")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, commands[name].usage)
	}
}

// run executes one command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	fs := flag.NewFlagSet("matasano", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "verbose diagnostics")
	fs.Usage = func() { usage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		usage(stderr)
		return 2
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		logger.Printf("unknown command %q", name)
		usage(stderr)
		return 2
	}
	if err := selfCheck(); err != nil {
		logger.Print(err)
		return 1
	}

	env := set1.Env{In: stdin, Out: stdout, Log: logger, Verbose: *verbose}
	sub := flag.NewFlagSet(name, flag.ContinueOnError)
	sub.SetOutput(stderr)
	if err := cmd.run(env, sub, fs.Args()[1:]); err != nil {
		if uerr, ok := err.(usageError); ok {
			if uerr.msg != "" {
				logger.Printf("%s: %s", name, uerr.msg)
			}
			return 2
		}
		logger.Printf("%s: %v", name, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
