// Command nwcli encrypts and decrypts single NarrowWay blocks, checks vector
// files and produces avalanche and Monte-Carlo reports.
package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/narrowway/go-narrowway"
	"github.com/narrowway/go-narrowway/internal/analysis"
)

var (
	errUsage      = errors.New("usage: nwcli <encrypt|decrypt|kat|avalanche|montecarlo> [flags]")
	errMissingKey = errors.New("-key is required")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[nwcli] ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("%v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}
	cfg := loadConfig()
	switch args[0] {
	case "encrypt":
		return runBlock(args[1:], stdout, cfg, true)
	case "decrypt":
		return runBlock(args[1:], stdout, cfg, false)
	case "kat":
		return runKAT(args[1:], stdout)
	case "avalanche":
		return runAvalanche(args[1:], stdout, cfg)
	case "montecarlo":
		return runMonteCarlo(args[1:], stdout, cfg)
	}
	return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
}

func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// newCipher parses the variant and the hex key. An empty key selects the
// all-zero key; only montecarlo relies on that.
func newCipher(variant, keyHex string) (narrowway.Cipher, error) {
	v, err := narrowway.ParseVariant(variant)
	if err != nil {
		return nil, err
	}
	var key []byte
	if strings.TrimSpace(keyHex) == "" {
		key = make([]byte, v.KeySize())
		log.Printf("warn: no -key given, using the all-zero key")
	} else if key, err = decodeHex("key", keyHex); err != nil {
		return nil, err
	}
	return narrowway.NewCipher(v, key)
}

func runBlock(args []string, stdout io.Writer, cfg config, encrypt bool) error {
	name := "decrypt"
	if encrypt {
		name = "encrypt"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	variant := fs.String("variant", cfg.Variant, "cipher variant: 256|384|512")
	keyHex := fs.String("key", "", "key as hex (32, 48 or 64 bytes), required")
	inHex := fs.String("in", "", "input block as hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*keyHex) == "" {
		return fmt.Errorf("%s: %w", name, errMissingKey)
	}
	c, err := newCipher(*variant, *keyHex)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	in, err := decodeHex("in", *inHex)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	out := make([]byte, c.BlockSize())
	if encrypt {
		err = c.EncryptBlock(out, in)
	} else {
		err = c.DecryptBlock(out, in)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintln(stdout, hex.EncodeToString(out))
	return nil
}

func runKAT(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("kat", flag.ContinueOnError)
	file := fs.String("file", "", "vector file (JSON); defaults to the built-in set")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		set *analysis.VectorSet
		err error
	)
	if *file == "" {
		set, err = analysis.DefaultVectors()
	} else {
		set, err = analysis.LoadVectorsFromFile(*file)
	}
	if err != nil {
		return fmt.Errorf("load vectors: %w", err)
	}

	failed := 0
	report := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "FAIL %s: %v\n", name, err)
			return
		}
		fmt.Fprintf(stdout, "ok   %s\n", name)
	}
	for i := range set.Vectors {
		report(set.Vectors[i].Name, set.Vectors[i].Check())
	}
	for i := range set.MonteCarlo {
		report(set.MonteCarlo[i].Name, set.MonteCarlo[i].Check())
	}
	total := len(set.Vectors) + len(set.MonteCarlo)
	fmt.Fprintf(stdout, "%d/%d vectors passed\n", total-failed, total)
	if failed > 0 {
		return fmt.Errorf("kat: %d of %d vectors failed", failed, total)
	}
	return nil
}

func runAvalanche(args []string, stdout io.Writer, cfg config) error {
	fs := flag.NewFlagSet("avalanche", flag.ContinueOnError)
	variants := fs.String("variants", "256,384,512", "comma separated variants to measure")
	trials := fs.Int("trials", cfg.Trials, "trials per variant")
	seed := fs.String("seed", "", "sampler seed; empty for a random seed")
	keyFlip := fs.Bool("key-flip", false, "flip key bits instead of plaintext bits")
	outDir := fs.String("out", cfg.ReportDir, "output directory for reports")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *trials <= 0 {
		return fmt.Errorf("avalanche: -trials must be > 0, got %d", *trials)
	}

	var (
		s   *analysis.Sampler
		err error
	)
	if *seed == "" {
		s, err = analysis.NewRandomSampler()
	} else {
		s, err = analysis.NewSampler([]byte(*seed))
	}
	if err != nil {
		return err
	}

	log.Printf("[avalanche] %s", cfg)
	var reports []analysis.Report
	for _, name := range strings.Split(*variants, ",") {
		v, err := narrowway.ParseVariant(name)
		if err != nil {
			return err
		}
		log.Printf("[avalanche] %s: %d trials", v, *trials)

		var r analysis.Report
		if *keyFlip {
			r, err = analysis.KeyAvalanche(v, s, *trials)
		} else {
			var key []byte
			if key, err = s.Bytes(v.KeySize()); err != nil {
				return err
			}
			var c narrowway.Cipher
			if c, err = narrowway.NewCipher(v, key); err != nil {
				return err
			}
			r, err = analysis.Avalanche(c, s, *trials)
		}
		if err != nil {
			return fmt.Errorf("avalanche %s: %w", v, err)
		}
		fmt.Fprintf(stdout, "%s: ratio=%.4f mean=%.2f std=%.2f min=%.0f max=%.0f\n",
			v, r.Ratio, r.Summary.Mean, r.Summary.Std, r.Summary.Min, r.Summary.Max)
		reports = append(reports, r)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("avalanche_stats_%s.json", ts))
	if err := saveJSON(jsonPath, reports); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("avalanche_%s.html", ts))
	if err := writeHTML(htmlPath, reports); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Histogram page:", htmlPath)
	fmt.Fprintln(stdout, "Stats JSON:", jsonPath)
	return nil
}

func runMonteCarlo(args []string, stdout io.Writer, cfg config) error {
	fs := flag.NewFlagSet("montecarlo", flag.ContinueOnError)
	variant := fs.String("variant", cfg.Variant, "cipher variant: 256|384|512")
	keyHex := fs.String("key", "", "key as hex; defaults to the all-zero key")
	iterations := fs.Int("iterations", 1000, "chain length")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := newCipher(*variant, *keyHex)
	if err != nil {
		return fmt.Errorf("montecarlo: %w", err)
	}
	res, err := analysis.MonteCarlo(c, *iterations)
	if err != nil {
		return err
	}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(stdout, "variant:    %s\n", c.Variant())
	fmt.Fprintf(stdout, "iterations: %d\n", res.Iterations)
	fmt.Fprintf(stdout, "digest:     %s\n", res.Digest)
	fmt.Fprintf(stdout, "final:      %s\n", res.Final)
	return nil
}

// writeHTML renders the reports to path. The file is closed before
// returning and a failed close is reported.
func writeHTML(path string, reports []analysis.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html: %w", err)
	}
	if err := analysis.RenderAvalanche(f, reports); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close html: %w", err)
	}
	return nil
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
