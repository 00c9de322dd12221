// Command langcore is a thin CLI host over the langcore package, exercising
// it the way a desktop editor's backend would: parse a buffer to IR,
// render IR back to source, reformat a file in place, or watch a file and
// re-run the pipeline on every save.
//
// Grounded on aledsdavies-opal/cmd/devcmd/main.go's rootCmd/subcommand-tree
// cobra structure (global persistent flags, one RunE per subcommand).
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/ir"
	"github.com/indentlang/langcore/internal/render"
	"github.com/indentlang/langcore/internal/validate"

	"github.com/indentlang/langcore"
)

var (
	configFile   string
	renderMode   string
	reuseRanges  bool
	writeInPlace bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "langcore",
	Short: "Parse, render, and format indentlang source through the language core",
	Long: `langcore drives the language core directly from the command line:
parse a source file to its IR, render an IR document back to source,
reformat a file in place, or watch a file and re-run the pipeline on
every save.`,
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its IR as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var renderCmd = &cobra.Command{
	Use:   "render <ir-file>",
	Short: "Render an IR JSON document back to source",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a source file (pretty mode)",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a source file and report diagnostics on every save",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

var hashCmd = &cobra.Command{
	Use:   "hash <ir-file>",
	Short: "Print the content hash of an IR JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runHash,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "langcore.yaml", "Path to config file")

	renderCmd.Flags().StringVar(&renderMode, "mode", "pretty", "Render mode: lossless or pretty")
	renderCmd.Flags().BoolVar(&reuseRanges, "reuse-token-ranges", false, "Reuse preserved per-statement token text in pretty mode")

	fmtCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "Write the reformatted source back to the file instead of stdout")

	rootCmd.AddCommand(parseCmd, renderCmd, fmtCmd, watchCmd, hashCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	features := featureSetFromConfig(cfg)
	irp, err := langcore.ParseWithFeatures(string(source), features)
	if err != nil {
		return err
	}

	doc, err := ir.Marshal(irp)
	if err != nil {
		return fmt.Errorf("encoding IR: %w", err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, doc, "", "  "); err != nil {
		return fmt.Errorf("formatting IR: %w", err)
	}
	fmt.Println(pretty.String())
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	if err := validate.ValidateIR(data); err != nil {
		return err
	}

	irp, err := ir.Unmarshal(data)
	if err != nil {
		return err
	}

	mode, err := parseMode(renderMode)
	if err != nil {
		return err
	}

	out, err := langcore.Render(irp, render.Config{Mode: mode, ReuseTokenRanges: reuseRanges})
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	out, err := langcore.Format(string(source))
	if err != nil {
		return err
	}

	if writeInPlace {
		return os.WriteFile(args[0], []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	checkOnce := func() {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		diags := langcore.Validate(string(source))
		if len(diags) == 0 {
			fmt.Printf("%s: ok\n", path)
			return
		}
		for _, d := range diags {
			fmt.Printf("%s: %s\n", path, d.Message)
		}
	}

	checkOnce()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				checkOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func runHash(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	if err := validate.ValidateIR(data); err != nil {
		return err
	}
	irp, err := ir.Unmarshal(data)
	if err != nil {
		return err
	}
	sum, err := ir.Hash(irp)
	if err != nil {
		return fmt.Errorf("hashing IR: %w", err)
	}
	fmt.Println(hex.EncodeToString(sum[:]))
	return nil
}

func parseMode(s string) (render.Mode, error) {
	switch s {
	case "lossless":
		return render.Lossless, nil
	case "pretty":
		return render.Pretty, nil
	default:
		return 0, fmt.Errorf("unknown render mode %q (want lossless or pretty)", s)
	}
}

func featureSetFromConfig(cfg Config) feature.Set {
	fs := feature.Default()
	if cfg.MatchStmt != nil {
		fs.MatchStmt = *cfg.MatchStmt
	}
	return fs
}
