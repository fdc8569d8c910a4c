package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/whileproc"
	"github.com/npillmayer/whileproc/evaluator"
	"github.com/npillmayer/whileproc/grammar"
	"github.com/spf13/cobra"
)

const version = "1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "whileproc [file.while]",
	Short: "An interpreter for the WhileProc language",
	Long: `Welcome to WhileProc V` + version + `

WhileProc interprets programs written in a tiny imperative language with
procedures, conditionals and while-loops over floating point numbers.

Given a source file, WhileProc runs it and prints the program's output.
Without a source file, or with flag -i, it prompts for statements in a
terminal REPL.

`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWhileprocCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		whileproc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Run in interactive mode (after running the file, if any)")
	rootCmd.PersistentFlags().String("tracelevel", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().Bool("ast", false, "Print the syntax tree of a program to stderr before running it")
}

func runWhileprocCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("whileproc interpreter called")
	conf := whileproc.Configuration
	interactive := conf != nil && conf.Bool("interactive")
	dumpAST := conf != nil && conf.Bool("ast")
	if len(args) == 0 {
		runREPL(evaluator.NewSession(), dumpAST)
		return
	}
	if interactive {
		session := evaluator.NewSession()
		code := loadIntoSession(session, args[0], os.Stdout, os.Stderr)
		if code != 0 {
			whileproc.Exit(code)
		}
		runREPL(session, dumpAST)
		return
	}
	whileproc.Exit(runFile(args[0], dumpAST, os.Stdout, os.Stderr))
}

// runFile runs the program in file path and returns the exit code.
func runFile(path string, dumpAST bool, stdout, stderr io.Writer) int {
	source, err := readSource(path)
	if err != nil {
		fmt.Fprintf(stderr, "cannot read source: %v\n", err)
		return 2
	}
	program := grammar.ParseString(source)
	if dumpAST {
		grammar.Dump(stderr, program)
	}
	out, err := evaluator.Run(program)
	if err != nil {
		return reportError(err, stderr)
	}
	fmt.Fprintln(stdout, out)
	return 0
}

// loadIntoSession runs a file in an interactive session, so that its
// definitions are available in the REPL.
func loadIntoSession(session *evaluator.Session, path string, stdout, stderr io.Writer) int {
	source, err := readSource(path)
	if err != nil {
		fmt.Fprintf(stderr, "cannot read source: %v\n", err)
		return 2
	}
	out, err := session.Exec(source)
	if err != nil {
		return reportError(err, stderr)
	}
	io.WriteString(stdout, out)
	return 0
}

func reportError(err error, stderr io.Writer) int {
	fmt.Fprintf(stderr, "Runtime error: %v\n", err)
	var rterr *evaluator.RuntimeError
	if errors.As(err, &rterr) && rterr.Node != nil {
		tracer().Infof("error at %s", rterr.Node)
	}
	return 1
}
