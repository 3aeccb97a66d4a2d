package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/clite-lang/clitec/check"
	"github.com/clite-lang/clitec/internal/log"
	"github.com/clite-lang/clitec/jsonast"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:          "check file.json",
	Short:        "Type-check a program's JSON AST",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	logLevel    *int
	traceSect   *[]string
)

func init() {
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
	traceSect = CheckCmd.Flags().StringSliceP("trace", "t", nil, "enable trace logging for these sections (eg check/expr,check/flow)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))
	log.EnableSections(*traceSect...)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "could not read input file")
	}

	program, err := jsonast.Build(data)
	if err != nil {
		return errors.Wrap(err, "could not build AST from JSON")
	}

	if err := check.CheckProgram(program); err != nil {
		fmt.Printf("invalid: %s\n", err)
		return nil
	}

	fmt.Println("valid")
	return nil
}
