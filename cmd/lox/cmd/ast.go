package cmd

import (
	"github.com/spf13/cobra"
)

var astExpr string

var astCmd = &cobra.Command{
	Use:   "ast [script]",
	Short: "Print the syntax tree of a script, snippet or stdin",
	Args:  usageArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, astExpr, args)
		if err != nil {
			return err
		}
		return newRunner(cmd).Run(source)
	},
}

func init() {
	astCmd.Flags().StringVarP(&astExpr, "expr", "e", "", "parse the given source instead of a file")
	rootCmd.AddCommand(astCmd)
}
