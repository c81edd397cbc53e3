package cmd

import (
	"github.com/spf13/cobra"
)

var tokensExpr string

var tokensCmd = &cobra.Command{
	Use:   "tokens [script]",
	Short: "Print the token stream of a script, snippet or stdin",
	Args:  usageArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, tokensExpr, args)
		if err != nil {
			return err
		}
		return newRunner(cmd).Tokens(source)
	},
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensExpr, "expr", "e", "", "scan the given source instead of a file")
	rootCmd.AddCommand(tokensCmd)
}
