package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"kisprefs/internal/prefs"
)

var getCmd = &cobra.Command{
	Use:   "get [key...]",
	Short: "Print preference values",
	Long: `Print the value of each key, one per line. With no keys, print every
known preference as key=value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(args) > 0 {
			for _, k := range args {
				fmt.Fprintln(out, store.FetchOpt(k))
			}
			return nil
		}
		keys := make([]string, 0, len(prefs.Defaults))
		for k := range prefs.Defaults {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s=%s\n", k, store.FetchOpt(k))
		}
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference and save the file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		store.SetOpt(args[0], args[1], true)
		return store.Save(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(getCmd, setCmd)
}
