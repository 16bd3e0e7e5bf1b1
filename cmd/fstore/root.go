package main

import (
	"os"

	"github.com/nspcc-dev/filestorage/misc"
	"github.com/spf13/cobra"
)

const (
	configFlag  = "config"
	pathFlag    = "path"
	versionFlag = "version"
)

func newRootCommand() *cobra.Command {
	a := new(app)

	cmd := &cobra.Command{
		Use:   "fstore",
		Short: "File object storage",
		Long: `fstore keeps binary objects addressed by 64-bit identifiers in a sharded
directory tree, reports their checksums and compresses them in place.`,
		RunE:          entryPoint,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// use stdout as default output for cmd.Print()
	cmd.SetOut(os.Stdout)
	cmd.Flags().Bool(versionFlag, false, "Application version")

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.cfgPath, configFlag, "c", "", "Path to config file")
	pf.StringVarP(&a.rootPath, pathFlag, "p", "", "Storage root directory, overrides storage.path config value")

	cmd.AddCommand(
		a.putCommand(false),
		a.putCommand(true),
		a.readCommand(),
		a.statCommand(),
		a.deleteCommand(),
		a.compressCommand(),
		a.pathCommand(),
		algorithmsCommand(),
	)

	return cmd
}

func entryPoint(cmd *cobra.Command, _ []string) error {
	printVersion, _ := cmd.Flags().GetBool(versionFlag)
	if printVersion {
		cmd.Print(misc.BuildInfo("fstore"))

		return nil
	}

	return cmd.Usage()
}
