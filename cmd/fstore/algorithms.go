package main

import (
	"github.com/nspcc-dev/filestorage/pkg/storage/digest"
	"github.com/nspcc-dev/filestorage/pkg/storage/filestorage"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported hash algorithms and codecs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			r := digest.Default()

			out := tablewriter.NewWriter(cmd.OutOrStdout())
			out.SetHeader([]string{"Kind", "Name", "Default"})

			for _, name := range r.Hashers() {
				var def string
				switch name {
				case filestorage.DefaultChecksum:
					def = "checksum"
				case filestorage.DefaultDedupHash:
					def = "dedup hash"
				}
				out.Append([]string{"hash", name, def})
			}
			for _, name := range r.Codecs() {
				out.Append([]string{"codec", name, ""})
			}

			out.Render()
		},
	}
}
