package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nspcc-dev/filestorage/pkg/storage/filestorage"
	"github.com/nspcc-dev/filestorage/pkg/storage/idpath"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	checksumFlag    = "checksum"
	dedupHashFlag   = "dedup-hash"
	compressionFlag = "compression"
	encodingFlag    = "encoding"
	outFlag         = "out"
	fromPathFlag    = "from-path"
)

func parseIDs(args []string) ([]idpath.ID, error) {
	ids := make([]idpath.ID, len(args))
	for i := range args {
		id, err := idpath.ParseID(args[i])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func (a *app) putCommand(update bool) *cobra.Command {
	var (
		prm filestorage.WritePrm
		cmd = &cobra.Command{
			Use:   "write <id> [file]",
			Short: "Store a new object",
			Long: `Store a new object with the given identifier. Data is read from the file
or from stdin if it's omitted. Existing object is replaced.`,
			Args: cobra.RangeArgs(1, 2),
		}
	)
	if update {
		cmd.Use = "update <id> [file]"
		cmd.Short = "Replace an existing object"
		cmd.Long = `Replace an existing object keeping the stored file metadata. Data is read
from the file or from stdin if it's omitted. The size of the replaced
object is reported as originalSize.`
	}

	cmd.Flags().StringVar(&prm.Checksum, checksumFlag, "", "Checksum algorithm, storage.checksum config value by default")
	cmd.Flags().StringVar(&prm.DedupHash, dedupHashFlag, "", "Deduplication hash algorithm, storage.dedup_hash config value by default")

	cmd.RunE = a.withStorage(false, func(cmd *cobra.Command, args []string) error {
		id, err := idpath.ParseID(args[0])
		if err != nil {
			return err
		}

		var data []byte
		if len(args) > 1 {
			data, err = os.ReadFile(args[1])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("can't read data: %w", err)
		}

		var st filestorage.DataStats
		if update {
			st, err = a.storage.Update(id, data, prm)
		} else {
			st, err = a.storage.Write(id, data, prm)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	})

	return cmd
}

func (a *app) readCommand() *cobra.Command {
	var (
		prm filestorage.ReadPrm
		out string
		cmd = &cobra.Command{
			Use:   "read <id>",
			Short: "Print object data",
			Long: `Print object data to stdout or the file. Compressed objects are unpacked
if the codec is given, text is converted to UTF-8 if the encoding is given.`,
			Args: cobra.ExactArgs(1),
		}
	)

	cmd.Flags().StringVar(&prm.Compression, compressionFlag, "", "Codec the object was compressed with")
	cmd.Flags().StringVar(&prm.Encoding, encodingFlag, "", "Character encoding of the stored text (e.g. latin1)")
	cmd.Flags().StringVarP(&out, outFlag, "o", "", "File to write data to")

	cmd.RunE = a.withStorage(true, func(cmd *cobra.Command, args []string) error {
		id, err := idpath.ParseID(args[0])
		if err != nil {
			return err
		}

		var data []byte
		if prm.Encoding != "" {
			s, err := a.storage.ReadText(id, prm)
			if err != nil {
				return err
			}
			data = []byte(s)
		} else {
			data, err = a.storage.Read(id, prm)
			if err != nil {
				return err
			}
		}

		if out != "" {
			return os.WriteFile(out, data, 0o644)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	})

	return cmd
}

func (a *app) statCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat <id>...",
		Short: "Show stored files metadata",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = a.withStorage(true, func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		out := tablewriter.NewWriter(cmd.OutOrStdout())
		out.SetHeader([]string{"ID", "Path", "Size", "Mode", "Modified"})
		out.SetAutoWrapText(false)

		for _, id := range ids {
			fi, err := a.storage.Stat(id)
			if err != nil {
				return err
			}
			out.Append([]string{
				id.String(),
				idpath.Path(id),
				fmt.Sprint(fi.Size()),
				fi.Mode().String(),
				fi.ModTime().Format(time.RFC3339),
			})
		}

		out.Render()
		return nil
	})

	return cmd
}

func (a *app) deleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Remove objects",
		Args:    cobra.MinimumNArgs(1),
	}

	cmd.RunE = a.withStorage(false, func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		for _, id := range ids {
			err = a.storage.Delete(id)
			if err != nil {
				return err
			}
			cmd.Printf("Object %s removed\n", id)
		}
		return nil
	})

	return cmd
}

func (a *app) pathCommand() *cobra.Command {
	var (
		fromPath bool
		cmd      = &cobra.Command{
			Use:   "path <id>...",
			Short: "Print object file paths",
			Long: `Print the path of the object file for every identifier. Paths are relative
unless the storage root is configured. With --from-path the conversion is
reversed: relative paths are decoded into identifiers.`,
			Args: cobra.MinimumNArgs(1),
		}
	)

	cmd.Flags().BoolVar(&fromPath, fromPathFlag, false, "Decode relative paths into identifiers")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if fromPath {
			for _, p := range args {
				id, err := idpath.FromPath(p)
				if err != nil {
					return err
				}
				cmd.Println(id)
			}
			return nil
		}

		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		err = a.loadConfig()
		if err != nil {
			return err
		}
		root, err := a.storagePath()
		if err != nil {
			return fmt.Errorf("invalid storage path: %w", err)
		}

		for _, id := range ids {
			if root == "" {
				cmd.Println(idpath.Path(id))
			} else {
				cmd.Println(idpath.Resolve(root, id))
			}
		}
		return nil
	}

	return cmd
}
