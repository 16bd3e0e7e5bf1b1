package main

import (
	"fmt"

	"github.com/cheggaaa/pb"
	compactorconfig "github.com/nspcc-dev/filestorage/cmd/fstore/config/compactor"
	storageconfig "github.com/nspcc-dev/filestorage/cmd/fstore/config/storage"
	"github.com/nspcc-dev/filestorage/pkg/services/compactor"
	"github.com/nspcc-dev/filestorage/pkg/util"
	"github.com/nspcc-dev/filestorage/pkg/util/grace"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	noProgressFlag = "no-progress"
	workersFlag    = "workers"
)

func (a *app) compressCommand() *cobra.Command {
	var (
		compression string
		noProgress  bool
		workers     int
		cmd         = &cobra.Command{
			Use:   "compress <id>...",
			Short: "Compress objects in place",
			Long: `Compress objects in place with the given codec. Objects not bigger than
storage.min_compress_size are skipped, bigger ones are compressed even if
they were compressed before, so read them back with the same codec.
Objects are processed concurrently, interrupt stops scheduling new ones.`,
			Args: cobra.MinimumNArgs(1),
		}
	)

	cmd.Flags().StringVar(&compression, compressionFlag, "", "Codec name, storage.compression config value by default")
	cmd.Flags().BoolVar(&noProgress, noProgressFlag, false, "Do not show progress bar")
	cmd.Flags().IntVar(&workers, workersFlag, 0, "Number of concurrent compressions, compactor.workers config value by default")

	cmd.RunE = a.withStorage(false, func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		if compression == "" {
			compression = storageconfig.Compression(a.cfg)
		}
		_, err = a.storage.Registry().Codec(compression)
		if err != nil {
			return err
		}
		if workers <= 0 {
			workers = compactorconfig.Workers(a.cfg)
		}

		pool, err := util.NewWorkerPool(workers)
		if err != nil {
			return err
		}
		defer pool.Release()

		var p *pb.ProgressBar
		if !noProgress {
			p = pb.New(len(ids))
			p.Output = cmd.ErrOrStderr()
			p.Start()
		}

		c := compactor.New(
			compactor.WithLogger(a.log),
			compactor.WithWorkerPool(pool),
			compactor.WithProgress(func(compactor.Result) {
				if p != nil {
					p.Increment()
				}
			}),
		)

		ctx, stop := grace.NewGracefulContext(cmd.Context(), a.log)
		defer stop()

		res := c.Run(ctx, a.storage, ids, compression)
		if p != nil {
			p.Finish()
		}

		return printCompactionResults(cmd, res)
	})

	return cmd
}

func printCompactionResults(cmd *cobra.Command, res []compactor.Result) error {
	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"ID", "Result"})
	out.SetAutoWrapText(false)

	var failed int
	for _, r := range res {
		status := "skipped"
		switch {
		case r.Err != nil:
			failed++
			status = r.Err.Error()
		case r.Compressed:
			status = "compressed"
		}
		out.Append([]string{r.ID.String(), status})
	}
	out.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d objects were not compressed", failed, len(res))
	}
	return nil
}
