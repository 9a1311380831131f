package app

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/seqcast/seqcast/cmd/seqcast/app/options"
	"github.com/seqcast/seqcast/pkg/server"
	serverconfig "github.com/seqcast/seqcast/pkg/server/config"
)

// NewCmdServe creates the serve command with default parameters.
func NewCmdServe(ctx context.Context) *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the seqcast api server",
		Run: func(cmd *cobra.Command, args []string) {
			if err := opts.Complete(); err != nil {
				klog.Exit(err)
			}
			if errs := opts.Validate(); len(errs) != 0 {
				klog.Exit(errs)
			}

			if err := RunServe(ctx, opts); err != nil {
				klog.Exit(err)
			}
		},
	}

	opts.AddFlags(cmd.Flags())

	return cmd
}

// RunServe runs the api server until the context is cancelled.
func RunServe(ctx context.Context, opts *options.Options) error {
	cfg := serverconfig.NewServerConfig()
	opts.ApplyTo(cfg)

	srv, err := server.NewAPIServer(cfg)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return srv.Run(ctx)
	})
	return eg.Wait()
}
