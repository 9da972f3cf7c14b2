package user

import (
	"context"

	"github.com/hance08/tally/cmd/lookup"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type showRunner struct {
	svc   *service.Service
	flags *lookup.Flags
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	flags := &lookup.Flags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the details of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	flags.Register(cmd)

	return cmd
}

func (r *showRunner) Run(ctx context.Context) error {
	u, err := r.flags.FindUser(ctx, r.svc)
	if err != nil {
		return err
	}
	return views.RenderUserDetails(u)
}
