package user

import (
	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

func NewUserCmd(svc *service.Service) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Register and look up users.",
		Long:  `Register users and show the details of an existing user.`,
	}

	userCmd.AddCommand(NewAddCmd(svc))
	userCmd.AddCommand(NewShowCmd(svc))

	return userCmd
}
