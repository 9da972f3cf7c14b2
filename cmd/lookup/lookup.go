// Package lookup wires the user lookup flags shared by several commands.
package lookup

import (
	"context"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/spf13/cobra"
)

type Flags struct {
	Identifier string
	Kind       string
}

// Register adds --user and --by to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Identifier, "user", "u", "", "Email, phone number or user id of the user")
	cmd.Flags().StringVarP(&f.Kind, "by", "b", "", "Identifier type: email, phone or userId")
}

// FindUser prompts for whatever the flags leave out, then looks the user up.
func (f *Flags) FindUser(ctx context.Context, svc *service.Service) (*model.User, error) {
	identifier, kind, err := prompts.PromptUserLookup(f.Identifier, f.Kind)
	if err != nil {
		return nil, err
	}
	return svc.User.FindUser(ctx, identifier, kind)
}
