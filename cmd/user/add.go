package user

import (
	"context"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Yes       bool
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new user",
		Long: `Register a new user. Missing fields are asked for interactively.

Examples:
  tally user add
  tally user add --first Jane --last Doe --email jane@example.com -y`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&flags.Phone, "phone", "p", "", "Phone number")
	cmd.Flags().StringVar(&flags.FirstName, "first", "", "First name")
	cmd.Flags().StringVar(&flags.LastName, "last", "", "Last name")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func (r *addRunner) Run(ctx context.Context) error {
	f := r.flags

	hasFlags := f.FirstName != "" && f.LastName != "" && (f.Email != "" || f.Phone != "")
	if !hasFlags {
		if err := prompts.PromptNewUser(&f.Email, &f.Phone, &f.FirstName, &f.LastName); err != nil {
			return err
		}
	}

	if !f.Yes {
		confirm := false
		prompt := &survey.Confirm{
			Message: "Save " + f.FirstName + " " + f.LastName + "?",
			Default: true,
		}
		if err := survey.AskOne(prompt, &confirm, ui.IconOption()); err != nil {
			return err
		}
		if !confirm {
			pterm.Warning.Println("User not saved")
			return nil
		}
	}

	u, err := r.svc.User.CreateUser(ctx, store.NewUser{
		Email:     f.Email,
		Phone:     f.Phone,
		FirstName: f.FirstName,
		LastName:  f.LastName,
	})
	if err != nil {
		return err
	}

	ui.Separator()
	if err := views.RenderUserDetails(u); err != nil {
		return err
	}
	pterm.Success.Printf("User %s created\n", u.FullName())
	return nil
}
