package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediaonstake/agencysite/pkg/notify"
	"github.com/mediaonstake/agencysite/pkg/wizard"
)

func linkCmd() *cobra.Command {
	var fields wizard.Fields

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the WhatsApp link for the given form values",
		Example: `  agencysite link --service "SEO & Content" --name Jane --email jane@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := buildLink(cfg.Wizard(), fields)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&fields.Service, "service", "", "service the visitor picked")
	f.StringVar(&fields.Name, "name", "", "full name (required)")
	f.StringVar(&fields.Email, "email", "", "email address (required)")
	f.StringVar(&fields.Company, "company", "", "company name")
	f.StringVar(&fields.Message, "message", "", "project details")
	return cmd
}

// buildLink walks a wizard through the same steps a visitor takes, with the
// submit delay fired immediately.
func buildLink(wc wizard.Config, fs wizard.Fields) (string, error) {
	var (
		link    string
		sched   wizard.ManualScheduler
		notices notify.Recorder
	)
	w := wizard.New(wc,
		wizard.WithScheduler(&sched),
		wizard.WithNotifier(&notices),
		wizard.WithOpener(wizard.OpenerFunc(func(url string) { link = url })),
	)
	defer w.Close()

	if err := w.SelectOption(fs.Service); err != nil {
		return "", err
	}
	for _, f := range []wizard.Field{wizard.FieldName, wizard.FieldEmail, wizard.FieldCompany, wizard.FieldMessage} {
		w.UpdateField(string(f), fs.Get(f))
	}
	if err := w.Submit(); err != nil {
		return "", err
	}
	sched.Fire()
	if link == "" {
		return "", fmt.Errorf("link: hand-off did not run")
	}
	return link, nil
}
