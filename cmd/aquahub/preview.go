package main

import (
	"fmt"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/rk2835/aquahub/internal/lib/email"
	"github.com/spf13/cobra"
)

const (
	templateFlag = "template"
	outFlag      = "out"
)

var previewFlags = map[string]cobraflags.Flag{
	templateFlag: &cobraflags.StringFlag{
		Name:  templateFlag,
		Value: string(email.TemplateWelcome),
		Usage: "Template to render",
	},
	outFlag: &cobraflags.StringFlag{
		Name:  outFlag,
		Value: "",
		Usage: "Write the HTML to this file instead of stdout",
	},
}

func newEmailPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email-preview",
		Short: "Render an email template with sample data",
		RunE:  emailPreviewCommand,
	}

	cobraflags.RegisterMap(cmd, previewFlags)
	return cmd
}

func emailPreviewCommand(cmd *cobra.Command, _ []string) error {
	name := email.Template(previewFlags[templateFlag].GetString())

	data, ok := email.PreviewData[name]
	if !ok {
		return fmt.Errorf("no preview data for template %q", name)
	}

	html, err := email.Render(name, data)
	if err != nil {
		return err
	}

	if out := previewFlags[outFlag].GetString(); out != "" {
		return os.WriteFile(out, []byte(html), 0o644)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
	return err
}
