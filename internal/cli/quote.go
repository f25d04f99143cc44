package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
	"studioo/internal/domain/wizard"
	"studioo/internal/i18n"
	"studioo/internal/presentation"
)

type quoteFlags struct {
	engagement string
	config     entities.ConfigurationInput
	contact    entities.ContactInfo
	pdfPath    string
	xlsxPath   string
	noAnimate  bool
}

func newQuoteCommand(app *App) *cobra.Command {
	var f quoteFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compile a quote from the command line",
		Long: `Walk the quote wizard with the given answers and print the quote.
Validation errors are reported per field and exit with status 2.

Example:
  studioctl quote --engagement project/photography --sub-service Event --quantity 3 \
    --logistics Dubai --delivery "Standard Delivery" \
    --name "Sara Haddad" --email sara@example.com --phone +971500000000 --pdf quote.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runQuote(cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.engagement, "engagement", "", "engagement key, e.g. project/photography, retainer, training")
	fl.StringVar(&f.config.SubService, "sub-service", "", "sub-service label")
	fl.IntVar(&f.config.Quantity, "quantity", 0, "quantity in the unit of the sub-service")
	fl.StringSliceVar(&f.config.AddOns, "addon", nil, "add-on label (repeatable)")
	fl.StringVar(&f.config.Logistics, "logistics", "", "logistics label")
	fl.StringVar(&f.config.Delivery, "delivery", "", "delivery label")
	fl.IntVar(&f.config.Hours, "hours", 0, "monthly hours (retainer)")
	fl.StringVar(&f.config.Format, "format", "", "training format")
	fl.IntVar(&f.config.Sessions, "sessions", 0, "training sessions")
	fl.IntVar(&f.config.ShootingDays, "shooting-days", 0, "shooting days (video production)")
	fl.StringVar(&f.config.VideoLength, "video-length", "", "final video length (video production)")
	fl.StringVar(&f.contact.Name, "name", "", "client full name")
	fl.StringVar(&f.contact.Email, "email", "", "client email")
	fl.StringVar(&f.contact.Phone, "phone", "", "client phone")
	fl.StringVar(&f.contact.Company, "company", "", "client company")
	fl.StringVar(&f.pdfPath, "pdf", "", "write the quote as PDF to this path")
	fl.StringVar(&f.xlsxPath, "xlsx", "", "write the quote as XLSX to this path")
	fl.BoolVar(&f.noAnimate, "no-animate", false, "print the totals without the count-up animation")
	_ = cmd.MarkFlagRequired("engagement")
	return cmd
}

func (a *App) runQuote(stdout, stderr io.Writer, f quoteFlags) error {
	q, err := a.compileQuote(f)
	var verrs entities.ValidationErrors
	if errors.As(err, &verrs) {
		fmt.Fprintln(stderr, i18n.T(a.lang, "error.validation"))
		for _, v := range verrs {
			fmt.Fprintf(stderr, "  --%s: %s\n", flagName(v.Field), i18n.ValidationMessage(a.lang, v.Field, v.Code))
		}
		return NewExitError(2)
	}
	if err != nil {
		return err
	}

	var animator presentation.Animator = presentation.DefaultAnimator()
	if f.noAnimate {
		animator = presentation.Static{}
	}
	a.animate(stdout, q, animator)

	doc := presentation.NewDocument(q, a.lang)
	fmt.Fprintln(stdout, presentation.RenderTerminal(doc))

	if f.pdfPath != "" {
		if err := writeFile(f.pdfPath, doc, presentation.GeneratePDF); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "PDF:", f.pdfPath)
	}
	if f.xlsxPath != "" {
		if err := writeFile(f.xlsxPath, doc, presentation.GenerateXLSX); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "XLSX:", f.xlsxPath)
	}
	return nil
}

// compileQuote drives the same sequencer as the HTTP wizard, one step at a
// time, so validation behaves identically.
func (a *App) compileQuote(f quoteFlags) (entities.Quote, error) {
	e, err := entities.ParseEngagementKey(f.engagement)
	if err != nil {
		return entities.Quote{}, entities.ValidationErrors{{Field: "engagement", Code: entities.CodeUnknownOption}}
	}

	compiler := pricing.NewCompiler(a.catalog,
		pricing.WithValidityDays(a.Quote.ValidityDays),
		pricing.WithLogger(a.Logger),
	)
	opts := []wizard.Option{}
	if a.Now != nil {
		opts = append(opts, wizard.WithClock(a.Now))
	}
	if a.Seed != nil {
		opts = append(opts, wizard.WithSeedSource(a.Seed))
	}
	seq := wizard.NewSequencer(compiler, opts...)

	s := seq.Start(uuid.NewString(), a.lang.String())
	if err := seq.SelectEngagement(s, e); err != nil {
		return entities.Quote{}, err
	}
	if _, err := seq.Next(s); err != nil {
		return entities.Quote{}, err
	}

	cfg, err := f.config.Build(e)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := seq.Configure(s, cfg); err != nil {
		return entities.Quote{}, err
	}
	if _, err := seq.Next(s); err != nil {
		return entities.Quote{}, err
	}

	if err := seq.UpdateContact(s, f.contact.Normalize()); err != nil {
		return entities.Quote{}, err
	}
	anomalies, err := seq.Next(s)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, an := range anomalies {
		a.Logger.Warn("[quote][cli] pricing_anomaly", zap.String("anomaly", an.String()))
	}
	return *s.Quote, nil
}

// animate counts the grand total up on a single line.
func (a *App) animate(w io.Writer, q entities.Quote, animator presentation.Animator) {
	label := i18n.T(a.lang, "quote.grand_total")
	frames := presentation.CountUp(q, animator)
	for i, fr := range frames {
		fmt.Fprintf(w, "\r%s: %s", label, presentation.FormatMoney(fr.GrandTotal, fr.Currency))
		if i < len(frames)-1 && a.Sleep != nil {
			a.Sleep(animator.Interval())
		}
	}
	fmt.Fprintln(w)
}

func writeFile(path string, doc presentation.Document, render func(presentation.Document) ([]byte, error)) error {
	body, err := render(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// flagName maps a validation field to the flag that sets it.
func flagName(field string) string {
	switch field {
	case "sub_service":
		return "sub-service"
	case "shooting_days":
		return "shooting-days"
	case "video_length":
		return "video-length"
	case "addons":
		return "addon"
	}
	return field
}
