package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"studioo/internal/domain/pricing"
	"studioo/internal/presentation"
	"studioo/internal/usecase"
)

var (
	engagementStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e879f9"))
	catalogBorder   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52525b"))
	catalogCell     = lipgloss.NewStyle().Padding(0, 1)
)

func newCatalogCommand(app *App) *cobra.Command {
	var engagement string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the price catalog",
		Long: `Print the price catalog, grouped by engagement.

Example:
  studioctl catalog --engagement project/photography`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewCatalogUseCase(app.catalog)

			views := uc.ListEngagements(app.lang)
			if engagement != "" {
				v, err := uc.GetEngagement(app.lang, engagement)
				if err != nil {
					return fmt.Errorf("engagement %q: %w", engagement, err)
				}
				views = []usecase.EngagementView{v}
			}

			out := cmd.OutOrStdout()
			for _, v := range views {
				fmt.Fprintln(out, engagementStyle.Render(v.Title+"  ("+v.Key+")"))
				fmt.Fprintln(out, renderEngagement(v))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&engagement, "engagement", "", "engagement key, e.g. project/photography, retainer, training")
	return cmd
}

func renderEngagement(v usecase.EngagementView) string {
	var rows [][]string
	for _, g := range v.Groups {
		for _, o := range g.Options {
			rows = append(rows, []string{g.Group, o.Label, formatPrice(o.Price, v.Currency)})
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(catalogBorder).
		Headers("GROUP", "OPTION", "PRICE").
		Rows(rows...).
		StyleFunc(func(int, int) lipgloss.Style { return catalogCell }).
		String()
}

func formatPrice(p pricing.Price, currency string) string {
	switch p.Kind {
	case pricing.KindPercent:
		return "+" + presentation.FormatQuantity(p.Amount) + "%"
	case pricing.KindPerUnit:
		if p.Unit != "" {
			return presentation.FormatMoney(p.Amount, currency) + " / " + p.Unit
		}
	}
	return presentation.FormatMoney(p.Amount, currency)
}
