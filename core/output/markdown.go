package output

import (
	"fmt"
	"io"
	"strings"

	"cloud-cost/core/analysis"
	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
)

// MarkdownFormatter renders reports as GitHub-flavoured markdown
type MarkdownFormatter struct {
	// Level is the heading level of the top section
	Level int
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{Level: 2}
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes result as markdown
func (f *MarkdownFormatter) Render(w io.Writer, result interface{}) error {
	if !renderable(result) {
		return unsupported(FormatMarkdown, result)
	}

	var sb strings.Builder
	switch r := result.(type) {
	case *types.ComputeComparison:
		f.compute(&sb, f.Level, r)
	case *types.StorageComparison:
		f.storage(&sb, f.Level, r)
	case *types.TCOResult:
		f.tco(&sb, f.Level, r)
	case *types.MigrationPlan:
		f.migration(&sb, r)
	case *analysis.Report:
		f.report(&sb, r)
	case *pricing.Discount:
		f.discount(&sb, r)
	case []pricing.RankedQuote:
		f.ranked(&sb, r)
	case []ProviderInfo:
		f.providers(&sb, r)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *MarkdownFormatter) heading(sb *strings.Builder, level int, title string) {
	sb.WriteString(fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), title))
}

func table(sb *strings.Builder, headers []string, rows [][]string) {
	sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	sb.WriteString("|" + strings.Join(sep, "|") + "|\n")
	for _, row := range rows {
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	sb.WriteString("\n")
}

func bullets(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("**%s:**\n\n", title))
	for _, it := range items {
		sb.WriteString("- " + it + "\n")
	}
	sb.WriteString("\n")
}

func recommendation(sb *strings.Builder, rec types.Recommendation) {
	sb.WriteString(fmt.Sprintf("**Recommended:** %s\n", rec.Winner.DisplayName()))
	sb.WriteString(fmt.Sprintf("**Confidence:** %.0f%% (%s)\n\n", rec.Confidence*100, ConfidenceLevel(rec.Confidence)))
}

func (f *MarkdownFormatter) compute(sb *strings.Builder, level int, c *types.ComputeComparison) {
	f.heading(sb, level, fmt.Sprintf("Compute Comparison (%s)", c.WorkloadType))

	table(sb, []string{"", sideLabel(c.A.Provider, c.A.Resource), sideLabel(c.B.Provider, c.B.Resource)}, [][]string{
		{"Monthly cost", Money(c.A.MonthlyCost), Money(c.B.MonthlyCost)},
		{"Cost", Score(c.A.Scores.Cost), Score(c.B.Scores.Cost)},
		{"Performance", Score(c.A.Scores.Performance), Score(c.B.Scores.Performance)},
		{"Scalability", Score(c.A.Scores.Scalability), Score(c.B.Scores.Scalability)},
		{"Reliability", Score(c.A.Scores.Reliability), Score(c.B.Scores.Reliability)},
		{"Maintenance", Score(c.A.Scores.Maintenance), Score(c.B.Scores.Maintenance)},
		{"**Final**", "**" + Score(c.A.Scores.Final) + "**", "**" + Score(c.B.Scores.Final) + "**"},
	})

	if c.CostDifference > 0 {
		sb.WriteString(fmt.Sprintf("%s saves %s/month (%s).\n\n",
			c.CostSavingsProvider.DisplayName(), Money(c.CostDifference), Percent(c.CostSavingsPercentage)))
	}
	recommendation(sb, c.Recommendation)
	bullets(sb, "Primary reasons", c.Recommendation.PrimaryReasons)
}

func (f *MarkdownFormatter) storage(sb *strings.Builder, level int, s *types.StorageComparison) {
	f.heading(sb, level, "Storage Comparison")

	table(sb, []string{"", sideLabel(s.A.Provider, s.A.StorageType), sideLabel(s.B.Provider, s.B.StorageType)}, [][]string{
		{"Per GB-month", Rate(s.A.CostPerGBMonth), Rate(s.B.CostPerGBMonth)},
		{"Durability", orDash(s.Analysis.A.Durability), orDash(s.Analysis.B.Durability)},
		{"Availability", orDash(s.Analysis.A.Availability), orDash(s.Analysis.B.Availability)},
		{"Use case", orDash(s.Analysis.A.UseCase), orDash(s.Analysis.B.UseCase)},
	})

	if len(s.Projections) > 0 {
		rows := make([][]string, 0, len(s.Projections))
		for _, p := range s.Projections {
			rows = append(rows, []string{Size(p.SizeGB), Money(p.CostA), Money(p.CostB)})
		}
		table(sb, []string{"Volume", s.A.Provider.DisplayName(), s.B.Provider.DisplayName()}, rows)
	}

	recommendation(sb, s.Recommendation)
	if s.Recommendation.Reasoning != "" {
		sb.WriteString("> " + s.Recommendation.Reasoning + "\n\n")
	}
}

func (f *MarkdownFormatter) tco(sb *strings.Builder, level int, r *types.TCOResult) {
	f.heading(sb, level, fmt.Sprintf("Total Cost of Ownership (%d months)", r.HorizonMonths))

	table(sb, []string{"", r.A.Provider.DisplayName(), r.B.Provider.DisplayName()}, [][]string{
		{"Compute", Money(r.A.Monthly.Compute), Money(r.B.Monthly.Compute)},
		{"Storage", Money(r.A.Monthly.Storage), Money(r.B.Monthly.Storage)},
		{"Additional", Money(r.A.Monthly.Additional), Money(r.B.Monthly.Additional)},
		{"Operational", Money(r.A.Monthly.Operational), Money(r.B.Monthly.Operational)},
		{"Monthly total", Money(r.A.Monthly.Total), Money(r.B.Monthly.Total)},
		{"**TCO**", "**" + Money(r.A.TCO) + "**", "**" + Money(r.B.TCO) + "**"},
	})

	if r.Savings > 0 {
		sb.WriteString(fmt.Sprintf("**Savings:** %s with %s (%s), %s/year\n\n",
			Money(r.Savings), r.SavingsProvider.DisplayName(), Percent(r.SavingsPercentage), Money(r.AnnualSavings())))
	}
}

func (f *MarkdownFormatter) migration(sb *strings.Builder, m *types.MigrationPlan) {
	f.heading(sb, f.Level, fmt.Sprintf("Migration: %s to %s", m.CurrentProvider.DisplayName(), m.TargetProvider.DisplayName()))

	sb.WriteString(fmt.Sprintf("**Complexity:** %s (score %s)\n", m.ComplexityLevel, Score(m.ComplexityScore)))
	sb.WriteString(fmt.Sprintf("**Duration:** %s\n", m.Duration))
	sb.WriteString(fmt.Sprintf("**Effort:** %s\n", m.Effort))
	sb.WriteString(fmt.Sprintf("**Estimated cost:** %s (%s budget)\n\n", Money(m.EstimatedCost), m.BudgetTier))
	sb.WriteString(fmt.Sprintf("_%s_\n\n", m.ComplexityBasis))

	rows := make([][]string, 0, len(m.Phases))
	for _, p := range m.Phases {
		rows = append(rows, []string{p.Name, p.TimeShare, strings.Join(p.Tasks, "; ")})
	}
	table(sb, []string{"Phase", "Share", "Tasks"}, rows)

	bullets(sb, "Recommended tooling", m.Recommendations)
	bullets(sb, "Risks", m.Risks)
	bullets(sb, "Mitigations", m.Mitigations)
	bullets(sb, "Next steps", m.NextSteps)
}

func (f *MarkdownFormatter) report(sb *strings.Builder, r *analysis.Report) {
	title := "Cost Analysis"
	if r.Scenario.Name != "" {
		title += ": " + r.Scenario.Name
	}
	f.heading(sb, f.Level, title)
	sb.WriteString(fmt.Sprintf("**Report:** `%s`\n", r.ID))
	sb.WriteString(fmt.Sprintf("**Workload:** %s, %s of storage\n", r.Scenario.Workload, Size(r.Scenario.StorageGB)))
	sb.WriteString(fmt.Sprintf("**Recommended provider:** %s\n\n", r.Recommended.DisplayName()))

	if r.Compute != nil {
		f.compute(sb, f.Level+1, r.Compute)
	}
	if r.Storage != nil {
		f.storage(sb, f.Level+1, r.Storage)
	}
	if r.TCO != nil {
		f.tco(sb, f.Level+1, r.TCO)
	}
	if r.Budget != nil && r.TCO != nil {
		table(sb, []string{"Provider", "Monthly total", "Within " + Money(r.Budget.MonthlyBudget)}, [][]string{
			{r.TCO.A.Provider.DisplayName(), Money(r.TCO.A.Monthly.Total), yesNo(r.Budget.WithinA)},
			{r.TCO.B.Provider.DisplayName(), Money(r.TCO.B.Monthly.Total), yesNo(r.Budget.WithinB)},
		})
	}
}

func (f *MarkdownFormatter) discount(sb *strings.Builder, d *pricing.Discount) {
	f.heading(sb, f.Level, "Sustained Use Discount")
	table(sb, []string{"Item", "Value"}, [][]string{
		{"Hourly rate", Rate(d.HourlyRate)},
		{"Usage", Percent(d.UsageShare * 100)},
		{"Discount rate", Percent(d.Rate * 100)},
		{"Original cost", Money(d.OriginalCost)},
		{"Discounted cost", Money(d.DiscountedCost)},
		{"Monthly savings", Money(d.MonthlySavings)},
		{"Annual savings", Money(d.AnnualSavings)},
	})
}

func (f *MarkdownFormatter) ranked(sb *strings.Builder, quotes []pricing.RankedQuote) {
	f.heading(sb, f.Level, "Instances by Price")
	rows := make([][]string, 0, len(quotes))
	for i, q := range quotes {
		rows = append(rows, []string{fmt.Sprint(i + 1), q.Provider.DisplayName(), "`" + q.Resource + "`", q.Region,
			Rate(q.HourlyCost()), Money(q.MonthlyCost()), Percent(q.SavingsVsMax)})
	}
	table(sb, []string{"#", "Provider", "Resource", "Region", "Hourly", "Monthly", "Savings vs max"}, rows)
}

func (f *MarkdownFormatter) providers(sb *strings.Builder, providers []ProviderInfo) {
	f.heading(sb, f.Level, "Providers")
	rows := make([][]string, 0, len(providers))
	for _, p := range providers {
		rows = append(rows, []string{string(p.Provider), p.Name, p.DefaultRegion,
			fmt.Sprint(len(p.Regions)), fmt.Sprint(len(p.ComputeTypes)), fmt.Sprint(len(p.StorageTypes))})
	}
	table(sb, []string{"Provider", "Name", "Default region", "Regions", "Compute types", "Storage types"}, rows)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
