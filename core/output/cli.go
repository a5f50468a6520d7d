package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud-cost/core/analysis"
	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	"cloud-cost/core/ui"
)

// CLIFormatter renders reports for a terminal
type CLIFormatter struct {
	noColor bool
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor}
}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes result as terminal text
func (f *CLIFormatter) Render(w io.Writer, result interface{}) error {
	if !renderable(result) {
		return unsupported(FormatCLI, result)
	}
	ew := &errWriter{w: w}
	uw := ui.NewWriter(ew, f.noColor)

	switch r := result.(type) {
	case *types.ComputeComparison:
		renderCompute(uw, r)
	case *types.StorageComparison:
		renderStorage(uw, r)
	case *types.TCOResult:
		renderTCO(uw, r)
	case *types.MigrationPlan:
		renderMigration(uw, r)
	case *analysis.Report:
		renderReport(uw, r)
	case *pricing.Discount:
		renderDiscount(uw, r)
	case []pricing.RankedQuote:
		renderRanked(uw, r)
	case []ProviderInfo:
		renderProviders(uw, r)
	default:
		return unsupported(FormatCLI, result)
	}
	return ew.err
}

func sideLabel(p types.Provider, resource string) string {
	if resource == "" {
		return p.DisplayName()
	}
	return fmt.Sprintf("%s (%s)", p.DisplayName(), resource)
}

func renderCompute(w *ui.Writer, c *types.ComputeComparison) {
	w.Header(fmt.Sprintf("Compute Comparison: %s workload", c.WorkloadType))

	t := w.NewTable("", sideLabel(c.A.Provider, c.A.Resource), sideLabel(c.B.Provider, c.B.Resource))
	t.AddRow("Monthly cost", Money(c.A.MonthlyCost), Money(c.B.MonthlyCost))
	t.AddRow("Cost", Score(c.A.Scores.Cost), Score(c.B.Scores.Cost))
	t.AddRow("Performance", Score(c.A.Scores.Performance), Score(c.B.Scores.Performance))
	t.AddRow("Scalability", Score(c.A.Scores.Scalability), Score(c.B.Scores.Scalability))
	t.AddRow("Reliability", Score(c.A.Scores.Reliability), Score(c.B.Scores.Reliability))
	t.AddRow("Maintenance", Score(c.A.Scores.Maintenance), Score(c.B.Scores.Maintenance))
	t.AddRow("Final", Score(c.A.Scores.Final), Score(c.B.Scores.Final))
	t.Render()
	w.Line("")

	renderSavings(w, c.CostDifference, c.CostSavingsProvider, c.CostSavingsPercentage, "/month")
	renderVerdict(w, "Recommendation", c.Recommendation, c.Recommendation.PrimaryReasons)
	if c.Recommendation.Reasoning != "" {
		w.Info("%s", c.Recommendation.Reasoning)
	}
}

func renderStorage(w *ui.Writer, s *types.StorageComparison) {
	w.Header("Storage Comparison")

	t := w.NewTable("", sideLabel(s.A.Provider, s.A.StorageType), sideLabel(s.B.Provider, s.B.StorageType))
	t.AddRow("Per GB-month", Rate(s.A.CostPerGBMonth), Rate(s.B.CostPerGBMonth))
	t.AddRow("Durability", orDash(s.Analysis.A.Durability), orDash(s.Analysis.B.Durability))
	t.AddRow("Availability", orDash(s.Analysis.A.Availability), orDash(s.Analysis.B.Availability))
	t.AddRow("Use case", orDash(s.Analysis.A.UseCase), orDash(s.Analysis.B.UseCase))
	t.Render()
	w.Line("")

	w.KeyValue("Durability", string(s.Analysis.Durability))
	availability := string(s.Analysis.Availability)
	if s.Analysis.AvailabilityLeader != "" {
		availability += " (" + s.Analysis.AvailabilityLeader.DisplayName() + ")"
	}
	w.KeyValue("Availability", availability)
	w.Line("")

	if len(s.Projections) > 0 {
		w.SubHeader("Projected monthly cost")
		p := w.NewTable("Volume", s.A.Provider.DisplayName(), s.B.Provider.DisplayName())
		for _, pr := range s.Projections {
			p.AddRow(Size(pr.SizeGB), Money(pr.CostA), Money(pr.CostB))
		}
		p.Render()
		w.Line("")
	}

	renderSavings(w, s.CostDifference, s.CostSavingsProvider, s.CostSavingsPercentage, "/GB-month")
	var lines []string
	if s.Recommendation.Reasoning != "" {
		lines = []string{s.Recommendation.Reasoning}
	}
	renderVerdict(w, "Recommendation", s.Recommendation, lines)
}

func renderTCO(w *ui.Writer, r *types.TCOResult) {
	w.Header(fmt.Sprintf("Total Cost of Ownership: %d months", r.HorizonMonths))

	t := w.NewTable("", r.A.Provider.DisplayName(), r.B.Provider.DisplayName())
	t.AddRow("Compute", Money(r.A.Monthly.Compute), Money(r.B.Monthly.Compute))
	t.AddRow("Storage", Money(r.A.Monthly.Storage), Money(r.B.Monthly.Storage))
	t.AddRow("Additional", Money(r.A.Monthly.Additional), Money(r.B.Monthly.Additional))
	t.AddRow("Operational", Money(r.A.Monthly.Operational), Money(r.B.Monthly.Operational))
	t.AddRow("Monthly total", Money(r.A.Monthly.Total), Money(r.B.Monthly.Total))
	t.AddRow("TCO", Money(r.A.TCO), Money(r.B.TCO))
	t.Render()
	w.Line("")

	if r.Savings == 0 {
		w.Info("Both providers have the same TCO")
		return
	}
	w.Success("%s saves %s over %d months (%s)",
		r.SavingsProvider.DisplayName(), Money(r.Savings), r.HorizonMonths, Percent(r.SavingsPercentage))
	w.KeyValue("Monthly savings", Money(r.MonthlySavings()))
	w.KeyValue("Annual savings", Money(r.AnnualSavings()))
}

func renderMigration(w *ui.Writer, m *types.MigrationPlan) {
	w.Header(fmt.Sprintf("Migration: %s → %s", m.CurrentProvider.DisplayName(), m.TargetProvider.DisplayName()))

	w.KeyValue("Complexity", fmt.Sprintf("%s (score %s)", m.ComplexityLevel, Score(m.ComplexityScore)))
	w.KeyValue("Duration", m.Duration)
	w.KeyValue("Effort", m.Effort)
	w.KeyValue("Budget", fmt.Sprintf("%s (x%s)", m.BudgetTier, strconv.FormatFloat(m.BudgetMultiplier, 'f', -1, 64)))
	w.KeyValue("Estimated cost", fmt.Sprintf("%s (base %s)", Money(m.EstimatedCost), Money(m.BaseCost)))
	w.Debug("%s", m.ComplexityBasis)
	w.Line("")

	w.SubHeader("Phases")
	t := w.NewTable("Phase", "Share", "Tasks")
	for _, p := range m.Phases {
		t.AddRow(p.Name, p.TimeShare, strings.Join(p.Tasks, "; "))
	}
	t.Render()
	w.Line("")

	list(w, "Recommended tooling", m.Recommendations)
	list(w, "Risks", m.Risks)
	list(w, "Mitigations", m.Mitigations)
	list(w, "Next steps", m.NextSteps)
}

func renderReport(w *ui.Writer, r *analysis.Report) {
	title := "Cost Analysis"
	if r.Scenario.Name != "" {
		title += ": " + r.Scenario.Name
	}
	w.Header(title)
	w.KeyValue("Report", r.ID)
	w.KeyValue("Generated", r.GeneratedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	w.KeyValue("Workload", string(r.Scenario.Workload))
	w.KeyValue("Storage", Size(r.Scenario.StorageGB))

	if r.Compute != nil {
		renderCompute(w, r.Compute)
	}
	if r.Storage != nil {
		renderStorage(w, r.Storage)
	}
	if r.TCO != nil {
		renderTCO(w, r.TCO)
	}

	if r.Budget != nil && r.TCO != nil {
		w.Line("")
		budgetLine(w, r.TCO.A.Provider, r.TCO.A.Monthly.Total, r.Budget.MonthlyBudget, r.Budget.WithinA)
		budgetLine(w, r.TCO.B.Provider, r.TCO.B.Monthly.Total, r.Budget.MonthlyBudget, r.Budget.WithinB)
	}

	w.Line("")
	w.Success("Recommended provider: %s", r.Recommended.DisplayName())
}

func budgetLine(w *ui.Writer, p types.Provider, total, budget float64, within bool) {
	if within {
		w.Success("%s fits the %s monthly budget (%s)", p.DisplayName(), Money(budget), Money(total))
		return
	}
	w.Warning("%s exceeds the %s monthly budget (%s)", p.DisplayName(), Money(budget), Money(total))
}

func renderDiscount(w *ui.Writer, d *pricing.Discount) {
	w.Header("Sustained Use Discount")
	w.KeyValue("Hourly rate", Rate(d.HourlyRate))
	w.KeyValue("Hours per month", strconv.FormatFloat(d.HoursPerMonth, 'f', -1, 64))
	w.KeyValue("Usage", Percent(d.UsageShare*100))
	w.KeyValue("Discount rate", Percent(d.Rate*100))
	w.KeyValue("Original cost", Money(d.OriginalCost))
	w.KeyValue("Discounted cost", Money(d.DiscountedCost))
	w.Line("")
	if !d.Eligible {
		w.Info("Usage below %s of the month earns no discount", Percent(pricing.DiscountThreshold*100))
		return
	}
	w.Success("Saves %s/month, %s/year", Money(d.MonthlySavings), Money(d.AnnualSavings))
}

func renderRanked(w *ui.Writer, quotes []pricing.RankedQuote) {
	w.Header("Instances by Price")
	t := w.NewTable("#", "Provider", "Resource", "Region", "Hourly", "Monthly", "Savings vs max")
	for i, q := range quotes {
		t.AddRow(strconv.Itoa(i+1), q.Provider.DisplayName(), q.Resource, q.Region,
			Rate(q.HourlyCost()), Money(q.MonthlyCost()), Percent(q.SavingsVsMax))
	}
	t.Render()
}

func renderProviders(w *ui.Writer, providers []ProviderInfo) {
	w.Header("Providers")
	t := w.NewTable("Provider", "Name", "Default region", "Regions", "Compute types", "Storage types")
	for _, p := range providers {
		t.AddRow(string(p.Provider), p.Name, p.DefaultRegion,
			strconv.Itoa(len(p.Regions)), strconv.Itoa(len(p.ComputeTypes)), strconv.Itoa(len(p.StorageTypes)))
	}
	t.Render()
	w.Line("")
	for _, p := range providers {
		w.Info("%s: %s", p.Provider, p.Description)
	}
}

func renderSavings(w *ui.Writer, diff float64, p types.Provider, pct float64, unit string) {
	if diff == 0 {
		w.Info("Both options cost the same")
		return
	}
	amount := Money(diff)
	if unit == "/GB-month" {
		amount = Rate(diff)
	}
	w.Success("%s saves %s%s (%s)", p.DisplayName(), amount, unit, Percent(pct))
}

func renderVerdict(w *ui.Writer, title string, rec types.Recommendation, lines []string) {
	v := w.NewVerdict(title)
	v.Winner = rec.Winner.DisplayName()
	v.Confidence = rec.Confidence
	v.Level = ConfidenceLevel(rec.Confidence)
	v.Lines = lines
	v.Render()
}

func list(w *ui.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	w.SubHeader(title)
	for _, it := range items {
		w.Bullet(it)
	}
	w.Line("")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
