package proposal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wealthcraft/advisor/internal/domain"
	"github.com/wealthcraft/advisor/internal/modules/allocation"
	"github.com/wealthcraft/advisor/internal/modules/recommendation"
	"github.com/wealthcraft/advisor/internal/modules/risk"
)

// Formatter renders computed proposal structures into narrative text. It is a
// pure function of its inputs and never fails: missing sections degrade to
// simpler renderings.
type Formatter struct{}

// NewFormatter creates a new narrative formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Render produces the full proposal narrative.
func (f *Formatter) Render(clientName string, profile risk.Profile, alloc *allocation.Result, recs *recommendation.Result, sizeCrore float64) string {
	var b strings.Builder

	name := clientName
	if name == "" {
		name = "the client"
	}

	fmt.Fprintf(&b, "Investment Proposal for %s\n", name)
	fmt.Fprintf(&b, "Proposed investment: %s\n\n", formatCrore(sizeCrore))

	f.renderRisk(&b, profile)
	f.renderAllocation(&b, alloc, sizeCrore)
	f.renderRecommendations(&b, recs)

	return b.String()
}

func (f *Formatter) renderRisk(b *strings.Builder, profile risk.Profile) {
	fmt.Fprintf(b, "Risk Profile\n")
	fmt.Fprintf(b, "Score %d of 28, classified as %s (%s risk).\n",
		profile.Score, profile.Category, domain.RiskLevelFor(profile.Category))

	for _, inc := range profile.Inconsistencies {
		fmt.Fprintf(b, "Note: %s\n", inc.Message)
	}
	b.WriteString("\n")
}

// renderAllocation prints the asset-class table and the detailed vehicle
// table. When the detailed breakdown is absent (older allocation results
// carried only percentages), amounts are derived from the asset-class
// percentages instead.
func (f *Formatter) renderAllocation(b *strings.Builder, alloc *allocation.Result, sizeCrore float64) {
	if alloc == nil {
		return
	}

	fmt.Fprintf(b, "Asset Allocation\n")
	for _, class := range orderedClasses(alloc.AssetClasses) {
		fmt.Fprintf(b, "  %-12s %5.1f%%\n", classLabel(class), alloc.AssetClasses[class])
	}
	b.WriteString("\n")

	total, hasDetailed := alloc.Detailed[domain.KeyTotal]
	if !hasDetailed {
		// Legacy percentage-only fallback
		fmt.Fprintf(b, "Indicative Amounts\n")
		for _, class := range orderedClasses(alloc.AssetClasses) {
			amount := sizeCrore * alloc.AssetClasses[class] / 100
			fmt.Fprintf(b, "  %-12s %s\n", classLabel(class), formatCrore(amount))
		}
		b.WriteString("\n")
		return
	}

	fmt.Fprintf(b, "Detailed Breakdown\n")
	for _, vehicle := range orderedVehicles(alloc.Detailed) {
		fmt.Fprintf(b, "  %-22s %s\n", vehicle, formatCrore(alloc.Detailed[vehicle]))
	}
	fmt.Fprintf(b, "  %-22s %s\n\n", "Total", formatCrore(total))

	if alloc.Explanation != "" {
		fmt.Fprintf(b, "%s\n\n", alloc.Explanation)
	}
}

func (f *Formatter) renderRecommendations(b *strings.Builder, recs *recommendation.Result) {
	if recs == nil {
		return
	}

	fmt.Fprintf(b, "Recommended Products\n")
	sections := []struct {
		label string
		items []recommendation.VehicleRecommendation
	}{
		{"Equity", recs.Equity},
		{"Debt", recs.Debt},
		{"Gold & Silver", recs.GoldSilver},
	}

	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		fmt.Fprintf(b, "%s\n", section.label)
		for _, rec := range section.items {
			fmt.Fprintf(b, "  %s (%.1f%%, %s)\n", rec.Vehicle, rec.AllocationPct, formatCrore(rec.AmountCrore))
			for _, p := range rec.Products {
				fmt.Fprintf(b, "    - %s", p.Name)
				if p.ExpectedReturnPct > 0 {
					fmt.Fprintf(b, ", expected %.1f%% p.a.", p.ExpectedReturnPct)
				}
				if p.LockInPeriod != "" && p.LockInPeriod != "None" {
					fmt.Fprintf(b, ", lock-in %s", p.LockInPeriod)
				}
				b.WriteString("\n")
			}
		}
	}

	if recs.Summary != "" {
		fmt.Fprintf(b, "\n%s\n", recs.Summary)
	}
}

// formatCrore renders a crore amount in Indian units: crore for amounts of at
// least one crore, lakh below that.
func formatCrore(crore float64) string {
	if crore >= 1 {
		return fmt.Sprintf("₹%.2f Cr", crore)
	}
	return fmt.Sprintf("₹%.1f Lakh", crore*domain.Crore/domain.Lakh)
}

func classLabel(class domain.AssetClass) string {
	switch class {
	case domain.AssetEquity:
		return "Equity"
	case domain.AssetDebt:
		return "Debt"
	case domain.AssetGoldSilver:
		return "Gold & Silver"
	default:
		return string(class)
	}
}

func orderedClasses(split map[domain.AssetClass]float64) []domain.AssetClass {
	classes := make([]domain.AssetClass, 0, len(split))
	for class := range split {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		return split[classes[i]] > split[classes[j]]
	})
	return classes
}

func orderedVehicles(detailed map[string]float64) []string {
	vehicles := make([]string, 0, len(detailed))
	for vehicle := range detailed {
		if vehicle == domain.KeyTotal {
			continue
		}
		vehicles = append(vehicles, vehicle)
	}
	sort.Slice(vehicles, func(i, j int) bool {
		if detailed[vehicles[i]] != detailed[vehicles[j]] {
			return detailed[vehicles[i]] > detailed[vehicles[j]]
		}
		return vehicles[i] < vehicles[j]
	})
	return vehicles
}
