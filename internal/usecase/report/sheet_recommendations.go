package report

import (
	"fmt"

	"github.com/simaogato/savings-planner/internal/domain"
	"github.com/simaogato/savings-planner/internal/usecase/projection"
)

var incomeIdeas = []string{
	"   • Side projects or freelancing",
	"   • Skill development for promotions",
	"   • Investment returns",
}

func recommendationsSheet(p domain.SavingsProjection) domain.Sheet {
	s := domain.Sheet{Name: SheetRecommendations}

	s.Set("A1", "RECOMMENDATIONS TO REACH YOUR GOAL", accentTitleStyle)
	s.Merge("A1", "C1")

	row := 3
	line := func(text string, style domain.Style) {
		s.Set(domain.CellRef("A", row), text, style)
		row++
	}

	if p.HasShortfall() {
		line("Current Situation:", boldStyle)
		line(fmt.Sprintf("You need to save %s/month to reach ₹1 Crore in 5 years.", FormatRupees(p.RequiredMonthlySavings)), domain.Style{})
		line(fmt.Sprintf("Currently, you're saving %s/month.", FormatRupees(p.MonthlySavings)), domain.Style{})
		line(fmt.Sprintf("You need to increase your savings by %s/month.", FormatRupees(p.Shortfall)), alertStyle)
		row++

		line("Recommended Actions:", sectionStyle)
		line("1. Review your top expense categories:", domain.Style{})
		for _, c := range projection.TopCategories(p.ExpensesByCategory, topCategoryCount) {
			line(fmt.Sprintf("   • %s: %s/month", c.Category, FormatRupees(c.Amount)), domain.Style{})
		}
		row++

		line("2. Consider increasing your income through:", domain.Style{})
		for _, idea := range incomeIdeas {
			line(idea, domain.Style{})
		}
	} else {
		line("Congratulations! 🎉", congratsStyle)
		line(fmt.Sprintf("You're saving %s/month, which is more than required!", FormatRupees(p.MonthlySavings)), domain.Style{})
		line("Keep up the great work and stay consistent with your savings.", domain.Style{})
	}

	s.Width("A", 80)

	return s
}
