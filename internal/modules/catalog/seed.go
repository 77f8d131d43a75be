package catalog

import "github.com/wealthcraft/advisor/internal/domain"

// defaultCatalog is the compiled-in static catalog used to seed an empty
// database. Minimum investments are in rupees, AUM in crore.
var defaultCatalog = []Entry{
	// Equity mutual funds
	{domain.AssetEquity, domain.VehicleEquityMF, "Low", domain.ProductCandidate{
		Name: "Nifty 50 Index Fund", Description: "Passive large-cap exposure tracking the Nifty 50",
		Category: "Large Cap", ExpectedReturnPct: 11, Risk: "Low", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 42000}},
	{domain.AssetEquity, domain.VehicleEquityMF, "Low", domain.ProductCandidate{
		Name: "Bluechip Equity Fund", Description: "Actively managed portfolio of established large caps",
		Category: "Large Cap", ExpectedReturnPct: 12, Risk: "Low", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 31000}},
	{domain.AssetEquity, domain.VehicleEquityMF, "Moderate", domain.ProductCandidate{
		Name: "Flexi Cap Growth Fund", Description: "Goes across market caps with a large-cap tilt",
		Category: "Flexi Cap", ExpectedReturnPct: 13, Risk: "Moderate", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 24000}},
	{domain.AssetEquity, domain.VehicleEquityMF, "Moderate", domain.ProductCandidate{
		Name: "Large & Mid Cap Fund", Description: "Blend of large and mid cap compounders",
		Category: "Large & Mid Cap", ExpectedReturnPct: 13.5, Risk: "Moderate", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 15000}},
	{domain.AssetEquity, domain.VehicleEquityMF, "High", domain.ProductCandidate{
		Name: "Midcap Opportunities Fund", Description: "Concentrated mid-cap portfolio",
		Category: "Mid Cap", ExpectedReturnPct: 15, Risk: "High", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 18000}},
	{domain.AssetEquity, domain.VehicleEquityMF, "High", domain.ProductCandidate{
		Name: "Emerging Leaders Fund", Description: "Mid and small cap businesses scaling nationally",
		Category: "Mid Cap", ExpectedReturnPct: 15.5, Risk: "High", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 9000}},
	{domain.AssetEquity, domain.VehicleEquityMF, "Very High", domain.ProductCandidate{
		Name: "Small Cap Discovery Fund", Description: "Early-stage listed small caps",
		Category: "Small Cap", ExpectedReturnPct: 17, Risk: "Very High", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 12000}},
	{domain.AssetEquity, domain.VehicleEquityMF, "Very High", domain.ProductCandidate{
		Name: "Microcap Alpha Fund", Description: "High-conviction micro and small cap picks",
		Category: "Small Cap", ExpectedReturnPct: 18, Risk: "Very High", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 4000}},

	// Equity PMS
	{domain.AssetEquity, domain.VehicleEquityPMS, "Low", domain.ProductCandidate{
		Name: "Dividend Yield PMS", Description: "Discretionary portfolio of dividend-paying large caps",
		ExpectedReturnPct: 12, Risk: "Low", LockInPeriod: "1 year",
		MinimumInvestment: 50 * domain.Lakh, AUMCrore: 1800}},
	{domain.AssetEquity, domain.VehicleEquityPMS, "Moderate", domain.ProductCandidate{
		Name: "Quality Compounders PMS", Description: "Concentrated portfolio of durable franchises",
		ExpectedReturnPct: 14, Risk: "Moderate", LockInPeriod: "1 year",
		MinimumInvestment: 50 * domain.Lakh, AUMCrore: 2600}},
	{domain.AssetEquity, domain.VehicleEquityPMS, "High", domain.ProductCandidate{
		Name: "Growth Momentum PMS", Description: "Momentum-tilted growth portfolio, 20-25 names",
		ExpectedReturnPct: 16, Risk: "High", LockInPeriod: "1 year",
		MinimumInvestment: 50 * domain.Lakh, AUMCrore: 1200}},
	{domain.AssetEquity, domain.VehicleEquityPMS, "Very High", domain.ProductCandidate{
		Name: "Concentrated Alpha PMS", Description: "High-conviction 12-15 stock portfolio",
		ExpectedReturnPct: 18, Risk: "Very High", LockInPeriod: "1 year",
		MinimumInvestment: 50 * domain.Lakh, AUMCrore: 900}},

	// Equity AIF
	{domain.AssetEquity, domain.VehicleEquityAIF, "Moderate", domain.ProductCandidate{
		Name: "Long-Only Equity AIF (Cat III)", Description: "Long-only listed equity alternative fund",
		ExpectedReturnPct: 15, Risk: "Moderate", LockInPeriod: "3 years",
		MinimumInvestment: 1 * domain.Crore, AUMCrore: 2200}},
	{domain.AssetEquity, domain.VehicleEquityAIF, "High", domain.ProductCandidate{
		Name: "Special Situations AIF", Description: "Event-driven and special situations strategy",
		ExpectedReturnPct: 17, Risk: "High", LockInPeriod: "3 years",
		MinimumInvestment: 1 * domain.Crore, AUMCrore: 1500}},
	{domain.AssetEquity, domain.VehicleEquityAIF, "Very High", domain.ProductCandidate{
		Name: "Pre-IPO Opportunities AIF", Description: "Late-stage unlisted and pre-IPO companies",
		ExpectedReturnPct: 20, Risk: "Very High", LockInPeriod: "4 years",
		MinimumInvestment: 1 * domain.Crore, AUMCrore: 800}},

	// Gold & silver
	{domain.AssetGoldSilver, domain.VehicleGoldSilverETF, "Moderate", domain.ProductCandidate{
		Name: "Gold ETF", Description: "Exchange-traded physical gold",
		ExpectedReturnPct: 8, Risk: "Moderate", LockInPeriod: "None",
		MinimumInvestment: 1000, AUMCrore: 14000}},
	{domain.AssetGoldSilver, domain.VehicleGoldSilverETF, "Moderate", domain.ProductCandidate{
		Name: "Silver ETF", Description: "Exchange-traded physical silver",
		ExpectedReturnPct: 7.5, Risk: "Moderate", LockInPeriod: "None",
		MinimumInvestment: 1000, AUMCrore: 3000}},

	// Debt mutual funds
	{domain.AssetDebt, domain.VehicleDebtMF, "Low", domain.ProductCandidate{
		Name: "Short Duration Debt Fund", Description: "1-3 year duration, AAA-heavy portfolio",
		Category: "Short Duration", ExpectedReturnPct: 7, Risk: "Low", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 21000}},
	{domain.AssetDebt, domain.VehicleDebtMF, "Low", domain.ProductCandidate{
		Name: "Banking & PSU Debt Fund", Description: "Bonds of banks and public sector undertakings",
		Category: "Banking & PSU", ExpectedReturnPct: 7.2, Risk: "Low", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 12000}},
	{domain.AssetDebt, domain.VehicleDebtMF, "Moderate", domain.ProductCandidate{
		Name: "Corporate Bond Fund", Description: "High-grade corporate bond portfolio",
		Category: "Corporate Bond", ExpectedReturnPct: 7.5, Risk: "Moderate", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 17000}},
	{domain.AssetDebt, domain.VehicleDebtMF, "High", domain.ProductCandidate{
		Name: "Credit Risk Fund", Description: "AA and below corporate credit for higher accrual",
		Category: "Credit Risk", ExpectedReturnPct: 8.5, Risk: "High", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 4000}},
	{domain.AssetDebt, domain.VehicleDebtMF, "Very High", domain.ProductCandidate{
		Name: "Dynamic Bond Fund", Description: "Actively managed duration across the curve",
		Category: "Dynamic Bond", ExpectedReturnPct: 8, Risk: "Very High", LockInPeriod: "None",
		MinimumInvestment: 5000, AUMCrore: 6000}},

	// Direct debt
	{domain.AssetDebt, domain.VehicleDirectDebt, "Low", domain.ProductCandidate{
		Name: "Government Securities Ladder", Description: "Laddered G-Sec holdings to maturity",
		ExpectedReturnPct: 7.1, Risk: "Low", LockInPeriod: "Held to maturity",
		MinimumInvestment: 10000}},
	{domain.AssetDebt, domain.VehicleDirectDebt, "Low", domain.ProductCandidate{
		Name: "Bank Fixed Deposits", Description: "Scheduled bank FDs across tenors",
		ExpectedReturnPct: 6.8, Risk: "Low", LockInPeriod: "1-5 years",
		MinimumInvestment: 10000}},
	{domain.AssetDebt, domain.VehicleDirectDebt, "Moderate", domain.ProductCandidate{
		Name: "AAA Corporate Bonds", Description: "Direct holdings of AAA-rated corporate paper",
		ExpectedReturnPct: 7.8, Risk: "Moderate", LockInPeriod: "Held to maturity",
		MinimumInvestment: 100000}},
	{domain.AssetDebt, domain.VehicleDirectDebt, "High", domain.ProductCandidate{
		Name: "High-Yield NCDs", Description: "Selected non-convertible debentures, AA and below",
		ExpectedReturnPct: 9.5, Risk: "High", LockInPeriod: "Held to maturity",
		MinimumInvestment: 100000}},
	{domain.AssetDebt, domain.VehicleDirectDebt, "Very High", domain.ProductCandidate{
		Name: "Market-Linked Debentures", Description: "Structured debentures with index-linked payoffs",
		ExpectedReturnPct: 10, Risk: "Very High", LockInPeriod: "2-3 years",
		MinimumInvestment: 10 * domain.Lakh}},

	// Debt AIF
	{domain.AssetDebt, domain.VehicleDebtAIF, "High", domain.ProductCandidate{
		Name: "Private Credit AIF (Cat II)", Description: "Senior secured lending to mid-market companies",
		ExpectedReturnPct: 12, Risk: "High", LockInPeriod: "4 years",
		MinimumInvestment: 1 * domain.Crore, AUMCrore: 1100}},
	{domain.AssetDebt, domain.VehicleDebtAIF, "Very High", domain.ProductCandidate{
		Name: "Distressed Assets AIF", Description: "Stressed and distressed credit opportunities",
		ExpectedReturnPct: 14, Risk: "Very High", LockInPeriod: "5 years",
		MinimumInvestment: 1 * domain.Crore, AUMCrore: 700}},
}
