package config

// Default values used when no config file or environment override sets them.
const (
	DefaultAnchor          = "Scheme Name"
	DefaultKeyField        = "Scheme Name"
	DefaultDateField       = "AUM"
	DefaultHeaderRowLimit  = 20
	DefaultBenchmarkMarker = "Benchmark"
	DefaultBenchmarkPolicy = "skip"
)

// DefaultIgnoreSheets are workbook sheets that never hold fund data.
var DefaultIgnoreSheets = []string{"Home", "Sheet1", "Disclaimer"}

// DefaultFields is the equivalence table of the monthly fund factsheet.
func DefaultFields() []FieldConfig {
	return []FieldConfig{
		{Name: "Scheme Name", Raw: "Scheme Name", Template: "Scheme Name"},
		{Name: "Month End", Raw: "Month End", Template: "Month End"},
		{Name: "Avg Maturity", Raw: "Average Maturity Years", Template: "Average Maturity Years"},
		{Name: "Mod Duration", Raw: "Modified Duration Years", Template: "Modified Duration Years"},
		{Name: "YTM", Raw: "YTM (%)", Template: "YTM (%)"},
		{Name: "Expense Ratio", Raw: "Direct Expense Ratio", Template: "Direct Expense Ratio"},
		{Name: "Latest Date", Raw: "Latest Date", Template: "Latest Date"},
		{Name: "NAV", Raw: "Latest NAV(Rs)", Template: "Latest NAV(Rs)"},
		{Name: "1 Day", Raw: "1 Day", Template: "1 Day"},
		{Name: "3 Day", Raw: "3 Day", Template: "3 Day"},
		{Name: "1 Week", Raw: "1 Week", Template: "1 Week"},
		{Name: "2 Week", Raw: "2 Week", Template: "2 Week"},
		{Name: "1 Month", Raw: "1 Month", Template: "1 Month"},
		{Name: "3 Months", Raw: "3 Months", Template: "3 Months"},
		{Name: "6 Months", Raw: "6 Months", Template: "6 Months"},
		{Name: "9 Months", Raw: "9 Months", Template: "9 Months"},
		{Name: "1 Year", Raw: "1 Year", Template: "1 Year"},
		{Name: "3 Years", Raw: "3 Years", Template: "3 Years"},
		{Name: "5 Years", Raw: "5 Years", Template: "5 Years"},
		{Name: "10 Years", Raw: "10 Years", Template: "10 Years"},
		{Name: "Since Inception", Raw: "SINCE INCEPTION", Template: "SINCE INCEPTION"},
		{Name: "Cash & Equi", Raw: "Cash & Equi", Template: "Cash & Equi"},
		{Name: "Others", Raw: "Others", Template: "Others"},
		{Name: "SOV", Raw: "SOV", Template: "SOV"},
		{Name: "AA", Raw: "AA", Template: "AA"},
		{Name: "AA-", Raw: "AA-", Template: "AA-"},
		{Name: "AA+", Raw: "AA+", Template: "AA+"},
		{Name: "AAA/A1+", Raw: "AAA/A1+", Template: "AAA/A1+"},
		{Name: "D", Raw: "D", Template: "D"},
		{Name: "Unrated", Raw: "Unrated", Template: "Unrated"},
		{Name: "Exit Load", Raw: "Exit Load", Template: "Exit Load"},
		{Name: "Remark", Raw: "Remark", Template: "Remark"},
		{Name: "Inception Date", Raw: "Inception Date", Template: "Inception Date"},
		{Name: "Fund Manager 1", Raw: "[Fund Manager 1]", Template: "[Fund Manager 1]"},
	}
}

// DefaultGroups lists the credit-rating split, which must come from a single
// month per scheme.
func DefaultGroups() []GroupConfig {
	return []GroupConfig{
		{
			Name:   "Credit Rating",
			Fields: []string{"Cash & Equi", "Others", "SOV", "AA", "AA-", "AA+", "AAA/A1+", "D", "Unrated"},
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	ignore := make([]string, len(DefaultIgnoreSheets))
	copy(ignore, DefaultIgnoreSheets)
	return &Config{
		Anchor:          DefaultAnchor,
		KeyField:        DefaultKeyField,
		DateField:       DefaultDateField,
		HeaderRowLimit:  DefaultHeaderRowLimit,
		ParentDepth:     0,
		IgnoreSheets:    ignore,
		BenchmarkMarker: DefaultBenchmarkMarker,
		BenchmarkPolicy: DefaultBenchmarkPolicy,
		Fields:          DefaultFields(),
		Groups:          DefaultGroups(),
	}
}
