package data

import "github.com/Rkreels/powerbi-sub001/internal/domain"

// Names of the built-in sample datasets.
const (
	SampleSales     = "Sales Data"
	SampleCustomers = "Customer Data"
	SampleFinancial = "Financial Data"
)

// sampleDataset is one hardcoded table used for chart previews.
// It is unrelated to the user-registered Dataset entities.
type sampleDataset struct {
	name   string
	fields []string
	rows   []domain.Row
}

// numeric reports whether field holds numbers in every row.
func (d sampleDataset) numeric(field string) bool {
	if len(d.rows) == 0 {
		return false
	}
	for _, row := range d.rows {
		if _, ok := row[field].(float64); !ok {
			return false
		}
	}
	return true
}

func sampleCorpus() []sampleDataset {
	return []sampleDataset{
		{
			name:   SampleSales,
			fields: []string{"month", "category", "region", "sales", "profit", "units"},
			rows: []domain.Row{
				salesRow("Jan", "Electronics", "North", 4000, 2400, 120),
				salesRow("Feb", "Clothing", "South", 3000, 1398, 210),
				salesRow("Mar", "Electronics", "East", 2000, 980, 65),
				salesRow("Apr", "Food", "West", 2780, 390, 340),
				salesRow("May", "Clothing", "North", 1890, 480, 150),
				salesRow("Jun", "Electronics", "South", 2390, 380, 80),
				salesRow("Jul", "Food", "North", 3490, 430, 410),
				salesRow("Aug", "Electronics", "West", 4200, 2100, 130),
				salesRow("Sep", "Clothing", "East", 3100, 1200, 190),
				salesRow("Oct", "Food", "South", 2600, 700, 300),
				salesRow("Nov", "Electronics", "North", 5100, 2900, 160),
				salesRow("Dec", "Clothing", "West", 4800, 2200, 260),
			},
		},
		{
			name:   SampleCustomers,
			fields: []string{"customer", "segment", "category", "region", "revenue", "orders"},
			rows: []domain.Row{
				customerRow("Acme Corp", "Enterprise", "Electronics", "North", 125000, 48),
				customerRow("Globex", "Enterprise", "Food", "East", 98000, 35),
				customerRow("Initech", "SMB", "Electronics", "South", 45000, 22),
				customerRow("Umbrella", "Enterprise", "Clothing", "West", 87000, 31),
				customerRow("Stark Industries", "Enterprise", "Electronics", "North", 152000, 57),
				customerRow("Wayne Retail", "SMB", "Clothing", "East", 39000, 19),
				customerRow("Hooli", "Startup", "Electronics", "West", 28000, 12),
				customerRow("Soylent", "SMB", "Food", "South", 51000, 26),
			},
		},
		{
			name:   SampleFinancial,
			fields: []string{"quarter", "category", "region", "revenue", "expenses", "profit"},
			rows: []domain.Row{
				financialRow("Q1", "Electronics", "North", 250000, 180000),
				financialRow("Q1", "Clothing", "South", 140000, 110000),
				financialRow("Q2", "Electronics", "East", 270000, 190000),
				financialRow("Q2", "Food", "West", 120000, 95000),
				financialRow("Q3", "Electronics", "North", 310000, 205000),
				financialRow("Q3", "Clothing", "East", 160000, 118000),
				financialRow("Q4", "Food", "South", 135000, 99000),
				financialRow("Q4", "Electronics", "West", 340000, 220000),
			},
		},
	}
}

func salesRow(month, category, region string, sales, profit, units float64) domain.Row {
	return domain.Row{
		"month": month, "category": category, "region": region,
		"sales": sales, "profit": profit, "units": units,
	}
}

func customerRow(customer, segment, category, region string, revenue, orders float64) domain.Row {
	return domain.Row{
		"customer": customer, "segment": segment, "category": category, "region": region,
		"revenue": revenue, "orders": orders,
	}
}

func financialRow(quarter, category, region string, revenue, expenses float64) domain.Row {
	return domain.Row{
		"quarter": quarter, "category": category, "region": region,
		"revenue": revenue, "expenses": expenses, "profit": revenue - expenses,
	}
}
