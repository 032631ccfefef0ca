package generate

import "google.golang.org/genai"

// reportSchema constrains the model's reply to the payload accepted by
// finstmt.DecodeGenerated.
var reportSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"companyName": {
			Type:        genai.TypeString,
			Description: "Registered company name.",
		},
		"abn": {
			Type:        genai.TypeString,
			Description: "Australian Business Number, space separated, omitted when unknown.",
		},
		"incomeStatement": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"revenue":   itemListSchema("Revenue line items."),
				"expenses":  itemListSchema("Expense line items."),
				"netProfit": itemSchema("Net profit line: total revenue less total expenses."),
			},
			Required: []string{"revenue", "expenses", "netProfit"},
		},
		"balanceSheet": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"assets":      itemListSchema("Asset line items."),
				"liabilities": itemListSchema("Liability line items."),
				"equity":      itemListSchema("Equity line items."),
			},
			Required: []string{"assets", "liabilities", "equity"},
		},
		"notesToFinancialStatements": {
			Type:        genai.TypeString,
			Description: "Notes in the markdown subset described in the instructions.",
		},
	},
	Required: []string{"companyName", "incomeStatement", "balanceSheet", "notesToFinancialStatements"},
}

func itemListSchema(desc string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: desc,
		Items:       itemSchema("One line item."),
	}
}

func itemSchema(desc string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: desc,
		Properties: map[string]*genai.Schema{
			"item": {
				Type:        genai.TypeString,
				Description: "Line item label.",
			},
			"amount2025": {
				Type:        genai.TypeNumber,
				Description: "Amount for the 2025 year in whole dollars.",
			},
			"amount2024": {
				Type:        genai.TypeNumber,
				Description: "Amount for the 2024 comparative year in whole dollars.",
			},
			"noteRef": {
				Type:        genai.TypeInteger,
				Description: "Number of the note this line refers to, omitted when none.",
			},
		},
		Required: []string{"item", "amount2025", "amount2024"},
	}
}
