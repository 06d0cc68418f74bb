package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"github.com/etnz/sharpeful/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Desk computes the dashboard of the current portfolio over a period.
type Desk func(ctx context.Context, p date.Period) (*sharpeful.Dashboard, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand the performance and the risk of their portfolio,
			and how it compares to the market.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded by Google Search on market news.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of all the financial products and institutions,
		about the latest news about the different funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a expert in Trading, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert that reads the portfolio dashboard through desk.
func NewAnalyst(desk Desk) *Expert {
	lib := Tools(desk)
	return &Expert{
		Name: "Analyst",
		Description: `This is the portfolio Analyst. It knows the user's holdings, their valuation,
		the sector allocation, the transactions and the risk and return metrics
		(return, volatility, Sharpe, Sortino, beta, alpha, max drawdown) over any period,
		compared to the SPY, QQQ and DIA benchmarks.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the analyst of the user's portfolio.
				You are part of a team of experts, yours is everything about the user's portfolio. They might ask
				you questions about the user's portfolio, pardon their approximative language and figure out what they meant.

				Use the available tools to get the figures, never make them up. Volatility, alpha and drawdown
				are fractions, returns are percents.
				A price shown as "` + renderer.Placeholder + `" is unknown, not zero.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

var periodSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The period to analyse: " + periodList() + ". Default is 1Y.",
	Enum:        periodNames(),
}

func periodNames() []string {
	names := make([]string, 0, len(date.Periods))
	for _, p := range date.Periods {
		names = append(names, p.String())
	}
	return names
}

func periodList() string { return strings.Join(periodNames(), ", ") }

func parsePeriod(args map[string]any) (date.Period, error) {
	v, ok := args["period"]
	if !ok {
		return date.OneYear, nil
	}
	s, ok := v.(string)
	if !ok {
		return date.OneYear, fmt.Errorf("argument 'period' is not a string as expected but %T", v)
	}
	return date.ParsePeriod(s)
}

// report is a tool rendering a markdown report of the dashboard over a period.
func report(name, description string, desk Desk, render func(*sharpeful.Dashboard, map[string]any) string, extra map[string]*genai.Schema) *Func {
	properties := map[string]*genai.Schema{"period": periodSchema}
	for k, v := range extra {
		properties[k] = v
	}
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: properties},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			p, err := parsePeriod(args)
			if err != nil {
				return failure(id, name, err)
			}
			d, err := desk(ctx, p)
			if err != nil {
				return failure(id, name, fmt.Errorf("cannot compute the dashboard: %w", err))
			}
			return output(id, name, render(d, args))
		},
	}
}

// Tools returns the functions reading the portfolio.
func Tools(desk Desk) []Function {
	return []Function{
		report("Holdings", "Holdings lists the held positions with shares, cost basis, latest price, value and gain, the top holdings and the best performers.",
			desk, func(d *sharpeful.Dashboard, _ map[string]any) string { return renderer.HoldingsMarkdown(d) }, nil),
		report("Performance", "Performance computes the change, return, volatility, Sharpe and Sortino ratios, beta, alpha and max drawdown over the period, and the benchmarks returns.",
			desk, func(d *sharpeful.Dashboard, _ map[string]any) string { return renderer.PerformanceMarkdown(d) }, nil),
		report("Allocation", "Allocation breaks the portfolio value down by sector.",
			desk, func(d *sharpeful.Dashboard, _ map[string]any) string { return renderer.AllocationMarkdown(d) }, nil),
		report("History", "History lists the daily value of the portfolio over the period.",
			desk, func(d *sharpeful.Dashboard, _ map[string]any) string { return renderer.HistoryMarkdown(d) }, nil),
		report("Ranges", "Ranges shows where the latest price of every symbol stands within its 52-week low and high.",
			desk, func(d *sharpeful.Dashboard, _ map[string]any) string { return renderer.RangeMarkdown(d) }, nil),
		report("Transactions", "Transactions lists the most recent transactions, with their resolved price.",
			desk, func(d *sharpeful.Dashboard, args map[string]any) string {
				n := renderer.RecentCount
				// numbers are decoded from JSON
				if v, ok := args["limit"].(float64); ok {
					n = int(v)
				}
				return renderer.TransactionsMarkdown(d, n)
			}, map[string]*genai.Schema{
				"limit": {Type: genai.TypeInteger, Description: "The number of transactions to list, -1 for all. Default is 20."},
			}),
	}
}
