// Package tags classifies candidate work descriptions into domain and
// method categories, and extracts seniority from role titles.
package tags

import "strings"

// Category pairs a label with the keywords that select it. Categories are
// kept in slices rather than maps because evaluation order is part of the
// matching contract for seniority levels, and deterministic output matters
// for reports.
type Category struct {
	Label    string
	Keywords []string
}

// DomainTags describe the area or industry the work sits in.
var DomainTags = []Category{
	{"Pricing/Revenue", []string{
		"pricing", "revenue", "monetization", "dynamic pricing", "price optimization",
		"price", "tariff", "surge", "fee",
	}},
	{"Marketing/Ads", []string{
		"marketing", "ads", "advertising", "content", "attribution", "growth",
		"acquisition", "campaign", "creative",
	}},
	{"Platform/Marketplace", []string{
		"platform", "marketplace", "multi-sided", "matching", "network effects",
		"two-sided", "market design", "mechanism", "ride-hailing", "uber eats",
	}},
	{"Prime/Subscription", []string{
		"prime", "subscription", "membership",
	}},
	{"Crypto/Fintech", []string{
		"crypto", "cryptocurrency", "bitcoin", "stablecoin", "blockchain",
		"fintech", "payment", "defi", "token", "tokenized",
	}},
	{"Macro", []string{
		"macro", "macroeconomic", "economic outlook", "gdp", "inflation", "central bank",
	}},
	{"People/HR Analytics", []string{
		"people analytics", "workforce", "employee", "hr analytics",
		"organizational", "talent", "hiring", "labor economics", "personnel",
	}},
	{"Supply Chain/Logistics", []string{
		"supply chain", "logistics", "inventory", "operations", "fulfillment",
		"delivery", "fleet", "dispatch", "routing", "sourcing",
	}},
	{"Risk/Credit", []string{
		"risk", "credit", "fraud", "underwriting", "default", "lending",
		"insurance", "claims",
	}},
	{"Search/Ranking", []string{
		"search ranking", "feed ranking", "relevance", "discovery", "retrieval",
		"personalization", "recommendations", "reels", "news feed",
	}},
	{"Policy/Regulation", []string{
		"policy", "regulation", "antitrust", "compliance", "government",
		"regulatory", "public policy", "public finance",
	}},
	{"Product", []string{
		"product optimization", "user research", "engagement", "conversion", "funnel",
		"product", "brands",
	}},
	{"Sales/Revenue", []string{
		"sales", "revenue", "business strategies", "business strategy",
	}},
}

// MethodTags describe the techniques the work uses.
var MethodTags = []Category{
	{"Causal Inference", []string{
		"causal", "experimentation", "a/b test", "ab test", "rct",
		"treatment effect", "experiment", "randomized", "counterfactual",
	}},
	{"Forecasting", []string{
		"forecast", "prediction", "time series", "projections", "predictive", "nowcast",
	}},
	{"Machine Learning", []string{
		"machine learning", "ml", "gradient boosted", "random forest",
		"reinforcement learning", "bandit",
	}},
	{"Deep Learning", []string{
		"deep learning", "neural", "dnn", "cnn", "rnn",
	}},
	{"LLMs/GenAI", []string{
		"llm", "llms", "transformer", "generative ai", "gpt", "large language model",
	}},
	{"Econometrics", []string{
		"econometric", "econometrics", "regression", "empirical",
		"statistical", "panel data",
	}},
	{"Optimization", []string{
		"optimization", "algorithms", "modeling", "simulation",
	}},
	{"Data Science", []string{
		"data science", "analytics", "metrics", "kpi", "quantitative", "quant",
	}},
	{"Game Theory", []string{
		"game theory", "mechanism design", "auction", "contract design",
		"incentive", "strategic",
	}},
	{"Structural Modeling", []string{
		"structural", "structural model", "structural estimation",
	}},
	{"Measurement", []string{
		"measurement", "incrementality", "attribution",
	}},
}

// WorkTags is domain and method tables combined, for callers that tag
// against both axes at once.
var WorkTags = append(append([]Category{}, DomainTags...), MethodTags...)

// OtherLabel is assigned when no category matches.
const OtherLabel = "Other"

// MatchedLabels returns every category whose keywords appear in text,
// in table order.
func MatchedLabels(text string, cats []Category) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var matched []string
	for _, c := range cats {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, c.Label)
				break
			}
		}
	}
	return matched
}

// CategorizeFractional matches text against cats and splits unit weight
// evenly across every matching category. A text matching three categories
// yields 1/3 each. No match yields {Other: 1}.
func CategorizeFractional(text string, cats []Category) map[string]float64 {
	matched := MatchedLabels(text, cats)
	if len(matched) == 0 {
		return map[string]float64{OtherLabel: 1.0}
	}
	w := 1.0 / float64(len(matched))
	out := make(map[string]float64, len(matched))
	for _, label := range matched {
		out[label] = w
	}
	return out
}

// AggregateFractional sums per-candidate allocations into total fractional
// counts per category.
func AggregateFractional(allocations []map[string]float64) map[string]float64 {
	totals := make(map[string]float64)
	for _, alloc := range allocations {
		for label, w := range alloc {
			totals[label] += w
		}
	}
	return totals
}
