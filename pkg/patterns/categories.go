package patterns

import "strings"

// =============================================================================
// FINANCE VOCABULARY BY CATEGORY
// Category membership drives strong-signal detection: a hit from a strong
// category makes content finance-related on its own.
// =============================================================================

var financeCategories = map[string][]string{
	"investing": {
		"invest", "investment", "investing", "investor", "portfolio",
		"diversification", "asset allocation", "compounding", "sip",
		"lumpsum", "equity", "debt fund", "returns", "capital",
		"wealth", "dividend", "long term investing",
	},
	"stock_market": {
		"stock", "stocks", "share market", "shares", "nifty", "sensex",
		"nse", "bse", "ipo", "listing", "bluechip", "midcap",
		"smallcap", "largecap", "index", "market cap", "bull market",
		"bear market", "correction", "rally",
	},
	"mutual_funds": {
		"mutual fund", "mutual funds", "nav", "elss", "index fund",
		"expense ratio", "amc", "folio", "exit load", "direct plan",
		"regular plan", "nfo", "etf",
	},
	"trading": {
		"trading", "trader", "intraday", "options", "futures",
		"derivatives", "stop loss", "breakout", "swing trading",
		"scalping", "margin", "leverage", "short selling", "call option",
		"put option", "strike price", "expiry",
	},
	"technical": {
		"candlestick", "resistance", "moving average", "rsi", "macd",
		"bollinger", "fibonacci", "volume", "chart pattern", "trendline",
		"supertrend", "vwap",
	},
	"fundamental_analysis": {
		"valuation", "balance sheet", "cash flow", "revenue", "earnings",
		"quarterly results", "annual report", "promoter holding",
		"book value", "intrinsic value", "margin of safety", "moat",
	},
	"metrics": {
		"pe ratio", "pb ratio", "roe", "roce", "eps", "ebitda",
		"debt to equity", "dividend yield", "cagr", "xirr", "alpha",
		"beta", "sharpe ratio",
	},
	"banking": {
		"bank", "banking", "fixed deposit", "fd", "recurring deposit",
		"savings account", "interest rate", "loan", "emi", "credit card",
		"credit score", "cibil", "neft", "imps", "net banking",
	},
	"regulators": {
		"sebi", "rbi", "irdai", "pfrda", "amfi", "nsdl", "cdsl",
		"registrar", "kyc", "regulation", "compliance", "circular",
	},
	"brands": {
		"zerodha", "groww", "upstox", "angel one", "icici direct",
		"hdfc securities", "kotak securities", "paytm money",
		"hdfc", "icici", "sbi", "axis bank", "kotak", "reliance",
		"tcs", "infosys", "vanguard", "blackrock",
	},
	"career": {
		"chartered accountant", "cfa", "financial advisor",
		"financial planner", "wealth manager", "fund manager",
		"research analyst", "equity research", "actuary",
	},
	"safety": {
		"fraud", "scam", "ponzi", "pyramid scheme", "insider trading",
		"pump and dump", "phishing", "money laundering",
		"unregistered advisor", "grievance", "investor protection",
	},
	"economy": {
		"inflation", "gdp", "recession", "repo rate", "fiscal deficit",
		"monetary policy", "budget session", "taxation", "income tax",
		"capital gains", "gst",
	},
	"insurance_retirement": {
		"insurance", "term insurance", "health insurance", "ulip",
		"pension", "nps", "ppf", "epf", "gratuity", "annuity",
		"retirement corpus",
	},
	"crypto": {
		"bitcoin", "ethereum", "cryptocurrency", "crypto", "blockchain",
		"stablecoin", "exchange wallet", "cold wallet",
	},
}

// strongCategories list the categories whose terms signal finance
// content on their own, ambiguous terms excepted.
var strongCategories = map[string]struct{}{
	"brands":               {},
	"career":               {},
	"technical":            {},
	"regulators":           {},
	"safety":               {},
	"metrics":              {},
	"fundamental_analysis": {},
	"stock_market":         {},
	"investing":            {},
}

// highPriorityTerms each add a fixed relevance boost when present.
var highPriorityTerms = []string{
	"sebi", "rbi", "nifty", "sensex", "demat", "sip", "ipo",
	"nse", "bse", "mutual fund", "etf", "elss",
}

// ambiguousTerms are common in general English and never count as a
// strong finance signal by themselves ("budget hotel", "risk of rain").
var ambiguousTerms = []string{
	"budget", "loss", "support", "target", "profit", "risk",
	"offering", "bond", "security", "selling", "sell", "buy",
	"buying", "paid", "premium", "rs", "rupees", "inr", "cost",
	"price",
}

// negativeTopics pull the relevance score down; they mark content that
// drifts into entertainment, gaming, sports and similar territory.
var negativeTopics = []string{
	"movie", "bollywood", "hollywood", "actor", "actress", "celebrity",
	"cricket", "ipl match", "football", "gaming", "playstation",
	"xbox", "fortnite", "pubg", "recipe", "cooking", "wedding",
	"honeymoon", "vacation", "iphone", "android phone", "instagram reel",
	"tiktok", "netflix", "web series", "song", "album", "concert",
	"election rally", "memes",
}

// defaultVocabBank assembles the vocabulary sets from the category
// tables above.
func defaultVocabBank() VocabBank {
	v := VocabBank{
		Terms:        make(map[string]struct{}, 256),
		Strong:       make(map[string]struct{}, 128),
		HighPriority: toSet(highPriorityTerms),
		Ambiguous:    toSet(ambiguousTerms),
		Negative:     toSet(negativeTopics),
	}

	for category, terms := range financeCategories {
		_, strong := strongCategories[category]
		for _, t := range terms {
			lt := strings.ToLower(t)
			v.Terms[lt] = struct{}{}
			if strong {
				if _, ambiguous := v.Ambiguous[lt]; !ambiguous {
					v.Strong[lt] = struct{}{}
				}
			}
		}
	}
	return v
}
