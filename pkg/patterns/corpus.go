package patterns

// defaultFuzzyBank returns the scam phrase corpus for fuzzy matching.
// The corpus deliberately includes common misspellings seen in the wild
// so near-miss obfuscations still land close to a canonical phrase.
func defaultFuzzyBank() FuzzyBank {
	return FuzzyBank{
		Phrases: []string{
			"guaranteed returns",
			"guaranteed profit",
			"guaranteed monthly returns",
			"double your money",
			"triple your money",
			"risk free profit",
			"risk free investment",
			"no risk investment",
			"sure shot profit",
			"fixed returns daily",
			"get rich quick",
			"easy money scheme",
			"secret formula",
			"insider tip only",
			"insider information",
			"leaked information",
			"foolproof system",
			"foolproof trading",
			"never lose money",
			"always make profit",
			"daily profit guaranteed",
			"hundred percent accurate",
			"hundred percent returns",
			"join my telegram",
			"join my whatsapp",
			"join my premium",
			"deposit in our account",
			"trade on your behalf",
			"send money to my upi",
			"send to my account",
			"pay registration fee",
			"pay joining fee",
			"double yor moni",
			"doubel your money",
			"garanteed returns",
			"guaranted returns",
			"gauranted profit",
			"insyder tips",
			"sekret tips",
			"premium telegraam",
			"premium telegram group",
			"zero risk profit",
			"lakhs daily",
			"earn lakhs",
			"make lakhs",
			"crores monthly",
			"laaast chaance",
			"opshuns traading groop",
			"registrashun closing",
		},
		HighSeverity: toSet([]string{
			"guaranteed returns", "guaranteed profit", "guaranteed monthly",
			"double your money", "triple your money", "risk free profit",
			"risk-free investment", "no risk investment", "sure shot profit",
			"fixed returns daily", "get rich quick", "easy money scheme",
			"insider information", "leaked information", "foolproof system",
			"100% accurate", "100% returns", "never lose money",
		}),
	}
}

// defaultScamTemplates returns the labeled sentence corpus for semantic
// matching. Grouped by scheme family; severity carries through to the
// verdict's high-severity signal count.
func defaultScamTemplates() []Template {
	return []Template{
		// Guaranteed returns
		{Text: "Join my group for guaranteed returns every month", Severity: SeverityHigh},
		{Text: "I guarantee you will make profit with my tips", Severity: SeverityHigh},
		{Text: "Get assured returns on your investment", Severity: SeverityHigh},
		{Text: "100 percent guaranteed profit in stock market", Severity: SeverityHigh},

		// Double money schemes
		{Text: "Double your money in just a few days", Severity: SeverityHigh},
		{Text: "Multiply your capital quickly with us", Severity: SeverityHigh},
		{Text: "Turn your investment into twice the amount", Severity: SeverityHigh},
		{Text: "Your money will grow 2x in short time", Severity: SeverityHigh},

		// Insider information
		{Text: "I have insider information about a stock", Severity: SeverityHigh},
		{Text: "Secret tip that will make you rich", Severity: SeverityHigh},
		{Text: "Confidential information from company insiders", Severity: SeverityHigh},
		{Text: "This stock will jump because of leaked news", Severity: SeverityHigh},

		// Risk-free claims
		{Text: "This is a completely risk-free investment", Severity: SeverityHigh},
		{Text: "Zero risk way to make money in stocks", Severity: SeverityHigh},
		{Text: "There is no chance of losing money here", Severity: SeverityHigh},
		{Text: "Safe investment with guaranteed profits", Severity: SeverityHigh},

		// Money requests
		{Text: "Send money to my account to join", Severity: SeverityHigh},
		{Text: "Pay the registration fee to my UPI", Severity: SeverityHigh},
		{Text: "Transfer funds to start making money", Severity: SeverityHigh},
		{Text: "Deposit amount in our trading pool", Severity: SeverityHigh},

		// Urgency / FOMO
		{Text: "Last chance to join our exclusive group", Severity: SeverityMedium},
		{Text: "Limited spots available act now", Severity: SeverityMedium},
		{Text: "This opportunity will not come again", Severity: SeverityMedium},
		{Text: "Hurry up before its too late", Severity: SeverityMedium},

		// Trading on behalf
		{Text: "We will trade on your behalf and give profits", Severity: SeverityHigh},
		{Text: "Just give us your capital we do the rest", Severity: SeverityHigh},
		{Text: "Let us handle your money for guaranteed returns", Severity: SeverityHigh},

		// Unrealistic daily returns
		{Text: "Make thousands of rupees every day from home", Severity: SeverityHigh},
		{Text: "Earn daily income through our trading system", Severity: SeverityMedium},
		{Text: "Get fixed daily returns on investment", Severity: SeverityHigh},

		// VIP / premium groups
		{Text: "Join our VIP telegram for premium stock tips", Severity: SeverityMedium},
		{Text: "Our premium members make lakhs every month", Severity: SeverityMedium},
		{Text: "Exclusive signals for VIP members only", Severity: SeverityMedium},
	}
}

// defaultAnalyzerBank returns the example banks used by the
// multi-dimensional content analyzer.
func defaultAnalyzerBank() AnalyzerBank {
	return AnalyzerBank{
		FinanceExamples: []string{
			"I compared expense ratios of index funds before choosing one for my SIP",
			"The quarterly results show revenue growth but shrinking operating margins",
			"Asset allocation between equity and debt depends on your risk appetite",
			"SEBI has tightened disclosure norms for registered investment advisors",
			"Compounding works best when you stay invested through market cycles",
			"The stock looks overvalued at this PE ratio compared to sector peers",
			"Fixed deposits give stable returns but rarely beat inflation long term",
			"A demat account is required before you can apply for an IPO",
			"Diversifying across market caps reduced the drawdown in my portfolio",
			"Term insurance plus mutual funds beats a ULIP on cost for most people",
			"Repo rate hikes usually cool credit growth and housing demand",
			"Reading the annual report helped me understand the company's moat",
			"Tax harvesting at year end can offset short term capital gains",
			"Stop losses saved my intraday account during the budget day swing",
			"NPS gives an extra tax deduction over the usual 80C limit",
		},
		NegativeExamples: []string{
			"The new superhero movie broke box office records this weekend",
			"Our team won the cricket match in the final over",
			"This recipe needs two cups of flour and a pinch of salt",
			"The wedding venue was decorated beautifully with flowers",
			"I cannot stop watching this web series, the plot is amazing",
			"The new phone's camera takes incredible night photos",
			"The concert tickets sold out within ten minutes",
			"My vacation in the mountains was exactly what I needed",
			"The game's new update completely changed the ranked meta",
			"Which celebrity wore it better at the awards show",
		},
		HighSubstance: []string{
			"because", "analysis", "compared to", "in my experience",
			"the reason", "fundamentals", "valuation", "risk profile",
			"allocation", "expense ratio", "data shows", "historically",
			"on the other hand", "trade-off", "for example",
		},
		LowSubstance: []string{
			"lol", "lmao", "to the moon", "rocket", "lambo", "yolo",
			"bro trust me", "just buy", "wow", "nice", "😂", "🚀",
		},
		Discourse: map[string][]string{
			"analysis": {
				"analysis", "i analyzed", "looking at the data",
				"comparing", "valuation", "my thesis", "breakdown of",
			},
			"education": {
				"how to", "guide", "explained", "for beginners",
				"what is", "learn", "step by step", "basics of",
			},
			"news": {
				"announced", "reported", "breaking", "according to",
				"results declared", "quarterly results", "circular issued",
			},
			"question": {
				"?", "should i", "is it worth", "what do you think",
				"any advice", "how do i", "confused about",
			},
			"gossip": {
				"did you hear", "rumor", "apparently", "i heard that",
				"drama", "expose", "spill the tea",
			},
		},
	}
}
