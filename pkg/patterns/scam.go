package patterns

// defaultScamBank returns the built-in scam detection bank. Keyword
// weights stack per match; context phrase lists reduce or cancel the
// accumulated score in the rule scanner.
func defaultScamBank() ScamBank {
	return ScamBank{
		Tiers: []KeywordTier{
			{
				Severity: SeverityHigh,
				Weight:   1.0,
				Keywords: []string{
					"guaranteed returns", "guaranteed profit", "guaranteed income",
					"assured returns", "assured profit",
					"double your money", "triple your money",
					"risk free profit", "risk free returns", "zero risk",
					"sure shot profit", "sure shot tips", "jackpot calls",
					"insider tip", "insider tips", "insider information",
					"leaked information", "never lose money",
					"fixed daily returns", "fixed monthly returns",
				},
			},
			{
				Severity: SeverityMedium,
				Weight:   0.6,
				Keywords: []string{
					"premium group", "vip group", "vip membership",
					"paid calls", "premium calls", "exclusive signals",
					"limited seats", "limited slots", "last chance",
					"act now", "hurry up", "dont miss",
					"get rich quick", "easy money", "quick money",
					"secret formula", "secret strategy", "foolproof",
				},
			},
			{
				Severity: SeverityLow,
				Weight:   0.3,
				Keywords: []string{
					"investment opportunity", "huge profit", "big returns",
					"earn from home", "work from home", "extra income",
					"passive income", "side income", "daily income",
					"financial freedom",
				},
			},
		},

		MoneyRequests: []string{
			"send money", "send to my upi", "send to my account",
			"transfer to my account", "deposit in our account",
			"pay registration fee", "pay joining fee", "pay the fee",
			"upi id", "gpay number", "paytm number", "phonepe number",
			"minimum investment of", "trade on your behalf",
		},

		UnrealisticReturns: mustCompileAll([]string{
			`(?i)\b\d{2,}\s*%\s*(returns?|profits?|gains?)\b`,
			`(?i)\b(double|triple|2x|3x|5x|10x)\s+(your\s+)?(money|capital|investment)\b`,
			`(?i)\b(earn|make)\s+(₹|rs\.?\s?|rupees\s)?\d[\d,]*\s*(lakh|lakhs|crore|crores|k)?\s*(per|a|every)\s*(day|daily|week|month)\b`,
			`(?i)\b(daily|weekly|monthly)\s+(profit|returns?|income)\s+(of\s+)?(₹|rs\.?\s?)?\d`,
		}),
		ExternalRedirects: mustCompileAll([]string{
			`(?i)\b(join|click|visit)\s+(my|our|this)\s+(telegram|whatsapp|discord|signal)\b`,
			`(?i)\bt\.me/\S+`,
			`(?i)\bwa\.me/\S+`,
			`(?i)\[url\].{0,20}\b(join|register|invest|signup)\b`,
		}),
		Solicitation: mustCompileAll([]string{
			`(?i)\bdm\s+(me|us)\s+(for|to)\b`,
			`(?i)\b(inbox|message|ping|whatsapp)\s+me\s+for\s+(tips|calls|signals|details)\b`,
			`(?i)\b(limited|few|only \d+)\s+(seats|slots|spots)\s+(left|available|remaining)\b`,
			`(?i)\bcontact\s+(me|us)\s+on\s+(whatsapp|telegram)\b`,
		}),
		MLM: mustCompileAll([]string{
			`(?i)\b(refer|invite|add)\s+\d+\s+(friends|people|members)\b`,
			`(?i)\b(earn|income)\s+(from|through|via)\s+(referrals?|your\s+downline)\b`,
			`(?i)\b(binary|matrix|level)\s+income\b`,
			`(?i)\bchain\s+(marketing|system|scheme)\b`,
			`(?i)\bnetwork\s+marketing\s+(opportunity|plan)\b`,
		}),

		// Operator whitelist; extend via seed files.
		Whitelist: []string{
			"psa:", "mod note", "pinned by moderators",
		},

		StrongContexts: []string{
			"never trust", "don't trust", "avoid", "beware",
			"scam alert", "fraud alert", "be careful", "stay away",
			"definitely a scam", "is a scam", "are scams",
			"classic scam", "classic ponzi", "ponzi scheme",
			"red flags", "red flag", "too good to be true",
			"fall for", "don't fall", "falling for", "fell for",
			"lost money to", "expensive lesson", "lesson learned",
			"scam warning", "fraud warning", "scammers say",
			"scammers promise", "scammers often", "fraudsters use",
			"how to identify", "how to spot", "warning signs",
			"sebi warns", "rbi warns", "rbi governor", "sebi circular",
			"report such", "report them", "report immediately",
			"arrested", "ed arrests", "convicted", "fraudster",
			"mastermind of", "investment fraud", "crore fraud",
			"this is not me", "impersonator", "impersonators",
			"we don't allow", "community guidelines", "moderators note",
			"rules are", "will result in ban", "not allowed",
			"we do not allow",
			"breaking news", "police arrested", "gang of", "seized",
			"headline says", "fact check", "hoax", "banned because",
			"received this message", "alert:",
			"yeah right", "in your dreams", "as if", "yeah sure",
			"lol", "lmao", "😂", "🙄", "💀",
			"who in their right mind", "seriously people",
			"just finished reading", "psychology of money",
			"wolf of wall street", "just watched", "documentary",
			"here's the truth", "the truth is",
			"not bragging", "counter the", "sharing to counter",
			"want to share so others", "know the difference",
		},
		MediumContexts: []string{
			"not financial advice", "nfa", "dyor",
			"do your own research", "consult advisor",
			"subject to market risk", "for educational",
			"no guaranteed returns", "there are no guaranteed",
			"past performance", "no guarantee",
			"such things don't exist", "doesn't exist in markets",
			"anyone promising otherwise",
			"let me share my experience", "sharing so others",
			"difference between", "legitimate vs", "vs scam",
			"mutual fund investments are subject to",
			"read all scheme related documents",
			"guaranteed market returns",
			"index fund case", "active fund case",
			"my take", "for large caps", "for small-mid caps",
			"comparing platforms", "demat account", "which bank-broker",
			"fund transfers", "fastest fund transfer",
			"looking for a mentor", "willing to pay", "structured learning",
			"not looking for guaranteed", "not looking for tips",
			"verified track record",
		},
		OpinionMarkers: []string{
			"i think", "in my opinion", "imo", "imho",
			"just my opinion", "remember that", "keep in mind",
		},
		QuestionIndicators: []string{
			"is it", "is this", "should i", "can i", "does anyone",
			"anyone know", "what do you think", "genuine or fake",
			"legit or", "worth it?", "how do i",
		},
		PastTenseIndicators: []string{
			"i was scammed", "got scammed", "happened to me",
			"lost my money", "last year", "years ago", "back then",
			"used to", "i fell",
		},
	}
}
