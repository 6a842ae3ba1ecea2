package patterns

// defaultToxicBank returns the built-in toxicity term bank. Category
// order matters: the scanner takes the first match per category and the
// weights are fixed per category, not per term.
func defaultToxicBank() ToxicBank {
	return ToxicBank{
		Categories: []ToxicCategory{
			{
				Name:   "severe_profanity",
				Weight: 0.6,
				Terms: []string{
					"fuck you", "fuck off", "motherfucker", "fucking idiot",
					"piece of shit", "son of a bitch", "bastard", "asshole",
					"chutiya", "bhenchod", "madarchod", "bhosdike",
				},
			},
			{
				Name:   "mild_profanity",
				Weight: 0.3,
				Terms: []string{
					"damn", "crap", "stupid", "idiot", "dumb", "moron",
					"shut up", "wtf", "bullshit", "nonsense", "jerk",
				},
			},
			{
				Name:   "personal_attack",
				Weight: 0.5,
				Terms: []string{
					"you are a fraud", "you are a liar", "you are pathetic",
					"you people are fools", "absolute idiot", "total loser",
					"you know nothing", "brainless", "illiterate fool",
				},
			},
			{
				Name:   "threat",
				Weight: 0.6,
				Terms: []string{
					"i will kill", "i will find you", "i will hurt",
					"watch your back", "you will regret", "i know where you live",
					"i will destroy you", "wait and see what i do",
				},
			},
			{
				Name:   "harassment",
				Weight: 0.6,
				Terms: []string{
					"kill yourself", "nobody likes you", "get lost loser",
					"stop posting forever", "delete your account",
					"everyone hates you", "go cry somewhere",
				},
			},
			{
				Name:   "mockery",
				Weight: 0.4,
				Terms: []string{
					"what a clown", "bunch of losers", "laughing at you",
					"cry more", "skill issue", "get rekt", "🤡",
				},
			},
			{
				Name:   "doxxing",
				Weight: 0.7,
				Terms: []string{
					"his home address is", "her home address is",
					"phone number is", "lives at", "works at this office",
					"leak your address", "posting his details",
				},
			},
		},

		// Matched only when a PERSON/ORG/GPE entity is present, with
		// negation suppression ("X is not a fraud" does not count).
		Defamation: []string{
			"is a fraud", "is a scammer", "is a cheat", "is a liar",
			"is a thief", "is a criminal", "ran away with money",
			"cheated investors", "duped people", "looted everyone",
			"are frauds", "are scammers",
		},

		HateSpeech: mustCompileAll([]string{
			`(?i)\bgo back to your (country|village)\b`,
			`(?i)\ball \w+ (people )?(are|is) (criminals|terrorists|thieves|scammers)\b`,
			`(?i)\byour (kind|community|caste|religion) (is|are) (the problem|ruining)\b`,
			`(?i)\b(subhuman|vermin|cockroach(es)?)\b.{0,30}\b(people|community|they)\b`,
		}),

		SpamIndicators: []string{
			"click here", "limited offer", "buy now", "subscribe now",
			"link in bio", "check my profile", "follow for more",
			"free free free", "100% free", "offer expires",
		},

		WhitelistContexts: []string{
			"reporting this message", "quoting the scammer",
			"he said to me", "she said to me", "they messaged me saying",
			"screenshot of the message", "this is what the scammer sent",
		},
	}
}
