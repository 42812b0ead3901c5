package chat

var defaultRules = []Rule{
	{
		Name:     "pricing",
		Keywords: []string{"price", "prices", "pricing", "cost", "costs", "quote", "budget", "how much", "estimate"},
		Reply:    "Projects start at $2,000 for digital marketing and $5,000 for web development. Try the pricing calculator for an instant estimate based on complexity, timeline and team size.",
	},
	{
		Name:     "booking",
		Keywords: []string{"book", "booking", "call", "meeting", "schedule", "consultation", "contact", "talk"},
		Reply:    "You can book a free 30-minute consultation from the Contact page. Pick any slot that suits you and we'll send a calendar invite.",
	},
	{
		Name:     "ai-services",
		Keywords: []string{"ai", "chatbot", "concierge", "assistant", "automation", "voice", "gpt", "llm"},
		Reply:    "We build AI Concierges, AI Business Assistants and custom AI integrations that plug into your existing tools, from voice agents to workflow automation.",
	},
	{
		Name:     "web-development",
		Keywords: []string{"website", "web", "site", "landing page", "ecommerce", "app", "pwa"},
		Reply:    "Our web team designs and builds fast, SEO-friendly websites, landing pages and progressive web apps tailored to your brand.",
	},
	{
		Name:     "digital-marketing",
		Keywords: []string{"marketing", "seo", "ads", "social media", "campaign", "leads"},
		Reply:    "Our digital marketing service covers SEO, paid ads, social media and lead-generation campaigns, with monthly reporting.",
	},
	{
		Name:     "case-studies",
		Keywords: []string{"case study", "case studies", "portfolio", "examples", "clients", "results"},
		Reply:    "Take a look at our Case Studies page to see how we've helped restaurants, clinics and retailers grow with AI and web solutions.",
	},
	// Last, so a greeting followed by a question gets the specific answer.
	{
		Name:     "greeting",
		Keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon"},
		Reply:    "Hi there! I'm the Social Dots assistant. Ask me about our AI, web or marketing services, pricing, or booking a call.",
	},
}

// DefaultResponder answers the chat bubble's common questions.
func DefaultResponder() *Responder {
	return NewResponder(defaultRules, "")
}
