package content

// Default returns the built-in dashboard content used when no content file is
// configured.
func Default() *Content {
	return &Content{
		Site: Site{
			Title:       "Adam Smith International Dashboard",
			Description: "Landing page for ASI OS, AI Hub, and support resources",
		},
		User: User{FirstName: "Jalpa"},
		Hero: Hero{
			ImageURL: "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?w=800&q=80&auto=format&fit=crop",
			ImageAlt: "Team working",
		},
		QuickLinks: []QuickLink{
			{ID: 1, Title: "Access ASI OS", Icon: "🚀", Href: "#"},
			{ID: 2, Title: "Submit Timelog", Icon: "⏱️", Href: "#"},
			{ID: 3, Title: "Submit Expense", Icon: "💸", Href: "#"},
			{ID: 4, Title: "See my Approvals", Icon: "✅", Href: "#"},
			{ID: 5, Title: "See my Tickets", Icon: "🎫", Href: "#"},
		},
		Alerts: []Alert{
			{ID: 1, Message: "🎉 Onboarding v2 is now live!"},
		},
		AIHub: []AIHubItem{
			{
				ID:   1,
				Name: "Chat with My Assistant",
				Description: BulletList("Real‑time AI chat for everyday work.",
					"SOPs for projects",
					"General questions",
					"Project AI Hub access",
				),
				Status:   "Live",
				Gradient: "from-indigo-500 to-sky-500",
			},
			{
				ID:          2,
				Name:        "AI‑Curated ASI Knowledge",
				Description: PlainText("Searchable knowledge base auto‑curated from ASI docs and data."),
				Status:      "Beta",
				Gradient:    "from-teal-500 to-emerald-500",
			},
			{
				ID:          3,
				Name:        "Prompt Library",
				Description: PlainText("Curated, shareable prompts for analysts."),
				Status:      "Stable",
				Gradient:    "from-fuchsia-500 to-pink-500",
			},
			{
				ID:          4,
				Name:        "Data‑Copilot",
				Description: PlainText("Conversational BI dashboards & SQL helper."),
				Status:      "Alpha",
				Gradient:    "from-purple-600 to-red-500",
			},
			{
				ID:   5,
				Name: "Tools",
				Description: BulletList("",
					"IR35 Check",
					"Merge PDFs",
					"Create Images",
					"Create Presentations",
				),
				Status:   "Bundle",
				Gradient: "from-orange-500 to-amber-500",
			},
		},
		Help: []HelpItem{
			{ID: 1, Title: "Contact Support", Icon: "💬"},
			{ID: 2, Title: "Submit an Issue", Icon: "📝"},
			{ID: 3, Title: "Browse Help Articles", Icon: "❓"},
		},
	}
}
