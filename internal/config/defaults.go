package config

// Built-in copy for the reference deployment. Real deployments override any
// of this from config.yaml; the placeholders are resolved by the composer.

func applyBrandDefaults(b *BrandConfig) {
	if b.BaseName == "" {
		b.BaseName = "Woodpecker Damage Repair"
	}
	if b.BrandName == "" {
		b.BrandName = "Woodpecker Damage Repair Company"
	}
	if b.CTAText == "" {
		b.CTAText = "Get Free Estimate"
	}
}

func applyContentDefaults(c *ContentConfig) {
	if c.HomeTitle == "" {
		c.HomeTitle = "Woodpecker Damage Repair/Woodpecker Hole Repair/Siding Repair Services"
	}
	if c.HomeShort == "" {
		c.HomeShort = "Woodpecker Damage Repair Services"
	}
	if c.HomeSubtitle == "" {
		c.HomeSubtitle = "Weather-tight siding and trim repairs that seal holes, match finishes, and reduce repeat damage."
	}
	if c.CostTitle == "" {
		c.CostTitle = "Woodpecker Damage Repair Cost"
	}
	if c.CostSubtitle == "" {
		c.CostSubtitle = "Typical pricing ranges, scope examples, and what drives the total for siding and trim repairs."
	}
	if c.HowToTitle == "" {
		c.HowToTitle = "How Woodpecker Damage Repair Works"
	}
	if c.HowToSubtitle == "" {
		c.HowToSubtitle = "A practical, homeowner-friendly guide to how repairs are typically done and when DIY breaks down."
	}
	if c.ContactTitle == "" {
		c.ContactTitle = "Get Your Free Estimate"
	}
	if c.ContactSubtitle == "" {
		c.ContactSubtitle = "Fill out the form below and we’ll connect you with a qualified local professional."
	}
	if c.ContactEmbed == "" {
		c.ContactEmbed = `<p class="muted">Embed your lead form here.</p>`
	}

	if len(c.Main) == 0 {
		c.Main = []Section{
			{
				Heading: "What Is Woodpecker Damage Repair?",
				Body:    "Woodpecker damage repair seals and restores holes in siding and trim so the exterior is weather-tight again.",
			},
			{
				Heading: "Why Are Woodpeckers Pecking My House?",
				Body:    "Woodpeckers peck to search for insects, create nesting cavities, or drum to mark territory.",
			},
			{
				Heading: "When to Hire a Professional for Woodpecker Damage Repair",
				Body:    "Hire a pro when damage is widespread, ladder work is required, or finish matching matters.",
			},
		}
	}

	if len(c.Cost) == 0 {
		c.Cost = []Section{
			{
				Heading: "Quick Answer",
				Body:    "Woodpecker damage repair typically costs {cost_lo} to {cost_hi}, depending on scope and finish work.",
			},
			{
				Heading: "What Affects Pricing?",
				Body:    "Big drivers are repair count, access height, substrate condition, and finish matching.",
			},
			{
				Heading: "Key Takeaways",
				Body:    "Scattered damage and repainting/blending usually push totals higher.",
			},
		}
	}

	if len(c.HowTo) == 0 {
		c.HowTo = []Section{
			{
				Heading: "Quick Answer",
				Body:    "Most repairs remove weak material, seal the opening, patch/replace sections, and restore the finish.",
			},
			{
				Heading: "How Repairs Are Typically Done",
				Body:    "Pros focus on moisture control and adhesion so the repair lasts.",
			},
			{
				Heading: "When DIY Often Fails",
				Body:    "DIY often fails when underlying wood is soft or the repair is not fully sealed.",
			},
		}
	}

	if c.LocationCostHeading == "" {
		c.LocationCostHeading = "How Much Does Woodpecker Damage Repair Cost in {City, State}?"
	}
	if c.LocationCostBody == "" {
		c.LocationCostBody = "In {City, State}, most projects range from {cost_lo} to {cost_hi}, depending on scope and access. " +
			"Prices vary with local labor rates and finish matching needs."
	}
}
