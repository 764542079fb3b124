package scenario

import (
	"fmt"
	"strings"
)

// fallbackEntry is one step of a topic family's deterministic journey. The
// description is a format string taking the topic label.
type fallbackEntry struct {
	aspect      string
	description string
	optionA     Option
	optionB     Option
}

// FallbackScenario returns the deterministic scenario for a topic at the
// given step. The topic is matched by keyword to a family table of five
// entries, one per step; steps beyond five repeat the last entry.
func FallbackScenario(topic string, step int) Scenario {
	if step < 1 {
		step = 1
	}
	if step > len(fleetEntries) {
		step = len(fleetEntries)
	}
	entry := fallbackFamily(topic)[step-1]
	return Scenario{
		Description:   fmt.Sprintf(entry.description, topic),
		OptionA:       entry.optionA,
		OptionB:       entry.optionB,
		SubModuleName: entry.aspect,
	}
}

func fallbackFamily(topic string) []fallbackEntry {
	lower := strings.ToLower(topic)
	switch {
	case strings.Contains(lower, "fleet"), strings.Contains(lower, "vehicle"):
		return fleetEntries
	case strings.Contains(lower, "staff"), strings.Contains(lower, "employee"):
		return staffEntries
	case strings.Contains(lower, "market"):
		return marketEntries
	default:
		return genericEntries
	}
}

var fleetEntries = []fallbackEntry{
	{
		aspect:      "Route Optimization",
		description: "Your franchise's delivery routes have grown organically and now overlap, driving up mileage costs as part of %s.",
		optionA: Option{
			Title:       "Adopt Routing Software",
			Description: "Invest in route planning software that recalculates daily routes from live order data.",
		},
		optionB: Option{
			Title:       "Manual Route Review",
			Description: "Have dispatchers redraw the route map quarterly using delivery logs, avoiding new spend.",
		},
	},
	{
		aspect:      "Maintenance Planning",
		description: "Several vehicles have broken down mid-shift recently, and %s now hinges on how maintenance is scheduled.",
		optionA: Option{
			Title:       "Preventive Maintenance Contract",
			Description: "Sign a fixed-fee preventive maintenance contract with a regional garage covering the whole fleet.",
		},
		optionB: Option{
			Title:       "Repair On Failure",
			Description: "Keep repairing vehicles as they fail and hold a small cash reserve for emergencies.",
		},
	},
	{
		aspect:      "Vehicle Acquisition",
		description: "Demand has outgrown the current fleet, and %s requires deciding how to add capacity.",
		optionA: Option{
			Title:       "Purchase New Vans",
			Description: "Buy two new vans outright to secure capacity and avoid ongoing lease payments.",
		},
		optionB: Option{
			Title:       "Lease Additional Vehicles",
			Description: "Lease vehicles on short terms so capacity can shrink again if demand softens.",
		},
	},
	{
		aspect:      "Driver Training",
		description: "Insurance premiums and minor accident rates are climbing, making driver skills the focus of %s this quarter.",
		optionA: Option{
			Title:       "Certified Training Program",
			Description: "Enroll all drivers in a certified defensive driving program with paid training days.",
		},
		optionB: Option{
			Title:       "In-House Coaching",
			Description: "Pair newer drivers with experienced ones for ride-along coaching during normal shifts.",
		},
	},
	{
		aspect:      "Fuel Management",
		description: "Fuel has become the largest variable cost in %s and leadership wants it under control.",
		optionA: Option{
			Title:       "Fleet Fuel Cards",
			Description: "Issue fleet fuel cards with negotiated discounts and per-vehicle consumption reporting.",
		},
		optionB: Option{
			Title:       "Driver Efficiency Targets",
			Description: "Set per-route fuel targets and share a portion of the savings with drivers who hit them.",
		},
	},
}

var staffEntries = []fallbackEntry{
	{
		aspect:      "Hiring Pipeline",
		description: "Two team members have left and applications have slowed, putting %s under immediate pressure.",
		optionA: Option{
			Title:       "Professional Recruiting Push",
			Description: "Invest in a recruiting agency and referral bonuses to fill the openings quickly.",
		},
		optionB: Option{
			Title:       "Gradual Local Hiring",
			Description: "Post openings locally and spread hiring over the next two months to control costs.",
		},
	},
	{
		aspect:      "Training Program",
		description: "New hires are taking too long to reach full productivity, so %s now depends on how they are trained.",
		optionA: Option{
			Title:       "Structured Onboarding Program",
			Description: "Build a full onboarding curriculum with paid training weeks and written playbooks.",
		},
		optionB: Option{
			Title:       "Shadowing On The Job",
			Description: "Have new hires shadow senior staff and learn in the flow of normal service.",
		},
	},
	{
		aspect:      "Shift Scheduling",
		description: "Staff complain about unpredictable shifts while peak hours run short-handed, a core tension in %s.",
		optionA: Option{
			Title:       "Scheduling Software Rollout",
			Description: "Purchase scheduling software that forecasts demand and publishes rotas two weeks ahead.",
		},
		optionB: Option{
			Title:       "Fixed Rota Agreement",
			Description: "Agree fixed weekly rotas with staff, trading flexibility for predictability at no cost.",
		},
	},
	{
		aspect:      "Retention and Culture",
		description: "Turnover is eroding service quality, and %s must address why people leave.",
		optionA: Option{
			Title:       "Benefits and Pay Review",
			Description: "Raise pay toward the top of the local market and add benefits to keep experienced staff.",
		},
		optionB: Option{
			Title:       "Culture and Recognition",
			Description: "Introduce recognition routines and clearer progression paths without changing pay scales.",
		},
	},
	{
		aspect:      "Performance Management",
		description: "Strong and weak performers are currently treated alike, which %s can no longer afford.",
		optionA: Option{
			Title:       "Formal Review Cycle",
			Description: "Implement quarterly reviews with documented goals and performance-linked bonuses.",
		},
		optionB: Option{
			Title:       "Lightweight Check-Ins",
			Description: "Hold informal monthly one-on-ones focused on coaching rather than scoring.",
		},
	},
}

var marketEntries = []fallbackEntry{
	{
		aspect:      "Local Advertising",
		description: "Foot traffic from the immediate neighbourhood is flat, so %s starts with local visibility.",
		optionA: Option{
			Title:       "Aggressive Local Campaign",
			Description: "Buy out-of-home and local radio placements for a saturation campaign this quarter.",
		},
		optionB: Option{
			Title:       "Community Sponsorships",
			Description: "Sponsor local teams and events for steady, low-cost neighbourhood presence.",
		},
	},
	{
		aspect:      "Digital Presence",
		description: "Competitors outrank the franchise in local search results, making the online side of %s urgent.",
		optionA: Option{
			Title:       "Full Digital Overhaul",
			Description: "Invest in a rebuilt website, search optimization, and managed social media accounts.",
		},
		optionB: Option{
			Title:       "Listings and Reviews Focus",
			Description: "Clean up map listings and systematically ask satisfied customers for reviews.",
		},
	},
	{
		aspect:      "Promotions",
		description: "Sales dip sharply on weekdays, and %s needs a promotion strategy to smooth demand.",
		optionA: Option{
			Title:       "Deep Discount Weekdays",
			Description: "Run aggressive weekday discounts to build the habit, accepting thinner margins.",
		},
		optionB: Option{
			Title:       "Loyalty Program Launch",
			Description: "Launch a points-based loyalty program that rewards repeat visits at a modest cost.",
		},
	},
	{
		aspect:      "Partnerships",
		description: "Nearby businesses share the franchise's customer base, an untapped channel in %s.",
		optionA: Option{
			Title:       "Paid Cross-Promotions",
			Description: "Fund joint campaigns with complementary businesses, splitting costs and leads.",
		},
		optionB: Option{
			Title:       "Referral Exchange",
			Description: "Set up informal referral arrangements with neighbouring businesses at no cost.",
		},
	},
	{
		aspect:      "Brand Positioning",
		description: "Customer surveys show the franchise is seen as interchangeable with competitors, the deepest problem in %s.",
		optionA: Option{
			Title:       "Premium Repositioning",
			Description: "Invest in refreshed branding and premium offerings to stand apart on quality.",
		},
		optionB: Option{
			Title:       "Value Leader Positioning",
			Description: "Lean into being the dependable value option and communicate it consistently.",
		},
	},
}

var genericEntries = []fallbackEntry{
	{
		aspect:      "Strategic Planning",
		description: "Your franchise needs a clear direction before committing resources to %s.",
		optionA: Option{
			Title:       "Comprehensive Strategy Engagement",
			Description: "Engage an external consultant to produce a full strategic plan with market analysis.",
		},
		optionB: Option{
			Title:       "Focused Internal Planning",
			Description: "Run an internal planning workshop and commit to three priorities for the quarter.",
		},
	},
	{
		aspect:      "Resource Allocation",
		description: "Budget requests exceed available funds, forcing hard choices within %s.",
		optionA: Option{
			Title:       "Invest In Growth Areas",
			Description: "Concentrate spending on the two areas with the clearest growth upside.",
		},
		optionB: Option{
			Title:       "Protect Core Operations",
			Description: "Fund core operations fully and defer new initiatives until cash improves.",
		},
	},
	{
		aspect:      "Process Improvement",
		description: "Day-to-day friction is slowing the team down, and %s depends on smoother operations.",
		optionA: Option{
			Title:       "Systems Upgrade",
			Description: "Purchase new tooling to automate the most error-prone manual processes.",
		},
		optionB: Option{
			Title:       "Incremental Fixes",
			Description: "Fix the worst bottlenecks one at a time using existing tools and staff ideas.",
		},
	},
	{
		aspect:      "Competitive Response",
		description: "A competitor has made an aggressive move that directly affects %s.",
		optionA: Option{
			Title:       "Match And Exceed",
			Description: "Respond in kind with a stronger offer, accepting the near-term cost.",
		},
		optionB: Option{
			Title:       "Hold Position",
			Description: "Stay the course, protect service quality, and let the competitor overextend.",
		},
	},
	{
		aspect:      "Long-Term Positioning",
		description: "With immediate fires out, %s turns to where the franchise should be in five years.",
		optionA: Option{
			Title:       "Expansion Commitment",
			Description: "Commit to opening an additional location within two years and plan backwards.",
		},
		optionB: Option{
			Title:       "Deepen The Core",
			Description: "Stay single-site and reinvest in making the current operation best in class.",
		},
	},
}
