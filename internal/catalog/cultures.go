package catalog

import "github.com/culturelens/culturelens-backend/internal/model"

// CultureInfo returns the presentation metadata for a single culture type.
func CultureInfo(t model.CultureType) (model.CultureInfo, bool) {
	info, ok := cultureInfo[t]
	return info, ok
}

// Cultures returns the metadata table for all eight culture types.
// Callers must not mutate the returned map.
func Cultures() map[model.CultureType]model.CultureInfo {
	return cultureInfo
}

var cultureInfo = map[model.CultureType]model.CultureInfo{
	model.CultureCaring: {
		Name:        "Caring Culture",
		Icon:        "heart",
		Description: "Your organization prioritizes the wellbeing and development of its people. There's a strong focus on collaboration, support, and creating an environment where employees feel valued and cared for. Decision-making often considers the human impact, and there's emphasis on work-life balance and personal growth.",
		Strengths: []string{
			"High employee engagement and loyalty",
			"Strong team collaboration and support",
			"Attracts and retains top talent",
			"Positive workplace relationships",
			"Strong emotional intelligence",
		},
		GrowthAreas: []string{
			"May need more focus on performance metrics",
			"Could benefit from clearer goal setting",
			"Balance care with accountability",
			"Avoid decision paralysis from over-consultation",
		},
		Color: "text-red-500",
	},
	model.CulturePurpose: {
		Name:        "Purpose Culture",
		Icon:        "bullseye",
		Description: "Your organization is driven by a strong mission and meaningful impact. Employees are motivated by contributing to something bigger than themselves, and decisions are made based on alignment with core values and purpose rather than just profit.",
		Strengths: []string{
			"Strong employee motivation and engagement",
			"Clear direction and decision-making criteria",
			"Attracts mission-driven talent",
			"Sustainable long-term growth",
			"Strong brand reputation",
		},
		GrowthAreas: []string{
			"May struggle with practical implementation",
			"Need to balance idealism with realism",
			"Ensure financial sustainability",
			"Avoid mission drift over time",
		},
		Color: "text-green-500",
	},
	model.CultureLearning: {
		Name:        "Learning Culture",
		Icon:        "graduation-cap",
		Description: "Your organization thrives on continuous improvement, experimentation, and knowledge sharing. Mistakes are viewed as learning opportunities, and there's a strong emphasis on personal and professional development at all levels.",
		Strengths: []string{
			"High adaptability and innovation",
			"Continuous skill development",
			"Resilience in face of challenges",
			"Knowledge sharing across teams",
			"Future-ready workforce",
		},
		GrowthAreas: []string{
			"May over-analyze instead of taking action",
			"Need to balance learning with execution",
			"Avoid perfectionism paralysis",
			"Ensure learning translates to results",
		},
		Color: "text-blue-500",
	},
	model.CultureEnjoyment: {
		Name:        "Enjoyment Culture",
		Icon:        "smile",
		Description: "Your organization creates a fun, energetic work environment where people genuinely enjoy coming to work. There's emphasis on celebration, creativity, and making work feel less like work and more like play.",
		Strengths: []string{
			"High employee satisfaction",
			"Creative and innovative solutions",
			"Strong team bonding",
			"Attracts energetic talent",
			"Positive company reputation",
		},
		GrowthAreas: []string{
			"May lack focus on serious issues",
			"Need structure for accountability",
			"Balance fun with productivity",
			"Ensure professionalism when needed",
		},
		Color: "text-yellow-500",
	},
	model.CultureTagResults: {
		Name:        "Results Culture",
		Icon:        "chart-line",
		Description: "Your organization is laser-focused on achieving ambitious goals and delivering outstanding performance. Success is measured by metrics and outcomes, with a strong drive for excellence and competitive advantage.",
		Strengths: []string{
			"High performance and productivity",
			"Clear accountability systems",
			"Strong competitive advantage",
			"Efficient resource allocation",
			"Achievement-oriented mindset",
		},
		GrowthAreas: []string{
			"May sacrifice long-term for short-term gains",
			"Risk of employee burnout",
			"Need to balance results with relationships",
			"Ensure sustainable growth practices",
		},
		Color: "text-red-600",
	},
	model.CultureAuthority: {
		Name:        "Authority Culture",
		Icon:        "crown",
		Description: "Your organization operates with clear hierarchies and strong leadership direction. Decision-making flows from the top down, with well-defined roles and responsibilities throughout the organization.",
		Strengths: []string{
			"Clear decision-making process",
			"Strong organizational alignment",
			"Efficient execution",
			"Clear career progression paths",
			"Crisis management capability",
		},
		GrowthAreas: []string{
			"May limit innovation from lower levels",
			"Risk of disengaged employees",
			"Need more collaborative approaches",
			"Develop leadership at all levels",
		},
		Color: "text-purple-500",
	},
	model.CultureSafety: {
		Name:        "Safety Culture",
		Icon:        "shield-alt",
		Description: "Your organization prioritizes risk management, stability, and security. There's careful planning, thorough risk assessment, and emphasis on creating a secure environment for employees and customers.",
		Strengths: []string{
			"Strong risk management",
			"Stable and predictable environment",
			"High employee security",
			"Thorough planning processes",
			"Customer trust and confidence",
		},
		GrowthAreas: []string{
			"May be slow to adapt to change",
			"Could miss opportunities due to caution",
			"Need to encourage calculated risks",
			"Balance safety with innovation",
		},
		Color: "text-green-600",
	},
	model.CultureOrder: {
		Name:        "Order Culture",
		Icon:        "list",
		Description: "Your organization values structure, processes, and systematic approaches. There are clear procedures for everything, with emphasis on consistency, reliability, and following established best practices.",
		Strengths: []string{
			"Consistent quality and reliability",
			"Clear expectations and procedures",
			"Efficient operations",
			"Scalable systems",
			"Regulatory compliance",
		},
		GrowthAreas: []string{
			"May resist necessary changes",
			"Could stifle creativity",
			"Need flexibility for innovation",
			"Balance structure with agility",
		},
		Color: "text-gray-600",
	},
}
