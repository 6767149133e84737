// Package defaults holds the built-in option lists and the starter feature
// catalog. They are plain constructors rather than package state so that
// services receive them at construction time and tests can substitute their
// own.
package defaults

import "cofounderbase/internal/models"

// Settings returns the built-in option lists used when no settings record
// has been stored yet, and as the degraded-mode payload when the store is
// unreachable.
func Settings() models.Settings {
	return models.Settings{
		Industries: []string{
			"Technology", "Healthcare", "Finance", "E-commerce", "Education", "Real Estate",
			"Food & Beverage", "Travel", "Entertainment", "Gaming", "Social Media", "AI/ML",
			"Blockchain", "IoT", "Cybersecurity", "Marketing", "HR", "Logistics", "Energy", "Other",
		},
		Skills: []string{
			"Product Management", "Engineering", "Design", "Marketing", "Sales", "Business Development",
			"Operations", "Finance", "Legal", "HR", "Data Science", "AI/ML", "Mobile Development",
			"Web Development", "DevOps", "UI/UX", "Growth Hacking", "Content Creation", "SEO/SEM", "Other",
		},
		StartupStages: []string{"Idea", "MVP", "Growth", "Scaling"},
	}
}

// Features returns the starter feature catalog. It is seeded into the store
// when the features table is empty and served directly when the store is
// unreachable.
func Features() []models.Feature {
	return []models.Feature{
		{
			Title:         "AI-Powered Matching",
			Description:   "Advanced AI algorithm that analyzes profiles, skills, and preferences to suggest the most compatible co-founders based on complementary strengths and shared vision.",
			Category:      "Core",
			Priority:      "High",
			Status:        "Planned",
			EstimatedTime: "Q2 2024",
			Icon:          "ai",
			Tags:          []string{"AI", "Machine Learning", "Smart Matching", "Recommendations"},
		},
		{
			Title:         "Video Introduction Feature",
			Description:   "Allow founders to upload 60-second video introductions to showcase their personality, passion, and communication skills beyond just text profiles.",
			Category:      "Core",
			Priority:      "High",
			Status:        "Planned",
			EstimatedTime: "Q1 2024",
			Icon:          "video",
			Tags:          []string{"Video", "Personal Branding", "Communication", "Profiles"},
		},
		{
			Title:         "Real-time Chat System",
			Description:   "Built-in messaging system for founders to communicate directly within the platform, with features like file sharing, voice messages, and video calls.",
			Category:      "Core",
			Priority:      "High",
			Status:        "In Development",
			EstimatedTime: "Q1 2024",
			Icon:          "chat",
			Tags:          []string{"Chat", "Communication", "Real-time", "Messaging"},
		},
		{
			Title:         "Startup Pitch Deck Sharing",
			Description:   "Secure platform for founders to share pitch decks, business plans, and financial projections with potential co-founders under NDA protection.",
			Category:      "Premium",
			Priority:      "Medium",
			Status:        "Planned",
			EstimatedTime: "Q3 2024",
			Icon:          "presentation",
			Tags:          []string{"Pitch Deck", "Business Plans", "NDA", "Document Sharing"},
		},
		{
			Title:         "Co-founder Compatibility Score",
			Description:   "Comprehensive compatibility assessment based on working styles, values, risk tolerance, and long-term goals to predict successful partnerships.",
			Category:      "Premium",
			Priority:      "Medium",
			Status:        "Planned",
			EstimatedTime: "Q2 2024",
			Icon:          "target",
			Tags:          []string{"Compatibility", "Assessment", "Psychology", "Partnership"},
		},
		{
			Title:         "Virtual Co-working Sessions",
			Description:   "Schedule and host virtual co-working sessions where potential co-founders can work together on projects to test compatibility before committing.",
			Category:      "Community",
			Priority:      "Medium",
			Status:        "Planned",
			EstimatedTime: "Q3 2024",
			Icon:          "users",
			Tags:          []string{"Co-working", "Virtual", "Collaboration", "Testing"},
		},
		{
			Title:         "Equity & Legal Framework Tools",
			Description:   "Built-in tools and templates for equity distribution, vesting schedules, and legal agreements to formalize co-founder relationships.",
			Category:      "Premium",
			Priority:      "High",
			Status:        "Planned",
			EstimatedTime: "Q4 2024",
			Icon:          "scale",
			Tags:          []string{"Legal", "Equity", "Contracts", "Vesting"},
		},
		{
			Title:         "Startup Events & Networking",
			Description:   "Curated virtual and in-person events, workshops, and networking sessions specifically for founders looking for co-founders.",
			Category:      "Community",
			Priority:      "Medium",
			Status:        "Planned",
			EstimatedTime: "Q2 2024",
			Icon:          "calendar",
			Tags:          []string{"Events", "Networking", "Workshops", "Community"},
		},
		{
			Title:         "Success Stories & Case Studies",
			Description:   "Showcase successful co-founder matches made through the platform with detailed case studies and lessons learned.",
			Category:      "Community",
			Priority:      "Low",
			Status:        "Planned",
			EstimatedTime: "Q3 2024",
			Icon:          "trophy",
			Tags:          []string{"Success Stories", "Case Studies", "Inspiration", "Community"},
		},
		{
			Title:         "Mobile App (iOS & Android)",
			Description:   "Native mobile applications for iOS and Android with push notifications, offline access, and mobile-optimized matching experience.",
			Category:      "Core",
			Priority:      "High",
			Status:        "Planned",
			EstimatedTime: "Q3 2024",
			Icon:          "smartphone",
			Tags:          []string{"Mobile", "iOS", "Android", "Native App"},
		},
		{
			Title:         "Advanced Analytics Dashboard",
			Description:   "Comprehensive analytics for founders to track profile views, connection rates, and optimize their profiles for better matches.",
			Category:      "Analytics",
			Priority:      "Medium",
			Status:        "Planned",
			EstimatedTime: "Q4 2024",
			Icon:          "trending-up",
			Tags:          []string{"Analytics", "Dashboard", "Metrics", "Optimization"},
		},
		{
			Title:         "Integration with LinkedIn & GitHub",
			Description:   "Seamless integration with professional platforms to auto-populate profiles and verify credentials and experience.",
			Category:      "Integration",
			Priority:      "Medium",
			Status:        "Coming Soon",
			EstimatedTime: "Q1 2024",
			Icon:          "link",
			Tags:          []string{"Integration", "LinkedIn", "GitHub", "Verification"},
		},
		{
			Title:         "Mentor Matching System",
			Description:   "Connect founders not just with co-founders but also with experienced mentors and advisors in their industry.",
			Category:      "Community",
			Priority:      "Medium",
			Status:        "Planned",
			EstimatedTime: "Q4 2024",
			Icon:          "graduation-cap",
			Tags:          []string{"Mentorship", "Advisors", "Guidance", "Experience"},
		},
		{
			Title:         "Startup Idea Validation Tools",
			Description:   "Tools and surveys to help founders validate their startup ideas with the community and get feedback from potential co-founders.",
			Category:      "Premium",
			Priority:      "Low",
			Status:        "Planned",
			EstimatedTime: "Q4 2024",
			Icon:          "lightbulb",
			Tags:          []string{"Validation", "Ideas", "Feedback", "Community Input"},
		},
		{
			Title:         "Global Expansion & Localization",
			Description:   "Multi-language support and region-specific features to serve founders worldwide with local startup ecosystems integration.",
			Category:      "Core",
			Priority:      "Medium",
			Status:        "Planned",
			EstimatedTime: "Q4 2024",
			Icon:          "globe",
			Tags:          []string{"Global", "Localization", "Multi-language", "International"},
		},
	}
}
