package opportunity

import "github.com/spigell/internship-finder/internal/profile"

const applyBaseURL = "https://pminternship.mca.gov.in/internship-details/"

// Seed returns the built-in catalog of official scheme placements.
func Seed() *Opportunities {
	return New(
		&Opportunity{
			ID:             101,
			Title:          "Data Entry and Digital Documentation",
			Organization:   "Ministry of Electronics & Information Technology",
			Sector:         "Government",
			Location:       "Delhi",
			Flexible:       true,
			Stipend:        5000,
			Duration:       "6 months",
			Description:    "Assist in digitization of government records and data management. Suitable for graduates with computer skills.",
			RequiredSkills: []string{"Computer Skills", "Data Entry", "MS Office"},
			ApplyURL:       applyBaseURL + "data-entry-101",
			ReasonTemplate: `Perfect match for your {{join .Skills " and "}} skills in government sector`,
		},
		&Opportunity{
			ID:             102,
			Title:          "Financial Analysis Support",
			Organization:   "Reserve Bank of India",
			Sector:         "Finance",
			Location:       "Mumbai",
			Flexible:       true,
			Stipend:        8000,
			Duration:       "4 months",
			Description:    "Support financial research and analysis for banking sector initiatives under PM Internship Scheme.",
			RequiredSkills: []string{"Accounting", "Research", "Financial Analysis"},
			ApplyURL:       applyBaseURL + "finance-102",
			ReasonTemplate: `Ideal for your {{.Education}} background and {{join .Interests " and "}} interests`,
		},
		&Opportunity{
			ID:             103,
			Title:          "Rural Development Communication",
			Organization:   "Ministry of Rural Development",
			Sector:         "Government",
			Location:       "Bhopal",
			Flexible:       true,
			Stipend:        6000,
			Duration:       "5 months",
			Description:    "Create communication materials for rural development programs and community outreach initiatives.",
			RequiredSkills: []string{"Communication", "Writing", "Social Media"},
			ApplyURL:       applyBaseURL + "rural-dev-103",
			ReasonTemplate: `Matches your {{if has .Skills "Communication"}}Communication{{else}}background{{end}} and government sector interest`,
		},
		&Opportunity{
			ID:             104,
			Title:          "Healthcare Data Management",
			Organization:   "Ministry of Health and Family Welfare",
			Sector:         "Healthcare",
			Location:       "Chennai",
			Flexible:       true,
			Stipend:        7000,
			Duration:       "6 months",
			Description:    "Manage health data systems and support digital health initiatives under National Health Mission.",
			RequiredSkills: []string{"Data Entry", "Computer Skills", "Research"},
			ApplyURL:       applyBaseURL + "health-104",
			ReasonTemplate: `Great fit for your {{.Education}} qualification and healthcare sector interest`,
		},
		&Opportunity{
			ID:             105,
			Title:          "Educational Content Development",
			Organization:   "Ministry of Education",
			Sector:         "Education",
			Location:       profile.RemoteOnline,
			Stipend:        4500,
			Duration:       "4 months",
			Description:    "Develop educational content for digital learning platforms and assist in curriculum digitization.",
			RequiredSkills: []string{"Writing", "Communication", "Teaching"},
			ApplyURL:       applyBaseURL + "education-105",
			ReasonTemplate: `Perfect for your {{if has .Skills "Writing"}}Writing{{else}}educational{{end}} background and Education interest`,
		},
		&Opportunity{
			ID:             106,
			Title:          "Agricultural Research Support",
			Organization:   "Indian Council of Agricultural Research",
			Sector:         "Agriculture",
			Location:       "Pune",
			Flexible:       true,
			Stipend:        5500,
			Duration:       "5 months",
			Description:    "Support agricultural research projects and data collection for farming innovation programs.",
			RequiredSkills: []string{"Research", "Data Entry", "Communication"},
			ApplyURL:       applyBaseURL + "agriculture-106",
			ReasonTemplate: `Suitable for your {{.Education}} background and agricultural sector alignment`,
		},
	)
}
