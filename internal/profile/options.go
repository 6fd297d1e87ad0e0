package profile

// Questionnaire choices offered by the wizard.
var (
	EducationOptions = []string{
		"10th Pass", "12th Pass", "Diploma", "Undergraduate", "Graduate", "Post Graduate",
	}

	SkillOptions = []string{
		"Computer Skills", "Communication", "Accounting", "Marketing", "Design",
		"Writing", "Teaching", "Sales", "Management", "Research", "Programming",
		"Data Entry", "Customer Service", "Social Media",
	}

	InterestOptions = []string{
		"Technology", "Business", "Education", "Healthcare", "Government",
		"Non-Profit", "Media", "Finance", "Marketing", "Design", "Research",
		"Social Work", "Environment", "Agriculture",
	}

	LocationOptions = []string{
		"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata", "Hyderabad",
		"Pune", "Ahmedabad", "Jaipur", "Lucknow", "Bhopal", "Patna",
		RemoteOnline, AnyLocation,
	}
)
