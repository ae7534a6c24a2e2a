package checklist

// Default is the UDE onboarding checklist: 4 categories of 4 items.
var Default = MustCatalog([]Category{
	{
		ID:           "arrival",
		Title:        "First Week - Arrival",
		Description:  "Essential tasks to complete immediately upon arrival",
		DisplayColor: "red",
		Items: []Item{
			{
				ID:            "arrival-1",
				Title:         "Find temporary accommodation",
				Description:   "Book a hostel/hotel or stay with friends until permanent housing is secured",
				Priority:      PriorityHigh,
				EstimatedTime: "1-2 days",
			},
			{
				ID:            "arrival-2",
				Title:         "Get a German SIM card",
				Description:   "Essential for communication and navigation",
				Priority:      PriorityHigh,
				EstimatedTime: "1 hour",
			},
			{
				ID:            "arrival-3",
				Title:         "Register at UDE International Office",
				Description:   "Complete your university enrollment process",
				Priority:      PriorityHigh,
				EstimatedTime: "2-3 hours",
			},
			{
				ID:            "arrival-4",
				Title:         "Open a German bank account",
				Description:   "Required for rent payments and blocked account release",
				Priority:      PriorityHigh,
				EstimatedTime: "1-2 hours",
			},
		},
	},
	{
		ID:           "registration",
		Title:        "Registration & Documentation",
		Description:  "Legal requirements and important registrations",
		DisplayColor: "amber",
		Items: []Item{
			{
				ID:            "reg-1",
				Title:         "Anmeldung (Address Registration)",
				Description:   "Register your address at the local Bürgeramt within 14 days",
				Priority:      PriorityHigh,
				EstimatedTime: "2-3 hours",
				Deadline:      "14 days after arrival",
			},
			{
				ID:            "reg-2",
				Title:         "Get your Steuerliche Identifikationsnummer",
				Description:   "Tax ID automatically sent after Anmeldung",
				Priority:      PriorityMedium,
				EstimatedTime: "Automatic",
			},
			{
				ID:            "reg-3",
				Title:         "Health insurance registration",
				Description:   "Mandatory for all students in Germany",
				Priority:      PriorityHigh,
				EstimatedTime: "1-2 hours",
			},
			{
				ID:            "reg-4",
				Title:         "Register for courses",
				Description:   "Complete course registration through UDE systems",
				Priority:      PriorityHigh,
				EstimatedTime: "2-3 hours",
			},
		},
	},
	{
		ID:           "housing",
		Title:        "Housing & Living",
		Description:  "Secure permanent accommodation and set up utilities",
		DisplayColor: "blue",
		Items: []Item{
			{
				ID:            "housing-1",
				Title:         "Find permanent housing",
				Description:   "Student dorm, WG, or private apartment",
				Priority:      PriorityHigh,
				EstimatedTime: "1-4 weeks",
			},
			{
				ID:            "housing-2",
				Title:         "Sign rental contract",
				Description:   "Review contract terms carefully before signing",
				Priority:      PriorityHigh,
				EstimatedTime: "1 day",
			},
			{
				ID:            "housing-3",
				Title:         "Set up internet",
				Description:   "Arrange internet connection with German providers",
				Priority:      PriorityMedium,
				EstimatedTime: "2-4 weeks setup time",
			},
			{
				ID:            "housing-4",
				Title:         "Get apartment insurance",
				Description:   "Haftpflichtversicherung and household insurance",
				Priority:      PriorityMedium,
				EstimatedTime: "1 hour",
			},
		},
	},
	{
		ID:           "integration",
		Title:        "Campus & Social Integration",
		Description:  "Connect with the university community and student life",
		DisplayColor: "green",
		Items: []Item{
			{
				ID:            "integration-1",
				Title:         "Attend orientation events",
				Description:   "Join UDE orientation week and international student events",
				Priority:      PriorityMedium,
				EstimatedTime: "Multiple days",
			},
			{
				ID:            "integration-2",
				Title:         "Get student ID and library card",
				Description:   "Access campus facilities and library resources",
				Priority:      PriorityMedium,
				EstimatedTime: "1 hour",
			},
			{
				ID:            "integration-3",
				Title:         "Join student organizations",
				Description:   "Find clubs, societies, or student groups that interest you",
				Priority:      PriorityLow,
				EstimatedTime: "Ongoing",
			},
			{
				ID:            "integration-4",
				Title:         "Explore Duisburg/Essen",
				Description:   "Get familiar with your new city and transportation",
				Priority:      PriorityLow,
				EstimatedTime: "Ongoing",
			},
		},
	},
})
