package catalog

import "skillio/internal/domain/entity"

func intPtr(v int) *int { return &v }

func Default() *Catalog {
	return &Catalog{
		Services: []*entity.Service{
			{
				ID:                 "t1",
				Title:              "Expert Tutoring",
				Description:        "Personalized learning for Grades 1-3. We make math and reading fun!",
				Price:              "KES 2,000/session",
				DurationMinutes:    60,
				Category:           entity.CategoryLearningTutoring,
				ImageURL:           "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?auto=format&fit=crop&q=80&w=800",
				IsActive:           true,
				MaxJobsPerDay:      intPtr(3),
				AllowedProviderIDs: []string{},
			},
			{
				ID:                 "c1",
				Title:              "Home & Yard Help",
				Description:        "From car washing to room tidying, I help keep your home sparkling!",
				Price:              "KES 400/task",
				DurationMinutes:    90,
				Category:           entity.CategoryHomeHelpCleaning,
				ImageURL:           "https://images.unsplash.com/photo-1581578731522-745505146205?auto=format&fit=crop&q=80&w=800",
				IsActive:           true,
				MaxJobsPerDay:      intPtr(4),
				AllowedProviderIDs: []string{},
			},
		},
		Profile: &entity.UserProfile{
			ID:         "user_1",
			Name:       "John Doe",
			Email:      "john@example.com",
			Phone:      "+254 700 000 000",
			Address:    "123 Sunshine Street",
			City:       "Nairobi",
			Role:       entity.RoleCustomer,
			JoinedDate: "2024-01-01",
			Status:     entity.AccountActive,
			Preferences: entity.Preferences{
				PreferredTime:    "Morning",
				Newsletter:       true,
				ServiceReminders: true,
			},
			Notes: entity.HouseholdNotes{
				GateCode:            "4321",
				PetInfo:             "Golden Retriever named Sparky",
				GeneralInstructions: "Please leave keys with the concierge.",
			},
		},
		Tiers: []entity.CleaningTier{
			{ID: "full", Title: "Full Home Cleaning", Price: 2500, Description: "Deep scrubbing of all rooms, floors, and surfaces."},
			{ID: "standard", Title: "Standard Cleaning", Price: 1500, Description: "A thorough tidy up, dusting, and floor vacuuming."},
			{ID: "light", Title: "Light Cleaning", Price: 800, Description: "Quick refresh of main living areas and surfaces."},
		},
		AddOns: []entity.AddOn{
			{ID: "yard", Name: "Yard Sweeping", Price: 500, Icon: "🧹"},
			{ID: "car", Name: "Car Washing", Price: 1000, Icon: "🚗"},
			{ID: "laundry", Name: "Laundry Folding", Price: 400, Icon: "👕"},
			{ID: "plants", Name: "Plant Watering", Price: 300, Icon: "🌱"},
			{ID: "windows", Name: "Window Polishing", Price: 600, Icon: "🪟"},
		},
		TimeSlots: []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
	}
}
