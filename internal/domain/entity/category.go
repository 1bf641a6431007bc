package entity

// Category groups services and taskers in the marketplace.
type Category string

const (
	CategoryLearningTutoring  Category = "Learning & Tutoring"
	CategoryKidsChildServices Category = "Kids & Child Services"
	CategoryHomeHelpCleaning  Category = "Home Help & Cleaning"
	CategoryCreativeHandmade  Category = "Creative & Handmade"
	CategoryDigitalTechHelp   Category = "Digital & Tech Help"
	CategorySchoolStudy       Category = "School & Study Support"
	CategoryCommunityErrands  Category = "Community & Errands"
	CategorySpecialPrograms   Category = "Special Programs & Clubs"
)

var Categories = []Category{
	CategoryLearningTutoring,
	CategoryKidsChildServices,
	CategoryHomeHelpCleaning,
	CategoryCreativeHandmade,
	CategoryDigitalTechHelp,
	CategorySchoolStudy,
	CategoryCommunityErrands,
	CategorySpecialPrograms,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
