package dating

import (
	"time"
)

// DemoUserID is the profile behind the demo account.
const DemoUserID = "1"

func photo(id string) string {
	return "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=800"
}

// MockProfiles returns the demo dataset: the demo user followed by four
// candidates. LastActive values are offsets from now.
func MockProfiles(now time.Time) []*UserProfile {
	return []*UserProfile{
		{
			ID:     DemoUserID,
			Name:   "Alex Johnson",
			Age:    28,
			Photos: []string{photo("2379004"), photo("1239291")},
			Bio:    "Adventure seeker, coffee enthusiast, and dog lover. Looking for genuine connections and shared experiences.",
			Interests: []string{
				"Travel", "Photography", "Hiking", "Coffee", "Dogs", "Music",
			},
			Location:         "San Francisco, CA",
			Occupation:       "Software Engineer",
			Education:        "Stanford University",
			RelationshipType: RelationshipSerious,
			Preferences: Preferences{
				AgeRange:           AgeRange{Min: 25, Max: 35},
				MaxDistance:        50,
				InterestedIn:       []string{"Travel", "Photography", "Fitness", "Food"},
				DealBreakers:       []string{"Smoking", "No pets"},
				ImportantQualities: []string{"Kindness", "Intelligence", "Humor"},
			},
			IsOnline:   true,
			LastActive: now,
		},
		{
			ID:     "2",
			Name:   "Sarah Chen",
			Age:    26,
			Photos: []string{photo("1468379"), photo("1858175")},
			Bio:    "Artist by day, foodie by night. I believe in creating beautiful moments and sharing great conversations over amazing meals.",
			Interests: []string{
				"Art", "Food", "Photography", "Travel", "Yoga", "Wine",
			},
			Location:         "San Francisco, CA",
			Occupation:       "Graphic Designer",
			Education:        "UC Berkeley",
			RelationshipType: RelationshipSerious,
			Preferences: Preferences{
				AgeRange:           AgeRange{Min: 24, Max: 32},
				MaxDistance:        30,
				InterestedIn:       []string{"Art", "Travel", "Food", "Photography"},
				DealBreakers:       []string{"Smoking"},
				ImportantQualities: []string{"Creativity", "Kindness", "Intelligence"},
			},
			IsOnline:   true,
			LastActive: now.Add(-5 * time.Minute),
		},
		{
			ID:     "3",
			Name:   "Marcus Rodriguez",
			Age:    31,
			Photos: []string{photo("1043471"), photo("1065084")},
			Bio:    "Fitness enthusiast and outdoor adventurer. Love exploring new trails and pushing my limits. Looking for someone to share adventures with.",
			Interests: []string{
				"Fitness", "Hiking", "Rock Climbing", "Cooking", "Travel", "Books",
			},
			Location:         "Oakland, CA",
			Occupation:       "Personal Trainer",
			Education:        "San Jose State",
			RelationshipType: RelationshipSerious,
			Preferences: Preferences{
				AgeRange:           AgeRange{Min: 22, Max: 35},
				MaxDistance:        40,
				InterestedIn:       []string{"Fitness", "Travel", "Hiking", "Food"},
				DealBreakers:       []string{"Smoking", "Sedentary lifestyle"},
				ImportantQualities: []string{"Health-conscious", "Adventure-loving", "Positive"},
			},
			IsOnline:   false,
			LastActive: now.Add(-time.Hour),
		},
		{
			ID:     "4",
			Name:   "Emma Thompson",
			Age:    29,
			Photos: []string{photo("1391498"), photo("1130626")},
			Bio:    "Music lover and bookworm. I spend my weekends at concerts, coffee shops, or exploring new neighborhoods. Always up for deep conversations.",
			Interests: []string{
				"Music", "Books", "Coffee", "Travel", "Museums", "Photography",
			},
			Location:         "Berkeley, CA",
			Occupation:       "Music Teacher",
			Education:        "Berkeley Conservatory",
			RelationshipType: RelationshipSerious,
			Preferences: Preferences{
				AgeRange:           AgeRange{Min: 26, Max: 34},
				MaxDistance:        25,
				InterestedIn:       []string{"Music", "Books", "Art", "Travel"},
				DealBreakers:       []string{"No common interests"},
				ImportantQualities: []string{"Intelligence", "Creativity", "Empathy"},
			},
			IsOnline:   true,
			LastActive: now.Add(-15 * time.Minute),
		},
		{
			ID:     "5",
			Name:   "David Kim",
			Age:    27,
			Photos: []string{photo("1222271"), photo("1379636")},
			Bio:    "Tech entrepreneur with a passion for innovation and sustainability. Love traveling, trying new cuisines, and learning about different cultures.",
			Interests: []string{
				"Technology", "Travel", "Food", "Sustainability", "Innovation", "Startups",
			},
			Location:         "Palo Alto, CA",
			Occupation:       "Tech Entrepreneur",
			Education:        "MIT",
			RelationshipType: RelationshipAny,
			Preferences: Preferences{
				AgeRange:           AgeRange{Min: 23, Max: 32},
				MaxDistance:        60,
				InterestedIn:       []string{"Technology", "Travel", "Food", "Innovation"},
				DealBreakers:       []string{"Close-minded"},
				ImportantQualities: []string{"Intelligence", "Ambition", "Open-mindedness"},
			},
			IsOnline:   false,
			LastActive: now.Add(-30 * time.Minute),
		},
	}
}
