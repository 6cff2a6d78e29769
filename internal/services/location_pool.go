package services

import "itinerary-planner-service/internal/domain"

// MaxDaysPerLocation caps how many consecutive days the synthesizer spends in
// one location during its primary allocation.
const MaxDaysPerLocation = 2

// A fixed activity offered at a pool location.
type PoolActivity struct {
	Slot        domain.TimeSlot
	Name        string
	Cost        float64
	InterestTag string
}

// A candidate location with its fixed activity pool.
// Every pool location offers at least three activities per time slot.
type PoolLocation struct {
	Name        string
	Coordinates domain.Coordinates
	Activities  []PoolActivity
}

// BySlot returns the location's activities for one time slot, in pool order.
func (l PoolLocation) BySlot(slot domain.TimeSlot) []PoolActivity {
	out := make([]PoolActivity, 0, len(l.Activities)/len(domain.Slots))
	for _, a := range l.Activities {
		if a.Slot == slot {
			out = append(out, a)
		}
	}
	return out
}

func (l PoolLocation) activity(a PoolActivity, day int) domain.Activity {
	return domain.Activity{
		Day:         day,
		TimeSlot:    a.Slot,
		Name:        a.Name,
		Location:    l.Name,
		Cost:        a.Cost,
		Latitude:    l.Coordinates.Lat,
		Longitude:   l.Coordinates.Lon,
		InterestTag: a.InterestTag,
	}
}

// DefaultLocations returns the compiled-in candidate locations in selection order.
// The returned slice is a fresh copy.
func DefaultLocations() []PoolLocation {
	out := make([]PoolLocation, len(defaultLocations))
	for i, l := range defaultLocations {
		l.Activities = append([]PoolActivity(nil), l.Activities...)
		out[i] = l
	}
	return out
}

// LocationByName looks a location up in the default pool.
func LocationByName(name string) (PoolLocation, bool) {
	for _, l := range defaultLocations {
		if l.Name == name {
			return l, true
		}
	}
	return PoolLocation{}, false
}

var defaultLocations = []PoolLocation{
	{
		Name:        "Colombo",
		Coordinates: domain.Coordinates{Lat: 6.927, Lon: 79.861},
		Activities: []PoolActivity{
			{domain.Morning, "Gangaramaya Temple", 10, "culture"},
			{domain.Afternoon, "National Museum", 15, "history"},
			{domain.Evening, "Galle Face Walk", 0, "relax"},
			{domain.Morning, "Viharamahadevi Park", 0, "relax"},
			{domain.Afternoon, "Independence Square", 5, "history"},
			{domain.Evening, "Pettah Market Tour", 10, "culture"},
			{domain.Morning, "Colombo City Tour", 20, "city"},
			{domain.Afternoon, "Shopping at Odel", 0, "shopping"},
			{domain.Evening, "Dutch Hospital Dining", 30, "food"},
		},
	},
	{
		Name:        "Sigiriya",
		Coordinates: domain.Coordinates{Lat: 7.957, Lon: 80.760},
		Activities: []PoolActivity{
			{domain.Morning, "Sigiriya Rock Fortress", 30, "history"},
			{domain.Afternoon, "Pidurangala Rock", 25, "hiking"},
			{domain.Evening, "Village Tour", 20, "culture"},
			{domain.Morning, "Dambulla Cave Temple", 20, "culture"},
			{domain.Afternoon, "Minneriya Safari", 50, "wildlife"},
			{domain.Evening, "Ayurvedic Massage", 40, "relax"},
			{domain.Morning, "Ancient Ruins Walk", 15, "history"},
			{domain.Afternoon, "Spice Garden Visit", 10, "nature"},
			{domain.Evening, "Traditional Cooking Class", 35, "food"},
		},
	},
	{
		Name:        "Kandy",
		Coordinates: domain.Coordinates{Lat: 7.290, Lon: 80.633},
		Activities: []PoolActivity{
			{domain.Morning, "Temple of Tooth", 15, "culture"},
			{domain.Afternoon, "Botanical Gardens", 15, "nature"},
			{domain.Evening, "Kandy Lake Walk", 0, "relax"},
			{domain.Morning, "Tea Factory Tour", 25, "culture"},
			{domain.Afternoon, "Elephant Sanctuary", 30, "wildlife"},
			{domain.Evening, "Cultural Dance Show", 20, "culture"},
			{domain.Morning, "Bahiravokanda Temple", 10, "culture"},
			{domain.Afternoon, "Royal Palace Museum", 10, "history"},
			{domain.Evening, "Shopping at Kandy City", 0, "shopping"},
		},
	},
	{
		Name:        "Ella",
		Coordinates: domain.Coordinates{Lat: 6.866, Lon: 81.046},
		Activities: []PoolActivity{
			{domain.Morning, "Ella Rock Hike", 0, "hiking"},
			{domain.Afternoon, "Nine Arch Bridge", 0, "photo"},
			{domain.Evening, "Little Adam's Peak", 0, "hiking"},
			{domain.Morning, "Ravana Falls", 5, "nature"},
			{domain.Afternoon, "Demodara Loop", 0, "photo"},
			{domain.Evening, "Ella Town Cafe Hopping", 25, "food"},
			{domain.Morning, "Tea Plantation Walk", 10, "nature"},
			{domain.Afternoon, "Flying Ravana Zipline", 45, "adventure"},
			{domain.Evening, "Sunset Viewpoint", 0, "relax"},
		},
	},
	{
		Name:        "Yala",
		Coordinates: domain.Coordinates{Lat: 6.383, Lon: 81.500},
		Activities: []PoolActivity{
			{domain.Morning, "Yala Safari - Leopards", 60, "wildlife"},
			{domain.Afternoon, "Bird Watching Tour", 40, "nature"},
			{domain.Evening, "Beach Camping", 80, "adventure"},
			{domain.Morning, "Bundala National Park", 50, "wildlife"},
			{domain.Afternoon, "Elephant Gathering", 45, "wildlife"},
			{domain.Evening, "Star Gazing", 20, "relax"},
			{domain.Morning, "Nature Trail Walk", 15, "nature"},
			{domain.Afternoon, "Photography Safari", 55, "photo"},
			{domain.Evening, "BBQ by the Lake", 40, "food"},
		},
	},
	{
		Name:        "Mirissa",
		Coordinates: domain.Coordinates{Lat: 5.948, Lon: 80.471},
		Activities: []PoolActivity{
			{domain.Morning, "Whale Watching", 70, "wildlife"},
			{domain.Afternoon, "Secret Beach", 0, "beach"},
			{domain.Evening, "Beach Sunset", 0, "beach"},
			{domain.Morning, "Snorkeling Trip", 40, "adventure"},
			{domain.Afternoon, "Coconut Tree Hill", 5, "photo"},
			{domain.Evening, "Seafood Dinner", 30, "food"},
			{domain.Morning, "Surfing Lessons", 35, "adventure"},
			{domain.Afternoon, "Beach Volleyball", 0, "beach"},
			{domain.Evening, "Night Beach Walk", 0, "beach"},
		},
	},
	{
		Name:        "Galle",
		Coordinates: domain.Coordinates{Lat: 6.053, Lon: 80.221},
		Activities: []PoolActivity{
			{domain.Morning, "Galle Fort Tour", 10, "history"},
			{domain.Afternoon, "Unawatuna Beach", 0, "beach"},
			{domain.Evening, "Lighthouse Sunset", 0, "photo"},
			{domain.Morning, "Dutch Museum", 8, "history"},
			{domain.Afternoon, "Jungle Beach Trek", 15, "beach"},
			{domain.Evening, "Fort Ramparts Walk", 0, "relax"},
			{domain.Morning, "Hikkaduwa Turtle Hatchery", 20, "wildlife"},
			{domain.Afternoon, "Coral Reef Snorkeling", 45, "adventure"},
			{domain.Evening, "Shopping in Fort", 0, "shopping"},
		},
	},
	{
		Name:        "Nuwara Eliya",
		Coordinates: domain.Coordinates{Lat: 6.949, Lon: 80.789},
		Activities: []PoolActivity{
			{domain.Morning, "Gregory Lake Boat Ride", 15, "relax"},
			{domain.Afternoon, "Victoria Park", 5, "nature"},
			{domain.Evening, "Strawberry Farm", 10, "food"},
			{domain.Morning, "Horton Plains Trek", 35, "hiking"},
			{domain.Afternoon, "Pedro Tea Estate", 20, "culture"},
			{domain.Evening, "Town Walk", 0, "city"},
			{domain.Morning, "World's End Viewpoint", 25, "hiking"},
			{domain.Afternoon, "Ramboda Falls", 5, "nature"},
			{domain.Evening, "Colonial Bungalow Tour", 15, "history"},
		},
	},
	{
		Name:        "Anuradhapura",
		Coordinates: domain.Coordinates{Lat: 8.335, Lon: 80.403},
		Activities: []PoolActivity{
			{domain.Morning, "Sacred Bo Tree", 0, "culture"},
			{domain.Afternoon, "Ruwanwelisaya Stupa", 0, "history"},
			{domain.Evening, "Ancient Ruins Cycling", 15, "adventure"},
			{domain.Morning, "Twin Ponds", 0, "history"},
			{domain.Afternoon, "Abhayagiri Monastery", 5, "culture"},
			{domain.Evening, "Moonstone Museum", 10, "history"},
			{domain.Morning, "Isurumuniya Temple", 8, "culture"},
			{domain.Afternoon, "Archaeological Museum", 10, "history"},
			{domain.Evening, "Sunset at Reservoir", 0, "relax"},
		},
	},
	{
		Name:        "Trincomalee",
		Coordinates: domain.Coordinates{Lat: 8.588, Lon: 81.218},
		Activities: []PoolActivity{
			{domain.Morning, "Nilaveli Beach", 0, "beach"},
			{domain.Afternoon, "Pigeon Island Snorkeling", 45, "adventure"},
			{domain.Evening, "Beach Sunset", 0, "beach"},
			{domain.Morning, "Koneswaram Temple", 5, "culture"},
			{domain.Afternoon, "Fort Frederick", 5, "history"},
			{domain.Evening, "Marble Beach", 0, "beach"},
			{domain.Morning, "Whale Watching", 60, "wildlife"},
			{domain.Afternoon, "Hot Springs Visit", 10, "relax"},
			{domain.Evening, "Seafood BBQ", 35, "food"},
		},
	},
}
