package seed

// Демо-набор повторяет состав исходных фикстур: 20 игроков, 8 команд с
// пересекающимися составами, 5 объявлений, 12 матчей и 4 турнира.

const (
	// Единый пароль всех демо-игроков.
	DemoPassword = "demo1234"

	matchCount          = 12
	completedMatchCount = 6
	courtCount          = 4
)

func playerUsernames() []string {
	return []string{
		"john_doe", "jane_smith", "mike_ross", "sarah_connor", "tony_stark",
		"bruce_wayne", "peter_parker", "clark_kent", "diana_prince", "barry_allen",
		"hal_jordan", "wade_wilson", "steve_rogers", "natasha_romanoff", "clint_barton",
		"wanda_maximoff", "vision_android", "sam_wilson", "bucky_barnes", "scott_lang",
	}
}

// teamFixture описывает команду и полуинтервал [MemberLo, MemberHi)
// индексов игроков, входящих в её состав.
type teamFixture struct {
	Name     string
	MemberLo int
	MemberHi int
}

func teamFixtures() []teamFixture {
	return []teamFixture{
		{Name: "Raptors", MemberLo: 0, MemberHi: 4},
		{Name: "Warriors", MemberLo: 4, MemberHi: 8},
		{Name: "Lakers", MemberLo: 8, MemberHi: 12},
		{Name: "Bulls", MemberLo: 12, MemberHi: 16},
		{Name: "Heat", MemberLo: 16, MemberHi: 20},
		{Name: "Celtics", MemberLo: 0, MemberHi: 4},
		{Name: "Nets", MemberLo: 4, MemberHi: 8},
		{Name: "Mavericks", MemberLo: 8, MemberHi: 12},
	}
}

type announcementFixture struct {
	Title         string
	Content       string
	ExpiresInDays int
}

func announcementFixtures() []announcementFixture {
	return []announcementFixture{
		{
			Title:         "Welcome to DLS 2026!",
			Content:       "We are excited to announce the start of the 2026 tournament season. Register your teams now and compete for amazing prizes!",
			ExpiresInDays: 30,
		},
		{
			Title:         "New Tournament Rules",
			Content:       "Please review the updated tournament rules. All teams must comply with the new fair play guidelines.",
			ExpiresInDays: 15,
		},
		{
			Title:         "Prize Pool Increased!",
			Content:       "Great news! The prize pool for the Central Finest tournament has been increased to $10,000. Don't miss your chance to win!",
			ExpiresInDays: 20,
		},
		{
			Title:         "Registration Deadline Reminder",
			Content:       "Only 5 days left to register for the upcoming tournaments. Make sure your team is signed up before the deadline!",
			ExpiresInDays: 5,
		},
		{
			Title:         "Match Schedule Updated",
			Content:       "The match schedule has been updated. Please check your team's schedule and confirm your availability.",
			ExpiresInDays: 10,
		},
	}
}

// tournamentFixture ссылается на команды и матчи полуинтервалами индексов.
type tournamentFixture struct {
	Title            string
	StartOffsetDays  int
	EndOffsetDays    int
	EntryFee         float64
	TeamLo, TeamHi   int
	MatchLo, MatchHi int
}

func tournamentFixtures() []tournamentFixture {
	return []tournamentFixture{
		{Title: "Central Finest", StartOffsetDays: 0, EndOffsetDays: 30, EntryFee: 700.00, TeamLo: 0, TeamHi: 5, MatchLo: 0, MatchHi: 4},
		{Title: "Happy New 2026", StartOffsetDays: 10, EndOffsetDays: 40, EntryFee: 850.00, TeamLo: 2, TeamHi: 7, MatchLo: 4, MatchHi: 8},
		{Title: "Best of the Best", StartOffsetDays: 20, EndOffsetDays: 50, EntryFee: 1000.00, TeamLo: 3, TeamHi: 8, MatchLo: 8, MatchHi: 12},
		{Title: "Winter Championship", StartOffsetDays: 5, EndOffsetDays: 35, EntryFee: 500.00, TeamLo: 0, TeamHi: 6, MatchLo: 0, MatchHi: 0},
	}
}
