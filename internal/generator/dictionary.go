package generator

// Word pools and naming templates used to build game titles and studio
// names. Kept small on purpose; uniqueness is enforced by the generator,
// not by pool size.

var words = map[string][]string{
	"adjectives": {
		"Shadow", "Dark", "Epic", "Golden", "Mystic", "Silent", "Crimson",
		"Frozen", "Eternal", "Savage", "Hidden", "Burning", "Forgotten",
	},
	"nouns": {
		"Realm", "Kingdom", "Dragon", "Phoenix", "Warrior", "Empire",
		"Dungeon", "Horizon", "Legacy", "Frontier", "Citadel", "Abyss",
	},
	"mythical_creatures": {
		"Dragon", "Phoenix", "Griffin", "Unicorn", "Hydra", "Kraken",
	},
	"colors": {
		"Red", "Blue", "Black", "White", "Golden", "Silver",
	},
	"prefixes": {
		"Shadow", "Dark", "Epic", "Golden", "Iron", "Storm",
	},
	"locations": {
		"Forest", "Mountain", "Castle", "Temple", "Harbor", "Wasteland",
	},
	"subtitles": {
		"Awakening", "Rebirth", "Origins", "Legacy", "Reckoning", "Exodus",
	},
	"roman_numerals": {
		"II", "III", "IV", "V", "VI",
	},
	"studio_suffixes": {
		"Games", "Studios", "Interactive", "Entertainment", "Works",
	},
	"edition_suffixes": {
		"HD", "Remastered", "Definitive Edition", "Game of the Year Edition",
	},
	"verbs": {
		"Rising", "Falling", "Awakening", "Hunting", "Burning",
	},
}

var gameTitleTemplates = []string{
	"{adjective} {noun}",
	"The {adjective} {noun}",
	"{noun} {roman_numeral}",
	"{mythical} {noun}",
	"{noun} of the {location}",
	"{prefix} {noun}: {subtitle}",
	"{color} {mythical}",
}

var studioNameTemplates = []string{
	"{word1} {word2} {suffix}",
	"{word1} {suffix}",
}

// Per-genre tag pools, plus cross-genre extras appended at random.
var genreTags = map[string][]string{
	"Action":             {"action", "fast-paced", "combat", "adventure"},
	"Role-Playing (RPG)": {"rpg", "story-rich", "character-development", "quests"},
	"Adventure":          {"adventure", "exploration", "puzzle", "narrative"},
	"Strategy":           {"strategy", "tactical", "resource-management"},
	"Simulation":         {"simulation", "realistic", "management", "sandbox"},
	"Sports":             {"sports", "competitive", "realistic", "team-based"},
	"Shooter":            {"shooter", "fps", "multiplayer", "competitive"},
	"Racing":             {"racing", "driving", "simulation", "arcade"},
	"Puzzle":             {"puzzle", "casual", "brain-teaser", "logic"},
}

var extraTags = []string{
	"multiplayer", "singleplayer", "co-op", "online",
	"offline", "vr", "controller-friendly", "moddable",
}

type weighted struct {
	value  string
	weight float64
}

// Player country split loosely follows published Steam statistics.
var userCountryDistribution = []weighted{
	{"US", 0.142}, {"CN", 0.118}, {"RU", 0.096}, {"DE", 0.054},
	{"BR", 0.047}, {"GB", 0.037}, {"FR", 0.036}, {"TR", 0.035},
	{"PL", 0.034}, {"CA", 0.027}, {"JP", 0.024}, {"UA", 0.021},
	{"AU", 0.020}, {"TW", 0.019}, {"NL", 0.019}, {"KR", 0.018},
	{"SE", 0.017}, {"IT", 0.016}, {"CZ", 0.015}, {"RO", 0.014},
}

var developerCountryDistribution = []weighted{
	{"US", 0.35}, {"JP", 0.15}, {"DE", 0.10}, {"GB", 0.08},
	{"CA", 0.07}, {"FR", 0.06}, {"PL", 0.05}, {"RU", 0.04},
	{"UA", 0.03}, {"KR", 0.03}, {"CN", 0.02}, {"AU", 0.02},
}

var genreDistribution = []weighted{
	{"Action", 0.22},
	{"Role-Playing (RPG)", 0.18},
	{"Adventure", 0.15},
	{"Strategy", 0.12},
	{"Simulation", 0.10},
	{"Sports", 0.08},
	{"Shooter", 0.07},
	{"Racing", 0.04},
	{"Puzzle", 0.04},
}

var ageRatingDistribution = []weighted{
	{"3+", 0.05},
	{"7+", 0.15},
	{"12+", 0.40},
	{"16+", 0.30},
	{"18+", 0.10},
}

var monetizationDistribution = []weighted{
	{"free", 0.25},
	{"paid", 0.75},
}

var countryRegions = map[string][]string{
	"US": {"California", "New York", "Texas", "Florida"},
	"RU": {"Moscow", "Saint Petersburg", "Novosibirsk"},
	"DE": {"Berlin", "Bavaria", "Hamburg"},
	"CN": {"Guangdong", "Beijing", "Shanghai"},
	"BR": {"São Paulo", "Rio de Janeiro", "Minas Gerais"},
}
