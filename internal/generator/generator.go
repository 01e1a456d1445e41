// Package generator produces synthetic storefront data: users, studios,
// and games with realistic country, genre, and pricing distributions.
// All output is unique within a generator instance; IDs are handed out
// sequentially so batches can be inserted without collisions.
package generator

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/playdeck/storefront/internal/entities"
)

// releaseInterval is the typical gap between two titles from the same
// studio; actual dates vary by up to releaseJitter around it.
const (
	releaseInterval = 730 * 24 * time.Hour
	releaseJitter   = 90
	maxFutureDays   = 180
)

type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	faker *gofakeit.Faker

	usernames   map[string]struct{}
	emails      map[string]struct{}
	studioNames map[string]struct{}
	gameTitles  map[string]struct{}

	lastRelease map[uint]time.Time

	nextUserID      uint
	nextDeveloperID uint
	nextGameID      uint
}

// New creates a generator seeded for reproducible output. IDs start at 1;
// use SetNextIDs when appending to an existing dataset.
func New(seed int64) *Generator {
	return &Generator{
		rng:             rand.New(rand.NewSource(seed)),
		faker:           gofakeit.New(uint64(seed)),
		usernames:       make(map[string]struct{}),
		emails:          make(map[string]struct{}),
		studioNames:     make(map[string]struct{}),
		gameTitles:      make(map[string]struct{}),
		lastRelease:     make(map[uint]time.Time),
		nextUserID:      1,
		nextDeveloperID: 1,
		nextGameID:      1,
	}
}

// SetNextIDs aligns the ID counters with an existing dataset.
func (g *Generator) SetNextIDs(user, developer, game uint) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if user > 0 {
		g.nextUserID = user
	}
	if developer > 0 {
		g.nextDeveloperID = developer
	}
	if game > 0 {
		g.nextGameID = game
	}
}

// NewUser builds a user registered at the given time.
func (g *Generator) NewUser(now time.Time) *entities.User {
	g.mu.Lock()
	defer g.mu.Unlock()

	country, region := g.countryRegion()
	user := &entities.User{
		UserID:           g.nextUserID,
		Username:         g.username(),
		Email:            g.email(),
		CountryCode:      country,
		Region:           region,
		RegistrationDate: now,
		TotalSpent:       0,
	}
	g.nextUserID++
	return user
}

// NewUsers builds a batch of users registered at the given time.
func (g *Generator) NewUsers(count int, now time.Time) []*entities.User {
	users := make([]*entities.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, g.NewUser(now))
	}
	return users
}

// NewDeveloper builds a studio founded in the given year.
func (g *Generator) NewDeveloper(now time.Time) *entities.Developer {
	g.mu.Lock()
	defer g.mu.Unlock()

	studio := g.studioName()
	year := now.Year()
	dev := &entities.Developer{
		DeveloperID:    g.nextDeveloperID,
		StudioName:     studio,
		CountryCode:    g.choose(developerCountryDistribution),
		FoundationYear: &year,
		TotalRevenue:   0,
		ContactEmail:   studioEmail(studio),
	}
	g.nextDeveloperID++
	return dev
}

// NewDevelopers builds a batch of studios.
func (g *Generator) NewDevelopers(count int, now time.Time) []*entities.Developer {
	devs := make([]*entities.Developer, 0, count)
	for i := 0; i < count; i++ {
		devs = append(devs, g.NewDeveloper(now))
	}
	return devs
}

// NewGame builds a game for the given developer. Release dates advance
// roughly one title every two years per studio.
func (g *Generator) NewGame(now time.Time, developerID uint) *entities.Game {
	g.mu.Lock()
	defer g.mu.Unlock()

	monetization := entities.MonetizationType(g.choose(monetizationDistribution))
	var price float64
	if monetization == entities.MonetizationPaid {
		price = round2(math.Max(g.rng.NormFloat64()*12+15, 1))
	}

	genre, tags := g.genre()
	game := &entities.Game{
		GameID:           g.nextGameID,
		Title:            g.gameTitle(),
		DeveloperID:      developerID,
		ReleaseDate:      g.releaseDate(now, developerID),
		BasePrice:        price,
		CurrentPrice:     price,
		MonetizationType: monetization,
		GenreMain:        genre,
		GenreTags:        tags,
		AgeRating:        g.choose(ageRatingDistribution),
		TotalPurchases:   0,
		IsActive:         true,
	}
	g.nextGameID++
	return game
}

// NewGames builds a batch of games for the given developer.
func (g *Generator) NewGames(count int, now time.Time, developerID uint) []*entities.Game {
	games := make([]*entities.Game, 0, count)
	for i := 0; i < count; i++ {
		games = append(games, g.NewGame(now, developerID))
	}
	return games
}

func (g *Generator) username() string {
	name := strings.ToLower(g.faker.Username())
	name = strings.ReplaceAll(name, "-", "_")
	for {
		if _, taken := g.usernames[name]; !taken {
			break
		}
		name += fmt.Sprintf("%d", g.rng.Intn(9)+1)
	}
	g.usernames[name] = struct{}{}
	return name
}

func (g *Generator) email() string {
	email := g.faker.Email()
	for {
		if _, taken := g.emails[email]; !taken {
			break
		}
		email = fmt.Sprintf("%d%s", g.rng.Intn(100), g.faker.Email())
	}
	g.emails[email] = struct{}{}
	return email
}

func (g *Generator) countryRegion() (string, string) {
	country := g.choose(userCountryDistribution)
	regions, ok := countryRegions[country]
	if !ok {
		return country, "Central"
	}
	return country, regions[g.rng.Intn(len(regions))]
}

func (g *Generator) studioName() string {
	template := studioNameTemplates[g.rng.Intn(len(studioNameTemplates))]
	wordPools := []string{"adjectives", "nouns", "prefixes", "locations", "colors"}

	name := template
	name = strings.Replace(name, "{word1}", g.word(wordPools[g.rng.Intn(len(wordPools))]), 1)
	name = strings.Replace(name, "{word2}", g.word(wordPools[g.rng.Intn(len(wordPools))]), 1)
	name = strings.Replace(name, "{suffix}", g.word("studio_suffixes"), 1)
	name = titleCase(name)

	if g.rng.Float64() < 0.3 {
		legal := []string{"Inc.", "LLC", "Corp.", "Ltd."}
		name = name + " " + legal[g.rng.Intn(len(legal))]
	}

	for {
		if _, taken := g.studioNames[name]; !taken {
			break
		}
		name += fmt.Sprintf("%d", g.rng.Intn(9)+1)
	}
	g.studioNames[name] = struct{}{}
	return name
}

func (g *Generator) gameTitle() string {
	template := gameTitleTemplates[g.rng.Intn(len(gameTitleTemplates))]

	replacements := map[string]string{
		"{adjective}":     g.word("adjectives"),
		"{noun}":          g.word("nouns"),
		"{mythical}":      g.word("mythical_creatures"),
		"{color}":         g.word("colors"),
		"{prefix}":        g.word("prefixes"),
		"{verb}":          g.word("verbs"),
		"{location}":      g.word("locations"),
		"{subtitle}":      g.word("subtitles"),
		"{roman_numeral}": g.word("roman_numerals"),
	}

	title := template
	for placeholder, value := range replacements {
		title = strings.ReplaceAll(title, placeholder, value)
	}
	title = titleCase(title)

	if g.rng.Float64() < 0.1 {
		title = title + " - " + g.word("edition_suffixes")
	}

	for {
		if _, taken := g.gameTitles[title]; !taken {
			break
		}
		title += fmt.Sprintf("%d", g.rng.Intn(9)+1)
	}
	g.gameTitles[title] = struct{}{}
	return title
}

// genre picks a main genre and a JSON-encoded tag list drawn from the
// genre's pool plus at most one cross-genre extra.
func (g *Generator) genre() (string, string) {
	genre := g.choose(genreDistribution)
	pool := genreTags[genre]

	count := g.rng.Intn(3) + 2
	if count > len(pool) {
		count = len(pool)
	}
	picked := make([]string, len(pool))
	copy(picked, pool)
	g.rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	tags := picked[:count]

	if g.rng.Float64() < 0.7 && len(tags) < 4 {
		tags = append(tags, extraTags[g.rng.Intn(len(extraTags))])
	}

	encoded, _ := json.Marshal(tags)
	return genre, string(encoded)
}

func (g *Generator) releaseDate(now time.Time, developerID uint) time.Time {
	release := now
	if last, ok := g.lastRelease[developerID]; ok {
		jitter := time.Duration(g.rng.Intn(2*releaseJitter)-releaseJitter) * 24 * time.Hour
		release = last.Add(releaseInterval + jitter)

		maxFuture := now.Add(maxFutureDays * 24 * time.Hour)
		if release.After(maxFuture) {
			release = maxFuture
		}
	}
	g.lastRelease[developerID] = release
	return release
}

func (g *Generator) word(category string) string {
	pool := words[category]
	return pool[g.rng.Intn(len(pool))]
}

// choose picks a value from a weighted distribution.
func (g *Generator) choose(dist []weighted) string {
	total := 0.0
	for _, w := range dist {
		total += w.weight
	}
	target := g.rng.Float64() * total
	for _, w := range dist {
		target -= w.weight
		if target <= 0 {
			return w.value
		}
	}
	return dist[len(dist)-1].value
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func studioEmail(studio string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(studio) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String() + "@gmail.com"
}

var smallWords = map[string]struct{}{
	"the": {}, "of": {}, "and": {}, "to": {}, "in": {},
	"for": {}, "on": {}, "at": {}, "by": {},
}

func titleCase(text string) string {
	parts := strings.Fields(text)
	for i, part := range parts {
		lower := strings.ToLower(part)
		if _, small := smallWords[lower]; small && i > 0 {
			parts[i] = lower
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
