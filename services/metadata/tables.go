package metadata

import (
	"strings"

	"cineworld/models"
)

const (
	unknownCountryLabel  = "International"
	unknownLanguageLabel = "Other language"
)

// languageEntry ties an ISO 639-1 code to the labels shown next to a movie.
// country is a guess from the language alone (every English film reads
// "USA/UK"); it is a display label, not production data.
type languageEntry struct {
	code    string
	name    string
	country string
}

var languageTable = []languageEntry{
	{"pt", "Portuguese", "Brazil/Portugal"},
	{"en", "English", "USA/UK"},
	{"es", "Spanish", "Spain/Mexico/Argentina"},
	{"fr", "French", "France/Canada"},
	{"de", "German", "Germany/Austria"},
	{"it", "Italian", "Italy"},
	{"ja", "Japanese", "Japan"},
	{"ko", "Korean", "South Korea"},
	{"zh", "Chinese", "China/Taiwan"},
	{"hi", "Hindi", "India"},
	{"ru", "Russian", "Russia"},
	{"ar", "Arabic", "Egypt/Saudi Arabia"},
	{"nl", "Dutch", "Netherlands"},
	{"sv", "Swedish", "Sweden"},
	{"no", "Norwegian", "Norway"},
	{"da", "Danish", "Denmark"},
	{"fi", "Finnish", "Finland"},
	{"pl", "Polish", "Poland"},
	{"cs", "Czech", "Czech Republic"},
	{"hu", "Hungarian", "Hungary"},
	{"tr", "Turkish", "Turkey"},
	{"th", "Thai", "Thailand"},
}

var languagesByCode = func() map[string]languageEntry {
	m := make(map[string]languageEntry, len(languageTable))
	for _, e := range languageTable {
		m[e.code] = e
	}
	return m
}()

// CountryFromLanguage returns the approximate production-country label for a language code.
func CountryFromLanguage(code string) string {
	if e, ok := languagesByCode[strings.ToLower(strings.TrimSpace(code))]; ok {
		return e.country
	}
	return unknownCountryLabel
}

// LanguageName returns the display name for a language code.
func LanguageName(code string) string {
	if e, ok := languagesByCode[strings.ToLower(strings.TrimSpace(code))]; ok {
		return e.name
	}
	return unknownLanguageLabel
}

// countryLanguages is the primary-language hint used for country discovery.
var countryLanguages = map[string]string{
	"BR": "pt",
	"US": "en",
	"GB": "en",
	"AU": "en",
	"CA": "en",
	"FR": "fr",
	"JP": "ja",
	"KR": "ko",
	"DE": "de",
	"IT": "it",
	"ES": "es",
	"MX": "es",
	"IN": "hi",
}

// PrimaryLanguage returns the language hint for a country, or "" when none is known.
func PrimaryLanguage(countryCode string) string {
	return countryLanguages[strings.ToUpper(strings.TrimSpace(countryCode))]
}

// AllGenresID is the sentinel genre id meaning "no genre filter".
const AllGenresID = 0

var genreTable = []models.Genre{
	{ID: AllGenresID, Name: "All Movies", Description: "Movies from every genre", Icon: "🎬", Color: "#4361ee"},
	{ID: 28, Name: "Action", Description: "Adrenaline, chases and fights", Icon: "💥", Color: "#e63946"},
	{ID: 12, Name: "Adventure", Description: "Exploration and thrilling journeys", Icon: "🧭", Color: "#2a9d8f"},
	{ID: 16, Name: "Animation", Description: "Animated films for all ages", Icon: "🐭", Color: "#e9c46a"},
	{ID: 35, Name: "Comedy", Description: "Films to laugh and have fun with", Icon: "😂", Color: "#f4a261"},
	{ID: 80, Name: "Crime", Description: "Investigations and criminal schemes", Icon: "🕵️", Color: "#264653"},
	{ID: 99, Name: "Documentary", Description: "Films based on real events", Icon: "📽️", Color: "#457b9d"},
	{ID: 18, Name: "Drama", Description: "Moving and profound stories", Icon: "🎭", Color: "#6d6875"},
	{ID: 10751, Name: "Family", Description: "Films to watch with the whole family", Icon: "👨‍👩‍👧‍👦", Color: "#ffafcc"},
	{ID: 14, Name: "Fantasy", Description: "Magic and imaginary worlds", Icon: "🧙", Color: "#7209b7"},
	{ID: 36, Name: "History", Description: "Films based on historical events", Icon: "📜", Color: "#bc6c25"},
	{ID: 27, Name: "Horror", Description: "Frightening and suspenseful films", Icon: "👻", Color: "#3a0ca3"},
	{ID: 10402, Name: "Music", Description: "Films about music and musicians", Icon: "🎵", Color: "#ff006e"},
	{ID: 9648, Name: "Mystery", Description: "Riddles and secrets", Icon: "🔍", Color: "#0077b6"},
	{ID: 10749, Name: "Romance", Description: "Love and relationships", Icon: "❤️", Color: "#e63946"},
	{ID: 878, Name: "Science Fiction", Description: "Technology and the future", Icon: "🚀", Color: "#4cc9f0"},
	{ID: 10770, Name: "TV Movie", Description: "Films made for television", Icon: "📺", Color: "#9d4edd"},
	{ID: 53, Name: "Thriller", Description: "Suspense and tension", Icon: "😱", Color: "#003049"},
	{ID: 10752, Name: "War", Description: "Films about military conflict", Icon: "⚔️", Color: "#780000"},
	{ID: 37, Name: "Western", Description: "Cowboys and the old west", Icon: "🤠", Color: "#d4a373"},
}

var countryTable = []models.Country{
	{Code: "BR", Name: "Brazil", Flag: "🇧🇷", Description: "Brazilian cinema"},
	{Code: "US", Name: "United States", Flag: "🇺🇸", Description: "Hollywood"},
	{Code: "GB", Name: "United Kingdom", Flag: "🇬🇧", Description: "British cinema"},
	{Code: "AU", Name: "Australia", Flag: "🇦🇺", Description: "Australian cinema"},
	{Code: "CA", Name: "Canada", Flag: "🇨🇦", Description: "Canadian cinema"},
	{Code: "FR", Name: "France", Flag: "🇫🇷", Description: "French cinema"},
	{Code: "JP", Name: "Japan", Flag: "🇯🇵", Description: "Japanese cinema"},
	{Code: "KR", Name: "South Korea", Flag: "🇰🇷", Description: "Korean cinema"},
	{Code: "DE", Name: "Germany", Flag: "🇩🇪", Description: "German cinema"},
	{Code: "IT", Name: "Italy", Flag: "🇮🇹", Description: "Italian cinema"},
	{Code: "ES", Name: "Spain", Flag: "🇪🇸", Description: "Spanish cinema"},
	{Code: "MX", Name: "Mexico", Flag: "🇲🇽", Description: "Mexican cinema"},
	{Code: "IN", Name: "India", Flag: "🇮🇳", Description: "Bollywood"},
}

// Genres returns the ordered genre list, "all" first.
func Genres() []models.Genre {
	out := make([]models.Genre, len(genreTable))
	copy(out, genreTable)
	return out
}

// Countries returns the ordered country list.
func Countries() []models.Country {
	out := make([]models.Country, len(countryTable))
	copy(out, countryTable)
	return out
}

// LookupGenre finds a genre by id.
func LookupGenre(id int) (models.Genre, bool) {
	for _, g := range genreTable {
		if g.ID == id {
			return g, true
		}
	}
	return models.Genre{}, false
}

// LookupCountry finds a country by its alpha-2 code.
func LookupCountry(code string) (models.Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range countryTable {
		if c.Code == code {
			return c, true
		}
	}
	return models.Country{}, false
}
