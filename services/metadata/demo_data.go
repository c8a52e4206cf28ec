package metadata

var (
	shawshank = tmdbMovie{
		ID: 278, Title: "The Shawshank Redemption", OriginalTitle: "The Shawshank Redemption",
		Overview:    "A banker is sentenced to life in prison for a crime he did not commit.",
		ReleaseDate: "1994-09-23", VoteAverage: 8.7, PosterPath: "/hBcY0fE9pfXzvVaY4GKarweriG2.jpg",
		OriginalLanguage: "en", GenreIDs: []int{18, 80}, Popularity: 99.9,
	}
	godfather = tmdbMovie{
		ID: 238, Title: "The Godfather", OriginalTitle: "The Godfather",
		Overview:    "The story of the Corleone mafia family.",
		ReleaseDate: "1972-03-24", VoteAverage: 8.7, PosterPath: "/oJagOzBu9Rdd9BrciseCm3U3MCU.jpg",
		OriginalLanguage: "en", GenreIDs: []int{18, 80}, Popularity: 99.8,
	}
	cityOfGod = tmdbMovie{
		ID: 598, Title: "City of God", OriginalTitle: "Cidade de Deus",
		Overview:    "Two boys growing up in a violent Rio de Janeiro neighbourhood take different paths.",
		ReleaseDate: "2002-08-30", VoteAverage: 8.6, PosterPath: "/k7eYdWvhYQyRQoU2TB2A2Xu2TfD.jpg",
		OriginalLanguage: "pt", GenreIDs: []int{18, 80}, Popularity: 95.5,
	}
	parasite = tmdbMovie{
		ID: 496243, Title: "Parasite", OriginalTitle: "기생충",
		Overview:    "A poor family schemes its way into the life of a wealthy one.",
		ReleaseDate: "2019-05-30", VoteAverage: 8.5, PosterPath: "/igw938inb6M5N2KLeq9KUF6pMOh.jpg",
		OriginalLanguage: "ko", GenreIDs: []int{35, 18, 53}, Popularity: 97.8,
	}
	spiritedAway = tmdbMovie{
		ID: 129, Title: "Spirited Away", OriginalTitle: "千と千尋の神隠し",
		Overview:    "A young girl wanders into a world of spirits.",
		ReleaseDate: "2001-07-20", VoteAverage: 8.5, PosterPath: "/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg",
		OriginalLanguage: "ja", GenreIDs: []int{16, 14, 12}, Popularity: 96.7,
	}
	fightClub = tmdbMovie{
		ID: 550, Title: "Fight Club", OriginalTitle: "Fight Club",
		Overview:    "A disillusioned office worker starts a secret fight club.",
		ReleaseDate: "1999-10-15", VoteAverage: 8.4, PosterPath: "/bptfVGEQuv6vDTIMVCHjJ9Dz8PX.jpg",
		OriginalLanguage: "en", GenreIDs: []int{18, 53}, Popularity: 95.5,
	}
	darkKnight = tmdbMovie{
		ID: 155, Title: "The Dark Knight", OriginalTitle: "The Dark Knight",
		Overview:    "Batman faces the Joker in Gotham City.",
		ReleaseDate: "2008-07-18", VoteAverage: 8.5, PosterPath: "/iGZX91hIqM9Uu0KGhd4MUaJ0Rtm.jpg",
		OriginalLanguage: "en", GenreIDs: []int{28, 18, 80}, Popularity: 98.2,
	}
	endgame = tmdbMovie{
		ID: 299534, Title: "Avengers: Endgame", OriginalTitle: "Avengers: Endgame",
		Overview:    "The Avengers try to undo what Thanos has done.",
		ReleaseDate: "2019-04-24", VoteAverage: 8.3, PosterPath: "/q6725aR8Zs4IwGMXzZT8aC8lh41.jpg",
		OriginalLanguage: "en", GenreIDs: []int{28, 12, 878}, Popularity: 99.5,
	}
	pulpFiction = tmdbMovie{
		ID: 680, Title: "Pulp Fiction", OriginalTitle: "Pulp Fiction",
		Overview:    "Interlocking stories of criminals in Los Angeles.",
		ReleaseDate: "1994-10-14", VoteAverage: 8.5, PosterPath: "/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg",
		OriginalLanguage: "en", GenreIDs: []int{28, 80, 53}, Popularity: 97.8,
	}
	eliteSquad = tmdbMovie{
		ID: 7347, Title: "Elite Squad", OriginalTitle: "Tropa de Elite",
		Overview:    "Captain Nascimento deals with violence and corruption in Rio de Janeiro.",
		ReleaseDate: "2007-10-05", VoteAverage: 8.0, PosterPath: "/7gLQpAqFpXHtEjjW0gKG6P2jF8h.jpg",
		OriginalLanguage: "pt", GenreIDs: []int{28, 18, 80}, Popularity: 90.2,
	}
	centralStation = tmdbMovie{
		ID: 2108, Title: "Central Station", OriginalTitle: "Central do Brasil",
		Overview:    "A former teacher helps a boy search for his father in the northeast of Brazil.",
		ReleaseDate: "1998-04-03", VoteAverage: 8.0, PosterPath: "/wN9q5Mf5rCg3C7d5qGqk9k2c2mB.jpg",
		OriginalLanguage: "pt", GenreIDs: []int{18}, Popularity: 87.3,
	}
	lifeIsBeautiful = tmdbMovie{
		ID: 637, Title: "Life Is Beautiful", OriginalTitle: "La vita è bella",
		Overview:    "A father shields his son from the horrors of a concentration camp.",
		ReleaseDate: "1997-12-20", VoteAverage: 8.5, PosterPath: "/74hLDKjD5aGYOotO6esUVaeISa2.jpg",
		OriginalLanguage: "it", GenreIDs: []int{18, 35, 10752}, Popularity: 93.2,
	}
	dogsWill = tmdbMovie{
		ID: 137113, Title: "A Dog's Will", OriginalTitle: "O Auto da Compadecida",
		Overview:    "The adventures of João Grilo and Chicó in the backlands of northeastern Brazil.",
		ReleaseDate: "2000-09-10", VoteAverage: 8.4, PosterPath: "/tq3klRjKMXJkM86a4CjQFt5cEMC.jpg",
		OriginalLanguage: "pt", GenreIDs: []int{35, 12, 14}, Popularity: 92.1,
	}
	amelie = tmdbMovie{
		ID: 194, Title: "Amélie", OriginalTitle: "Le Fabuleux Destin d'Amélie Poulain",
		Overview:    "A young woman in Paris sets out to change the lives of the people around her.",
		ReleaseDate: "2001-04-25", VoteAverage: 7.8, PosterPath: "/fNOH9f1aA3fPsg7bE6rC0boeY7j.jpg",
		OriginalLanguage: "fr", GenreIDs: []int{35, 10749}, Popularity: 85.4,
	}
	sevenSamurai = tmdbMovie{
		ID: 346, Title: "Seven Samurai", OriginalTitle: "七人の侍",
		Overview:    "A band of samurai defends a village from bandits.",
		ReleaseDate: "1954-04-26", VoteAverage: 8.5, PosterPath: "/8OKmBV5BUFzmozIC3pPWKHy17kx.jpg",
		OriginalLanguage: "ja", GenreIDs: []int{16, 18, 28}, Popularity: 88.9,
	}
	lionKing = tmdbMovie{
		ID: 8587, Title: "The Lion King", OriginalTitle: "The Lion King",
		Overview:    "A young lion sets out to reclaim his throne from his wicked uncle.",
		ReleaseDate: "1994-06-24", VoteAverage: 8.3, PosterPath: "/bKPtXn9n4M4s8vvZrbw40mYsefB.jpg",
		OriginalLanguage: "en", GenreIDs: []int{16, 18, 10751}, Popularity: 94.2,
	}
	interstellar = tmdbMovie{
		ID: 157336, Title: "Interstellar", OriginalTitle: "Interstellar",
		Overview:    "A team of explorers travels through a wormhole in space.",
		ReleaseDate: "2014-11-07", VoteAverage: 8.4, PosterPath: "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		OriginalLanguage: "en", GenreIDs: []int{878, 18, 12}, Popularity: 97.2,
	}
	inception = tmdbMovie{
		ID: 27205, Title: "Inception", OriginalTitle: "Inception",
		Overview:    "A thief steals corporate secrets using dream-sharing technology.",
		ReleaseDate: "2010-07-16", VoteAverage: 8.4, PosterPath: "/8IB2e4r4oVhHnANbnm7O3Tj6tF8.jpg",
		OriginalLanguage: "en", GenreIDs: []int{878, 28, 53}, Popularity: 96.8,
	}
	intouchables = tmdbMovie{
		ID: 77338, Title: "The Intouchables", OriginalTitle: "Intouchables",
		Overview:    "A quadriplegic millionaire hires a troubled young man as his caregiver.",
		ReleaseDate: "2011-11-02", VoteAverage: 8.3, PosterPath: "/4mFsNQwbD0F237Tx7gAPotd0nbJ.jpg",
		OriginalLanguage: "fr", GenreIDs: []int{10749, 18, 35}, Popularity: 92.1,
	}
	moodForLove = tmdbMovie{
		ID: 843, Title: "In the Mood for Love", OriginalTitle: "花樣年華",
		Overview:    "Two neighbours in 1960s Hong Kong fall quietly in love.",
		ReleaseDate: "2000-09-29", VoteAverage: 8.1, PosterPath: "/5LgC0qBVAHhJ5ZfBq8nFu5YQrHz.jpg",
		OriginalLanguage: "zh", GenreIDs: []int{10749, 18}, Popularity: 87.6,
	}
	oldboy = tmdbMovie{
		ID: 670, Title: "Oldboy", OriginalTitle: "올드보이",
		Overview:    "A man is imprisoned for fifteen years without knowing why.",
		ReleaseDate: "2003-11-21", VoteAverage: 8.3, PosterPath: "/rIZX6X0MIHYEebk6W4LABT9VP2c.jpg",
		OriginalLanguage: "ko", GenreIDs: []int{27, 18, 53}, Popularity: 91.4,
	}
	theHost = tmdbMovie{
		ID: 1255, Title: "The Host", OriginalTitle: "괴물",
		Overview:    "A monster emerges from the Han River and snatches a young girl.",
		ReleaseDate: "2006-07-27", VoteAverage: 7.0, PosterPath: "/7WsyChQLEftFiDOVTGkv3hFpyyt.jpg",
		OriginalLanguage: "ko", GenreIDs: []int{27, 878, 53}, Popularity: 84.7,
	}
	secretInEyes = tmdbMovie{
		ID: 25376, Title: "The Secret in Their Eyes", OriginalTitle: "El secreto de sus ojos",
		Overview:    "A court investigator revisits a murder committed twenty-five years earlier.",
		ReleaseDate: "2009-08-13", VoteAverage: 8.2, PosterPath: "/xmJGCwWyJ3B9R5b3ZrJx6l8QFbV.jpg",
		OriginalLanguage: "es", GenreIDs: []int{80, 18, 10749}, Popularity: 86.9,
	}
	casinoRoyale = tmdbMovie{
		ID: 36557, Title: "Casino Royale", OriginalTitle: "Casino Royale",
		Overview:    "James Bond's first mission as agent 007.",
		ReleaseDate: "2006-11-17", VoteAverage: 7.5, PosterPath: "/tGLO9zw5ZtCeyyWjJXoGsNtLaIu.jpg",
		OriginalLanguage: "en", GenreIDs: []int{12, 28, 53}, Popularity: 80.1,
	}
	kingsSpeech = tmdbMovie{
		ID: 45269, Title: "The King's Speech", OriginalTitle: "The King's Speech",
		Overview:    "King George VI overcomes his stammer with the help of a speech therapist.",
		ReleaseDate: "2010-12-10", VoteAverage: 7.7, PosterPath: "/k3to7QEdcDZqEBZNRAOMnP7u3u9.jpg",
		OriginalLanguage: "en", GenreIDs: []int{18, 36}, Popularity: 70.3,
	}
	furyRoad = tmdbMovie{
		ID: 76341, Title: "Mad Max: Fury Road", OriginalTitle: "Mad Max: Fury Road",
		Overview:    "Max joins a band of fugitives racing across the desert in a war rig.",
		ReleaseDate: "2015-05-15", VoteAverage: 7.6, PosterPath: "/k2jqWnEwLh8Q6qe8otkYtPMt0et.jpg",
		OriginalLanguage: "en", GenreIDs: []int{28, 12, 878}, Popularity: 88.0,
	}
	crocodileDundee = tmdbMovie{
		ID: 9671, Title: "Crocodile Dundee", OriginalTitle: "Crocodile Dundee",
		Overview:    "An American reporter travels to the Australian outback to interview a crocodile hunter.",
		ReleaseDate: "1986-09-26", VoteAverage: 6.4, PosterPath: "/fQ4dZiKJcHqyfG40sTfX8ucO7LD.jpg",
		OriginalLanguage: "en", GenreIDs: []int{12, 35}, Popularity: 40.2,
	}
	neverEndingStory = tmdbMovie{
		ID: 34584, Title: "The NeverEnding Story", OriginalTitle: "The NeverEnding Story",
		Overview:    "A boy discovers a magical book that carries him into a world of fantasy.",
		ReleaseDate: "1984-04-06", VoteAverage: 7.2, PosterPath: "/8g6gKx9ZzBRjV7bVmoOq1oU5aZS.jpg",
		OriginalLanguage: "en", GenreIDs: []int{12, 14, 10751}, Popularity: 55.7,
	}
	beautyAndBeast = tmdbMovie{
		ID: 10020, Title: "Beauty and the Beast", OriginalTitle: "Beauty and the Beast",
		Overview:    "A prince cursed to live as a beast must find true love.",
		ReleaseDate: "1991-11-22", VoteAverage: 7.6, PosterPath: "/mJrL3mp5M6pOvPzCb9e88oBE0P5.jpg",
		OriginalLanguage: "en", GenreIDs: []int{10749, 10751, 16, 14}, Popularity: 75.0,
	}
)

// demoCatalog is the built-in fallback catalog, keyed by fallback key.
var demoCatalog = map[string][]tmdbMovie{
	allKey: {shawshank, godfather, cityOfGod, parasite, spiritedAway, fightClub},

	genreKey(28):    {darkKnight, endgame, pulpFiction, eliteSquad},
	genreKey(18):    {shawshank, cityOfGod, centralStation, lifeIsBeautiful},
	genreKey(35):    {dogsWill, parasite, amelie},
	genreKey(16):    {spiritedAway, sevenSamurai, lionKing},
	genreKey(878):   {interstellar, inception},
	genreKey(10749): {intouchables, moodForLove},
	genreKey(27):    {oldboy, theHost},
	genreKey(80):    {godfather, secretInEyes},

	countryKey("BR"): {cityOfGod, eliteSquad},
	countryKey("GB"): {casinoRoyale, kingsSpeech},
	countryKey("AU"): {furyRoad, crocodileDundee},
	countryKey("CA"): {neverEndingStory, beautyAndBeast},
	countryKey("FR"): {amelie},
	countryKey("JP"): {spiritedAway},
	countryKey("KR"): {parasite},
}
