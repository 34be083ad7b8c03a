package playlists

import "github.com/justestif/go-mood-playlists/internal/mood"

// staticPlaylist builds a catalog entry with a placeholder cover image.
func staticPlaylist(name, id, image string) Entry {
	return Entry{
		Name:  name,
		URL:   "https://open.spotify.com/playlist/" + id,
		Image: &image,
	}
}

// catalog is the curated fallback used when no live source is configured.
var catalog = map[mood.Bucket][]Entry{
	mood.Happy: {
		staticPlaylist("Happy Hits", "37i9dQZF1DXdPec7aLTmlC", "https://via.placeholder.com/300x300/FFD700/000000?text=Happy+Hits"),
		staticPlaylist("Feel Good Indie", "37i9dQZF1DX2sUQwD7tbmL", "https://via.placeholder.com/300x300/FF6B9D/000000?text=Feel+Good"),
		staticPlaylist("Mood Booster", "37i9dQZF1DX3rxVfibe1L0", "https://via.placeholder.com/300x300/00D4FF/000000?text=Mood+Booster"),
	},
	mood.Sad: {
		staticPlaylist("Life Sucks", "37i9dQZF1DX7qK8ma5wgG1", "https://via.placeholder.com/300x300/4169E1/FFFFFF?text=Sad+Songs"),
		staticPlaylist("Sad Indie", "37i9dQZF1DX59NCqCqJtoH", "https://via.placeholder.com/300x300/708090/FFFFFF?text=Sad+Indie"),
		staticPlaylist("Melancholy", "37i9dQZF1DWX83CujKHHOn", "https://via.placeholder.com/300x300/2F4F4F/FFFFFF?text=Melancholy"),
	},
	mood.Energetic: {
		staticPlaylist("Beast Mode", "37i9dQZF1DX76Wlfdnj7AP", "https://via.placeholder.com/300x300/FF4500/000000?text=Beast+Mode"),
		staticPlaylist("Power Workout", "37i9dQZF1DX70RN3TfWWJh", "https://via.placeholder.com/300x300/DC143C/000000?text=Power+Workout"),
		staticPlaylist("Adrenaline", "37i9dQZF1DX0pH2SQMRXnC", "https://via.placeholder.com/300x300/8B0000/FFFFFF?text=Adrenaline"),
	},
	mood.Calm: {
		staticPlaylist("Peaceful Piano", "37i9dQZF1DX4sWSpwq3LiO", "https://via.placeholder.com/300x300/87CEEB/000000?text=Peaceful+Piano"),
		staticPlaylist("Calm Vibes", "37i9dQZF1DWU0ScTcjJBdj", "https://via.placeholder.com/300x300/ADD8E6/000000?text=Calm+Vibes"),
		staticPlaylist("Relaxing Sounds", "37i9dQZF1DWZd79rJ6a7lp", "https://via.placeholder.com/300x300/B0E0E6/000000?text=Relaxing"),
	},
	mood.Excited: {
		staticPlaylist("Party Time", "37i9dQZF1DXaXB8fQg7xif", "https://via.placeholder.com/300x300/FF1493/000000?text=Party+Time"),
		staticPlaylist("Dance Party", "37i9dQZF1DX4dyzvuaRJ0n", "https://via.placeholder.com/300x300/FF69B4/000000?text=Dance+Party"),
		staticPlaylist("Energy Boost", "37i9dQZF1DX3Sp0P28SIer", "https://via.placeholder.com/300x300/FFB6C1/000000?text=Energy+Boost"),
	},
	mood.Chill: {
		staticPlaylist("Chill Hits", "37i9dQZF1DX4WYpdgoIcn6", "https://via.placeholder.com/300x300/9370DB/000000?text=Chill+Hits"),
		staticPlaylist("Lofi Beats", "37i9dQZF1DWWQRwui0ExPn", "https://via.placeholder.com/300x300/BA55D3/000000?text=Lofi+Beats"),
		staticPlaylist("Chill Vibes", "37i9dQZF1DX889U0CL85jj", "https://via.placeholder.com/300x300/DDA0DD/000000?text=Chill+Vibes"),
	},
	mood.Romantic: {
		staticPlaylist("Romantic", "37i9dQZF1DX50QitC6Oqtn", "https://via.placeholder.com/300x300/FF1493/FFFFFF?text=Romantic"),
		staticPlaylist("Love Songs", "37i9dQZF1DX0UrRvztWcAU", "https://via.placeholder.com/300x300/FF69B4/FFFFFF?text=Love+Songs"),
		staticPlaylist("Date Night", "37i9dQZF1DX4OzrY981I1W", "https://via.placeholder.com/300x300/FFB6C1/000000?text=Date+Night"),
	},
	mood.Dark: {
		staticPlaylist("Dark & Stormy", "37i9dQZF1DX0XUfTFmNBRM", "https://via.placeholder.com/300x300/2F4F4F/FFFFFF?text=Dark"),
		staticPlaylist("Metal", "37i9dQZF1DWWOaP4H0w5b0", "https://via.placeholder.com/300x300/000000/FFFFFF?text=Metal"),
		staticPlaylist("Rock Hard", "37i9dQZF1DWXRqgorJj26U", "https://via.placeholder.com/300x300/1C1C1C/FFFFFF?text=Rock+Hard"),
	},
}

// searchQueries lists candidate search phrases per bucket; the first is used.
var searchQueries = map[mood.Bucket][]string{
	mood.Happy:     {"happy", "feel good", "uplifting"},
	mood.Sad:       {"sad", "melancholy", "emotional"},
	mood.Energetic: {"workout", "energetic", "power"},
	mood.Calm:      {"calm", "peaceful", "relaxing"},
	mood.Excited:   {"party", "dance", "upbeat"},
	mood.Chill:     {"chill", "lofi", "relax"},
	mood.Romantic:  {"romantic", "love songs", "date night"},
	mood.Dark:      {"dark", "intense", "heavy"},
}
