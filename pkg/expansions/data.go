package expansions

// Set 系列
type Set struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	ReleaseDate string `json:"releaseDate"`
}

// Expansion 世代，包含若干系列
type Expansion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

var catalogue = []Expansion{
	{
		ID:   "sv",
		Name: "Scarlet & Violet",
		Sets: []Set{
			{ID: "sv1", Name: "Scarlet & Violet", Code: "SV1", ReleaseDate: "2023-03-31"},
			{ID: "sv2", Name: "Paldea Evolved", Code: "SV2", ReleaseDate: "2023-06-09"},
			{ID: "sv3", Name: "Obsidian Flames", Code: "SV3", ReleaseDate: "2023-08-11"},
			{ID: "sv4", Name: "Paradox Rift", Code: "SV4", ReleaseDate: "2023-11-03"},
			{ID: "sv5", Name: "Temporal Forces", Code: "SV5", ReleaseDate: "2024-03-22"},
			{ID: "sv6", Name: "Twilight Masquerade", Code: "SV6", ReleaseDate: "2024-05-24"},
			{ID: "sv7", Name: "Stellar Crown", Code: "SV7", ReleaseDate: "2024-08-02"},
			{ID: "sv8", Name: "Surging Sparks", Code: "SV8", ReleaseDate: "2024-10-11"},
			{ID: "sv9", Name: "Journey Together", Code: "SV9", ReleaseDate: "2024-10-11"},
			{ID: "sv10", Name: "Destined Rivals", Code: "SV10", ReleaseDate: "2024-12-13"},
		},
	},
	{
		ID:   "swsh",
		Name: "Sword & Shield",
		Sets: []Set{
			{ID: "swsh1", Name: "Sword & Shield", Code: "SWSH1", ReleaseDate: "2020-02-07"},
			{ID: "swsh2", Name: "Rebel Clash", Code: "SWSH2", ReleaseDate: "2020-05-01"},
			{ID: "swsh3", Name: "Darkness Ablaze", Code: "SWSH3", ReleaseDate: "2020-08-14"},
			{ID: "swsh4", Name: "Vivid Voltage", Code: "SWSH4", ReleaseDate: "2020-11-13"},
			{ID: "swsh5", Name: "Battle Styles", Code: "SWSH5", ReleaseDate: "2021-03-19"},
			{ID: "swsh6", Name: "Chilling Reign", Code: "SWSH6", ReleaseDate: "2021-06-18"},
			{ID: "swsh7", Name: "Evolving Skies", Code: "SWSH7", ReleaseDate: "2021-08-27"},
			{ID: "swsh8", Name: "Fusion Strike", Code: "SWSH8", ReleaseDate: "2021-11-12"},
			{ID: "swsh9", Name: "Brilliant Stars", Code: "SWSH9", ReleaseDate: "2022-02-25"},
			{ID: "swsh10", Name: "Astral Radiance", Code: "SWSH10", ReleaseDate: "2022-05-27"},
			{ID: "swsh11", Name: "Lost Origin", Code: "SWSH11", ReleaseDate: "2022-09-09"},
			{ID: "swsh12", Name: "Silver Tempest", Code: "SWSH12", ReleaseDate: "2022-11-11"},
			{ID: "swsh13", Name: "Crown Zenith", Code: "SWSH13", ReleaseDate: "2023-01-20"},
		},
	},
	{
		ID:   "sm",
		Name: "Sun & Moon",
		Sets: []Set{
			{ID: "sm1", Name: "Sun & Moon", Code: "SM1", ReleaseDate: "2017-02-03"},
			{ID: "sm2", Name: "Guardians Rising", Code: "SM2", ReleaseDate: "2017-05-05"},
			{ID: "sm3", Name: "Burning Shadows", Code: "SM3", ReleaseDate: "2017-08-04"},
			{ID: "sm4", Name: "Crimson Invasion", Code: "SM4", ReleaseDate: "2017-11-03"},
			{ID: "sm5", Name: "Ultra Prism", Code: "SM5", ReleaseDate: "2018-02-02"},
			{ID: "sm6", Name: "Forbidden Light", Code: "SM6", ReleaseDate: "2018-05-04"},
			{ID: "sm7", Name: "Celestial Storm", Code: "SM7", ReleaseDate: "2018-08-03"},
			{ID: "sm8", Name: "Lost Thunder", Code: "SM8", ReleaseDate: "2018-11-02"},
			{ID: "sm9", Name: "Team Up", Code: "SM9", ReleaseDate: "2019-02-01"},
			{ID: "sm10", Name: "Detective Pikachu", Code: "SM10", ReleaseDate: "2019-04-05"},
			{ID: "sm11", Name: "Unbroken Bonds", Code: "SM11", ReleaseDate: "2019-05-03"},
			{ID: "sm12", Name: "Unified Minds", Code: "SM12", ReleaseDate: "2019-08-02"},
			{ID: "sm13", Name: "Hidden Fates", Code: "SM13", ReleaseDate: "2019-08-23"},
			{ID: "sm14", Name: "Cosmic Eclipse", Code: "SM14", ReleaseDate: "2019-11-01"},
		},
	},
	{
		ID:   "xy",
		Name: "X & Y",
		Sets: []Set{
			{ID: "xy1", Name: "X & Y", Code: "XY1", ReleaseDate: "2014-02-05"},
			{ID: "xy2", Name: "Flashfire", Code: "XY2", ReleaseDate: "2014-05-07"},
			{ID: "xy3", Name: "Furious Fists", Code: "XY3", ReleaseDate: "2014-08-13"},
			{ID: "xy4", Name: "Phantom Forces", Code: "XY4", ReleaseDate: "2014-11-05"},
			{ID: "xy5", Name: "Primal Clash", Code: "XY5", ReleaseDate: "2015-02-04"},
			{ID: "xy6", Name: "Roaring Skies", Code: "XY6", ReleaseDate: "2015-05-06"},
			{ID: "xy7", Name: "Ancient Origins", Code: "XY7", ReleaseDate: "2015-08-12"},
			{ID: "xy8", Name: "Breakthrough", Code: "XY8", ReleaseDate: "2015-11-04"},
			{ID: "xy9", Name: "Breakpoint", Code: "XY9", ReleaseDate: "2016-02-03"},
			{ID: "xy10", Name: "Fates Collide", Code: "XY10", ReleaseDate: "2016-05-04"},
			{ID: "xy11", Name: "Steam Siege", Code: "XY11", ReleaseDate: "2016-08-03"},
			{ID: "xy12", Name: "Evolutions", Code: "XY12", ReleaseDate: "2016-11-02"},
		},
	},
	{
		ID:   "bw",
		Name: "Black & White",
		Sets: []Set{
			{ID: "bw1", Name: "Black & White", Code: "BW1", ReleaseDate: "2011-04-25"},
			{ID: "bw2", Name: "Emerging Powers", Code: "BW2", ReleaseDate: "2011-08-31"},
			{ID: "bw3", Name: "Noble Victories", Code: "BW3", ReleaseDate: "2011-11-16"},
			{ID: "bw4", Name: "Next Destinies", Code: "BW4", ReleaseDate: "2012-02-08"},
			{ID: "bw5", Name: "Dark Explorers", Code: "BW5", ReleaseDate: "2012-05-09"},
			{ID: "bw6", Name: "Dragons Exalted", Code: "BW6", ReleaseDate: "2012-08-15"},
			{ID: "bw7", Name: "Boundaries Crossed", Code: "BW7", ReleaseDate: "2012-11-07"},
			{ID: "bw8", Name: "Plasma Storm", Code: "BW8", ReleaseDate: "2013-02-06"},
			{ID: "bw9", Name: "Plasma Freeze", Code: "BW9", ReleaseDate: "2013-05-08"},
			{ID: "bw10", Name: "Plasma Blast", Code: "BW10", ReleaseDate: "2013-08-14"},
			{ID: "bw11", Name: "Legendary Treasures", Code: "BW11", ReleaseDate: "2013-11-08"},
		},
	},
}
