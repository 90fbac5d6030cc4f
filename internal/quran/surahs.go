package quran

// Surah holds metadata for a single chapter of the Quran.
type Surah struct {
	Number   int
	Name     string
	Verses   int
	Variants []string
}

// surahs contains all 114 chapters in canonical order with their verse
// counts in the standard Uthmani (Hafs) numbering.
var surahs = []Surah{
	{1, "Al-Fatihah", 7, []string{"Al-Fatiha", "Fatiha", "Al-Fateha"}},
	{2, "Al-Baqarah", 286, []string{"Al-Baqara", "Baqarah"}},
	{3, "Ali 'Imran", 200, []string{"Al-Imran", "Aal-E-Imran", "Aal Imran", "Al 'Imran", "Ale Imran"}},
	{4, "An-Nisa", 176, []string{"An-Nisa'", "Al-Nisa", "Nisa"}},
	{5, "Al-Ma'idah", 120, []string{"Al-Maidah", "Al-Ma'ida"}},
	{6, "Al-An'am", 165, []string{"Al-Anam", "Al-An'aam"}},
	{7, "Al-A'raf", 206, []string{"Al-Araf", "Al-A'raaf"}},
	{8, "Al-Anfal", 75, nil},
	{9, "At-Tawbah", 129, []string{"At-Taubah", "At-Tauba", "Al-Tawba", "Bara'ah"}},
	{10, "Yunus", 109, []string{"Younus"}},
	{11, "Hud", 123, []string{"Hood"}},
	{12, "Yusuf", 111, []string{"Yousuf", "Yusef"}},
	{13, "Ar-Ra'd", 43, []string{"Ar-Rad", "Al-Ra'd"}},
	{14, "Ibrahim", 52, []string{"Ibraheem"}},
	{15, "Al-Hijr", 99, nil},
	{16, "An-Nahl", 128, nil},
	{17, "Al-Isra", 111, []string{"Al-Isra'", "Bani Isra'il", "Bani Israel"}},
	{18, "Al-Kahf", 110, nil},
	{19, "Maryam", 98, []string{"Mariam"}},
	{20, "Ta-Ha", 135, []string{"Taha", "Ta Ha"}},
	{21, "Al-Anbiya", 112, []string{"Al-Anbiya'"}},
	{22, "Al-Hajj", 78, nil},
	{23, "Al-Mu'minun", 118, []string{"Al-Muminun", "Al-Mu'minoon"}},
	{24, "An-Nur", 64, []string{"An-Noor"}},
	{25, "Al-Furqan", 77, nil},
	{26, "Ash-Shu'ara", 227, []string{"Ash-Shuara", "Ash-Shu'ara'"}},
	{27, "An-Naml", 93, nil},
	{28, "Al-Qasas", 88, nil},
	{29, "Al-'Ankabut", 69, []string{"Al-Ankabut"}},
	{30, "Ar-Rum", 60, []string{"Ar-Room"}},
	{31, "Luqman", 34, []string{"Luqmaan"}},
	{32, "As-Sajdah", 30, []string{"As-Sajda"}},
	{33, "Al-Ahzab", 73, nil},
	{34, "Saba", 54, []string{"Saba'"}},
	{35, "Fatir", 45, []string{"Al-Mala'ikah"}},
	{36, "Ya-Sin", 83, []string{"Yaseen", "Yasin", "Ya Seen"}},
	{37, "As-Saffat", 182, []string{"As-Saaffat"}},
	{38, "Sad", 88, []string{"Saad"}},
	{39, "Az-Zumar", 75, nil},
	{40, "Ghafir", 85, []string{"Al-Mu'min"}},
	{41, "Fussilat", 54, []string{"Ha-Mim Sajdah"}},
	{42, "Ash-Shura", 53, nil},
	{43, "Az-Zukhruf", 89, nil},
	{44, "Ad-Dukhan", 59, nil},
	{45, "Al-Jathiyah", 37, []string{"Al-Jathiya"}},
	{46, "Al-Ahqaf", 35, nil},
	{47, "Muhammad", 38, nil},
	{48, "Al-Fath", 29, nil},
	{49, "Al-Hujurat", 18, nil},
	{50, "Qaf", 45, nil},
	{51, "Adh-Dhariyat", 60, []string{"Az-Zariyat"}},
	{52, "At-Tur", 49, []string{"At-Toor"}},
	{53, "An-Najm", 62, nil},
	{54, "Al-Qamar", 55, nil},
	{55, "Ar-Rahman", 78, []string{"Ar-Rahmaan", "Al-Rahman"}},
	{56, "Al-Waqi'ah", 96, []string{"Al-Waqiah", "Al-Waqi'a"}},
	{57, "Al-Hadid", 29, []string{"Al-Hadeed"}},
	{58, "Al-Mujadila", 22, []string{"Al-Mujadilah", "Al-Mujadalah", "Al-Mujadala"}},
	{59, "Al-Hashr", 24, nil},
	{60, "Al-Mumtahanah", 13, []string{"Al-Mumtahina"}},
	{61, "As-Saff", 14, nil},
	{62, "Al-Jumu'ah", 11, []string{"Al-Jumuah", "Al-Jumua"}},
	{63, "Al-Munafiqun", 11, []string{"Al-Munafiqoon"}},
	{64, "At-Taghabun", 18, nil},
	{65, "At-Talaq", 12, nil},
	{66, "At-Tahrim", 12, []string{"At-Tahreem"}},
	{67, "Al-Mulk", 30, nil},
	{68, "Al-Qalam", 52, []string{"Nun"}},
	{69, "Al-Haqqah", 52, []string{"Al-Haaqqa"}},
	{70, "Al-Ma'arij", 44, []string{"Al-Maarij"}},
	{71, "Nuh", 28, []string{"Nooh"}},
	{72, "Al-Jinn", 28, nil},
	{73, "Al-Muzzammil", 20, nil},
	{74, "Al-Muddaththir", 56, []string{"Al-Muddathir"}},
	{75, "Al-Qiyamah", 40, []string{"Al-Qiyama"}},
	{76, "Al-Insan", 31, []string{"Ad-Dahr"}},
	{77, "Al-Mursalat", 50, nil},
	{78, "An-Naba", 40, []string{"An-Naba'"}},
	{79, "An-Nazi'at", 46, []string{"An-Naziat"}},
	{80, "'Abasa", 42, []string{"Abasa"}},
	{81, "At-Takwir", 29, nil},
	{82, "Al-Infitar", 19, nil},
	{83, "Al-Mutaffifin", 36, []string{"Al-Mutaffifeen"}},
	{84, "Al-Inshiqaq", 25, nil},
	{85, "Al-Buruj", 22, []string{"Al-Burooj"}},
	{86, "At-Tariq", 17, nil},
	{87, "Al-A'la", 19, []string{"Al-Ala"}},
	{88, "Al-Ghashiyah", 26, nil},
	{89, "Al-Fajr", 30, nil},
	{90, "Al-Balad", 20, nil},
	{91, "Ash-Shams", 15, nil},
	{92, "Al-Layl", 21, []string{"Al-Lail"}},
	{93, "Ad-Duha", 11, []string{"Ad-Dhuha"}},
	{94, "Ash-Sharh", 8, []string{"Al-Inshirah", "Ash-Sharh (Al-Inshirah)"}},
	{95, "At-Tin", 8, []string{"At-Teen"}},
	{96, "Al-'Alaq", 19, []string{"Al-Alaq", "Iqra"}},
	{97, "Al-Qadr", 5, nil},
	{98, "Al-Bayyinah", 8, nil},
	{99, "Az-Zalzalah", 8, []string{"Az-Zilzal"}},
	{100, "Al-'Adiyat", 11, []string{"Al-Adiyat"}},
	{101, "Al-Qari'ah", 11, []string{"Al-Qariah"}},
	{102, "At-Takathur", 8, nil},
	{103, "Al-'Asr", 3, []string{"Al-Asr"}},
	{104, "Al-Humazah", 9, nil},
	{105, "Al-Fil", 5, []string{"Al-Feel"}},
	{106, "Quraysh", 4, []string{"Quraish"}},
	{107, "Al-Ma'un", 7, []string{"Al-Maun"}},
	{108, "Al-Kawthar", 3, []string{"Al-Kauthar", "Al-Kausar"}},
	{109, "Al-Kafirun", 6, []string{"Al-Kafiroon"}},
	{110, "An-Nasr", 3, nil},
	{111, "Al-Masad", 5, []string{"Al-Lahab"}},
	{112, "Al-Ikhlas", 4, []string{"Al-Ikhlaas"}},
	{113, "Al-Falaq", 5, nil},
	{114, "An-Nas", 6, []string{"An-Naas"}},
}

// byName maps a normalized chapter name or variant to its number. Each name
// is also indexed with its apostrophes dropped, unless that key is already a
// name of its own.
var byName = func() map[string]int {
	m := make(map[string]int, len(surahs)*4)
	bare := make(map[string]int)
	add := func(name string, n int) {
		key := normalizeName(name)
		m[key] = n
		if _, ok := bare[dropApostrophes(key)]; !ok {
			bare[dropApostrophes(key)] = n
		}
	}
	for _, s := range surahs {
		add(s.Name, s.Number)
		for _, v := range s.Variants {
			add(v, s.Number)
		}
	}
	for key, n := range bare {
		if _, ok := m[key]; !ok {
			m[key] = n
		}
	}
	return m
}()

// Count returns the number of chapters in the table.
func Count() int { return len(surahs) }

// VersesIn returns the verse count of surah n, or 0 if n is out of range.
func VersesIn(n int) int {
	if n < 1 || n > len(surahs) {
		return 0
	}
	return surahs[n-1].Verses
}

// Name returns the canonical transliterated name of surah n.
func Name(n int) string {
	if n < 1 || n > len(surahs) {
		return ""
	}
	return surahs[n-1].Name
}
