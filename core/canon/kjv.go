package canon

import "sync"

// DefaultID is the ID of the bundled corpus.
const DefaultID = "KJV"

var (
	defaultOnce   sync.Once
	defaultCorpus *Corpus
)

// Default returns the bundled 66-book corpus with KJV versification.
// It is built on first use and shared by every caller.
func Default() *Corpus {
	defaultOnce.Do(func() {
		c, err := New(DefaultID, kjvBooks())
		if err != nil {
			panic("canon: bundled corpus is invalid: " + err.Error())
		}
		defaultCorpus = c
	})
	return defaultCorpus
}

// kjvBooks returns the bundled book table. Abbreviations are listed longest
// first where one would otherwise shadow another ("Song of Songs" before "Song").
func kjvBooks() []*Book {
	return []*Book{
		// Old Testament
		{Name: "Genesis", OSIS: "Gen", Abbreviations: []string{"Gen", "Ge", "Gn"}, Chapters: []int{31, 25, 24, 26, 32, 22, 24, 22, 29, 32, 32, 20, 18, 24, 21, 16, 27, 33, 38, 18, 34, 24, 20, 67, 34, 35, 46, 22, 35, 43, 55, 32, 20, 31, 29, 43, 36, 30, 23, 23, 57, 38, 34, 34, 28, 34, 31, 22, 33, 26}},
		{Name: "Exodus", OSIS: "Exod", Abbreviations: []string{"Exod", "Exo", "Ex"}, Chapters: []int{22, 25, 22, 31, 23, 30, 25, 32, 35, 29, 10, 51, 22, 31, 27, 36, 16, 27, 25, 26, 36, 31, 33, 18, 40, 37, 21, 43, 46, 38, 18, 35, 23, 35, 35, 38, 29, 31, 43, 38}},
		{Name: "Leviticus", OSIS: "Lev", Abbreviations: []string{"Lev", "Lv"}, Chapters: []int{17, 16, 17, 35, 19, 30, 38, 36, 24, 20, 47, 8, 59, 57, 33, 34, 16, 30, 37, 27, 24, 33, 44, 23, 55, 46, 34}},
		{Name: "Numbers", OSIS: "Num", Abbreviations: []string{"Num", "Nu", "Nm"}, Chapters: []int{54, 34, 51, 49, 31, 27, 89, 26, 23, 36, 35, 16, 33, 45, 41, 50, 13, 32, 22, 29, 35, 41, 30, 25, 18, 65, 23, 31, 40, 16, 54, 42, 56, 29, 34, 13}},
		{Name: "Deuteronomy", OSIS: "Deut", Abbreviations: []string{"Deut", "Deu", "Dt"}, Chapters: []int{46, 37, 29, 49, 33, 25, 26, 20, 29, 22, 32, 32, 18, 29, 23, 22, 20, 22, 21, 20, 23, 30, 25, 22, 19, 19, 26, 68, 29, 20, 30, 52, 29, 12}},
		{Name: "Joshua", OSIS: "Josh", Abbreviations: []string{"Josh", "Jos"}, Chapters: []int{18, 24, 17, 24, 15, 27, 26, 35, 27, 43, 23, 24, 33, 15, 63, 10, 18, 28, 51, 9, 45, 34, 16, 33}},
		{Name: "Judges", OSIS: "Judg", Abbreviations: []string{"Judg", "Jdg"}, Chapters: []int{36, 23, 31, 24, 31, 40, 25, 35, 57, 18, 40, 15, 25, 20, 20, 31, 13, 31, 30, 48, 25}},
		{Name: "Ruth", OSIS: "Ruth", Abbreviations: []string{"Rth", "Ru"}, Chapters: []int{22, 23, 18, 22}},
		{Name: "1 Samuel", OSIS: "1Sam", Abbreviations: []string{"1Samuel", "1 Sam", "1Sam", "1 Sa"}, Chapters: []int{28, 36, 21, 22, 12, 21, 17, 22, 27, 27, 15, 25, 23, 52, 35, 23, 58, 30, 24, 42, 15, 23, 29, 22, 44, 25, 12, 25, 11, 31, 13}},
		{Name: "2 Samuel", OSIS: "2Sam", Abbreviations: []string{"2Samuel", "2 Sam", "2Sam", "2 Sa"}, Chapters: []int{27, 32, 39, 12, 25, 23, 29, 18, 13, 19, 27, 31, 39, 33, 37, 23, 29, 33, 43, 26, 22, 51, 39, 25}},
		{Name: "1 Kings", OSIS: "1Kgs", Abbreviations: []string{"1Kings", "1 Kgs", "1Kgs", "1 Ki"}, Chapters: []int{53, 46, 28, 34, 18, 38, 51, 66, 28, 29, 43, 33, 34, 31, 34, 34, 24, 46, 21, 43, 29, 53}},
		{Name: "2 Kings", OSIS: "2Kgs", Abbreviations: []string{"2Kings", "2 Kgs", "2Kgs", "2 Ki"}, Chapters: []int{18, 25, 27, 44, 27, 33, 20, 29, 37, 36, 21, 21, 25, 29, 38, 20, 41, 37, 37, 21, 26, 20, 37, 20, 30}},
		{Name: "1 Chronicles", OSIS: "1Chr", Abbreviations: []string{"1Chronicles", "1 Chron", "1 Chr", "1Chr"}, Chapters: []int{54, 55, 24, 43, 26, 81, 40, 40, 44, 14, 47, 40, 14, 17, 29, 43, 27, 17, 19, 8, 30, 19, 32, 31, 31, 32, 34, 21, 30}},
		{Name: "2 Chronicles", OSIS: "2Chr", Abbreviations: []string{"2Chronicles", "2 Chron", "2 Chr", "2Chr"}, Chapters: []int{17, 18, 17, 22, 14, 42, 22, 18, 31, 19, 23, 16, 22, 15, 19, 14, 19, 34, 11, 37, 20, 12, 21, 27, 28, 23, 9, 27, 36, 27, 21, 33, 25, 33, 27, 23}},
		{Name: "Ezra", OSIS: "Ezra", Abbreviations: []string{"Ezr"}, Chapters: []int{11, 70, 13, 24, 17, 22, 28, 36, 15, 44}},
		{Name: "Nehemiah", OSIS: "Neh", Abbreviations: []string{"Neh"}, Chapters: []int{11, 20, 32, 23, 19, 19, 73, 18, 38, 39, 36, 47, 31}},
		{Name: "Esther", OSIS: "Esth", Abbreviations: []string{"Esth", "Est"}, Chapters: []int{22, 23, 15, 17, 14, 14, 10, 17, 32, 3}},
		{Name: "Job", OSIS: "Job", Abbreviations: []string{"Jb"}, Chapters: []int{22, 13, 26, 21, 27, 30, 21, 22, 35, 22, 20, 25, 28, 22, 35, 22, 16, 21, 29, 29, 34, 30, 17, 25, 6, 14, 23, 28, 25, 31, 40, 22, 33, 37, 16, 33, 24, 41, 30, 24, 34, 17}},
		{Name: "Psalms", OSIS: "Ps", Abbreviations: []string{"Psalm", "Psa", "Pss", "Ps"}, Chapters: []int{6, 12, 8, 8, 12, 10, 17, 9, 20, 18, 7, 8, 6, 7, 5, 11, 15, 50, 14, 9, 13, 31, 6, 10, 22, 12, 14, 9, 11, 12, 24, 11, 22, 22, 28, 12, 40, 22, 13, 17, 13, 11, 5, 26, 17, 11, 9, 14, 20, 23, 19, 9, 6, 7, 23, 13, 11, 11, 17, 12, 8, 12, 11, 10, 13, 20, 7, 35, 36, 5, 24, 20, 28, 23, 10, 12, 20, 72, 13, 19, 16, 8, 18, 12, 13, 17, 7, 18, 52, 17, 16, 15, 5, 23, 11, 13, 12, 9, 9, 5, 8, 28, 22, 35, 45, 48, 43, 13, 31, 7, 10, 10, 9, 8, 18, 19, 2, 29, 176, 7, 8, 9, 4, 8, 5, 6, 5, 6, 8, 8, 3, 18, 3, 3, 21, 26, 9, 8, 24, 13, 10, 7, 12, 15, 21, 10, 20, 14, 9, 6}},
		{Name: "Proverbs", OSIS: "Prov", Abbreviations: []string{"Prov", "Pro", "Prv"}, Chapters: []int{33, 22, 35, 27, 23, 35, 27, 36, 18, 32, 31, 28, 25, 35, 33, 33, 28, 24, 29, 30, 31, 29, 35, 34, 28, 28, 27, 28, 27, 33, 31}},
		{Name: "Ecclesiastes", OSIS: "Eccl", Abbreviations: []string{"Eccl", "Ecc", "Qoh"}, Chapters: []int{18, 26, 22, 16, 20, 12, 29, 17, 18, 20, 10, 14}},
		{Name: "Song of Solomon", OSIS: "Song", Abbreviations: []string{"Song of Songs", "Canticles", "Song", "SOS"}, Chapters: []int{17, 17, 11, 16, 16, 13, 13, 14}},
		{Name: "Isaiah", OSIS: "Isa", Abbreviations: []string{"Isa", "Is"}, Chapters: []int{31, 22, 26, 6, 30, 13, 25, 22, 21, 34, 16, 6, 22, 32, 9, 14, 14, 7, 25, 6, 17, 25, 18, 23, 12, 21, 13, 29, 24, 33, 9, 20, 24, 17, 10, 22, 38, 22, 8, 31, 29, 25, 28, 28, 25, 13, 15, 22, 26, 11, 23, 15, 12, 17, 13, 12, 21, 14, 21, 22, 11, 12, 19, 12, 25, 24}},
		{Name: "Jeremiah", OSIS: "Jer", Abbreviations: []string{"Jer"}, Chapters: []int{19, 37, 25, 31, 31, 30, 34, 22, 26, 25, 23, 17, 27, 22, 21, 21, 27, 23, 15, 18, 14, 30, 40, 10, 38, 24, 22, 17, 32, 24, 40, 44, 26, 22, 19, 32, 21, 28, 18, 16, 18, 22, 13, 30, 5, 28, 7, 47, 39, 46, 64, 34}},
		{Name: "Lamentations", OSIS: "Lam", Abbreviations: []string{"Lam"}, Chapters: []int{22, 22, 66, 22, 22}},
		{Name: "Ezekiel", OSIS: "Ezek", Abbreviations: []string{"Ezek", "Eze"}, Chapters: []int{28, 10, 27, 17, 17, 14, 27, 18, 11, 22, 25, 28, 23, 23, 8, 63, 24, 32, 14, 49, 32, 31, 49, 27, 17, 21, 36, 26, 21, 26, 18, 32, 33, 31, 15, 38, 28, 23, 29, 49, 26, 20, 27, 31, 25, 24, 23, 35}},
		{Name: "Daniel", OSIS: "Dan", Abbreviations: []string{"Dan", "Dn"}, Chapters: []int{21, 49, 30, 37, 31, 28, 28, 27, 27, 21, 45, 13}},
		{Name: "Hosea", OSIS: "Hos", Abbreviations: []string{"Hos"}, Chapters: []int{11, 23, 5, 19, 15, 11, 16, 14, 17, 15, 12, 14, 16, 9}},
		{Name: "Joel", OSIS: "Joel", Abbreviations: []string{"Jl"}, Chapters: []int{20, 32, 21}},
		{Name: "Amos", OSIS: "Amos", Abbreviations: []string{"Am"}, Chapters: []int{15, 16, 15, 13, 27, 14, 17, 14, 15}},
		{Name: "Obadiah", OSIS: "Obad", Abbreviations: []string{"Obad", "Ob"}, Chapters: []int{21}},
		{Name: "Jonah", OSIS: "Jonah", Abbreviations: []string{"Jon"}, Chapters: []int{17, 10, 10, 11}},
		{Name: "Micah", OSIS: "Mic", Abbreviations: []string{"Mic"}, Chapters: []int{16, 13, 12, 13, 15, 16, 20}},
		{Name: "Nahum", OSIS: "Nah", Abbreviations: []string{"Nah"}, Chapters: []int{15, 13, 19}},
		{Name: "Habakkuk", OSIS: "Hab", Abbreviations: []string{"Hab"}, Chapters: []int{17, 20, 19}},
		{Name: "Zephaniah", OSIS: "Zeph", Abbreviations: []string{"Zeph", "Zep"}, Chapters: []int{18, 15, 20}},
		{Name: "Haggai", OSIS: "Hag", Abbreviations: []string{"Hag"}, Chapters: []int{15, 23}},
		{Name: "Zechariah", OSIS: "Zech", Abbreviations: []string{"Zech", "Zec"}, Chapters: []int{21, 13, 10, 14, 11, 15, 14, 23, 17, 12, 17, 14, 9, 21}},
		{Name: "Malachi", OSIS: "Mal", Abbreviations: []string{"Mal"}, Chapters: []int{14, 17, 18, 6}},
		// New Testament
		{Name: "Matthew", OSIS: "Matt", Abbreviations: []string{"Matt", "Mat", "Mt"}, Chapters: []int{25, 23, 17, 25, 48, 34, 29, 34, 38, 42, 30, 50, 58, 36, 39, 28, 27, 35, 30, 34, 46, 46, 39, 51, 46, 75, 66, 20}},
		{Name: "Mark", OSIS: "Mark", Abbreviations: []string{"Mrk", "Mk"}, Chapters: []int{45, 28, 35, 41, 43, 56, 37, 38, 50, 52, 33, 44, 37, 72, 47, 20}},
		{Name: "Luke", OSIS: "Luke", Abbreviations: []string{"Luk", "Lk"}, Chapters: []int{80, 52, 38, 44, 39, 49, 50, 56, 62, 42, 54, 59, 35, 35, 32, 31, 37, 43, 48, 47, 38, 71, 56, 53}},
		{Name: "John", OSIS: "John", Abbreviations: []string{"Joh", "Jn"}, Chapters: []int{51, 25, 36, 54, 47, 71, 53, 59, 41, 42, 57, 50, 38, 31, 27, 33, 26, 40, 42, 31, 25}},
		{Name: "Acts", OSIS: "Acts", Abbreviations: []string{"Act"}, Chapters: []int{26, 47, 26, 37, 42, 15, 60, 40, 43, 48, 30, 25, 52, 28, 41, 40, 34, 28, 41, 38, 40, 30, 35, 27, 27, 32, 44, 31}},
		{Name: "Romans", OSIS: "Rom", Abbreviations: []string{"Rom", "Rm"}, Chapters: []int{32, 29, 31, 25, 21, 23, 25, 39, 33, 21, 36, 21, 14, 23, 33, 27}},
		{Name: "1 Corinthians", OSIS: "1Cor", Abbreviations: []string{"1Corinthians", "1 Cor", "1Cor"}, Chapters: []int{31, 16, 23, 21, 13, 20, 40, 13, 27, 33, 34, 31, 13, 40, 58, 24}},
		{Name: "2 Corinthians", OSIS: "2Cor", Abbreviations: []string{"2Corinthians", "2 Cor", "2Cor"}, Chapters: []int{24, 17, 18, 18, 21, 18, 16, 24, 15, 18, 33, 21, 14}},
		{Name: "Galatians", OSIS: "Gal", Abbreviations: []string{"Gal"}, Chapters: []int{24, 21, 29, 31, 26, 18}},
		{Name: "Ephesians", OSIS: "Eph", Abbreviations: []string{"Eph"}, Chapters: []int{23, 22, 21, 32, 33, 24}},
		{Name: "Philippians", OSIS: "Phil", Abbreviations: []string{"Phil", "Php"}, Chapters: []int{30, 30, 21, 23}},
		{Name: "Colossians", OSIS: "Col", Abbreviations: []string{"Col"}, Chapters: []int{29, 23, 25, 18}},
		{Name: "1 Thessalonians", OSIS: "1Thess", Abbreviations: []string{"1Thessalonians", "1 Thess", "1Thess", "1 Th"}, Chapters: []int{10, 20, 13, 18, 28}},
		{Name: "2 Thessalonians", OSIS: "2Thess", Abbreviations: []string{"2Thessalonians", "2 Thess", "2Thess", "2 Th"}, Chapters: []int{12, 17, 18}},
		{Name: "1 Timothy", OSIS: "1Tim", Abbreviations: []string{"1Timothy", "1 Tim", "1Tim"}, Chapters: []int{20, 15, 16, 16, 25, 21}},
		{Name: "2 Timothy", OSIS: "2Tim", Abbreviations: []string{"2Timothy", "2 Tim", "2Tim"}, Chapters: []int{18, 26, 17, 22}},
		{Name: "Titus", OSIS: "Titus", Abbreviations: []string{"Tit"}, Chapters: []int{16, 15, 15}},
		{Name: "Philemon", OSIS: "Phlm", Abbreviations: []string{"Phlm", "Phm"}, Chapters: []int{25}},
		{Name: "Hebrews", OSIS: "Heb", Abbreviations: []string{"Heb"}, Chapters: []int{14, 18, 19, 16, 14, 20, 28, 13, 28, 39, 40, 29, 25}},
		{Name: "James", OSIS: "Jas", Abbreviations: []string{"Jas", "Jm"}, Chapters: []int{27, 26, 18, 17, 20}},
		{Name: "1 Peter", OSIS: "1Pet", Abbreviations: []string{"1Peter", "1 Pet", "1Pet", "1 Pt"}, Chapters: []int{25, 25, 22, 19, 14}},
		{Name: "2 Peter", OSIS: "2Pet", Abbreviations: []string{"2Peter", "2 Pet", "2Pet", "2 Pt"}, Chapters: []int{21, 22, 18}},
		{Name: "1 John", OSIS: "1John", Abbreviations: []string{"1John", "1 Jn", "1Jn"}, Chapters: []int{10, 29, 24, 21, 21}},
		{Name: "2 John", OSIS: "2John", Abbreviations: []string{"2John", "2 Jn", "2Jn"}, Chapters: []int{13}},
		{Name: "3 John", OSIS: "3John", Abbreviations: []string{"3John", "3 Jn", "3Jn"}, Chapters: []int{14}},
		{Name: "Jude", OSIS: "Jude", Abbreviations: []string{"Jde"}, Chapters: []int{25}},
		{Name: "Revelation", OSIS: "Rev", Abbreviations: []string{"Rev", "Rv"}, Chapters: []int{20, 29, 22, 11, 14, 17, 17, 13, 21, 11, 19, 17, 18, 20, 8, 21, 18, 24, 21, 15, 27, 21}},
	}
}
