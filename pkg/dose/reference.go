// Package dose handles the Daily Dose video follow-up work: pulling a verse
// reference out of a video title and staging the translation workbook for it.
package dose

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// canonicalBooks lists the 66 books in order; a book's ID is its 1-based
// position. These IDs prefix the verse IDs used by the IQ Bible API.
var canonicalBooks = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalm", "Proverbs",
	"Ecclesiastes", "Song of Solomon", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk",
	"Zephaniah", "Haggai", "Zechariah", "Malachi", "Matthew",
	"Mark", "Luke", "John", "Acts", "Romans",
	"1 Corinthians", "2 Corinthians", "Galatians", "Ephesians", "Philippians",
	"Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy", "2 Timothy",
	"Titus", "Philemon", "Hebrews", "James", "1 Peter",
	"2 Peter", "1 John", "2 John", "3 John", "Jude",
	"Revelation",
}

// bookAliases maps alternate spellings seen in video titles onto book IDs.
// The capitalized "Of" forms cover what word-by-word normalization produces
// for the multi-word titles.
var bookAliases = map[string]int{
	"Psalms":          19,
	"Song of Songs":   22,
	"Song Of Songs":   22,
	"Song Of Solomon": 22,
}

var (
	bookCodes = map[string]int{}
	bookNames = map[int]string{}
)

func init() {
	for i, name := range canonicalBooks {
		bookCodes[name] = i + 1
		bookNames[i+1] = name
	}
	for name, id := range bookAliases {
		bookCodes[name] = id
	}
}

var refPattern = regexp.MustCompile(`([1-3]?\s?[A-Za-z ]+?)\s+(\d+):(\d+)`)

// ParseReference extracts the verse ID for the first scripture reference in a
// video title, e.g. "Daily Dose of Greek: John 3:16" -> "43003016".
func ParseReference(title string) (string, bool) {
	book, chapter, verse, ok := match(title)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d%03d%03d", book, chapter, verse), true
}

// Slug returns the reference formatted for file names, e.g. "John 3_16".
func Slug(title string) (string, bool) {
	m := refPattern.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s %s_%s", strings.TrimSpace(m[1]), m[2], m[3]), true
}

// SlugFromVerseID reconstructs a file-name slug from a numeric verse ID.
func SlugFromVerseID(verseID string) (string, bool) {
	if len(verseID) < 7 {
		return "", false
	}
	book, err1 := strconv.Atoi(verseID[:len(verseID)-6])
	chapter, err2 := strconv.Atoi(verseID[len(verseID)-6 : len(verseID)-3])
	verse, err3 := strconv.Atoi(verseID[len(verseID)-3:])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}

	name, ok := bookNames[book]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s %d_%d", name, chapter, verse), true
}

func match(title string) (book, chapter, verse int, ok bool) {
	m := refPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, 0, 0, false
	}

	// Titles vary in spacing and case ("1  JOHN" vs "1 John"); normalize
	// before the lookup.
	words := strings.Fields(m[1])
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	book, found := bookCodes[strings.Join(words, " ")]
	if !found {
		return 0, 0, 0, false
	}

	chapter, _ = strconv.Atoi(m[2])
	verse, _ = strconv.Atoi(m[3])
	return book, chapter, verse, true
}
