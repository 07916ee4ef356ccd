package dictionary

import (
	"strings"
	"testing"

	"github.com/bastiangx/dictree/pkg/trie"
	"github.com/charmbracelet/log"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return fs
}

func TestLoadTextFile(t *testing.T) {
	g := NewWithT(t)
	fs := memFs(t, map[string]string{
		"/words.txt": "hello\nhell\n\n  word  \r\nto\nbecause\nwording\n",
	})

	dict := trie.New()
	stats, err := NewLoader(fs, 0).LoadFile("/words.txt", FormatUnknown, dict)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(stats).To(Equal(LoadStats{Lines: 7, Words: 6}))
	g.Expect(dict.AllWords()).To(Equal([]string{"hell", "hello", "word", "wording", "to", "because"}))

	rank, ok := dict.Rank("word")
	g.Expect(ok).To(BeTrue())
	g.Expect(rank).To(Equal(3))
}

func TestLoadRankedFile(t *testing.T) {
	g := NewWithT(t)
	fs := memFs(t, map[string]string{
		"/popular.tsv": "hello\t4\nhell 2\nice cream 5\nbroken x\nhi 1\n",
	})

	dict := trie.New()
	stats, err := NewLoader(fs, 0).LoadFile("/popular.tsv", FormatUnknown, dict)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(stats.Words).To(Equal(4))
	g.Expect(stats.Skipped).To(Equal(1))
	g.Expect(dict.Contains("ice cream")).To(BeTrue())
	g.Expect(dict.PredictN("h", 2)).To(Equal([]string{"hi", "hell"}))
}

func TestLoadMaxWords(t *testing.T) {
	g := NewWithT(t)
	dict := trie.New()

	stats, err := NewLoader(afero.NewMemMapFs(), 2).Load(strings.NewReader("a\nb\nc\nd\n"), FormatText, dict)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(stats.Words).To(Equal(2))
	g.Expect(dict.AllWords()).To(Equal([]string{"a", "b"}))
}

func TestLoadSkipsInvalidUTF8(t *testing.T) {
	g := NewWithT(t)
	dict := trie.New()

	stats, err := NewLoader(afero.NewMemMapFs(), 0).Load(strings.NewReader("ok\n\xff\xfe\nfine\n"), FormatText, dict)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(stats).To(Equal(LoadStats{Lines: 3, Words: 2, Skipped: 1}))
	g.Expect(dict.Size()).To(Equal(7))
}

func TestLoadFileErrors(t *testing.T) {
	g := NewWithT(t)
	fs := memFs(t, map[string]string{"/empty.txt": ""})
	loader := NewLoader(fs, 0)

	_, err := loader.LoadFile("/missing.txt", FormatUnknown, trie.New())
	g.Expect(err).To(HaveOccurred())

	_, err = loader.LoadFile("/empty.txt", FormatUnknown, trie.New())
	g.Expect(err).To(MatchError(ContainSubstring("empty")))

	_, err = loader.Load(strings.NewReader("a\n"), FileFormat(42), trie.New())
	g.Expect(err).To(MatchError(ErrUnknownFormat))
}

func TestDetectFileFormat(t *testing.T) {
	g := NewWithT(t)
	fs := memFs(t, map[string]string{
		"/a.txt":     "hello 3\n",
		"/b.rank":    "hello\n",
		"/c.words":   "\n\nhello 3\n",
		"/d.words":   "hello\nworld\n",
		"/e.unknown": "two words\n",
	})

	testCases := map[string]FileFormat{
		"/a.txt":     FormatText,
		"/b.rank":    FormatRanked,
		"/c.words":   FormatRanked,
		"/d.words":   FormatText,
		"/e.unknown": FormatText,
	}
	for name, want := range testCases {
		got, err := DetectFileFormat(fs, name)
		g.Expect(err).NotTo(HaveOccurred(), name)
		g.Expect(got).To(Equal(want), name)
	}
}

func TestParseFormat(t *testing.T) {
	g := NewWithT(t)

	for name, want := range map[string]FileFormat{"": FormatUnknown, "auto": FormatUnknown, "TEXT": FormatText, "ranked": FormatRanked} {
		got, err := ParseFormat(name)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(got).To(Equal(want))
	}
	_, err := ParseFormat("bin")
	g.Expect(err).To(MatchError(ErrUnknownFormat))

	g.Expect(FormatRanked.String()).To(Equal("ranked"))
	g.Expect(FormatUnknown.String()).To(Equal("auto"))
	g.Expect(ListSupportedFormats()).To(HaveLen(2))
	g.Expect(ListSupportedFormats()[0].Format).To(Equal(FormatText))
}

func TestLoadDuplicatesKeepWordBudget(t *testing.T) {
	g := NewWithT(t)
	dict := trie.New()

	stats, err := NewLoader(afero.NewMemMapFs(), 2).Load(strings.NewReader("hello\nhello\nhelp\nhi\n"), FormatText, dict)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(stats).To(Equal(LoadStats{Lines: 3, Words: 2, Duplicates: 1}))
	g.Expect(dict.Len()).To(Equal(2))
	g.Expect(dict.AllWords()).To(Equal([]string{"hello", "help"}))
}

func TestLoadRankedDuplicateOverwritesRank(t *testing.T) {
	g := NewWithT(t)
	dict := trie.New()

	stats, err := NewLoader(afero.NewMemMapFs(), 0).Load(strings.NewReader("hello 4\nhelp 2\nhello 1\n"), FormatRanked, dict)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(stats.Words).To(Equal(2))
	g.Expect(stats.Duplicates).To(Equal(1))
	g.Expect(dict.PredictN("hel", 2)).To(Equal([]string{"hello", "help"}))
}
