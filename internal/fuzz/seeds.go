package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB cap for corpus entries

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".ul" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addLanguageSeeds covers every scanner path: keywords, literals of each
// kind, two-char operators, strings with escapes, comments, and the
// characters the scanner warns about.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"def main() -> Int:\n    return 0\n",
		"x = 1 + 2 * 3 ** 4\n",
		"pi = 3.14\nhalf = 3.\n",
		"if x == y and not done:\n    print(\"hi\")\n",
		"s = \"tab\\tnewline\\nslash\\\\\"\n",
		"s = 'single'\n",
		"s = \"unterminated",
		"name? = true\nmut! = false\n",
		"# full line comment\nx = 1  # trailing\n",
		"xs |> map |> filter\n",
		"λ = 42\n",
		"@ $ `\n",
		"lambda match quantum async await import module\n",
		"a <= b >= c != d -> e\n",
		"(1, [2], {3})\n",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
