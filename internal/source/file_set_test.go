package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualSetsFlag(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ul", []byte("let x = 1\n"))
	file := fs.Get(id)

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
	if file.Path != "test.ul" {
		t.Errorf("Expected path %q, got %q", "test.ul", file.Path)
	}
}

func TestCRLFNormalization(t *testing.T) {
	original := []byte("let a = 1\r\nlet b = 2\r\n")
	normalized, changed := normalizeCRLF(original)

	if !changed {
		t.Error("Expected CRLF normalization to report changes")
	}
	if len(normalized) != len(original)-2 {
		t.Errorf("Expected length %d, got %d", len(original)-2, len(normalized))
	}
	if string(normalized) != "let a = 1\nlet b = 2\n" {
		t.Errorf("Unexpected normalized content %q", string(normalized))
	}
}

func TestBOMRemoval(t *testing.T) {
	bomContent := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(bomContent)

	if !hadBOM {
		t.Error("Expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("Expected content without BOM %q, got %q", "x\n", string(withoutBOM))
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.ul")
	if err := os.WriteFile(path, []byte("def f() -> 1\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "def f() -> 1\n" {
		t.Errorf("Expected CRLF-normalized content, got %q", string(file.Content))
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ul", []byte("ab\ncd\ne"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline ends line 1
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
	}
	for _, c := range cases {
		got, _ := fs.Resolve(Span{File: id, Start: c.off, End: c.off})
		if got != c.want {
			t.Errorf("Resolve(off=%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	// α takes two bytes; columns in Resolve are byte columns.
	id := fs.AddVirtual("test.ul", []byte("α\n"))
	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("Expected start 1:1, got %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("Expected end 1:2, got %+v", end)
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.ul", []byte("version 1"), 0)
	id2 := fs.Add("test.ul", []byte("version 2"), 0)

	if id2 == id1 {
		t.Error("Expected different FileID for second Add")
	}
	latestID, exists := fs.GetLatest("test.ul")
	if !exists {
		t.Fatal("Expected file to exist")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID %d, got %d", id2, latestID)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ul", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	cases := map[uint32]string{
		1: "first",
		2: "second",
		3: "third",
		4: "",
		0: "",
	}
	for line, want := range cases {
		if got := file.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}
