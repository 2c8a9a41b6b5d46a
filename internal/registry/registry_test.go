package registry

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Bibliophage305/wordle-solver/internal/config"
)

func pairs() (config.Variant, error) {
	return config.Variant{ID: "regtest_2", Name: "Pairs", WordLength: 2, Words: []string{"ab", "ba"}}, nil
}

func init() {
	Register("regtest_2", "Pairs", pairs)
	Register("regtest_3", "Triples", func() (config.Variant, error) {
		return config.Variant{ID: "regtest_3", WordLength: 3, Words: []string{"abc"}}, nil
	})
	Register("wordle_99", "Long Wordle", func() (config.Variant, error) {
		return config.Variant{}, os.ErrInvalid
	})
}

func TestSplitID(t *testing.T) {
	tests := []struct {
		id     string
		game   string
		length int
		ok     bool
	}{
		{id: "wordle_5", game: "wordle", length: 5, ok: true},
		{id: "mini_nerdle_6", game: "mini_nerdle", length: 6, ok: true},
		{id: "wordle", ok: false},
		{id: "_5", ok: false},
		{id: "wordle_x", ok: false},
		{id: "wordle_0", ok: false},
	}
	for _, tt := range tests {
		game, length, ok := SplitID(tt.id)
		if game != tt.game || length != tt.length || ok != tt.ok {
			t.Errorf("SplitID(%q) = %q, %d, %v, want %q, %d, %v", tt.id, game, length, ok, tt.game, tt.length, tt.ok)
		}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	if !Exists("regtest_2") {
		t.Fatal("regtest_2 not registered")
	}
	v, err := Create("regtest_2")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if v.Name != "Pairs" || len(v.Words) != 2 {
		t.Errorf("Create() = %+v", v)
	}
	info, ok := Lookup("regtest_2")
	if !ok || info.Game != "regtest" || info.WordLength != 2 || !info.Builtin {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}

	if _, err := Create("missing_5"); err == nil {
		t.Error("Create(missing_5) succeeded")
	}
	if _, err := Create("wordle_99"); err == nil {
		t.Error("Create() with failing factory succeeded")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("regtest_2", "Again", pairs)
}

func TestListOrder(t *testing.T) {
	list := List()
	if len(list) == 0 || list[0].Game != "wordle" {
		t.Fatalf("List()[0] = %+v, want a wordle variant first", list)
	}
	var rest []string
	for _, info := range list {
		if info.Game != "wordle" {
			rest = append(rest, info.ID)
		}
	}
	if !slices.IsSorted(rest) {
		t.Errorf("List() non-wordle IDs not sorted: %v", rest)
	}
}

func TestLengthsAndResolve(t *testing.T) {
	if got := Lengths("regtest"); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Lengths(regtest) = %v, want [2 3]", got)
	}
	if id, err := Resolve("regtest"); err != nil || id != "regtest_2" {
		t.Errorf("Resolve(regtest) = %q, %v", id, err)
	}
	if id, err := Resolve("regtest_3"); err != nil || id != "regtest_3" {
		t.Errorf("Resolve(regtest_3) = %q, %v", id, err)
	}
	if _, err := Resolve("nothing"); err == nil {
		t.Error("Resolve(nothing) succeeded")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"userdir_2.yaml": "id: userdir_2\nname: User Pairs\nword_length: 2\nwords: [xy, yx]\n",
		"regtest_3.yaml": "id: regtest_3\nname: Override\nword_length: 3\nwords: [xyz]\n",
		"wrong_4.yaml":   "id: wrong_4\nword_length: 3\nwords: [abc]\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
	}

	n, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("LoadDir() = %d, want 2", n)
	}
	if Exists("wrong_4") {
		t.Error("variant with mismatched id length was registered")
	}
	v, err := Create("regtest_3")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if v.Name != "Override" {
		t.Errorf("user file did not override regtest_3: %+v", v)
	}

	if n, err := LoadDir(filepath.Join(dir, "absent")); err != nil || n != 0 {
		t.Errorf("LoadDir(absent) = %d, %v, want 0, nil", n, err)
	}
}
