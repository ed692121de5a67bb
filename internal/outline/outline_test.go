package outline

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/elmkit/elmkit/internal/modname"
)

func TestFlatten_List(t *testing.T) {
	list := ExposedList{"Main", "Foo"}
	got := Flatten(list)
	if !reflect.DeepEqual(got, []modname.Name{"Main", "Foo"}) {
		t.Errorf("Flatten = %v", got)
	}
}

func TestFlatten_Sectioned(t *testing.T) {
	sections := ExposedSections{
		{Header: "First", Modules: []modname.Name{"A", "B"}},
		{Header: "Second", Modules: []modname.Name{"C"}},
		{Header: "Third", Modules: []modname.Name{"D", "E"}},
	}
	got := Flatten(sections)
	want := []modname.Name{"A", "B", "C", "D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten = %v, want %v", got, want)
	}
}

func TestNewSourceDirs_Empty(t *testing.T) {
	if _, err := NewSourceDirs(nil); err == nil {
		t.Error("NewSourceDirs(nil) succeeded, want error")
	}
}

func TestNewSourceDirs_PreservesOrder(t *testing.T) {
	dirs := []string{"c", "a", "b"}
	s, err := NewSourceDirs(dirs)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.All(), dirs) {
		t.Errorf("All() = %v, want %v", s.All(), dirs)
	}
}

func TestWriteRead_Application(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"src", "generated"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}

	app := testAppOutline(t)
	if err := Write(root, app); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := Read(root)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !reflect.DeepEqual(got, app) {
		t.Errorf("Read = %#v, want %#v", got, app)
	}
}

func TestWriteRead_Package(t *testing.T) {
	root := t.TempDir()
	pkg := testPkgOutline(t)
	if err := Write(root, pkg); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	// Packages get no source directory check; nothing else exists in root.
	got, err := Read(root)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !reflect.DeepEqual(got, pkg) {
		t.Errorf("Read = %#v, want %#v", got, pkg)
	}
}

func TestRead_AggregatesMissingSourceDirs(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatal(err)
	}

	srcDirs, err := NewSourceDirs([]string{"src", "missing-one", "missing-two"})
	if err != nil {
		t.Fatal(err)
	}
	app := testAppOutline(t)
	app.SourceDirs = srcDirs
	if err := Write(root, app); err != nil {
		t.Fatal(err)
	}

	_, err = Read(root)
	if err == nil {
		t.Fatal("Read succeeded with missing source directories")
	}
	var badDirs *BadSourceDirsError
	if !errors.As(err, &badDirs) {
		t.Fatalf("error is %T, want *BadSourceDirsError: %v", err, err)
	}
	want := []string{"missing-one", "missing-two"}
	if !reflect.DeepEqual(badDirs.Missing, want) {
		t.Errorf("Missing = %v, want %v (all missing dirs, declared order)", badDirs.Missing, want)
	}
}

func TestRead_SourceDirMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	// A plain file where a directory is declared counts as missing.
	if err := os.WriteFile(filepath.Join(root, "src"), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}
	srcDirs, err := NewSourceDirs([]string{"src"})
	if err != nil {
		t.Fatal(err)
	}
	app := testAppOutline(t)
	app.SourceDirs = srcDirs
	if err := Write(root, app); err != nil {
		t.Fatal(err)
	}

	_, err = Read(root)
	var badDirs *BadSourceDirsError
	if !errors.As(err, &badDirs) {
		t.Fatalf("error is %T, want *BadSourceDirsError: %v", err, err)
	}
}

func TestRead_WrapsDecodeError(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(Path(root), []byte(`{"type":"library"}`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Read(root)
	if err == nil {
		t.Fatal("Read succeeded on a bad manifest")
	}
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("error is %T, want wrapped *DecodeError: %v", err, err)
	}
	if derr.Problem != ProblemBadType {
		t.Errorf("Problem = %v, want %v", derr.Problem, ProblemBadType)
	}
}

func TestRead_NoManifest(t *testing.T) {
	_, err := Read(t.TempDir())
	if err == nil {
		t.Fatal("Read succeeded without a manifest")
	}
}
