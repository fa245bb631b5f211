package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FixtureLoader loads test fixture files relative to a fixtures directory,
// probing a few likely locations so tests work whether invoked from the
// package directory or the module root.
type FixtureLoader struct {
	fixturesDir string
}

// NewFixtureLoader creates a FixtureLoader pointing at the first existing
// candidate fixtures directory, defaulting to "." if none exist yet.
func NewFixtureLoader() *FixtureLoader {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	candidates := []string{
		filepath.Join(cwd, "fixtures"),
		filepath.Join(cwd, "tests", "fixtures"),
		filepath.Join(cwd, "..", "fixtures"),
	}
	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && stat.IsDir() {
			return &FixtureLoader{fixturesDir: path}
		}
	}
	return &FixtureLoader{fixturesDir: "."}
}

// NewFixtureLoaderWithDir creates a FixtureLoader against an explicit
// directory.
func NewFixtureLoaderWithDir(dir string) *FixtureLoader {
	return &FixtureLoader{fixturesDir: dir}
}

// LoadJSONFixture loads and unmarshals a JSON fixture file into v.
func (fl *FixtureLoader) LoadJSONFixture(filename string, v interface{}) error {
	path := filepath.Join(fl.fixturesDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal JSON fixture %s: %w", filename, err)
	}
	return nil
}

// SaveJSONFixture marshals v and writes it as a JSON fixture file,
// creating the containing directory if needed.
func (fl *FixtureLoader) SaveJSONFixture(filename string, v interface{}) error {
	path := filepath.Join(fl.fixturesDir, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create fixture directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture file %s: %w", filename, err)
	}
	return nil
}

// FixturesDir returns the directory this loader reads from and writes to.
func (fl *FixtureLoader) FixturesDir() string {
	return fl.fixturesDir
}

// Exists reports whether filename exists under the fixtures directory.
func (fl *FixtureLoader) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(fl.fixturesDir, filename))
	return err == nil
}

// InputFixture loads and saves entity.Input fixtures under
// fixtures/inputs/.
type InputFixture struct {
	loader *FixtureLoader
}

// NewInputFixture creates an InputFixture helper.
func NewInputFixture() *InputFixture {
	return &InputFixture{loader: NewFixtureLoader()}
}

// Load unmarshals an entity.Input fixture into v.
func (f *InputFixture) Load(filename string, v interface{}) error {
	return f.loader.LoadJSONFixture(filepath.Join("inputs", filename), v)
}

// Save marshals v as an entity.Input fixture.
func (f *InputFixture) Save(filename string, v interface{}) error {
	return f.loader.SaveJSONFixture(filepath.Join("inputs", filename), v)
}

// List lists every fixture filename under fixtures/inputs/.
func (f *InputFixture) List() ([]string, error) {
	dir := filepath.Join(f.loader.FixturesDir(), "inputs")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
