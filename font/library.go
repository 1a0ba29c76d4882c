package font

import "os"
import "io/fs"
import "errors"
import "path/filepath"

// Returned when adding a font whose name is already in the library.
var ErrAlreadyPresent = errors.New("font already present in the library")

// Can be returned from [Library.Each]() callbacks to stop early
// without reporting an error.
var ErrBreakEach = errors.New("Each() early break")

// A collection of fonts accessible by name, and by the reference
// they were opened with (see [Library.Open]()).
type Library struct {
	fonts map[string]*Source
	refs  map[string]*Source
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{
		fonts: make(map[string]*Source),
		refs:  make(map[string]*Source),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
func (self *Library) Get(name string) *Source {
	return self.fonts[name]
}

// Adds the given font. If another font with the same name was
// already present, [ErrAlreadyPresent] will be returned.
func (self *Library) Add(source *Source) error {
	if source == nil || source.Font == nil { return errors.New("nil font source") }
	if self.HasFont(source.Name) { return ErrAlreadyPresent }
	self.fonts[source.Name] = source
	return nil
}

// Returns false if the font can't be removed due to not being found.
func (self *Library) Remove(name string) bool {
	source, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	for ref, refSource := range self.refs {
		if refSource == source { delete(self.refs, ref) }
	}
	return true
}

// Returns the font for the given reference, loading it if necessary.
// References are either built-in names with [BuiltinPrefix] or font
// file paths, which are resolved relative to baseDir when not absolute.
//
// Fonts already in the library can also be referenced by name.
//
// Fonts are loaded only once per reference. A font whose name is already
// present under a different reference resolves to the existing entry.
func (self *Library) Open(ref string, baseDir string) (*Source, error) {
	source, found := self.refs[ref]
	if found { return source, nil }
	source, found = self.fonts[ref]
	if found { return source, nil }

	if len(ref) > len(BuiltinPrefix) && ref[:len(BuiltinPrefix)] == BuiltinPrefix {
		source, err := Builtin(ref)
		if err != nil { return nil, err }
		return self.register(ref, source), nil
	}

	path := ref
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	source, err := ParsePath(path)
	if err != nil { return nil, err }
	return self.register(ref, source), nil
}

func (self *Library) register(ref string, source *Source) *Source {
	existing, found := self.fonts[source.Name]
	if found {
		source = existing
	} else {
		self.fonts[source.Name] = source
	}
	self.refs[ref] = source
	return source
}

// Calls the given function for each font in the library, in
// pseudo-random order. If the function returns a non-nil error
// the iteration stops and the error is returned, except for
// [ErrBreakEach].
func (self *Library) Each(fontFunc func(*Source) error) error {
	for _, source := range self.fonts {
		err := fontFunc(source)
		if err == ErrBreakEach { return nil }
		if err != nil { return err }
	}
	return nil
}

// Walks the given directory non-recursively and adds all the .ttf and
// .otf fonts in it. Returns the number of fonts added, the number of
// fonts skipped due to their names already being present, and any error.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }
	return self.parseAll(func() ([]fs.DirEntry, error) {
		return os.ReadDir(absDirPath)
	}, func(name string) (*Source, error) {
		return ParsePath(filepath.Join(absDirPath, name))
	})
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	return self.parseAll(func() ([]fs.DirEntry, error) {
		return fs.ReadDir(filesys, dirName)
	}, func(name string) (*Source, error) {
		if dirName == "." || dirName == "" { return ParseFS(filesys, name) }
		return ParseFS(filesys, dirName + "/" + name)
	})
}

func (self *Library) parseAll(list func() ([]fs.DirEntry, error), parse func(string) (*Source, error)) (added, skipped int, err error) {
	entries, err := list()
	if err != nil { return 0, 0, err }
	for _, entry := range entries {
		if entry.IsDir() || !hasValidFontExtension(entry.Name()) { continue }
		source, err := parse(entry.Name())
		if err != nil { return added, skipped, err }
		err = self.Add(source)
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}
