package font

import "sort"
import "errors"
import "strings"

import "golang.org/x/image/font/gofont/goregular"
import "github.com/tinne26/fonts/liberation/lbrtserif"

// Font references starting with this prefix name a built-in
// font instead of a path.
const BuiltinPrefix = "builtin:"

var ErrUnknownBuiltin = errors.New("unknown built-in font")

var builtins = map[string]func() (*Source, error){
	"goregular": func() (*Source, error) { return ParseBytes(goregular.TTF) },
	"lbrtserif": func() (*Source, error) {
		parsed := lbrtserif.Font()
		name, err := GetName(parsed)
		if err != nil { return nil, err }
		return &Source{ Name: name, Font: parsed }, nil
	},
}

// Returns one of the fonts bundled with the module. The name can
// be given with or without [BuiltinPrefix]. Only "goregular" comes
// with raw data.
func Builtin(name string) (*Source, error) {
	load, found := builtins[strings.TrimPrefix(name, BuiltinPrefix)]
	if !found { return nil, ErrUnknownBuiltin }
	return load()
}

// Returns the names of the bundled fonts, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
