// The font subpackage contains helper methods to parse fonts and
// obtain information from them (name, family, missing runes, etc.),
// alongside a [Library] type used by the job runner to load each
// referenced font only once.
//
// A couple fonts are bundled for testing and quick specimens; see
// [Builtin]().
package font
