// Package config loads amlpack settings.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. a TOML file, either given explicitly or ./amlpack.toml when present
//  3. AMLPACK_* environment variables, where the first underscore after
//     the prefix separates the section: AMLPACK_EXPORT_SCRIPTS_FOLDER sets
//     export.scripts_folder
package config
