// Package hjson parses the relaxed, HJSON-like localization files shipped with the
// Path of Terraria mod into flat, dotted translation keys.
//
// The parser is intentionally lenient. The files are hand-authored and often irregular,
// so lines it does not understand are skipped and unbalanced braces are tolerated
// instead of failing the whole import.
//
// # Format
//
//	# Each entry comes with a standard, pre-generated line:
//	# "{1}{0} to stat"
//	IncreasedDamageAffix: {
//	    Description: "{1}{0}% dmg"
//	}
//
// Parsed with the category "Affixes", the snippet above yields a single entry:
//
//	Mods.PathOfTerraria.Affixes.IncreasedDamageAffix.Description = {1}{0}% dmg
//
// # Usage
//
//	translations := hjson.Parse(content, "Affixes")
//	for key, value := range translations.All() {
//	    fmt.Println(key, value)
//	}
package hjson
