// Package glyphs audits the distributed fonts for coverage of the Cyrillic
// characters the bundled mods actually render.
//
// The required set is collected from the mods' config and event files plus
// the full Russian alphabet as a baseline, filtered to characters whose
// Unicode name marks them as Cyrillic. Coverage is decided by the font's
// best cmap subtable.
package glyphs
