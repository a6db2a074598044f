package fonts

import "path/filepath"

const (
	// FontURL is the upstream location of the trusted font build
	FontURL = "https://github.com/googlefonts/noto-fonts/raw/main/hinted/ttf/NotoSans/NotoSans-Regular.ttf"
	// FontSHA256 is the pinned digest of the upstream font; payloads that
	// hash to anything else are rejected
	FontSHA256 = "b85c38ecea8a7cfb39c24e395a4007474fa5a4fc864f6ee33309eb4948d232d5"
	// FontFileName is the file name the font carries at every target path
	FontFileName = "NotoSans-Regular.ttf"
	// UserAgent is the User-Agent header sent with the upstream request
	UserAgent = "OWML-font-fetcher/1.0"
)

const (
	// PatchDir is the directory that holds the font patch
	PatchDir = "OWML_fonts_patch"
	// ModCheats is the mod that ships a patched Fonts directory
	ModCheats = "PacificEngine.CheatsMod"
	// ModClock is the mod that ships a patched Fonts directory and event text
	ModClock = "clubby789.OWClock"
)

// TargetPaths returns the fixed locations, relative to root, where the font
// must exist for OWML and the packaged mods to find it. The order is
// significant: the cache probe scans candidates in this order and the first
// valid copy wins.
func TargetPaths(root string) []string {
	return []string{
		filepath.Join(root, PatchDir, "Fonts", FontFileName),
		filepath.Join(root, PatchDir, "Mods", ModCheats, "Fonts", FontFileName),
		filepath.Join(root, PatchDir, "Mods", ModClock, "Fonts", FontFileName),
	}
}
