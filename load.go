package main

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"io/fs"
	"log"
)

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. This way the code that reads data from
// disk can use a FS object and thus work the same if the files are embedded
// or not.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, v)
	if err != nil {
		Check(fmt.Errorf("parsing %s: %w", filename, err))
	}
}

func (g *Gui) configFile() string {
	if g.devModeEnabled {
		return "data/config-dev.yaml"
	}
	return "data/config.yaml"
}

// LoadConfig reads the config file into g.Config. When the config comes from
// the disk, it may be read while an editor is still writing it, so a failed
// read is logged and the previous config is kept.
// Default settings that no emitter could be built from, such as an inverted
// life range, are rejected as well: the previous defaults of that demo stay.
func (g *Gui) LoadConfig() {
	previousVal := CheckCrashes
	if g.FSys != &embeddedFiles {
		CheckCrashes = false
	}
	CheckFailed = nil
	cfg := DefaultConfig()
	LoadYAML(g.FSys, g.configFile(), &cfg)
	CheckCrashes = previousVal

	if CheckFailed != nil {
		log.Printf("[Config] Warning: keeping previous config: %v", CheckFailed)
		CheckFailed = nil
		return
	}
	if err := ValidateSettings(ExplosionKind, cfg.ExplosionDefaults); err != nil {
		log.Printf("[Config] Warning: keeping previous ExplosionDefaults: %v", err)
		cfg.ExplosionDefaults = g.ExplosionDefaults
	}
	if err := ValidateSettings(AmbientKind, cfg.AmbientDefaults); err != nil {
		log.Printf("[Config] Warning: keeping previous AmbientDefaults: %v", err)
		cfg.AmbientDefaults = g.AmbientDefaults
	}
	g.Config = cfg
	log.Printf("[Config] Loaded %s", g.configFile())
}

func (g *Gui) LoadGuiData() {
	g.Config = DefaultConfig()
	g.LoadConfig()

	// Load the Go font, which is embedded in the binary and always available.
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}
