package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"log"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone,
// either as a native executable or a .wasm on the browser. It is meant as a
// unique label for the functionality that a user is presented with.
// ReleaseVersion must change when InputVersion changes, and every time a new
// executable is built and sent to someone.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
)

type Gui struct {
	Config
	layout              *ScreenLayout
	world               *World
	FSys                FS
	folderWatcher       FolderWatcher
	defaultFont         font.Face
	playthrough         Playthrough
	state               GameState
	virtualPointerPos   Pt
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	touchIDs            []ebiten.TouchID
	activeTouch         ebiten.TouchID
	touching            bool
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	nRecordedEvents     int
	username            string
	devModeEnabled      bool
}

type Config struct {
	StartDemo               string           `yaml:"StartDemo"`
	StartState              string           `yaml:"StartState"`
	PlaybackFile            string           `yaml:"PlaybackFile"`
	RecordToFile            bool             `yaml:"RecordToFile"`
	RecordingFile           string           `yaml:"RecordingFile"`
	InitialExplosionDelayMs int64            `yaml:"InitialExplosionDelayMs"`
	ExplosionDefaults       ParticleSettings `yaml:"ExplosionDefaults"`
	AmbientDefaults         ParticleSettings `yaml:"AmbientDefaults"`
}

// DefaultConfig is the config that a config file is read over. Fields the
// file leaves out keep these values.
func DefaultConfig() Config {
	return Config{
		StartDemo:               string(ExplosionKind),
		StartState:              "Play",
		InitialExplosionDelayMs: InitialExplosionDelay.Milliseconds(),
		ExplosionDefaults:       defaultExplosionSettings,
		AmbientDefaults:         defaultAmbientSettings,
	}
}

func main() {
	log.SetFlags(log.Ltime)

	var g Gui
	g.layout = NewScreenLayout()
	g.username = getUsername()
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	ebiten.SetWindowSize(int(GameWidth), int(GameHeight))
	ebiten.SetWindowTitle("Particles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(FramesPerSecond)

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher with the current timestamps so that the
		// first check in Update() doesn't report a change.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()
	if g.StartDemo == "" {
		g.StartDemo = string(ExplosionKind)
	}

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		log.Printf("[Playback] Replaying %s, %d frames, %d events",
			g.PlaybackFile, g.playthrough.NFrames, len(g.playthrough.Events))
	case "Play", "":
		g.state = PlayScreen
		g.playthrough = NewPlaythrough(g.Config, g.username, time.Now().UnixNano())
		if g.RecordToFile {
			log.Printf("[Session] Recording %s to %s", g.playthrough.Id, g.RecordingFile)
		}
	default:
		Check(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = NewWorld(&g.playthrough, g.layout, g.state == Playback)

	err := ebiten.RunGame(&g)
	Check(err)
}
