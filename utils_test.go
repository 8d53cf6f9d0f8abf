package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSerializeString_LengthPrefixed(t *testing.T) {
	a := new(bytes.Buffer)
	SerializeString(a, "ab")
	SerializeString(a, "c")

	b := new(bytes.Buffer)
	SerializeString(b, "a")
	SerializeString(b, "bc")

	assert.NotEqual(t, a.Bytes(), b.Bytes())
	assert.Len(t, a.Bytes(), 8+2+8+1)
}

func TestSerialize_FixedSize(t *testing.T) {
	buf := new(bytes.Buffer)
	Serialize(buf, Vec{1, 2})
	Serialize(buf, int64(3))
	assert.Len(t, buf.Bytes(), 24)
}

func TestFolderWatcher(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("a: 1"), 0644))

	f := FolderWatcher{Folder: dir}
	f.FolderContentsChanged()
	assert.False(t, f.FolderContentsChanged())

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(file, later, later))
	assert.True(t, f.FolderContentsChanged())
	assert.False(t, f.FolderContentsChanged())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), nil, 0644))
	assert.True(t, f.FolderContentsChanged())
}

func TestLoadYAML_Config(t *testing.T) {
	cfg := DefaultConfig()
	LoadYAML(&embeddedFiles, "data/config.yaml", &cfg)

	kind, err := ParseEmitterKind(cfg.StartDemo)
	require.NoError(t, err)
	assert.Equal(t, ExplosionKind, kind)
	assert.Equal(t, int64(500), cfg.InitialExplosionDelayMs)
	assert.Equal(t, int64(300), cfg.ExplosionDefaults.TotalParticles)
	// Fields the file leaves out keep their built-in defaults.
	assert.Equal(t, defaultExplosionSettings.MaxLife, cfg.ExplosionDefaults.MaxLife)
	assert.Equal(t, defaultAmbientSettings.MaxSpeed, cfg.AmbientDefaults.MaxSpeed)
}
