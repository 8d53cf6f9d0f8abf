package main

import (
	"encoding/binary"
	"io"
	"io/fs"
	"os"
	"time"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

// Serialize writes data in a fixed binary format. data must have a fixed
// size: numbers, bools and structs or arrays made only of those.
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

// SerializeString writes the length of s followed by its bytes, so that two
// consecutive strings can't be confused with a single one.
func SerializeString(w io.Writer, s string) {
	Serialize(w, int64(len(s)))
	_, err := io.WriteString(w, s)
	Check(err)
}

// FolderWatcher tells when any file in Folder was modified, added or removed.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	changed := false
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
		changed = true
	}
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
