package main

import "log"

// NoticeDurationFrames is how long a notice stays on screen.
const NoticeDurationFrames = 4 * FramesPerSecond

// Notice is a message that appears at the bottom of the panel, stays for a
// while and then goes away on its own. It never blocks the panel.
type Notice struct {
	Text        string
	IsError     bool
	NFramesLeft int64
}

// Notices holds the messages currently shown to the user. It is stepped
// alongside the world, in Update().
type Notices struct {
	Active []Notice
	// MaxShown limits how many notices are kept at once, the oldest ones go
	// first.
	MaxShown int64
}

func NewNotices() Notices {
	return Notices{MaxShown: 3}
}

func (n *Notices) Info(text string) {
	n.add(Notice{Text: text, NFramesLeft: NoticeDurationFrames})
}

// Error shows err to the user. The panel keeps working, the error only
// explains why the last action had no effect.
func (n *Notices) Error(err error) {
	if err == nil {
		return
	}
	log.Printf("[Panel] Error: %v", err)
	n.add(Notice{Text: err.Error(), IsError: true, NFramesLeft: NoticeDurationFrames})
}

func (n *Notices) add(notice Notice) {
	n.Active = append(n.Active, notice)
	if n.MaxShown > 0 && int64(len(n.Active)) > n.MaxShown {
		n.Active = n.Active[int64(len(n.Active))-n.MaxShown:]
	}
}

func (n *Notices) Step() {
	// Count down, then filter out expired notices.
	k := 0
	for i := range n.Active {
		n.Active[i].NFramesLeft--
		if n.Active[i].NFramesLeft > 0 {
			n.Active[k] = n.Active[i]
			k++
		}
	}
	n.Active = n.Active[:k]
}
