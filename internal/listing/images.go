package listing

import (
	"errors"
	"path/filepath"
	"strings"
)

// Image errors.
var (
	ErrBadImageType  = errors.New("only jpg or png files are allowed")
	ErrImageTooLarge = errors.New("image exceeds the size limit")
	ErrBadSlotIndex  = errors.New("image slot index out of range")
	ErrStaleImage    = errors.New("image load superseded by a newer selection")
)

const (
	// ExtraImageSlots is the number of additional slots after the cover.
	ExtraImageSlots = 4

	// MaxImageBytes is the upload ceiling: 15MB.
	MaxImageBytes = 15 * 1024 * 1024
)

// Image is a selected file occupying one slot. Only the path and size are
// recorded; actual format validation happens server-side at publish time.
type Image struct {
	Path string
	Size int64
}

// slot pairs an image with the sequence number of the selection that
// produced it. Selections resolve asynchronously, so a slot only accepts a
// result that is at least as new as the last one it accepted.
type slot struct {
	image *Image
	seq   int
}

// SlotSet holds the cover slot plus the extra slots, each independent.
// Writes are keyed by slot index and last-write-wins; loads for different
// slots never touch each other's state.
type SlotSet struct {
	cover   slot
	extras  [ExtraImageSlots]slot
	nextSeq int
}

// CheckImage applies the advisory file checks: extension and size only.
func CheckImage(path string, size int64) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".png":
	default:
		return ErrBadImageType
	}
	if size > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}

// Begin reserves a sequence number for a new selection. The number is
// echoed back with the async result so stale completions can be discarded.
func (s *SlotSet) Begin() int {
	s.nextSeq++
	return s.nextSeq
}

// Commit stores a finished load into its slot. A result older than the one
// already present is dropped with ErrStaleImage.
func (s *SlotSet) Commit(index, seq int, img Image) error {
	target, err := s.at(index)
	if err != nil {
		return err
	}
	if seq < target.seq {
		return ErrStaleImage
	}
	target.image = &img
	target.seq = seq
	return nil
}

// Clear empties a slot.
func (s *SlotSet) Clear(index int) error {
	target, err := s.at(index)
	if err != nil {
		return err
	}
	target.image = nil
	return nil
}

// Cover returns the cover image, or nil.
func (s *SlotSet) Cover() *Image {
	return s.cover.image
}

// Extra returns the image in extra slot i, or nil.
func (s *SlotSet) Extra(i int) *Image {
	if i < 0 || i >= ExtraImageSlots {
		return nil
	}
	return s.extras[i].image
}

// HasCover reports whether the cover slot is filled.
func (s *SlotSet) HasCover() bool {
	return s.cover.image != nil
}

// ExtraCount returns how many extra slots are filled.
func (s *SlotSet) ExtraCount() int {
	n := 0
	for i := range s.extras {
		if s.extras[i].image != nil {
			n++
		}
	}
	return n
}

func (s *SlotSet) at(index int) (*slot, error) {
	if index == -1 {
		return &s.cover, nil
	}
	if index < 0 || index >= ExtraImageSlots {
		return nil, ErrBadSlotIndex
	}
	return &s.extras[index], nil
}
