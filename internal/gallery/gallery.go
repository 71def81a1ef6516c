// Package gallery loads the wallpaper frame set: enumerate the image
// files in a folder, order them by the number embedded in each
// filename, and decode them all up front. The decoded sequence is
// immutable for the process lifetime and is the dominant memory cost.
package gallery

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Entry is one frame source file with its ordering key
type Entry struct {
	Path string
	Key  int64
}

// Entries is the ordered frame file list produced by Scan
type Entries []Entry

// Middle returns the path of the middle entry, used for the initial
// wallpaper set while the full sequence is still decoding
func (e Entries) Middle() string {
	return e[len(e)/2].Path
}

// Sequence is the decoded, read-only frame set
type Sequence struct {
	frames []image.Image
	paths  []string
}

// Len returns the number of frames
func (s *Sequence) Len() int {
	return len(s.frames)
}

// Frame returns the decoded frame at index i
func (s *Sequence) Frame(i int) image.Image {
	return s.frames[i]
}

// Path returns the source path of the frame at index i
func (s *Sequence) Path(i int) string {
	return s.paths[i]
}

// Scan enumerates the image files in folder and sorts them by the
// integer formed from the digit characters of each filename. Sorting
// numerically instead of lexicographically avoids misordering sets
// without zero padding (wall_2.png before wall_10.png).
//
// A filename with no digits, or two files sharing a key, makes the
// ordering undefined and is reported as an error.
func Scan(folder string) (Entries, error) {
	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read image folder: %w", err)
	}

	seen := make(map[int64]string)
	var entries Entries
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !isImageFile(name) {
			continue
		}

		key, err := numericKey(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate frame number %d: %s and %s", key, prev, name)
		}
		seen[key] = name

		entries = append(entries, Entry{Path: filepath.Join(folder, name), Key: key})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no images found in %s", folder)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries, nil
}

// Load decodes every entry into memory, in order
func Load(entries Entries) (*Sequence, error) {
	seq := &Sequence{
		frames: make([]image.Image, 0, len(entries)),
		paths:  make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		img, err := imaging.Open(e.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", e.Path, err)
		}
		seq.frames = append(seq.frames, img)
		seq.paths = append(seq.paths, e.Path)
	}

	return seq, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// numericKey extracts the digit characters of the base name and parses
// them as a single integer
func numericKey(name string) (int64, error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	var digits strings.Builder
	for _, r := range base {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("no frame number in filename %s", name)
	}

	key, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("frame number in %s out of range: %w", name, err)
	}
	return key, nil
}
