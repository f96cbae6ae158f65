package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

// FileSet owns every file loaded for one translation session.
// IDs are dense and start at 1; ID 0 is reserved for "no file".
type FileSet struct {
	files []*File // index = FileID - 1
}

func NewFileSet() *FileSet {
	return &FileSet{}
}

// Load reads a file from disk, normalizes it and registers it in the set.
func (fs *FileSet) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return fs.add(filepath.ToSlash(abs), data, 0)
}

// AddVirtual registers in-memory content under a synthetic path.
func (fs *FileSet) AddVirtual(path string, content []byte) (*File, error) {
	return fs.add(path, content, FileVirtual)
}

func (fs *FileSet) add(path string, data []byte, flags FileFlags) (*File, error) {
	data = removeBOM(data)
	data, crlf := normalizeCRLF(data)
	if crlf {
		flags |= FileNormalizedCRLF
	}
	id, err := safecast.Convert[uint32](len(fs.files) + 1)
	if err != nil {
		return nil, fmt.Errorf("too many files in set: %w", err)
	}
	f := &File{
		ID:      FileID(id),
		Path:    path,
		Content: data,
		LineIdx: buildLineIndex(data),
		Hash:    sha256.Sum256(data),
		Flags:   flags,
	}
	fs.files = append(fs.files, f)
	return f, nil
}

// Get returns the file for id, or nil if the id is unknown.
func (fs *FileSet) Get(id FileID) *File {
	if id == 0 || int(id) > len(fs.files) {
		return nil
	}
	return fs.files[id-1]
}

// Len returns the number of registered files.
func (fs *FileSet) Len() int { return len(fs.files) }

// Position resolves a span start to a line/column pair.
func (fs *FileSet) Position(sp Span) (string, LineCol) {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>", LineCol{}
	}
	return f.Path, f.LineColAt(sp.Start)
}

// LineColAt converts a byte offset into a 1-based line/column pair.
func (f *File) LineColAt(offset uint32) LineCol {
	// LineIdx holds the byte offset of every '\n'; the line number is
	// the count of newlines strictly before offset, plus one.
	line := sort.Search(len(f.LineIdx), func(i int) bool {
		return f.LineIdx[i] >= offset
	})
	lineStart := uint32(0)
	if line > 0 {
		lineStart = f.LineIdx[line-1] + 1
	}
	return LineCol{
		Line: uint32(line) + 1,
		Col:  offset - lineStart + 1,
	}
}

func removeBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

func normalizeCRLF(data []byte) ([]byte, bool) {
	hasCR := false
	for _, b := range data {
		if b == '\r' {
			hasCR = true
			break
		}
	}
	if !hasCR {
		return data, false
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '\r' {
			if i+1 < len(data) && data[i+1] == '\n' {
				continue
			}
			out = append(out, '\n')
			continue
		}
		out = append(out, data[i])
	}
	return out, true
}

func buildLineIndex(data []byte) []uint32 {
	var idx []uint32
	for i, b := range data {
		if b == '\n' {
			idx = append(idx, uint32(i))
		}
	}
	return idx
}
