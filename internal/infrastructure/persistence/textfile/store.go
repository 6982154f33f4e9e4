package textfile

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/campus-hub/student-registry/internal/domain/shared"
	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

// Store reads and writes the roster file.
//
// Loading is best-effort: a missing or unreadable file means an empty
// roster, malformed lines are skipped, the rest of the file is still
// processed. Saving overwrites the whole file; it writes to a temporary
// file in the same directory and renames it over the target so that a
// partial failure never truncates the previous data.
type Store struct {
	path string
	log  *logger.Logger
}

// NewStore creates a file store for the given path.
func NewStore(path string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Default()
	}
	return &Store{
		path: path,
		log:  log.With(logger.Component("textfile"), logger.FilePath(path)),
	}
}

// Path returns the roster file location.
func (st *Store) Path() string {
	return st.path
}

// Load reads the roster file and returns the parsed students in file
// order. It never fails: absence of persisted data means "start empty".
// The file handle is released before Load returns on every path.
//
// Per-line rules: blank lines are skipped; a line that does not parse is
// skipped and logged; duplicate ids keep the first occurrence; reading
// stops once student.MaxStudents records were accepted. The gpa of every
// accepted record is recomputed from its courses, the persisted value is
// only a display convenience for people reading the raw file.
func (st *Store) Load(ctx context.Context) []*student.Student {
	file, err := os.Open(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			st.log.Info("no roster file found, starting with an empty roster")
		} else {
			st.log.Warn("roster file unreadable, starting with an empty roster", logger.Err(err))
		}
		return nil
	}
	defer file.Close()

	var (
		out    []*student.Student
		seen   = make(map[student.StudentID]bool)
		lineNo int
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if len(out) >= student.MaxStudents {
			st.log.Warn("roster file has more records than the roster holds, ignoring the rest",
				logger.LineNumber(lineNo))
			break
		}

		s, err := DecodeLine(line)
		if err != nil {
			st.log.Warn("skipping malformed roster line",
				logger.LineNumber(lineNo), logger.Err(err))
			continue
		}

		if seen[s.ID] {
			st.log.Warn("skipping duplicate student id in roster file",
				logger.LineNumber(lineNo), logger.StudentID(int(s.ID)))
			continue
		}
		seen[s.ID] = true

		s.RecomputeGPA()
		out = append(out, s)
	}

	if err := scanner.Err(); err != nil {
		st.log.Warn("roster file read interrupted, keeping records loaded so far",
			logger.Err(err), logger.Count(len(out)))
	}

	st.log.Info("roster loaded", logger.Count(len(out)))
	return out
}

// Save writes the full roster, replacing the previous file content.
func (st *Store) Save(ctx context.Context, students []*student.Student) error {
	dir := filepath.Dir(st.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(st.path)+".tmp-*")
	if err != nil {
		return shared.WrapError("textfile", "Save", shared.ErrIO,
			"could not create temporary roster file", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, s := range students {
		if _, err := w.WriteString(EncodeLine(s) + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return shared.WrapError("textfile", "Save", shared.ErrIO,
				"could not write roster file", err)
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return shared.WrapError("textfile", "Save", shared.ErrIO,
			"could not flush roster file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return shared.WrapError("textfile", "Save", shared.ErrIO,
			"could not close roster file", err)
	}

	if err := os.Rename(tmpName, st.path); err != nil {
		os.Remove(tmpName)
		return shared.WrapError("textfile", "Save", shared.ErrIO,
			"could not replace roster file", err)
	}

	st.log.Info("roster saved", logger.Count(len(students)))
	return nil
}
