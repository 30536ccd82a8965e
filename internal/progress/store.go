package progress

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/quizdrill/internal/logger"
	"github.com/abhisek/quizdrill/internal/question"
)

// fileData is the on-disk layout. Keys missing from older files decode as
// empty arrays.
type fileData struct {
	FailedQuestions   []question.Question `json:"failedQuestions"`
	AnsweredQuestions []question.Question `json:"answeredQuestions"`
	MarkedQuestions   []question.Question `json:"markedQuestions"`
	LastQuestionCount int                 `json:"lastQuestionCount,omitempty"`
}

// Saver persists progress.
type Saver interface {
	Save(st *State) error
}

// FileStore keeps progress in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the progress file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the persisted state, or an empty state if the file is
// missing or cannot be decoded. It never fails.
func (s *FileStore) Load() *State {
	st, err := s.Read()
	if err != nil {
		logger.Get().Warn("starting with empty progress", zap.Error(err))
		return NewState()
	}
	return st
}

// Read is Load without the recovery: a missing file is an empty state, any
// other failure is returned as ErrProgressUnreadable.
func (s *FileStore) Read() (*State, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Get().Debug("no progress file yet", zap.String("path", s.path))
		return NewState(), nil
	}
	if err != nil {
		return nil, &FileError{Kind: ErrProgressUnreadable, Path: s.path, Err: err}
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &FileError{Kind: ErrProgressUnreadable, Path: s.path, Err: err}
	}

	st := &State{
		Answered:          NewSet(data.AnsweredQuestions...),
		Failed:            NewSet(data.FailedQuestions...),
		Marked:            NewSet(data.MarkedQuestions...),
		LastQuestionCount: data.LastQuestionCount,
	}
	if n := st.reconcile(); n > 0 {
		logger.Get().Warn("dropped failed entries already answered", zap.Int("count", n))
	}
	return st, nil
}

// Save rewrites the whole file. The write goes to a temp file in the same
// directory and is renamed into place, so a crash leaves either the old or
// the new file.
func (s *FileStore) Save(st *State) error {
	data := fileData{
		FailedQuestions:   nonNil(st.Failed.Questions()),
		AnsweredQuestions: nonNil(st.Answered.Questions()),
		MarkedQuestions:   nonNil(st.Marked.Questions()),
		LastQuestionCount: st.LastQuestionCount,
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return &FileError{Kind: ErrProgressWriteFailed, Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, b); err != nil {
		return &FileError{Kind: ErrProgressWriteFailed, Path: s.path, Err: err}
	}
	return nil
}

func nonNil(qs []question.Question) []question.Question {
	if qs == nil {
		return []question.Question{}
	}
	return qs
}

func writeFileAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
