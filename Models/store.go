package Models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	dataFileName  = "dcm_data_v4.json"
	trialFileName = "dcm_trial_v4"
)

// Store owns the in-memory clinic document and persists it to a single JSON
// file after every mutation. Persistence is best-effort: a failed write is
// logged and the in-memory change stands. The trial-start stamp lives in its
// own file so it survives a document import or wipe; only Reset removes it.
type Store struct {
	mu  sync.Mutex
	dir string
	doc Document
}

// Open loads the document from dir. Missing or corrupt data yields the empty
// default document, never an error.
func Open(dir string) *Store {
	s := &Store{dir: dir, doc: EmptyDocument()}
	raw, err := os.ReadFile(filepath.Join(dir, dataFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			zap.S().Warnf("clinic document unreadable, starting empty: %v", err)
		}
		return s
	}
	doc := EmptyDocument()
	if err := json.Unmarshal(raw, &doc); err != nil {
		zap.S().Warnf("clinic document corrupt, starting empty: %v", err)
		return s
	}
	normalize(&doc)
	s.doc = doc
	return s
}

// normalize restores invariants a hand-edited or partial document may lack:
// no nil collections, so exports always carry every top-level key.
func normalize(doc *Document) {
	if doc.Users == nil {
		doc.Users = []UserCredential{}
	}
	if doc.Patients == nil {
		doc.Patients = []Patient{}
	}
	if doc.Appointments == nil {
		doc.Appointments = []Appointment{}
	}
	if doc.Invoices == nil {
		doc.Invoices = []Invoice{}
	}
	if doc.Staff == nil {
		doc.Staff = []StaffMember{}
	}
	if doc.Treatments == nil {
		doc.Treatments = map[string][]TreatmentUsage{}
	}
}

// mutate runs fn as one critical section over the document and persists the
// result when fn succeeds. fn must validate before modifying anything it is
// given; an error return means the document was not touched.
func (s *Store) mutate(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.doc); err != nil {
		return err
	}
	s.persistLocked()
	return nil
}

func (s *Store) persistLocked() {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		zap.S().Errorf("failed to encode clinic document: %v", err)
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		zap.S().Errorf("failed to create data dir: %v", err)
		return
	}
	path := filepath.Join(s.dir, dataFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		zap.S().Errorf("failed to write clinic document: %v", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		zap.S().Errorf("failed to replace clinic document: %v", err)
	}
}

// Snapshot returns a deep copy of the current document for read-side use.
func (s *Store) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(s.doc)
	if err != nil {
		zap.S().Errorf("failed to copy clinic document: %v", err)
		return EmptyDocument()
	}
	doc := EmptyDocument()
	if err := json.Unmarshal(raw, &doc); err != nil {
		zap.S().Errorf("failed to copy clinic document: %v", err)
		return EmptyDocument()
	}
	normalize(&doc)
	return doc
}

// TrialStart returns the first-session stamp, or nil if none was recorded.
func (s *Store) TrialStart() *time.Time {
	raw, err := os.ReadFile(filepath.Join(s.dir, trialFileName))
	if err != nil {
		return nil
	}
	t, err := ParseISO(string(raw))
	if err != nil {
		zap.S().Warnf("trial stamp unreadable: %v", err)
		return nil
	}
	return &t
}

// StampTrialIfAbsent records now as the trial start unless a stamp exists.
func (s *Store) StampTrialIfAbsent(now time.Time) {
	if s.TrialStart() != nil {
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		zap.S().Errorf("failed to create data dir: %v", err)
		return
	}
	path := filepath.Join(s.dir, trialFileName)
	if err := os.WriteFile(path, []byte(now.UTC().Format(time.RFC3339)), 0o644); err != nil {
		zap.S().Errorf("failed to write trial stamp: %v", err)
	}
}

// Export marshals the current document verbatim for download.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, StorageError{Op: "export", Err: err}
	}
	return raw, nil
}

// ImportJSON replaces the whole document with the given backup, merged over
// defaults for any missing top-level key. The prior state is kept untouched
// unless parsing succeeds. The trial stamp is not part of the document and
// survives an import.
func (s *Store) ImportJSON(raw []byte) error {
	doc := EmptyDocument()
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ValidationError{Message: "backup is not valid JSON"}
	}
	normalize(&doc)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.persistLocked()
	return nil
}

// Reset is the full app reset: document, persisted file and trial stamp.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = EmptyDocument()
	if err := os.Remove(filepath.Join(s.dir, dataFileName)); err != nil && !os.IsNotExist(err) {
		zap.S().Errorf("failed to remove clinic document: %v", err)
	}
	if err := os.Remove(filepath.Join(s.dir, trialFileName)); err != nil && !os.IsNotExist(err) {
		zap.S().Errorf("failed to remove trial stamp: %v", err)
	}
}
