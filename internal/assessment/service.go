package assessment

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/autosave"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/formdata"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// Service maintains the assessment worksheet. Each of the three sub-trees
// (spares, labour, summary+header) persists independently behind its own
// debounce timer, so editing one area never blocks saves of another. Edits
// land in a pending overlay first; the timer fires a full read-merge-write of
// the assessment sub-structure. Failed writes keep the pending overlay so
// the next edit or flush retries them.
type Service struct {
	store  *formdata.Store
	sched  *autosave.Scheduler
	logger *zap.Logger

	mu          sync.Mutex
	pendSpares  map[string]*sparesPending
	pendLabour  map[string]*labourPending
	pendSummary map[string]*summaryPending
}

type sparesPending struct {
	main  *models.SparesTable
	suppl *models.SparesTable
}

type labourPending struct {
	main  *models.LabourTable
	suppl *models.LabourTable
}

type summaryPending struct {
	header  *models.AssessmentHeader
	salvage *float64
	excess  *float64
}

// NewService creates the worksheet service
func NewService(store *formdata.Store, sched *autosave.Scheduler, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		sched:       sched,
		logger:      logger,
		pendSpares:  make(map[string]*sparesPending),
		pendLabour:  make(map[string]*labourPending),
		pendSummary: make(map[string]*summaryPending),
	}
}

func sparesKey(claimID string) string  { return "assessment/" + claimID + "/spares" }
func labourKey(claimID string) string  { return "assessment/" + claimID + "/labour" }
func summaryKey(claimID string) string { return "assessment/" + claimID + "/summary" }

// Get returns the worksheet with pending edits overlaid and every derived
// block recomputed. Stored totals are never trusted.
func (s *Service) Get(claimID string) (*models.Assessment, error) {
	fd, _, err := s.store.Get(claimID)
	if err != nil {
		return nil, err
	}

	var a models.Assessment
	if fd.Assessment != nil {
		a = *fd.Assessment
	}

	s.mu.Lock()
	if p := s.pendSpares[claimID]; p != nil {
		if p.main != nil {
			a.Spares = *p.main
		}
		if p.suppl != nil {
			a.SupplementarySpares = *p.suppl
		}
	}
	if p := s.pendLabour[claimID]; p != nil {
		if p.main != nil {
			a.Labour = *p.main
		}
		if p.suppl != nil {
			a.SupplementaryLabour = *p.suppl
		}
	}
	if p := s.pendSummary[claimID]; p != nil {
		if p.header != nil {
			a.Header = *p.header
		}
		if p.salvage != nil {
			a.Summary.SalvageValue = *p.salvage
		}
		if p.excess != nil {
			a.Summary.PolicyExcess = *p.excess
		}
	}
	s.mu.Unlock()

	Recompute(&a)
	return &a, nil
}

// UpdateSpares applies edits to the spares sub-tree. Incoming rows pass
// through the exclusivity rule against their previous state, totals are
// recomputed, and a debounced save is scheduled.
func (s *Service) UpdateSpares(claimID string, main, suppl *models.SparesTable) (*models.Assessment, error) {
	if main == nil && suppl == nil {
		return nil, fmt.Errorf("no spares data provided")
	}

	current, err := s.Get(claimID)
	if err != nil {
		return nil, err
	}

	if main != nil {
		main.Rows = NormalizeRows(current.Spares.Rows, main.Rows)
		main.Totals = ComputeSparesTotals(*main)
	}
	if suppl != nil {
		suppl.Rows = NormalizeRows(current.SupplementarySpares.Rows, suppl.Rows)
		suppl.Totals = ComputeSparesTotals(*suppl)
	}

	s.mu.Lock()
	next := &sparesPending{main: main, suppl: suppl}
	if prev := s.pendSpares[claimID]; prev != nil {
		if next.main == nil {
			next.main = prev.main
		}
		if next.suppl == nil {
			next.suppl = prev.suppl
		}
	}
	s.pendSpares[claimID] = next
	s.mu.Unlock()

	s.sched.Schedule(sparesKey(claimID), func() { s.flushSpares(claimID) })
	return s.Get(claimID)
}

// UpdateLabour applies edits to the labour sub-tree and schedules its save
func (s *Service) UpdateLabour(claimID string, main, suppl *models.LabourTable) (*models.Assessment, error) {
	if main == nil && suppl == nil {
		return nil, fmt.Errorf("no labour data provided")
	}

	if main != nil {
		main.Totals = ComputeLabourTotals(*main)
	}
	if suppl != nil {
		suppl.Totals = ComputeLabourTotals(*suppl)
	}

	s.mu.Lock()
	next := &labourPending{main: main, suppl: suppl}
	if prev := s.pendLabour[claimID]; prev != nil {
		if next.main == nil {
			next.main = prev.main
		}
		if next.suppl == nil {
			next.suppl = prev.suppl
		}
	}
	s.pendLabour[claimID] = next
	s.mu.Unlock()

	s.sched.Schedule(labourKey(claimID), func() { s.flushLabour(claimID) })
	return s.Get(claimID)
}

// SummaryInput carries the summary sub-tree's user-editable parts
type SummaryInput struct {
	Header       *models.AssessmentHeader
	SalvageValue *float64
	PolicyExcess *float64
}

// UpdateSummary applies the two user-entered overrides and the header
// fields, then schedules the summary sub-tree's save. All other summary
// fields are derived and cannot be set.
func (s *Service) UpdateSummary(claimID string, in SummaryInput) (*models.Assessment, error) {
	s.mu.Lock()
	next := &summaryPending{header: in.Header, salvage: in.SalvageValue, excess: in.PolicyExcess}
	if prev := s.pendSummary[claimID]; prev != nil {
		if next.header == nil {
			next.header = prev.header
		}
		if next.salvage == nil {
			next.salvage = prev.salvage
		}
		if next.excess == nil {
			next.excess = prev.excess
		}
	}
	s.pendSummary[claimID] = next
	s.mu.Unlock()

	s.sched.Schedule(summaryKey(claimID), func() { s.flushSummary(claimID) })
	return s.Get(claimID)
}

// Flush forces all pending worksheet saves for a claim to run now. Used
// before report assembly and exports so they read a settled document.
func (s *Service) Flush(claimID string) {
	s.sched.Flush(sparesKey(claimID))
	s.sched.Flush(labourKey(claimID))
	s.sched.Flush(summaryKey(claimID))
}

func (s *Service) flushSpares(claimID string) {
	s.mu.Lock()
	p := s.pendSpares[claimID]
	s.mu.Unlock()
	if p == nil {
		return
	}

	err := s.store.Update(claimID, func(fd *models.FormData) error {
		if fd.Assessment == nil {
			fd.Assessment = &models.Assessment{}
		}
		if p.main != nil {
			fd.Assessment.Spares = *p.main
		}
		if p.suppl != nil {
			fd.Assessment.SupplementarySpares = *p.suppl
		}
		Recompute(fd.Assessment)
		return nil
	})
	if err != nil {
		// Pending overlay stays; the next edit or flush retries.
		s.logger.Error("Failed to save spares worksheet",
			zap.String("claim_id", claimID), zap.Error(err))
		return
	}

	s.mu.Lock()
	if s.pendSpares[claimID] == p {
		delete(s.pendSpares, claimID)
	}
	s.mu.Unlock()
}

func (s *Service) flushLabour(claimID string) {
	s.mu.Lock()
	p := s.pendLabour[claimID]
	s.mu.Unlock()
	if p == nil {
		return
	}

	err := s.store.Update(claimID, func(fd *models.FormData) error {
		if fd.Assessment == nil {
			fd.Assessment = &models.Assessment{}
		}
		if p.main != nil {
			fd.Assessment.Labour = *p.main
		}
		if p.suppl != nil {
			fd.Assessment.SupplementaryLabour = *p.suppl
		}
		Recompute(fd.Assessment)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to save labour worksheet",
			zap.String("claim_id", claimID), zap.Error(err))
		return
	}

	s.mu.Lock()
	if s.pendLabour[claimID] == p {
		delete(s.pendLabour, claimID)
	}
	s.mu.Unlock()
}

func (s *Service) flushSummary(claimID string) {
	s.mu.Lock()
	p := s.pendSummary[claimID]
	s.mu.Unlock()
	if p == nil {
		return
	}

	err := s.store.Update(claimID, func(fd *models.FormData) error {
		if fd.Assessment == nil {
			fd.Assessment = &models.Assessment{}
		}
		if p.header != nil {
			fd.Assessment.Header = *p.header
		}
		if p.salvage != nil {
			fd.Assessment.Summary.SalvageValue = *p.salvage
		}
		if p.excess != nil {
			fd.Assessment.Summary.PolicyExcess = *p.excess
		}
		Recompute(fd.Assessment)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to save assessment summary",
			zap.String("claim_id", claimID), zap.Error(err))
		return
	}

	s.mu.Lock()
	if s.pendSummary[claimID] == p {
		delete(s.pendSummary, claimID)
	}
	s.mu.Unlock()
}
