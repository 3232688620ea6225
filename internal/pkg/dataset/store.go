package dataset

import (
	"sync"
	"time"

	"github.com/vendordesk/vendordesk/app/models"
)

// EntityStore is the authoritative holder of vendor, contract, project, and
// ticket records. Two implementations exist: the in-memory Store below
// (session-scoped snapshots) and the GORM-backed store in db.go (shared
// relational state, last-writer-wins).
type EntityStore interface {
	Vendors() []models.Vendor
	VendorByID(id uint) (models.Vendor, error)
	InsertVendor(v models.Vendor) (uint, error)
	UpdateVendor(id uint, upd VendorUpdate) error
	DeleteVendor(id uint) error
	VendorDependents(id uint) (contracts, projects int)

	Contracts() []models.Contract
	ContractByID(id uint) (models.Contract, error)
	InsertContract(c models.Contract) (uint, error)
	UpdateContract(id uint, upd ContractUpdate) error
	DeleteContract(id uint) error

	Projects() []models.Project
	ProjectByID(id uint) (models.Project, error)
	InsertProject(p models.Project) (uint, error)
	UpdateProject(id uint, upd ProjectUpdate) error
	DeleteProject(id uint) error

	Tickets() []models.Ticket
	TicketByID(id uint) (models.Ticket, error)
	InsertTicket(t models.Ticket) (uint, error)
	UpdateTicket(id uint, upd TicketUpdate) error
	DeleteTicket(id uint) error

	ImportVendors(batch []models.Vendor) (int, error)
	ImportContracts(batch []models.Contract) (int, error)
	ImportProjects(batch []models.Project) (int, error)
	ImportTickets(batch []models.Ticket) (int, error)

	// ProjectStatuses returns the status vocabulary of the active profile.
	ProjectStatuses() []string
}

// Store keeps all four entity tables in memory. Ids come from per-table
// counters that only ever increase, so an id is never reused within the
// store's lifetime. Reads return copies; rows are never aliased out.
type Store struct {
	mu sync.RWMutex

	vendors   []models.Vendor
	contracts []models.Contract
	projects  []models.Project
	tickets   []models.Ticket

	vendorSeq   uint
	contractSeq uint
	projectSeq  uint
	ticketSeq   uint
}

func NewStore() *Store {
	return &Store{}
}

// NewSeededStore returns a store preloaded with the demonstration dataset.
func NewSeededStore() *Store {
	s := NewStore()
	s.seedSampleData()
	return s
}

// VENDORS

func (s *Store) Vendors() []models.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out
}

func (s *Store) VendorByID(id uint) (models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

func (s *Store) InsertVendor(v models.Vendor) (uint, error) {
	if v.Status == "" {
		v.Status = models.VendorStatusPending
	}
	if err := v.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if v.DateAdded.IsZero() {
		v.DateAdded = now
	}
	s.vendorSeq++
	v.ID = s.vendorSeq
	v.CreatedAt = now
	v.UpdatedAt = now
	s.vendors = append(s.vendors, v)
	return v.ID, nil
}

func (s *Store) UpdateVendor(id uint, upd VendorUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vendors {
		if s.vendors[i].ID != id {
			continue
		}
		updated := s.vendors[i]
		upd.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		updated.UpdatedAt = time.Now()
		s.vendors[i] = updated
		return nil
	}
	return ErrNotFound
}

// DeleteVendor removes the vendor row. It does not cascade: contracts and
// projects keep their vendor_id and enrichment degrades to an empty vendor
// name. The web boundary checks VendorDependents first when it wants
// restrict semantics.
func (s *Store) DeleteVendor(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vendors {
		if s.vendors[i].ID == id {
			s.vendors = append(s.vendors[:i], s.vendors[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) VendorDependents(id uint) (contracts, projects int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contracts {
		if c.VendorID == id {
			contracts++
		}
	}
	for _, p := range s.projects {
		if p.VendorID == id {
			projects++
		}
	}
	return contracts, projects
}

// CONTRACTS

func (s *Store) Contracts() []models.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

func (s *Store) ContractByID(id uint) (models.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contracts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contract{}, ErrNotFound
}

func (s *Store) InsertContract(c models.Contract) (uint, error) {
	if c.Status == "" {
		c.Status = models.ContractStatusDraft
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.contractSeq++
	c.ID = s.contractSeq
	c.CreatedAt = now
	c.UpdatedAt = now
	s.contracts = append(s.contracts, c)
	return c.ID, nil
}

func (s *Store) UpdateContract(id uint, upd ContractUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contracts {
		if s.contracts[i].ID != id {
			continue
		}
		updated := s.contracts[i]
		upd.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		updated.UpdatedAt = time.Now()
		s.contracts[i] = updated
		return nil
	}
	return ErrNotFound
}

func (s *Store) DeleteContract(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts = append(s.contracts[:i], s.contracts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// PROJECTS

func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *Store) ProjectByID(id uint) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, ErrNotFound
}

func (s *Store) InsertProject(p models.Project) (uint, error) {
	if p.Status == "" {
		p.Status = models.ProjectStatusPlanning
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.projectSeq++
	p.ID = s.projectSeq
	p.CreatedAt = now
	p.UpdatedAt = now
	s.projects = append(s.projects, p)
	return p.ID, nil
}

func (s *Store) UpdateProject(id uint, upd ProjectUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		updated := s.projects[i]
		upd.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		updated.UpdatedAt = time.Now()
		s.projects[i] = updated
		return nil
	}
	return ErrNotFound
}

func (s *Store) DeleteProject(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// TICKETS

func (s *Store) Tickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

func (s *Store) TicketByID(id uint) (models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, ErrNotFound
}

func (s *Store) InsertTicket(t models.Ticket) (uint, error) {
	if t.Priority == "" {
		t.Priority = models.TicketPriorityMedium
	}
	if t.Status == "" {
		t.Status = models.TicketStatusOpen
	}
	if err := t.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if t.CreatedDate.IsZero() {
		t.CreatedDate = now
	}
	s.ticketSeq++
	t.ID = s.ticketSeq
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tickets = append(s.tickets, t)
	return t.ID, nil
}

func (s *Store) UpdateTicket(id uint, upd TicketUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID != id {
			continue
		}
		updated := s.tickets[i]
		upd.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		updated.UpdatedAt = time.Now()
		s.tickets[i] = updated
		return nil
	}
	return ErrNotFound
}

func (s *Store) DeleteTicket(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets = append(s.tickets[:i], s.tickets[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// IMPORTS
//
// Imports append a parsed batch in one step. Every record is validated
// before anything is written, so a bad batch leaves the store untouched.
// Defaults land on a local copy; the caller's slice is never modified.

func (s *Store) ImportVendors(batch []models.Vendor) (int, error) {
	rows := make([]models.Vendor, len(batch))
	copy(rows, batch)
	for i := range rows {
		if rows[i].Status == "" {
			rows[i].Status = models.VendorStatusPending
		}
		if err := rows[i].Validate(); err != nil {
			return 0, err
		}
	}
	for _, v := range rows {
		if _, err := s.InsertVendor(v); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func (s *Store) ImportContracts(batch []models.Contract) (int, error) {
	rows := make([]models.Contract, len(batch))
	copy(rows, batch)
	for i := range rows {
		if rows[i].Status == "" {
			rows[i].Status = models.ContractStatusDraft
		}
		if err := rows[i].Validate(); err != nil {
			return 0, err
		}
	}
	for _, c := range rows {
		if _, err := s.InsertContract(c); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func (s *Store) ImportProjects(batch []models.Project) (int, error) {
	rows := make([]models.Project, len(batch))
	copy(rows, batch)
	for i := range rows {
		if rows[i].Status == "" {
			rows[i].Status = models.ProjectStatusPlanning
		}
		if err := rows[i].Validate(); err != nil {
			return 0, err
		}
	}
	for _, p := range rows {
		if _, err := s.InsertProject(p); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func (s *Store) ImportTickets(batch []models.Ticket) (int, error) {
	rows := make([]models.Ticket, len(batch))
	copy(rows, batch)
	for i := range rows {
		if rows[i].Priority == "" {
			rows[i].Priority = models.TicketPriorityMedium
		}
		if rows[i].Status == "" {
			rows[i].Status = models.TicketStatusOpen
		}
		if err := rows[i].Validate(); err != nil {
			return 0, err
		}
	}
	for _, t := range rows {
		if _, err := s.InsertTicket(t); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

// ProjectStatuses returns the delivery-phase vocabulary used by the
// in-memory profile.
func (s *Store) ProjectStatuses() []string {
	return models.ProjectPhaseStatuses
}
