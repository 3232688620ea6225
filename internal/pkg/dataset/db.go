package dataset

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/vendordesk/vendordesk/app/models"
	"github.com/vendordesk/vendordesk/app/repository"
)

// DBStore is the relational-profile EntityStore: vendors, contracts, and
// projects live in MySQL behind the repositories; all sessions share the
// same state, last writer wins. Tickets have no table in this profile and
// stay in a process-local memory store. Timestamps are stamped here, not by
// the storage engine.
type DBStore struct {
	vendors   repository.VendorRepository
	contracts repository.ContractRepository
	projects  repository.ProjectRepository
	tickets   *Store
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{
		vendors:   repository.NewVendorRepository(db),
		contracts: repository.NewContractRepository(db),
		projects:  repository.NewProjectRepository(db),
		tickets:   NewStore(),
	}
}

func mapDBErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// VENDORS

func (s *DBStore) Vendors() []models.Vendor {
	vendors, err := s.vendors.GetAll()
	if err != nil {
		log.Warnf("[DBStore] listing vendors failed: %v", err)
		return nil
	}
	return vendors
}

func (s *DBStore) VendorByID(id uint) (models.Vendor, error) {
	v, err := s.vendors.GetByID(id)
	if err != nil {
		return models.Vendor{}, mapDBErr(err)
	}
	return *v, nil
}

func (s *DBStore) InsertVendor(v models.Vendor) (uint, error) {
	if v.Status == "" {
		v.Status = models.VendorStatusPending
	}
	if err := v.Validate(); err != nil {
		return 0, err
	}
	now := time.Now()
	if v.DateAdded.IsZero() {
		v.DateAdded = now
	}
	v.CreatedAt = now
	v.UpdatedAt = now
	if err := s.vendors.Create(&v); err != nil {
		return 0, err
	}
	return v.ID, nil
}

func (s *DBStore) UpdateVendor(id uint, upd VendorUpdate) error {
	v, err := s.vendors.GetByID(id)
	if err != nil {
		return mapDBErr(err)
	}
	upd.Apply(v)
	if err := v.Validate(); err != nil {
		return err
	}
	v.UpdatedAt = time.Now()
	return s.vendors.Update(v)
}

func (s *DBStore) DeleteVendor(id uint) error {
	if _, err := s.vendors.GetByID(id); err != nil {
		return mapDBErr(err)
	}
	return s.vendors.Delete(id)
}

func (s *DBStore) VendorDependents(id uint) (contracts, projects int) {
	if n, err := s.contracts.CountByVendorID(id); err == nil {
		contracts = int(n)
	}
	if n, err := s.projects.CountByVendorID(id); err == nil {
		projects = int(n)
	}
	return contracts, projects
}

// CONTRACTS

func (s *DBStore) Contracts() []models.Contract {
	contracts, err := s.contracts.GetAll()
	if err != nil {
		log.Warnf("[DBStore] listing contracts failed: %v", err)
		return nil
	}
	return contracts
}

func (s *DBStore) ContractByID(id uint) (models.Contract, error) {
	c, err := s.contracts.GetByID(id)
	if err != nil {
		return models.Contract{}, mapDBErr(err)
	}
	return *c, nil
}

func (s *DBStore) InsertContract(c models.Contract) (uint, error) {
	if c.Status == "" {
		c.Status = models.ContractStatusDraft
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.contracts.Create(&c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *DBStore) UpdateContract(id uint, upd ContractUpdate) error {
	c, err := s.contracts.GetByID(id)
	if err != nil {
		return mapDBErr(err)
	}
	upd.Apply(c)
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()
	return s.contracts.Update(c)
}

func (s *DBStore) DeleteContract(id uint) error {
	if _, err := s.contracts.GetByID(id); err != nil {
		return mapDBErr(err)
	}
	return s.contracts.Delete(id)
}

// PROJECTS

func (s *DBStore) Projects() []models.Project {
	projects, err := s.projects.GetAll()
	if err != nil {
		log.Warnf("[DBStore] listing projects failed: %v", err)
		return nil
	}
	return projects
}

func (s *DBStore) ProjectByID(id uint) (models.Project, error) {
	p, err := s.projects.GetByID(id)
	if err != nil {
		return models.Project{}, mapDBErr(err)
	}
	return *p, nil
}

func (s *DBStore) InsertProject(p models.Project) (uint, error) {
	if p.Status == "" {
		p.Status = models.ProjectStatusGreen
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.projects.Create(&p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *DBStore) UpdateProject(id uint, upd ProjectUpdate) error {
	p, err := s.projects.GetByID(id)
	if err != nil {
		return mapDBErr(err)
	}
	upd.Apply(p)
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return s.projects.Update(p)
}

func (s *DBStore) DeleteProject(id uint) error {
	if _, err := s.projects.GetByID(id); err != nil {
		return mapDBErr(err)
	}
	return s.projects.Delete(id)
}

// TICKETS (memory-backed in this profile)

func (s *DBStore) Tickets() []models.Ticket                     { return s.tickets.Tickets() }
func (s *DBStore) TicketByID(id uint) (models.Ticket, error)    { return s.tickets.TicketByID(id) }
func (s *DBStore) InsertTicket(t models.Ticket) (uint, error)   { return s.tickets.InsertTicket(t) }
func (s *DBStore) UpdateTicket(id uint, upd TicketUpdate) error { return s.tickets.UpdateTicket(id, upd) }
func (s *DBStore) DeleteTicket(id uint) error                   { return s.tickets.DeleteTicket(id) }

// IMPORTS

func (s *DBStore) ImportVendors(batch []models.Vendor) (int, error) {
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

func (s *DBStore) ImportContracts(batch []models.Contract) (int, error) {
	for i := range batch {
		if err := batch[i].Validate(); err != nil {
			return 0, err
		}
	}
	for _, c := range batch {
		if _, err := s.InsertContract(c); err != nil {
			return 0, err
		}
	}
	return len(batch), nil
}

func (s *DBStore) ImportProjects(batch []models.Project) (int, error) {
	for i := range batch {
		if err := batch[i].Validate(); err != nil {
			return 0, err
		}
	}
	for _, p := range batch {
		if _, err := s.InsertProject(p); err != nil {
			return 0, err
		}
	}
	return len(batch), nil
}

func (s *DBStore) ImportTickets(batch []models.Ticket) (int, error) {
	return s.tickets.ImportTickets(batch)
}

// ProjectStatuses returns the traffic-light vocabulary the relational
// profile uses (its schema defaults new projects to Green).
func (s *DBStore) ProjectStatuses() []string {
	return models.ProjectHealthStatuses
}
