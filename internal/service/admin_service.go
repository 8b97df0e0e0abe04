package service

import (
	"braseria/internal/entities"
	"braseria/internal/repository"
)

type AdminService struct {
	adminRepo *repository.AdminRepository
}

func NewAdminService(adminRepo *repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

func (s *AdminService) ListReservations(date, eventType, status string) (*entities.ReservationsList, error) {
	reservations, err := s.adminRepo.ListReservations(date, eventType, status)
	if err != nil {
		return nil, err
	}
	list := &entities.ReservationsList{Total: len(reservations)}
	for i := range reservations {
		list.Reservations = append(list.Reservations, toResponse(&reservations[i]))
	}
	return list, nil
}

func (s *AdminService) DeleteReservation(id int) error {
	return s.adminRepo.DeleteReservation(id)
}
