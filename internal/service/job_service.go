package service

import (
	"fmt"
	"log"
	"time"

	"braseria/internal/db"
	"braseria/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CancelExpiredHolds cancela las reservas de evento cuyo plazo de pago
// del depósito venció sin completarse el checkout.
func (s *JobService) CancelExpiredHolds() error {
	log.Println("Cron Job: Checking for holds past their payment deadline...")

	ids, err := s.Repo.ExpiredHoldIDs(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to get expired holds: %w", err)
	}
	if len(ids) == 0 {
		log.Println("Cron Job: No holds past their payment deadline.")
		return nil
	}

	log.Printf("Cron Job: Found %d expired holds to cancel. IDs: %v", len(ids), ids)
	if err := s.Repo.UpdateReservationStatuses(ids, db.StatusCanceled); err != nil {
		return fmt.Errorf("cron job: failed to cancel expired holds: %w", err)
	}
	return nil
}

// CompleteFinishedReservations marca como completadas las reservas
// confirmadas cuya franja ya terminó.
func (s *JobService) CompleteFinishedReservations() error {
	log.Println("Cron Job: Checking for reservations to mark as completed...")

	ids, err := s.Repo.FinishedReservationIDs(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to get finished reservations: %w", err)
	}
	if len(ids) == 0 {
		log.Println("Cron Job: No confirmed reservations found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d reservations to mark as completed. IDs: %v", len(ids), ids)
	if err := s.Repo.UpdateReservationStatuses(ids, db.StatusCompleted); err != nil {
		return fmt.Errorf("cron job: failed to update reservation statuses: %w", err)
	}
	return nil
}
